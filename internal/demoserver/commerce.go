// internal/demoserver/commerce.go
package demoserver

import (
	"errors"
	"net/http"

	"petbloom/internal/domain/commerce"
	xerrors "petbloom/internal/pkg/errors"
	"petbloom/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ========== Cart ==========

func (s *Server) GetCart(c *gin.Context) {
	items := s.store.cartItems(currentUserID(c))
	if items == nil {
		items = []commerce.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) AddToCart(c *gin.Context) {
	var req commerce.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.ProductID == "" && req.PetID == "" {
		response.BadRequest(c, "productId or petId is required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	item := s.store.addCartItem(currentUserID(c), req)
	c.JSON(http.StatusOK, item)
}

func (s *Server) UpdateCartItem(c *gin.Context) {
	item := s.store.cartItem(c.Param("id"))
	if item == nil || item.UserID != currentUserID(c) {
		response.Forbidden(c, "Not authorized to update this item")
		return
	}

	var req commerce.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	c.JSON(http.StatusOK, s.store.updateCartQuantity(item.ID, req.Quantity))
}

func (s *Server) RemoveFromCart(c *gin.Context) {
	item := s.store.cartItem(c.Param("id"))
	if item == nil || item.UserID != currentUserID(c) {
		response.Forbidden(c, "Not authorized to delete this item")
		return
	}
	s.store.deleteCartItem(item.ID)
	response.Message(c, "Item removed from cart")
}

func (s *Server) ClearCart(c *gin.Context) {
	s.store.clearCart(currentUserID(c))
	response.Message(c, "Cart cleared")
}

// ========== Wishlist ==========

func (s *Server) GetWishlist(c *gin.Context) {
	items := s.store.wishlistItems(currentUserID(c))
	if items == nil {
		items = []commerce.WishlistItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) AddToWishlist(c *gin.Context) {
	var req commerce.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.ProductID == "" && req.PetID == "" {
		response.BadRequest(c, "productId or petId is required")
		return
	}

	item, err := s.store.addWishlistItem(currentUserID(c), req)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.BadRequest(c, "Item already in wishlist")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) RemoveFromWishlist(c *gin.Context) {
	item := s.store.wishlistItem(c.Param("id"))
	if item == nil || item.UserID != currentUserID(c) {
		response.Forbidden(c, "Not authorized to delete this item")
		return
	}
	s.store.deleteWishlistItem(item.ID)
	response.Message(c, "Item removed from wishlist")
}

func (s *Server) ClearWishlist(c *gin.Context) {
	s.store.clearWishlist(currentUserID(c))
	response.Message(c, "Wishlist cleared")
}

// ========== Orders ==========

func (s *Server) CreateOrder(c *gin.Context) {
	var req commerce.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := s.store.createOrder(currentUserID(c), req)
	if err != nil {
		if errors.Is(err, xerrors.ErrEmptyCart) {
			response.BadRequest(c, "Cart is empty")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
	)
	s.hub.Broadcast(order.UserID, commerce.OrderEvent{
		Type:    "order.created",
		OrderID: order.ID,
		Status:  order.Status,
	})
	c.JSON(http.StatusOK, order)
}

func (s *Server) ListOrders(c *gin.Context) {
	orders := s.store.userOrders(currentUserID(c), c.Query("status"))
	if orders == nil {
		orders = []commerce.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) GetOrder(c *gin.Context) {
	order := s.store.order(c.Param("id"))
	if order == nil {
		response.NotFound(c, "Order not found")
		return
	}
	if order.UserID != currentUserID(c) {
		response.Forbidden(c, "Not authorized to view this order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	order := s.store.order(c.Param("id"))
	if order == nil {
		response.NotFound(c, "Order not found")
		return
	}
	if order.UserID != currentUserID(c) {
		response.Forbidden(c, "Not authorized to update this order")
		return
	}

	status := c.Query("status")
	if status == "" {
		response.BadRequest(c, "status is required")
		return
	}

	updated := s.store.setOrderStatus(order.ID, status)
	s.hub.Broadcast(order.UserID, commerce.OrderEvent{
		Type:    "order.status",
		OrderID: order.ID,
		Status:  status,
	})
	c.JSON(http.StatusOK, updated)
}

func (s *Server) UpdateOrderTracking(c *gin.Context) {
	order := s.store.order(c.Param("id"))
	if order == nil {
		response.NotFound(c, "Order not found")
		return
	}
	if order.UserID != currentUserID(c) {
		response.Forbidden(c, "Not authorized to update this order")
		return
	}

	tracking := c.Query("tracking_number")
	if tracking == "" {
		response.BadRequest(c, "tracking_number is required")
		return
	}
	c.JSON(http.StatusOK, s.store.setOrderTracking(order.ID, tracking))
}

// ========== Addresses ==========

func (s *Server) ListAddresses(c *gin.Context) {
	addresses := s.store.userAddresses(currentUserID(c))
	if addresses == nil {
		addresses = []commerce.Address{}
	}
	c.JSON(http.StatusOK, addresses)
}

func (s *Server) CreateAddress(c *gin.Context) {
	var req commerce.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	c.JSON(http.StatusOK, s.store.addAddress(currentUserID(c), req))
}

func (s *Server) DeleteAddress(c *gin.Context) {
	address := s.store.address(c.Param("id"))
	if address == nil || address.UserID != currentUserID(c) {
		response.Forbidden(c, "Not authorized to delete this address")
		return
	}
	s.store.deleteAddress(address.ID)
	response.Message(c, "Address deleted")
}

// ========== Messages ==========

func (s *Server) Inbox(c *gin.Context) {
	messages := s.store.inbox(currentUserID(c))
	if messages == nil {
		messages = []commerce.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

func (s *Server) Conversation(c *gin.Context) {
	messages := s.store.conversation(currentUserID(c), c.Param("sender_id"))
	if messages == nil {
		messages = []commerce.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

func (s *Server) SendMessage(c *gin.Context) {
	var req commerce.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	c.JSON(http.StatusOK, s.store.addMessage(currentUserID(c), req))
}

func (s *Server) MarkMessageRead(c *gin.Context) {
	if !s.store.markRead(c.Param("id"), currentUserID(c)) {
		response.NotFound(c, "Message not found")
		return
	}
	response.Message(c, "Message marked as read")
}
