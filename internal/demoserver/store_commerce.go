// internal/demoserver/store_commerce.go
package demoserver

import (
	"sort"
	"time"

	"petbloom/internal/domain/catalog"
	"petbloom/internal/domain/commerce"
	xerrors "petbloom/internal/pkg/errors"
)

// ========== Cart ==========

func (s *memoryStore) cartItems(userID string) []commerce.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []commerce.CartItem
	for _, item := range s.cart {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// addCartItem captures the catalog price at add time.
func (s *memoryStore) addCartItem(userID string, req commerce.AddCartItemRequest) *commerce.CartItem {
	var price float64
	if req.ProductID != "" {
		if p := s.product(req.ProductID); p != nil {
			price = p.Price
		}
	} else if req.PetID != "" {
		if p := s.pet(req.PetID); p != nil {
			price = p.Price
		}
	}

	item := &commerce.CartItem{
		ID:        newID(),
		UserID:    userID,
		ProductID: req.ProductID,
		PetID:     req.PetID,
		Quantity:  req.Quantity,
		Price:     price,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.cart[item.ID] = item
	s.mu.Unlock()
	return item
}

func (s *memoryStore) cartItem(id string) *commerce.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if item, ok := s.cart[id]; ok {
		cp := *item
		return &cp
	}
	return nil
}

func (s *memoryStore) updateCartQuantity(id string, quantity int) *commerce.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.cart[id]
	if !ok {
		return nil
	}
	item.Quantity = quantity
	cp := *item
	return &cp
}

func (s *memoryStore) deleteCartItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cart, id)
}

func (s *memoryStore) clearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, item := range s.cart {
		if item.UserID == userID {
			delete(s.cart, id)
		}
	}
}

// ========== Wishlist ==========

func (s *memoryStore) wishlistItems(userID string) []commerce.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []commerce.WishlistItem
	for _, item := range s.wishlist {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	return out
}

func (s *memoryStore) addWishlistItem(userID string, req commerce.AddWishlistItemRequest) (*commerce.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist {
		if item.UserID == userID && item.ProductID == req.ProductID && item.PetID == req.PetID {
			return nil, xerrors.ErrConflict
		}
	}

	item := &commerce.WishlistItem{
		ID:        newID(),
		UserID:    userID,
		ProductID: req.ProductID,
		PetID:     req.PetID,
		AddedAt:   time.Now(),
	}
	s.wishlist[item.ID] = item
	cp := *item
	return &cp, nil
}

func (s *memoryStore) wishlistItem(id string) *commerce.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if item, ok := s.wishlist[id]; ok {
		cp := *item
		return &cp
	}
	return nil
}

func (s *memoryStore) deleteWishlistItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlist, id)
}

func (s *memoryStore) clearWishlist(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, item := range s.wishlist {
		if item.UserID == userID {
			delete(s.wishlist, id)
		}
	}
}

// ========== Orders ==========

// createOrder turns the user's cart into an order and empties the cart.
func (s *memoryStore) createOrder(userID string, req commerce.CreateOrderRequest) (*commerce.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []commerce.OrderItem
	var total float64
	for _, item := range s.cart {
		if item.UserID != userID {
			continue
		}
		total += item.Price * float64(item.Quantity)
		items = append(items, commerce.OrderItem{
			ID:        newID(),
			ProductID: item.ProductID,
			PetID:     item.PetID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	if len(items) == 0 {
		return nil, xerrors.ErrEmptyCart
	}

	order := &commerce.Order{
		ID:              newID(),
		UserID:          userID,
		Status:          commerce.OrderPending,
		TotalPrice:      total,
		ShippingAddress: req.ShippingAddress,
		DeliveryOption:  req.DeliveryOption,
		PickupLocation:  req.PickupLocation,
		CreatedAt:       time.Now(),
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	order.Items = items
	s.orders[order.ID] = order

	for id, item := range s.cart {
		if item.UserID == userID {
			delete(s.cart, id)
		}
	}

	cp := *order
	return &cp, nil
}

func (s *memoryStore) userOrders(userID, status string) []commerce.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []commerce.Order
	for _, order := range s.orders {
		if order.UserID != userID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		out = append(out, *order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memoryStore) order(id string) *commerce.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if order, ok := s.orders[id]; ok {
		cp := *order
		return &cp
	}
	return nil
}

func (s *memoryStore) setOrderStatus(id, status string) *commerce.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil
	}
	order.Status = status
	cp := *order
	return &cp
}

func (s *memoryStore) setOrderTracking(id, trackingNumber string) *commerce.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil
	}
	order.TrackingNumber = trackingNumber
	cp := *order
	return &cp
}

// ========== Addresses ==========

func (s *memoryStore) userAddresses(userID string) []commerce.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []commerce.Address
	for _, a := range s.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memoryStore) addAddress(userID string, req commerce.CreateAddressRequest) *commerce.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.IsDefault {
		for _, a := range s.addresses {
			if a.UserID == userID {
				a.IsDefault = false
			}
		}
	}

	address := &commerce.Address{
		ID:        newID(),
		UserID:    userID,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
		CreatedAt: time.Now(),
	}
	s.addresses[address.ID] = address
	cp := *address
	return &cp
}

func (s *memoryStore) address(id string) *commerce.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.addresses[id]; ok {
		cp := *a
		return &cp
	}
	return nil
}

func (s *memoryStore) deleteAddress(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.addresses, id)
}

// ========== Messages ==========

func (s *memoryStore) inbox(userID string) []commerce.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []commerce.Message
	for _, m := range s.messages {
		if m.RecipientID == userID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memoryStore) conversation(userID, otherID string) []commerce.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []commerce.Message
	for _, m := range s.messages {
		if (m.SenderID == userID && m.RecipientID == otherID) ||
			(m.SenderID == otherID && m.RecipientID == userID) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *memoryStore) addMessage(senderID string, req commerce.SendMessageRequest) *commerce.Message {
	msg := &commerce.Message{
		ID:          newID(),
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
		CreatedAt:   time.Now(),
	}
	s.mu.Lock()
	s.messages[msg.ID] = msg
	s.mu.Unlock()
	cp := *msg
	return &cp
}

func (s *memoryStore) markRead(id, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok || m.RecipientID != userID {
		return false
	}
	m.Read = true
	return true
}

// ========== Reviews ==========

func (s *memoryStore) addReview(userID string, req catalog.CreateReviewRequest) *catalog.Review {
	review := &catalog.Review{
		ID:        newID(),
		UserID:    userID,
		ProductID: req.ProductID,
		PetID:     req.PetID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.reviews[review.ID] = review
	s.mu.Unlock()
	cp := *review
	return &cp
}

func (s *memoryStore) productReviews(productID string) []catalog.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []catalog.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memoryStore) petReviews(petID string) []catalog.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []catalog.Review
	for _, r := range s.reviews {
		if r.PetID == petID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
