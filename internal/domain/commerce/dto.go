// internal/domain/commerce/dto.go
package commerce

// AddCartItemRequest adds a product or a pet to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId,omitempty"`
	PetID     string `json:"petId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest changes the quantity of an existing cart item.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest turns the current cart into an order.
type CreateOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	DeliveryOption  string `json:"deliveryOption"`
	PickupLocation  string `json:"pickupLocation,omitempty"`
}

// AddWishlistItemRequest saves a product or a pet for later.
type AddWishlistItemRequest struct {
	ProductID string `json:"productId,omitempty"`
	PetID     string `json:"petId,omitempty"`
}

// CreateAddressRequest adds a shipping address for the user.
type CreateAddressRequest struct {
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

// SendMessageRequest posts a message to another user.
type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// StatusMessage is the generic acknowledgement envelope for deletes.
type StatusMessage struct {
	Message string `json:"message"`
}

// OrderEvent is pushed over the event stream when an order changes.
type OrderEvent struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
