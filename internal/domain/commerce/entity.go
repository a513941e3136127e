// internal/domain/commerce/entity.go
package commerce

import "time"

// CartItem holds one product or pet in the user's cart. Price is
// captured at add time.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId,omitempty"`
	PetID     string    `json:"petId,omitempty"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Order statuses as the backend reports them.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Status          string    `json:"status"`
	TotalPrice      float64   `json:"totalPrice"`
	ShippingAddress string    `json:"shippingAddress,omitempty"`
	DeliveryOption  string    `json:"deliveryOption,omitempty"`
	PickupLocation  string    `json:"pickupLocation,omitempty"`
	TrackingNumber  string    `json:"trackingNumber,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	ProductID string  `json:"productId,omitempty"`
	PetID     string  `json:"petId,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// WishlistItem references a product or a pet the user saved for later.
type WishlistItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId,omitempty"`
	PetID     string    `json:"petId,omitempty"`
	AddedAt   time.Time `json:"addedAt,omitempty"`
}

type Address struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zipCode,omitempty"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
