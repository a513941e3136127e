// internal/service/cart/cart.go
package cart

import (
	"context"
	"fmt"

	"petbloom/internal/domain/commerce"
	"petbloom/internal/gateway"

	"go.uber.org/zap"
)

// Service manages the authenticated user's cart through the gateway.
type Service struct {
	gw     *gateway.Client
	logger *zap.Logger
}

func NewService(gw *gateway.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gw: gw, logger: logger}
}

// Items returns the current cart contents, newest first.
func (s *Service) Items(ctx context.Context) ([]commerce.CartItem, error) {
	var items []commerce.CartItem
	if err := s.gw.Get(ctx, "/cart", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return items, nil
}

// Add puts a product or a pet into the cart. The backend captures the
// price at add time.
func (s *Service) Add(ctx context.Context, req commerce.AddCartItemRequest) (*commerce.CartItem, error) {
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	var item commerce.CartItem
	if err := s.gw.Post(ctx, "/cart", &req, &item); err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}
	return &item, nil
}

// UpdateQuantity changes the quantity of a cart item.
func (s *Service) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*commerce.CartItem, error) {
	var item commerce.CartItem
	req := commerce.UpdateCartItemRequest{Quantity: quantity}
	if err := s.gw.Put(ctx, "/cart/"+itemID, &req, &item); err != nil {
		return nil, fmt.Errorf("failed to update cart item %s: %w", itemID, err)
	}
	return &item, nil
}

// Remove deletes one item from the cart.
func (s *Service) Remove(ctx context.Context, itemID string) error {
	if err := s.gw.Delete(ctx, "/cart/"+itemID, nil); err != nil {
		return fmt.Errorf("failed to remove cart item %s: %w", itemID, err)
	}
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.gw.Delete(ctx, "/cart", nil); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Total sums price*quantity over the given items. Display helper; the
// backend recomputes totals at checkout.
func Total(items []commerce.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
