// internal/service/wishlist/wishlist.go
package wishlist

import (
	"context"
	"fmt"

	"petbloom/internal/domain/commerce"
	"petbloom/internal/gateway"

	"go.uber.org/zap"
)

// Service manages the authenticated user's wishlist through the gateway.
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

// Items returns the wishlist, newest first.
func (s *Service) Items(ctx context.Context) ([]commerce.WishlistItem, error) {
	var items []commerce.WishlistItem
	if err := s.gw.Get(ctx, "/wishlist", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	return items, nil
}

// Add saves a product or a pet. The backend rejects duplicates.
func (s *Service) Add(ctx context.Context, req commerce.AddWishlistItemRequest) (*commerce.WishlistItem, error) {
	var item commerce.WishlistItem
	if err := s.gw.Post(ctx, "/wishlist", &req, &item); err != nil {
		return nil, fmt.Errorf("failed to add to wishlist: %w", err)
	}
	return &item, nil
}

// Remove deletes one wishlist entry.
func (s *Service) Remove(ctx context.Context, itemID string) error {
	if err := s.gw.Delete(ctx, "/wishlist/"+itemID, nil); err != nil {
		return fmt.Errorf("failed to remove wishlist item %s: %w", itemID, err)
	}
	return nil
}

// Clear empties the wishlist.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.gw.Delete(ctx, "/wishlist", nil); err != nil {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	return nil
}
