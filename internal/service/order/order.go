// internal/service/order/order.go
package order

import (
	"context"
	"fmt"
	"net/url"

	"petbloom/internal/domain/commerce"
	"petbloom/internal/gateway"

	"go.uber.org/zap"
)

// Service manages the authenticated user's orders through the gateway.
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

// Create checks out the current cart into a new order. The backend
// empties the cart on success.
func (s *Service) Create(ctx context.Context, req commerce.CreateOrderRequest) (*commerce.Order, error) {
	var order commerce.Order
	if err := s.gw.Post(ctx, "/orders", &req, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.TotalPrice),
	)
	return &order, nil
}

// List returns the user's orders, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]commerce.Order, error) {
	path := "/orders"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var orders []commerce.Order
	if err := s.gw.Get(ctx, path, &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*commerce.Order, error) {
	var order commerce.Order
	if err := s.gw.Get(ctx, "/orders/"+orderID, &order); err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// UpdateStatus moves the order to a new status.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (*commerce.Order, error) {
	var order commerce.Order
	path := "/orders/" + orderID + "/status?status=" + url.QueryEscape(status)
	if err := s.gw.Put(ctx, path, nil, &order); err != nil {
		return nil, fmt.Errorf("failed to update order %s status: %w", orderID, err)
	}
	return &order, nil
}

// UpdateTracking attaches a tracking number to the order.
func (s *Service) UpdateTracking(ctx context.Context, orderID, trackingNumber string) (*commerce.Order, error) {
	var order commerce.Order
	path := "/orders/" + orderID + "/tracking?tracking_number=" + url.QueryEscape(trackingNumber)
	if err := s.gw.Put(ctx, path, nil, &order); err != nil {
		return nil, fmt.Errorf("failed to update order %s tracking: %w", orderID, err)
	}
	return &order, nil
}
