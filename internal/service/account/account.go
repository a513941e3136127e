// internal/service/account/account.go
package account

import (
	"context"
	"fmt"

	"petbloom/internal/domain/commerce"
	"petbloom/internal/gateway"

	"go.uber.org/zap"
)

// Service covers the signed-in user's addresses and messages.
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

// ========== Addresses ==========

func (s *Service) Addresses(ctx context.Context) ([]commerce.Address, error) {
	var addresses []commerce.Address
	if err := s.gw.Get(ctx, "/addresses", &addresses); err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

// CreateAddress adds a shipping address. Marking it default unsets the
// previous default server-side.
func (s *Service) CreateAddress(ctx context.Context, req commerce.CreateAddressRequest) (*commerce.Address, error) {
	var address commerce.Address
	if err := s.gw.Post(ctx, "/addresses", &req, &address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return &address, nil
}

func (s *Service) DeleteAddress(ctx context.Context, addressID string) error {
	if err := s.gw.Delete(ctx, "/addresses/"+addressID, nil); err != nil {
		return fmt.Errorf("failed to delete address %s: %w", addressID, err)
	}
	return nil
}

// ========== Messages ==========

func (s *Service) Inbox(ctx context.Context) ([]commerce.Message, error) {
	var messages []commerce.Message
	if err := s.gw.Get(ctx, "/messages/inbox", &messages); err != nil {
		return nil, fmt.Errorf("failed to fetch inbox: %w", err)
	}
	return messages, nil
}

// Conversation returns the message history with another user.
func (s *Service) Conversation(ctx context.Context, senderID string) ([]commerce.Message, error) {
	var messages []commerce.Message
	if err := s.gw.Get(ctx, "/messages/conversation/"+senderID, &messages); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation with %s: %w", senderID, err)
	}
	return messages, nil
}

func (s *Service) SendMessage(ctx context.Context, req commerce.SendMessageRequest) (*commerce.Message, error) {
	var msg commerce.Message
	if err := s.gw.Post(ctx, "/messages", &req, &msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &msg, nil
}

func (s *Service) MarkRead(ctx context.Context, messageID string) error {
	if err := s.gw.Send(ctx, "PATCH", "/messages/"+messageID+"/read", nil, nil); err != nil {
		return fmt.Errorf("failed to mark message %s read: %w", messageID, err)
	}
	return nil
}
