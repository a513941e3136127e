// internal/service/alerts/alerts.go
package alerts

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"petbloom/internal/domain/commerce"
	"petbloom/internal/gateway"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Service subscribes to the backend's order event stream. It reuses the
// gateway only for endpoint resolution and the current credential; the
// stream itself is a plain websocket.
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

// endpoint derives the websocket URL from the gateway's base endpoint:
// the stream is served at /ws on the API host, outside the /api/v1 root.
func (s *Service) endpoint() (string, error) {
	u, err := url.Parse(s.gw.BaseURL())
	if err != nil {
		return "", fmt.Errorf("invalid base endpoint: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/ws"
	u.RawQuery = ""
	return u.String(), nil
}

// Subscribe dials the event stream with the current bearer credential
// and delivers order events until ctx is done or the stream closes. The
// returned channel is closed on exit.
func (s *Service) Subscribe(ctx context.Context) (<-chan commerce.OrderEvent, error) {
	endpoint, err := s.endpoint()
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if token := s.gw.Authorization(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("event stream rejected credential: %w", gateway.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to dial event stream: %w", err)
	}

	events := make(chan commerce.OrderEvent, 16)
	go func() {
		defer close(events)
		defer conn.Close()

		// Unblock ReadJSON when the caller gives up.
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				conn.Close()
			case <-done:
			}
		}()

		for {
			var ev commerce.OrderEvent
			if err := conn.ReadJSON(&ev); err != nil {
				if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					s.logger.Warn("event stream closed", zap.Error(err))
				}
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}
