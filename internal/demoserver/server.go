// internal/demoserver/server.go
package demoserver

import (
	"net/http"

	"petbloom/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the in-memory demo backend: the same wire surface the real
// PetBloom API exposes, with nothing durable behind it. It exists so the
// storefront has something to talk to without external infrastructure.
type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	store  *memoryStore
	tokens *tokenManager
	hub    *Hub
	logger *zap.Logger
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		cfg:    cfg,
		engine: engine,
		store:  newMemoryStore(),
		tokens: newTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		hub:    NewHub(logger),
		logger: logger,
	}

	engine.Use(
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)
	s.setupRouter()
	return s
}

// Handler exposes the engine for httptest servers.
func (s *Server) Handler() http.Handler { return s.engine }

// Run starts the HTTP listener.
func (s *Server) Run() error {
	s.logger.Info("demo server listening", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

func (s *Server) setupRouter() {
	api := s.engine.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// ==================== WebSocket ====================
	s.engine.GET("/ws", s.HandleConnection)

	// ==================== Public Auth Routes ====================
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", s.Register)
		authGroup.POST("/login", s.Login)
	}

	// ==================== Public Catalog Routes ====================
	api.GET("/pets", s.ListPets)
	api.GET("/pets/*path", s.PetSubtree)
	api.GET("/products", s.ListProducts)
	api.GET("/products/*path", s.ProductSubtree)
	api.GET("/reviews/product/:id", s.ProductReviews)
	api.GET("/reviews/pet/:id", s.PetReviews)

	// ==================== Authenticated Routes ====================
	authed := api.Group("")
	authed.Use(s.Auth())
	{
		authed.GET("/cart", s.GetCart)
		authed.POST("/cart", s.AddToCart)
		authed.PUT("/cart/:id", s.UpdateCartItem)
		authed.DELETE("/cart/:id", s.RemoveFromCart)
		authed.DELETE("/cart", s.ClearCart)

		authed.GET("/wishlist", s.GetWishlist)
		authed.POST("/wishlist", s.AddToWishlist)
		authed.DELETE("/wishlist/:id", s.RemoveFromWishlist)
		authed.DELETE("/wishlist", s.ClearWishlist)

		authed.GET("/orders", s.ListOrders)
		authed.POST("/orders", s.CreateOrder)
		authed.GET("/orders/:id", s.GetOrder)
		authed.PUT("/orders/:id/status", s.UpdateOrderStatus)
		authed.PUT("/orders/:id/tracking", s.UpdateOrderTracking)

		authed.GET("/addresses", s.ListAddresses)
		authed.POST("/addresses", s.CreateAddress)
		authed.DELETE("/addresses/:id", s.DeleteAddress)

		authed.GET("/messages/inbox", s.Inbox)
		authed.GET("/messages/conversation/:sender_id", s.Conversation)
		authed.POST("/messages", s.SendMessage)
		authed.PATCH("/messages/:id/read", s.MarkMessageRead)

		authed.POST("/reviews", s.CreateReview)
	}
}
