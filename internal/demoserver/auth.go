// internal/demoserver/auth.go
package demoserver

import (
	"net/http"
	"time"

	"petbloom/internal/domain/auth"
	"petbloom/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// authPayload is the body both auth endpoints return. The access_token
// field name is load-bearing: the client reads exactly this field.
type authPayload struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone,omitempty"`
	AccessToken string `json:"access_token"`
}

// Register creates an account and signs the user in.
func (s *Server) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if existing := s.store.userByEmail(req.Email); existing != nil {
		response.BadRequest(c, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := &userRecord{
		ID:           newID(),
		Email:        req.Email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}
	s.store.addUser(user)

	token, err := s.tokens.Mint(user.ID, user.Email)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	s.logger.Info("user registered", zap.String("email", user.Email))
	c.JSON(http.StatusOK, authPayload{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Phone:       user.Phone,
		AccessToken: token,
	})
}

// Login exchanges credentials for an identity plus bearer token.
func (s *Server) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user := s.store.userByEmail(req.Email)
	if user == nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := s.tokens.Mint(user.ID, user.Email)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	s.logger.Info("user logged in", zap.String("email", user.Email))
	c.JSON(http.StatusOK, authPayload{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Phone:       user.Phone,
		AccessToken: token,
	})
}
