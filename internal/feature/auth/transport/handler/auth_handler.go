// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack_backend/internal/feature/auth/domain/entity"
	"tasktrack_backend/internal/feature/auth/transport/http/dto"
	"tasktrack_backend/internal/feature/auth/usecase"
	"tasktrack_backend/internal/shared/ratelimiter"
)

// AuthUsecase defines the authentication operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and issues a token for it.
	Register(ctx context.Context, email, password, name string) (*entity.User, string, error)
	// Login authenticates a user and issues a fresh token on success.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth    AuthUsecase
	limiter *ratelimiter.Limiter
}

// NewAuthHandler creates a new AuthHandler. limiter throttles login attempts
// per client address; a nil limiter disables throttling.
func NewAuthHandler(auth AuthUsecase, limiter *ratelimiter.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// Register handles the user registration endpoint.
// - Binds the request JSON to RegisterReq; 400 on validation failure.
// - 409 on duplicate email. Registration is the one place that may confirm
//   an email exists, since a successful signup confirms it anyway.
// - 201 with the public user and a fresh token on success.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "email already exists"})
		case errors.Is(err, usecase.ErrInvalidInput):
			slog.Warn("register rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "registration failed"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{User: user.Public(), Token: token})
}

// Login handles the user login endpoint.
// - 429 when the client address exceeds the attempt window.
// - Binds the request JSON to LoginReq; 400 on validation failure.
// - 401 with a single unified message for unknown email and wrong password.
// - 200 with the public user and a fresh token on success.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		slog.Warn("login throttled", "remote_addr", c.ClientIP())
		c.JSON(http.StatusTooManyRequests, dto.ErrorRes{Error: "too many login attempts"})
		return
	}

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// Never reveal whether the email exists.
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "login failed"})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{User: user.Public(), Token: token})
}
