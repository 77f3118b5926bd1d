package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/repository"
	"github.com/supportly-beer/supportly-backend/internal/service"
	"github.com/supportly-beer/supportly-backend/pkg/log"
	"github.com/supportly-beer/supportly-backend/pkg/middleware"
	"github.com/supportly-beer/supportly-backend/pkg/response"
)

// Login handles credential login. Accounts with two-factor auth get a
// twofa_required response carrying the intermediate token.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid login request")
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		l.Error().Err(err).Msg("login failed")
		response.InternalError(c, "failed to login")
		return
	}

	response.Success(c, result)
}

// Twofa trades a TOTP code for an access token.
func (h *Handler) Twofa(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.TwofaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid twofa request")
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Twofa(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrWrongTwofaCode) {
			response.Unauthorized(c, "two-factor code is wrong")
			return
		}
		l.Error().Err(err).Msg("twofa failed")
		response.InternalError(c, "failed to verify two-factor code")
		return
	}

	response.Success(c, result)
}

// Validate reports whether the bearer token in the Authorization header
// is valid.
func (h *Handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	token := strings.TrimPrefix(c.GetHeader(middleware.AuthHeaderKey), middleware.BearerPrefix)
	if token == "" {
		response.BadRequest(c, "missing authorization header")
		return
	}

	result, err := h.authService.Validate(ctx, token)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("validate failed")
		response.InternalError(c, "failed to validate token")
		return
	}

	response.Success(c, result)
}

// Register creates an account and sends the verification mail.
func (h *Handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid register request")
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.Register(ctx, &req); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.Conflict(c, "user already exists")
			return
		}
		l.Error().Err(err).Msg("register failed")
		response.InternalError(c, "failed to register user")
		return
	}

	response.Created(c, gin.H{"message": "user created"})
}

// ValidateEmail confirms an email address.
func (h *Handler) ValidateEmail(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.ValidateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid validate-email request")
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ValidateEmail(ctx, &req); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrEmailAlreadyVerified):
			response.Success(c, gin.H{"message": "email already verified"})
		case errors.Is(err, service.ErrExpiredToken):
			response.BadRequest(c, "token expired, a new mail has been sent")
		case errors.Is(err, service.ErrInvalidToken):
			response.BadRequest(c, "invalid token")
		default:
			l.Error().Err(err).Msg("validate-email failed")
			response.InternalError(c, "failed to validate email")
		}
		return
	}

	response.Success(c, gin.H{"message": "email verified"})
}

// ForgotPassword sends a password-reset mail. Always reports success
// for unknown accounts.
func (h *Handler) ForgotPassword(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid forgot-password request")
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ForgotPassword(ctx, &req); err != nil {
		l.Error().Err(err).Msg("forgot-password failed")
		response.InternalError(c, "failed to send reset mail")
		return
	}

	response.Success(c, gin.H{"message": "reset mail sent"})
}

// ResetPassword sets a new password with a reset token.
func (h *Handler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid reset-password request")
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ResetPassword(ctx, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrExpiredToken), errors.Is(err, service.ErrInvalidToken):
			response.BadRequest(c, "invalid or expired token")
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		default:
			l.Error().Err(err).Msg("reset-password failed")
			response.InternalError(c, "failed to reset password")
		}
		return
	}

	response.Success(c, gin.H{"message": "password updated"})
}
