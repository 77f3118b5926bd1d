package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/repository"
	"github.com/supportly-beer/supportly-backend/internal/service"
	"github.com/supportly-beer/supportly-backend/pkg/log"
	"github.com/supportly-beer/supportly-backend/pkg/middleware"
	"github.com/supportly-beer/supportly-backend/pkg/response"
)

const maxProfilePictureSize = 5 << 20 // 5 MiB

// GetMe returns the acting user.
func (h *Handler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.userService.GetUser(ctx, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("get me failed")
		response.InternalError(c, "failed to load user")
		return
	}

	response.Success(c, user)
}

// GetUser returns a user by id.
func (h *Handler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("get user failed")
		response.InternalError(c, "failed to load user")
		return
	}

	response.Success(c, user)
}

// EnableTwofa enables two-factor auth and returns the enrollment QR
// code.
func (h *Handler) EnableTwofa(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.userService.EnableTwofa(ctx, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrTwofaAlreadyEnabled) {
			response.BadRequest(c, "two-factor auth already enabled")
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("enable twofa failed")
		response.InternalError(c, "failed to enable two-factor auth")
		return
	}

	response.Success(c, result)
}

// DisableTwofa turns two-factor auth off.
func (h *Handler) DisableTwofa(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.userService.DisableTwofa(ctx, middleware.GetUserID(c)); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("disable twofa failed")
		response.InternalError(c, "failed to disable two-factor auth")
		return
	}

	response.Success(c, gin.H{"message": "two-factor auth disabled"})
}

// UploadProfilePicture stores a new profile picture from a multipart
// form and returns its public URL.
func (h *Handler) UploadProfilePicture(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	file, err := c.FormFile("profilePicture")
	if err != nil {
		response.BadRequest(c, "profilePicture file is required")
		return
	}
	if file.Size > maxProfilePictureSize {
		response.BadRequest(c, "profile picture too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		l.Error().Err(err).Msg("failed to open uploaded file")
		response.InternalError(c, "failed to read upload")
		return
	}
	defer src.Close()

	url, err := h.userService.UploadProfilePicture(ctx, middleware.GetUserID(c),
		file.Filename, file.Header.Get("Content-Type"), src, file.Size)
	if err != nil {
		l.Error().Err(err).Msg("profile picture upload failed")
		response.InternalError(c, "failed to store profile picture")
		return
	}

	response.Success(c, gin.H{"profile_picture_url": url})
}

// UpdateUser applies a self-service profile update.
func (h *Handler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid update user request")
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.userService.UpdateUser(ctx, middleware.GetUserID(c), &req); err != nil {
		l.Error().Err(err).Msg("update user failed")
		response.InternalError(c, "failed to update user")
		return
	}

	response.Success(c, gin.H{"message": "user updated"})
}

// UpdateRole changes another user's role.
func (h *Handler) UpdateRole(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid update role request")
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.userService.UpdateRole(ctx, middleware.GetUserID(c), &req); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrUnknownRole):
			response.BadRequest(c, "unknown role")
		default:
			l.Error().Err(err).Msg("update role failed")
			response.InternalError(c, "failed to update role")
		}
		return
	}

	response.Success(c, gin.H{"message": "role updated"})
}

// ListUsers returns a page of users.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	start, limit, ok := pageParams(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(ctx, start, limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("list users failed")
		response.InternalError(c, "failed to list users")
		return
	}

	response.Success(c, users)
}

// CountUsers reports the total number of accounts.
func (h *Handler) CountUsers(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.userService.CountUsers(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("count users failed")
		response.InternalError(c, "failed to count users")
		return
	}

	response.Success(c, domain.UserCountResponse{Count: count})
}

// pageParams reads the required start/limit paging query parameters.
// Writes the error response itself when they are missing or invalid.
func pageParams(c *gin.Context) (start, limit int, ok bool) {
	var err error
	start, err = strconv.Atoi(c.Query("start"))
	if err != nil || start < 0 {
		response.BadRequest(c, "invalid start parameter")
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		response.BadRequest(c, "invalid limit parameter")
		return 0, 0, false
	}
	return start, limit, true
}
