package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/service"
	"github.com/supportly-beer/supportly-backend/pkg/log"
	"github.com/supportly-beer/supportly-backend/pkg/middleware"
	"github.com/supportly-beer/supportly-backend/pkg/response"
)

// GetFaqEntry returns a single FAQ entry.
func (h *Handler) GetFaqEntry(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid faq id")
		return
	}

	entry, err := h.faqService.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			response.NotFound(c, "faq entry not found")
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("get faq entry failed")
		response.InternalError(c, "failed to load faq entry")
		return
	}

	response.Success(c, entry)
}

// ListFaqEntries returns a page of FAQ entries.
func (h *Handler) ListFaqEntries(c *gin.Context) {
	ctx := c.Request.Context()

	start, limit, ok := pageParams(c)
	if !ok {
		return
	}

	entries, err := h.faqService.ListEntries(ctx, start, limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("list faq entries failed")
		response.InternalError(c, "failed to list faq entries")
		return
	}

	response.Success(c, entries)
}

// CreateFaqEntry creates a new FAQ entry.
func (h *Handler) CreateFaqEntry(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.CreateFaqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid create faq request")
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.faqService.CreateEntry(ctx, middleware.GetUserID(c), &req); err != nil {
		l.Error().Err(err).Msg("create faq entry failed")
		response.InternalError(c, "failed to create faq entry")
		return
	}

	response.Created(c, gin.H{"message": "faq entry created"})
}
