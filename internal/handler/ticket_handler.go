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

const defaultSearchLimit = 20

// AgentStatistics returns the agent dashboard numbers, optionally
// bounded by startDate/endDate (unix milliseconds).
func (h *Handler) AgentStatistics(c *gin.Context) {
	ctx := c.Request.Context()

	tr, ok := timeRangeParams(c)
	if !ok {
		return
	}

	stats, err := h.ticketService.AgentStatistics(ctx, middleware.GetUserID(c), tr)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("agent statistics failed")
		response.InternalError(c, "failed to compute statistics")
		return
	}

	response.Success(c, stats)
}

// UserStatistics returns the customer dashboard numbers.
func (h *Handler) UserStatistics(c *gin.Context) {
	ctx := c.Request.Context()

	tr, ok := timeRangeParams(c)
	if !ok {
		return
	}

	stats, err := h.ticketService.UserStatistics(ctx, middleware.GetUserID(c), tr)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("user statistics failed")
		response.InternalError(c, "failed to compute statistics")
		return
	}

	response.Success(c, stats)
}

// GetTicket returns any ticket by identifier.
func (h *Handler) GetTicket(c *gin.Context) {
	ctx := c.Request.Context()

	ticket, err := h.ticketService.GetTicket(ctx, c.Param("identifier"))
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.NotFound(c, "ticket not found")
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("get ticket failed")
		response.InternalError(c, "failed to load ticket")
		return
	}

	response.Success(c, ticket)
}

// ListTickets returns a page of all tickets.
func (h *Handler) ListTickets(c *gin.Context) {
	ctx := c.Request.Context()

	start, limit, ok := pageParams(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListTickets(ctx, start, limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("list tickets failed")
		response.InternalError(c, "failed to list tickets")
		return
	}

	response.Success(c, tickets)
}

// SearchTickets runs a full-text ticket search.
func (h *Handler) SearchTickets(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "query parameter is required")
		return
	}
	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	result, err := h.ticketService.SearchTickets(ctx, query, limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("ticket search failed")
		response.InternalError(c, "failed to search tickets")
		return
	}

	response.Success(c, result)
}

// CountTickets reports the total number of tickets.
func (h *Handler) CountTickets(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.ticketService.CountTickets(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("count tickets failed")
		response.InternalError(c, "failed to count tickets")
		return
	}

	response.Success(c, domain.TicketCountResponse{Count: count})
}

// CreateTicket opens a new ticket for the acting user.
func (h *Handler) CreateTicket(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid create ticket request")
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.ticketService.CreateTicket(ctx, middleware.GetUserID(c), &req)
	if err != nil {
		l.Error().Err(err).Msg("create ticket failed")
		response.InternalError(c, "failed to create ticket")
		return
	}

	response.Created(c, created)
}

// AssignTicket assigns the ticket to the acting agent.
func (h *Handler) AssignTicket(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.ticketService.AssignTicket(ctx, middleware.GetUserID(c), c.Param("identifier")); err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.NotFound(c, "ticket not found")
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("assign ticket failed")
		response.InternalError(c, "failed to assign ticket")
		return
	}

	response.Success(c, gin.H{"message": "ticket assigned"})
}

// UpdateTicket changes state and/or urgency of a ticket.
func (h *Handler) UpdateTicket(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid update ticket request")
		response.BadRequest(c, err.Error())
		return
	}

	err := h.ticketService.UpdateTicket(ctx, middleware.GetUserID(c), c.Param("identifier"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			response.NotFound(c, "ticket not found")
		case errors.Is(err, service.ErrInvalidState), errors.Is(err, service.ErrInvalidUrgency):
			response.BadRequest(c, err.Error())
		default:
			l.Error().Err(err).Msg("update ticket failed")
			response.InternalError(c, "failed to update ticket")
		}
		return
	}

	response.Success(c, gin.H{"message": "ticket updated"})
}

// ListMyTickets returns the acting user's ticket page: assigned tickets
// for agents, created tickets for customers.
func (h *Handler) ListMyTickets(c *gin.Context) {
	ctx := c.Request.Context()

	start, limit, ok := pageParams(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListMyTickets(ctx,
		middleware.GetUserID(c), middleware.GetRole(c), start, limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("list my tickets failed")
		response.InternalError(c, "failed to list tickets")
		return
	}

	response.Success(c, tickets)
}

// GetMyTicket returns one of the acting user's own tickets.
func (h *Handler) GetMyTicket(c *gin.Context) {
	ctx := c.Request.Context()

	ticket, err := h.ticketService.GetMyTicket(ctx, middleware.GetUserID(c), c.Param("identifier"))
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.NotFound(c, "ticket not found")
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("get my ticket failed")
		response.InternalError(c, "failed to load ticket")
		return
	}

	response.Success(c, ticket)
}

// timeRangeParams reads the optional startDate/endDate pair. Both must
// be present to take effect; a lone one is rejected.
func timeRangeParams(c *gin.Context) (*repository.TimeRange, bool) {
	rawStart := c.Query("startDate")
	rawEnd := c.Query("endDate")
	if rawStart == "" && rawEnd == "" {
		return nil, true
	}
	if rawStart == "" || rawEnd == "" {
		response.BadRequest(c, "startDate and endDate must be given together")
		return nil, false
	}

	start, err := strconv.ParseInt(rawStart, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid startDate parameter")
		return nil, false
	}
	end, err := strconv.ParseInt(rawEnd, 10, 64)
	if err != nil || end < start {
		response.BadRequest(c, "invalid endDate parameter")
		return nil, false
	}

	return &repository.TimeRange{Start: start, End: end}, true
}
