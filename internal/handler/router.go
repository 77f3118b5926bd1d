package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/service"
	"github.com/supportly-beer/supportly-backend/pkg/middleware"
)

// Handler handles the HTTP API.
type Handler struct {
	authService    service.AuthService
	userService    service.UserService
	ticketService  service.TicketService
	faqService     service.FaqService
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler creates a new HTTP handler.
func NewHandler(
	authService service.AuthService,
	userService service.UserService,
	ticketService service.TicketService,
	faqService service.FaqService,
	authMiddleware *middleware.AuthMiddleware,
) *Handler {
	return &Handler{
		authService:    authService,
		userService:    userService,
		ticketService:  ticketService,
		faqService:     faqService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	agents := h.authMiddleware.RequireRoles(domain.RoleAgent, domain.RoleAdministrator)
	admins := h.authMiddleware.RequireRoles(domain.RoleAdministrator)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/twofa", h.Twofa)
		auth.GET("/validate", h.Validate)
		auth.POST("/register", h.Register)
		auth.POST("/validate-email", h.ValidateEmail)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}

	user := r.Group("/user")
	user.Use(h.authMiddleware.RequireAuth())
	{
		user.GET("", h.GetMe)
		user.GET("/:userId", h.GetUser)
		user.POST("/enableTwofa", h.EnableTwofa)
		user.POST("/disableTwofa", h.DisableTwofa)
		user.POST("/upload", h.UploadProfilePicture)
		user.POST("/update", h.UpdateUser)
		user.POST("/updateRole", admins, h.UpdateRole)
		user.GET("/all", admins, h.ListUsers)
		user.GET("/count", admins, h.CountUsers)
	}

	ticket := r.Group("/ticket")
	ticket.Use(h.authMiddleware.RequireAuth())
	{
		ticket.GET("/statistics/agent", agents, h.AgentStatistics)
		ticket.GET("/statistics/user", h.UserStatistics)
		ticket.GET("/all", agents, h.ListTickets)
		ticket.GET("/count", agents, h.CountTickets)
		ticket.GET("/search", agents, h.SearchTickets)
		ticket.GET("/my", h.ListMyTickets)
		ticket.GET("/my/:identifier", h.GetMyTicket)
		ticket.POST("", h.CreateTicket)
		ticket.GET("/:identifier", agents, h.GetTicket)
		ticket.POST("/:identifier/assign", agents, h.AssignTicket)
		ticket.POST("/:identifier/update", agents, h.UpdateTicket)
	}

	faq := r.Group("/faq")
	faq.Use(h.authMiddleware.RequireAuth())
	{
		faq.GET("", h.ListFaqEntries)
		faq.GET("/:id", h.GetFaqEntry)
		faq.POST("", agents, h.CreateFaqEntry)
	}
}
