package service

import (
	"context"
	"io"

	"github.com/supportly-beer/supportly-backend/internal/chat"
	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/repository"
)

// AuthService handles login, two-factor auth and the token-driven
// account mails.
type AuthService interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.TokenResponse, error)
	Twofa(ctx context.Context, req *domain.TwofaRequest) (*domain.TokenResponse, error)
	Validate(ctx context.Context, token string) (*domain.ValidateResponse, error)
	Register(ctx context.Context, req *domain.CreateUserRequest) error
	ValidateEmail(ctx context.Context, req *domain.ValidateEmailRequest) error
	ForgotPassword(ctx context.Context, req *domain.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *domain.ResetPasswordRequest) error
}

// UserService handles account management. It doubles as the
// middleware's role resolver.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (*domain.UserDTO, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.UserDTO, error)
	ListUsers(ctx context.Context, start, limit int) ([]domain.UserDTO, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, userID int64, req *domain.UpdateUserRequest) error
	UpdateRole(ctx context.Context, actorID int64, req *domain.UpdateRoleRequest) error
	EnableTwofa(ctx context.Context, userID int64) (*domain.TwofaEnabledResponse, error)
	DisableTwofa(ctx context.Context, userID int64) error
	UploadProfilePicture(ctx context.Context, userID int64, filename, contentType string, r io.Reader, size int64) (string, error)

	ResolveRole(email string) (string, error)
}

// TicketService handles the ticket lifecycle, the dashboards and
// full-text search. It also backs the live chat as its durable
// directory.
type TicketService interface {
	chat.Directory

	CreateTicket(ctx context.Context, creatorID int64, req *domain.CreateTicketRequest) (*domain.CreatedTicketResponse, error)
	GetTicket(ctx context.Context, identifier string) (*domain.TicketDTO, error)
	GetMyTicket(ctx context.Context, userID int64, identifier string) (*domain.TicketDTO, error)
	ListTickets(ctx context.Context, start, limit int) ([]domain.TicketDTO, error)
	ListMyTickets(ctx context.Context, userID int64, role string, start, limit int) ([]domain.TicketDTO, error)
	AssignTicket(ctx context.Context, userID int64, identifier string) error
	UpdateTicket(ctx context.Context, actorID int64, identifier string, req *domain.UpdateTicketRequest) error
	AgentStatistics(ctx context.Context, userID int64, tr *repository.TimeRange) (*domain.AgentTicketStatistics, error)
	UserStatistics(ctx context.Context, userID int64, tr *repository.TimeRange) (*domain.UserTicketStatistics, error)
	SearchTickets(ctx context.Context, query string, limit int) (*domain.SearchResult, error)
	CountTickets(ctx context.Context) (int64, error)
}

// FaqService handles the public FAQ.
type FaqService interface {
	GetEntry(ctx context.Context, id int64) (*domain.FaqDTO, error)
	ListEntries(ctx context.Context, start, limit int) ([]domain.FaqDTO, error)
	CreateEntry(ctx context.Context, creatorID int64, req *domain.CreateFaqRequest) error
}
