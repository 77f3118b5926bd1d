package repository

import (
	"context"
	"errors"

	"github.com/supportly-beer/supportly-backend/internal/domain"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already exists")
	ErrRoleNotFound   = errors.New("role not found")
	ErrTicketNotFound = errors.New("ticket not found")
	ErrFaqNotFound    = errors.New("faq entry not found")
)

// TimeRange bounds a statistics query to [Start, End] unix milliseconds.
// A nil *TimeRange means unbounded.
type TimeRange struct {
	Start int64
	End   int64
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.UserModel) error
	GetByID(ctx context.Context, id int64) (*domain.UserModel, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserModel, error)
	Update(ctx context.Context, user *domain.UserModel) error
	List(ctx context.Context, offset, limit int) ([]domain.UserModel, error)
	Count(ctx context.Context) (int64, error)
}

// RoleRepository defines the interface for role persistence.
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*domain.RoleModel, error)
	CreateAll(ctx context.Context, roles []domain.RoleModel) error
	Count(ctx context.Context) (int64, error)
}

// TicketRepository defines the interface for ticket persistence,
// including the durable chat transcript and the statistics queries
// behind the dashboards.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.TicketModel) error
	GetByIdentifier(ctx context.Context, identifier string) (*domain.TicketModel, error)
	GetByCreatorAndIdentifier(ctx context.Context, creatorID int64, identifier string) (*domain.TicketModel, error)
	Exists(ctx context.Context, identifier string) (bool, error)
	Update(ctx context.Context, ticket *domain.TicketModel) error
	List(ctx context.Context, offset, limit int) ([]domain.TicketModel, error)
	ListByCreator(ctx context.Context, creatorID int64, offset, limit int) ([]domain.TicketModel, error)
	ListByAssignee(ctx context.Context, assigneeID int64, offset, limit int) ([]domain.TicketModel, error)
	Count(ctx context.Context) (int64, error)

	// Transcript ops, ordered by timestamp then id; senders preloaded.
	AppendMessage(ctx context.Context, msg *domain.TicketMessageModel) error
	Messages(ctx context.Context, ticketID int64) ([]domain.TicketMessageModel, error)

	// Statistics. Count* filter created_at by r; AvgCloseTime* filter
	// closed_at by r, consider only FINISHED tickets and report the
	// mean of closed_at-created_at (ok=false when no ticket matches).
	CountByState(ctx context.Context, state domain.TicketState, r *TimeRange) (int64, error)
	CountByCreator(ctx context.Context, creatorID int64, r *TimeRange) (int64, error)
	CountByCreatorState(ctx context.Context, creatorID int64, states []domain.TicketState, r *TimeRange) (int64, error)
	CountByAssigneeState(ctx context.Context, assigneeID int64, states []domain.TicketState, r *TimeRange) (int64, error)
	AvgCloseTimeByCreator(ctx context.Context, creatorID int64, r *TimeRange) (float64, bool, error)
	AvgCloseTimeByAssignee(ctx context.Context, assigneeID int64, r *TimeRange) (float64, bool, error)
}

// FaqRepository defines the interface for FAQ persistence.
type FaqRepository interface {
	Create(ctx context.Context, entry *domain.FaqModel) error
	GetByID(ctx context.Context, id int64) (*domain.FaqModel, error)
	List(ctx context.Context, offset, limit int) ([]domain.FaqModel, error)
}
