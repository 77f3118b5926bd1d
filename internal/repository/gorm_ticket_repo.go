package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/supportly-beer/supportly-backend/internal/domain"
)

// GormTicketRepository implements TicketRepository using GORM.
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GORM-based ticket repository.
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// Create creates a new ticket.
func (r *GormTicketRepository) Create(ctx context.Context, ticket *domain.TicketModel) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *GormTicketRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.TicketModel, error) {
	var model domain.TicketModel
	result := r.db.WithContext(ctx).
		Preload("Creator.Role").
		Preload("Assignee.Role").
		First(&model, append([]interface{}{query}, args...)...)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

// GetByIdentifier retrieves a ticket by its public identifier.
func (r *GormTicketRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.TicketModel, error) {
	return r.getOne(ctx, "identifier = ?", identifier)
}

// GetByCreatorAndIdentifier retrieves a ticket by identifier, scoped to
// its creator.
func (r *GormTicketRepository) GetByCreatorAndIdentifier(ctx context.Context, creatorID int64, identifier string) (*domain.TicketModel, error) {
	return r.getOne(ctx, "creator_id = ? AND identifier = ?", creatorID, identifier)
}

// Exists reports whether a ticket with the given identifier exists.
func (r *GormTicketRepository) Exists(ctx context.Context, identifier string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&domain.TicketModel{}).
		Where("identifier = ?", identifier).
		Count(&count)
	return count > 0, result.Error
}

// Update persists the mutable ticket fields.
func (r *GormTicketRepository) Update(ctx context.Context, ticket *domain.TicketModel) error {
	result := r.db.WithContext(ctx).Model(&domain.TicketModel{}).
		Where("id = ?", ticket.ID).
		Updates(map[string]interface{}{
			"state":       ticket.State,
			"urgency":     ticket.Urgency,
			"assignee_id": ticket.AssigneeID,
			"closed_at":   ticket.ClosedAt,
			"updated_at":  ticket.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (r *GormTicketRepository) list(ctx context.Context, offset, limit int, conds func(*gorm.DB) *gorm.DB) ([]domain.TicketModel, error) {
	var models []domain.TicketModel
	query := r.db.WithContext(ctx).
		Preload("Creator.Role").
		Preload("Assignee.Role").
		Order("id").
		Offset(offset).
		Limit(limit)
	if conds != nil {
		query = conds(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// List returns a page of all tickets ordered by id.
func (r *GormTicketRepository) List(ctx context.Context, offset, limit int) ([]domain.TicketModel, error) {
	return r.list(ctx, offset, limit, nil)
}

// ListByCreator returns a page of tickets created by the given user.
func (r *GormTicketRepository) ListByCreator(ctx context.Context, creatorID int64, offset, limit int) ([]domain.TicketModel, error) {
	return r.list(ctx, offset, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("creator_id = ?", creatorID)
	})
}

// ListByAssignee returns a page of tickets assigned to the given user.
func (r *GormTicketRepository) ListByAssignee(ctx context.Context, assigneeID int64, offset, limit int) ([]domain.TicketModel, error) {
	return r.list(ctx, offset, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("assignee_id = ?", assigneeID)
	})
}

// Count returns the total number of tickets.
func (r *GormTicketRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&domain.TicketModel{}).Count(&count)
	return count, result.Error
}

// AppendMessage appends a message to the ticket's durable transcript.
func (r *GormTicketRepository) AppendMessage(ctx context.Context, msg *domain.TicketMessageModel) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Messages returns the ticket's transcript in log order with senders
// preloaded.
func (r *GormTicketRepository) Messages(ctx context.Context, ticketID int64) ([]domain.TicketMessageModel, error) {
	var models []domain.TicketMessageModel
	result := r.db.WithContext(ctx).
		Preload("Sender").
		Where("ticket_id = ?", ticketID).
		Order("timestamp, id").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return models, nil
}

func withCreatedAtRange(q *gorm.DB, tr *TimeRange) *gorm.DB {
	if tr != nil {
		q = q.Where("created_at BETWEEN ? AND ?", tr.Start, tr.End)
	}
	return q
}

// CountByState counts tickets in the given state, optionally bounded by
// creation time.
func (r *GormTicketRepository) CountByState(ctx context.Context, state domain.TicketState, tr *TimeRange) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.TicketModel{}).Where("state = ?", state)
	result := withCreatedAtRange(q, tr).Count(&count)
	return count, result.Error
}

// CountByCreator counts tickets created by the given user, optionally
// bounded by creation time.
func (r *GormTicketRepository) CountByCreator(ctx context.Context, creatorID int64, tr *TimeRange) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.TicketModel{}).Where("creator_id = ?", creatorID)
	result := withCreatedAtRange(q, tr).Count(&count)
	return count, result.Error
}

// CountByCreatorState counts the creator's tickets in any of the given
// states, optionally bounded by creation time.
func (r *GormTicketRepository) CountByCreatorState(ctx context.Context, creatorID int64, states []domain.TicketState, tr *TimeRange) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.TicketModel{}).
		Where("creator_id = ? AND state IN ?", creatorID, states)
	result := withCreatedAtRange(q, tr).Count(&count)
	return count, result.Error
}

// CountByAssigneeState counts the assignee's tickets in any of the
// given states, optionally bounded by creation time.
func (r *GormTicketRepository) CountByAssigneeState(ctx context.Context, assigneeID int64, states []domain.TicketState, tr *TimeRange) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.TicketModel{}).
		Where("assignee_id = ? AND state IN ?", assigneeID, states)
	result := withCreatedAtRange(q, tr).Count(&count)
	return count, result.Error
}

func (r *GormTicketRepository) avgCloseTime(ctx context.Context, column string, userID int64, tr *TimeRange) (float64, bool, error) {
	var avg *float64
	q := r.db.WithContext(ctx).Model(&domain.TicketModel{}).
		Select("AVG(closed_at - created_at)").
		Where(column+" = ? AND state = ?", userID, domain.TicketStateFinished)
	if tr != nil {
		q = q.Where("closed_at BETWEEN ? AND ?", tr.Start, tr.End)
	}
	if err := q.Scan(&avg).Error; err != nil {
		return 0, false, err
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

// AvgCloseTimeByCreator reports the creator's mean open-to-close time
// over finished tickets, optionally bounded by closing time.
func (r *GormTicketRepository) AvgCloseTimeByCreator(ctx context.Context, creatorID int64, tr *TimeRange) (float64, bool, error) {
	return r.avgCloseTime(ctx, "creator_id", creatorID, tr)
}

// AvgCloseTimeByAssignee reports the assignee's mean open-to-close time
// over finished tickets, optionally bounded by closing time.
func (r *GormTicketRepository) AvgCloseTimeByAssignee(ctx context.Context, assigneeID int64, tr *TimeRange) (float64, bool, error) {
	return r.avgCloseTime(ctx, "assignee_id", assigneeID, tr)
}
