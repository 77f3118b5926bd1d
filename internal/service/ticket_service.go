package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/supportly-beer/supportly-backend/internal/audit"
	"github.com/supportly-beer/supportly-backend/internal/cache"
	"github.com/supportly-beer/supportly-backend/internal/chat"
	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/repository"
	"github.com/supportly-beer/supportly-backend/internal/search"
	"github.com/supportly-beer/supportly-backend/pkg/log"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrInvalidState   = errors.New("invalid ticket state")
	ErrInvalidUrgency = errors.New("invalid ticket urgency")
)

const cacheSetTimeout = 2 * time.Second

// ticketServiceImpl implements TicketService.
type ticketServiceImpl struct {
	tickets  repository.TicketRepository
	users    repository.UserRepository
	index    search.TicketIndex
	cache    cache.SearchCache
	cacheTTL time.Duration
	sf       singleflight.Group
}

// NewTicketService creates a new ticket service.
func NewTicketService(
	tickets repository.TicketRepository,
	users repository.UserRepository,
	index search.TicketIndex,
	searchCache cache.SearchCache,
	cacheTTL time.Duration,
) TicketService {
	return &ticketServiceImpl{
		tickets:  tickets,
		users:    users,
		index:    index,
		cache:    searchCache,
		cacheTTL: cacheTTL,
	}
}

// CreateTicket opens a new ticket with a sequential TICKET-n identifier
// and indexes it for full-text search.
func (s *ticketServiceImpl) CreateTicket(ctx context.Context, creatorID int64, req *domain.CreateTicketRequest) (*domain.CreatedTicketResponse, error) {
	l := log.Ctx(ctx)

	count, err := s.tickets.Count(ctx)
	if err != nil {
		l.Error().Err(err).Msg("failed to count tickets")
		return nil, err
	}

	ticket := &domain.TicketModel{
		Identifier:  fmt.Sprintf("TICKET-%d", count+1),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now().UnixMilli(),
		CreatorID:   creatorID,
		State:       domain.TicketStateOpen,
		Urgency:     domain.TicketUrgencyNormal,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		l.Error().Err(err).Msg("failed to create ticket")
		return nil, err
	}

	// Indexing is best-effort; the ticket is usable without search.
	if err := s.index.Index(ctx, search.TicketDocument{
		ID:          ticket.ID,
		Identifier:  ticket.Identifier,
		Title:       ticket.Title,
		Description: ticket.Description,
	}); err != nil {
		l.Error().Err(err).Str(log.FieldTicket, ticket.Identifier).Msg("failed to index ticket")
	}

	audit.LogWithDetail(ctx, audit.ActionTicketCreate, creatorID, ticket.Identifier, "ticket created")
	return &domain.CreatedTicketResponse{Identifier: ticket.Identifier}, nil
}

// GetTicket returns a ticket by its public identifier.
func (s *ticketServiceImpl) GetTicket(ctx context.Context, identifier string) (*domain.TicketDTO, error) {
	ticket, err := s.tickets.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	dto := ticket.ToDTO()
	return &dto, nil
}

// GetMyTicket returns a ticket by identifier, but only when the given
// user created it.
func (s *ticketServiceImpl) GetMyTicket(ctx context.Context, userID int64, identifier string) (*domain.TicketDTO, error) {
	ticket, err := s.tickets.GetByCreatorAndIdentifier(ctx, userID, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	dto := ticket.ToDTO()
	return &dto, nil
}

// ListTickets returns a page of all tickets.
func (s *ticketServiceImpl) ListTickets(ctx context.Context, start, limit int) ([]domain.TicketDTO, error) {
	tickets, err := s.tickets.List(ctx, start*limit, limit)
	if err != nil {
		return nil, err
	}
	return toTicketDTOs(tickets), nil
}

// ListMyTickets returns the user's ticket page: agents and
// administrators see tickets assigned to them, customers see tickets
// they created.
func (s *ticketServiceImpl) ListMyTickets(ctx context.Context, userID int64, role string, start, limit int) ([]domain.TicketDTO, error) {
	var (
		tickets []domain.TicketModel
		err     error
	)
	switch role {
	case domain.RoleAgent, domain.RoleAdministrator:
		tickets, err = s.tickets.ListByAssignee(ctx, userID, start*limit, limit)
	default:
		tickets, err = s.tickets.ListByCreator(ctx, userID, start*limit, limit)
	}
	if err != nil {
		return nil, err
	}
	return toTicketDTOs(tickets), nil
}

// AssignTicket assigns the ticket to the acting agent.
func (s *ticketServiceImpl) AssignTicket(ctx context.Context, userID int64, identifier string) error {
	ticket, err := s.tickets.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return ErrTicketNotFound
		}
		return err
	}

	ticket.AssigneeID = &userID
	ticket.State = domain.TicketStateAssigned
	ticket.UpdatedAt = time.Now().UnixMilli()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return err
	}

	audit.LogWithDetail(ctx, audit.ActionTicketAssign, userID, identifier, "ticket assigned")
	return nil
}

// UpdateTicket changes a ticket's state and/or urgency. Entering a
// terminal state stamps the closing time.
func (s *ticketServiceImpl) UpdateTicket(ctx context.Context, actorID int64, identifier string, req *domain.UpdateTicketRequest) error {
	ticket, err := s.tickets.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return ErrTicketNotFound
		}
		return err
	}

	now := time.Now().UnixMilli()
	if req.State != nil {
		if !req.State.Valid() {
			return ErrInvalidState
		}
		ticket.State = *req.State
		if (ticket.State == domain.TicketStateFinished || ticket.State == domain.TicketStateTerminated) && ticket.ClosedAt == 0 {
			ticket.ClosedAt = now
		}
	}
	if req.Urgency != nil {
		if !req.Urgency.Valid() {
			return ErrInvalidUrgency
		}
		ticket.Urgency = *req.Urgency
	}
	ticket.UpdatedAt = now

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return err
	}

	audit.LogWithDetail(ctx, audit.ActionTicketUpdate, actorID, identifier, "ticket updated")
	return nil
}

// AgentStatistics computes the agent dashboard numbers, optionally
// bounded to a time range. The count queries run in parallel.
func (s *ticketServiceImpl) AgentStatistics(ctx context.Context, userID int64, tr *repository.TimeRange) (*domain.AgentTicketStatistics, error) {
	var stats domain.AgentTicketStatistics
	var avg float64
	var hasAvg bool

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.GlobalTicketsOpen, err = s.tickets.CountByState(gCtx, domain.TicketStateOpen, tr)
		return err
	})
	g.Go(func() error {
		var err error
		stats.YourTicketsOpen, err = s.tickets.CountByAssigneeState(gCtx, userID,
			[]domain.TicketState{domain.TicketStateOpen, domain.TicketStateAssigned}, tr)
		return err
	})
	g.Go(func() error {
		var err error
		stats.YourTicketsClosed, err = s.tickets.CountByAssigneeState(gCtx, userID,
			[]domain.TicketState{domain.TicketStateFinished}, tr)
		return err
	})
	g.Go(func() error {
		var err error
		avg, hasAvg, err = s.tickets.AvgCloseTimeByAssignee(gCtx, userID, tr)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.AverageTimePerTicket = roundedAvg(avg, hasAvg)
	return &stats, nil
}

// UserStatistics computes the customer dashboard numbers, optionally
// bounded to a time range.
func (s *ticketServiceImpl) UserStatistics(ctx context.Context, userID int64, tr *repository.TimeRange) (*domain.UserTicketStatistics, error) {
	var stats domain.UserTicketStatistics
	var avg float64
	var hasAvg bool

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.YourTicketsCreated, err = s.tickets.CountByCreator(gCtx, userID, tr)
		return err
	})
	g.Go(func() error {
		var err error
		stats.YourTicketsOpen, err = s.tickets.CountByCreatorState(gCtx, userID,
			[]domain.TicketState{domain.TicketStateOpen, domain.TicketStateAssigned}, tr)
		return err
	})
	g.Go(func() error {
		var err error
		stats.YourTicketsClosed, err = s.tickets.CountByCreatorState(gCtx, userID,
			[]domain.TicketState{domain.TicketStateFinished}, tr)
		return err
	})
	g.Go(func() error {
		var err error
		avg, hasAvg, err = s.tickets.AvgCloseTimeByCreator(gCtx, userID, tr)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.AverageTimePerTicket = roundedAvg(avg, hasAvg)
	return &stats, nil
}

// roundedAvg maps "no finished tickets" to -1 so dashboards can tell
// the cases apart.
func roundedAvg(avg float64, ok bool) int64 {
	if !ok {
		return -1
	}
	return int64(math.Round(avg))
}

// SearchTickets runs a full-text search, served from the redis cache
// when possible. Concurrent identical queries are collapsed.
func (s *ticketServiceImpl) SearchTickets(ctx context.Context, query string, limit int) (*domain.SearchResult, error) {
	key := s.cache.BuildKey(query, limit)

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Ctx(ctx).Warn().Err(err).Msg("cache get error")
		}

		res, err := s.index.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}

		s.asyncCacheSet(key, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.SearchResult), nil
}

func (s *ticketServiceImpl) asyncCacheSet(key string, res *domain.SearchResult) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cacheSetTimeout)
		defer cancel()
		if err := s.cache.Set(ctx, key, res, s.cacheTTL); err != nil {
			log.L().Warn().Err(err).Msg("cache set error")
		}
	}()
}

// CountTickets reports the total number of tickets.
func (s *ticketServiceImpl) CountTickets(ctx context.Context) (int64, error) {
	return s.tickets.Count(ctx)
}

// TicketExists reports whether the chat room's ticket exists.
func (s *ticketServiceImpl) TicketExists(ctx context.Context, roomID string) (bool, error) {
	return s.tickets.Exists(ctx, roomID)
}

// SenderExists reports whether the chat sender resolves to an account.
func (s *ticketServiceImpl) SenderExists(ctx context.Context, senderID int64) (bool, error) {
	_, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Transcript loads the ticket's durable chat log for room seeding.
func (s *ticketServiceImpl) Transcript(ctx context.Context, roomID string) ([]chat.Message, error) {
	ticket, err := s.tickets.GetByIdentifier(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, chat.ErrTicketNotFound
		}
		return nil, err
	}

	messages, err := s.tickets.Messages(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}

	transcript := make([]chat.Message, 0, len(messages))
	for i := range messages {
		msg := &messages[i]
		transcript = append(transcript, chat.Message{
			SenderID:          msg.SenderID,
			SenderDisplayName: msg.Sender.DisplayName(),
			SenderAvatarURL:   msg.Sender.ProfilePictureURL,
			Body:              msg.Content,
			Timestamp:         msg.Timestamp,
		})
	}
	return transcript, nil
}

// AppendMessage appends a chat message to the ticket's durable log.
// Ticket and sender must both exist.
func (s *ticketServiceImpl) AppendMessage(ctx context.Context, roomID string, senderID int64, timestamp int64, body string) error {
	ticket, err := s.tickets.GetByIdentifier(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return chat.ErrTicketNotFound
		}
		return err
	}

	if _, err := s.users.GetByID(ctx, senderID); err != nil {
		return err
	}

	return s.tickets.AppendMessage(ctx, &domain.TicketMessageModel{
		TicketID:  ticket.ID,
		SenderID:  senderID,
		Content:   body,
		Timestamp: timestamp,
	})
}

func toTicketDTOs(tickets []domain.TicketModel) []domain.TicketDTO {
	dtos := make([]domain.TicketDTO, 0, len(tickets))
	for i := range tickets {
		dtos = append(dtos, tickets[i].ToDTO())
	}
	return dtos
}
