package search

import (
	"context"

	"github.com/supportly-beer/supportly-backend/internal/domain"
)

// TicketDocument is the slice of a ticket that is indexed for full-text
// search.
type TicketDocument struct {
	ID          int64  `json:"id"`
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TicketIndex defines the interface for the full-text ticket index.
type TicketIndex interface {
	Index(ctx context.Context, doc TicketDocument) error
	Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error)
}
