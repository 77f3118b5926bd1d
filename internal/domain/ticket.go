package domain

// TicketDTO represents a ticket in API responses. ClosedAt and
// UpdatedAt are omitted until set.
type TicketDTO struct {
	Identifier  string        `json:"identifier"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CreatedAt   int64         `json:"created_at"`
	ClosedAt    *int64        `json:"closed_at,omitempty"`
	UpdatedAt   *int64        `json:"updated_at,omitempty"`
	Creator     UserDTO       `json:"creator"`
	Assignee    *UserDTO      `json:"assignee,omitempty"`
	State       TicketState   `json:"state"`
	Urgency     TicketUrgency `json:"urgency"`
}

// ToDTO converts a TicketModel to its API representation. Creator and
// assignee (with their roles) must be preloaded.
func (m *TicketModel) ToDTO() TicketDTO {
	dto := TicketDTO{
		Identifier:  m.Identifier,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		Creator:     m.Creator.ToDTO(),
		State:       m.State,
		Urgency:     m.Urgency,
	}
	if m.ClosedAt > 0 {
		closedAt := m.ClosedAt
		dto.ClosedAt = &closedAt
	}
	if m.UpdatedAt > 0 {
		updatedAt := m.UpdatedAt
		dto.UpdatedAt = &updatedAt
	}
	if m.Assignee != nil {
		assignee := m.Assignee.ToDTO()
		dto.Assignee = &assignee
	}
	return dto
}

// CreateTicketRequest opens a new ticket.
type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

// CreatedTicketResponse returns the generated ticket identifier.
type CreatedTicketResponse struct {
	Identifier string `json:"identifier"`
}

// TicketCountResponse reports the total number of tickets.
type TicketCountResponse struct {
	Count int64 `json:"count"`
}

// UpdateTicketRequest changes a ticket's state and/or urgency. Nil
// fields are left untouched.
type UpdateTicketRequest struct {
	State   *TicketState   `json:"state"`
	Urgency *TicketUrgency `json:"urgency"`
}

// AgentTicketStatistics is the agent dashboard summary.
// AverageTimePerTicket is the mean open-to-close time in milliseconds
// across the agent's finished tickets, -1 when none are finished.
type AgentTicketStatistics struct {
	GlobalTicketsOpen    int64 `json:"global_tickets_open"`
	YourTicketsOpen      int64 `json:"your_tickets_open"`
	YourTicketsClosed    int64 `json:"your_tickets_closed"`
	AverageTimePerTicket int64 `json:"average_time_per_ticket"`
}

// UserTicketStatistics is the customer dashboard summary.
// AverageTimePerTicket follows the same convention as the agent variant.
type UserTicketStatistics struct {
	YourTicketsCreated   int64 `json:"your_tickets_created"`
	YourTicketsClosed    int64 `json:"your_tickets_closed"`
	YourTicketsOpen      int64 `json:"your_tickets_open"`
	AverageTimePerTicket int64 `json:"average_time_per_ticket"`
}

// TicketSearchResult is one hit of a full-text ticket search.
type TicketSearchResult struct {
	ID          int64  `json:"id"`
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SearchResult wraps the hits of a full-text ticket search. TimeTook is
// the search engine's reported latency in milliseconds.
type SearchResult struct {
	Query       string               `json:"query"`
	ResultCount int                  `json:"result_count"`
	TimeTook    int                  `json:"time_took"`
	Results     []TicketSearchResult `json:"results"`
}
