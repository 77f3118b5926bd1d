package chat

import "context"

// Message is one entry of a ticket's durable message log, already joined
// with the sender's display data.
type Message struct {
	SenderID          int64
	SenderDisplayName string
	SenderAvatarURL   string
	Body              string
	Timestamp         int64
}

// Directory is the registry's view of the durable ticket store. All of
// these calls may be slow; the registry treats them as collaborator
// boundaries and never rolls back in-memory state when they fail.
type Directory interface {
	// TicketExists reports whether a ticket with the given identifier exists.
	TicketExists(ctx context.Context, roomID string) (bool, error)

	// SenderExists reports whether a user with the given id exists.
	SenderExists(ctx context.Context, senderID int64) (bool, error)

	// Transcript returns the ticket's durable message log in log order.
	// Returns ErrTicketNotFound when the ticket does not exist.
	Transcript(ctx context.Context, roomID string) ([]Message, error)

	// AppendMessage appends a chat message to the ticket's durable log.
	AppendMessage(ctx context.Context, roomID string, senderID int64, timestamp int64, body string) error
}
