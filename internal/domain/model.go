package domain

import (
	"time"
)

// Role names. Every user carries exactly one role.
const (
	RoleUser          = "ROLE_USER"
	RoleAgent         = "ROLE_AGENT"
	RoleAdministrator = "ROLE_ADMINISTRATOR"
)

// TicketState is the lifecycle state of a ticket.
type TicketState string

const (
	TicketStateOpen       TicketState = "OPEN"
	TicketStateAssigned   TicketState = "ASSIGNED"
	TicketStateOnHold     TicketState = "ON_HOLD"
	TicketStateFinished   TicketState = "FINISHED"
	TicketStateTerminated TicketState = "TERMINATED"
)

func (s TicketState) Valid() bool {
	switch s {
	case TicketStateOpen, TicketStateAssigned, TicketStateOnHold, TicketStateFinished, TicketStateTerminated:
		return true
	}
	return false
}

// TicketUrgency is the customer-facing priority of a ticket.
type TicketUrgency string

const (
	TicketUrgencyMinor       TicketUrgency = "MINOR"
	TicketUrgencyNormal      TicketUrgency = "NORMAL"
	TicketUrgencyMajor       TicketUrgency = "MAJOR"
	TicketUrgencyCritical    TicketUrgency = "CRITICAL"
	TicketUrgencyShowStopper TicketUrgency = "SHOW_STOPPER"
)

func (u TicketUrgency) Valid() bool {
	switch u {
	case TicketUrgencyMinor, TicketUrgencyNormal, TicketUrgencyMajor, TicketUrgencyCritical, TicketUrgencyShowStopper:
		return true
	}
	return false
}

// TwofaSecretUnset is stored in place of a TOTP secret while two-factor
// auth is disabled.
const TwofaSecretUnset = "not_set"

// RoleModel is the GORM model for the roles table.
type RoleModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}

// UserModel is the GORM model for the users table. Password holds the
// bcrypt hash, never the plaintext.
type UserModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Email             string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName         string `gorm:"type:varchar(100);not null"`
	LastName          string `gorm:"type:varchar(100);not null"`
	Password          string `gorm:"type:varchar(255);not null"`
	ProfilePictureURL string `gorm:"type:varchar(512)"`
	TwofaSecret       string `gorm:"type:varchar(255);not null;default:not_set"`
	TwofaEnabled      bool   `gorm:"not null;default:false"`
	EmailVerified     bool   `gorm:"not null;default:false"`
	RoleID            int64  `gorm:"not null"`
	Role              RoleModel
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// DisplayName is the name shown next to chat messages.
func (m *UserModel) DisplayName() string {
	return m.FirstName + " " + m.LastName
}

// TicketModel is the GORM model for the tickets table. CreatedAt,
// ClosedAt and UpdatedAt are unix-millisecond timestamps; ClosedAt and
// UpdatedAt are zero until the ticket is closed or first updated.
type TicketModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Identifier  string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"not null"`
	ClosedAt    int64
	UpdatedAt   int64
	CreatorID   int64 `gorm:"not null;index"`
	Creator     UserModel
	AssigneeID  *int64 `gorm:"index"`
	Assignee    *UserModel
	State       TicketState          `gorm:"type:varchar(20);not null"`
	Urgency     TicketUrgency        `gorm:"type:varchar(20);not null"`
	Messages    []TicketMessageModel `gorm:"foreignKey:TicketID"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketMessageModel is the GORM model for the ticket_messages table,
// the durable chat transcript. Timestamp is unix milliseconds.
type TicketMessageModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	TicketID  int64 `gorm:"not null;index"`
	SenderID  int64 `gorm:"not null"`
	Sender    UserModel
	Content   string `gorm:"type:text;not null"`
	Timestamp int64  `gorm:"not null"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}

// FaqModel is the GORM model for the faq_entries table. CreatedAt is
// unix milliseconds.
type FaqModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null"`
	CreatorID int64  `gorm:"not null"`
	Creator   UserModel
}

func (FaqModel) TableName() string {
	return "faq_entries"
}
