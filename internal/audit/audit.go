package audit

import (
	"context"

	"github.com/supportly-beer/supportly-backend/pkg/log"
)

// Audit actions.
const (
	ActionRegister      = "auth.register"
	ActionLogin         = "auth.login"
	ActionTwofaEnable   = "user.twofa_enable"
	ActionTwofaDisable  = "user.twofa_disable"
	ActionRoleChange    = "user.role_change"
	ActionPasswordReset = "auth.password_reset"
	ActionTicketCreate  = "ticket.create"
	ActionTicketAssign  = "ticket.assign"
	ActionTicketUpdate  = "ticket.update"
	ActionFaqCreate     = "faq.create"
)

// Field constants for audit entries.
const (
	FieldAction = "action"
	FieldDetail = "detail"
)

// Log emits a structured audit log entry via the context logger.
func Log(ctx context.Context, action string, userID int64, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Int64(log.FieldUserID, userID).
		Msg(msg)
}

// LogWithDetail emits an audit log with extra detail field.
func LogWithDetail(ctx context.Context, action string, userID int64, detail string, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Int64(log.FieldUserID, userID).
		Str(FieldDetail, detail).
		Msg(msg)
}
