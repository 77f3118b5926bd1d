package chat

import (
	chatpb "github.com/supportly-beer/supportly-backend/proto/chat"
)

// Outlet is the capability a participant hands to the registry on join:
// a sink onto which room messages are pushed. Push must not block
// indefinitely; a Push error marks the participant as gone and triggers
// an implicit leave. Close signals end-of-stream and must be idempotent.
type Outlet interface {
	Push(msg *chatpb.ChatMessage) error
	Close()
}
