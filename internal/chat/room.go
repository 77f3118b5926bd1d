package chat

import (
	"sync"

	chatpb "github.com/supportly-beer/supportly-backend/proto/chat"
)

// room is the live state of one ticket's chat. All fields behind mu.
// The closed flag marks a room that has been torn down by the registry;
// a joiner that observes it must retry against the registry map, which
// no longer holds this instance.
type room struct {
	id string

	mu           sync.Mutex
	closed       bool
	participants map[int64]Outlet
	transcript   []*chatpb.ChatMessage
}

func newRoom(id string, seed []*chatpb.ChatMessage) *room {
	return &room{
		id:           id,
		participants: make(map[int64]Outlet),
		transcript:   seed,
	}
}

// attach registers the outlet under userID and replays the transcript
// onto it before any concurrent send can interleave. It returns the
// outlet previously registered for userID (nil if none) so the caller
// can close it outside the lock, and whether replay delivered cleanly.
// Returns ok=false when the room is already closed.
func (r *room) attach(userID int64, out Outlet) (prev Outlet, delivered bool, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, false, false
	}
	prev = r.participants[userID]
	r.participants[userID] = out
	for _, msg := range r.transcript {
		if err := out.Push(msg); err != nil {
			return prev, false, true
		}
	}
	return prev, true, true
}

// broadcast appends msg to the in-memory transcript and pushes it to
// every participant. Participants whose push fails are removed and
// returned so the caller can close them outside the lock. empty reports
// whether the room ended up with no participants. ok is false when the
// room was already torn down, in which case nothing was delivered and
// nothing was recorded.
func (r *room) broadcast(msg *chatpb.ChatMessage) (dead []Outlet, empty, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, false, false
	}
	r.transcript = append(r.transcript, msg)
	for id, out := range r.participants {
		if err := out.Push(msg); err != nil {
			delete(r.participants, id)
			dead = append(dead, out)
		}
	}
	return dead, len(r.participants) == 0, true
}

func (r *room) transcriptLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.transcript)
}

// detach removes userID's outlet. A non-nil match restricts removal to
// that exact outlet, so a stream that was replaced by a newer join does
// not evict its successor on teardown. Returns the removed outlet (nil
// when nothing was removed) and whether the room is now empty.
func (r *room) detach(userID int64, match Outlet) (out Outlet, empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, false
	}
	out = r.participants[userID]
	if out == nil || (match != nil && out != match) {
		return nil, false
	}
	delete(r.participants, userID)
	return out, len(r.participants) == 0
}
