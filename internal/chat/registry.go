package chat

import (
	"context"
	"errors"
	"sync"

	"github.com/supportly-beer/supportly-backend/pkg/log"
	chatpb "github.com/supportly-beer/supportly-backend/proto/chat"
)

var (
	// ErrTicketNotFound is returned by Directory.Transcript and by Join
	// when the room's ticket does not exist in the durable store.
	ErrTicketNotFound = errors.New("chat: ticket not found")

	ErrEmptyRoomID = errors.New("chat: empty room id")
	ErrNilOutlet   = errors.New("chat: nil outlet")
)

// Registry is the in-memory index of live chat rooms, one room per open
// ticket. Rooms are created lazily on first join, seeded with the
// ticket's durable transcript, and deleted as soon as the last
// participant leaves. Lock order is always registry before room.
type Registry struct {
	dir Directory

	mu    sync.RWMutex
	rooms map[string]*room
}

func NewRegistry(dir Directory) *Registry {
	return &Registry{
		dir:   dir,
		rooms: make(map[string]*room),
	}
}

// Join registers out as roomID's participant for userID and replays the
// room transcript onto it before any concurrent send can interleave.
// When the same user joins the room twice, the newer outlet replaces the
// older one and the older one is closed.
//
// On any failure the outlet is closed before returning, so callers never
// have to track whether the registry took ownership.
func (reg *Registry) Join(ctx context.Context, roomID string, userID int64, out Outlet) error {
	if out == nil {
		return ErrNilOutlet
	}
	if roomID == "" {
		out.Close()
		return ErrEmptyRoomID
	}

	logger := log.Ctx(ctx).With().
		Str(log.FieldRoomID, roomID).
		Int64(log.FieldUserID, userID).
		Logger()

	// Seed is loaded before taking any lock; when the room already
	// lives the load is discarded in favor of the in-memory transcript.
	history, err := reg.dir.Transcript(ctx, roomID)
	if err != nil {
		out.Close()
		if errors.Is(err, ErrTicketNotFound) {
			logger.Warn().Msg("join rejected: no such ticket")
		} else {
			logger.Error().Err(err).Msg("failed to load transcript")
		}
		return err
	}
	seed := make([]*chatpb.ChatMessage, 0, len(history))
	for _, m := range history {
		seed = append(seed, &chatpb.ChatMessage{
			RoomId:            roomID,
			SenderId:          m.SenderID,
			SenderDisplayName: m.SenderDisplayName,
			SenderAvatarUrl:   m.SenderAvatarURL,
			Message:           m.Body,
			Timestamp:         m.Timestamp,
		})
	}

	for {
		reg.mu.Lock()
		rm, ok := reg.rooms[roomID]
		if !ok {
			rm = newRoom(roomID, seed)
			reg.rooms[roomID] = rm
		}
		reg.mu.Unlock()

		prev, delivered, attached := rm.attach(userID, out)
		if !attached {
			// Lost the race against teardown of the last participant;
			// the room is gone from the map, go create a fresh one.
			continue
		}
		if prev != nil {
			prev.Close()
		}
		if !delivered {
			logger.Warn().Msg("participant dropped during transcript replay")
			reg.LeaveOutlet(ctx, roomID, userID, out)
			return nil
		}
		logger.Info().Int("replayed", rm.transcriptLen()).Msg("participant joined room")
		return nil
	}
}

// Send appends msg to the room transcript and fans it out to every
// participant, then appends it to the durable ticket log. The ticket
// and the sender must both resolve in the durable store before any
// fanout. A send into a room with no live participants, from an
// unknown sender, or into a deleted ticket is silently dropped.
// Participants whose push fails are removed from the room as if they
// had left.
//
// Fanout happens before the durable append; when the append fails the
// message has already been delivered live, which is logged and returned
// but never rolled back.
func (reg *Registry) Send(ctx context.Context, msg *chatpb.ChatMessage) error {
	roomID := msg.GetRoomId()
	logger := log.Ctx(ctx).With().
		Str(log.FieldRoomID, roomID).
		Int64(log.FieldUserID, msg.GetSenderId()).
		Logger()

	reg.mu.RLock()
	rm := reg.rooms[roomID]
	reg.mu.RUnlock()
	if rm == nil {
		logger.Debug().Msg("send dropped: no live room")
		return nil
	}

	exists, err := reg.dir.TicketExists(ctx, roomID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve ticket for send")
		return err
	}
	if !exists {
		logger.Warn().Msg("send dropped: no such ticket")
		return nil
	}

	known, err := reg.dir.SenderExists(ctx, msg.GetSenderId())
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve sender for send")
		return err
	}
	if !known {
		logger.Warn().Msg("send dropped: no such sender")
		return nil
	}

	dead, empty, ok := rm.broadcast(msg)
	if !ok {
		// The room was torn down while the durable store was consulted.
		// Nobody received the message, so it must not be persisted.
		logger.Debug().Msg("send dropped: room torn down")
		return nil
	}
	for _, out := range dead {
		out.Close()
	}
	if len(dead) > 0 {
		logger.Warn().Int("dropped", len(dead)).Msg("participants dropped during fanout")
	}
	if empty {
		reg.teardown(rm)
	}

	if err := reg.dir.AppendMessage(ctx, roomID, msg.GetSenderId(), msg.GetTimestamp(), msg.GetMessage()); err != nil {
		logger.Error().Err(err).Msg("message delivered live but not persisted")
		return err
	}
	return nil
}

// Leave removes userID's outlet from the room and closes it. Leaving a
// room one is not in, or a room that does not exist, is a no-op. The
// room is deleted when its last participant leaves.
func (reg *Registry) Leave(ctx context.Context, roomID string, userID int64) {
	reg.leave(ctx, roomID, userID, nil)
}

// LeaveOutlet is Leave restricted to a specific outlet: it only removes
// the participant when out is still the registered handle. Stream
// teardown uses this so it cannot evict a newer join of the same user.
func (reg *Registry) LeaveOutlet(ctx context.Context, roomID string, userID int64, out Outlet) {
	reg.leave(ctx, roomID, userID, out)
}

func (reg *Registry) leave(ctx context.Context, roomID string, userID int64, match Outlet) {
	reg.mu.RLock()
	rm := reg.rooms[roomID]
	reg.mu.RUnlock()
	if rm == nil {
		return
	}

	out, empty := rm.detach(userID, match)
	if out != nil {
		out.Close()
		log.Ctx(ctx).Info().
			Str(log.FieldRoomID, roomID).
			Int64(log.FieldUserID, userID).
			Msg("participant left room")
	}
	if empty {
		reg.teardown(rm)
	}
}

// teardown deletes rm from the registry if it is still registered and
// still empty. Joins racing against teardown observe the closed flag
// and retry against the map.
func (reg *Registry) teardown(rm *room) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.rooms[rm.id] != rm {
		return
	}
	rm.mu.Lock()
	if len(rm.participants) > 0 {
		rm.mu.Unlock()
		return
	}
	rm.closed = true
	rm.mu.Unlock()
	delete(reg.rooms, rm.id)
	log.L().Debug().Str(log.FieldRoomID, rm.id).Msg("room torn down")
}
