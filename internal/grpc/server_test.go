package grpc

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/supportly-beer/supportly-backend/internal/chat"
	chatpb "github.com/supportly-beer/supportly-backend/proto/chat"
)

// stubDirectory serves a fixed transcript per ticket.
type stubDirectory struct {
	transcripts map[string][]chat.Message
}

func (d *stubDirectory) TicketExists(_ context.Context, roomID string) (bool, error) {
	_, ok := d.transcripts[roomID]
	return ok, nil
}

func (d *stubDirectory) SenderExists(context.Context, int64) (bool, error) {
	return true, nil
}

func (d *stubDirectory) Transcript(_ context.Context, roomID string) ([]chat.Message, error) {
	msgs, ok := d.transcripts[roomID]
	if !ok {
		return nil, chat.ErrTicketNotFound
	}
	return msgs, nil
}

func (d *stubDirectory) AppendMessage(context.Context, string, int64, int64, string) error {
	return nil
}

// fakeJoinStream records what the handler sends. Only Send and Context
// are exercised.
type fakeJoinStream struct {
	grpc.ServerStream
	ctx context.Context

	mu   sync.Mutex
	sent []*chatpb.ChatMessage
}

func (s *fakeJoinStream) Context() context.Context { return s.ctx }

func (s *fakeJoinStream) Send(m *chatpb.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, m)
	return nil
}

func (s *fakeJoinStream) sentLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func (s *fakeJoinStream) received() []*chatpb.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*chatpb.ChatMessage, len(s.sent))
	copy(out, s.sent)
	return out
}

func TestJoinRoomReplaysTranscriptLongerThanOutletBuffer(t *testing.T) {
	const backlog = outletHighWater + 44

	transcript := make([]chat.Message, 0, backlog)
	for i := 0; i < backlog; i++ {
		transcript = append(transcript, chat.Message{
			SenderID:  1,
			Body:      fmt.Sprintf("message %d", i),
			Timestamp: int64(i),
		})
	}
	dir := &stubDirectory{transcripts: map[string][]chat.Message{"TICKET-1": transcript}}
	srv := &chatServer{registry: chat.NewRegistry(dir)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := &fakeJoinStream{ctx: ctx}

	joined := make(chan error, 1)
	go func() {
		joined <- srv.JoinRoom(&chatpb.JoinRoomRequest{RoomId: "TICKET-1", UserId: 7}, stream)
	}()

	// The full backlog must arrive despite exceeding the outlet buffer.
	require.Eventually(t, func() bool { return stream.sentLen() == backlog },
		5*time.Second, time.Millisecond)

	got := stream.received()
	for i, m := range got {
		require.Equal(t, fmt.Sprintf("message %d", i), m.GetMessage())
	}

	cancel()
	require.NoError(t, <-joined)
}

func TestJoinRoomRejectsUnknownTicket(t *testing.T) {
	dir := &stubDirectory{transcripts: map[string][]chat.Message{}}
	srv := &chatServer{registry: chat.NewRegistry(dir)}

	stream := &fakeJoinStream{ctx: context.Background()}
	err := srv.JoinRoom(&chatpb.JoinRoomRequest{RoomId: "TICKET-404", UserId: 7}, stream)
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Zero(t, stream.sentLen())
}

func TestStreamOutletUnboundedUntilSettled(t *testing.T) {
	out := newStreamOutlet()

	// Replay phase: any backlog length is accepted.
	for i := 0; i < outletHighWater+100; i++ {
		require.NoError(t, out.Push(&chatpb.ChatMessage{}))
	}

	// Settled with a stalled pump: the high-water mark trips.
	out.settle()
	assert.ErrorIs(t, out.Push(&chatpb.ChatMessage{}), errOutletGone)

	out.Close()
	assert.ErrorIs(t, out.Push(&chatpb.ChatMessage{}), errOutletGone)
}

func TestStreamOutletHighWaterEvictsBackedUpParticipant(t *testing.T) {
	out := newStreamOutlet()
	out.settle()

	for i := 0; i < outletHighWater; i++ {
		require.NoError(t, out.Push(&chatpb.ChatMessage{}))
	}
	assert.ErrorIs(t, out.Push(&chatpb.ChatMessage{}), errOutletGone)
}

func TestStreamOutletPumpFlushesOnClose(t *testing.T) {
	out := newStreamOutlet()
	for i := 0; i < 3; i++ {
		require.NoError(t, out.Push(&chatpb.ChatMessage{Message: fmt.Sprintf("m%d", i)}))
	}
	out.Close()

	stream := &fakeJoinStream{ctx: context.Background()}
	require.NoError(t, out.pump(context.Background(), stream))

	got := stream.received()
	require.Len(t, got, 3)
	assert.Equal(t, "m0", got[0].GetMessage())
	assert.Equal(t, "m2", got[2].GetMessage())
}
