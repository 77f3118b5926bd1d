package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatpb "github.com/supportly-beer/supportly-backend/proto/chat"
)

// fakeDirectory is an in-memory Directory for registry tests. Senders
// resolve by default; ids in missingSenders do not. The two exists
// channels, when set, let a test hold a Send inside the ticket lookup.
type fakeDirectory struct {
	mu             sync.Mutex
	tickets        map[string][]Message
	missingSenders map[int64]bool
	appendErr      error
	appendCalls    int

	existsEntered chan struct{}
	existsRelease chan struct{}
}

func newFakeDirectory(tickets ...string) *fakeDirectory {
	d := &fakeDirectory{tickets: make(map[string][]Message)}
	for _, t := range tickets {
		d.tickets[t] = nil
	}
	return d
}

func (d *fakeDirectory) TicketExists(_ context.Context, roomID string) (bool, error) {
	if d.existsEntered != nil {
		d.existsEntered <- struct{}{}
		<-d.existsRelease
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.tickets[roomID]
	return ok, nil
}

func (d *fakeDirectory) SenderExists(_ context.Context, senderID int64) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.missingSenders[senderID], nil
}

func (d *fakeDirectory) Transcript(_ context.Context, roomID string) ([]Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	msgs, ok := d.tickets[roomID]
	if !ok {
		return nil, ErrTicketNotFound
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (d *fakeDirectory) AppendMessage(_ context.Context, roomID string, senderID int64, timestamp int64, body string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.appendCalls++
	if d.appendErr != nil {
		return d.appendErr
	}
	if _, ok := d.tickets[roomID]; !ok {
		return ErrTicketNotFound
	}
	d.tickets[roomID] = append(d.tickets[roomID], Message{
		SenderID:  senderID,
		Body:      body,
		Timestamp: timestamp,
	})
	return nil
}

func (d *fakeDirectory) durableLen(roomID string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tickets[roomID])
}

// fakeOutlet records pushed messages; failAfter > 0 makes Push fail once
// that many messages have been accepted.
type fakeOutlet struct {
	mu        sync.Mutex
	msgs      []*chatpb.ChatMessage
	closed    bool
	failAfter int
}

func (o *fakeOutlet) Push(msg *chatpb.ChatMessage) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failAfter > 0 && len(o.msgs) >= o.failAfter {
		return errors.New("outlet gone")
	}
	o.msgs = append(o.msgs, msg)
	return nil
}

func (o *fakeOutlet) Close() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()
}

func (o *fakeOutlet) received() []*chatpb.ChatMessage {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]*chatpb.ChatMessage, len(o.msgs))
	copy(out, o.msgs)
	return out
}

func (o *fakeOutlet) isClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

func (reg *Registry) liveRoom(roomID string) *room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.rooms[roomID]
}

func msg(roomID string, senderID int64, body string) *chatpb.ChatMessage {
	return &chatpb.ChatMessage{
		RoomId:    roomID,
		SenderId:  senderID,
		Message:   body,
		Timestamp: time.Now().UnixMilli(),
	}
}

func TestJoinReplaysDurableTranscript(t *testing.T) {
	dir := newFakeDirectory("TICKET-1")
	dir.tickets["TICKET-1"] = []Message{
		{SenderID: 1, Body: "hello", Timestamp: 100},
		{SenderID: 2, Body: "hi there", Timestamp: 200},
	}
	reg := NewRegistry(dir)

	out := &fakeOutlet{}
	require.NoError(t, reg.Join(context.Background(), "TICKET-1", 7, out))

	got := out.received()
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].GetMessage())
	assert.Equal(t, int64(1), got[0].GetSenderId())
	assert.Equal(t, "TICKET-1", got[0].GetRoomId())
	assert.Equal(t, "hi there", got[1].GetMessage())
}

func TestJoinRejectsUnknownTicket(t *testing.T) {
	reg := NewRegistry(newFakeDirectory())

	out := &fakeOutlet{}
	err := reg.Join(context.Background(), "TICKET-404", 7, out)
	require.ErrorIs(t, err, ErrTicketNotFound)
	assert.True(t, out.isClosed())
	assert.Nil(t, reg.liveRoom("TICKET-404"))
}

func TestJoinValidatesArguments(t *testing.T) {
	reg := NewRegistry(newFakeDirectory("TICKET-1"))

	out := &fakeOutlet{}
	assert.ErrorIs(t, reg.Join(context.Background(), "", 7, out), ErrEmptyRoomID)
	assert.True(t, out.isClosed())
	assert.ErrorIs(t, reg.Join(context.Background(), "TICKET-1", 7, nil), ErrNilOutlet)
}

func TestSendFansOutToAllParticipants(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	reg := NewRegistry(dir)
	ctx := context.Background()

	agent := &fakeOutlet{}
	customer := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, agent))
	require.NoError(t, reg.Join(ctx, "TICKET-7", 2, customer))

	require.NoError(t, reg.Send(ctx, msg("TICKET-7", 1, "how can I help?")))

	require.Len(t, agent.received(), 1)
	require.Len(t, customer.received(), 1)
	assert.Equal(t, "how can I help?", customer.received()[0].GetMessage())
	assert.Equal(t, 1, dir.durableLen("TICKET-7"))
}

func TestSendIntoEmptyRoomIsDropped(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	reg := NewRegistry(dir)

	require.NoError(t, reg.Send(context.Background(), msg("TICKET-7", 1, "anyone?")))
	assert.Equal(t, 0, dir.durableLen("TICKET-7"))
	assert.Equal(t, 0, dir.appendCalls)
}

func TestSendDroppedWhenTicketDeleted(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	reg := NewRegistry(dir)
	ctx := context.Background()

	out := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, out))

	dir.mu.Lock()
	delete(dir.tickets, "TICKET-7")
	dir.mu.Unlock()

	require.NoError(t, reg.Send(ctx, msg("TICKET-7", 1, "ghost")))
	assert.Empty(t, out.received())
}

func TestSendDroppedForUnknownSender(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	dir.missingSenders = map[int64]bool{99: true}
	reg := NewRegistry(dir)
	ctx := context.Background()

	out := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, out))

	require.NoError(t, reg.Send(ctx, msg("TICKET-7", 99, "impostor")))
	assert.Empty(t, out.received())
	assert.Equal(t, 0, dir.durableLen("TICKET-7"))
	assert.Equal(t, 0, dir.appendCalls)

	// A fresh join must not see the dropped message either.
	reg.Leave(ctx, "TICKET-7", 1)
	second := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 2, second))
	assert.Empty(t, second.received())
}

func TestSendRacingTeardownIsNotPersisted(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	dir.existsEntered = make(chan struct{})
	dir.existsRelease = make(chan struct{})
	reg := NewRegistry(dir)
	ctx := context.Background()

	out := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, out))

	sent := make(chan error, 1)
	go func() {
		sent <- reg.Send(ctx, msg("TICKET-7", 1, "into the void"))
	}()

	// Tear the room down while Send is held inside the ticket lookup.
	<-dir.existsEntered
	reg.Leave(ctx, "TICKET-7", 1)
	require.Nil(t, reg.liveRoom("TICKET-7"))
	close(dir.existsRelease)

	require.NoError(t, <-sent)
	assert.Empty(t, out.received())
	assert.Equal(t, 0, dir.durableLen("TICKET-7"))
	assert.Equal(t, 0, dir.appendCalls)
}

func TestRejoinReplacesAndClosesPriorOutlet(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	reg := NewRegistry(dir)
	ctx := context.Background()

	first := &fakeOutlet{}
	second := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, first))
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, second))

	assert.True(t, first.isClosed())

	require.NoError(t, reg.Send(ctx, msg("TICKET-7", 1, "still here")))
	assert.Empty(t, first.received())
	require.Len(t, second.received(), 1)
}

func TestLastLeaveTearsDownRoom(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	reg := NewRegistry(dir)
	ctx := context.Background()

	a := &fakeOutlet{}
	b := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, a))
	require.NoError(t, reg.Join(ctx, "TICKET-7", 2, b))

	reg.Leave(ctx, "TICKET-7", 1)
	assert.True(t, a.isClosed())
	assert.NotNil(t, reg.liveRoom("TICKET-7"))

	reg.Leave(ctx, "TICKET-7", 2)
	assert.True(t, b.isClosed())
	assert.Nil(t, reg.liveRoom("TICKET-7"))

	// Leaving again, or leaving a room that never existed, is harmless.
	reg.Leave(ctx, "TICKET-7", 2)
	reg.Leave(ctx, "TICKET-404", 2)
}

func TestRejoinAfterTeardownSeedsFromDurableLog(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	reg := NewRegistry(dir)
	ctx := context.Background()

	first := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, first))
	require.NoError(t, reg.Send(ctx, msg("TICKET-7", 1, "persisted")))
	reg.Leave(ctx, "TICKET-7", 1)
	require.Nil(t, reg.liveRoom("TICKET-7"))

	second := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, second))
	got := second.received()
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].GetMessage())
}

func TestFailedPushEvictsParticipant(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	reg := NewRegistry(dir)
	ctx := context.Background()

	healthy := &fakeOutlet{}
	flaky := &fakeOutlet{failAfter: 1}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, healthy))
	require.NoError(t, reg.Join(ctx, "TICKET-7", 2, flaky))

	require.NoError(t, reg.Send(ctx, msg("TICKET-7", 1, "one")))
	require.NoError(t, reg.Send(ctx, msg("TICKET-7", 1, "two")))

	assert.True(t, flaky.isClosed())
	assert.Len(t, flaky.received(), 1)
	assert.Len(t, healthy.received(), 2)

	rm := reg.liveRoom("TICKET-7")
	require.NotNil(t, rm)
	rm.mu.Lock()
	_, stillThere := rm.participants[2]
	rm.mu.Unlock()
	assert.False(t, stillThere)
}

func TestDurableAppendFailureStillDeliversLive(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	dir.appendErr = errors.New("database down")
	reg := NewRegistry(dir)
	ctx := context.Background()

	out := &fakeOutlet{}
	require.NoError(t, reg.Join(ctx, "TICKET-7", 1, out))

	err := reg.Send(ctx, msg("TICKET-7", 1, "lossy"))
	require.Error(t, err)
	require.Len(t, out.received(), 1)
	assert.Equal(t, "lossy", out.received()[0].GetMessage())
}

func TestConcurrentJoinSendLeave(t *testing.T) {
	dir := newFakeDirectory("TICKET-7")
	reg := NewRegistry(dir)
	ctx := context.Background()

	const workers = 16
	const rounds = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				out := &fakeOutlet{}
				if err := reg.Join(ctx, "TICKET-7", id, out); err != nil {
					t.Errorf("join: %v", err)
					return
				}
				_ = reg.Send(ctx, msg("TICKET-7", id, fmt.Sprintf("msg %d from %d", i, id)))
				reg.Leave(ctx, "TICKET-7", id)
			}
		}(int64(w + 1))
	}
	wg.Wait()

	// Every participant left, so the room must be gone.
	assert.Nil(t, reg.liveRoom("TICKET-7"))
}
