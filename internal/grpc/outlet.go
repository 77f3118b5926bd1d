package grpc

import (
	"context"
	"errors"
	"sync"

	chatpb "github.com/supportly-beer/supportly-backend/proto/chat"
)

// outletHighWater is the pending-message limit for a settled outlet. A
// live participant whose stream cannot keep up trips it and is treated
// as gone.
const outletHighWater = 256

var errOutletGone = errors.New("outlet closed or backed up")

// streamOutlet adapts a server stream to the registry's outlet: pushes
// land in a pending queue that the pump drains onto the stream, so a
// slow client can never block a room's fanout.
//
// The queue starts unbounded because joining replays the ticket's whole
// durable transcript in one burst, and no backlog length may drop the
// joiner. Once the join has settled, the high-water mark applies and a
// backed-up participant fails Push.
type streamOutlet struct {
	mu      sync.Mutex
	pending []*chatpb.ChatMessage
	settled bool
	closed  bool

	wake chan struct{}
}

func newStreamOutlet() *streamOutlet {
	return &streamOutlet{wake: make(chan struct{}, 1)}
}

func (o *streamOutlet) Push(msg *chatpb.ChatMessage) error {
	o.mu.Lock()
	if o.closed || (o.settled && len(o.pending) >= outletHighWater) {
		o.mu.Unlock()
		return errOutletGone
	}
	o.pending = append(o.pending, msg)
	o.mu.Unlock()

	select {
	case o.wake <- struct{}{}:
	default:
	}
	return nil
}

func (o *streamOutlet) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	select {
	case o.wake <- struct{}{}:
	default:
	}
}

// settle ends the replay phase and arms the high-water mark.
func (o *streamOutlet) settle() {
	o.mu.Lock()
	o.settled = true
	o.mu.Unlock()
}

// pump writes pushed messages to the stream in push order until the
// outlet is closed or the stream dies. On close the remaining pending
// messages are flushed before returning.
func (o *streamOutlet) pump(ctx context.Context, stream chatpb.ChatService_JoinRoomServer) error {
	for {
		o.mu.Lock()
		batch := o.pending
		o.pending = nil
		closed := o.closed
		o.mu.Unlock()

		for _, msg := range batch {
			if err := stream.Send(msg); err != nil {
				return err
			}
		}
		if closed {
			// Push fails once closed is set, so the batch grabbed in
			// the same critical section was the last of the queue.
			return nil
		}

		select {
		case <-o.wake:
		case <-ctx.Done():
			return nil
		}
	}
}
