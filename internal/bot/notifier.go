package bot

import (
	"context"
	"sync"

	"inspilink/internal/notify"
)

type outboxKey struct{}

// outbox collects the notifications raised while one update is handled.
type outbox struct {
	mu     sync.Mutex
	events []notify.Event
}

func withOutbox(ctx context.Context) (context.Context, *outbox) {
	ob := &outbox{}
	return context.WithValue(ctx, outboxKey{}, ob), ob
}

func (o *outbox) drain() []notify.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	events := o.events
	o.events = nil
	return events
}

// ChatNotifier queues events for the chat whose update is being handled.
// The handler sends them once the command has replied. Events raised
// outside an update are dropped.
type ChatNotifier struct{}

func (ChatNotifier) Notify(ctx context.Context, ev notify.Event) {
	ob, ok := ctx.Value(outboxKey{}).(*outbox)
	if !ok {
		return
	}
	ob.mu.Lock()
	ob.events = append(ob.events, ev)
	ob.mu.Unlock()
}
