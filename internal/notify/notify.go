// Package notify delivers fire-and-forget outcome messages to the owner.
package notify

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Kind is the tone of a notification.
type Kind string

const (
	Success Kind = "success"
	Info    Kind = "info"
	Error   Kind = "error"
)

// Messages shown for terminal outcomes.
const (
	MsgLinkSaved       = "Link saved successfully!"
	MsgLinkSaveFailed  = "Failed to save link. Please try again."
	MsgLinkRemoved     = "Link deleted successfully"
	MsgURLCopied       = "URL copied to clipboard!"
	MsgContentFailed   = "Failed to load content. Please try again."
	MsgItemSaved       = "Added to your collection!"
	MsgItemUnsaved     = "Removed from your collection"
	MsgSomethingFailed = "Something went wrong. Please try again."
)

// Event is a single notification.
type Event struct {
	Kind    Kind
	Message string
}

// Notifier receives outcome events. Implementations must not block the
// caller for long and never report failures back.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// Func adapts a plain function to the Notifier interface.
type Func func(ctx context.Context, ev Event)

func (f Func) Notify(ctx context.Context, ev Event) { f(ctx, ev) }

// Multi fans an event out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, ev Event) {
	for _, n := range m {
		n.Notify(ctx, ev)
	}
}

// LogNotifier writes events to a logger.
type LogNotifier struct {
	log logrus.FieldLogger
}

// NewLogNotifier creates a LogNotifier tagged as the notify component.
func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{log: logger.WithField("component", "notify")}
}

func (n *LogNotifier) Notify(_ context.Context, ev Event) {
	entry := n.log.WithField("kind", ev.Kind)
	if ev.Kind == Error {
		entry.Warn(ev.Message)
		return
	}
	entry.Info(ev.Message)
}

// Recorder keeps every event it receives. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(_ context.Context, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
