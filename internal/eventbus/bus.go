package eventbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

// Handler is a pure state transition. It must not mutate either argument.
type Handler func(domain.Event, State) State

type subscription struct {
	name    string
	handler Handler
}

// Bus is an immutable subscription registry. Subscribe returns a new Bus;
// callers must keep using the returned value, the receiver never changes.
type Bus struct {
	subs []subscription
}

// New returns an empty bus.
func New() Bus {
	return Bus{}
}

// Subscribe appends (name, handler) and returns the extended bus. The
// subscription slice is copied so sibling buses sharing a prefix cannot
// observe each other's registrations.
func (b Bus) Subscribe(name string, h Handler) Bus {
	subs := make([]subscription, len(b.subs)+1)
	copy(subs, b.subs)
	subs[len(b.subs)] = subscription{name: name, handler: h}
	return Bus{subs: subs}
}

// Publish folds every handler subscribed under e.Name, in subscription
// order, over state. With no matching handler the state comes back as is.
func (b Bus) Publish(e domain.Event, state State) State {
	for _, sub := range b.subs {
		if sub.name == e.Name {
			state = sub.handler(e, state)
		}
	}
	return state
}

// ApplyEvents folds Publish over events left to right: plain sequential
// delivery, no reordering or batching.
func ApplyEvents(b Bus, events []domain.Event, state State) State {
	for _, e := range events {
		state = b.Publish(e, state)
	}
	return state
}

// NewEvent mints an event with a fresh unique id and the creation-time
// timestamp (not publish time).
func NewEvent(name string, payload map[string]any) domain.Event {
	return domain.Event{
		ID:      uuid.NewString(),
		TS:      time.Now().Format(time.RFC3339),
		Name:    name,
		Payload: payload,
	}
}
