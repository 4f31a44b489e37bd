package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

func TestSubscribeReturnsNewBus(t *testing.T) {
	empty := New()
	one := empty.Subscribe("PING", func(e domain.Event, s State) State { return s })

	assert.Empty(t, empty.subs, "subscribing must not touch the original bus")
	assert.Len(t, one.subs, 1)

	// Siblings sharing a prefix cannot see each other's registrations.
	a := one.Subscribe("A", func(e domain.Event, s State) State { return s })
	b := one.Subscribe("B", func(e domain.Event, s State) State { return s })
	assert.Equal(t, "A", a.subs[1].name)
	assert.Equal(t, "B", b.subs[1].name)
}

func TestPublishNoHandlersReturnsStateUnchanged(t *testing.T) {
	s := InitialState()
	out := New().Publish(NewEvent("UNKNOWN", nil), s)
	assert.Equal(t, s, out)
}

func TestPublishFoldsHandlersInSubscriptionOrder(t *testing.T) {
	appendMark := func(mark string) Handler {
		return func(e domain.Event, s State) State {
			next := s
			next.LastEvent = s.LastEvent + mark
			return next
		}
	}

	bus := New().
		Subscribe("E", appendMark("a")).
		Subscribe("OTHER", appendMark("x")).
		Subscribe("E", appendMark("b"))

	out := bus.Publish(NewEvent("E", nil), InitialState())
	assert.Equal(t, "ab", out.LastEvent)
}

func TestAddToCartScenario(t *testing.T) {
	bus := NewShopBus()

	e := NewEvent(EventAddToCart, map[string]any{
		"cart_id":    "c1",
		"product_id": "p1",
		"qty":        2,
	})

	out := bus.Publish(e, InitialState())

	assert.Equal(t, map[string]map[string]int{"c1": {"p1": 2}}, out.ActiveCarts)
	assert.Equal(t, EventAddToCart, out.LastEvent)
}

func TestAddToCartDefaultsQtyToOne(t *testing.T) {
	bus := NewShopBus()
	e := NewEvent(EventAddToCart, map[string]any{"cart_id": "c1", "product_id": "p1"})

	out := bus.Publish(e, InitialState())
	assert.Equal(t, 1, out.ActiveCarts["c1"]["p1"])
}

func TestAddThenRemove(t *testing.T) {
	bus := NewShopBus()

	events := []domain.Event{
		NewEvent(EventAddToCart, map[string]any{"cart_id": "c1", "product_id": "p1", "qty": 2}),
		NewEvent(EventAddToCart, map[string]any{"cart_id": "c1", "product_id": "p2", "qty": 1}),
		NewEvent(EventRemove, map[string]any{"cart_id": "c1", "product_id": "p1"}),
	}

	out := ApplyEvents(bus, events, InitialState())

	assert.Equal(t, map[string]int{"p2": 1}, out.ActiveCarts["c1"])
}

func TestCheckoutEvent(t *testing.T) {
	bus := NewShopBus()
	e := NewEvent(EventCheckout, map[string]any{
		"order_id": "o1",
		"total":    150_000,
		"user_id":  "u1",
	})

	out := bus.Publish(e, InitialState())

	require.Len(t, out.Sales, 1)
	assert.Equal(t, Sale{OrderID: "o1", Total: 150_000, UserID: "u1", TS: e.TS}, out.Sales[0])
	assert.Equal(t, int64(150_000), out.TotalRevenue)
	assert.Equal(t, EventCheckout, out.LastEvent)
}

func TestRefundEvent(t *testing.T) {
	bus := NewShopBus()
	e := NewEvent(EventRefund, map[string]any{"order_id": "o1", "amount": 40_000})

	out := bus.Publish(e, InitialState())

	require.Len(t, out.Refunds, 1)
	assert.Equal(t, Refund{OrderID: "o1", Amount: 40_000, TS: e.TS}, out.Refunds[0])
	assert.Equal(t, int64(40_000), out.TotalRefunded)
}

func TestPublishDoesNotMutateInputState(t *testing.T) {
	bus := NewShopBus()
	before := bus.Publish(
		NewEvent(EventAddToCart, map[string]any{"cart_id": "c1", "product_id": "p1", "qty": 1}),
		InitialState())

	after := bus.Publish(
		NewEvent(EventAddToCart, map[string]any{"cart_id": "c1", "product_id": "p1", "qty": 5}),
		before)

	assert.Equal(t, 1, before.ActiveCarts["c1"]["p1"], "earlier snapshot must stay intact")
	assert.Equal(t, 6, after.ActiveCarts["c1"]["p1"])
}

func TestApplyEventsEqualsSequentialPublish(t *testing.T) {
	bus := NewShopBus()
	events := []domain.Event{
		NewEvent(EventAddToCart, map[string]any{"cart_id": "c1", "product_id": "p1", "qty": 2}),
		NewEvent(EventCheckout, map[string]any{"order_id": "o1", "total": 200_000, "user_id": "u1"}),
		NewEvent(EventRefund, map[string]any{"order_id": "o1", "amount": 50_000}),
	}

	folded := ApplyEvents(bus, events, InitialState())

	sequential := InitialState()
	for _, e := range events {
		sequential = bus.Publish(e, sequential)
	}

	assert.Equal(t, sequential, folded)

	// Deterministic: same events, same initial state, same result.
	assert.Equal(t, folded, ApplyEvents(bus, events, InitialState()))
}

func TestJSONNumericPayloads(t *testing.T) {
	// JSON-decoded payloads carry float64 values.
	bus := NewShopBus()
	e := NewEvent(EventCheckout, map[string]any{"order_id": "o1", "total": float64(99_000), "user_id": "u1"})

	out := bus.Publish(e, InitialState())
	assert.Equal(t, int64(99_000), out.TotalRevenue)
}

func TestNewEventMintsUniqueIDs(t *testing.T) {
	a := NewEvent("E", nil)
	b := NewEvent("E", nil)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEmpty(t, a.TS)
}
