// Package eventbus is the reactive core: an immutable publish/subscribe
// value whose handlers are pure (Event, State) -> State transitions.
// Publishing folds the matching handlers over the current state and
// returns the resulting one; nothing is ever mutated in place.
package eventbus

// Sale is one checkout projected into state.
type Sale struct {
	OrderID string `json:"order_id"`
	Total   int64  `json:"total"`
	UserID  string `json:"user_id"`
	TS      string `json:"ts"`
}

// Refund is one refund projected into state.
type Refund struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	TS      string `json:"ts"`
}

// State is the live projection the bus folds events into. Treat it as a
// value: handlers copy the containers they touch and hand back a new
// State, so two snapshots never share mutable structure.
type State struct {
	ActiveCarts   map[string]map[string]int `json:"active_carts"`
	Sales         []Sale                    `json:"current_sales"`
	Refunds       []Refund                  `json:"refunds"`
	TotalRevenue  int64                     `json:"total_revenue"`
	TotalRefunded int64                     `json:"total_refunded"`
	LastEvent     string                    `json:"last_event"`
}

// InitialState is the zero projection: no carts, no sales, no refunds.
func InitialState() State {
	return State{ActiveCarts: map[string]map[string]int{}}
}

// withCart returns a state whose ActiveCarts maps cartID to items,
// copying the outer map so the receiver's snapshot survives untouched.
func (s State) withCart(cartID string, items map[string]int) State {
	carts := make(map[string]map[string]int, len(s.ActiveCarts)+1)
	for id, c := range s.ActiveCarts {
		carts[id] = c
	}
	carts[cartID] = items

	next := s
	next.ActiveCarts = carts
	return next
}
