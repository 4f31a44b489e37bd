package eventbus

import "github.com/mesmerizedfloppa/shop-analytics/internal/domain"

// Canonical shop event names.
const (
	EventAddToCart = "ADD_TO_CART"
	EventRemove    = "REMOVE"
	EventCheckout  = "CHECKOUT"
	EventRefund    = "REFUND"
)

// payloadString reads a string payload field, "" when absent.
func payloadString(p map[string]any, key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// payloadInt reads a numeric payload field with a default. JSON-decoded
// payloads carry float64, hand-built ones int; both are accepted.
func payloadInt(p map[string]any, key string, def int64) int64 {
	switch v := p[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return def
	}
}

// HandleAddToCart merges payload.qty (default 1) of payload.product_id
// into the active cart payload.cart_id, creating the cart entry if absent.
func HandleAddToCart(e domain.Event, s State) State {
	cartID := payloadString(e.Payload, "cart_id")
	productID := payloadString(e.Payload, "product_id")
	qty := int(payloadInt(e.Payload, "qty", 1))

	items := make(map[string]int, len(s.ActiveCarts[cartID])+1)
	for pid, q := range s.ActiveCarts[cartID] {
		items[pid] = q
	}
	items[productID] += qty

	next := s.withCart(cartID, items)
	next.LastEvent = e.Name
	return next
}

// HandleRemoveFromCart drops payload.product_id from the active cart.
func HandleRemoveFromCart(e domain.Event, s State) State {
	cartID := payloadString(e.Payload, "cart_id")
	productID := payloadString(e.Payload, "product_id")

	items := make(map[string]int, len(s.ActiveCarts[cartID]))
	for pid, q := range s.ActiveCarts[cartID] {
		if pid != productID {
			items[pid] = q
		}
	}

	next := s.withCart(cartID, items)
	next.LastEvent = e.Name
	return next
}

// HandleCheckout appends a sale record and grows total revenue.
func HandleCheckout(e domain.Event, s State) State {
	sale := Sale{
		OrderID: payloadString(e.Payload, "order_id"),
		Total:   payloadInt(e.Payload, "total", 0),
		UserID:  payloadString(e.Payload, "user_id"),
		TS:      e.TS,
	}

	sales := make([]Sale, len(s.Sales)+1)
	copy(sales, s.Sales)
	sales[len(s.Sales)] = sale

	next := s
	next.Sales = sales
	next.TotalRevenue += sale.Total
	next.LastEvent = e.Name
	return next
}

// HandleRefund appends a refund record and grows the refunded total.
func HandleRefund(e domain.Event, s State) State {
	refund := Refund{
		OrderID: payloadString(e.Payload, "order_id"),
		Amount:  payloadInt(e.Payload, "amount", 0),
		TS:      e.TS,
	}

	refunds := make([]Refund, len(s.Refunds)+1)
	copy(refunds, s.Refunds)
	refunds[len(s.Refunds)] = refund

	next := s
	next.Refunds = refunds
	next.TotalRefunded += refund.Amount
	next.LastEvent = e.Name
	return next
}

// NewShopBus returns a bus with the canonical shop handlers registered.
func NewShopBus() Bus {
	return New().
		Subscribe(EventAddToCart, HandleAddToCart).
		Subscribe(EventRemove, HandleRemoveFromCart).
		Subscribe(EventCheckout, HandleCheckout).
		Subscribe(EventRefund, HandleRefund)
}
