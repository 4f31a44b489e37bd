// Package domain holds the immutable value records of the shop.
// No behavior lives here: every "mutation" elsewhere in the codebase
// constructs a new value instead of touching an existing one.
package domain

// Status of an order. Only StatusPaid counts as revenue.
type Status string

const (
	StatusPaid      Status = "paid"
	StatusRefunded  Status = "refunded"
	StatusCancelled Status = "cancelled"
	StatusPending   Status = "pending"
	StatusValidated Status = "validated"
)

// Category is a node in the catalog tree, linked via ParentID.
// An empty ParentID marks a root.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// Product is a catalog entry. Price is in minor currency units.
type Product struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Price      int64    `json:"price"`
	CategoryID string   `json:"category_id"`
	Tags       []string `json:"tags"`
}

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tier string `json:"tier"` // "regular" | "vip"
}

// Item is one (product, quantity) line in a cart or order.
type Item struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// Cart holds an ordered item list. Invariant: at most one Item per
// ProductID after any cart transform.
type Cart struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Items  []Item `json:"items"`
}

// Order is a finalized cart. Total is in minor currency units and TS is
// an ISO-8601-like timestamp string ("2025-06-22T14:03:00").
type Order struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Items  []Item `json:"items"`
	Total  int64  `json:"total"`
	TS     string `json:"ts"`
	Status Status `json:"status"`
}

type Payment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	TS      string `json:"ts"`
	Method  string `json:"method"`
}

// Discount is a boundary-facing rule record; ValidateOrder accepts a
// slice of these.
type Discount struct {
	ID         string         `json:"id"`
	Code       string         `json:"code"`
	Percent    int            `json:"percent"`
	Conditions map[string]any `json:"conditions"`
}

// Event is a free-form application event for the bus.
type Event struct {
	ID      string         `json:"id"`
	TS      string         `json:"ts"`
	Name    string         `json:"name"`
	Payload map[string]any `json:"payload"`
}
