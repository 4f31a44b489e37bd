// Package cart implements the pure cart and checkout transforms. Every
// function returns new values; the inputs are never modified.
package cart

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
	"github.com/mesmerizedfloppa/shop-analytics/pkg/ftypes"
)

var (
	ErrUnknownProduct    = errors.New("unknown product")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// AddToCart returns a cart with qty of productID merged in. A non-positive
// qty is a no-op. If the product is already present its quantity grows in
// place (same position); otherwise a new line is appended. The input cart
// is left untouched.
func AddToCart(c domain.Cart, productID string, qty int) domain.Cart {
	if qty <= 0 {
		return c
	}

	items := make([]domain.Item, 0, len(c.Items)+1)
	merged := false
	for _, it := range c.Items {
		if it.ProductID == productID {
			items = append(items, domain.Item{ProductID: productID, Qty: it.Qty + qty})
			merged = true
			continue
		}
		items = append(items, it)
	}
	if !merged {
		items = append(items, domain.Item{ProductID: productID, Qty: qty})
	}

	return domain.Cart{ID: c.ID, UserID: c.UserID, Items: items}
}

// RemoveFromCart returns a cart without the productID line, preserving the
// relative order of the remaining items. Removing an absent product yields
// a cart with the same content.
func RemoveFromCart(c domain.Cart, productID string) domain.Cart {
	items := make([]domain.Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return domain.Cart{ID: c.ID, UserID: c.UserID, Items: items}
}

// Checkout folds the cart lines, in cart order, into a freshly minted paid
// Order. The whole operation fails if any line references a product id
// missing from products: no partial order is ever produced.
func Checkout(c domain.Cart, ts string, products []domain.Product) ftypes.Either[error, domain.Order] {
	prices := make(map[string]int64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	var total int64
	for _, it := range c.Items {
		price, ok := prices[it.ProductID]
		if !ok {
			return ftypes.Left[error, domain.Order](
				fmt.Errorf("checkout cart %s: %w: %s", c.ID, ErrUnknownProduct, it.ProductID))
		}
		total += price * int64(it.Qty)
	}

	items := make([]domain.Item, len(c.Items))
	copy(items, c.Items)

	return ftypes.Right[error](domain.Order{
		ID:     uuid.NewString(),
		UserID: c.UserID,
		Items:  items,
		Total:  total,
		TS:     ts,
		Status: domain.StatusPaid,
	})
}

// ValidateOrder checks each line against available stock and fails on the
// first violation (missing product or stock below the requested quantity).
// A valid order comes back with status "validated" and its total untouched;
// recomputing the total from prices is not this function's job. Discounts
// are accepted for boundary-signature stability and not applied here.
func ValidateOrder(o domain.Order, stock map[string]int, discounts []domain.Discount) ftypes.Either[error, domain.Order] {
	_ = discounts

	for _, it := range o.Items {
		avail, ok := stock[it.ProductID]
		if !ok {
			return ftypes.Left[error, domain.Order](
				fmt.Errorf("validate order %s: %w: %s", o.ID, ErrUnknownProduct, it.ProductID))
		}
		if avail < it.Qty {
			return ftypes.Left[error, domain.Order](
				fmt.Errorf("validate order %s: %w: product %s has %d, want %d",
					o.ID, ErrInsufficientStock, it.ProductID, avail, it.Qty))
		}
	}

	items := make([]domain.Item, len(o.Items))
	copy(items, o.Items)

	return ftypes.Right[error](domain.Order{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		Total:  o.Total,
		TS:     o.TS,
		Status: domain.StatusValidated,
	})
}

// TotalSales sums order totals regardless of status.
func TotalSales(orders []domain.Order) int64 {
	var total int64
	for _, o := range orders {
		total += o.Total
	}
	return total
}
