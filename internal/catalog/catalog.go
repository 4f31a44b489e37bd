// Package catalog provides safe product lookup and recursive traversal of
// the category tree.
package catalog

import (
	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
	"github.com/mesmerizedfloppa/shop-analytics/pkg/ftypes"
)

// SafeProduct looks up a product by id. Absence is a normal outcome and
// comes back as Nothing, never as an error.
func SafeProduct(products []domain.Product, id string) ftypes.Maybe[domain.Product] {
	for _, p := range products {
		if p.ID == id {
			return ftypes.Some(p)
		}
	}
	return ftypes.Nothing[domain.Product]()
}

// FlattenCategories returns the category with id rootID followed by all
// its descendants in preorder: each direct child's full subtree, children
// taken in input order. An unknown rootID yields an empty slice. A visited
// set guards the walk, so cyclic parent links terminate instead of
// recursing forever; the cycle's back-edge is simply not followed.
func FlattenCategories(categories []domain.Category, rootID string) []domain.Category {
	byID := make(map[string]domain.Category, len(categories))
	children := make(map[string][]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
		if c.ParentID != "" {
			children[c.ParentID] = append(children[c.ParentID], c)
		}
	}

	root, ok := byID[rootID]
	if !ok {
		return nil
	}

	visited := make(map[string]bool, len(categories))
	var out []domain.Category

	var walk func(c domain.Category)
	walk = func(c domain.Category) {
		if visited[c.ID] {
			return
		}
		visited[c.ID] = true
		out = append(out, c)
		for _, child := range children[c.ID] {
			walk(child)
		}
	}
	walk(root)

	return out
}

// CollectProducts returns every product whose category lies in the subtree
// rooted at rootID, preserving the original product order.
func CollectProducts(categories []domain.Category, products []domain.Product, rootID string) []domain.Product {
	ids := map[string]bool{rootID: true}
	for _, c := range FlattenCategories(categories, rootID) {
		ids[c.ID] = true
	}

	var out []domain.Product
	for _, p := range products {
		if ids[p.CategoryID] {
			out = append(out, p)
		}
	}
	return out
}
