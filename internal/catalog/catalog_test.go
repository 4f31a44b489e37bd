package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

func sampleTree() []domain.Category {
	return []domain.Category{
		{ID: "root", Name: "All"},
		{ID: "c1", Name: "Tech", ParentID: "root"},
		{ID: "c2", Name: "Home", ParentID: "root"},
		{ID: "c3", Name: "Phones", ParentID: "c1"},
		{ID: "c4", Name: "Kitchen", ParentID: "c2"},
		{ID: "c5", Name: "Garden", ParentID: "c2"},
		{ID: "other", Name: "Unrelated"},
	}
}

func ids(cats []domain.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.ID
	}
	return out
}

func TestSafeProduct(t *testing.T) {
	products := []domain.Product{
		{ID: "p1", Title: "Phone", Price: 100_000, CategoryID: "c3"},
		{ID: "p2", Title: "Pan", Price: 20_000, CategoryID: "c4"},
	}

	found := SafeProduct(products, "p1")
	require.True(t, found.IsSome())
	p, _ := found.Get()
	assert.Equal(t, "Phone", p.Title)

	assert.True(t, SafeProduct(products, "p999").IsNone())
	assert.True(t, SafeProduct(nil, "p1").IsNone())
}

func TestFlattenCategoriesPreorder(t *testing.T) {
	got := FlattenCategories(sampleTree(), "root")
	assert.Equal(t, []string{"root", "c1", "c3", "c2", "c4", "c5"}, ids(got))
}

func TestFlattenCategoriesSubtree(t *testing.T) {
	got := FlattenCategories(sampleTree(), "c2")
	assert.Equal(t, []string{"c2", "c4", "c5"}, ids(got))
}

func TestFlattenCategoriesLeaf(t *testing.T) {
	got := FlattenCategories(sampleTree(), "c3")
	assert.Equal(t, []string{"c3"}, ids(got))
}

func TestFlattenCategoriesUnknownRoot(t *testing.T) {
	assert.Empty(t, FlattenCategories(sampleTree(), "nope"))
}

func TestFlattenCategoriesCycleTerminates(t *testing.T) {
	cyclic := []domain.Category{
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "a"},
	}

	got := FlattenCategories(cyclic, "a")
	assert.Equal(t, []string{"a", "b"}, ids(got), "cycle back-edge must not be followed")
}

func TestCollectProducts(t *testing.T) {
	products := []domain.Product{
		{ID: "p1", Title: "Phone", Price: 100_000, CategoryID: "c3"},
		{ID: "p2", Title: "Pan", Price: 20_000, CategoryID: "c4"},
		{ID: "p3", Title: "Misc", Price: 5_000, CategoryID: "other"},
		{ID: "p4", Title: "Hose", Price: 9_000, CategoryID: "c5"},
	}

	tech := CollectProducts(sampleTree(), products, "c1")
	require.Len(t, tech, 1)
	assert.Equal(t, "p1", tech[0].ID)

	home := CollectProducts(sampleTree(), products, "c2")
	assert.Equal(t, []string{"p2", "p4"}, []string{home[0].ID, home[1].ID}, "product order preserved")

	all := CollectProducts(sampleTree(), products, "root")
	assert.Len(t, all, 3)

	assert.Empty(t, CollectProducts(sampleTree(), products, "nope"))
}
