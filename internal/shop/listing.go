package shop

import "fmt"

// Kind identifies what a listing holds. A listing is resolved to exactly
// one kind at construction time; pages never inspect entry types at
// render time.
type Kind int

const (
	KindInvalid Kind = iota
	KindItems
	KindCategories
)

// Listing is the homogeneous, non-empty sequence of entries shown on a
// page: either items or categories, never both.
type Listing struct {
	kind       Kind
	items      []Item
	categories []Category
}

// ItemListing builds a listing of items. Entries must be non-empty, carry
// listing-unique ids, and have non-negative prices.
func ItemListing(items ...Item) (Listing, error) {
	if len(items) == 0 {
		return Listing{}, &InvalidListingError{Reason: "no items"}
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" {
			return Listing{}, &InvalidListingError{Reason: fmt.Sprintf("item %q has no id", item.Name)}
		}
		if _, ok := seen[item.ID]; ok {
			return Listing{}, &InvalidListingError{Reason: fmt.Sprintf("duplicate item id %q", item.ID)}
		}
		seen[item.ID] = struct{}{}
		if item.Price < 0 {
			return Listing{}, &InvalidListingError{Reason: fmt.Sprintf("item %q has negative price %d", item.ID, item.Price)}
		}
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return Listing{kind: KindItems, items: dup}, nil
}

// CategoryListing builds a listing of categories. Entries must be
// non-empty, carry listing-unique ids, and reference a constructed page.
func CategoryListing(categories ...Category) (Listing, error) {
	if len(categories) == 0 {
		return Listing{}, &InvalidListingError{Reason: "no categories"}
	}
	seen := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		if cat.ID == "" {
			return Listing{}, &InvalidListingError{Reason: fmt.Sprintf("category %q has no id", cat.Name)}
		}
		if _, ok := seen[cat.ID]; ok {
			return Listing{}, &InvalidListingError{Reason: fmt.Sprintf("duplicate category id %q", cat.ID)}
		}
		seen[cat.ID] = struct{}{}
		if cat.NavigateTo == nil {
			return Listing{}, &InvalidListingError{Reason: fmt.Sprintf("category %q has no page", cat.ID)}
		}
	}
	dup := make([]Category, len(categories))
	copy(dup, categories)
	return Listing{kind: KindCategories, categories: dup}, nil
}

// Kind reports what the listing holds.
func (l Listing) Kind() Kind {
	return l.kind
}

// Len returns the number of entries.
func (l Listing) Len() int {
	switch l.kind {
	case KindItems:
		return len(l.items)
	case KindCategories:
		return len(l.categories)
	}
	return 0
}

// Items returns the listed items, or nil for a category listing.
func (l Listing) Items() []Item {
	return l.items
}

// Categories returns the listed categories, or nil for an item listing.
func (l Listing) Categories() []Category {
	return l.categories
}
