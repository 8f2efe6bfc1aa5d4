package shop

// Shop carries the metadata shared by every page of a catalog: the shop
// name, the currency items are priced in, and optional descriptive text.
// A Shop is constructed once, before any session starts, and never mutated.
type Shop struct {
	Title       string
	Currency    string
	Footer      string
	Description string
}

// Item is a purchasable catalog entry. Fields holds display-only
// annotations rendered one per line beneath the item description.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       int
	CategoryID  string
	Icon        string
	Fields      []string
}

// Category groups items under a selectable heading. NavigateTo is the page
// shown when the category is chosen; it must be fully constructed before
// the category becomes reachable, so item pages are always built before
// the category pages that link to them.
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
	NavigateTo  *Page
}
