package shop

import "fmt"

// Option is one selectable choice presented by a selector. Detail carries
// a short right-hand annotation, such as an item's price.
type Option struct {
	ID     string
	Label  string
	Icon   string
	Detail string
}

// Outcome is the result of activating a control: a page to show next, a
// transient notice for the user, or both zero values for a no-op.
type Outcome struct {
	Next *Page
	Note string
}

// Control is an interactive element attached to a page. Activation is
// synchronous and pure with respect to the session: the caller applies
// the outcome.
type Control interface {
	ID() string
	Label() string
	Activate(value string) (Outcome, error)
}

// Selector is a control that presents a listing as a single-choice prompt.
type Selector interface {
	Control
	Options() []Option
}

// SelectionStrategy handles a chosen item. Implementations own any
// commerce effects; the core only relays the returned notice.
type SelectionStrategy interface {
	OnSelected(item Item) (string, error)
}

// PurchaseAck is the fallback strategy: acknowledge the purchase by name
// without touching inventory or price.
type PurchaseAck struct{}

func (PurchaseAck) OnSelected(item Item) (string, error) {
	return fmt.Sprintf("Successfully purchased %s", item.Name), nil
}

// CategorySelector presents a category listing; choosing an entry
// navigates forward to that category's page.
type CategorySelector struct {
	page       *Page
	categories []Category
}

func (s *CategorySelector) ID() string    { return "select:category" }
func (s *CategorySelector) Label() string { return "Select a category" }

// Options lists the categories in listing order.
func (s *CategorySelector) Options() []Option {
	opts := make([]Option, 0, len(s.categories))
	for _, cat := range s.categories {
		opts = append(opts, Option{ID: cat.ID, Label: cat.Name, Icon: cat.Icon})
	}
	return opts
}

// Activate resolves the chosen category and computes the next page through
// a fresh navigation handler, attaching its back-control on first entry.
func (s *CategorySelector) Activate(value string) (Outcome, error) {
	for _, cat := range s.categories {
		if cat.ID == value {
			nav := NewNavigation(s.page, cat.NavigateTo)
			return Outcome{Next: nav.Navigate()}, nil
		}
	}
	return Outcome{}, &UnknownSelectionError{Control: s.ID(), Value: value}
}

// ItemSelector presents an item listing; choosing an entry invokes the
// bound selection strategy.
type ItemSelector struct {
	items    []Item
	currency string
	strategy SelectionStrategy
}

func (s *ItemSelector) ID() string    { return "select:item" }
func (s *ItemSelector) Label() string { return "Select an item..." }

// Options lists the items in listing order, annotated with their price.
func (s *ItemSelector) Options() []Option {
	opts := make([]Option, 0, len(s.items))
	for _, item := range s.items {
		opts = append(opts, Option{
			ID:     item.ID,
			Label:  item.Name,
			Icon:   item.Icon,
			Detail: fmt.Sprintf("%s %s", FormatPrice(item.Price), s.currency),
		})
	}
	return opts
}

// Activate resolves the chosen item and hands it to the strategy.
func (s *ItemSelector) Activate(value string) (Outcome, error) {
	for _, item := range s.items {
		if item.ID == value {
			note, err := s.strategy.OnSelected(item)
			if err != nil {
				return Outcome{}, fmt.Errorf("select item %q: %w", item.ID, err)
			}
			return Outcome{Note: note}, nil
		}
	}
	return Outcome{}, &UnknownSelectionError{Control: s.ID(), Value: value}
}
