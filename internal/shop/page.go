package shop

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Field is one rendered entry block in a page payload.
type Field struct {
	Label string
	Body  string
}

// Payload is the renderable form of a page, handed to the platform
// verbatim. It is computed once at page construction.
type Payload struct {
	Title       string
	Description string
	Fields      []Field
	Footer      string
}

// Page is one browsable screen: shop metadata, a homogeneous listing, and
// the interactive controls bound to it (exactly one selector, plus at most
// one back-control once the page has been reached through navigation).
type Page struct {
	shop     *Shop
	title    string
	footer   string
	listing  Listing
	payload  Payload
	controls []Control
}

type pageConfig struct {
	footer   string
	strategy SelectionStrategy
}

// PageOption adjusts page construction.
type PageOption func(*pageConfig)

// WithFooter sets the footer text, passed through to the payload verbatim.
func WithFooter(footer string) PageOption {
	return func(c *pageConfig) { c.footer = footer }
}

// WithSelectionStrategy sets the handler invoked when an item is chosen.
// Only meaningful for item listings; category pages navigate instead.
func WithSelectionStrategy(s SelectionStrategy) PageOption {
	return func(c *pageConfig) { c.strategy = s }
}

// NewPage builds a page for the given listing. Construction is pure: the
// payload and the selection widget are derived up front and no platform
// call is made. An empty or zero-valued listing fails with
// *InvalidListingError.
func NewPage(shop *Shop, title, description string, listing Listing, opts ...PageOption) (*Page, error) {
	if shop == nil {
		return nil, fmt.Errorf("new page %q: nil shop", title)
	}
	if listing.Kind() == KindInvalid || listing.Len() == 0 {
		return nil, &InvalidListingError{Reason: "listing is empty"}
	}
	cfg := pageConfig{strategy: PurchaseAck{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Page{
		shop:    shop,
		title:   title,
		footer:  cfg.footer,
		listing: listing,
	}
	p.payload = Payload{
		Title:       fmt.Sprintf("%s | %s", title, shop.Title),
		Description: description,
		Fields:      buildFields(shop, listing),
		Footer:      cfg.footer,
	}
	switch listing.Kind() {
	case KindCategories:
		p.controls = []Control{&CategorySelector{page: p, categories: listing.Categories()}}
	case KindItems:
		p.controls = []Control{&ItemSelector{items: listing.Items(), currency: shop.Currency, strategy: cfg.strategy}}
	}
	return p, nil
}

// Title returns the page title without the shop suffix.
func (p *Page) Title() string {
	return p.title
}

// Shop returns the shared shop metadata.
func (p *Page) Shop() *Shop {
	return p.shop
}

// Listing returns the page's listing.
func (p *Page) Listing() Listing {
	return p.listing
}

// Payload returns the renderable form of the page.
func (p *Page) Payload() Payload {
	return p.payload
}

// Controls returns the interactive controls in attachment order.
func (p *Page) Controls() []Control {
	out := make([]Control, len(p.controls))
	copy(out, p.controls)
	return out
}

// Control returns the attached control with the given id, or nil.
func (p *Page) Control(id string) Control {
	for _, ctl := range p.controls {
		if ctl.ID() == id {
			return ctl
		}
	}
	return nil
}

// BackControl returns the page's back-control, or nil when the page has
// not been reached through navigation.
func (p *Page) BackControl() *BackControl {
	for _, ctl := range p.controls {
		if back, ok := ctl.(*BackControl); ok {
			return back
		}
	}
	return nil
}

func (p *Page) attach(ctl Control) {
	p.controls = append(p.controls, ctl)
}

func buildFields(shop *Shop, listing Listing) []Field {
	fields := make([]Field, 0, listing.Len())
	switch listing.Kind() {
	case KindCategories:
		for _, cat := range listing.Categories() {
			fields = append(fields, Field{
				Label: iconLabel(cat.Icon, cat.Name),
				Body:  cat.Description,
			})
		}
	case KindItems:
		for _, item := range listing.Items() {
			fields = append(fields, Field{
				Label: fmt.Sprintf("%s | `%s` %s", iconLabel(item.Icon, item.Name), FormatPrice(item.Price), shop.Currency),
				Body:  itemBody(item),
			})
		}
	}
	return fields
}

// FormatPrice renders a price with thousands separators.
func FormatPrice(price int) string {
	return humanize.Comma(int64(price))
}

func iconLabel(icon, name string) string {
	if icon == "" {
		return name
	}
	return icon + " " + name
}

// itemBody renders the emphasized description, a separator rule sized to
// the description, and one quoted line per extra field.
func itemBody(item Item) string {
	var b strings.Builder
	b.WriteString("*")
	b.WriteString(item.Description)
	b.WriteString("*\n")
	b.WriteString(strings.Repeat("-", len([]rune(item.Description))+1))
	for _, field := range item.Fields {
		b.WriteString("\n> ")
		b.WriteString(field)
	}
	return b.String()
}
