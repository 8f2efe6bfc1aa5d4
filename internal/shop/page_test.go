package shop

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPageRejectsZeroListing(t *testing.T) {
	_, err := NewPage(&Shop{Title: "Store", Currency: "coins"}, "Empty", "", Listing{})
	var lerr *InvalidListingError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected InvalidListingError, got %v", err)
	}
}

func TestPagePayloadCombinesTitles(t *testing.T) {
	page := mustItemPage(t)
	if page.Payload().Title != "Tools | General Store" {
		t.Fatalf("unexpected payload title %q", page.Payload().Title)
	}
	if page.Title() != "Tools" {
		t.Fatalf("unexpected page title %q", page.Title())
	}
}

func TestItemFieldFormatsPriceAndCurrency(t *testing.T) {
	listing, err := ItemListing(Item{
		ID:          "i1",
		Name:        "War Horse",
		Description: "A sturdy mount",
		Price:       1234,
		Icon:        "🐎",
		Fields:      []string{"Speed +10", "Bravery +2"},
	})
	if err != nil {
		t.Fatalf("unexpected listing error: %v", err)
	}
	page, err := NewPage(&Shop{Title: "Stables", Currency: "gold"}, "Mounts", "", listing)
	if err != nil {
		t.Fatalf("unexpected page error: %v", err)
	}
	fields := page.Payload().Fields
	if len(fields) != 1 {
		t.Fatalf("expected one field per item, got %d", len(fields))
	}
	label := fields[0].Label
	if !strings.Contains(label, "1,234") {
		t.Fatalf("expected thousands-separated price in label, got %q", label)
	}
	if !strings.Contains(label, "gold") {
		t.Fatalf("expected currency in label, got %q", label)
	}
	if !strings.HasPrefix(label, "🐎 War Horse") {
		t.Fatalf("expected icon and name prefix, got %q", label)
	}
	body := fields[0].Body
	lines := strings.Split(body, "\n")
	if lines[0] != "*A sturdy mount*" {
		t.Fatalf("expected emphasized description, got %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", len("A sturdy mount")+1) {
		t.Fatalf("expected separator rule sized to description, got %q", lines[1])
	}
	if lines[2] != "> Speed +10" || lines[3] != "> Bravery +2" {
		t.Fatalf("expected quoted extra fields, got %q", lines[2:])
	}
}

func TestItemBodyOmitsFieldBlockWhenNoFields(t *testing.T) {
	page := mustItemPage(t)
	body := page.Payload().Fields[0].Body
	if strings.Contains(body, ">") {
		t.Fatalf("expected no quoted lines, got %q", body)
	}
	if strings.HasSuffix(body, "\n") {
		t.Fatalf("expected no trailing newline, got %q", body)
	}
}

func TestCategoryFieldUsesIconAndDescription(t *testing.T) {
	tools := mustItemPage(t)
	listing, err := CategoryListing(
		Category{ID: "c1", Name: "Tools", Description: "Sturdy implements", Icon: "🔨", NavigateTo: tools},
		Category{ID: "c2", Name: "Misc", NavigateTo: tools},
	)
	if err != nil {
		t.Fatalf("unexpected listing error: %v", err)
	}
	page, err := NewPage(&Shop{Title: "General Store", Currency: "coins"}, "Browse", "Pick a category", listing)
	if err != nil {
		t.Fatalf("unexpected page error: %v", err)
	}
	fields := page.Payload().Fields
	if fields[0].Label != "🔨 Tools" {
		t.Fatalf("unexpected category label %q", fields[0].Label)
	}
	if fields[0].Body != "Sturdy implements" {
		t.Fatalf("unexpected category body %q", fields[0].Body)
	}
	if fields[1].Label != "Misc" {
		t.Fatalf("expected icon-less label, got %q", fields[1].Label)
	}
	if fields[1].Body != "" {
		t.Fatalf("expected empty body for description-less category, got %q", fields[1].Body)
	}
}

func TestPageFooterPassedThroughVerbatim(t *testing.T) {
	listing, _ := ItemListing(Item{ID: "i1", Name: "Hammer", Price: 50})
	page, err := NewPage(&Shop{Title: "Store", Currency: "coins"}, "Tools", "", listing, WithFooter("  thanks for shopping  "))
	if err != nil {
		t.Fatalf("unexpected page error: %v", err)
	}
	if page.Payload().Footer != "  thanks for shopping  " {
		t.Fatalf("expected verbatim footer, got %q", page.Payload().Footer)
	}
	bare := mustItemPage(t)
	if bare.Payload().Footer != "" {
		t.Fatalf("expected absent footer to stay empty, got %q", bare.Payload().Footer)
	}
}

func TestNewPageAttachesExactlyOneSelector(t *testing.T) {
	itemPage := mustItemPage(t)
	controls := itemPage.Controls()
	if len(controls) != 1 {
		t.Fatalf("expected exactly one control, got %d", len(controls))
	}
	if _, ok := controls[0].(*ItemSelector); !ok {
		t.Fatalf("expected ItemSelector on item page, got %T", controls[0])
	}

	listing, _ := CategoryListing(Category{ID: "c1", Name: "Tools", NavigateTo: itemPage})
	catPage, err := NewPage(&Shop{Title: "Store", Currency: "coins"}, "Browse", "", listing)
	if err != nil {
		t.Fatalf("unexpected page error: %v", err)
	}
	controls = catPage.Controls()
	if len(controls) != 1 {
		t.Fatalf("expected exactly one control, got %d", len(controls))
	}
	if _, ok := controls[0].(*CategorySelector); !ok {
		t.Fatalf("expected CategorySelector on category page, got %T", controls[0])
	}
}

func TestPageControlLookup(t *testing.T) {
	page := mustItemPage(t)
	sel := page.Control("select:item")
	if sel == nil {
		t.Fatalf("expected to find item selector by id")
	}
	if page.Control("select:category") != nil {
		t.Fatalf("expected no category selector on an item page")
	}
	if page.BackControl() != nil {
		t.Fatalf("expected no back-control before navigation")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(0); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}
	if got := FormatPrice(1234567); got != "1,234,567" {
		t.Fatalf("expected 1,234,567, got %q", got)
	}
}
