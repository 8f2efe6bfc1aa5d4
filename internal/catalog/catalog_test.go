package catalog

import (
	"strings"
	"testing"

	"github.com/enderelijas/shopfront/internal/shop"
)

const minimalDoc = `
shop:
  title: General Store
  currency: coins
categories:
  - id: tools
    name: Tools
    icon: "🔨"
items:
  - id: hammer
    name: Hammer
    description: Drives nails.
    price: 50
    category: tools
`

func TestParseBuildsLinkedPages(t *testing.T) {
	sh, root, err := Parse([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sh.Title != "General Store" || sh.Currency != "coins" {
		t.Fatalf("unexpected shop metadata %+v", sh)
	}
	if root.Listing().Kind() != shop.KindCategories {
		t.Fatalf("expected root page to list categories")
	}
	cats := root.Listing().Categories()
	if len(cats) != 1 || cats[0].ID != "tools" {
		t.Fatalf("unexpected categories %+v", cats)
	}
	toolsPage := cats[0].NavigateTo
	if toolsPage == nil {
		t.Fatalf("expected category page constructed before the category")
	}
	if toolsPage.Listing().Kind() != shop.KindItems {
		t.Fatalf("expected category page to list items")
	}
	if toolsPage.Listing().Items()[0].ID != "hammer" {
		t.Fatalf("unexpected item listing %+v", toolsPage.Listing().Items())
	}
	if toolsPage.Shop() != sh {
		t.Fatalf("expected pages to share the shop reference")
	}
}

func TestParseRootDefaults(t *testing.T) {
	_, root, err := Parse([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Title() != "Browse" {
		t.Fatalf("expected default root title, got %q", root.Title())
	}
}

func TestParseRejectsUnknownCategoryReference(t *testing.T) {
	doc := strings.Replace(minimalDoc, "category: tools", "category: weapons", 1)
	_, _, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}

func TestParseRejectsEmptyCategory(t *testing.T) {
	doc := strings.Replace(minimalDoc, "categories:", `categories:
  - id: empty
    name: Empty Shelf
`, 1)
	_, _, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "has no items") {
		t.Fatalf("expected empty category error, got %v", err)
	}
}

func TestParseRejectsMissingShopMetadata(t *testing.T) {
	_, _, err := Parse([]byte("shop:\n  title: Store\n"))
	if err == nil || !strings.Contains(err.Error(), "currency") {
		t.Fatalf("expected currency error, got %v", err)
	}
	_, _, err = Parse([]byte("shop:\n  currency: coins\n"))
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Fatalf("expected title error, got %v", err)
	}
}

func TestParseRejectsDuplicateCategoryIDs(t *testing.T) {
	doc := strings.Replace(minimalDoc, "categories:", `categories:
  - id: tools
    name: Shadow Tools
`, 1)
	_, _, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "duplicate category") {
		t.Fatalf("expected duplicate category error, got %v", err)
	}
}

func TestDefaultCatalogParses(t *testing.T) {
	sh, root, err := Default()
	if err != nil {
		t.Fatalf("embedded catalog failed to parse: %v", err)
	}
	if sh.Title == "" || sh.Currency == "" {
		t.Fatalf("embedded catalog missing shop metadata")
	}
	if root.Listing().Len() == 0 {
		t.Fatalf("embedded catalog has no categories")
	}
	for _, cat := range root.Listing().Categories() {
		if cat.NavigateTo == nil {
			t.Fatalf("category %q missing page", cat.ID)
		}
	}
	if root.Payload().Footer == "" {
		t.Fatalf("expected shop footer applied to root page")
	}
}
