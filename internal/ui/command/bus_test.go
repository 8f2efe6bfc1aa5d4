package command

import (
	"errors"
	"testing"

	"github.com/enderelijas/shopfront/internal/shop"
)

func browsePages(t *testing.T) (*shop.Page, *shop.Page) {
	t.Helper()
	sh := &shop.Shop{Title: "General Store", Currency: "coins"}
	itemListing, err := shop.ItemListing(shop.Item{ID: "i1", Name: "Hammer", Price: 50})
	if err != nil {
		t.Fatalf("unexpected listing error: %v", err)
	}
	tools, err := shop.NewPage(sh, "Tools", "", itemListing)
	if err != nil {
		t.Fatalf("unexpected page error: %v", err)
	}
	catListing, err := shop.CategoryListing(shop.Category{ID: "c1", Name: "Tools", NavigateTo: tools})
	if err != nil {
		t.Fatalf("unexpected listing error: %v", err)
	}
	top, err := shop.NewPage(sh, "Browse", "", catListing)
	if err != nil {
		t.Fatalf("unexpected page error: %v", err)
	}
	return top, tools
}

func TestOpenCapturesInitialRender(t *testing.T) {
	top, _ := browsePages(t)
	rec := NewRecorder()
	session := shop.NewSession(rec, top)
	msg := New().Open(session, rec)()
	res, ok := msg.(Result)
	if !ok {
		t.Fatalf("expected Result message, got %T", msg)
	}
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Payload == nil || res.Payload.Title != "Browse | General Store" {
		t.Fatalf("expected captured payload, got %+v", res.Payload)
	}
	if len(res.Controls) != 1 {
		t.Fatalf("expected one control, got %d", len(res.Controls))
	}
}

func TestDispatchNavigatesForward(t *testing.T) {
	top, _ := browsePages(t)
	rec := NewRecorder()
	session := shop.NewSession(rec, top)
	msg := New().Dispatch(session, rec, "select:category", "c1", "Tools")()
	res := msg.(Result)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Payload == nil || res.Payload.Title != "Tools | General Store" {
		t.Fatalf("expected tools payload, got %+v", res.Payload)
	}
}

func TestDispatchCarriesSelectionError(t *testing.T) {
	top, _ := browsePages(t)
	rec := NewRecorder()
	session := shop.NewSession(rec, top)
	msg := New().Dispatch(session, rec, "select:category", "stale", "")()
	res := msg.(Result)
	var uerr *shop.UnknownSelectionError
	if !errors.As(res.Err, &uerr) {
		t.Fatalf("expected UnknownSelectionError, got %v", res.Err)
	}
	if res.Payload != nil {
		t.Fatalf("expected no render captured on failure, got %+v", res.Payload)
	}
}

func TestDispatchCapturesNotes(t *testing.T) {
	_, tools := browsePages(t)
	rec := NewRecorder()
	session := shop.NewSession(rec, tools)
	msg := New().Dispatch(session, rec, "select:item", "i1", "Hammer")()
	res := msg.(Result)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Notes) != 1 || res.Notes[0] != "Successfully purchased Hammer" {
		t.Fatalf("expected purchase note, got %v", res.Notes)
	}
	if res.Payload != nil {
		t.Fatalf("expected no page change for item selection")
	}
}
