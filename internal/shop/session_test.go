package shop

import (
	"errors"
	"testing"
)

type fakePlatform struct {
	rendered  []Payload
	controls  [][]Control
	notes     []string
	renderErr error
	notifyErr error
}

func (p *fakePlatform) Render(payload Payload, controls []Control) error {
	if p.renderErr != nil {
		return p.renderErr
	}
	p.rendered = append(p.rendered, payload)
	p.controls = append(p.controls, controls)
	return nil
}

func (p *fakePlatform) Notify(text string) error {
	if p.notifyErr != nil {
		return p.notifyErr
	}
	p.notes = append(p.notes, text)
	return nil
}

func TestSessionOpenRendersStartPage(t *testing.T) {
	top, _ := navPages(t)
	platform := &fakePlatform{}
	session := NewSession(platform, top)
	if err := session.Open(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(platform.rendered) != 1 {
		t.Fatalf("expected one render, got %d", len(platform.rendered))
	}
	if platform.rendered[0].Title != "Browse | General Store" {
		t.Fatalf("unexpected rendered title %q", platform.rendered[0].Title)
	}
	if session.ID() == "" {
		t.Fatalf("expected a session id")
	}
}

// Full browse loop: select the category, land on the item page with one
// back-control, press back, return to the unchanged top page.
func TestSessionBrowseAndBack(t *testing.T) {
	sh := &Shop{Title: "General Store", Currency: "coins"}
	itemListing, err := ItemListing(Item{ID: "i1", Name: "Hammer", Price: 50})
	if err != nil {
		t.Fatalf("unexpected listing error: %v", err)
	}
	tools, err := NewPage(sh, "Tools", "", itemListing)
	if err != nil {
		t.Fatalf("unexpected page error: %v", err)
	}
	catListing, err := CategoryListing(Category{ID: "c1", Name: "Tools", NavigateTo: tools})
	if err != nil {
		t.Fatalf("unexpected listing error: %v", err)
	}
	top, err := NewPage(sh, "General Store", "", catListing)
	if err != nil {
		t.Fatalf("unexpected page error: %v", err)
	}

	platform := &fakePlatform{}
	session := NewSession(platform, top)
	if err := session.Open(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := session.HandleSelect("select:category", "c1"); err != nil {
		t.Fatalf("unexpected error selecting category: %v", err)
	}
	if session.Current() != tools {
		t.Fatalf("expected session to land on the tools page")
	}
	if countBackControls(tools) != 1 {
		t.Fatalf("expected exactly one back-control, got %d", countBackControls(tools))
	}

	if err := session.HandleSelect("nav:back", ""); err != nil {
		t.Fatalf("unexpected error going back: %v", err)
	}
	if session.Current() != top {
		t.Fatalf("expected session back on the top page")
	}
	if len(top.Controls()) != 1 {
		t.Fatalf("expected top page unchanged, got %d controls", len(top.Controls()))
	}
	if len(platform.rendered) != 3 {
		t.Fatalf("expected three renders (open, forward, back), got %d", len(platform.rendered))
	}
}

func TestSessionUnknownSelectionKeepsCurrentPage(t *testing.T) {
	top, _ := navPages(t)
	platform := &fakePlatform{}
	session := NewSession(platform, top)
	if err := session.Open(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := session.HandleSelect("select:category", "stale-id")
	var uerr *UnknownSelectionError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownSelectionError, got %v", err)
	}
	if session.Current() != top {
		t.Fatalf("expected session to stay on the top page")
	}
	if len(platform.rendered) != 1 {
		t.Fatalf("expected no re-render after a failed selection, got %d", len(platform.rendered))
	}
}

func TestSessionUnknownControlID(t *testing.T) {
	top, _ := navPages(t)
	session := NewSession(&fakePlatform{}, top)
	err := session.HandleSelect("no-such-control", "c1")
	var uerr *UnknownSelectionError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownSelectionError for unknown control, got %v", err)
	}
}

func TestSessionRenderFailureIsStationary(t *testing.T) {
	top, _ := navPages(t)
	platform := &fakePlatform{renderErr: errors.New("socket dropped")}
	session := NewSession(platform, top)
	err := session.HandleSelect("select:category", "c1")
	var derr *DeliveryError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if session.Current() != top {
		t.Fatalf("expected current page unchanged after delivery failure")
	}

	// Retry from the same page succeeds once the platform recovers.
	platform.renderErr = nil
	if err := session.HandleSelect("select:category", "c1"); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

func TestSessionDeliversPurchaseNote(t *testing.T) {
	page := itemSelectorPage(t, nil)
	platform := &fakePlatform{}
	session := NewSession(platform, page)
	if err := session.HandleSelect("select:item", "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(platform.notes) != 1 || platform.notes[0] != "Successfully purchased Apple" {
		t.Fatalf("expected purchase acknowledgment, got %v", platform.notes)
	}
	if session.Current() != page {
		t.Fatalf("expected item selection to stay on the same page")
	}
}

func TestSessionNotifyFailure(t *testing.T) {
	page := itemSelectorPage(t, nil)
	platform := &fakePlatform{notifyErr: errors.New("flaky")}
	session := NewSession(platform, page)
	err := session.HandleSelect("select:item", "a")
	var derr *DeliveryError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeliveryError from notify, got %v", err)
	}
	if session.Current() != page {
		t.Fatalf("expected current page unchanged")
	}
}

func TestSessionCloseReleasesState(t *testing.T) {
	top, _ := navPages(t)
	session := NewSession(&fakePlatform{}, top)
	session.Close()
	if session.Current() != nil {
		t.Fatalf("expected current page released")
	}
	if err := session.Open(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed from Open, got %v", err)
	}
	if err := session.HandleSelect("select:category", "c1"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed from HandleSelect, got %v", err)
	}
}
