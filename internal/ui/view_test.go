package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/enderelijas/shopfront/internal/shop"
	"github.com/enderelijas/shopfront/internal/ui/command"
)

func TestViewShowsLoadingBeforeFirstRender(t *testing.T) {
	top := storePages(t)
	rec := command.NewRecorder()
	session := shop.NewSession(rec, top)
	m := NewModel(session, rec, 0, 0, false, false)
	view := m.View()
	if !strings.Contains(view, "Loading") {
		t.Fatalf("expected loading screen, got:\n%s", view)
	}
}

func TestViewRendersPayloadAndOptions(t *testing.T) {
	m := openedModel(t)
	view := m.View()
	if !strings.Contains(view, "Browse | General Store") {
		t.Fatalf("expected payload title in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Pick a category.") {
		t.Fatalf("expected page description in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Tools") {
		t.Fatalf("expected category row in view, got:\n%s", view)
	}
	if !strings.Contains(view, "»") {
		t.Fatalf("expected filter prompt in view, got:\n%s", view)
	}
}

func TestViewRendersItemFieldsAndPrices(t *testing.T) {
	m := openedModel(t)
	m.applyCmd(t, m.handleEnterKey())
	view := m.View()
	if !strings.Contains(view, "Hammer | `50` coins") {
		t.Fatalf("expected item field label in view, got:\n%s", view)
	}
	if !strings.Contains(view, "*Drives nails*") {
		t.Fatalf("expected emphasized description in view, got:\n%s", view)
	}
	if !strings.Contains(view, "50 coins") {
		t.Fatalf("expected right-hand price detail in view, got:\n%s", view)
	}
}

func TestViewShowsErrorStatus(t *testing.T) {
	m := openedModel(t)
	m.applyCmd(t, m.dispatch(m.screen.selector.ID(), "nope", "nope"))
	view := m.View()
	if !strings.Contains(view, "Error: Unknown selection nope") {
		t.Fatalf("expected error status line, got:\n%s", view)
	}
}

func TestViewShowsFooterHintWhenEnabled(t *testing.T) {
	m := openedModel(t)
	m.showFooter = true
	view := m.View()
	if !strings.Contains(view, footerHint) {
		t.Fatalf("expected footer hint in view, got:\n%s", view)
	}
}

func TestViewShowsNoMatchesForFilter(t *testing.T) {
	m := openedModel(t)
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
	view := m.View()
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
}

func TestTruncateTextRespectsWidth(t *testing.T) {
	if got := truncateText("short", 10); got != "short" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
	got := truncateText("a very long option label", 10)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis tail, got %q", got)
	}
	if width := len([]rune(got)); width > 10 {
		t.Fatalf("expected at most 10 cells, got %d in %q", width, got)
	}
}
