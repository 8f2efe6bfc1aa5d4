package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/enderelijas/shopfront/internal/catalog"
	"github.com/enderelijas/shopfront/internal/logging/events"
	"github.com/enderelijas/shopfront/internal/shop"
	"github.com/enderelijas/shopfront/internal/ui"
	"github.com/enderelijas/shopfront/internal/ui/command"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	_, root, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	traceCatalog(cfg.CatalogPath, root)

	recorder := command.NewRecorder()
	session := shop.NewSession(recorder, root)
	defer session.Close()

	model := ui.NewModel(session, recorder, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func loadCatalog(path string) (*shop.Shop, *shop.Page, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func traceCatalog(path string, root *shop.Page) {
	source := path
	if source == "" {
		source = "embedded"
	}
	categories := root.Listing().Categories()
	items := 0
	for _, cat := range categories {
		items += cat.NavigateTo.Listing().Len()
	}
	events.App.CatalogLoaded(source, len(categories), items)
}
