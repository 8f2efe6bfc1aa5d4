// Package catalog turns an authored YAML document into an immutable shop
// and a fully linked page tree. Item pages are built before the category
// pages that reference them, so every category's destination exists by the
// time the category becomes reachable.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/enderelijas/shopfront/internal/shop"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

type fileShop struct {
	Title       string `yaml:"title"`
	Currency    string `yaml:"currency"`
	Footer      string `yaml:"footer"`
	Description string `yaml:"description"`
}

type fileCategory struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	PageTitle   string `yaml:"page_title"`
	PageIntro   string `yaml:"page_intro"`
}

type fileItem struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       int      `yaml:"price"`
	Category    string   `yaml:"category"`
	Icon        string   `yaml:"icon"`
	Fields      []string `yaml:"fields"`
}

type fileRoot struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type fileCatalog struct {
	Shop       fileShop       `yaml:"shop"`
	Root       fileRoot       `yaml:"root"`
	Categories []fileCategory `yaml:"categories"`
	Items      []fileItem     `yaml:"items"`
}

// Load reads and parses a catalog file.
func Load(path string) (*shop.Shop, *shop.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded demo catalog.
func Default() (*shop.Shop, *shop.Page, error) {
	return Parse(defaultCatalog)
}

// Parse decodes the document and builds the page tree, returning the shop
// metadata and the top-level category page.
func Parse(data []byte) (*shop.Shop, *shop.Page, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse catalog: %w", err)
	}
	if doc.Shop.Title == "" {
		return nil, nil, fmt.Errorf("catalog: shop title is required")
	}
	if doc.Shop.Currency == "" {
		return nil, nil, fmt.Errorf("catalog: shop currency is required")
	}
	if len(doc.Categories) == 0 {
		return nil, nil, fmt.Errorf("catalog: no categories")
	}

	sh := &shop.Shop{
		Title:       doc.Shop.Title,
		Currency:    doc.Shop.Currency,
		Footer:      doc.Shop.Footer,
		Description: doc.Shop.Description,
	}

	grouped, err := groupItems(doc)
	if err != nil {
		return nil, nil, err
	}

	categories := make([]shop.Category, 0, len(doc.Categories))
	for _, fc := range doc.Categories {
		items := grouped[fc.ID]
		if len(items) == 0 {
			return nil, nil, fmt.Errorf("catalog: category %q has no items", fc.ID)
		}
		listing, err := shop.ItemListing(items...)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog: category %q: %w", fc.ID, err)
		}
		title := fc.PageTitle
		if title == "" {
			title = fc.Name
		}
		intro := fc.PageIntro
		if intro == "" {
			intro = fc.Description
		}
		page, err := shop.NewPage(sh, title, intro, listing, shop.WithFooter(sh.Footer))
		if err != nil {
			return nil, nil, fmt.Errorf("catalog: category %q page: %w", fc.ID, err)
		}
		categories = append(categories, shop.Category{
			ID:          fc.ID,
			Name:        fc.Name,
			Description: fc.Description,
			Icon:        fc.Icon,
			NavigateTo:  page,
		})
	}

	rootListing, err := shop.CategoryListing(categories...)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: root listing: %w", err)
	}
	rootTitle := doc.Root.Title
	if rootTitle == "" {
		rootTitle = "Browse"
	}
	rootIntro := doc.Root.Description
	if rootIntro == "" {
		rootIntro = sh.Description
	}
	root, err := shop.NewPage(sh, rootTitle, rootIntro, rootListing, shop.WithFooter(sh.Footer))
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: root page: %w", err)
	}
	return sh, root, nil
}

// groupItems buckets items by category, rejecting references to categories
// the document never declares.
func groupItems(doc fileCatalog) (map[string][]shop.Item, error) {
	known := make(map[string]struct{}, len(doc.Categories))
	for _, fc := range doc.Categories {
		if fc.ID == "" {
			return nil, fmt.Errorf("catalog: category %q has no id", fc.Name)
		}
		if _, ok := known[fc.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate category id %q", fc.ID)
		}
		known[fc.ID] = struct{}{}
	}
	grouped := make(map[string][]shop.Item, len(doc.Categories))
	for _, fi := range doc.Items {
		if _, ok := known[fi.Category]; !ok {
			return nil, fmt.Errorf("catalog: item %q references unknown category %q", fi.ID, fi.Category)
		}
		grouped[fi.Category] = append(grouped[fi.Category], shop.Item{
			ID:          fi.ID,
			Name:        fi.Name,
			Description: fi.Description,
			Price:       fi.Price,
			CategoryID:  fi.Category,
			Icon:        fi.Icon,
			Fields:      fi.Fields,
		})
	}
	return grouped, nil
}
