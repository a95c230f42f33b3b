package proptest

import (
	"os"
	"path/filepath"
	"shelf/internal/catalog"
	"shelf/internal/storage"
	"testing"

	"pgregory.net/rapid"
)

const (
	minBooks        = 0
	maxBooks        = 20
	typicalMinBooks = 1
	typicalMaxBooks = 10
)

type BookGenOpt func(*bookGenConfig)

type bookGenConfig struct {
	title *string
	kind  *catalog.Kind
}

func WithTitle(title string) BookGenOpt {
	return func(c *bookGenConfig) {
		c.title = &title
	}
}

func WithKind(kind catalog.Kind) BookGenOpt {
	return func(c *bookGenConfig) {
		c.kind = &kind
	}
}

func GenBook(t *rapid.T, opts ...BookGenOpt) catalog.Book {
	cfg := &bookGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var title string
	if cfg.title != nil {
		title = *cfg.title
	} else {
		title = titleGen().Draw(t, "title")
	}

	var kind catalog.Kind
	if cfg.kind != nil {
		kind = *cfg.kind
	} else {
		kind = rapid.SampledFrom([]catalog.Kind{catalog.KindPhysical, catalog.KindDigital}).Draw(t, "kind")
	}

	author := authorGen.Draw(t, "author")
	year := yearGen.Draw(t, "year")

	b := catalog.NewPhysical(title, author, year)
	if kind == catalog.KindDigital {
		b = catalog.NewDigital(title, author, year, formatGen.Draw(t, "format"))
	}
	if err := b.SetStatus(statusGen().Draw(t, "status")); err != nil {
		t.Fatalf("generated status rejected: %v", err)
	}
	return b
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenBook(opts ...BookGenOpt) catalog.Book {
	return GenBook(h.T, opts...)
}

type CatalogHarness struct {
	Harness
	Catalog catalog.Catalog
	Store   *storage.TextFile
}

func (h *CatalogHarness) MustAddBook(opts ...BookGenOpt) catalog.Book {
	b := h.GenBook(opts...)
	if err := h.Catalog.Add(b); err != nil {
		h.T.Fatalf("failed to add book: %v", err)
	}
	return b
}

// AddBooks adds a random number of books and returns the ones accepted.
// Titles that collide with earlier ones are rejected by the catalog.
func (h *CatalogHarness) AddBooks(minCount, maxCount int) []catalog.Book {
	var added []catalog.Book
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numBooks")
	for range n {
		b := h.GenBook()
		if err := h.Catalog.Add(b); err == nil {
			added = append(added, b)
		}
	}
	return added
}

// Reload saves the catalog and loads it back into a fresh one.
func (h *CatalogHarness) Reload() *catalog.MemoryCatalog {
	if err := h.Store.Save(h.Catalog.All()); err != nil {
		h.T.Fatalf("failed to save: %v", err)
	}
	loaded := catalog.NewMemoryCatalog()
	if _, err := h.Store.Load(loaded); err != nil {
		h.T.Fatalf("failed to load: %v", err)
	}
	return loaded
}

func newIterDir(rt *rapid.T, tempDir string) string {
	iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
	if err := os.MkdirAll(iterDir, 0o755); err != nil {
		rt.Fatalf("failed to create iter dir: %v", err)
	}
	return iterDir
}

func RunWithCatalog(t *testing.T, fn func(h *CatalogHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := newIterDir(rt, tempDir)

		harness := &CatalogHarness{
			Harness: Harness{
				T:   rt,
				Dir: iterDir,
			},
			Catalog: catalog.NewMemoryCatalog(),
			Store:   storage.NewTextFile(filepath.Join(iterDir, "stock_libros.txt")),
		}

		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		harness := &Harness{
			T:   rt,
			Dir: newIterDir(rt, tempDir),
		}

		fn(harness)
	})
}
