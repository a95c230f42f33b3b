package catalog

import (
	"fmt"
	"slices"
	"sync"
)

// MemoryCatalog keeps books in insertion order and looks them up by a
// linear, case-insensitive title scan.
type MemoryCatalog struct {
	books []Book
	mu    sync.RWMutex
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

func (c *MemoryCatalog) Add(b Book) error {
	if err := b.normalize(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexUnlocked(b.Title) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, b.Title)
	}

	c.books = append(c.books, b)
	return nil
}

func (c *MemoryCatalog) Remove(title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexUnlocked(title)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	c.books = slices.Delete(c.books, i, i+1)
	return nil
}

func (c *MemoryCatalog) Find(title string) (Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexUnlocked(title)
	if i < 0 {
		return Book{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return c.books[i], nil
}

func (c *MemoryCatalog) List() ([]Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.books) == 0 {
		return nil, ErrEmpty
	}
	return slices.Clone(c.books), nil
}

func (c *MemoryCatalog) All() []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]Book, len(c.books))
	copy(books, c.books)
	return books
}

func (c *MemoryCatalog) MarkLoaned(title string) error {
	return c.transition(title, StatusAvailable, StatusLoaned, ErrAlreadyLoaned)
}

func (c *MemoryCatalog) Return(title string) error {
	return c.transition(title, StatusLoaned, StatusAvailable, ErrAlreadyAvailable)
}

func (c *MemoryCatalog) transition(title string, from, to Status, wrongState error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexUnlocked(title)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	b := &c.books[i]
	if b.Status != from {
		return fmt.Errorf("%w: %q", wrongState, b.Title)
	}
	return b.SetStatus(to)
}

func (c *MemoryCatalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

func (c *MemoryCatalog) indexUnlocked(title string) int {
	return slices.IndexFunc(c.books, func(b Book) bool {
		return sameTitle(b.Title, title)
	})
}
