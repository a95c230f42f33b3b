package proptest

import (
	"errors"
	"shelf/internal/catalog"
	"slices"
	"strings"

	"pgregory.net/rapid"
)

// StateTracker is the reference model: insertion-ordered titles keyed by
// their lowercase form, each with a status.
type StateTracker struct {
	order  []string
	titles map[string]string
	status map[string]catalog.Status
}

func newStateTracker() *StateTracker {
	return &StateTracker{
		titles: make(map[string]string),
		status: make(map[string]catalog.Status),
	}
}

func key(title string) string {
	return strings.ToLower(title)
}

func (s *StateTracker) Add(b catalog.Book) error {
	k := key(b.Title)
	if _, exists := s.titles[k]; exists {
		return catalog.ErrDuplicateTitle
	}
	s.order = append(s.order, k)
	s.titles[k] = b.Title
	s.status[k] = b.Status
	return nil
}

func (s *StateTracker) Remove(title string) error {
	k := key(title)
	if _, ok := s.titles[k]; !ok {
		return catalog.ErrNotFound
	}
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == k })
	delete(s.titles, k)
	delete(s.status, k)
	return nil
}

func (s *StateTracker) Exists(title string) bool {
	_, ok := s.titles[key(title)]
	return ok
}

func (s *StateTracker) MarkLoaned(title string) error {
	return s.transition(title, catalog.StatusAvailable, catalog.StatusLoaned, catalog.ErrAlreadyLoaned)
}

func (s *StateTracker) Return(title string) error {
	return s.transition(title, catalog.StatusLoaned, catalog.StatusAvailable, catalog.ErrAlreadyAvailable)
}

func (s *StateTracker) transition(title string, from, to catalog.Status, wrongState error) error {
	k := key(title)
	current, ok := s.status[k]
	if !ok {
		return catalog.ErrNotFound
	}
	if current != from {
		return wrongState
	}
	s.status[k] = to
	return nil
}

// Titles returns the stored titles in insertion order.
func (s *StateTracker) Titles() []string {
	titles := make([]string, len(s.order))
	for i, k := range s.order {
		titles[i] = s.titles[k]
	}
	return titles
}

func (s *StateTracker) Count() int {
	return len(s.order)
}

type CheckedCatalog struct {
	real  catalog.Catalog
	model *StateTracker
	t     *rapid.T
}

func NewCheckedCatalog(t *rapid.T, cat catalog.Catalog) *CheckedCatalog {
	return &CheckedCatalog{
		real:  cat,
		model: newStateTracker(),
		t:     t,
	}
}

func (c *CheckedCatalog) Model() *StateTracker {
	return c.model
}

func (c *CheckedCatalog) check(op string, realErr, modelErr error) {
	c.t.Helper()
	if modelErr == nil && realErr != nil || modelErr != nil && !errors.Is(realErr, modelErr) {
		c.t.Fatalf("%s divergence: real=%v model=%v", op, realErr, modelErr)
	}
	verifyStructuralInvariants(c.t, c.real)
	c.verifyMatchesModel()
}

func (c *CheckedCatalog) verifyMatchesModel() {
	c.t.Helper()
	all := c.real.All()
	titles := make([]string, len(all))
	for i, b := range all {
		titles[i] = b.Title
		if want := c.model.status[key(b.Title)]; b.Status != want {
			c.t.Fatalf("status of %q: real=%s model=%s", b.Title, b.Status, want)
		}
	}
	if !slices.Equal(titles, c.model.Titles()) {
		c.t.Fatalf("order mismatch: real=%q model=%q", titles, c.model.Titles())
	}
}

func (c *CheckedCatalog) Add(b catalog.Book) error {
	realErr := c.real.Add(b)
	c.check("Add", realErr, c.model.Add(b))
	return realErr
}

func (c *CheckedCatalog) Remove(title string) error {
	realErr := c.real.Remove(title)
	c.check("Remove", realErr, c.model.Remove(title))
	return realErr
}

func (c *CheckedCatalog) Find(title string) (catalog.Book, error) {
	b, realErr := c.real.Find(title)
	modelExists := c.model.Exists(title)
	if (realErr == nil) != modelExists {
		c.t.Fatalf("Find divergence: real err=%v model exists=%v", realErr, modelExists)
	}
	if realErr != nil && !errors.Is(realErr, catalog.ErrNotFound) {
		c.t.Fatalf("Find returned unexpected error: %v", realErr)
	}
	if realErr == nil && !strings.EqualFold(b.Title, title) {
		c.t.Fatalf("Find(%q) returned %q", title, b.Title)
	}
	return b, realErr
}

func (c *CheckedCatalog) MarkLoaned(title string) error {
	realErr := c.real.MarkLoaned(title)
	c.check("MarkLoaned", realErr, c.model.MarkLoaned(title))
	return realErr
}

func (c *CheckedCatalog) Return(title string) error {
	realErr := c.real.Return(title)
	c.check("Return", realErr, c.model.Return(title))
	return realErr
}

func (c *CheckedCatalog) List() []catalog.Book {
	books, _ := c.real.List()
	verifyStructuralInvariants(c.t, c.real)
	return books
}
