package proptest

import (
	"errors"
	"shelf/internal/catalog"

	"pgregory.net/rapid"
)

// verifyStructuralInvariants checks what must hold after every operation:
// Count agrees with All and List, titles are unique and every book is in
// one of the two states.
func verifyStructuralInvariants(t *rapid.T, cat catalog.Catalog) {
	t.Helper()
	count := cat.Count()
	all := cat.All()

	if count != len(all) {
		t.Fatalf("Count()=%d but len(All())=%d", count, len(all))
	}

	list, err := cat.List()
	switch {
	case count == 0 && !errors.Is(err, catalog.ErrEmpty):
		t.Fatalf("List() on empty catalog: expected ErrEmpty, got %v", err)
	case count > 0 && err != nil:
		t.Fatalf("List() failed on %d books: %v", count, err)
	case count > 0:
		assertBooksEqual(t, all, list)
	}

	assertNoDuplicateTitles(t, all)
	for _, b := range all {
		if !b.Status.Valid() {
			t.Fatalf("book %q has invalid status %q", b.Title, b.Status)
		}
	}
}
