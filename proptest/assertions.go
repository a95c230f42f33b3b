package proptest

import (
	"shelf/internal/catalog"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertBooksEqual(t *rapid.T, expected, actual []catalog.Book) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("books mismatch (-want +got):\n%s", diff)
	}
}

func assertBookEqual(t *rapid.T, expected, actual catalog.Book) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("book mismatch (-want +got):\n%s", diff)
	}
}

func assertNoDuplicateTitles(t *rapid.T, books []catalog.Book) {
	t.Helper()
	seen := make(map[string]bool)
	for _, b := range books {
		key := strings.ToLower(b.Title)
		if seen[key] {
			t.Fatalf("duplicate title found: %q", b.Title)
		}
		seen[key] = true
	}
}
