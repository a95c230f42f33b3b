package catalog

import (
	"path/filepath"
	"slices"
	"strings"
)

// FormatSet is the whitelist used to recognize digital books in untagged
// stock file lines. Matching is exact.
type FormatSet []string

func DefaultFormats() FormatSet {
	return FormatSet{"PDF", "ePub"}
}

func (s FormatSet) Contains(format string) bool {
	return slices.Contains(s, format)
}

func DetectFormat(path string) (string, bool) {
	markers := []struct {
		ext    string
		format string
	}{
		{".pdf", "PDF"},
		{".epub", "ePub"},
		{".mobi", "MOBI"},
		{".azw3", "AZW3"},
		{".txt", "TXT"},
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range markers {
		if ext == m.ext {
			return m.format, true
		}
	}
	return "", false
}
