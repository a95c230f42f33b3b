package catalog_test

import (
	"shelf/internal/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSet_Contains(t *testing.T) {
	formats := catalog.DefaultFormats()

	assert.True(t, formats.Contains("PDF"))
	assert.True(t, formats.Contains("ePub"))
	assert.False(t, formats.Contains("pdf"), "matching is exact")
	assert.False(t, formats.Contains("MOBI"))
	assert.False(t, formats.Contains(""))
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format string
		ok     bool
	}{
		{name: "detects pdf", path: "/books/dune.pdf", format: "PDF", ok: true},
		{name: "detects epub", path: "foundation.epub", format: "ePub", ok: true},
		{name: "extension is case insensitive", path: "FOUNDATION.EPUB", format: "ePub", ok: true},
		{name: "detects mobi", path: "a/b/c.mobi", format: "MOBI", ok: true},
		{name: "detects azw3", path: "kindle.azw3", format: "AZW3", ok: true},
		{name: "detects plain text", path: "notes.txt", format: "TXT", ok: true},
		{name: "unknown extension", path: "cover.jpg"},
		{name: "no extension", path: "README"},
		{name: "dotfile without extension", path: ".epub/readme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := catalog.DetectFormat(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.format, format)
		})
	}
}
