// Package storage persists a catalog as comma-separated lines, one book
// per line.
package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"shelf/internal/catalog"
	"strings"

	"github.com/rs/zerolog"
)

type TextFile struct {
	path    string
	formats catalog.FormatSet
	log     zerolog.Logger
}

type Option func(*TextFile)

// WithFormats sets the whitelist used to recognize untagged digital lines.
func WithFormats(formats catalog.FormatSet) Option {
	return func(f *TextFile) {
		if len(formats) > 0 {
			f.formats = formats
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(f *TextFile) {
		f.log = log
	}
}

func NewTextFile(path string, opts ...Option) *TextFile {
	f := &TextFile{
		path:    path,
		formats: catalog.DefaultFormats(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *TextFile) Path() string {
	return f.path
}

type LoadReport struct {
	Loaded  int
	Skipped int
	Missing bool
}

// Load adds every readable record of the file to cat. Records that cannot
// be used are skipped and counted; they never fail the load. A read error
// is returned, but the books added before it stay in cat.
//
// The whole file goes through one CSV reader, so a quoted field may span
// several lines.
func (f *TextFile) Load(cat catalog.Catalog) (LoadReport, error) {
	var report LoadReport

	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		report.Missing = true
		f.log.Info().Str("path", f.path).Msg("catalog file not found, a new one will be created on save")
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("failed to read catalog file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			f.log.Warn().Err(err).Str("path", f.path).Int("line", parseErr.StartLine).Msg("skipping unparsable line")
			report.Skipped++
			continue
		}
		if err != nil {
			return report, fmt.Errorf("failed to read catalog file %q: %w", f.path, err)
		}
		if isBlank(fields) {
			continue
		}

		lineNo, _ := r.FieldPos(0)
		if f.loadRecord(cat, fields, lineNo) {
			report.Loaded++
		} else {
			report.Skipped++
		}
	}

	f.log.Debug().
		Str("path", f.path).
		Int("loaded", report.Loaded).
		Int("skipped", report.Skipped).
		Msg("catalog loaded")
	return report, nil
}

func (f *TextFile) loadRecord(cat catalog.Catalog, fields []string, lineNo int) bool {
	log := f.log.With().Str("path", f.path).Int("line", lineNo).Logger()

	b, err := DecodeRecord(fields, f.formats)
	switch {
	case errors.Is(err, catalog.ErrInvalidStatus):
		log.Warn().Err(err).Str("title", b.Title).Msg("unrecognized status, keeping book available")
	case errors.Is(err, ErrUnknownLayout):
		log.Debug().Err(err).Msg("skipping line")
		return false
	case err != nil:
		log.Warn().Err(err).Msg("skipping malformed line")
		return false
	}

	if err := cat.Add(b); err != nil {
		log.Warn().Err(err).Msg("skipping book")
		return false
	}
	return true
}

// isBlank reports a line holding nothing but whitespace.
func isBlank(fields []string) bool {
	return len(fields) == 1 && strings.TrimSpace(fields[0]) == ""
}

// Save overwrites the file with books, one tagged line each. The content
// goes to a temporary file first and is renamed over the target.
func (f *TextFile) Save(books []catalog.Book) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, b := range books {
		if err := w.Write(EncodeRecord(b)); err != nil {
			return fmt.Errorf("failed to encode %q: %w", b.Title, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("failed to replace catalog file: %w", err)
	}

	f.log.Debug().Str("path", f.path).Int("books", len(books)).Msg("catalog saved")
	return nil
}
