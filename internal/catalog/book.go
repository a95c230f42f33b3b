package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotDigital    = errors.New("book is not digital")
)

type Kind string

const (
	KindPhysical Kind = "physical"
	KindDigital  Kind = "digital"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusLoaned    Status = "loaned"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusLoaned
}

// ParseStatus accepts the canonical values and the Spanish ones used by
// older stock files.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available", "disponible":
		return StatusAvailable, nil
	case "loaned", "prestado":
		return StatusLoaned, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

type Book struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   int    `yaml:"year"`
	Status Status `yaml:"status"`
	Kind   Kind   `yaml:"kind"`
	Format string `yaml:"format,omitempty"`
}

func NewPhysical(title, author string, year int) Book {
	return Book{
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
		Kind:   KindPhysical,
	}
}

func NewDigital(title, author string, year int, format string) Book {
	b := NewPhysical(title, author, year)
	b.Kind = KindDigital
	b.Format = format
	return b
}

// SetStatus leaves the status untouched when s is not one of the two
// known values.
func (b *Book) SetStatus(s Status) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	b.Status = s
	return nil
}

func (b *Book) SetFormat(format string) error {
	if !b.IsDigital() {
		return fmt.Errorf("%w: %q", ErrNotDigital, b.Title)
	}
	b.Format = format
	return nil
}

func (b Book) IsDigital() bool {
	return b.Kind == KindDigital
}

func (b Book) IsLoaned() bool {
	return b.Status == StatusLoaned
}

func (b Book) String() string {
	base := fmt.Sprintf("%s, %s, %d, %s", b.Title, b.Author, b.Year, b.Status)
	switch b.Kind {
	case KindDigital:
		return base + ", " + b.Format
	default:
		return base
	}
}

// normalize fills the zero-value defaults and rejects states the catalog
// cannot represent.
func (b *Book) normalize() error {
	if b.Status == "" {
		b.Status = StatusAvailable
	}
	if !b.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, b.Status)
	}
	if b.Kind == "" {
		b.Kind = KindPhysical
	}
	if b.Kind != KindPhysical && b.Kind != KindDigital {
		return fmt.Errorf("unknown book kind %q", b.Kind)
	}
	return nil
}

func sameTitle(a, b string) bool {
	return strings.EqualFold(a, b)
}
