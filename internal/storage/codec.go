package storage

import (
	"errors"
	"fmt"
	"shelf/internal/catalog"
	"strconv"
	"strings"
)

var (
	ErrUnknownLayout = errors.New("unrecognized field layout")
	ErrInvalidYear   = errors.New("year is not an integer")
)

// EncodeRecord returns the tagged form of b. Anything that is not digital
// is written as physical.
func EncodeRecord(b catalog.Book) []string {
	fields := []string{
		string(catalog.KindPhysical),
		b.Title,
		b.Author,
		strconv.Itoa(b.Year),
		string(b.Status),
	}

	switch b.Kind {
	case catalog.KindDigital:
		fields[0] = string(catalog.KindDigital)
		return append(fields, b.Format)
	default:
		return fields
	}
}

// DecodeRecord turns one line's fields into a book.
//
// Tagged lines are recognized first. Untagged lines fall back to the old
// layout: five fields with a whitelisted format are digital, four fields
// are physical. When the status is not recognized the book is still
// returned, as available, together with an error wrapping
// catalog.ErrInvalidStatus.
func DecodeRecord(fields []string, formats catalog.FormatSet) (catalog.Book, error) {
	kind, body, err := classify(fields, formats)
	if err != nil {
		return catalog.Book{}, err
	}

	title, author, rawYear, rawStatus := body[0], body[1], body[2], body[3]

	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil {
		return catalog.Book{}, fmt.Errorf("%w: %q", ErrInvalidYear, rawYear)
	}

	var b catalog.Book
	switch kind {
	case catalog.KindDigital:
		b = catalog.NewDigital(title, author, year, body[4])
	default:
		b = catalog.NewPhysical(title, author, year)
	}

	status, err := catalog.ParseStatus(rawStatus)
	if err != nil {
		return b, err
	}
	if err := b.SetStatus(status); err != nil {
		return b, err
	}
	return b, nil
}

// classify returns the kind and the fields that follow the tag, if any.
// A five-field line starting with "physical" is only taken as tagged when
// its year column holds a number; otherwise it may be an untagged digital
// book titled "physical".
func classify(fields []string, formats catalog.FormatSet) (catalog.Kind, []string, error) {
	switch {
	case len(fields) == 5 && fields[0] == string(catalog.KindPhysical) && isYear(fields[3]):
		return catalog.KindPhysical, fields[1:], nil
	case len(fields) == 6 && fields[0] == string(catalog.KindDigital):
		return catalog.KindDigital, fields[1:], nil
	case len(fields) == 5 && formats.Contains(fields[4]):
		return catalog.KindDigital, fields, nil
	case len(fields) == 5 && fields[0] == string(catalog.KindPhysical):
		return catalog.KindPhysical, fields[1:], nil
	case len(fields) == 4:
		return catalog.KindPhysical, fields, nil
	}
	return "", nil, fmt.Errorf("%w: %d fields", ErrUnknownLayout, len(fields))
}

func isYear(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}
