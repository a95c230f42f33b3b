package main

import (
	"fmt"
	"io"
	"shelf/internal/catalog"
	"shelf/internal/config"
	"shelf/internal/ui"
	"strconv"
	"strings"
)

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

func newBook(title, author string, year int, format string, digital bool) catalog.Book {
	if digital {
		return catalog.NewDigital(title, author, year, format)
	}
	return catalog.NewPhysical(title, author, year)
}

func bookFields(b catalog.Book) []ui.Field {
	fields := []ui.Field{
		{Label: "Title", Value: b.Title},
		{Label: "Author", Value: b.Author},
		{Label: "Year", Value: strconv.Itoa(b.Year)},
	}
	if b.IsDigital() {
		fields = append(fields, ui.Field{Label: "Format", Value: b.Format})
	}
	return fields
}

func writePlainList(w io.Writer, books []catalog.Book) {
	for _, b := range books {
		fmt.Fprintf(w, "- %s\n", b)
	}
}

// savedCheck is the checklist line shown after a scripted change.
func savedCheck(g *Globals) string {
	return "Saved to " + config.ShortenPath(g.Store.Path())
}
