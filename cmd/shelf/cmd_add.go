package main

import (
	"errors"
	"fmt"
	"shelf/internal/catalog"
	"shelf/internal/ui"
	"strings"

	"github.com/charmbracelet/huh"
)

type AddCmd struct {
	Title  string `arg:"" optional:"" help:"Book title (omit to fill in a form)"`
	Author string `arg:"" optional:"" help:"Author"`
	Year   string `arg:"" optional:"" help:"Publication year"`

	Format string `short:"F" help:"Digital format, e.g. PDF or ePub (makes the book digital)"`
	Source string `short:"s" type:"path" help:"Book file; its extension sets the digital format"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	if err := g.checkLoaded(); err != nil {
		return err
	}

	format, digital, err := cmd.resolveFormat()
	if err != nil {
		return err
	}

	if cmd.Title == "" {
		return cmd.runForm(g, format, digital)
	}

	if cmd.Author == "" || cmd.Year == "" {
		return errors.New("title, author and year are required together")
	}
	year, err := parseYear(cmd.Year)
	if err != nil {
		return err
	}

	return addBook(g, newBook(cmd.Title, cmd.Author, year, format, digital))
}

func (cmd *AddCmd) resolveFormat() (string, bool, error) {
	if cmd.Format != "" {
		return cmd.Format, true, nil
	}
	if cmd.Source == "" {
		return "", false, nil
	}
	format, ok := catalog.DetectFormat(cmd.Source)
	if !ok {
		return "", false, fmt.Errorf("cannot detect a format for %q, use --format", cmd.Source)
	}
	return format, true, nil
}

func (cmd *AddCmd) runForm(g *Globals, format string, digital bool) error {
	var title, author, year string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&title).
				Validate(validateTitle),
			huh.NewInput().
				Title("Author").
				Value(&author),
			huh.NewInput().
				Title("Year").
				Value(&year).
				Validate(validateYear),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Digital book?").
				Value(&digital),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Format").
				Description("PDF, ePub, ...").
				Value(&format),
		).WithHideFunc(func() bool { return !digital }),
	).WithTheme(ui.WizardTheme())

	if err := form.Run(); err != nil {
		return handleAddFormError(err)
	}

	y, err := parseYear(year)
	if err != nil {
		return err
	}
	return addFromForm(g, newBook(strings.TrimSpace(title), strings.TrimSpace(author), y, strings.TrimSpace(format), digital))
}

// addFromForm shows the form summary once the catalog has accepted b.
func addFromForm(g *Globals, b catalog.Book) error {
	if err := insertBook(g, b); err != nil {
		return err
	}
	renderAddSummary(g, b)
	return commitAdd(g, b)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("Title cannot be empty")
	}
	return nil
}

func validateYear(year string) error {
	if _, err := parseYear(year); err != nil {
		return errors.New("Year must be a whole number")
	}
	return nil
}

func handleAddFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func renderAddSummary(g *Globals, b catalog.Book) {
	fmt.Fprint(g.Out, ui.RenderWizard("Add book", bookFields(b), -1))
}

func addBook(g *Globals, b catalog.Book) error {
	if err := insertBook(g, b); err != nil {
		return err
	}
	return commitAdd(g, b)
}

func insertBook(g *Globals, b catalog.Book) error {
	if err := g.Cat.Add(b); err != nil {
		return fmt.Errorf("failed to add book %q: %w", b.Title, err)
	}
	return nil
}

func commitAdd(g *Globals, b catalog.Book) error {
	if err := g.save(); err != nil {
		return err
	}

	g.Log.Info().Str("title", b.Title).Str("kind", string(b.Kind)).Msg("book added")
	fmt.Fprint(g.Out, ui.RenderSuccess("Added "+b.Title, b.String(), []string{savedCheck(g)}))
	return nil
}
