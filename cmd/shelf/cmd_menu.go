package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"shelf/internal/catalog"
	"shelf/internal/config"
	"shelf/internal/ui"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const menuText = `
--- shelf ---
1. Add book
2. Remove book
3. List books
4. Find book
5. Loan book
6. Return book
7. Exit
`

// MenuCmd runs the interactive session. The catalog is saved once, when
// the session ends, and the command never fails: problems are printed
// and the loop goes on.
type MenuCmd struct{}

func (cmd *MenuCmd) Run(g *Globals) error {
	newMenuSession(g).run()
	return nil
}

type menuSession struct {
	g   *Globals
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

func newMenuSession(g *Globals) *menuSession {
	return &menuSession{
		g:   g,
		in:  bufio.NewScanner(g.In),
		out: g.Out,
		log: g.Log.With().Str("session", uuid.NewString()).Logger(),
	}
}

func (s *menuSession) run() {
	s.greet()

	for {
		fmt.Fprint(s.out, menuText)
		choice, ok := s.ask("Choose an option: ")
		if !ok {
			fmt.Fprintln(s.out)
			s.exit()
			return
		}

		switch choice {
		case "1":
			s.add()
		case "2":
			s.remove()
		case "3":
			s.list()
		case "4":
			s.find()
		case "5":
			s.loan()
		case "6":
			s.giveBack()
		case "7":
			s.exit()
			return
		default:
			fmt.Fprintf(s.out, "Invalid option %q, try again.\n", choice)
		}
	}
}

// ask prints the prompt and reads one line. It reports false once input
// is exhausted.
func (s *menuSession) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			s.log.Warn().Err(err).Msg("failed to read input")
		}
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *menuSession) greet() {
	path := config.ShortenPath(s.g.Store.Path())
	switch {
	case s.g.LoadErr != nil:
		fmt.Fprintf(s.out, "Error: %v\n", s.g.LoadErr)
	case s.g.Report.Missing:
		fmt.Fprintf(s.out, "%s not found, a new file will be created on exit.\n", path)
	default:
		fmt.Fprintf(s.out, "Loaded %d books from %s.\n", s.g.Report.Loaded, path)
	}
	if n := s.g.Report.Skipped; n > 0 {
		fmt.Fprintf(s.out, "Skipped %d unreadable lines.\n", n)
	}
	s.log.Debug().Str("path", s.g.Store.Path()).Msg("session started")
}

const (
	askTitle = iota
	askAuthor
	askYear
	askDigital
	askFormat
)

// addQuestions returns the fields of the add wizard, indexed by the ask
// constants.
func addQuestions() []ui.Field {
	return []ui.Field{
		askTitle:   {Label: "Title"},
		askAuthor:  {Label: "Author"},
		askYear:    {Label: "Year"},
		askDigital: {Label: "Digital", Hint: "y/n"},
		askFormat:  {Label: "Format", Hint: "PDF, ePub, ..."},
	}
}

// step draws the wizard with field i open, reads the answer and records
// it in fields.
func (s *menuSession) step(fields []ui.Field, i int, prompt string) (string, bool) {
	fmt.Fprint(s.out, ui.RenderWizard("Add book", fields, i))
	answer, ok := s.ask(prompt)
	if ok {
		fields[i].Value = answer
	}
	return answer, ok
}

func (s *menuSession) add() {
	fields := addQuestions()

	title, ok := s.step(fields, askTitle, "Title: ")
	if !ok {
		return
	}
	author, ok := s.step(fields, askAuthor, "Author: ")
	if !ok {
		return
	}
	rawYear, ok := s.step(fields, askYear, "Year: ")
	if !ok {
		return
	}
	year, err := parseYear(rawYear)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid year")
		return
	}

	answer, ok := s.step(fields, askDigital, "Digital book? (y/n): ")
	if !ok {
		return
	}
	digital := isYes(answer)
	var format string
	if digital {
		if format, ok = s.step(fields, askFormat, "Format (PDF, ePub, ...): "); !ok {
			return
		}
	}

	b := newBook(title, author, year, format, digital)
	if err := s.g.Cat.Add(b); err != nil {
		s.fail(err)
		return
	}

	s.log.Info().Str("title", b.Title).Str("kind", string(b.Kind)).Msg("book added")
	fmt.Fprint(s.out, ui.RenderWizard("Add book", bookFields(b), -1))
}

func (s *menuSession) remove() {
	title, ok := s.ask("Title to remove: ")
	if !ok {
		return
	}
	if err := s.g.Cat.Remove(title); err != nil {
		s.fail(err)
		return
	}

	s.log.Info().Str("title", title).Msg("book removed")
	fmt.Fprintf(s.out, "Removed %q.\n", title)
}

func (s *menuSession) list() {
	books, err := s.g.Cat.List()
	if errors.Is(err, catalog.ErrEmpty) {
		fmt.Fprintln(s.out, "The collection is empty.")
		return
	}
	if err != nil {
		s.fail(err)
		return
	}

	fmt.Fprintln(s.out, "\n--- Books ---")
	writePlainList(s.out, books)
	fmt.Fprintln(s.out, "-------------")
}

func (s *menuSession) find() {
	title, ok := s.ask("Title to find: ")
	if !ok {
		return
	}

	b, err := s.g.Cat.Find(title)
	if errors.Is(err, catalog.ErrNotFound) {
		fmt.Fprintf(s.out, "%q not found.\n", title)
		return
	}
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Found: %s\n", b)
}

func (s *menuSession) loan() {
	title, ok := s.ask("Title to loan: ")
	if !ok {
		return
	}
	if err := s.g.Cat.MarkLoaned(title); err != nil {
		s.fail(err)
		return
	}

	s.log.Info().Str("title", title).Msg("book loaned")
	fmt.Fprintf(s.out, "%q is now loaned.\n", title)
}

func (s *menuSession) giveBack() {
	title, ok := s.ask("Title to return: ")
	if !ok {
		return
	}
	if err := s.g.Cat.Return(title); err != nil {
		s.fail(err)
		return
	}

	s.log.Info().Str("title", title).Msg("book returned")
	fmt.Fprintf(s.out, "%q is available again.\n", title)
}

func (s *menuSession) exit() {
	if err := s.g.save(); err != nil {
		s.log.Error().Err(err).Msg("save failed")
		fmt.Fprintf(s.out, "Error: %v\n", err)
	} else {
		fmt.Fprintf(s.out, "Saved %d books to %s.\n", s.g.Cat.Count(), config.ShortenPath(s.g.Store.Path()))
	}
	fmt.Fprintln(s.out, "Bye!")
}

func (s *menuSession) fail(err error) {
	s.log.Debug().Err(err).Msg("operation failed")
	fmt.Fprintf(s.out, "Error: %v\n", err)
}
