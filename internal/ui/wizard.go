package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	askSymbol    = "◆"
	answerSymbol = "◇"
	checkSymbol  = "✓"
	separator    = " · "

	frameTop    = "┌"
	frameSide   = "│"
	frameBottom = "└"
)

// WizardTheme marks validation errors with a red cross.
func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	cross := lipgloss.NewStyle().SetString("✗").Foreground(lipgloss.Color("1"))
	t.Focused.ErrorMessage = cross
	t.Blurred.ErrorMessage = cross
	return t
}

// Field is one question of a wizard. Hint is shown only while the field
// is being asked.
type Field struct {
	Label string
	Value string
	Hint  string
}

func (f Field) question() string {
	q := askSymbol + " " + f.Label
	if f.Hint != "" {
		q += " (" + f.Hint + ")"
	}
	return q
}

func (f Field) answer() string {
	return answerSymbol + " " + f.Label + separator + f.Value
}

func frame(part string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(part)
}

// RenderWizard draws the frame of a form. Answered fields show their
// value and the field at index asking is drawn as the open question;
// unanswered fields are left out. Pass -1 once every question is done.
func RenderWizard(title string, fields []Field, asking int) string {
	lines := []string{frame(frameTop) + " " + title, frame(frameSide)}

	for i, f := range fields {
		switch {
		case i == asking:
			lines = append(lines, f.question())
		case f.Value != "":
			lines = append(lines, f.answer())
		}
	}
	if asking >= 0 && asking < len(fields) {
		lines = append(lines, frame(frameSide))
	}

	lines = append(lines, frame(frameBottom))
	return strings.Join(lines, "\n") + "\n"
}

// RenderSuccess draws a finished action: a heading, an optional detail
// line and one line per completed check.
func RenderSuccess(heading, detail string, checks []string) string {
	lines := []string{frame(frameTop) + " " + askSymbol + " " + heading}
	if detail != "" {
		lines = append(lines, frame(frameSide)+" "+detail)
	}
	lines = append(lines, frame(frameSide))

	for _, check := range checks {
		lines = append(lines, frame(frameSide)+" "+checkSymbol+" "+check)
	}

	lines = append(lines, frame(frameBottom))
	return strings.Join(lines, "\n") + "\n"
}
