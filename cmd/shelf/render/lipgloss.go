package render

import (
	"fmt"
	"io"
	"os"
	"shelf/internal/catalog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const emptyMessage = "The collection is empty.\n"

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle     lipgloss.Style
	authorStyle    lipgloss.Style
	kindStyle      lipgloss.Style
	availableStyle lipgloss.Style
	loanedStyle    lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:          width,
		r:              r,
		titleStyle:     r.NewStyle().Bold(true),
		authorStyle:    r.NewStyle().Faint(true),
		kindStyle:      r.NewStyle().Faint(true),
		availableStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		loanedStyle:    r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderBookList(view BookListView) string {
	if view.IsEmpty() {
		return emptyMessage
	}

	var sb strings.Builder
	for i, item := range view.Items {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(r.renderItem(item))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item BookListItem) string {
	statusStyle := r.availableStyle
	if item.Status == catalog.StatusLoaned {
		statusStyle = r.loanedStyle
	}

	title := r.titleStyle.Render(item.Title)
	status := statusStyle.Render(string(item.Status))

	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(status))
	headerLine := title + strings.Repeat(" ", padding) + status

	lines := []string{
		headerLine,
		r.authorStyle.Render(fmt.Sprintf("  %s · %d", item.Author, item.Year)),
		r.kindStyle.Render("  " + kindLabel(item)),
	}
	return strings.Join(lines, "\n")
}

func kindLabel(item BookListItem) string {
	switch item.Kind {
	case catalog.KindDigital:
		if item.Format == "" {
			return string(catalog.KindDigital)
		}
		return string(catalog.KindDigital) + " · " + item.Format
	default:
		return string(catalog.KindPhysical)
	}
}
