// Package lipgloss renders search results as styled terminal cards.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	travel "github.com/Vnwedo/Travel-Recommendation"
	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F1FA8C"))

	imageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(0, 1).
			Width(60)
)

// Ensure Renderer implements travel.Renderer at compile time.
var _ travel.Renderer = (*Renderer)(nil)

// Renderer writes result views as bordered terminal cards.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a new Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render draws one card per result, or the no-results notice when the
// view carries no cards.
func (r *Renderer) Render(view travel.ResultView) error {
	if len(view.Cards) == 0 {
		_, err := fmt.Fprintln(r.w, noticeStyle.Render(view.Notice))
		return err
	}

	for _, card := range view.Cards {
		var b strings.Builder
		b.WriteString(nameStyle.Render(card.Name))
		b.WriteString("\n")
		b.WriteString(card.Description)
		if card.LocalTime != "" {
			b.WriteString("\n")
			b.WriteString(timeStyle.Render("Local time: " + card.LocalTime))
		}
		b.WriteString("\n")
		b.WriteString(imageStyle.Render(card.ImageURL))

		if _, err := fmt.Fprintln(r.w, cardStyle.Render(b.String())); err != nil {
			return err
		}
	}
	return nil
}

// Reset is a no-op: a scrolling terminal has no persistent results
// surface to clear.
func (r *Renderer) Reset() error {
	return nil
}
