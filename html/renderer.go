// Package html renders search results as an HTML card grid.
package html

import (
	"html/template"
	"io"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

// resultsTemplate draws one card per result, or the no-results notice
// when the view is empty. The onerror fallback covers images that
// resolve but fail to load at display time.
const resultsTemplate = `{{if .Cards}}<div class="results-grid">
{{range .Cards}}  <div class="result-card">
    <img src="{{.ImageURL}}" alt="{{.Name}}" onerror="this.onerror=null;this.src='` + travel.PlaceholderImageRef + `'">
    <h3>{{.Name}}</h3>
    <p>{{.Description}}</p>
{{if .LocalTime}}    <p class="local-time">Current time: {{.LocalTime}}</p>
{{end}}  </div>
{{end}}</div>
{{else}}<p class="no-results">{{.Notice}}</p>
{{end}}`

const emptyState = `<div class="results-grid"></div>` + "\n"

// Ensure Renderer implements travel.Renderer at compile time.
var _ travel.Renderer = (*Renderer)(nil)

// Renderer writes result views as HTML markup.
type Renderer struct {
	w    io.Writer
	tmpl *template.Template
}

// NewRenderer creates a new Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:    w,
		tmpl: template.Must(template.New("results").Parse(resultsTemplate)),
	}
}

// Render draws the view as a card grid, or the no-results notice when
// the view carries no cards.
func (r *Renderer) Render(view travel.ResultView) error {
	return r.tmpl.Execute(r.w, view)
}

// Reset writes the empty default state of the results area.
func (r *Renderer) Reset() error {
	_, err := io.WriteString(r.w, emptyState)
	return err
}
