package mock

import (
	travel "github.com/Vnwedo/Travel-Recommendation"
)

var _ travel.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of travel.Renderer.
type Renderer struct {
	RenderFn func(view travel.ResultView) error
	ResetFn  func() error
}

func (r *Renderer) Render(view travel.ResultView) error {
	return r.RenderFn(view)
}

func (r *Renderer) Reset() error {
	return r.ResetFn()
}
