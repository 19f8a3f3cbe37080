package mock

import "github.com/fwojciec/dochtml"

var _ dochtml.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of dochtml.Renderer.
type Renderer struct {
	RenderWordFn  func(title string, model *dochtml.Model) ([]byte, error)
	RenderPagesFn func(title string, pages []dochtml.NormalizedPage) ([]byte, error)
}

func (r *Renderer) RenderWord(title string, model *dochtml.Model) ([]byte, error) {
	return r.RenderWordFn(title, model)
}

func (r *Renderer) RenderPages(title string, pages []dochtml.NormalizedPage) ([]byte, error) {
	return r.RenderPagesFn(title, pages)
}
