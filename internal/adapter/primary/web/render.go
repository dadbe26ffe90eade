package web

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates
var templateFS embed.FS

// renderer executes the embedded page templates. Parsed templates are
// cached by name.
type renderer struct {
	set *pongo2.TemplateSet

	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

func newRenderer() (*renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("open templates: %w", err)
	}
	return &renderer{
		set:       pongo2.NewSet("folio", pongo2.NewFSLoader(sub)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

func (r *renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.templates[name]; ok {
		return tpl, nil
	}
	tpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("load template %q: %w", name, err)
	}
	r.templates[name] = tpl
	return tpl, nil
}

func (r *renderer) render(w io.Writer, name string, data pongo2.Context) error {
	tpl, err := r.template(name)
	if err != nil {
		return err
	}
	if err := tpl.ExecuteWriter(data, w); err != nil {
		return fmt.Errorf("render %q: %w", name, err)
	}
	return nil
}
