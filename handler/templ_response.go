package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures a datastar element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the fragment is merged into the target.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch pairs a component with its patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch builds a TemplPatch.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	status  int
	patches []TemplPatch
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders component as HTML, or as one datastar patch for datastar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplWithStatus is Templ with an explicit status for plain HTML responses.
// Event streams always answer 200.
func TemplWithStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{status: status, patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplMulti renders several patches in order.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}
