package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures a DataStar element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget patches the element matching selector instead of the one with
// the component's root id.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options, for TemplMulti.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	partial TemplComponent
	full    TemplComponent
	options []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.full.Render(r.Context(), w)
}

// Templ renders component as HTML, or as an element patch for DataStar.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{partial: component, full: component, options: opts}
}

// TemplPartial patches partial for DataStar requests and renders the full
// page otherwise.
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templResponse{partial: partial, full: full, options: opts}
}

type templMultiResponse struct {
	patches []TemplPatch
	script  string
	full    TemplComponent
}

func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if t.full != nil {
			return t.full.Render(r.Context(), w)
		}
		for _, p := range t.patches {
			if err := p.Component.Render(r.Context(), w); err != nil {
				return err
			}
		}
		return nil
	}

	sse := datastar.NewSSE(w, r)
	for _, p := range t.patches {
		if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	if t.script != "" {
		return sse.ExecuteScript(t.script)
	}
	return nil
}

// TemplMulti sends several patches in one DataStar response. Plain requests
// get the components concatenated.
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches}
}

// TemplMultiScript is TemplMulti followed by a script executed in the
// browser. Plain requests get full instead.
func TemplMultiScript(full TemplComponent, script string, patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches, script: script, full: full}
}
