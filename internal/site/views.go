package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/a-h/templ"
)

// ErrUnknownView is returned when rendering a template that was not loaded.
var ErrUnknownView = errors.New("site.errors.unknown_view")

// NavItem is a header navigation link.
type NavItem struct {
	Href string
	Key  string
}

var navigation = []NavItem{
	{"/", "common.navigation.home"},
	{"/about", "common.navigation.about"},
	{"/services", "common.navigation.services"},
	{"/transparency", "common.navigation.transparency"},
	{"/donations", "common.navigation.donations"},
	{"/blog", "common.navigation.blog"},
	{"/contact", "common.navigation.contact"},
}

// ViewData is what every template receives.
type ViewData struct {
	L    Locale
	SEO  SEO
	Path string
	Nav  []NavItem
	Hero string // translation namespace of the page hero
	Data any
}

// WithData returns a copy carrying v, for rendering a partial from a page.
func (d ViewData) WithData(v any) ViewData {
	d.Data = v
	return d
}

// Views renders the embedded html/template files as templ components.
// Every page is parsed together with the layout and all partials.
type Views struct {
	pages    map[string]*template.Template
	partials *template.Template
}

var templateFuncs = template.FuncMap{
	"signals": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
	"lower": strings.ToLower,
	"safeURL": func(s string) template.URL {
		return template.URL(s)
	},
}

// NewViews parses layout.html, partials/*.html and one template set per
// pages/*.html file from fsys.
func NewViews(fsys fs.FS) (*Views, error) {
	base, err := template.New("base").Funcs(templateFuncs).ParseFS(fsys, "layout.html", "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return nil, err
	}
	v := &Views{pages: make(map[string]*template.Template, len(files)), partials: base}
	for _, file := range files {
		t, err := template.Must(base.Clone()).ParseFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		v.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return v, nil
}

// Page renders a full HTML document with the named page as content.
func (v *Views) Page(name string, data ViewData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		t, ok := v.pages[name]
		if !ok {
			return fmt.Errorf("%w: page %q", ErrUnknownView, name)
		}
		return t.ExecuteTemplate(w, "layout", data)
	})
}

// Partial renders one named fragment, for DataStar patches.
func (v *Views) Partial(name string, data ViewData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if v.partials.Lookup(name) == nil {
			return fmt.Errorf("%w: partial %q", ErrUnknownView, name)
		}
		return v.partials.ExecuteTemplate(w, name, data)
	})
}
