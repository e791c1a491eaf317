// Package site serves the foundation's website: informational pages, the
// blog and the contact and donation forms.
package site

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/almare/internal/forms"
	"github.com/dmitrymomot/almare/pkg/analytics"
	"github.com/dmitrymomot/almare/pkg/environment"
	"github.com/dmitrymomot/almare/pkg/handler"
	"github.com/dmitrymomot/almare/pkg/httpserver"
	"github.com/dmitrymomot/almare/pkg/i18n"
	"github.com/dmitrymomot/almare/pkg/logger"
	"github.com/dmitrymomot/almare/pkg/ratelimiter"
)

// Config holds the site settings.
type Config struct {
	SiteURL    string `env:"SITE_URL" envDefault:"https://fundacionalmare.cl"`
	LangCookie string `env:"SITE_LANG_COOKIE" envDefault:"lang"`
	LangQuery  string `env:"SITE_LANG_QUERY" envDefault:"lang"`
	QRSize     int    `env:"SITE_QR_SIZE" envDefault:"256"`
}

// Deps are the collaborators of the site. Limiter, Metrics and Checks are
// optional.
type Deps struct {
	Config      Config
	Environment environment.Environment
	Translator  *i18n.Translator
	Views       *Views
	Forms       *forms.Service
	Tracker     *forms.Tracker
	Blog        *Blog
	Analytics   analytics.Sink
	Logger      *slog.Logger
	Limiter     *ratelimiter.Bucket
	Metrics     http.Handler
	Checks      []httpserver.Check
}

// Site holds the page and form handlers.
type Site struct {
	cfg          Config
	env          environment.Environment
	tr           *i18n.Translator
	views        *Views
	forms        *forms.Service
	tracker      *forms.Tracker
	blog         *Blog
	sink         analytics.Sink
	log          *slog.Logger
	limiter      *ratelimiter.Bucket
	metrics      http.Handler
	checks       []httpserver.Check
	errorHandler handler.ErrorHandler[handler.Context]
}

var ErrMissingDependency = errors.New("site.errors.missing_dependency")

func New(d Deps) (*Site, error) {
	if d.Translator == nil || d.Views == nil || d.Forms == nil || d.Tracker == nil {
		return nil, ErrMissingDependency
	}
	if d.Blog == nil {
		d.Blog = NewBlog(DefaultPosts()...)
	}
	if d.Analytics == nil {
		d.Analytics = analytics.Nop
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Environment == "" {
		d.Environment = environment.Development
	}

	s := &Site{
		cfg:     d.Config,
		env:     d.Environment,
		tr:      d.Translator,
		views:   d.Views,
		forms:   d.Forms,
		tracker: d.Tracker,
		blog:    d.Blog,
		sink:    d.Analytics,
		log:     d.Logger.With(logger.Component("site")),
		limiter: d.Limiter,
		metrics: d.Metrics,
		checks:  d.Checks,
	}
	s.errorHandler = handler.NewErrorHandler(d.Logger, handler.ErrorHandlerConfig{
		ErrorPage: func(r *http.Request, p handler.ErrorPageParams) handler.TemplComponent {
			loc := s.locale(r)
			return s.views.Page("error", s.view(r, "", loc.T("errors.title"), "", p))
		},
		ErrorToast: func(r *http.Request, p handler.ErrorToastParams) handler.TemplComponent {
			return s.views.Partial("error_toast", s.view(r, "", "", "", p))
		},
	})
	return s, nil
}

func (s *Site) locale(r *http.Request) Locale {
	return newLocale(s.tr, i18n.GetLocale(r.Context()))
}

// view builds the data of a page. title and description override the site
// defaults when set.
func (s *Site) view(r *http.Request, hero, title, description string, data any) ViewData {
	loc := s.locale(r)
	return ViewData{
		L:    loc,
		SEO:  pageSEO(loc, s.cfg.SiteURL, r.URL.Path, title, description),
		Path: r.URL.Path,
		Nav:  navigation,
		Hero: hero,
		Data: data,
	}
}

func (s *Site) trackPageView(r *http.Request, title string) {
	s.sink.Track(r.Context(), analytics.PageView(r.URL.Path, title))
}
