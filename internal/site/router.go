package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/almare/pkg/binder"
	"github.com/dmitrymomot/almare/pkg/environment"
	"github.com/dmitrymomot/almare/pkg/handler"
	"github.com/dmitrymomot/almare/pkg/httpserver"
	"github.com/dmitrymomot/almare/pkg/i18n"
	"github.com/dmitrymomot/almare/pkg/ratelimiter"
	"github.com/dmitrymomot/almare/pkg/requestid"
)

func wrap[R any](s *Site, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
	)
}

// Handler returns the site router.
func (s *Site) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(s.env),
		i18n.Middleware(s.tr, s.cfg.LangCookie, s.cfg.LangQuery),
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(s.log, s.checks...))
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(Static())))

	r.Get("/", s.staticPage("home", "home", home))
	r.Get("/about", s.staticPage("about", "about", aboutValues))
	r.Get("/services", s.staticPage("services", "services", serviceItems))
	r.Get("/transparency", s.staticPage("transparency", "transparency", nil))
	r.Get("/privacy-policy", s.staticPage("privacy", "privacy", privacyItems))
	r.Get("/blog", wrap(s, s.blogIndex, binder.BindQuery()))
	r.Get("/blog/{slug}", wrap(s, s.blogPost, binder.Path(chi.URLParam)))

	r.Get("/contact", wrap[struct{}](s, s.contactPage))
	r.Get("/donations", wrap[struct{}](s, s.donationsPage))
	r.Get("/donations/qr.png", wrap(s, s.donationQR, binder.BindQuery()))
	r.Get("/forms/{id}/state", wrap(s, s.formState, binder.Path(chi.URLParam)))

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, ratelimiter.PathScoped(ratelimiter.ClientIP),
				http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					s.errorHandler(handler.NewContext(w, req), handler.ErrTooManyRequests)
				}),
			))
		}
		r.Post("/contact", wrap(s, s.submitContact, binder.BindForm(), binder.BindJSON()))
		r.Post("/donations", wrap(s, s.submitDonation, binder.BindForm(), binder.BindJSON()))
		r.Post("/donations/currency", wrap(s, s.selectCurrency, binder.BindForm(), binder.BindJSON()))
	})

	r.NotFound(wrap[struct{}](s, s.notFound))
	r.MethodNotAllowed(s.methodNotAllowed)
	return r
}
