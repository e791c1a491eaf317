package site

import (
	"net/http"

	"github.com/dmitrymomot/almare/pkg/handler"
)

type homeStat struct {
	Value string
	Key   string
}

type homeAction struct {
	Key  string
	Href string
}

type homeData struct {
	Stats   []homeStat
	Actions []homeAction
}

type listData struct {
	Items []string
}

var (
	home = homeData{
		Stats: []homeStat{
			{"2,500+", "home.impact.families_helped"},
			{"45", "home.impact.projects_completed"},
			{"180", "home.impact.volunteers_active"},
			{"7", "home.impact.years_of_work"},
		},
		Actions: []homeAction{
			{"donate", "/donations"},
			{"volunteer", "/contact"},
			{"transparency", "/transparency"},
		},
	}
	aboutValues = listData{Items: []string{
		"empathy", "respect", "commitment", "transparency",
		"inclusion", "hope", "awareness", "accompaniment",
	}}
	serviceItems = listData{Items: []string{
		"support", "workshops", "talks", "holistic", "consulting", "information",
	}}
	privacyItems = listData{Items: []string{"identification", "communication", "navigation"}}
)

// staticPage renders a content page whose hero lives under namespace ns.
func (s *Site) staticPage(name, ns string, data any) http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		r := ctx.Request()
		loc := s.locale(r)
		title := loc.T(ns + ".hero.title")
		s.trackPageView(r, title)
		return handler.Templ(s.views.Page(name, s.view(r, ns, title, loc.T(ns+".hero.subtitle"), data)))
	}, handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler))
}

func (s *Site) notFound(ctx handler.Context, _ struct{}) handler.Response {
	r := ctx.Request()
	loc := s.locale(r)
	return handler.WithStatus(http.StatusNotFound,
		handler.Templ(s.views.Page("not_found", s.view(r, "", loc.T("common.not_found.title"), "", nil))))
}

func (s *Site) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
}

type blogRequest struct {
	Category string `query:"category"`
}

type blogData struct {
	Category   string
	Categories []string
	Posts      []BlogPost
}

func (s *Site) blogIndex(ctx handler.Context, req blogRequest) handler.Response {
	r := ctx.Request()
	loc := s.locale(r)
	title := loc.T("blog.hero.title")
	s.trackPageView(r, title)

	data := blogData{Categories: s.blog.Categories(), Posts: s.blog.List(req.Category)}
	for _, c := range data.Categories {
		if c == req.Category {
			data.Category = c
		}
	}
	return handler.Templ(s.views.Page("blog", s.view(r, "blog", title, loc.T("blog.hero.subtitle"), data)))
}

type postRequest struct {
	Slug string `path:"slug"`
}

type postData struct {
	Post    BlogPost
	Related []BlogPost
}

func (s *Site) blogPost(ctx handler.Context, req postRequest) handler.Response {
	post, ok := s.blog.Lookup(req.Slug)
	if !ok {
		return handler.Redirect("/blog")
	}
	r := ctx.Request()
	s.trackPageView(r, post.Title)

	data := postData{Post: post, Related: s.blog.Related(post.Slug, 2)}
	return handler.Templ(s.views.Page("post", s.view(r, "", post.Title, post.Excerpt, data)))
}
