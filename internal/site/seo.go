package site

import "strings"

const (
	defaultOGImage   = "/og-image.jpg"
	maxDescriptionLn = 160
)

// SEO is the page metadata rendered into <head>.
type SEO struct {
	Title        string
	Description  string
	Keywords     string
	OGImage      string
	CanonicalURL string
}

// pageSEO merges a page title and description over the localized site
// defaults. A page title becomes "<title> | Almare".
func pageSEO(loc Locale, siteURL, path, title, description string) SEO {
	seo := SEO{
		Title:       loc.T("seo.title"),
		Description: loc.T("seo.description"),
		Keywords:    loc.T("seo.keywords"),
		OGImage:     defaultOGImage,
	}
	if title != "" {
		seo.Title = title + " | " + loc.T("common.site_name")
	}
	if description != "" {
		seo.Description = truncate(description, maxDescriptionLn)
	}
	if siteURL != "" {
		seo.CanonicalURL = strings.TrimRight(siteURL, "/") + path
	}
	return seo
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}
