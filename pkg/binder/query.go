package binder

import "net/http"

// BindQuery binds `query:"name"` fields from the URL query. Slices accept
// repeated or comma separated values; pointers mark optional fields.
func BindQuery() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
