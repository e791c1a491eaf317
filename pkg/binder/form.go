package binder

import (
	"fmt"
	"net/http"
)

const (
	mimeFormURLEncoded = "application/x-www-form-urlencoded"
	mimeMultipart      = "multipart/form-data"
	maxMultipartMemory = 1 << 20
)

// BindForm binds `form:"name"` fields from urlencoded or multipart bodies.
// Other content types return ErrBinderNotApplicable.
//
//	type ContactRequest struct {
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
func BindForm() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch mediaType(r) {
		case mimeFormURLEncoded:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
		case mimeMultipart:
			if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.MultipartForm.Value, ErrInvalidForm)
		case "":
			if r.ContentLength > 0 {
				return fmt.Errorf("%w: expected %s", ErrMissingContentType, mimeFormURLEncoded)
			}
			return ErrBinderNotApplicable
		default:
			return ErrBinderNotApplicable
		}
	}
}
