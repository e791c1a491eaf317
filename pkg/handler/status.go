package handler

import "net/http"

type statusResponse struct {
	code int
	next Response
}

func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	// SSE streams are always 200; the status is only meaningful for HTML.
	if IsDataStar(r) {
		return s.next.Render(w, r)
	}
	return s.next.Render(&statusWriter{ResponseWriter: w, code: s.code}, r)
}

// WithStatus renders next with the given status code for plain requests.
func WithStatus(code int, next Response) Response {
	return statusResponse{code: code, next: next}
}

type statusWriter struct {
	http.ResponseWriter
	code  int
	wrote bool
}

func (s *statusWriter) WriteHeader(int) {
	if !s.wrote {
		s.wrote = true
		s.ResponseWriter.WriteHeader(s.code)
	}
}

func (s *statusWriter) Write(b []byte) (int, error) {
	s.WriteHeader(s.code)
	return s.ResponseWriter.Write(b)
}

func (s *statusWriter) Unwrap() http.ResponseWriter { return s.ResponseWriter }
