package handler

import "net/http"

// SSEHandler runs for the lifetime of a DataStar SSE connection.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler  SSEHandler
	fallback Response
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		if s.fallback != nil {
			return s.fallback.Render(w, r)
		}
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&stream{Context: base, events: sse})
}

// SSE streams updates to a DataStar client. Plain requests get fallback, or
// 400 when fallback is nil.
func SSE(handler SSEHandler, fallback Response) Response {
	return sseResponse{handler: handler, fallback: fallback}
}
