package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/almare/pkg/binder"
	"github.com/dmitrymomot/almare/pkg/handler"
	"github.com/dmitrymomot/almare/pkg/logger"
	"github.com/dmitrymomot/almare/pkg/validator"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func dataStarRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(handler.DataStarHeader, "true")
	return req
}

type contactRequest struct {
	Name string `form:"name" json:"name"`
}

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := func(ctx handler.Context, req contactRequest) handler.Response {
		return handler.Templ(text("hello " + req.Name))
	}
	h := handler.Wrap(echo,
		handler.WithBinders[handler.Context, contactRequest](binder.BindForm(), binder.BindJSON()),
	)

	t.Run("binds form bodies", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Ana"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "hello Ana", rec.Body.String())
	})

	t.Run("skips binders that do not apply", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Luis"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, "hello Luis", rec.Body.String())
	})

	t.Run("bind errors are 400", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_request")
	})

	t.Run("nil response is 500", func(t *testing.T) {
		t.Parallel()
		nilHandler := handler.Wrap(func(handler.Context, contactRequest) handler.Response { return nil })
		rec := httptest.NewRecorder()
		nilHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[handler.Context, contactRequest] {
			return func(next handler.HandlerFunc[handler.Context, contactRequest]) handler.HandlerFunc[handler.Context, contactRequest] {
				return func(ctx handler.Context, req contactRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		decorated := handler.Wrap(echo, handler.WithDecorators(mark("outer"), mark("inner")))
		decorated(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"outer", "inner"}, order)
	})
}

func TestTemplResponses(t *testing.T) {
	t.Parallel()

	t.Run("partial for datastar, full page otherwise", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplPartial(text(`<form id="contact-form">partial</form>`), text("<html>full</html>"))

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/contact", nil)))
		assert.Equal(t, "<html>full</html>", rec.Body.String())

		rec = httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, dataStarRequest(http.MethodPost, "/contact", nil)))
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
		assert.Contains(t, rec.Body.String(), "partial")
	})

	t.Run("multi with script", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplMultiScript(text("page"), "window.open('https://example.com','_blank')",
			handler.Patch(text(`<div id="a">A</div>`)),
			handler.Patch(text(`<p>B</p>`), handler.WithTarget("#b"), handler.WithPatchMode(handler.PatchInner)),
		)

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, dataStarRequest(http.MethodPost, "/", nil)))
		body := rec.Body.String()
		assert.Contains(t, body, `<div id="a">A</div>`)
		assert.Contains(t, body, "#b")
		assert.Contains(t, body, "window.open")

		rec = httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, "page", rec.Body.String())
	})

	t.Run("status applies to plain requests only", func(t *testing.T) {
		t.Parallel()
		resp := handler.WithStatus(http.StatusUnprocessableEntity, handler.Templ(text("form with errors")))

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

		rec = httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, dataStarRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/blog").Render(rec, httptest.NewRequest(http.MethodGet, "/blog/missing", nil)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/blog", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/blog").Render(rec, dataStarRequest(http.MethodGet, "/blog/missing", nil)))
	assert.Contains(t, rec.Body.String(), "/blog")
	assert.Contains(t, rec.Body.String(), "window.location")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSON(map[string]string{"state": "idle"}).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.JSONEq(t, `{"data":{"state":"idle"}}`, rec.Body.String())

	verr := validator.Apply(validator.RequiredString("name", ""))
	rec = httptest.NewRecorder()
	require.NoError(t, handler.JSONError(verr).Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "unprocessable_entity", body.Error.Code)
	assert.Contains(t, body.Error.Details, "name")

	rec = httptest.NewRecorder()
	require.NoError(t, handler.JSONError(handler.ErrConflict).Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	eh := handler.NewErrorHandler(logger.New(logger.WithOutput(&logs), logger.WithFormat(logger.FormatJSON)), handler.ErrorHandlerConfig{
		ErrorPage: func(_ *http.Request, p handler.ErrorPageParams) handler.TemplComponent {
			return text("page:" + p.Key)
		},
		ErrorToast: func(_ *http.Request, p handler.ErrorToastParams) handler.TemplComponent {
			return text(`<div class="toast">` + p.Key + `</div>`)
		},
	})

	tests := []struct {
		name string
		err  error
		code int
		key  string
	}{
		{"http error", handler.ErrNotFound, http.StatusNotFound, "not_found"},
		{"wrapped http error", errors.Join(errors.New("boom"), handler.ErrTooManyRequests), http.StatusTooManyRequests, "too_many_requests"},
		{"validation", validator.Apply(validator.RequiredString("email", "")), http.StatusUnprocessableEntity, "unprocessable_entity"},
		{"media type", binder.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			eh(handler.NewContext(rec, req), tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "page:"+tt.key, rec.Body.String())
		})
	}

	t.Run("datastar gets a toast", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := dataStarRequest(http.MethodPost, "/contact", nil)
		eh(handler.NewContext(rec, req), handler.ErrConflict)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "#toast-container")
		assert.Contains(t, rec.Body.String(), "conflict")
	})

	assert.Contains(t, logs.String(), `"component":"error_handler"`)
}

func TestSSE(t *testing.T) {
	t.Parallel()

	resp := handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendSignals(map[string]any{"state": "idle"}); err != nil {
			return err
		}
		return stream.SendComponent(text(`<div id="status">idle</div>`))
	}, handler.JSON(map[string]string{"state": "idle"}))

	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, dataStarRequest(http.MethodGet, "/forms/x/state", nil)))
	assert.Contains(t, rec.Body.String(), "datastar-patch-signals")
	assert.Contains(t, rec.Body.String(), `<div id="status">idle</div>`)

	rec = httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/forms/x/state", nil)))
	assert.JSONEq(t, `{"data":{"state":"idle"}}`, rec.Body.String())

	err := handler.SSE(func(handler.StreamContext) error { return nil }, nil).
		Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	var httpErr handler.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrConflict)
	}, handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) {
		got = err
	}))

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.ErrorIs(t, got, handler.ErrConflict)
}
