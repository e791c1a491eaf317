package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/almare/pkg/binder"
	"github.com/dmitrymomot/almare/pkg/logger"
	"github.com/dmitrymomot/almare/pkg/requestid"
	"github.com/dmitrymomot/almare/pkg/validator"
)

// ErrorPageParams is the data for a full error page.
type ErrorPageParams struct {
	Key        string // translation key under "errors."
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is the data for a DataStar error toast.
type ErrorToastParams struct {
	Key       string
	Type      string // "error", "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler. Page and toast factories
// receive the request so they can localize.
type ErrorHandlerConfig struct {
	ErrorPage   func(r *http.Request, p ErrorPageParams) TemplComponent
	ErrorToast  func(r *http.Request, p ErrorToastParams) TemplComponent
	ToastTarget string // default "#toast-container"
}

// ErrorInfo is the classification of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string // translation key
	Type       string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{StatusCode: http.StatusInternalServerError, Message: ErrInternalServerError.Key}

	var (
		httpErr HTTPError
		valErr  validator.ValidationErrors
	)
	switch {
	case errors.As(err, &valErr):
		info.StatusCode, info.Message = ErrUnprocessableEntity.Code, ErrUnprocessableEntity.Key
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode, info.Message = ErrUnsupportedMediaType.Code, ErrUnsupportedMediaType.Key
	case binder.IsBindError(err):
		info.StatusCode, info.Message = ErrBadRequest.Code, ErrBadRequest.Key
	case errors.As(err, &httpErr):
		info.StatusCode, info.Message = httpErr.Code, httpErr.Key
	}

	if info.StatusCode < http.StatusInternalServerError {
		info.Type, info.LogLevel = "warning", slog.LevelWarn
	} else {
		info.Type, info.LogLevel = "error", slog.LevelError
	}
	return info
}

// NewErrorHandler logs the error and renders an error page, or a toast for
// DataStar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			if cfg.ErrorToast == nil {
				return
			}
			toast := cfg.ErrorToast(r, ErrorToastParams{Key: info.Message, Type: info.Type, RequestID: reqID})
			resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend))
			if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error toast", logger.Error(rerr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}
		page := cfg.ErrorPage(r, ErrorPageParams{
			Key:        info.Message,
			StatusCode: info.StatusCode,
			RequestID:  reqID,
			RetryURL:   r.URL.Path,
		})
		if rerr := WithStatus(info.StatusCode, Templ(page)).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error page", logger.Error(rerr))
			http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
