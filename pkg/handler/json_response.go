package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/almare/pkg/validator"
)

// JSONResponse is the JSON envelope.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON responds with 200 and {"data": v}.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
}

// JSONError responds with the status and code classified from err.
func JSONError(err error) Response {
	info := classifyError(err)
	detail := &ErrorDetail{Code: info.Message, Message: http.StatusText(info.StatusCode)}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		detail.Details = ve.Map()
	}
	return jsonResponse{status: info.StatusCode, body: JSONResponse{Error: detail}}
}
