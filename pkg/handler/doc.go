// Package handler turns typed handler functions into http.HandlerFunc.
//
// Wrap binds the request into a struct with the configured binders, calls
// the handler and renders the returned Response. Responses adapt to the
// caller: plain browser requests get full HTML pages, DataStar requests get
// element patches over SSE. Errors go through one ErrorHandler that
// classifies them (HTTPError, validation, binding) into a status code.
package handler
