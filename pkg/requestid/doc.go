// Package requestid tags every request with a correlation id. The id comes
// from a valid incoming X-Request-ID header or a fresh UUID, is stored in the
// request context and is echoed back in the response header.
//
// LoggerExtractor plugs the id into pkg/logger so request-scoped log records
// carry request_id automatically.
package requestid
