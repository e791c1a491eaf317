package qrcode

import (
	"net/http"
	"strconv"
)

// Handler serves the QR code for content as image/png. The image is encoded
// once, up front.
func Handler(content string, size int) (http.Handler, error) {
	png, err := Generate(content, size)
	if err != nil {
		return nil, err
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(png)
	}), nil
}
