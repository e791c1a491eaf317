// Package qrcode renders QR codes as PNG images, data URIs or an HTTP handler.
// The donations page uses it to encode the payment link.
package qrcode
