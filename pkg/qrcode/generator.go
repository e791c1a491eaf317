package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent = errors.New("qrcode: nothing to encode")
	ErrEncode       = errors.New("qrcode: encoding failed")
)

// DefaultSize is the edge length in pixels used when none is given.
const DefaultSize = 256

// Error recovery level for every generated code.
const recovery = skipqrcode.Medium

// Generate renders content as a square PNG of size pixels.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}

	code, err := skipqrcode.New(content, recovery)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	img, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return img, nil
}

// DataURI is Generate encoded for an inline <img src>.
func DataURI(content string, size int) (string, error) {
	img, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img), nil
}
