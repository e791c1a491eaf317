package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/almare/pkg/qrcode"
)

const link = "https://www.paypal.me/FundacionAlmare/30USD"

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("rejects blank content", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "  \t\n"} {
			out, err := qrcode.Generate(in, 256)
			assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, out)
		}
	})

	t.Run("produces a png of the requested size", func(t *testing.T) {
		t.Parallel()
		out, err := qrcode.Generate(link, 128)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
	})

	t.Run("defaults the size", func(t *testing.T) {
		t.Parallel()
		out, err := qrcode.Generate(link, 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	uri, err := qrcode.DataURI(link, 64)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)

	_, err = qrcode.DataURI("", 64)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	h, err := qrcode.Handler(link, 64)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/donations/qr.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	_, err = png.Decode(rec.Body)
	assert.NoError(t, err)

	_, err = qrcode.Handler(" ", 64)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}
