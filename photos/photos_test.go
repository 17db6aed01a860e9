package photos_test

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Gin_postgres_redis_toolshare/photos"
)

func multipartFiles(t *testing.T, contents ...[]byte) []*multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, c := range contents {
		fw, err := w.CreateFormFile("photos", "photo.bin")
		require.NoError(t, err)
		_, err = fw.Write(c)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["photos"]
}

func TestEncodeFiles(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 16)...)
	files := multipartFiles(t, png, []byte("plain text payload"))

	urls, err := photos.EncodeFiles(files)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	assert.True(t, strings.HasPrefix(urls[0], "data:image/png;base64,"))

	// payload survives the round trip
	b64 := urls[1][strings.Index(urls[1], ",")+1:]
	decoded, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain text payload"), decoded)
}

func TestEncodeFilesEmpty(t *testing.T) {
	urls, err := photos.EncodeFiles(nil)
	require.NoError(t, err)
	assert.Empty(t, urls)
}
