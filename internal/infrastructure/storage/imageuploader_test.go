package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/shared/config"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

// pngHeader is enough of a PNG for http.DetectContentType to sniff image/png.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func fileHeaderFor(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func TestHTTPImageUploader_Success(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(32<<20))
		require.NotEmpty(t, r.MultipartForm.File["image"])
		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/images/dish.png"})
	}))
	defer srv.Close()

	uploader := NewHTTPImageUploader(&config.UploadConfig{
		Endpoint: srv.URL,
		APIKey:   "k123",
	}, logger.NewLogger())

	url, err := uploader.Upload(context.Background(), fileHeaderFor(t, "dish.png", pngHeader))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/images/dish.png", url)
	assert.Equal(t, "Bearer k123", gotAuth)
}

func TestHTTPImageUploader_PathResponseUsesPublicPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"path": "/images/dish.png"})
	}))
	defer srv.Close()

	uploader := NewHTTPImageUploader(&config.UploadConfig{
		Endpoint:     srv.URL,
		PublicPrefix: "https://cdn.example.com/",
	}, logger.NewLogger())

	url, err := uploader.Upload(context.Background(), fileHeaderFor(t, "dish.png", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/dish.png", url)
}

func TestHTTPImageUploader_RejectsNonImage(t *testing.T) {
	uploader := NewHTTPImageUploader(&config.UploadConfig{Endpoint: "http://unused"}, logger.NewLogger())

	_, err := uploader.Upload(context.Background(), fileHeaderFor(t, "notes.txt", []byte("plain text, not an image")))
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestHTTPImageUploader_RejectsCollaboratorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	uploader := NewHTTPImageUploader(&config.UploadConfig{Endpoint: srv.URL}, logger.NewLogger())

	_, err := uploader.Upload(context.Background(), fileHeaderFor(t, "dish.png", pngHeader))
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}
