// Package storage provides the client for the external image upload
// collaborator. Files are validated locally (size and MIME gate) and pushed
// to the collaborator over HTTP; the returned public URL is stored on the
// catalog row.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"caterly/internal/shared/config"
	"caterly/internal/shared/constants"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

// ImageUploader pushes validated image files to the upload collaborator.
type ImageUploader interface {
	Upload(ctx context.Context, header *multipart.FileHeader) (string, error)
}

type HTTPImageUploader struct {
	endpoint     string
	apiKey       string
	publicPrefix string
	client       *http.Client
	logger       logger.Interface
}

func NewHTTPImageUploader(cfg *config.UploadConfig, logger logger.Interface) *HTTPImageUploader {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPImageUploader{
		endpoint:     cfg.Endpoint,
		apiKey:       cfg.APIKey,
		publicPrefix: cfg.PublicPrefix,
		client:       &http.Client{Timeout: timeout},
		logger:       logger,
	}
}

// Upload validates the file and sends it to the collaborator.
// Returns the public URL of the stored image.
func (u *HTTPImageUploader) Upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if header.Size > constants.MaxImageUploadBytes {
		return "", errors.NewValidationError("image exceeds the 10MB size limit")
	}

	file, err := header.Open()
	if err != nil {
		return "", errors.NewBadRequestError("failed to read uploaded file")
	}
	defer file.Close()

	// Sniff the real content type instead of trusting the client header
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", errors.NewBadRequestError("failed to read uploaded file")
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.NewValidationError("only image files are allowed")
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", errors.NewBadRequestError("failed to read uploaded file")
	}

	if u.endpoint == "" {
		return "", errors.NewInternalError("upload service is not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(constants.UploadFormField, header.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to buffer upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set(constants.HeaderContentType, writer.FormDataContentType())
	if u.apiKey != "" {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+u.apiKey)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		u.logger.Errorw("upload collaborator unreachable", "error", err)
		return "", errors.NewBadRequestError("image upload failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		u.logger.Warnw("upload collaborator rejected file", "status", resp.StatusCode)
		return "", errors.NewBadRequestError("image upload failed")
	}

	var result struct {
		URL  string `json:"url"`
		Path string `json:"path"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		u.logger.Errorw("failed to decode upload response", "error", err)
		return "", errors.NewBadRequestError("image upload failed")
	}

	url := result.URL
	if url == "" && result.Path != "" {
		url = strings.TrimRight(u.publicPrefix, "/") + "/" + strings.TrimLeft(result.Path, "/")
	}
	if url == "" {
		return "", errors.NewBadRequestError("image upload failed")
	}

	u.logger.Infow("image uploaded", "filename", header.Filename, "size", header.Size)
	return url, nil
}
