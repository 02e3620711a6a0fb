package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/config"
	apperrors "github.com/Isak-k/Sanbitu-FC/internal/errors"
	"github.com/Isak-k/Sanbitu-FC/internal/logger"
)

// ImageHostService uploads gallery images to the third-party image hosting API.
// The host accepts base64-encoded payloads and returns display, thumbnail and
// delete URLs for each uploaded image.
type ImageHostService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewImageHostService creates a new image host service
func NewImageHostService(cfg *config.Config) *ImageHostService {
	timeout := time.Duration(cfg.ImageHostTimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &ImageHostService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// UploadedImage represents the host's view of a stored image
type UploadedImage struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	DeleteURL    string `json:"delete_url,omitempty"`
}

// imageHostUploadResponse represents the host's upload API response
type imageHostUploadResponse struct {
	Data struct {
		URL   string `json:"url"`
		Thumb struct {
			URL string `json:"url"`
		} `json:"thumb"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Upload sends raw image bytes to the image host and returns its URLs
func (s *ImageHostService) Upload(name string, data []byte) (*UploadedImage, error) {
	if s.cfg.ImageHostAPIKey == "" {
		return nil, apperrors.ErrImageHostNotConfigured
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("image", "image data is empty")
	}

	form := url.Values{}
	form.Set("key", s.cfg.ImageHostAPIKey)
	form.Set("name", name)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	endpoint := strings.TrimRight(s.cfg.ImageHostBaseURL, "/") + "/upload"
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image host request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image host response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.New().WithField("status", resp.StatusCode).Warn("image host upload rejected")
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrImageHostUploadFailed, resp.StatusCode)
	}

	var uploadResp imageHostUploadResponse
	if err := json.Unmarshal(body, &uploadResp); err != nil {
		return nil, fmt.Errorf("failed to decode image host response: %w", err)
	}
	if !uploadResp.Success || uploadResp.Data.URL == "" {
		return nil, apperrors.ErrImageHostUploadFailed
	}

	return &UploadedImage{
		URL:          uploadResp.Data.URL,
		ThumbnailURL: uploadResp.Data.Thumb.URL,
		DeleteURL:    uploadResp.Data.DeleteURL,
	}, nil
}

// Delete removes the remote copy of an image via its stored delete URL.
// Failures are logged and swallowed: the host keeps orphan images at worst.
func (s *ImageHostService) Delete(deleteURL string) {
	if deleteURL == "" {
		return
	}

	req, err := http.NewRequest(http.MethodGet, deleteURL, nil)
	if err != nil {
		logger.New().WithField("delete_url", deleteURL).Warnf("invalid image delete URL: %v", err)
		return
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.New().Warnf("image host delete failed: %v", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		logger.New().WithField("status", resp.StatusCode).Warn("image host delete rejected")
	}
}
