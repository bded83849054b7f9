package validator

import (
	"errors"
	"net/http"
	"strings"
)

// DefaultMaxUploadSize is the fallback upload size cap.
const DefaultMaxUploadSize = 10 * 1024 * 1024 // 10MB

// UploadConfig defines constraints for file uploads.
type UploadConfig struct {
	MaxFileSize      int64
	AllowedMimeTypes map[string]bool
}

// NewUploadConfig builds an UploadConfig from the configured size cap and
// MIME whitelist. An empty whitelist allows every type.
func NewUploadConfig(maxSize int64, allowedTypes []string) *UploadConfig {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		normalized := strings.ToLower(strings.TrimSpace(t))
		if normalized != "" {
			allowed[normalized] = true
		}
	}
	return &UploadConfig{MaxFileSize: maxSize, AllowedMimeTypes: allowed}
}

// ValidateFileSize checks if the file size is within the allowed limit.
func (c *UploadConfig) ValidateFileSize(size int64) error {
	if size <= 0 {
		return errors.New("file is empty")
	}
	if size > c.MaxFileSize {
		return errors.New("file too large")
	}
	return nil
}

// ValidateMimeType checks if the MIME type is in the allowed whitelist.
func (c *UploadConfig) ValidateMimeType(mimeType string) error {
	if len(c.AllowedMimeTypes) == 0 {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	if normalized == "" {
		return errors.New("missing content type")
	}
	// Handle MIME types with parameters (e.g., "text/plain; charset=utf-8")
	if idx := strings.Index(normalized, ";"); idx > 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	if !c.AllowedMimeTypes[normalized] {
		return errors.New("unsupported file type")
	}
	return nil
}

// DetectAndValidateMimeType detects the MIME type from file content and
// validates it against the whitelist. The declared type is preferred when
// present so clients can keep precise types the sniffer cannot produce.
func (c *UploadConfig) DetectAndValidateMimeType(data []byte, declaredType string) (string, error) {
	detected := strings.TrimSpace(declaredType)
	if detected == "" {
		detected = http.DetectContentType(data)
	}
	if idx := strings.Index(detected, ";"); idx > 0 {
		detected = strings.TrimSpace(detected[:idx])
	}
	if err := c.ValidateMimeType(detected); err != nil {
		return detected, err
	}
	return detected, nil
}

// Validate performs full validation on an upload.
func (c *UploadConfig) Validate(size int64, mimeType string, data []byte) error {
	if err := c.ValidateFileSize(size); err != nil {
		return err
	}
	if _, err := c.DetectAndValidateMimeType(data, mimeType); err != nil {
		return err
	}
	return nil
}
