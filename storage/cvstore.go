package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobfit/backend/config"
)

// CVStore persists uploaded CV files
type CVStore interface {
	// Upload stores content and returns a URL that Download accepts
	Upload(ctx context.Context, userEmail, filename string, content []byte) (string, error)
	Download(ctx context.Context, cvURL string) ([]byte, error)
	Close() error
}

// NewCVStore returns the CV store selected by CV_STORAGE
func NewCVStore(ctx context.Context, cfg *config.Config) (CVStore, error) {
	switch cfg.CVStorage {
	case "s3":
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "gcs", "":
		client, err := NewCloudStorageClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported CV storage %q", cfg.CVStorage)
	}
}

// cvObjectKey builds cvs/<sanitized email>/<unix>-<uuid><ext>
func cvObjectKey(userEmail, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))

	sanitized := strings.ReplaceAll(NormalizeEmail(userEmail), "@", "_at_")
	sanitized = strings.ReplaceAll(sanitized, ".", "_")

	return fmt.Sprintf("cvs/%s/%d-%s%s", sanitized, now.Unix(), uuid.NewString()[:8], ext)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// objectKeyFromURL strips prefix from url, failing when the URL belongs elsewhere
func objectKeyFromURL(url, prefix string) (string, error) {
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("invalid CV URL format: %s", url)
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", fmt.Errorf("invalid CV URL format: %s", url)
	}
	return key, nil
}
