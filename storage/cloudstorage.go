package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"

	"github.com/jobfit/backend/config"
)

// CloudStorageClient stores CVs in Google Cloud Storage
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.CVBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func (c *CloudStorageClient) urlPrefix() string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
}

// Upload writes the CV to the bucket and returns its public URL
func (c *CloudStorageClient) Upload(ctx context.Context, userEmail, filename string, content []byte) (string, error) {
	objectName := cvObjectKey(userEmail, filename, time.Now())

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentTypeFor(filename)

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return c.urlPrefix() + objectName, nil
}

// Download reads a CV previously returned by Upload
func (c *CloudStorageClient) Download(ctx context.Context, cvURL string) ([]byte, error) {
	objectName, err := objectKeyFromURL(cvURL, c.urlPrefix())
	if err != nil {
		return nil, err
	}

	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV: %w", err)
	}
	return data, nil
}

// SignedURL generates a V4 signed URL for temporary access to a stored CV
func (c *CloudStorageClient) SignedURL(cvURL string, expiration time.Duration) (string, error) {
	objectName, err := objectKeyFromURL(cvURL, c.urlPrefix())
	if err != nil {
		return "", err
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(objectName, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return url, nil
}
