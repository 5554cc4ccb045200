package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jobfit/backend/config"
)

// S3Client stores CVs in an S3 compatible bucket such as Cloudflare R2
type S3Client struct {
	client *s3.Client
	bucket string
}

// NewS3Client creates an S3 client from static credentials. S3_ENDPOINT
// overrides the AWS endpoint for R2 and other compatible stores.
func NewS3Client(ctx context.Context, cfg *config.Config) (*S3Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Client{client: client, bucket: cfg.S3Bucket}, nil
}

// Close is a no-op; the SDK client holds no resources
func (c *S3Client) Close() error {
	return nil
}

func (c *S3Client) urlPrefix() string {
	return fmt.Sprintf("s3://%s/", c.bucket)
}

// Upload puts the CV into the bucket and returns an s3:// URL
func (c *S3Client) Upload(ctx context.Context, userEmail, filename string, content []byte) (string, error) {
	key := cvObjectKey(userEmail, filename, time.Now())

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentTypeFor(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	return c.urlPrefix() + key, nil
}

// Download fetches a CV previously returned by Upload
func (c *S3Client) Download(ctx context.Context, cvURL string) ([]byte, error) {
	key, err := objectKeyFromURL(strings.TrimSpace(cvURL), c.urlPrefix())
	if err != nil {
		return nil, err
	}

	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}
