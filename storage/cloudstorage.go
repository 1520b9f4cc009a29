package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/myjobmatch/skillgap/config"
)

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client *storage.Client
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, googleOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{client: client}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// Read downloads the object named by a gs:// location
func (c *CloudStorageClient) Read(ctx context.Context, loc Location) ([]byte, error) {
	return c.ReadObject(ctx, loc.Host, loc.Path)
}

// ReadObject downloads an object's content
func (c *CloudStorageClient) ReadObject(ctx context.Context, bucket, object string) ([]byte, error) {
	rc, err := c.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, fmt.Errorf("gs://%s/%s: %w", bucket, object, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

func googleOptions(cfg *config.Config) []option.ClientOption {
	if cfg == nil || cfg.GoogleCredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(cfg.GoogleCredentialsFile)}
}
