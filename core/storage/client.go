package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bucket-provisioner/core/platform"
)

// ErrBucketNotFound is returned when an operation targets a missing bucket.
var ErrBucketNotFound = errors.New("bucket not found")

// BucketInfo describes a remote bucket.
type BucketInfo struct {
	Name          string
	Public        bool
	FileSizeLimit int64
}

// BucketOptions are applied when a bucket is created.
type BucketOptions struct {
	// Public makes objects readable without credentials.
	Public bool
	// FileSizeLimit caps the size of a single object in bytes; zero means no limit.
	FileSizeLimit int64
}

// UploadOptions control a single object upload.
type UploadOptions struct {
	ContentType string
	// Upsert overwrites an existing object at the same path.
	Upsert bool
}

// ObjectInfo describes a remote object.
type ObjectInfo struct {
	// Key is the full object path inside the bucket.
	Key  string
	Size int64
}

// Client defines the interface for storage operations.
type Client interface {
	// ListBuckets returns every bucket visible to the caller.
	ListBuckets(ctx context.Context) ([]BucketInfo, error)
	// CreateBucket creates a new bucket.
	CreateBucket(ctx context.Context, name string, opts BucketOptions) error
	// Upload stores size bytes read from r at path inside bucket.
	Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, opts UploadOptions) error
	// ListObjects lists objects in bucket whose key starts with prefix.
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
}

// NewClient creates the storage client selected by cfg.Driver.
// api is required by the rest driver and ignored by the s3 driver.
func NewClient(cfg Config, api *platform.Client) (Client, error) {
	switch cfg.Driver {
	case DriverREST, "":
		if api == nil {
			return nil, errors.New("rest storage driver requires a platform client")
		}
		return NewRESTClient(api), nil
	case DriverS3:
		return NewS3Client(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
