package mocks

import (
	"context"
	"io"

	"bucket-provisioner/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListBuckets(ctx context.Context) ([]storage.BucketInfo, error) {
	args := m.Called(ctx)
	if buckets, ok := args.Get(0).([]storage.BucketInfo); ok {
		return buckets, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateBucket(ctx context.Context, name string, opts storage.BucketOptions) error {
	args := m.Called(ctx, name, opts)
	return args.Error(0)
}

func (m *Client) Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, opts storage.UploadOptions) error {
	args := m.Called(ctx, bucket, path, r, size, opts)
	return args.Error(0)
}

func (m *Client) ListObjects(ctx context.Context, bucket, prefix string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, bucket, prefix)
	if objects, ok := args.Get(0).([]storage.ObjectInfo); ok {
		return objects, args.Error(1)
	}
	return nil, args.Error(1)
}
