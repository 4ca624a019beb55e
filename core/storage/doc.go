// Package storage provides an abstraction layer for the object storage the
// provisioner writes to.
//
// # Client Interface
//
// The Client interface hides the transport, making it easy to mock storage
// interactions in unit tests (see core/storage/mocks).
//
// # Drivers
//
//   - rest: the platform storage API (/storage/v1) through core/platform.
//     Supports public buckets, object size limits and upsert uploads.
//   - s3: minio-go against the platform's S3-compatible endpoint or any S3
//     service. Public buckets get a public-read bucket policy; object size
//     limits are not expressible and uploads always overwrite.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage, api)
//	buckets, err := client.ListBuckets(ctx)
package storage
