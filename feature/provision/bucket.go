package provision

import (
	"context"
	"fmt"

	"bucket-provisioner/core/storage"

	"go.uber.org/zap"
)

// EnsureBucket creates the bucket unless a bucket with the same name is
// already listed. It reports whether a bucket was created. Any error is
// fatal for the run.
func (p *Provisioner) EnsureBucket(ctx context.Context) (bool, error) {
	name := p.opts.Bucket.Name

	buckets, err := p.store.ListBuckets(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	for _, b := range buckets {
		if b.Name == name {
			p.logger.Info("Bucket already exists", zap.String("bucket", name))
			return false, nil
		}
	}

	opts := storage.BucketOptions{
		Public:        p.opts.Bucket.Public,
		FileSizeLimit: p.opts.Bucket.FileSizeLimit,
	}
	if err := p.store.CreateBucket(ctx, name, opts); err != nil {
		return false, fmt.Errorf("failed to ensure bucket %s: %w", name, err)
	}

	p.metrics.BucketsCreated.Inc()
	p.logger.Info("Bucket created",
		zap.String("bucket", name),
		zap.Bool("public", opts.Public),
		zap.Int64("file_size_limit", opts.FileSizeLimit),
	)
	return true, nil
}
