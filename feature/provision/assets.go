package provision

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bucket-provisioner/core/metrics"
	"bucket-provisioner/core/storage"

	"go.uber.org/zap"
)

// contentTypes maps the supported image extensions to their MIME type.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// ContentType returns the MIME type for name's extension, case-insensitively.
func ContentType(name string) (string, bool) {
	ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]
	return ct, ok
}

// Asset is a local image eligible for upload.
type Asset struct {
	Name        string
	Path        string
	ContentType string
}

// ScanAssets lists dir in lexical order and splits regular files into
// supported assets and skipped names. Sub-directories are ignored.
func ScanAssets(dir string) ([]Asset, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read assets directory %s: %w", dir, err)
	}

	var assets []Asset
	var skipped []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ct, ok := ContentType(e.Name())
		if !ok {
			skipped = append(skipped, e.Name())
			continue
		}
		assets = append(assets, Asset{
			Name:        e.Name(),
			Path:        filepath.Join(dir, e.Name()),
			ContentType: ct,
		})
	}
	return assets, skipped, nil
}

// UploadSummary lists asset outcomes by file name.
type UploadSummary struct {
	Uploaded []string
	Failed   []string
	Skipped  []string
	Errors   []error
}

// UploadAssets uploads every supported file from the assets directory with
// overwrite enabled. Each file is independent: a failure is logged and
// collected, and the next file is still attempted.
func (p *Provisioner) UploadAssets(ctx context.Context) UploadSummary {
	var sum UploadSummary
	bucket := p.opts.Bucket.Name

	assets, skipped, err := ScanAssets(p.opts.Assets.Dir)
	if err != nil {
		sum.Errors = append(sum.Errors, err)
		p.logger.Error("Failed to scan assets", zap.Error(err))
		return sum
	}

	sum.Skipped = skipped
	for _, name := range skipped {
		p.metrics.Asset(metrics.ResultSkipped)
		p.logger.Debug("Skipping unsupported file", zap.String("file", name))
	}

	for _, a := range assets {
		key := p.opts.Bucket.PathPrefix + a.Name
		l := p.logger.With(zap.String("file", a.Name), zap.String("key", key))

		if err := p.upload(ctx, bucket, key, a); err != nil {
			sum.Failed = append(sum.Failed, a.Name)
			sum.Errors = append(sum.Errors, err)
			p.metrics.Asset(metrics.ResultFailed)
			l.Error("Failed to upload asset", zap.Error(err))
			continue
		}

		sum.Uploaded = append(sum.Uploaded, a.Name)
		p.metrics.Asset(metrics.ResultUploaded)
		l.Info("Uploaded asset", zap.String("url", p.PublicURL(a.Name)))
	}

	return sum
}

func (p *Provisioner) upload(ctx context.Context, bucket, key string, a Asset) error {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", a.Name, err)
	}

	opts := storage.UploadOptions{ContentType: a.ContentType, Upsert: true}
	return p.store.Upload(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), opts)
}
