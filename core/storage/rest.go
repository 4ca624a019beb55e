package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"bucket-provisioner/core/platform"

	"github.com/gofiber/fiber/v2"
)

const listPageSize = 1000

type restClient struct {
	api *platform.Client
}

// NewRESTClient creates a client for the platform storage API (/storage/v1).
func NewRESTClient(api *platform.Client) Client {
	return &restClient{api: api}
}

type restBucket struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Public        bool   `json:"public"`
	FileSizeLimit *int64 `json:"file_size_limit"`
}

func (c *restClient) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	var raw []restBucket
	if err := c.api.DoJSON(ctx, fiber.MethodGet, "/storage/v1/bucket", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	buckets := make([]BucketInfo, 0, len(raw))
	for _, b := range raw {
		info := BucketInfo{Name: b.Name, Public: b.Public}
		if info.Name == "" {
			info.Name = b.ID
		}
		if b.FileSizeLimit != nil {
			info.FileSizeLimit = *b.FileSizeLimit
		}
		buckets = append(buckets, info)
	}
	return buckets, nil
}

func (c *restClient) CreateBucket(ctx context.Context, name string, opts BucketOptions) error {
	req := map[string]any{
		"id":     name,
		"name":   name,
		"public": opts.Public,
	}
	if opts.FileSizeLimit > 0 {
		req["file_size_limit"] = opts.FileSizeLimit
	}
	if err := c.api.DoJSON(ctx, fiber.MethodPost, "/storage/v1/bucket", req, nil); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return nil
}

func (c *restClient) Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, opts UploadOptions) error {
	if size >= 0 {
		r = io.LimitReader(r, size)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read upload body for %s: %w", path, err)
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}

	_, err = c.api.Do(ctx, platform.Request{
		Method:      fiber.MethodPost,
		Path:        "/storage/v1/object/" + platform.EscapePath(bucket) + "/" + platform.EscapePath(path),
		Body:        data,
		ContentType: contentType,
		Headers:     map[string]string{"x-upsert": fmt.Sprintf("%t", opts.Upsert)},
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return nil
}

type listRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	SortBy struct {
		Column string `json:"column"`
		Order  string `json:"order"`
	} `json:"sortBy"`
}

type listEntry struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Metadata struct {
		Size int64 `json:"size"`
	} `json:"metadata"`
}

// ListObjects lists one folder level; the storage API treats prefix as a folder.
func (c *restClient) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	folder := strings.TrimSuffix(prefix, "/")
	keyPrefix := ""
	if folder != "" {
		keyPrefix = folder + "/"
	}

	var objects []ObjectInfo
	for offset := 0; ; offset += listPageSize {
		req := listRequest{Prefix: folder, Limit: listPageSize, Offset: offset}
		req.SortBy.Column = "name"
		req.SortBy.Order = "asc"

		var page []listEntry
		path := "/storage/v1/object/list/" + platform.EscapePath(bucket)
		if err := c.api.DoJSON(ctx, fiber.MethodPost, path, req, &page); err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, err)
		}

		for _, e := range page {
			// Entries without an id are sub-folders.
			if e.ID == "" {
				continue
			}
			objects = append(objects, ObjectInfo{Key: keyPrefix + e.Name, Size: e.Metadata.Size})
		}
		if len(page) < listPageSize {
			return objects, nil
		}
	}
}
