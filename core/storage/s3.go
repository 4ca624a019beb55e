package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type s3Client struct {
	client *minio.Client
	region string
}

// NewS3Client creates a Minio client for an S3-compatible endpoint.
func NewS3Client(cfg S3Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &s3Client{client: minioClient, region: cfg.Region}, nil
}

func (c *s3Client) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	raw, err := c.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	buckets := make([]BucketInfo, 0, len(raw))
	for _, b := range raw {
		buckets = append(buckets, BucketInfo{Name: b.Name})
	}
	return buckets, nil
}

// CreateBucket makes the bucket and, when public, attaches a public-read policy.
// S3 has no per-bucket object size limit, so FileSizeLimit is not applied.
func (c *s3Client) CreateBucket(ctx context.Context, name string, opts BucketOptions) error {
	if err := c.client.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: c.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	if !opts.Public {
		return nil
	}
	policy, err := PublicReadPolicy(name)
	if err != nil {
		return err
	}
	if err := c.client.SetBucketPolicy(ctx, name, policy); err != nil {
		return fmt.Errorf("failed to make bucket %s public: %w", name, err)
	}
	return nil
}

// Upload always overwrites; S3 has no conditional-create mode through PutObject here.
func (c *s3Client) Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, opts UploadOptions) error {
	_, err := c.client.PutObject(ctx, bucket, path, r, size, minio.PutObjectOptions{ContentType: opts.ContentType})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return nil
}

func (c *s3Client) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	for obj := range c.client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			if minio.ToErrorResponse(obj.Err).Code == "NoSuchBucket" {
				return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
			}
			return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, obj.Err)
		}
		objects = append(objects, ObjectInfo{Key: obj.Key, Size: obj.Size})
	}
	return objects, nil
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Effect    string              `json:"Effect"`
	Principal map[string][]string `json:"Principal"`
	Action    []string            `json:"Action"`
	Resource  []string            `json:"Resource"`
}

// PublicReadPolicy renders an S3 bucket policy granting anonymous GetObject.
func PublicReadPolicy(bucket string) (string, error) {
	doc := policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Effect:    "Allow",
			Principal: map[string][]string{"AWS": {"*"}},
			Action:    []string{"s3:GetObject"},
			Resource:  []string{"arn:aws:s3:::" + bucket + "/*"},
		}},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode bucket policy: %w", err)
	}
	return string(b), nil
}
