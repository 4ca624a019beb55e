package storage_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"bucket-provisioner/core/platform"
	"bucket-provisioner/core/platform/platformtest"
	"bucket-provisioner/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	path        string
	contentType string
	upsert      string
	body        []byte
}

func newRESTClient(t *testing.T, app *fiber.App) storage.Client {
	base := platformtest.Serve(t, app)
	api, err := platform.NewClient(platform.Config{URL: base}, "service")
	require.NoError(t, err)
	return storage.NewRESTClient(api)
}

func TestRESTClient_ListBuckets(t *testing.T) {
	app := platformtest.NewApp()
	app.Get("/storage/v1/bucket", func(c *fiber.Ctx) error {
		return c.SendString(`[
			{"id":"images","name":"images","public":true,"file_size_limit":5242880},
			{"id":"docs","name":"","public":false,"file_size_limit":null}
		]`)
	})
	client := newRESTClient(t, app)

	buckets, err := client.ListBuckets(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, storage.BucketInfo{Name: "images", Public: true, FileSizeLimit: 5242880}, buckets[0])
	assert.Equal(t, storage.BucketInfo{Name: "docs"}, buckets[1])
}

func TestRESTClient_ListBucketsError(t *testing.T) {
	app := platformtest.NewApp()
	app.Get("/storage/v1/bucket", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized", "message": "invalid signature"})
	})
	client := newRESTClient(t, app)

	_, err := client.ListBuckets(context.Background())
	assert.ErrorContains(t, err, "invalid signature")
}

func TestRESTClient_CreateBucket(t *testing.T) {
	var got map[string]any
	app := platformtest.NewApp()
	app.Post("/storage/v1/bucket", func(c *fiber.Ctx) error {
		if err := json.Unmarshal(c.Body(), &got); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"name": got["name"]})
	})
	client := newRESTClient(t, app)

	err := client.CreateBucket(context.Background(), "images", storage.BucketOptions{Public: true, FileSizeLimit: 1024})
	require.NoError(t, err)
	assert.Equal(t, "images", got["id"])
	assert.Equal(t, "images", got["name"])
	assert.Equal(t, true, got["public"])
	assert.Equal(t, float64(1024), got["file_size_limit"])
}

func TestRESTClient_Upload(t *testing.T) {
	var rec recorded
	app := platformtest.NewApp()
	app.Post("/storage/v1/object/*", func(c *fiber.Ctx) error {
		rec = recorded{
			path:        c.Path(),
			contentType: c.Get(fiber.HeaderContentType),
			upsert:      c.Get("x-upsert"),
			body:        append([]byte(nil), c.Body()...),
		}
		return c.JSON(fiber.Map{"Key": "images/public/a.png"})
	})
	client := newRESTClient(t, app)

	data := []byte("\x89PNG")
	err := client.Upload(context.Background(), "images", "public/a.png", bytes.NewReader(data), int64(len(data)),
		storage.UploadOptions{ContentType: "image/png", Upsert: true})
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/images/public/a.png", rec.path)
	assert.Equal(t, "image/png", rec.contentType)
	assert.Equal(t, "true", rec.upsert)
	assert.Equal(t, data, rec.body)
}

func TestRESTClient_UploadError(t *testing.T) {
	app := platformtest.NewApp()
	app.Post("/storage/v1/object/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "Payload too large", "message": "The object exceeded the maximum allowed size"})
	})
	client := newRESTClient(t, app)

	err := client.Upload(context.Background(), "images", "public/big.png", bytes.NewReader([]byte("x")), 1, storage.UploadOptions{})
	var perr *platform.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, perr.Status)
}

func TestRESTClient_ListObjects(t *testing.T) {
	var prefixes []string
	var offsets []int
	app := platformtest.NewApp()
	app.Post("/storage/v1/object/list/images", func(c *fiber.Ctx) error {
		var req struct {
			Prefix string `json:"prefix"`
			Limit  int    `json:"limit"`
			Offset int    `json:"offset"`
		}
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return err
		}
		prefixes = append(prefixes, req.Prefix)
		offsets = append(offsets, req.Offset)

		// First page is full, second page is short.
		if req.Offset == 0 {
			entries := make([]fiber.Map, 0, req.Limit)
			entries = append(entries, fiber.Map{"name": "nested", "id": nil})
			for i := 1; i < req.Limit; i++ {
				entries = append(entries, fiber.Map{"name": fmt.Sprintf("f%04d.png", i), "id": "x", "metadata": fiber.Map{"size": 3}})
			}
			return c.JSON(entries)
		}
		return c.JSON([]fiber.Map{{"name": "z.png", "id": "y", "metadata": fiber.Map{"size": 7}}})
	})
	client := newRESTClient(t, app)

	objects, err := client.ListObjects(context.Background(), "images", "public/")
	require.NoError(t, err)

	assert.Equal(t, []string{"public", "public"}, prefixes)
	assert.Equal(t, []int{0, 1000}, offsets)
	require.Len(t, objects, 1000)
	assert.Equal(t, "public/f0001.png", objects[0].Key)
	assert.Equal(t, storage.ObjectInfo{Key: "public/z.png", Size: 7}, objects[len(objects)-1])
}
