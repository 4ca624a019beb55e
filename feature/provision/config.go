package provision

import (
	"bucket-provisioner/core/assets"
	"bucket-provisioner/core/storage"
	"bucket-provisioner/core/urlhelper"
)

// Options is everything a Provisioner needs besides its clients.
type Options struct {
	Bucket storage.BucketConfig
	Assets assets.Config
	Helper urlhelper.Config
	// Schema and Table name the object table access rules attach to.
	Schema string
	Table  string
	// BaseURL is the platform endpoint used to build public URLs.
	BaseURL string
}
