package assets

// Config points at the local files to upload.
type Config struct {
	// Dir is scanned (non-recursively) for images.
	Dir string `mapstructure:"dir" default:"public/images"`
}
