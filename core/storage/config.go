package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the storage transport: "rest" (platform storage API) or "s3".
	Driver string `mapstructure:"driver" default:"rest"`
	// S3 holds settings used only by the s3 driver.
	S3 S3Config `mapstructure:"s3"`
}

// S3Config holds configuration for an S3-compatible endpoint.
type S3Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverREST = "rest"
	DriverS3   = "s3"
)

// BucketConfig describes the bucket to provision.
type BucketConfig struct {
	// Name is the bucket name.
	Name string `mapstructure:"name" default:"images"`
	// Public makes objects readable without credentials.
	Public bool `mapstructure:"public" default:"true"`
	// FileSizeLimit caps a single object in bytes. 0 means no limit.
	FileSizeLimit int64 `mapstructure:"file_size_limit" default:"5242880"`
	// PathPrefix is prepended to every uploaded file name.
	PathPrefix string `mapstructure:"path_prefix" default:"public/"`
}
