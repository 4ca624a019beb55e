package config

import (
	"reflect"
	"strings"

	"bucket-provisioner/core/assets"
	"bucket-provisioner/core/logger"
	"bucket-provisioner/core/metrics"
	"bucket-provisioner/core/platform"
	"bucket-provisioner/core/policy"
	"bucket-provisioner/core/storage"
	"bucket-provisioner/core/urlhelper"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Supabase holds the platform endpoint and keys.
	Supabase platform.Config `mapstructure:"supabase"`
	// Bucket describes the container to provision.
	Bucket storage.BucketConfig `mapstructure:"bucket"`
	// Assets points at the local images to upload.
	Assets assets.Config `mapstructure:"assets"`
	// Helper controls the generated URL helper.
	Helper urlhelper.Config `mapstructure:"helper"`
	// Storage selects the storage transport.
	Storage storage.Config `mapstructure:"storage"`
	// Policy selects how access policies are applied.
	Policy policy.Config `mapstructure:"policy"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Metrics holds configuration for run metrics.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. BUCKET_NAME -> bucket.name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
