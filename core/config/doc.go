// Package config provides configuration management for the provisioner.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file loaded first through godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Supabase: platform URL, service key, anonymous key (SUPABASE_*)
//   - Bucket: name, public flag, object size limit, path prefix (BUCKET_*)
//   - Assets: local images directory (ASSETS_DIR)
//   - Helper: generated helper location and language (HELPER_*)
//   - Storage: rest or s3 transport (STORAGE_*)
//   - Policy: rpc or sql policy driver (POLICY_*)
//   - Log: logging level and format (LOG_*)
//   - Metrics: optional textfile output (METRICS_FILE)
//
// Environment keys are the nested keys upper-cased with dots replaced by
// underscores, e.g. bucket.file_size_limit is BUCKET_FILE_SIZE_LIMIT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Bucket.Name)
package config
