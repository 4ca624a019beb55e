package cmd

import (
	"fmt"
	"strings"

	"bucket-provisioner/core/config"
	"bucket-provisioner/core/logger"
	"bucket-provisioner/core/metrics"
	"bucket-provisioner/core/platform"
	"bucket-provisioner/core/policy"
	"bucket-provisioner/core/storage"
	"bucket-provisioner/feature/provision"

	"go.uber.org/zap"
)

// loadRuntime loads configuration and builds the run logger.
// requireKeys controls whether every SUPABASE_* setting must be present.
func loadRuntime(requireKeys bool) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if requireKeys {
		if err := cfg.Supabase.Validate(); err != nil {
			return nil, nil, err
		}
	} else if cfg.Supabase.URL == "" {
		return nil, nil, fmt.Errorf("missing required configuration: SUPABASE_URL")
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger.WithRunID(logg, logger.NewRunID()), nil
}

// options maps the loaded configuration onto the provisioner options.
func options(cfg *config.Config) provision.Options {
	return provision.Options{
		Bucket:  cfg.Bucket,
		Assets:  cfg.Assets,
		Helper:  cfg.Helper,
		Schema:  cfg.Policy.Schema,
		Table:   cfg.Policy.Table,
		BaseURL: strings.TrimRight(cfg.Supabase.URL, "/"),
	}
}

// newStorage builds the storage client authenticated with key.
func newStorage(cfg *config.Config, key string, logg *zap.Logger) (storage.Client, *platform.Client, error) {
	api, err := platform.NewClient(cfg.Supabase, key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create platform client: %w", err)
	}

	if cfg.Storage.Driver == storage.DriverS3 && cfg.Bucket.FileSizeLimit > 0 {
		logg.Warn("File size limit is not supported by the s3 driver and will be ignored",
			zap.Int64("file_size_limit", cfg.Bucket.FileSizeLimit),
		)
	}

	store, err := storage.NewClient(cfg.Storage, api)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return store, api, nil
}

// newProvisioner wires the privileged clients into a Provisioner.
func newProvisioner(cfg *config.Config, logg *zap.Logger, rec *metrics.Recorder) (*provision.Provisioner, error) {
	store, api, err := newStorage(cfg, cfg.Supabase.ServiceKey, logg)
	if err != nil {
		return nil, err
	}

	policies, err := policy.NewClient(cfg.Policy, api)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy client: %w", err)
	}

	opts := options(cfg)
	opts.BaseURL = api.BaseURL()
	return provision.New(store, policies, opts, logg, rec), nil
}
