package policy

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sqlClient struct {
	db *gorm.DB
}

// Connect opens a Postgres connection for the sql driver and verifies it
// within cfg.TimeoutSeconds.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("sql policy driver requires POLICY_DSN")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	// Suppress GORM logging; failures are reported by the caller.
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// A provisioning run issues a handful of sequential statements.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewSQLClient creates a client that executes statements directly on db.
func NewSQLClient(db *gorm.DB) Client {
	return &sqlClient{db: db}
}

func (c *sqlClient) EnableRowLevelSecurity(ctx context.Context, schema, table string) error {
	if err := c.db.WithContext(ctx).Exec(EnableRLSStatement(schema, table)).Error; err != nil {
		return fmt.Errorf("failed to enable row level security on %s.%s: %w", schema, table, err)
	}
	return nil
}

func (c *sqlClient) CreatePolicy(ctx context.Context, bucket, name, statement string) error {
	if err := c.db.WithContext(ctx).Exec(statement).Error; err != nil {
		return fmt.Errorf("failed to create policy %q: %w", name, err)
	}
	return nil
}
