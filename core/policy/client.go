package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bucket-provisioner/core/platform"
)

// Client manages row-level security and access policies on the object table.
type Client interface {
	// EnableRowLevelSecurity turns on row-level security for schema.table.
	EnableRowLevelSecurity(ctx context.Context, schema, table string) error
	// CreatePolicy executes statement, the full CREATE POLICY text for name on bucket.
	CreatePolicy(ctx context.Context, bucket, name, statement string) error
}

// IsAlreadyExists reports whether err means the policy is already present.
// Both the RPC surface and Postgres itself phrase it that way.
func IsAlreadyExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}

// QuoteIdent quotes a Postgres identifier.
func QuoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// QuoteLiteral quotes a Postgres string literal.
func QuoteLiteral(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}

// EnableRLSStatement renders the statement enabling row-level security.
func EnableRLSStatement(schema, table string) string {
	return fmt.Sprintf("ALTER TABLE %s.%s ENABLE ROW LEVEL SECURITY", QuoteIdent(schema), QuoteIdent(table))
}

// NewClient creates the policy client selected by cfg.Driver.
// api is required by the rpc driver and ignored by the sql driver.
func NewClient(cfg Config, api *platform.Client) (Client, error) {
	switch cfg.Driver {
	case DriverRPC, "":
		if api == nil {
			return nil, errors.New("rpc policy driver requires a platform client")
		}
		return NewRPCClient(api, cfg), nil
	case DriverSQL:
		db, err := Connect(cfg)
		if err != nil {
			return nil, err
		}
		return NewSQLClient(db), nil
	default:
		return nil, fmt.Errorf("unknown policy driver: %s", cfg.Driver)
	}
}
