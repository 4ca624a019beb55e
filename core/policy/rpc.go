package policy

import (
	"context"
	"fmt"

	"bucket-provisioner/core/platform"

	"github.com/gofiber/fiber/v2"
)

type rpcClient struct {
	api            *platform.Client
	rlsFunction    string
	createFunction string
}

// NewRPCClient creates a client that calls database functions through
// the platform's /rest/v1/rpc endpoint.
func NewRPCClient(api *platform.Client, cfg Config) Client {
	return &rpcClient{
		api:            api,
		rlsFunction:    cfg.RLSFunction,
		createFunction: cfg.CreateFunction,
	}
}

func (c *rpcClient) EnableRowLevelSecurity(ctx context.Context, schema, table string) error {
	args := map[string]string{
		"schema_name": schema,
		"table_name":  table,
	}
	if err := c.api.DoJSON(ctx, fiber.MethodPost, "/rest/v1/rpc/"+c.rlsFunction, args, nil); err != nil {
		return fmt.Errorf("failed to enable row level security on %s.%s: %w", schema, table, err)
	}
	return nil
}

func (c *rpcClient) CreatePolicy(ctx context.Context, bucket, name, statement string) error {
	args := map[string]string{
		"bucket_name": bucket,
		"policy_name": name,
		"definition":  statement,
	}
	if err := c.api.DoJSON(ctx, fiber.MethodPost, "/rest/v1/rpc/"+c.createFunction, args, nil); err != nil {
		return fmt.Errorf("failed to create policy %q: %w", name, err)
	}
	return nil
}
