package policy_test

import (
	"context"
	"encoding/json"
	"testing"

	"bucket-provisioner/core/platform"
	"bucket-provisioner/core/platform/platformtest"
	"bucket-provisioner/core/policy"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCClient(t *testing.T) {
	calls := map[string]map[string]string{}
	app := platformtest.NewApp()
	app.Post("/rest/v1/rpc/:fn", func(c *fiber.Ctx) error {
		var args map[string]string
		if err := json.Unmarshal(c.Body(), &args); err != nil {
			return err
		}
		fn := c.Params("fn")
		calls[fn] = args
		if args["policy_name"] == "dup" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"code":    "42710",
				"message": `policy "dup" for table "objects" already exists`,
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	base := platformtest.Serve(t, app)

	api, err := platform.NewClient(platform.Config{URL: base}, "service")
	require.NoError(t, err)
	cfg := policy.Config{RLSFunction: "enable_rls", CreateFunction: "create_storage_policy"}
	client := policy.NewRPCClient(api, cfg)
	ctx := context.Background()

	t.Run("EnableRowLevelSecurity", func(t *testing.T) {
		require.NoError(t, client.EnableRowLevelSecurity(ctx, "storage", "objects"))
		assert.Equal(t, map[string]string{"schema_name": "storage", "table_name": "objects"}, calls["enable_rls"])
	})

	t.Run("CreatePolicy", func(t *testing.T) {
		stmt := `CREATE POLICY "p" ON "storage"."objects" FOR SELECT TO public USING (bucket_id = 'images')`
		require.NoError(t, client.CreatePolicy(ctx, "images", "p", stmt))
		assert.Equal(t, "images", calls["create_storage_policy"]["bucket_name"])
		assert.Equal(t, "p", calls["create_storage_policy"]["policy_name"])
		assert.Equal(t, stmt, calls["create_storage_policy"]["definition"])
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := client.CreatePolicy(ctx, "images", "dup", "CREATE POLICY ...")
		require.Error(t, err)
		assert.True(t, policy.IsAlreadyExists(err))
	})
}
