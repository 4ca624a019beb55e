package policy

// Config holds configuration for access-policy management.
type Config struct {
	// Driver selects how statements reach the database: "rpc" or "sql".
	Driver string `mapstructure:"driver" default:"rpc"`
	// DSN is the Postgres connection string used by the sql driver.
	DSN string `mapstructure:"dsn" default:""`
	// TimeoutSeconds bounds the initial connection check of the sql driver.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Schema and Table name the object table policies are attached to.
	Schema string `mapstructure:"schema" default:"storage"`
	Table  string `mapstructure:"table" default:"objects"`
	// RLSFunction is the RPC function that enables row-level security.
	RLSFunction string `mapstructure:"rls_function" default:"enable_rls"`
	// CreateFunction is the RPC function that creates a storage policy.
	CreateFunction string `mapstructure:"create_function" default:"create_storage_policy"`
}

const (
	DriverRPC = "rpc"
	DriverSQL = "sql"
)
