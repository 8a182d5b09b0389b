package authorize

import "github.com/alfassih/praxis_backend/config"

// Config holds configuration for the authorization system
type Config struct {
	// CasbinModelPath is the path to the Casbin model configuration file
	CasbinModelPath string

	// EnableAudit enables audit logging for all authorization decisions
	EnableAudit bool
}

// DefaultConfig returns sensible defaults for authorization configuration
func DefaultConfig() Config {
	return Config{
		CasbinModelPath: "casbin_model.conf",
		EnableAudit:     true,
	}
}

// FromCentralConfig converts central config.AuthorizationConfig to package Config
func FromCentralConfig(c config.AuthorizationConfig) Config {
	cfg := DefaultConfig()
	if c.CasbinModelPath != "" {
		cfg.CasbinModelPath = c.CasbinModelPath
	}
	cfg.EnableAudit = c.EnableAudit
	return cfg
}
