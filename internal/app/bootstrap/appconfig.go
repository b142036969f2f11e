// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; the core config handles
// framework settings like ports, TLS, logging, and CORS.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for the admin session
	SessionDomain string // Cookie domain (blank means current host)

	// Admin access. The shared admin secret is never stored here; only
	// its bcrypt hash, supplied by deployment config.
	AdminPasswordHash string

	// How long the registration-window gate may serve cached settings
	// before re-reading them.
	SettingsCacheTTL time.Duration
}
