package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Reconciliation policies applied at startup (see db.Reconcile)
const (
	PolicyNone        = "none"            // Leave the table alone
	PolicySeedIfEmpty = "seed-if-empty"   // Insert the default roster when the table is empty
	PolicyPurgeFixed  = "purge-fixed-ids" // Delete leftover default records on every start
)

// Config holds the application configuration
type Config struct {
	AppPort         string // Application port
	DBUser          string // Database user
	DBPassword      string // Database password
	DBHost          string // Database host
	DBPort          string // Database port
	DBName          string // Database name
	AdminPassword   string // Shared teacher secret, compared in plaintext
	ReconcilePolicy string // Startup policy: none, seed-if-empty or purge-fixed-ids
	IsProd          bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000" // Default port
	}
	policy := os.Getenv("RECONCILE_POLICY")
	if policy == "" {
		policy = PolicySeedIfEmpty // Default: install the demo roster on first boot
	}
	return &Config{
		AppPort:         port,                           // Application port
		DBUser:          os.Getenv("DB_USER"),           // Database user
		DBPassword:      os.Getenv("DB_PASSWORD"),       // Database password
		DBHost:          os.Getenv("DB_HOST"),           // Database host
		DBPort:          os.Getenv("DB_PORT"),           // Database port
		DBName:          os.Getenv("DB_NAME"),           // Database name
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),    // Teacher secret
		ReconcilePolicy: policy,                         // Startup reconciliation policy
		IsProd:          os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// DSN builds the MySQL Data Source Name from the config parts
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// ValidPolicy reports whether the configured reconciliation policy is one of the known values
func (c *Config) ValidPolicy() bool {
	switch c.ReconcilePolicy {
	case PolicyNone, PolicySeedIfEmpty, PolicyPurgeFixed:
		return true // Known policy
	}
	return false // Anything else is a misconfiguration
}
