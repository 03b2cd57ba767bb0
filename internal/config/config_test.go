package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("RECONCILE_POLICY", "")

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, PolicySeedIfEmpty, cfg.ReconcilePolicy)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser:     "class",
		DBPassword: "pw",
		DBHost:     "localhost",
		DBPort:     "3306",
		DBName:     "balances",
	}

	assert.Equal(t, "class:pw@tcp(localhost:3306)/balances?parseTime=true", cfg.DSN())
}

func TestValidPolicy(t *testing.T) {
	for _, p := range []string{PolicyNone, PolicySeedIfEmpty, PolicyPurgeFixed} {
		assert.True(t, (&Config{ReconcilePolicy: p}).ValidPolicy(), p)
	}
	for _, p := range []string{"", "seed", "purge", "both"} {
		assert.False(t, (&Config{ReconcilePolicy: p}).ValidPolicy(), p)
	}
}
