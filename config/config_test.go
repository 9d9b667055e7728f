package config

import (
	"testing"
	"time"

	"defilend/core"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	var cfg core.Config
	cfg.Forwarder.Driver = "nats"
	defaults(&cfg)

	assert.Equal(t, "defilend", cfg.App.Name)
	assert.Equal(t, "nats", cfg.Forwarder.Driver)
	assert.Equal(t, "defilend.commands", cfg.Forwarder.Subject)
	assert.Equal(t, 10*time.Second, cfg.Oracle.CacheTTL)
	assert.Zero(t, cfg.Oracle.MaxPriceAge)
}
