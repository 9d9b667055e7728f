package config

import (
	"errors"
	"io/fs"
	"time"

	"defilend/core"

	configUtil "github.com/fox-one/pkg/config"
	"github.com/joho/godotenv"
)

// Load load .env, the config file and DEFILEND_* overrides
func Load(configFile string, config *core.Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	configUtil.AutomaticLoadEnv("DEFILEND")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	defaults(config)
	return nil
}

func defaults(cfg *core.Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "defilend"
	}

	if cfg.App.Location == "" {
		cfg.App.Location = "UTC"
	}

	if cfg.Log.MaxSize == 0 {
		cfg.Log.MaxSize = 100
	}

	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 7
	}

	if cfg.Forwarder.Driver == "" {
		cfg.Forwarder.Driver = "outbox"
	}

	if cfg.Forwarder.Subject == "" {
		cfg.Forwarder.Subject = "defilend.commands"
	}

	if cfg.Oracle.CacheTTL == 0 {
		cfg.Oracle.CacheTTL = 10 * time.Second
	}
}
