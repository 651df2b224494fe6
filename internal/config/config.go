package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultOwnerWallet receives commission in settlement reports when no
// other wallet is configured.
const DefaultOwnerWallet = "UQC6JjZfg6wpyIq7EoiFyFelqH9GvnMABdV9CasyAzJWX9Xa"

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Settlement struct {
		CommissionRate float64 `yaml:"commission_rate"`
		OwnerWallet    string  `yaml:"owner_wallet"`
	} `yaml:"settlement"`
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Catalog struct {
		TTL string `yaml:"ttl"`
	} `yaml:"catalog"`
	Bot struct {
		Token     string `yaml:"token"`
		WebAppURL string `yaml:"web_app_url"`
	} `yaml:"bot"`
}

// Load reads YAML config from path. A missing file is not an error; the
// service runs with defaults and environment overrides alone.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OWNER_WALLET"); v != "" {
		c.Settlement.OwnerWallet = v
	}
	if v := os.Getenv("SCORES_FILE"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		c.Bot.Token = v
	}
	if v := os.Getenv("WEB_APP_URL"); v != "" {
		c.Bot.WebAppURL = v
	}
}

func (c *Config) applyDefaults() {
	if c.Settlement.OwnerWallet == "" {
		c.Settlement.OwnerWallet = DefaultOwnerWallet
	}
	if c.Store.Path == "" {
		c.Store.Path = "scores.json"
	}
}

// TTLDuration parses a duration string or returns the fallback if empty
// or invalid.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
