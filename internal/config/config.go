package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNetwork = "mainnet"
	DefaultTimeout = 30 * time.Second

	// APIKeyEnv is consulted when the config file carries no api_key.
	APIKeyEnv = "ETHERSCAN_API_KEY"
)

// Duration parses yaml scalars like "10s" or "1m"; yaml.v3 has no native
// time.Duration support.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

type Config struct {
	Network string   `yaml:"network"`
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
	APIKey  string   `yaml:"api_key"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Network: DefaultNetwork,
		Timeout: Duration(DefaultTimeout),
	}
	cfg.applyEnv()
	return cfg
}

// Load reads a yaml config file and fills in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Network == "" {
		cfg.Network = DefaultNetwork
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = Duration(DefaultTimeout)
	}
	cfg.applyEnv()

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(APIKeyEnv)
	}
}
