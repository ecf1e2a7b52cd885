package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	State StateConfig `mapstructure:"state"`
	Log   LogConfig   `mapstructure:"log"`
	Mock  MockConfig  `mapstructure:"mock"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StateConfig struct {
	Dir        string `mapstructure:"dir"`        // token + preference files live here
	Passphrase string `mapstructure:"passphrase"` // non-empty seals the token at rest
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// MockConfig configures the built-in mock backend.
type MockConfig struct {
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTExpiry time.Duration `mapstructure:"jwt_expiry"`
}

// Addr returns the mock backend listen address.
func (m MockConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

func defaultStateDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "crescent-wallet")
	}
	return ".crescent-wallet"
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CRW.
// Nested keys use underscore: CRW_API_BASE_URL, CRW_STATE_DIR, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("state.dir", defaultStateDir())
	v.SetDefault("state.passphrase", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("mock.host", "127.0.0.1")
	v.SetDefault("mock.port", 8080)
	v.SetDefault("mock.jwt_secret", "crescent-mock-secret")
	v.SetDefault("mock.jwt_expiry", "24h")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(defaultStateDir())
	}

	// Environment variables: CRW_API_BASE_URL -> api.base_url
	v.SetEnvPrefix("CRW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars and defaults can suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
