package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"inventory-sync/core/database"
	"inventory-sync/core/logger"
	"inventory-sync/core/server"
	"inventory-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the optional TOML config file looked up next to the .env file.
const FileName = "inventory-sync.toml"

// Config holds all configuration for inventory-sync, one section per package.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the bucket holding snapshots and exports.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the inventory database.
	Database database.Config `mapstructure:"database"`
	// Inventory selects the reconciliation source and destination.
	Inventory InventoryConfig `mapstructure:"inventory"`
}

// LoadConfig reads configuration from dir. Precedence, highest first:
// environment variables, dir/.env, dir/inventory-sync.toml, `default` tags.
func LoadConfig(dir string) (*Config, error) {
	if err := godotenv.Overload(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	file := filepath.Join(dir, FileName)
	if _, err := os.Stat(file); err == nil {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
	}

	// server.port is read from SERVER_PORT.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the sections every command depends on.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}
	if err := c.Inventory.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("inventory: %w", err))
	}
	return errors.Join(errs...)
}

// registerDefaults walks t and sets every leaf key to its `default` tag. Keys
// without a default are still registered, since AutomaticEnv only resolves
// keys viper already knows about.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := range t.NumField() {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
