package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "NUMDRAW"

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	ExportDir   string `mapstructure:"export_dir"`
	Seed        int64  `mapstructure:"seed"`
	MaxResample int    `mapstructure:"max_resample"`
	Store       string `mapstructure:"store"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
}

func Default() Config {
	return Config{
		ExportDir:   ".",
		Seed:        0,
		MaxResample: 10000,
		Store:       StoreMemory,
		LogLevel:    "info",
	}
}

// Load reads defaults, then the optional YAML file at path, then NUMDRAW_*
// environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("export_dir", def.ExportDir)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("max_resample", def.MaxResample)
	v.SetDefault("store", def.Store)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("config file %s: %w", path, err)
			}
			return Config{}, fmt.Errorf("stat config: %w", err)
		}
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ExportDir) == "" {
		return fmt.Errorf("export_dir is required")
	}
	if c.MaxResample < 1 {
		return fmt.Errorf("max_resample must be positive, got %d", c.MaxResample)
	}
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q: want %s|%s", c.Store, StoreMemory, StoreSQLite)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
