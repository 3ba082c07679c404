package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds everything read at startup. Environment variables win over the
// optional config file; nothing is re-read after boot.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	DB   DBConfig
}

type AppConfig struct {
	Env      string // development or production
	LogLevel string // trace, debug, info, warn, error
}

type HTTPConfig struct {
	Addr string
}

// DBConfig locates the SQLite file. DataDir is created on first run.
type DBConfig struct {
	DataDir string
	File    string
}

// Path returns the full path of the database file inside the data directory.
func (c DBConfig) Path() string {
	return filepath.Join(c.DataDir, c.File)
}

// Load reads configuration from SHELFTRACK_* environment variables and an
// optional shelftrack.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("shelftrack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config file is optional

	v.SetEnvPrefix("SHELFTRACK")
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("addr", "127.0.0.1:8344")
	v.SetDefault("data_dir", "data")
	v.SetDefault("db_file", "inventory.db")

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("env"),
			LogLevel: v.GetString("log_level"),
		},
		HTTP: HTTPConfig{
			Addr: v.GetString("addr"),
		},
		DB: DBConfig{
			DataDir: v.GetString("data_dir"),
			File:    v.GetString("db_file"),
		},
	}

	return cfg, nil
}
