package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDatabasePath = "hipster_cookbooks.db"
	envPrefix           = "cookbooks"
)

type (
	// Config is everything the binary reads from the environment.
	Config struct {
		Database
		Log
		Demo
	}

	Database struct {
		Path string
	}
	Log struct {
		Level     string
		File      string // empty keeps logs on stderr only
		MaxSizeMB int
		MaxFiles  int
	}
	// Demo holds the values the no-argument run acts on.
	Demo struct {
		BorrowCookbookID     int64
		Friend               string
		PhotoshootCookbookID int64
	}
)

// NewConfig reads COOKBOOKS_* overrides on top of the demo defaults.
func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 10)
	v.SetDefault("log_max_files", 5)
	v.SetDefault("demo_borrow_cookbook_id", 2)
	v.SetDefault("demo_friend", "Willow")
	v.SetDefault("demo_photoshoot_cookbook_id", 3)

	return &Config{
		Database: Database{
			Path: v.GetString("database_path"),
		},
		Log: Log{
			Level:     v.GetString("log_level"),
			File:      v.GetString("log_file"),
			MaxSizeMB: v.GetInt("log_max_size_mb"),
			MaxFiles:  v.GetInt("log_max_files"),
		},
		Demo: Demo{
			BorrowCookbookID:     v.GetInt64("demo_borrow_cookbook_id"),
			Friend:               v.GetString("demo_friend"),
			PhotoshootCookbookID: v.GetInt64("demo_photoshoot_cookbook_id"),
		},
	}
}
