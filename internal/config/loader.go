package config

import (
	"fmt"

	"github.com/creativeshelf/creativeshelf/internal/db"
	"github.com/spf13/viper"
)

// Library holds the non-database settings of the library core.
type Library struct {
	// Sample caps for the facet option catalog. The public listing view
	// and the administrative view use different caps.
	PublicSampleLimit int
	AdminSampleLimit  int
	ExportDir         string
	Debug             bool
}

// Config is the process-wide configuration, resolved once at startup.
type Config struct {
	Database db.Config
	Library  Library
}

func defaultLibrary() Library {
	return Library{
		PublicSampleLimit: 200,
		AdminSampleLimit:  1000,
		ExportDir:         "./exports",
	}
}

// Load reads config.yaml from configPath with environment overrides
// (CSHELF_DATABASE_HOST and friends), falling back to defaults.
func Load(configPath string) (Config, error) {
	cfg := Config{
		Database: db.DefaultConfig(),
		Library:  defaultLibrary(),
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("CSHELF")

	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("library.public_sample_limit")
	v.BindEnv("library.admin_sample_limit")
	v.BindEnv("library.export_dir")
	v.BindEnv("library.debug")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Use defaults + env.
		fmt.Println("No config.yaml found, using defaults and env vars")
	}

	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("library.public_sample_limit") {
		cfg.Library.PublicSampleLimit = v.GetInt("library.public_sample_limit")
	}
	if v.IsSet("library.admin_sample_limit") {
		cfg.Library.AdminSampleLimit = v.GetInt("library.admin_sample_limit")
	}
	if v.IsSet("library.export_dir") {
		cfg.Library.ExportDir = v.GetString("library.export_dir")
	}
	if v.IsSet("library.debug") {
		cfg.Library.Debug = v.GetBool("library.debug")
	}

	return cfg, nil
}
