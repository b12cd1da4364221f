// Package config loads service configuration from environment
// variables, with an optional config file for local development.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything both applications need. Each binary reads
// only the fields relevant to it.
type Config struct {
	HTTPPort string `mapstructure:"http_port"`

	StockProvider string `mapstructure:"stock_provider"` // yahoo | local
	QuakeProvider string `mapstructure:"quake_provider"` // usgs | local

	CatalogFile    string `mapstructure:"catalog_file"`
	LocalDataDir   string `mapstructure:"local_data_dir"`
	LocalQuakeFile string `mapstructure:"local_quake_file"`

	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Load reads defaults, then an optional config.yaml in the working
// directory, then DATAVIZ_* environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("http_port", "8080")
	v.SetDefault("stock_provider", "yahoo")
	v.SetDefault("quake_provider", "usgs")
	v.SetDefault("catalog_file", "data/sp500.json")
	v.SetDefault("local_data_dir", "data/charts")
	v.SetDefault("local_quake_file", "data/quakes.geojson")
	v.SetDefault("fetch_timeout", 10*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	v.SetEnvPrefix("DATAVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
