// Package config loads configuration structs from environment variables.
//
// Load parses env-tagged struct fields via github.com/caarlos0/env, after
// loading a .env file once per process when one exists. A missing .env file
// is not an error; explicit environment variables always win.
//
// # Usage
//
//	type Config struct {
//		AppName  string     `env:"APP_NAME" envDefault:"rentvehicle"`
//		LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// MustLoad panics on failure and is meant for configuration the process
// cannot start without.
package config
