// Package config provides configuration loading for the OpenAPI to Postman converter.
package config

import (
	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
)

// DefaultIndent is the number of spaces used by pretty-printed output.
const DefaultIndent = 4

// EnvPrefix prefixes the environment variables read by Load, for example
// OPENAPI2POSTMAN_INDENT and OPENAPI2POSTMAN_SAMPLESPEC.
const EnvPrefix = "OPENAPI2POSTMAN_"

// Config holds the application configuration.
type Config struct {
	// SampleSpec overrides the bundled sample used by --test. Relative paths
	// are resolved against the directory of the executable.
	SampleSpec string `koanf:"samplespec"`
	// Indent is the pretty-print indentation width in spaces.
	Indent int `koanf:"indent"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{Indent: DefaultIndent}
}

// Load returns the application configuration using go-libs config-loader.
// Environment variables override the defaults.
func Load() (*Config, error) {
	loader := configloader.NewConfigLoader(
		configloader.WithDefaults(Default()),
		configloader.WithEnv[Config](EnvPrefix),
	)

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if cfg.Indent <= 0 {
		cfg.Indent = DefaultIndent
	}

	return &cfg, nil
}
