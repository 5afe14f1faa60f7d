// Package config loads the triad run configuration with viper: built-in
// defaults, an optional YAML/JSON/TOML file and TRIAD_* environment
// overrides, validated with go-playground/validator.
package config
