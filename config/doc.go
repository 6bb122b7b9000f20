// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The package supports multiple feed definitions and allows feed selection
// by name.
package config
