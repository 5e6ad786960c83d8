// Package config loads and validates lotlist YAML configuration.
package config
