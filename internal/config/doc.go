// Package config loads service settings from defaults, an optional YAML
// file and environment variables, in that order of precedence.
package config
