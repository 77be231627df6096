// ABOUTME: Configuration package
// ABOUTME: Merges defaults, an optional YAML file, environment and flags
// Package config builds the trimmer configuration. Values come from struct
// defaults, then trimmer.yaml and TRIMMER_* environment variables via fig,
// then any command-line flag that was explicitly set.
package config
