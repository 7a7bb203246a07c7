// Package config handles configuration management for retitle.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and command-line flags.
//
// Sources are layered, later ones winning:
//
//  1. embedded/defaults.toml
//  2. the user file, $XDG_CONFIG_HOME/retitle/config.toml or an explicit path
//  3. RETITLE_* environment variables (RETITLE_EDITOR_COMMAND -> editor.command)
//  4. overrides from command-line flags
package config
