// Package config assembles and validates the configuration of the reverso
// CLI.
//
// Configuration is merged from two sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (REVERSO_*)
//  2. Command-line flags
//
// The main entry point is [GetCLIConfig], which parses both sources, merges
// them with mergo, validates the result, and returns the remaining positional
// arguments (subcommand and query text) alongside the config.
package config
