// Package config loads the client configuration.
//
// Values are resolved in three layers, each overriding the previous one:
// built-in defaults, an optional JSON file (given with -c/-config), and
// command-line flags.
package config
