// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, the assigner, the optional notifier and the
// draw service from Config, exposing them via the Wire struct for commands
// to use. Config values come from SECRETSANTA_* environment variables and are
// overridden by command-line flags.
package app
