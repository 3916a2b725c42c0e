// Package commands defines the secretsanta CLI and wires dependencies for subcommands.
//
// Commands
//
//   - draw     Assign every participant a receiver and write the result
//   - reveal   Print one giver's receiver from a (sealed) result
//   - verify   Check a stored result against participants and history
//
// # Implementation
//
// The root command loads SECRETSANTA_* environment configuration, applies
// flag overrides and builds the dependency graph (stores, assigner, notifier,
// draw service) before any subcommand runs.
package commands
