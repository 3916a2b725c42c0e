// Package logging provides the small Logger interface used across the app and
// a log/slog backed implementation.
//
// Commands build one logger from the configured level and format and pass it
// down through app.Wire. Tests use Nop.
package logging
