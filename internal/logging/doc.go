// Package logging constructs the slog loggers used across otcli.
//
// It provides level/format parsing, combined stdout+file output, a compact
// console handler for interactive use and a JSON handler for machine
// consumption, plus the attribute helpers the rest of the codebase logs with.
//
// Obtain loggers through New or NewFromConfig so every component emits the
// same field names and formats.
package logging
