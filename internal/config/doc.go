// Package config loads, normalizes, and validates otcli configuration.
//
// It supplies repository defaults, expands tilde paths, and reads TOML files.
// Both the daemon and the operator CLI resolve the control socket location
// through this package so they always agree on it.
package config
