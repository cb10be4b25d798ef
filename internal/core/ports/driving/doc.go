// Package driving defines the inbound ports of the normalization core:
// service interfaces consumed by the CLI and TUI adapters.
package driving
