// Package driven defines the outbound ports of the normalization core:
// interfaces the core services depend on, implemented by adapters
// (scanner, rewriters, text passes, configuration and lexicon storage).
package driven
