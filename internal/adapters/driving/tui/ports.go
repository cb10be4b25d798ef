// Package tui provides an interactive terminal user interface for
// vocalise: a live preview that normalizes text as it is typed.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Text runs the full normalization chain.
	Text driving.TextService

	// Settings exposes the current configuration for the status bar.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(text driving.TextService, settings driving.SettingsService) *Ports {
	return &Ports{
		Text:     text,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Text == nil {
		return ErrMissingTextService
	}
	return nil
}
