package ui

import "datacheck/internal/domain"

// Viewer displays check failures in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}
