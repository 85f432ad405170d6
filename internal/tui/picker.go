package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/sqlstage/internal/tui/components"
)

// ErrCancelled is returned when the operator quits an interactive prompt.
var ErrCancelled = errors.New("cancelled by user")

// PickOrder shows the order picker for the discovered file names and returns
// the chosen execution order string ("0" for natural order).
func PickOrder(files []string) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	picker := components.NewOrderPicker("Select load order", files)
	final, err := tea.NewProgram(picker).Run()
	if err != nil {
		return "", fmt.Errorf("order picker failed: %w", err)
	}

	result, ok := final.(components.OrderPicker)
	if !ok || result.Cancelled() || !result.Submitted() {
		return "", ErrCancelled
	}
	return result.Order(), nil
}
