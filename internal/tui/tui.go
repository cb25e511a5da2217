// Package tui renders the terminal status dashboard: connectivity, queue
// depth, catalog download progress, and manual sync controls.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Run blocks displaying the dashboard until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.services.Coordinator, t.services.SyncService)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ErrUserQuit
		}
		return err
	}

	return nil
}
