// Package tui implements the terminal user interface: a sign-in screen, the
// device-key table, and an add/edit form, rendered with Bubble Tea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/service"
	"github.com/dmrc-hht/keyadmin/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	return &TUI{services: services, logger: log}, nil
}

// LoginFlow runs the sign-in screen until the user authenticates or quits.
// Returns [ErrUserQuit] when the user bails out with ctrl+c.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.User{}, result.err
	}

	return result.resultUser, nil
}

// MainLoop runs the device-key dashboard for the given authenticated user.
// It returns logout=true when the user asked to log out or the backend
// stopped accepting the session token; the caller decides what happens next.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.logout || result.sessionExpired, nil
}
