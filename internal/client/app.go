package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/service"
	"github.com/dmrc-hht/keyadmin/internal/tui"
)

// App ties the client services and the terminal UI into one process
// lifecycle.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run blocks until the user quits.
//
// On startup a stored session is restored when one exists, skipping the
// sign-in screen. After a logout, manual or forced by the backend rejecting
// the token, the stored session is dropped exactly once here and the flow
// returns to sign-in.
func (a *App) Run() error {
	// storage and adapter layers log through logger.FromContext, which
	// discards everything unless a logger rides on the context
	ctx := a.logger.WithContext(context.Background())

	user, restored, err := a.services.SessionService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if restored {
		a.logger.Info().Str("func", "client.Run").Msg("session restored, skipping sign-in")
	}

	for {
		if !restored {
			user, err = a.tui.LoginFlow(ctx)
			if err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("sign-in flow: %w", err)
			}
		}

		logout, err := a.tui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.SessionService.Logout(ctx); err != nil {
			// the in-memory state is already cleared, a stale row on disk
			// only means one extra 401 on the next start
			a.logger.Err(err).Str("func", "client.Run").Msg("error dropping stored session")
		}
		restored = false
	}
}
