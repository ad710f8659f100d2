package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/service"
	"github.com/dmrc-hht/keyadmin/internal/tui"
)

func TestNewApp(t *testing.T) {
	services := &service.ClientServices{}
	ui, err := tui.New(services, logger.Nop())
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		app, err := NewApp(services, ui, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, app)
	})

	t.Run("nil services", func(t *testing.T) {
		_, err := NewApp(nil, ui, logger.Nop())
		assert.Error(t, err)
	})

	t.Run("nil ui", func(t *testing.T) {
		_, err := NewApp(services, nil, logger.Nop())
		assert.Error(t, err)
	})
}
