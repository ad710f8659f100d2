package tui

import (
	"github.com/dmrc-hht/keyadmin/models"
)

type loginDoneMsg struct {
	user models.User
	err  error
}

type listLoadedMsg struct {
	keys []models.DeviceKey
	err  error
}

type keySavedMsg struct {
	err error
}

type keyDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
