package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/dmrc-hht/keyadmin/models"
)

type listModel struct {
	keys    []models.DeviceKey
	idx     int
	loading bool
	spinner spinner.Model
	status  string

	welcome     string
	tokenExpiry string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.DeviceKey, bool) {
	if len(m.keys) == 0 || m.idx < 0 || m.idx >= len(m.keys) {
		return models.DeviceKey{}, false
	}
	return m.keys[m.idx], true
}

func (m listModel) View() string {
	var b strings.Builder

	if m.welcome != "" {
		b.WriteString("Welcome, " + m.welcome + "!")
		if m.tokenExpiry != "" {
			b.WriteString(helpStyle.Render("  (session valid until " + m.tokenExpiry + ")"))
		}
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if len(m.keys) == 0 {
		b.WriteString("No device keys yet. Press n to add one.\n")
	} else {
		b.WriteString(fmt.Sprintf("%-4s %-30s %-10s %-12s\n", "ID", "Key", "Type", "IV"))
		b.WriteString(strings.Repeat("─", 60) + "\n")
		for i, k := range m.keys {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-4d %-30s %-10s %-12s\n",
				cursor, k.ID, fitText(k.Key, 30), string(k.Type), fitText(valueOrDash(k.IV), 12)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(
		"DEVICE KEYS",
		strings.TrimRight(b.String(), "\n"),
		"n: new │ e: edit │ d: delete │ r: refresh │ c: copy key │ l: logout",
	)
}
