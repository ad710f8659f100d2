// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The keyadmin Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel is the state of the sign-in screen: an email input, a masked
// password input and a per-field error slot under each. Submission and
// navigation are handled by the appModel update loop.
type loginModel struct {
	inputs     []textinput.Model
	fieldErrs  []string
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{
		inputs:    []textinput.Model{emailInput, passwordInput},
		fieldErrs: make([]string, 2),
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if m.fieldErrs[0] != "" {
		b.WriteString("          │ " + errorStyle.Render(m.fieldErrs[0]) + "\n")
	}
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	if m.fieldErrs[1] != "" {
		b.WriteString("          │ " + errorStyle.Render(m.fieldErrs[1]) + "\n")
	}

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit")
}
