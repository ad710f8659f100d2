package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmrc-hht/keyadmin/internal/service"
	"github.com/dmrc-hht/keyadmin/internal/validators"
	"github.com/dmrc-hht/keyadmin/models"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	login loginModel
	list  listModel
	form  formModel

	err            error
	showError      bool
	errorOverlay   errorOverlayModel
	showConfirm    bool
	confirm        confirmModel
	pendingDelete  int64
	logout         bool
	sessionExpired bool
	resultUser     models.User
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		list:          newListModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, user models.User) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.currentScreen = screenList
	m.list.loading = true
	m.list.welcome = user.DisplayName()
	if expiry, ok := services.SessionService.TokenExpiry(); ok {
		m.list.tokenExpiry = expiry.Local().Format("Jan 2 15:04")
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteKey(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.applyLoginError(msg.err)
			return m, nil
		}
		m.resultUser = msg.user
		return m, tea.Quit
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				m.sessionExpired = true
				return m, tea.Quit
			}
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.keys = msg.keys
		if m.list.idx >= len(m.list.keys) {
			m.list.idx = len(m.list.keys) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case keySavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				m.sessionExpired = true
				return m, tea.Quit
			}
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		m.list.status = "Device key saved"
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList(), cmdClearStatus())
	case keyDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				m.sessionExpired = true
				return m, tea.Quit
			}
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.loading = true
		m.list.status = "Device key deleted"
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList(), cmdClearStatus())
	case copiedMsg:
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// applyLoginError routes credential validation errors to the field they
// belong to; everything else goes to the overlay.
func (m *appModel) applyLoginError(err error) {
	switch {
	case errors.Is(err, validators.ErrEmptyEmail):
		m.login.fieldErrs[0] = "Email is required"
	case errors.Is(err, validators.ErrEmptyPassword):
		m.login.fieldErrs[1] = "Password is required"
	default:
		m.showErrorf(err.Error())
	}
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		// plain q stays typeable in the inputs, only ctrl+c quits here
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()

			m.login.fieldErrs[0] = ""
			m.login.fieldErrs[1] = ""
			if email == "" {
				m.login.fieldErrs[0] = "Email is required"
			}
			if pass == "" {
				m.login.fieldErrs[1] = "Password is required"
			}
			if m.login.fieldErrs[0] != "" || m.login.fieldErrs[1] != "" {
				return m, nil
			}

			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.keys)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.newItem):
			m.form = newFormModel(nil)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
			current, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.form = newFormModel(&current)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.delete):
			current, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = fmt.Sprintf("%s (%s)", fitText(current.Key, 20), current.Type)
			m.pendingDelete = current.ID
		case key.Matches(msg, keys.refresh):
			if m.list.loading {
				return m, nil
			}
			m.list.loading = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
		case key.Matches(msg, keys.copy):
			current, ok := m.list.current()
			if !ok || current.Key == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(current.Key)
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case m.form.focus == formFocusType && key.Matches(keyMsg, keys.left):
			m.form.typeIdx = (m.form.typeIdx - 1 + len(models.KeyTypes)) % len(models.KeyTypes)
			m.form.fieldErrs[formFocusIV] = ""
			return m, nil
		case m.form.focus == formFocusType && key.Matches(keyMsg, keys.right):
			m.form.typeIdx = (m.form.typeIdx + 1) % len(models.KeyTypes)
			m.form.fieldErrs[formFocusIV] = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if !m.validateForm() {
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveKey(m.form)
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case formFocusKey:
		m.form.keyInput, cmd = m.form.keyInput.Update(msg)
	case formFocusIV:
		m.form.ivInput, cmd = m.form.ivInput.Update(msg)
	}
	return m, cmd
}

// validateForm fills per-field error slots and reports whether the form can
// be submitted. The rules mirror the service-side validator so a request
// that passes here passes there too.
func (m *appModel) validateForm() bool {
	for i := range m.form.fieldErrs {
		m.form.fieldErrs[i] = ""
	}

	if strings.TrimSpace(m.form.keyInput.Value()) == "" {
		m.form.fieldErrs[formFocusKey] = "Key is required"
	}
	if models.RequiresIV(m.form.selectedType()) && strings.TrimSpace(m.form.ivInput.Value()) == "" {
		m.form.fieldErrs[formFocusIV] = "IV is required for this key type"
	}

	for _, e := range m.form.fieldErrs {
		if e != "" {
			return false
		}
	}
	return true
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		user, err := sessions.Login(ctx, email, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DeviceKeyService
	return func() tea.Msg {
		deviceKeys, err := svc.List(ctx)
		return listLoadedMsg{keys: deviceKeys, err: err}
	}
}

func (m appModel) cmdSaveKey(form formModel) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DeviceKeyService
	return func() tea.Msg {
		var err error
		if form.editing {
			err = svc.Update(ctx, form.id, form.toUpdateRequest())
		} else {
			err = svc.Create(ctx, form.toCreateRequest())
		}
		return keySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteKey(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DeviceKeyService
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return keyDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextForm(m formModel) formModel {
	return moveFormFocus(m, 1)
}

func focusPrevForm(m formModel) formModel {
	return moveFormFocus(m, -1)
}

// moveFormFocus steps the focus ring, skipping the IV slot when the
// selected type has no use for it.
func moveFormFocus(m formModel, delta int) formModel {
	blurForm(&m)

	for {
		m.focus = (m.focus + delta + formFocusCount) % formFocusCount
		if m.focus != formFocusIV || models.RequiresIV(m.selectedType()) {
			break
		}
	}

	switch m.focus {
	case formFocusKey:
		m.keyInput.Focus()
	case formFocusIV:
		m.ivInput.Focus()
	}
	return m
}

func blurForm(m *formModel) {
	m.keyInput.Blur()
	m.ivInput.Blur()
}
