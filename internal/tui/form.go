package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/dmrc-hht/keyadmin/models"
)

// Form focus positions. The type row is not a text input: when it holds
// focus, left/right cycle through the recognised key types.
const (
	formFocusKey = iota
	formFocusType
	formFocusIV
	formFocusCount
)

// formModel is the state of the add/edit screen for a device key. The same
// form serves both flows; editing carries the id of the record being
// replaced.
type formModel struct {
	keyInput textinput.Model
	ivInput  textinput.Model
	typeIdx  int

	fieldErrs  []string
	focus      int
	editing    bool
	id         int64
	submitting bool
}

func newFormModel(existing *models.DeviceKey) formModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "key material"
	keyInput.CharLimit = 512
	keyInput.Width = 40
	keyInput.Focus()

	ivInput := textinput.New()
	ivInput.Placeholder = "initialization vector"
	ivInput.CharLimit = 128
	ivInput.Width = 40

	m := formModel{
		keyInput:  keyInput,
		ivInput:   ivInput,
		fieldErrs: make([]string, formFocusCount),
	}

	if existing != nil {
		m.editing = true
		m.id = existing.ID
		m.keyInput.SetValue(existing.Key)
		for i, t := range models.KeyTypes {
			if t == existing.Type {
				m.typeIdx = i
				break
			}
		}
		if existing.IV != nil {
			m.ivInput.SetValue(*existing.IV)
		}
	}

	return m
}

func (m formModel) selectedType() models.KeyType {
	if m.typeIdx < 0 || m.typeIdx >= len(models.KeyTypes) {
		return models.KeyTypes[0]
	}
	return models.KeyTypes[m.typeIdx]
}

// toCreateRequest builds the outbound create payload. The iv pointer stays
// nil unless the selected type takes one and the input is non-empty.
func (m formModel) toCreateRequest() models.CreateDeviceKeyRequest {
	return models.CreateDeviceKeyRequest{
		Key:  strings.TrimSpace(m.keyInput.Value()),
		Type: m.selectedType(),
		IV:   m.ivValue(),
	}
}

func (m formModel) toUpdateRequest() models.UpdateDeviceKeyRequest {
	return models.UpdateDeviceKeyRequest{
		Key:  strings.TrimSpace(m.keyInput.Value()),
		Type: m.selectedType(),
		IV:   m.ivValue(),
	}
}

func (m formModel) ivValue() *string {
	if !models.RequiresIV(m.selectedType()) {
		return nil
	}
	iv := strings.TrimSpace(m.ivInput.Value())
	if iv == "" {
		return nil
	}
	return &iv
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString("Field  │ Value\n")
	b.WriteString("───────┼────────────────────────────────────────────\n")

	b.WriteString("Key    │ [")
	b.WriteString(m.keyInput.View())
	b.WriteString("]\n")
	if m.fieldErrs[formFocusKey] != "" {
		b.WriteString("       │ " + errorStyle.Render(m.fieldErrs[formFocusKey]) + "\n")
	}

	typeMarker := "  "
	if m.focus == formFocusType {
		typeMarker = "◄ "
	}
	b.WriteString("Type   │ " + typeMarker + string(m.selectedType()))
	if m.focus == formFocusType {
		b.WriteString(" ►")
	}
	b.WriteString("\n")
	if m.fieldErrs[formFocusType] != "" {
		b.WriteString("       │ " + errorStyle.Render(m.fieldErrs[formFocusType]) + "\n")
	}

	if models.RequiresIV(m.selectedType()) {
		b.WriteString("IV     │ [")
		b.WriteString(m.ivInput.View())
		b.WriteString("]\n")
		if m.fieldErrs[formFocusIV] != "" {
			b.WriteString("       │ " + errorStyle.Render(m.fieldErrs[formFocusIV]) + "\n")
		}
	} else {
		b.WriteString("IV     │ " + helpStyle.Render("not used by this type") + "\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	title := "NEW DEVICE KEY"
	if m.editing {
		title = "EDIT DEVICE KEY"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ←/→: change type │ enter: save │ esc: cancel")
}
