package tui

import (
	"strings"

	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type accountStage int

const (
	accountMenu accountStage = iota
	accountLogin
	accountRegister
	accountDelete
)

type accountAction int

const (
	actionNone accountAction = iota
	actionLogin
	actionRegister
	actionLogout
	actionDeleteAccount
)

// accountModel is the account screen: a menu, the login and registration
// forms, and the typed confirmation for account deletion. It only collects
// input; the root model runs the auth calls.
type accountModel struct {
	signedIn bool
	stage    accountStage
	idx      int

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newAccountModel(signedIn bool) accountModel {
	return accountModel{signedIn: signedIn}
}

func (m accountModel) items() []string {
	if m.signedIn {
		return []string{"Sign out", "Delete account"}
	}
	return []string{"Sign in", "Register"}
}

func (m accountModel) open(stage accountStage) accountModel {
	m.stage = stage
	m.errMsg = ""
	m.submitting = false
	m.focus = 0

	newInput := func(placeholder string, limit int, secret bool) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		if secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		return in
	}

	switch stage {
	case accountLogin:
		m.inputs = []textinput.Model{
			newInput("email", 254, false),
			newInput("PIN", 10, true),
		}
	case accountRegister:
		m.inputs = []textinput.Model{
			newInput("email", 254, false),
			newInput("PIN (4-10 digits)", 10, true),
			newInput("confirm PIN", 10, true),
		}
	case accountDelete:
		m.inputs = []textinput.Model{newInput(service.DeleteAccountConfirmation, 16, false)}
	default:
		m.inputs = nil
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

// credentials reads the login or registration form.
func (m accountModel) credentials() models.Credentials {
	creds := models.Credentials{
		Email: strings.TrimSpace(m.inputs[0].Value()),
		PIN:   m.inputs[1].Value(),
	}
	if len(m.inputs) > 2 {
		creds.ConfirmPIN = m.inputs[2].Value()
	}
	return creds
}

func (m accountModel) confirmation() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

// Update returns the action the user asked for, if any. back is true when
// esc was pressed on the menu.
func (m accountModel) Update(msg tea.Msg) (model accountModel, cmd tea.Cmd, action accountAction, back bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.stage == accountMenu {
		if !isKey {
			return m, nil, actionNone, false
		}
		switch keyMsg.String() {
		case "esc":
			return m, nil, actionNone, true
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.items())-1 {
				m.idx++
			}
		case "enter":
			switch {
			case !m.signedIn && m.idx == 0:
				return m.open(accountLogin), textinput.Blink, actionNone, false
			case !m.signedIn:
				return m.open(accountRegister), textinput.Blink, actionNone, false
			case m.idx == 0:
				return m, nil, actionLogout, false
			default:
				return m.open(accountDelete), textinput.Blink, actionNone, false
			}
		}
		return m, nil, actionNone, false
	}

	if isKey {
		switch keyMsg.String() {
		case "esc":
			return m.open(accountMenu), nil, actionNone, false
		case "tab", "down":
			m.moveFocus(1)
			return m, nil, actionNone, false
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil, actionNone, false
		case "enter":
			if m.submitting {
				return m, nil, actionNone, false
			}
			m.errMsg = ""
			m.submitting = true
			switch m.stage {
			case accountLogin:
				return m, nil, actionLogin, false
			case accountRegister:
				return m, nil, actionRegister, false
			default:
				return m, nil, actionDeleteAccount, false
			}
		}
	}

	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, actionNone, false
}

func (m *accountModel) moveFocus(delta int) {
	n := len(m.inputs)
	if n == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + n) % n
	m.inputs[m.focus].Focus()
}

// failed shows err under the form and re-enables it.
func (m accountModel) failed(err error) accountModel {
	m.submitting = false
	m.errMsg = humanizeError(err)
	return m
}

func (m accountModel) View(session *models.Session, st styles) string {
	var b strings.Builder

	switch m.stage {
	case accountMenu:
		if session != nil {
			b.WriteString("Signed in as ")
			b.WriteString(st.selected.Render(session.User.Email))
			b.WriteString("\n")
			b.WriteString(st.muted.Render("user id " + session.User.ID))
			b.WriteString("\n\n")
		} else {
			b.WriteString(st.muted.Render("Not signed in. The catalog works without an account."))
			b.WriteString("\n\n")
		}
		for i, item := range m.items() {
			if i == m.idx {
				b.WriteString(st.selected.Render("› " + item))
			} else {
				b.WriteString("  " + item)
			}
			b.WriteString("\n")
		}
		return renderPage(st.title.Render("ACCOUNT"), strings.TrimRight(b.String(), "\n"), "↑↓: choose │ enter: select │ esc: back")

	case accountDelete:
		b.WriteString(st.err.Render("This deletes your session and every strain stored on this device."))
		b.WriteString("\n")
		b.WriteString("Type " + service.DeleteAccountConfirmation + " to confirm.\n\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")
	default:
		labels := []string{"Email", "PIN", "Confirm PIN"}
		for i, in := range m.inputs {
			b.WriteString(st.label.Render(labels[i]))
			b.WriteString(in.View())
			b.WriteString("\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(st.err.Render(m.errMsg))
		b.WriteString("\n")
	}

	title := map[accountStage]string{
		accountLogin:    "SIGN IN",
		accountRegister: "REGISTER",
		accountDelete:   "DELETE ACCOUNT",
	}[m.stage]
	return renderPage(st.title.Render(title), strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
