package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/internal/workers"
	"github.com/MKhiriev/smoke-stack/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type screen int

const (
	screenCatalog screen = iota
	screenForm
	screenAccount
	screenBuildInfo
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	info     models.AppBuildInfo
	health   <-chan workers.HealthStatus
	logger   *logger.Logger

	state  State
	styles styles
	screen screen

	search  textinput.Model
	form    strainFormModel
	account accountModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, services *service.ClientServices, info models.AppBuildInfo, health <-chan workers.HealthStatus, logger *logger.Logger) appModel {
	search := textinput.New()
	search.Prompt = ""
	search.CharLimit = 100

	return appModel{
		ctx:      ctx,
		services: services,
		info:     info,
		health:   health,
		logger:   logger,
		state: State{
			Loading:    true,
			Mode:       ModeList,
			Collection: ModeList,
			Theme:      models.ThemeDark,
		},
		styles: newStyles(models.ThemeDark),
		screen: screenCatalog,
		search: search,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoad(),
		m.cmdRestoreSession(),
		m.cmdLoadTheme(),
		m.cmdWaitForHealth(),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
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
				return m, m.cmdRemove(m.confirm.key)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}

	case strainsLoadedMsg:
		m.state.Loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("error loading strains")
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.state.Source = msg.snap.Source
		m.state = m.state.WithSnapshot(msg.snap)
		if msg.snap.Cause != nil {
			return m.withStatus(app.MsgServerUnavailableHint)
		}
		return m, nil

	case strainSavedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("error saving strain")
			m.form.submitting = false
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.state = m.state.WithSnapshot(msg.snap)
		m.screen = screenCatalog
		if msg.snap.Online {
			return m.withStatus(app.MsgStrainSaved)
		}
		return m.withStatus(app.MsgStrainSaved + ". " + app.MsgOfflineNotice)

	case strainRemovedMsg:
		m.confirm = confirmModel{}
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("error deleting strain")
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.state = m.state.WithSnapshot(msg.snap).SwitchTo(ModeList)
		if msg.snap.Online {
			return m.withStatus(app.MsgStrainDeleted)
		}
		return m.withStatus(app.MsgStrainDeleted + ". " + app.MsgOfflineNotice)

	case healthMsg:
		m.state.Online = msg.Online
		m.state.Probed = true
		return m, m.cmdWaitForHealth()

	case sessionRestoredMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, service.ErrNoSession) {
				m.logger.Warn().Err(msg.err).Str("func", "appModel.Update").Msg("cached session is unusable")
			}
			return m, nil
		}
		session := msg.session
		m.state.Session = &session
		return m, nil

	case sessionStartedMsg:
		if msg.err != nil {
			m.account = m.account.failed(msg.err)
			return m, nil
		}
		session := msg.session
		m.state.Session = &session
		m.screen = screenCatalog
		return m.withStatus("Signed in as " + session.User.Email)

	case loggedOutMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.state.Session = nil
		m.screen = screenCatalog
		return m.withStatus(app.MsgSignedOut)

	case accountDeletedMsg:
		if msg.err != nil {
			m.account = m.account.failed(msg.err)
			return m, nil
		}
		m.state.Session = nil
		m.state.Strains = m.services.CatalogService.Strains()
		m.state = m.state.SwitchTo(ModeList).ClampCursor()
		m.screen = screenCatalog
		return m.withStatus(app.MsgAccountDeleted)

	case themeLoadedMsg:
		m.state.Theme = msg.theme
		m.styles = newStyles(msg.theme)
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("error saving theme")
			return m.withStatus(humanizeError(msg.err))
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m.withStatus(app.MsgImageURLCopied)

	case clearStatusMsg:
		m.state.Status = ""
		return m, nil
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenAccount:
		return m.updateAccount(msg)
	case screenBuildInfo:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter)) {
			m.screen = screenCatalog
		}
		return m, nil
	default:
		return m.updateCatalog(msg)
	}
}

func (m appModel) updateCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.state.Searching {
		if ok && (key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc)) {
			m.state.Searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.state.Query {
			m.state = m.state.WithQuery(m.search.Value())
		}
		return m, cmd
	}

	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.theme):
		return m.toggleTheme()
	case key.Matches(keyMsg, keys.account):
		m.account = newAccountModel(m.state.Session != nil)
		m.screen = screenAccount
		return m, nil
	case key.Matches(keyMsg, keys.version):
		m.screen = screenBuildInfo
		return m, nil
	case key.Matches(keyMsg, keys.list):
		m.state = m.state.SwitchTo(ModeList)
		return m, nil
	case key.Matches(keyMsg, keys.grid):
		m.state = m.state.SwitchTo(ModeGrid)
		return m, nil
	}

	if m.state.Mode == ModeDetail {
		return m.updateDetail(keyMsg)
	}

	step := 1
	if m.state.Mode == ModeGrid {
		step = m.state.GridColumns()
	}

	switch {
	case key.Matches(keyMsg, keys.search):
		m.state.Searching = true
		m.search.SetValue(m.state.Query)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.esc):
		if m.state.Query != "" {
			m.search.SetValue("")
			m.state = m.state.WithQuery("")
		}
	case key.Matches(keyMsg, keys.up):
		m.state = m.state.MoveCursor(-step)
	case key.Matches(keyMsg, keys.down):
		m.state = m.state.MoveCursor(step)
	case key.Matches(keyMsg, keys.left):
		if m.state.Mode == ModeGrid {
			m.state = m.state.MoveCursor(-1)
		}
	case key.Matches(keyMsg, keys.right):
		if m.state.Mode == ModeGrid {
			m.state = m.state.MoveCursor(1)
		}
	case key.Matches(keyMsg, keys.enter):
		m.state = m.state.OpenDetail()
	case key.Matches(keyMsg, keys.newItem):
		m.form = newStrainFormModel()
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if selected, found := m.state.Selected(); found {
			m.form = newEditStrainFormModel(selected)
			m.screen = screenForm
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if selected, found := m.state.Selected(); found {
			m.askDelete(selected)
		}
	case key.Matches(keyMsg, keys.reload):
		m.state.Loading = true
		return m, m.cmdLoad()
	}

	return m, nil
}

func (m appModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current, ok := m.state.Current()
	if !ok {
		m.state = m.state.CloseDetail()
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.state = m.state.CloseDetail()
	case key.Matches(keyMsg, keys.edit):
		m.form = newEditStrainFormModel(current)
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(current)
	case key.Matches(keyMsg, keys.copy):
		if strings.TrimSpace(current.Image) == "" {
			return m.withStatus("This strain has no image URL")
		}
		return m, cmdCopy(current.Image)
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.screen = screenCatalog
		return m, nil
	}

	form, cmd, submit := m.form.Update(msg)
	m.form = form
	if submit {
		return m, m.cmdSave(form.key, form.input())
	}
	return m, cmd
}

func (m appModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	account, cmd, action, back := m.account.Update(msg)
	m.account = account
	if back {
		m.screen = screenCatalog
		return m, nil
	}

	switch action {
	case actionLogin:
		return m, m.cmdLogin(account.credentials())
	case actionRegister:
		return m, m.cmdRegister(account.credentials())
	case actionLogout:
		return m, m.cmdLogout()
	case actionDeleteAccount:
		return m, m.cmdDeleteAccount(account.confirmation())
	}
	return m, cmd
}

func (m appModel) toggleTheme() (tea.Model, tea.Cmd) {
	theme := m.state.Theme.Toggle()
	m.state.Theme = theme
	m.styles = newStyles(theme)
	return m, m.cmdSaveTheme(theme)
}

func (m *appModel) askDelete(strain models.Strain) {
	m.showConfirm = true
	m.confirm = confirmModel{name: strain.Name, key: strain.Key()}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.state.Status = status
	return m, cmdClearStatus()
}

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenForm:
		body = m.form.View(m.styles)
	case screenAccount:
		body = m.account.View(m.state.Session, m.styles)
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.info, m.styles)
	default:
		body = renderCatalog(m.state, m.styles)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View(m.styles)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.styles)
	}

	return m.styles.app.Render(body)
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx, catalog := m.ctx, m.services.CatalogService
	return func() tea.Msg {
		snap, err := catalog.Load(ctx)
		return strainsLoadedMsg{snap: snap, err: err}
	}
}

func (m appModel) cmdSave(key string, in models.StrainInput) tea.Cmd {
	ctx, catalog := m.ctx, m.services.CatalogService
	return func() tea.Msg {
		if key == "" {
			snap, err := catalog.Add(ctx, in)
			return strainSavedMsg{snap: snap, err: err}
		}
		snap, err := catalog.Edit(ctx, key, in)
		return strainSavedMsg{snap: snap, err: err}
	}
}

func (m appModel) cmdRemove(key string) tea.Cmd {
	ctx, catalog := m.ctx, m.services.CatalogService
	return func() tea.Msg {
		snap, err := catalog.Remove(ctx, key)
		return strainRemovedMsg{snap: snap, err: err}
	}
}

func (m appModel) cmdRestoreSession() tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Restore(ctx)
		return sessionRestoredMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, creds)
		return sessionStartedMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Register(ctx, creds)
		return sessionStartedMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdDeleteAccount(confirmation string) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return accountDeletedMsg{err: auth.DeleteAccount(ctx, confirmation)}
	}
}

func (m appModel) cmdLoadTheme() tea.Cmd {
	ctx, prefs := m.ctx, m.services.PreferencesService
	return func() tea.Msg {
		return themeLoadedMsg{theme: prefs.Theme(ctx)}
	}
}

func (m appModel) cmdSaveTheme(theme models.Theme) tea.Cmd {
	ctx, prefs := m.ctx, m.services.PreferencesService
	return func() tea.Msg {
		return themeSavedMsg{err: prefs.SetTheme(ctx, theme)}
	}
}

// cmdWaitForHealth delivers the next probe result. It is re-armed after
// every healthMsg.
func (m appModel) cmdWaitForHealth() tea.Cmd {
	if m.health == nil {
		return nil
	}
	ctx, health := m.ctx, m.health
	return func() tea.Msg {
		select {
		case status := <-health:
			return healthMsg(status)
		case <-ctx.Done():
			return nil
		}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
