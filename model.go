// TUI model: routes input to the desktop controller using the Bubbletea framework.
package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	zone "github.com/lrstanley/bubblezone"
)

const (
	deviceTabDisks = iota
	deviceTabAbout
)

// Settings panel rows: wallpaper, brightness, volume, the toggles, display name.
const (
	settingsRowWallpaper = iota
	settingsRowBrightness
	settingsRowVolume
	settingsRowToggles
)

var settingsRowDisplayName = settingsRowToggles + len(settingDefs)

type dockApp struct {
	panel  Panel
	icon   string
	zoneID string
}

var dockApps = []dockApp{
	{panel: PanelSettings, icon: "⚙️", zoneID: "dock-settings"},
	{panel: PanelDeviceInfo, icon: "💻", zoneID: "dock-device"},
	{panel: PanelShop, icon: "🛍️", zoneID: "dock-shop"},
	{panel: PanelSteam, icon: "🎮", zoneID: "dock-steam"},
}

const reinstallZoneID = "fatal-reinstall"

type model struct {
	desk   *Desktop
	toasts *toastQueue
	cfg    Config

	// Components
	help     help.Model
	keys     keyMap
	spinner  spinner.Model
	progress progress.Model
	zones    *zone.Manager

	// Storefronts
	shopList  list.Model
	steamList list.Model

	// Cursors
	dockCursor     int
	settingsCursor int
	deviceTab      int

	// Forms
	nameForm *huh.Form

	// Window size
	width  int
	height int
}

func initialModel(cfg Config, cat Catalog, settings Settings) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	toasts := newToastQueue(4)
	desk := NewDesktop(DesktopOptions{
		Catalog:    cat,
		Settings:   settings,
		Notifier:   toasts,
		CrashDelay: cfg.CrashDelay,
	})

	return model{
		desk:      desk,
		toasts:    toasts,
		cfg:       cfg,
		help:      help.New(),
		keys:      defaultKeyMap(),
		spinner:   s,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		zones:     zone.New(),
		shopList:  newStoreList(PanelShop, cat.Shop),
		steamList: newStoreList(PanelSteam, cat.Steam),
	}
}

func newStoreList(p Panel, items []StoreItem) list.Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = storeItem{item: it}
	}
	l := list.New(listItems, storeItemDelegate{}, 50, 14)
	l.Title = p.String()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	// q only quits from the dock
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update routes msg and then schedules expiry for any notice it raised.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, tea.Batch(cmd, expireToastsCmd(next.toasts.drain(), next.cfg.ToastDuration))
}

func (m model) update(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := max(msg.Width-8, 20), max(msg.Height-14, 6)
		m.shopList.SetSize(w, h)
		m.steamList.SetSize(w, h)
		return m, nil

	case tea.KeyMsg:
		// Global handling - works from anywhere
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help) && m.nameForm == nil:
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case crashDueMsg:
		m.desk.CrashTimerElapsed(msg.generation)
		return m, nil

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil
	}

	// Delegate to current screen
	switch m.desk.Screen() {
	case ScreenFatalError:
		m.nameForm = nil
		return m.updateFatal(msg)
	case ScreenLogin:
		m.nameForm = nil
		return m.updateLogin(msg)
	}
	return m.updateDesktop(msg)
}

// report surfaces a rejected intent as an error notice.
func (m model) report(err error) {
	if err != nil {
		m.toasts.Notify(err.Error(), NoticeError)
	}
}

func (m model) updateLogin(msg tea.Msg) (model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Enter):
		// AttemptLogin raises its own notice on failure
		_ = m.desk.AttemptLogin()
		m.dockCursor = 0
	case keyMsg.Type == tea.KeyBackspace:
		m.desk.DeleteDigit()
	case keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1:
		m.desk.SubmitDigit(keyMsg.Runes[0])
	}
	return m, nil
}

func (m model) updateFatal(msg tea.Msg) (model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Enter, m.keys.Reinstall) {
			m.desk.Reinstall()
		}
	}
	return m, nil
}

func (m model) updateDesktop(msg tea.Msg) (model, tea.Cmd) {
	snap := m.desk.Snapshot()

	switch snap.Windows.Dialog {
	case DialogConfirmReinstall:
		return m.updateConfirmReinstall(msg)
	case DialogCrashNotice:
		// Not cancelable: input waits for the crash or a reinstall
		return m, nil
	}

	switch snap.Windows.Panel {
	case PanelSettings:
		return m.updateSettings(msg)
	case PanelDeviceInfo:
		return m.updateDeviceInfo(msg)
	case PanelShop, PanelSteam:
		return m.updateStore(msg, snap.Windows.Panel)
	}
	return m.updateDock(msg)
}

func (m model) openPanel(p Panel) model {
	if err := m.desk.OpenPanel(p); err != nil {
		m.report(err)
		return m
	}
	m.settingsCursor = 0
	m.deviceTab = deviceTabDisks
	m.nameForm = nil
	m.shopList.ResetSelected()
	m.steamList.ResetSelected()
	return m
}

func (m model) updateDock(msg tea.Msg) (model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Left):
		if m.dockCursor > 0 {
			m.dockCursor--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.dockCursor < len(dockApps)-1 {
			m.dockCursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		return m.openPanel(dockApps[m.dockCursor].panel), nil
	case key.Matches(keyMsg, m.keys.Exit):
		return m, tea.Quit
	default:
		// 1-4 open dock apps directly
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(dockApps) {
			m.dockCursor = int(s[0] - '1')
			return m.openPanel(dockApps[m.dockCursor].panel), nil
		}
	}
	return m, nil
}

func (m model) updateConfirmReinstall(msg tea.Msg) (model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm, m.keys.Enter):
		m.report(m.desk.ConfirmReinstall())
	case key.Matches(keyMsg, m.keys.Cancel, m.keys.Back):
		m.desk.DismissDialog()
	}
	return m, nil
}

func (m model) updateSettings(msg tea.Msg) (model, tea.Cmd) {
	if m.nameForm != nil {
		return m.updateNameForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	settings := m.desk.Settings()

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.desk.ClosePanel()
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.settingsCursor < settingsRowDisplayName {
			m.settingsCursor++
		}
		return m, nil
	}

	// Toggle shortcuts work from any row
	for i, def := range settingDefs {
		if keyMsg.String() == def.Key {
			m.report(m.desk.ToggleSetting(i))
			return m, nil
		}
	}

	step := 0
	switch {
	case key.Matches(keyMsg, m.keys.Left):
		step = -1
	case key.Matches(keyMsg, m.keys.Right):
		step = 1
	}

	switch row := m.settingsCursor; {
	case row == settingsRowWallpaper:
		if step == 0 && key.Matches(keyMsg, m.keys.Enter) {
			step = 1
		}
		if step != 0 {
			m.report(m.desk.SelectWallpaper(m.nextWallpaperID(settings.WallpaperID, step)))
		}
	case row == settingsRowBrightness:
		if step != 0 {
			m.report(m.desk.SetBrightness(settings.Brightness + step*SliderStep))
		}
	case row == settingsRowVolume:
		if step != 0 {
			m.report(m.desk.SetVolume(settings.Volume + step*SliderStep))
		}
	case row < settingsRowDisplayName:
		if key.Matches(keyMsg, m.keys.Toggle, m.keys.Enter) {
			m.report(m.desk.ToggleSetting(row - settingsRowToggles))
		}
	default:
		if key.Matches(keyMsg, m.keys.Enter) {
			m.nameForm = displayNameForm(settings.DisplayName)
			return m, m.nameForm.Init()
		}
	}
	return m, nil
}

// nextWallpaperID steps through the catalog from id, wrapping at both ends.
func (m model) nextWallpaperID(id, step int) int {
	wps := m.desk.Catalog().Wallpapers
	if len(wps) == 0 {
		return id
	}
	cur := 0
	for i, wp := range wps {
		if wp.ID == id {
			cur = i
			break
		}
	}
	next := (cur + step + len(wps)) % len(wps)
	return wps[next].ID
}

func (m model) updateNameForm(msg tea.Msg) (model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		if m.nameForm.State == huh.StateNormal {
			m.nameForm = nil
			return m, nil
		}
	}

	form, cmd := m.nameForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.nameForm = f

		switch m.nameForm.State {
		case huh.StateCompleted:
			m.report(m.desk.SetDisplayName(m.nameForm.GetString("name")))
			m.nameForm = nil
			return m, nil
		case huh.StateAborted:
			m.nameForm = nil
			return m, nil
		}
	}
	return m, cmd
}

func (m model) updateDeviceInfo(msg tea.Msg) (model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.desk.ClosePanel()
	case key.Matches(keyMsg, m.keys.Tab, m.keys.Left, m.keys.Right):
		if m.deviceTab == deviceTabDisks {
			m.deviceTab = deviceTabAbout
		} else {
			m.deviceTab = deviceTabDisks
		}
	case key.Matches(keyMsg, m.keys.Reinstall):
		m.report(m.desk.RequestReinstallConfirmation())
	case key.Matches(keyMsg, m.keys.Delete):
		if m.deviceTab != deviceTabDisks {
			return m, nil
		}
		timer, err := m.desk.DeleteSystemFile()
		if err != nil {
			m.report(err)
			return m, nil
		}
		return m, crashAfterCmd(timer)
	}
	return m, nil
}

func (m model) updateStore(msg tea.Msg, p Panel) (model, tea.Cmd) {
	l := &m.shopList
	if p == PanelSteam {
		l = &m.steamList
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			m.desk.ClosePanel()
			return m, nil
		case key.Matches(keyMsg, m.keys.Enter):
			if i, ok := l.SelectedItem().(storeItem); ok {
				m.report(m.desk.Install(i.item))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m model) updateMouse(msg tea.MouseMsg) (model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.desk.Screen() {
	case ScreenFatalError:
		if m.zones.Get(reinstallZoneID).InBounds(msg) {
			m.desk.Reinstall()
		}
	case ScreenDesktop:
		snap := m.desk.Snapshot()
		if snap.Windows.Dialog != DialogNone || snap.Windows.Panel != PanelNone {
			return m, nil
		}
		for i, app := range dockApps {
			if m.zones.Get(app.zoneID).InBounds(msg) {
				m.dockCursor = i
				return m.openPanel(app.panel), nil
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var content string
	switch m.desk.Screen() {
	case ScreenFatalError:
		content = m.renderFatal()
	case ScreenLogin:
		content = m.renderLogin()
	default:
		content = m.renderDesktop()
	}
	return m.zones.Scan(content)
}
