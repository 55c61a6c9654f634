// View rendering: all TUI screens and list item delegates.
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Simulated disk figures shown on the Disks tab.
const (
	mainDiskName  = "F.mac"
	mainDiskUsed  = 200 * humanize.GByte
	mainDiskTotal = 700 * humanize.GByte
	systemVolume  = "A.Setting"
)

func (m model) renderHeader() string {
	return headerStyle.Render(strings.ToUpper(OSName))
}

func (m model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}

func (m model) renderLogin() string {
	snap := m.desk.Snapshot()
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")
	sb.WriteString(subtitleStyle.Render(snap.Settings.DisplayName))
	sb.WriteString("\n\n")

	dots := make([]string, PasswordLength)
	for i := range dots {
		if i < len(snap.Session.PendingPassword) {
			dots[i] = selectedStyle.Render("●")
		} else {
			dots[i] = dimStyle.Render("○")
		}
	}
	sb.WriteString(strings.Join(dots, " "))
	sb.WriteString("\n\n")

	if snap.Session.LastAttemptFailed {
		sb.WriteString(errorStyle.Render("Password must be 4 digits"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(hintStyle.Render("Type any 4 digits and press enter"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderToasts())
	sb.WriteString(m.renderFooter())

	return sb.String()
}

func (m model) renderDesktop() string {
	snap := m.desk.Snapshot()

	var body string
	switch {
	case snap.Windows.Dialog == DialogCrashNotice:
		body = m.renderCrashNotice()
	case snap.Windows.Dialog == DialogConfirmReinstall:
		body = m.renderConfirmReinstall()
	case snap.Windows.Panel == PanelSettings:
		body = m.renderSettings(snap.Settings)
	case snap.Windows.Panel == PanelDeviceInfo:
		body = m.renderDeviceInfo(snap)
	case snap.Windows.Panel == PanelShop:
		body = panelStyle.Render(m.shopList.View())
	case snap.Windows.Panel == PanelSteam:
		body = panelStyle.Render(m.steamList.View())
	default:
		body = m.renderWallpaper(snap)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderDock(snap),
		"",
		m.renderToasts(),
		m.renderFooter(),
	)
}

func (m model) renderWallpaper(snap Snapshot) string {
	w := max(m.width-4, 40)
	text := fmt.Sprintf("Welcome, %s\n\n%s", snap.Settings.DisplayName, snap.Wallpaper.Name)
	return wallpaperStyle(snap.Wallpaper, snap.Settings.DarkMode).
		Width(w).
		Height(6).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

func (m model) renderDock(snap Snapshot) string {
	icons := make([]string, len(dockApps))
	for i, app := range dockApps {
		style := dockIconStyle
		if i == m.dockCursor && snap.Windows.Panel == PanelNone {
			style = dockSelectedStyle
		}
		label := fmt.Sprintf("%s %d %s", app.icon, i+1, app.panel)
		icons[i] = m.zones.Mark(app.zoneID, style.Render(label))
	}
	return dockStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, icons...))
}

func (m model) renderSettings(s Settings) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(PanelSettings.String()))
	sb.WriteString("\n")

	row := func(i int, label, value string) {
		if i == m.settingsCursor {
			sb.WriteString(cursorStyle.Render("> ") + selectedItemStyle.Render(fmt.Sprintf("%-12s", label)) + " " + value + "\n")
		} else {
			sb.WriteString("  " + itemStyle.Render(fmt.Sprintf("%-12s", label)) + " " + value + "\n")
		}
	}

	wp, _ := m.desk.Catalog().Wallpaper(s.WallpaperID)
	row(settingsRowWallpaper, "Wallpaper", "‹ "+wp.Name+" ›")
	row(settingsRowBrightness, "Brightness", m.progress.ViewAs(float64(s.Brightness)/100)+fmt.Sprintf(" %3d%%", s.Brightness))
	row(settingsRowVolume, "Volume", m.progress.ViewAs(float64(s.Volume)/100)+fmt.Sprintf(" %3d%%", s.Volume))

	for i, def := range settingDefs {
		checkbox := "[ ]"
		if s.IsEnabled(i) {
			checkbox = selectedStyle.Render("[x]")
		}
		row(settingsRowToggles+i, def.Label, fmt.Sprintf("%s  [%s]", checkbox, def.Key))
	}
	row(settingsRowDisplayName, "Display name", s.DisplayName)

	if m.nameForm != nil {
		sb.WriteString("\n")
		sb.WriteString(m.nameForm.View())
	} else {
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render("Enabled: " + s.Summary()))
	}

	return panelStyle.Render(sb.String())
}

func (m model) renderDeviceInfo(snap Snapshot) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(PanelDeviceInfo.String()))
	sb.WriteString("\n")

	tabs := []string{"Disks", "About"}
	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		if i == m.deviceTab {
			rendered[i] = activeTabStyle.Render(t)
		} else {
			rendered[i] = tabStyle.Render(t)
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	sb.WriteString("\n\n")

	if m.deviceTab == deviceTabAbout {
		sb.WriteString(renderAbout())
	} else {
		sb.WriteString(m.renderDisks(snap))
	}

	sb.WriteString("\n\n")
	sb.WriteString(buttonStyle.Render("[r] Reinstall device"))
	return panelStyle.Render(sb.String())
}

func (m model) renderDisks(snap Snapshot) string {
	var sb strings.Builder

	used, total := uint64(mainDiskUsed), uint64(mainDiskTotal)
	sb.WriteString(subtitleStyle.Render(mainDiskName))
	sb.WriteString("\n")
	sb.WriteString(m.progress.ViewAs(float64(used) / float64(total)))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%s of %s used", humanize.Bytes(used), humanize.Bytes(total))))
	sb.WriteString("\n\n")

	sb.WriteString(subtitleStyle.Render(systemVolume))
	sb.WriteString("\n")
	if snap.SystemFileExists {
		sb.WriteString("  " + itemStyle.Render(SystemFileName) + "  " + hintStyle.Render("[x] delete"))
	} else {
		sb.WriteString("  " + dimStyle.Render(SystemFileName) + " " + errorStyle.Render("(deleted)"))
	}
	return sb.String()
}

func renderAbout() string {
	rows := [][2]string{
		{"System", "macOS Ventura 13.0"},
		{"Chip", "Apple M2"},
		{"Memory", "16 GB"},
		{"Graphics", "Apple M2 10-Core GPU"},
	}
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", dimStyle.Render(r[0]), itemStyle.Render(r[1])))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (m model) renderCrashNotice() string {
	remaining := m.desk.CrashRemaining().Round(time.Second)
	content := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render(SystemFileName+" was deleted"),
		"",
		fmt.Sprintf("The system will shut down in %s.", m.desk.CrashDelay()),
		"",
		m.spinner.View()+" "+warningStyle.Render(fmt.Sprintf("Shutting down in %s", remaining)),
	)
	return crashDialogStyle.Render(content)
}

func (m model) renderConfirmReinstall() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		warningStyle.Render("Reinstall "+OSName+"?"),
		"",
		"The system will be restored and you will be logged out.",
		"",
		hintStyle.Render("[y] Reinstall  [n] Cancel"),
	)
	return dialogStyle.Render(content)
}

func (m model) renderFatal() string {
	button := m.zones.Mark(reinstallZoneID, buttonStyle.Render("Reinstall system"))
	content := lipgloss.JoinVertical(lipgloss.Center,
		errorStyle.Render("Critical system error"),
		"",
		SystemFileName+" was deleted",
		OSName+" cannot continue",
		"",
		button,
		"",
		hintStyle.Render("Press enter to reinstall"),
	)

	w, h := max(m.width, lipgloss.Width(content)), max(m.height, lipgloss.Height(content))
	return fatalStyle.Render(lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(fatalStyle.GetBackground())))
}

func (m model) renderToasts() string {
	notices := m.toasts.Visible()
	if len(notices) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, n := range notices {
		color := toastColors[n.Kind]
		sb.WriteString(toastStyle.BorderForeground(color).Foreground(color).Render(n.Message))
		sb.WriteString("\n")
	}
	return sb.String()
}

// List items for the storefronts

type storeItem struct {
	item StoreItem
}

func (i storeItem) Title() string       { return i.item.Icon + " " + i.item.Name }
func (i storeItem) Description() string { return i.item.Size.String() }
func (i storeItem) FilterValue() string { return i.item.Name }

type storeItemDelegate struct{}

func (d storeItemDelegate) Height() int                             { return 2 }
func (d storeItemDelegate) Spacing() int                            { return 0 }
func (d storeItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d storeItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(storeItem)
	if !ok {
		return
	}

	detail := i.item.Size.String()
	if i.item.Price != "" {
		detail += " · " + i.item.Price
	}
	detail += " · [" + i.item.ActionLabel() + "]"

	var str string
	if index == m.Index() {
		str = cursorStyle.Render("> ") + selectedItemStyle.Render(i.Title()) + "\n    " + dimStyle.Render(detail)
	} else {
		str = "  " + itemStyle.Render(i.Title()) + "\n    " + dimStyle.Render(detail)
	}

	fmt.Fprint(w, str)
}
