// Lipgloss styles for TUI colors and formatting.
package main

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("212") // Pink
	secondaryColor = lipgloss.Color("86")  // Cyan
	errorColor     = lipgloss.Color("196") // Red
	warningColor   = lipgloss.Color("214") // Orange
	successColor   = lipgloss.Color("42")  // Green
	dimColor       = lipgloss.Color("240") // Gray

	// Header/Footer
	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// Titles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	// Items
	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	selectedStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// Status
	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	// Spinner
	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Windows
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(warningColor).
			Padding(1, 3)

	crashDialogStyle = dialogStyle.
				BorderForeground(errorColor)

	dockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(0, 1)

	dockIconStyle = lipgloss.NewStyle().
			Padding(0, 1)

	dockSelectedStyle = dockIconStyle.
				Foreground(primaryColor).
				Bold(true).
				Underline(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Padding(0, 2)

	activeTabStyle = tabStyle.
			Foreground(secondaryColor).
			Bold(true).
			Underline(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")).
			Padding(0, 3)

	// Fatal screen
	fatalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("16"))

	// Toasts
	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1)

	toastColors = map[NoticeKind]lipgloss.Color{
		NoticeSuccess: successColor,
		NoticeError:   errorColor,
		NoticeInfo:    secondaryColor,
	}
)

// wallpaperStyle paints the desktop background for wp. Dark mode dims the text.
func wallpaperStyle(wp Wallpaper, dark bool) lipgloss.Style {
	fg := lipgloss.Color("255")
	if dark {
		fg = lipgloss.Color("250")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(wp.From)).
		Foreground(fg).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(wp.To)).
		BorderBackground(lipgloss.Color(wp.From))
}
