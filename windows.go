// Window manager: the single open panel and the single open dialog.
package main

// Panel is the modal window shown over the desktop.
type Panel int

const (
	PanelNone Panel = iota
	PanelSettings
	PanelDeviceInfo
	PanelShop
	PanelSteam
)

// String returns the title shown in the panel frame.
func (p Panel) String() string {
	switch p {
	case PanelNone:
		return "none"
	case PanelSettings:
		return "Settings"
	case PanelDeviceInfo:
		return "This Mac"
	case PanelShop:
		return "MacSHOP"
	case PanelSteam:
		return "MacSteam"
	default:
		return "unknown"
	}
}

// Dialog is the confirmation/notice box shown over panels.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogConfirmReinstall
	DialogCrashNotice
)

func (d Dialog) String() string {
	switch d {
	case DialogNone:
		return "none"
	case DialogConfirmReinstall:
		return "confirm-reinstall"
	case DialogCrashNotice:
		return "crash-notice"
	default:
		return "unknown"
	}
}

// Windows holds one panel and one dialog. They are independent: opening a
// panel leaves the dialog alone and vice versa.
type Windows struct {
	Panel  Panel
	Dialog Dialog
}

// OpenPanel replaces whatever panel is open.
func (w *Windows) OpenPanel(p Panel) {
	w.Panel = p
}

func (w *Windows) ClosePanel() {
	w.Panel = PanelNone
}

// RequestReinstallConfirmation opens the reinstall confirmation dialog.
func (w *Windows) RequestReinstallConfirmation() {
	w.Dialog = DialogConfirmReinstall
}

// DismissDialog closes a cancelable dialog. The crash notice cannot be
// dismissed; it is replaced by the fatal screen or cleared by reinstall.
func (w *Windows) DismissDialog() {
	if w.Dialog == DialogCrashNotice {
		return
	}
	w.Dialog = DialogNone
}

func (w *Windows) showCrashNotice() {
	w.Dialog = DialogCrashNotice
}

func (w *Windows) closeCrashNotice() {
	if w.Dialog == DialogCrashNotice {
		w.Dialog = DialogNone
	}
}

func (w *Windows) closeAll() {
	w.Panel = PanelNone
	w.Dialog = DialogNone
}
