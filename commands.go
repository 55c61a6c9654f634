// Bubbletea commands: the crash timer and toast expiry.
package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types

// crashDueMsg is delivered when a crash timer scheduled by DeleteSystemFile runs out.
type crashDueMsg struct {
	generation uint64
}

type toastExpiredMsg struct {
	id string
}

// Commands

// crashAfterCmd delivers the crash for timer once its delay has passed.
func crashAfterCmd(timer CrashTimer) tea.Cmd {
	return tea.Tick(timer.Delay, func(time.Time) tea.Msg {
		return crashDueMsg{generation: timer.Generation}
	})
}

// expireToastsCmd removes each notice after d.
func expireToastsCmd(notices []Notice, d time.Duration) tea.Cmd {
	if len(notices) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(notices))
	for _, n := range notices {
		id := n.ID
		cmds = append(cmds, tea.Tick(d, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}
