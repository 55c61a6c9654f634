// Package main provides ventura-sim, a terminal simulation of a desktop operating
// system: a login gate, a dock of panels, two storefronts and a deletable system file.
package main

import "time"

const (
	// ExitSIGINT is the exit code when terminated by SIGINT (128 + signal number per POSIX).
	ExitSIGINT = 130

	// DefaultCrashDelay is how long the system keeps running after the system file is deleted.
	DefaultCrashDelay = 2 * time.Second

	// DefaultToastDuration is how long a notice stays on screen.
	DefaultToastDuration = 3 * time.Second

	// PasswordLength is the exact number of digits the login gate accepts.
	PasswordLength = 4

	// MaxDisplayNameLength bounds the display name set from the settings panel.
	MaxDisplayNameLength = 32

	// SliderStep is the brightness/volume change per key press.
	SliderStep = 10

	// OSName is shown in headers, dialogs and notices.
	OSName = "macOS Ventura"

	// SystemFileName is the simulated critical file.
	SystemFileName = "SystemMac32"
)
