// Form definitions using the huh library for the settings panel.
package main

import (
	"github.com/charmbracelet/huh"
)

// displayNameForm creates a huh form for changing the display name
func displayNameForm(current string) *huh.Form {
	name := current
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Display Name").
				Placeholder("Guest").
				CharLimit(MaxDisplayNameLength).
				Value(&name).
				Validate(validateDisplayName),
		),
	).WithShowHelp(true).WithShowErrors(true)
}
