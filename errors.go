// Errors returned by desktop intents and catalog loading.
package main

// simError is a failed intent: op names the intent, msg what went wrong.
type simError struct {
	op  string
	msg string
}

func (e *simError) Error() string {
	return e.op + ": " + e.msg
}

var (
	errPasswordFormat    = &simError{op: "login", msg: "password must be 4 digits"}
	errDesktopLocked     = &simError{op: "desktop", msg: "not available on this screen"}
	errSystemFileMissing = &simError{op: "delete", msg: SystemFileName + " is already deleted"}
	errNoConfirmation    = &simError{op: "reinstall", msg: "confirmation dialog is not open"}
	errUnknownWallpaper  = &simError{op: "wallpaper", msg: "unknown wallpaper"}
	errUnknownSetting    = &simError{op: "settings", msg: "unknown setting"}
	errDisplayNameEmpty  = &simError{op: "settings", msg: "display name required"}
	errDisplayNameLong   = &simError{op: "settings", msg: "display name too long"}
)

// catalogError reports an invalid catalog file.
type catalogError struct {
	field string
	err   error
}

func (e *catalogError) Error() string {
	return "catalog: " + e.field + ": " + e.err.Error()
}

func (e *catalogError) Unwrap() error {
	return e.err
}
