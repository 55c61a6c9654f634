// Session gate: PIN entry and authentication state.
package main

import (
	"log"
	"regexp"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// Session is the login gate. Any well-formed PIN authenticates: there is no
// credential store behind it.
type Session struct {
	Authenticated     bool
	PendingPassword   string
	LastAttemptFailed bool
}

// SubmitDigit appends d to the pending password while fewer than
// PasswordLength digits have been typed. It reports whether d was appended.
func (s *Session) SubmitDigit(d rune) bool {
	s.LastAttemptFailed = false
	if d < '0' || d > '9' || len(s.PendingPassword) >= PasswordLength {
		return false
	}
	s.PendingPassword += string(d)
	return true
}

// DeleteDigit removes the last pending digit.
func (s *Session) DeleteDigit() {
	s.LastAttemptFailed = false
	if n := len(s.PendingPassword); n > 0 {
		s.PendingPassword = s.PendingPassword[:n-1]
	}
}

// AttemptLogin authenticates iff the pending password is exactly four digits.
// On failure the pending password is kept so the user can correct it.
func (s *Session) AttemptLogin() error {
	if !pinPattern.MatchString(s.PendingPassword) {
		s.LastAttemptFailed = true
		log.Printf("session: login rejected (%d digits)", len(s.PendingPassword))
		return errPasswordFormat
	}
	s.Authenticated = true
	s.PendingPassword = ""
	s.LastAttemptFailed = false
	log.Printf("session: logged in")
	return nil
}

// Logout drops authentication and any partially typed password.
func (s *Session) Logout() {
	s.Authenticated = false
	s.PendingPassword = ""
	log.Printf("session: logged out")
}
