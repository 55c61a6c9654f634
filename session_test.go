package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionSubmitDigit(t *testing.T) {
	var s Session

	require.True(t, s.SubmitDigit('1'))
	require.False(t, s.SubmitDigit('a'), "non-digit must be ignored")
	require.True(t, s.SubmitDigit('2'))
	require.True(t, s.SubmitDigit('3'))
	require.True(t, s.SubmitDigit('4'))
	require.False(t, s.SubmitDigit('5'), "fifth digit must be ignored")
	require.Equal(t, "1234", s.PendingPassword)
}

func TestSessionDeleteDigit(t *testing.T) {
	s := Session{PendingPassword: "12", LastAttemptFailed: true}

	s.DeleteDigit()
	require.Equal(t, "1", s.PendingPassword)
	require.False(t, s.LastAttemptFailed)

	s.DeleteDigit()
	s.DeleteDigit()
	require.Empty(t, s.PendingPassword)
}

func TestSessionAttemptLogin(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr bool
	}{
		{name: "four digits", pin: "0000", wantErr: false},
		{name: "empty", pin: "", wantErr: true},
		{name: "three digits", pin: "123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{PendingPassword: tt.pin}
			err := s.AttemptLogin()
			if tt.wantErr {
				require.ErrorIs(t, err, errPasswordFormat)
				require.False(t, s.Authenticated)
				require.True(t, s.LastAttemptFailed)
				require.Equal(t, tt.pin, s.PendingPassword, "failed attempt keeps the typed digits")
				return
			}
			require.NoError(t, err)
			require.True(t, s.Authenticated)
			require.False(t, s.LastAttemptFailed)
			require.Empty(t, s.PendingPassword)
		})
	}
}

func TestSessionTypingClearsFailure(t *testing.T) {
	s := Session{PendingPassword: "12"}
	require.Error(t, s.AttemptLogin())

	s.SubmitDigit('3')
	require.False(t, s.LastAttemptFailed)
}

func TestSessionLogout(t *testing.T) {
	s := Session{Authenticated: true, PendingPassword: "9"}
	s.Logout()
	require.False(t, s.Authenticated)
	require.Empty(t, s.PendingPassword)
}
