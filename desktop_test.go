package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordedNotice struct {
	message string
	kind    NoticeKind
}

type recordingNotifier struct {
	notices []recordedNotice
}

func (r *recordingNotifier) Notify(message string, kind NoticeKind) {
	r.notices = append(r.notices, recordedNotice{message: message, kind: kind})
}

func (r *recordingNotifier) last() recordedNotice {
	if len(r.notices) == 0 {
		return recordedNotice{}
	}
	return r.notices[len(r.notices)-1]
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestDesktop(t *testing.T) (*Desktop, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	d := NewDesktop(DesktopOptions{
		Catalog:    defaultCatalog(),
		Settings:   defaultSettings(),
		Notifier:   n,
		CrashDelay: 2 * time.Second,
		Clock:      func() time.Time { return testNow },
	})
	return d, n
}

func login(t *testing.T, d *Desktop) {
	t.Helper()
	for _, r := range "1234" {
		d.SubmitDigit(r)
	}
	require.NoError(t, d.AttemptLogin())
	require.Equal(t, ScreenDesktop, d.Screen())
}

func TestSelectScreen(t *testing.T) {
	tests := []struct {
		name    string
		authed  bool
		crashed bool
		want    Screen
	}{
		{name: "logged out", authed: false, crashed: false, want: ScreenLogin},
		{name: "logged in", authed: true, crashed: false, want: ScreenDesktop},
		{name: "crashed while logged in", authed: true, crashed: true, want: ScreenFatalError},
		{name: "crashed while logged out", authed: false, crashed: true, want: ScreenFatalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Authenticated: tt.authed}
			i := Integrity{Crashed: tt.crashed, SystemFileExists: !tt.crashed}
			require.Equal(t, tt.want, SelectScreen(s, i))
		})
	}
}

func TestDesktopLoginRejectsShortPin(t *testing.T) {
	d, n := newTestDesktop(t)
	for _, r := range "12" {
		d.SubmitDigit(r)
	}

	require.ErrorIs(t, d.AttemptLogin(), errPasswordFormat)
	require.Equal(t, ScreenLogin, d.Screen())
	require.True(t, d.Snapshot().Session.LastAttemptFailed)
	require.Equal(t, recordedNotice{"Password must be 4 digits", NoticeError}, n.last())
}

func TestDesktopLoginWelcomes(t *testing.T) {
	d, n := newTestDesktop(t)
	login(t, d)
	require.Equal(t, recordedNotice{"Welcome, Guest", NoticeSuccess}, n.last())
}

func TestDesktopCrashAfterDelay(t *testing.T) {
	d, _ := newTestDesktop(t)
	login(t, d)
	require.NoError(t, d.OpenPanel(PanelDeviceInfo))

	timer, err := d.DeleteSystemFile()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, timer.Delay)

	snap := d.Snapshot()
	require.Equal(t, PhaseDegradedPending, snap.Phase)
	require.Equal(t, DialogCrashNotice, snap.Windows.Dialog)
	require.Equal(t, testNow.Add(2*time.Second), snap.CrashDeadline)

	require.True(t, d.CrashTimerElapsed(timer.Generation))
	snap = d.Snapshot()
	require.Equal(t, ScreenFatalError, snap.Screen)
	require.Equal(t, DialogNone, snap.Windows.Dialog)
	require.True(t, snap.Crashed)
	require.False(t, snap.SystemFileExists)
	require.True(t, snap.CrashDeadline.IsZero())
}

func TestDesktopReinstallBeforeCrash(t *testing.T) {
	d, n := newTestDesktop(t)
	login(t, d)
	require.NoError(t, d.OpenPanel(PanelDeviceInfo))
	timer, err := d.DeleteSystemFile()
	require.NoError(t, err)

	d.Reinstall()
	require.Equal(t, ScreenLogin, d.Screen())
	require.Equal(t, recordedNotice{"macOS Ventura reinstalled - the system was restored", NoticeSuccess}, n.last())

	require.False(t, d.CrashTimerElapsed(timer.Generation))
	snap := d.Snapshot()
	require.Equal(t, ScreenLogin, snap.Screen)
	require.Equal(t, PhaseHealthy, snap.Phase)
	require.Equal(t, Windows{}, snap.Windows)
}

func TestDesktopReinstallFromFatalScreen(t *testing.T) {
	d, _ := newTestDesktop(t)
	login(t, d)
	timer, err := d.DeleteSystemFile()
	require.NoError(t, err)
	d.CrashTimerElapsed(timer.Generation)
	require.Equal(t, ScreenFatalError, d.Screen())

	d.Reinstall()
	snap := d.Snapshot()
	require.Equal(t, ScreenLogin, snap.Screen)
	require.True(t, snap.SystemFileExists)
	require.False(t, snap.Session.Authenticated)
}

func TestDesktopConfirmReinstall(t *testing.T) {
	d, _ := newTestDesktop(t)
	login(t, d)

	require.ErrorIs(t, d.ConfirmReinstall(), errNoConfirmation)

	require.NoError(t, d.OpenPanel(PanelDeviceInfo))
	require.NoError(t, d.RequestReinstallConfirmation())
	d.DismissDialog()
	require.Equal(t, ScreenDesktop, d.Screen())

	require.NoError(t, d.RequestReinstallConfirmation())
	require.NoError(t, d.ConfirmReinstall())
	require.Equal(t, ScreenLogin, d.Screen())
	require.Equal(t, Windows{}, d.Snapshot().Windows)
}

func TestDesktopIntentsRequireLogin(t *testing.T) {
	d, _ := newTestDesktop(t)

	require.ErrorIs(t, d.OpenPanel(PanelShop), errDesktopLocked)
	require.ErrorIs(t, d.RequestReinstallConfirmation(), errDesktopLocked)
	_, err := d.DeleteSystemFile()
	require.ErrorIs(t, err, errDesktopLocked)
	require.ErrorIs(t, d.SelectWallpaper(2), errDesktopLocked)
	require.ErrorIs(t, d.Install(defaultCatalog().Shop[0]), errDesktopLocked)
	require.Equal(t, PanelNone, d.Snapshot().Windows.Panel)
}

func TestDesktopCrashedImpliesFileMissing(t *testing.T) {
	d, _ := newTestDesktop(t)
	check := func(s Snapshot) {
		if s.Crashed {
			require.False(t, s.SystemFileExists)
		}
		if s.Windows.Dialog == DialogCrashNotice {
			require.False(t, s.Crashed)
			require.True(t, s.CrashPending)
		}
	}
	unsubscribe := d.Subscribe(check)
	defer unsubscribe()

	login(t, d)
	require.NoError(t, d.OpenPanel(PanelDeviceInfo))
	timer, err := d.DeleteSystemFile()
	require.NoError(t, err)
	d.CrashTimerElapsed(timer.Generation)
	d.Reinstall()
}

func TestDesktopSubscribe(t *testing.T) {
	d, _ := newTestDesktop(t)
	var screens []Screen
	unsubscribe := d.Subscribe(func(s Snapshot) { screens = append(screens, s.Screen) })

	login(t, d)
	require.NotEmpty(t, screens)
	require.Equal(t, ScreenDesktop, screens[len(screens)-1])

	unsubscribe()
	n := len(screens)
	d.Reinstall()
	require.Len(t, screens, n)
}

func TestDesktopSettings(t *testing.T) {
	d, n := newTestDesktop(t)
	login(t, d)

	require.NoError(t, d.SelectWallpaper(3))
	require.Equal(t, "Forest", d.Snapshot().Wallpaper.Name)
	require.Equal(t, recordedNotice{`Wallpaper "Forest" applied`, NoticeSuccess}, n.last())
	require.ErrorIs(t, d.SelectWallpaper(99), errUnknownWallpaper)

	require.NoError(t, d.SetBrightness(140))
	require.Equal(t, 100, d.Settings().Brightness)
	require.NoError(t, d.SetVolume(-5))
	require.Equal(t, 0, d.Settings().Volume)

	require.NoError(t, d.ToggleSetting(2))
	require.True(t, d.Settings().DarkMode)
	require.Equal(t, recordedNotice{"Dark mode turned on", NoticeInfo}, n.last())
	require.ErrorIs(t, d.ToggleSetting(7), errUnknownSetting)

	require.NoError(t, d.SetDisplayName("  Ada  "))
	require.Equal(t, "Ada", d.Settings().DisplayName)
	require.ErrorIs(t, d.SetDisplayName("   "), errDisplayNameEmpty)
}

func TestDesktopSettingsSurviveReinstall(t *testing.T) {
	d, _ := newTestDesktop(t)
	login(t, d)
	require.NoError(t, d.SetDisplayName("Ada"))
	require.NoError(t, d.ToggleSetting(0))

	d.Reinstall()
	require.Equal(t, "Ada", d.Settings().DisplayName)
	require.False(t, d.Settings().WiFi)
}

func TestDesktopInstall(t *testing.T) {
	d, n := newTestDesktop(t)
	login(t, d)
	require.NoError(t, d.Install(defaultCatalog().Steam[3]))
	require.Equal(t, recordedNotice{"Rust is starting to download...", NoticeSuccess}, n.last())
}

func TestNewDesktopFixesUnknownWallpaper(t *testing.T) {
	s := defaultSettings()
	s.WallpaperID = 42
	d := NewDesktop(DesktopOptions{Catalog: defaultCatalog(), Settings: s})
	require.Equal(t, 1, d.Settings().WallpaperID)
	require.Equal(t, DefaultCrashDelay, d.CrashDelay())
}

func TestDesktopUnsubscribeDuringDelivery(t *testing.T) {
	d, _ := newTestDesktop(t)
	calls := map[string]int{}

	var unsubscribeA func()
	unsubscribeA = d.Subscribe(func(Snapshot) {
		calls["a"]++
		unsubscribeA()
	})
	d.Subscribe(func(Snapshot) { calls["b"]++ })
	d.Subscribe(func(Snapshot) { calls["c"]++ })

	d.SubmitDigit('1')
	require.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, calls)

	d.SubmitDigit('2')
	require.Equal(t, map[string]int{"a": 1, "b": 2, "c": 2}, calls)
}

func TestDesktopClosePanelIdempotent(t *testing.T) {
	d, _ := newTestDesktop(t)
	login(t, d)

	before := d.Snapshot()
	d.ClosePanel()
	require.Equal(t, before, d.Snapshot())
}

func TestDesktopOpenPanelReplaces(t *testing.T) {
	d, _ := newTestDesktop(t)
	login(t, d)

	require.NoError(t, d.OpenPanel(PanelShop))
	require.NoError(t, d.OpenPanel(PanelSteam))
	snap := d.Snapshot()
	require.Equal(t, PanelSteam, snap.Windows.Panel)
	require.Equal(t, DialogNone, snap.Windows.Dialog)
}

func TestDesktopCrashRemaining(t *testing.T) {
	now := testNow
	d := NewDesktop(DesktopOptions{
		Catalog:    defaultCatalog(),
		Settings:   defaultSettings(),
		CrashDelay: 2 * time.Second,
		Clock:      func() time.Time { return now },
	})
	login(t, d)
	require.Zero(t, d.CrashRemaining())

	timer, err := d.DeleteSystemFile()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, d.CrashRemaining())

	now = now.Add(1500 * time.Millisecond)
	require.Equal(t, 500*time.Millisecond, d.CrashRemaining())

	now = now.Add(time.Second)
	require.Zero(t, d.CrashRemaining(), "overdue crash never goes negative")

	d.CrashTimerElapsed(timer.Generation)
	require.Zero(t, d.CrashRemaining())
}
