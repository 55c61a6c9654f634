// Desktop controller: owns all simulation state and selects the top-level screen.
package main

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"time"
)

// Screen is the top-level view.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDesktop
	ScreenFatalError
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenDesktop:
		return "desktop"
	case ScreenFatalError:
		return "fatal-error"
	default:
		return "unknown"
	}
}

// SelectScreen picks the top-level view. A crash wins over everything,
// including an unauthenticated session.
func SelectScreen(s Session, i Integrity) Screen {
	switch {
	case i.Crashed:
		return ScreenFatalError
	case !s.Authenticated:
		return ScreenLogin
	default:
		return ScreenDesktop
	}
}

// Snapshot is a copy of the whole state, taken after a mutation.
type Snapshot struct {
	Screen           Screen
	Session          Session
	Phase            IntegrityPhase
	SystemFileExists bool
	Crashed          bool
	CrashPending     bool
	CrashDeadline    time.Time
	Windows          Windows
	Settings         Settings
	Wallpaper        Wallpaper
}

// DesktopOptions wires the collaborators of a Desktop.
type DesktopOptions struct {
	Catalog    Catalog
	Settings   Settings
	Notifier   Notifier
	CrashDelay time.Duration
	Clock      func() time.Time
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Desktop is the single owner of session, integrity, window and settings
// state. It is not safe for concurrent use; all intents come from one loop.
type Desktop struct {
	session   Session
	integrity Integrity
	windows   Windows
	settings  Settings
	catalog   Catalog

	notifier      Notifier
	crashDelay    time.Duration
	crashDeadline time.Time
	clock         func() time.Time

	subscribers []subscriber
	nextSubID   int
}

type discardNotifier struct{}

func (discardNotifier) Notify(string, NoticeKind) {}

// NewDesktop returns a desktop at the login screen with a healthy system.
func NewDesktop(opts DesktopOptions) *Desktop {
	d := &Desktop{
		integrity:  newIntegrity(),
		settings:   opts.Settings,
		catalog:    opts.Catalog,
		notifier:   opts.Notifier,
		crashDelay: opts.CrashDelay,
		clock:      opts.Clock,
	}
	if d.notifier == nil {
		d.notifier = discardNotifier{}
	}
	if d.crashDelay <= 0 {
		d.crashDelay = DefaultCrashDelay
	}
	if d.clock == nil {
		d.clock = time.Now
	}
	if _, ok := d.catalog.Wallpaper(d.settings.WallpaperID); !ok && len(d.catalog.Wallpapers) > 0 {
		d.settings.WallpaperID = d.catalog.Wallpapers[0].ID
	}
	return d
}

func (d *Desktop) Screen() Screen {
	return SelectScreen(d.session, d.integrity)
}

func (d *Desktop) Catalog() Catalog {
	return d.catalog
}

func (d *Desktop) CrashDelay() time.Duration {
	return d.crashDelay
}

// Snapshot returns a copy of the current state.
func (d *Desktop) Snapshot() Snapshot {
	wp, _ := d.catalog.Wallpaper(d.settings.WallpaperID)
	snap := Snapshot{
		Screen:           d.Screen(),
		Session:          d.session,
		Phase:            d.integrity.Phase(),
		SystemFileExists: d.integrity.SystemFileExists,
		Crashed:          d.integrity.Crashed,
		CrashPending:     d.integrity.CrashPending(),
		Windows:          d.windows,
		Settings:         d.settings,
		Wallpaper:        wp,
	}
	if snap.CrashPending {
		snap.CrashDeadline = d.crashDeadline
	}
	return snap
}

// Subscribe registers fn to receive a snapshot after every mutation.
// The returned func removes the subscription.
func (d *Desktop) Subscribe(fn func(Snapshot)) func() {
	d.nextSubID++
	id := d.nextSubID
	d.subscribers = append(d.subscribers, subscriber{id: id, fn: fn})
	return func() {
		kept := make([]subscriber, 0, len(d.subscribers))
		for _, s := range d.subscribers {
			if s.id != id {
				kept = append(kept, s)
			}
		}
		d.subscribers = kept
	}
}

// publish delivers to the subscribers registered when it starts. A
// subscriber may unsubscribe itself or others from inside its callback.
func (d *Desktop) publish() {
	if len(d.subscribers) == 0 {
		return
	}
	snap := d.Snapshot()
	for _, s := range slices.Clone(d.subscribers) {
		s.fn(snap)
	}
}

// CrashRemaining is the time left before a pending crash, measured on the
// desktop clock. It is zero when no crash is pending.
func (d *Desktop) CrashRemaining() time.Duration {
	if !d.integrity.CrashPending() {
		return 0
	}
	return max(d.crashDeadline.Sub(d.clock()), 0)
}

func (d *Desktop) requireDesktop() error {
	if d.Screen() != ScreenDesktop {
		return errDesktopLocked
	}
	return nil
}

// Session gate

func (d *Desktop) SubmitDigit(r rune) {
	d.session.SubmitDigit(r)
	d.publish()
}

func (d *Desktop) DeleteDigit() {
	d.session.DeleteDigit()
	d.publish()
}

// AttemptLogin runs the PIN format check and notifies the outcome.
func (d *Desktop) AttemptLogin() error {
	defer d.publish()
	if err := d.session.AttemptLogin(); err != nil {
		d.notifier.Notify("Password must be 4 digits", NoticeError)
		return err
	}
	d.notifier.Notify("Welcome, "+d.settings.DisplayName, NoticeSuccess)
	return nil
}

// Window manager

func (d *Desktop) OpenPanel(p Panel) error {
	if err := d.requireDesktop(); err != nil {
		return err
	}
	d.windows.OpenPanel(p)
	d.publish()
	return nil
}

func (d *Desktop) ClosePanel() {
	d.windows.ClosePanel()
	d.publish()
}

func (d *Desktop) RequestReinstallConfirmation() error {
	if err := d.requireDesktop(); err != nil {
		return err
	}
	d.windows.RequestReinstallConfirmation()
	d.publish()
	return nil
}

func (d *Desktop) DismissDialog() {
	d.windows.DismissDialog()
	d.publish()
}

// ConfirmReinstall accepts the reinstall confirmation dialog.
func (d *Desktop) ConfirmReinstall() error {
	if d.windows.Dialog != DialogConfirmReinstall {
		return errNoConfirmation
	}
	d.Reinstall()
	return nil
}

// System integrity

// DeleteSystemFile deletes the system file and shows the crash notice. The
// caller must deliver CrashTimerElapsed(timer.Generation) after timer.Delay.
func (d *Desktop) DeleteSystemFile() (CrashTimer, error) {
	if err := d.requireDesktop(); err != nil {
		return CrashTimer{}, err
	}
	timer, err := d.integrity.DeleteSystemFile(d.crashDelay)
	if err != nil {
		return CrashTimer{}, err
	}
	d.crashDeadline = d.clock().Add(timer.Delay)
	d.windows.showCrashNotice()
	d.publish()
	return timer, nil
}

// CrashTimerElapsed applies a due crash. Timers from before a reinstall are
// ignored. It reports whether the system crashed.
func (d *Desktop) CrashTimerElapsed(generation uint64) bool {
	if !d.integrity.CrashTimerElapsed(generation) {
		return false
	}
	d.windows.closeCrashNotice()
	d.publish()
	return true
}

// Reinstall restores a healthy system, closes every window and logs out.
// It is reachable from the confirmation dialog and from the fatal screen.
func (d *Desktop) Reinstall() {
	d.integrity.Reinstall()
	d.crashDeadline = time.Time{}
	d.windows.closeAll()
	d.session.Logout()
	d.notifier.Notify(OSName+" reinstalled - the system was restored", NoticeSuccess)
	d.publish()
}

// Settings

func (d *Desktop) Settings() Settings {
	return d.settings
}

func (d *Desktop) SelectWallpaper(id int) error {
	if err := d.requireDesktop(); err != nil {
		return err
	}
	wp, ok := d.catalog.Wallpaper(id)
	if !ok {
		return errUnknownWallpaper
	}
	d.settings.WallpaperID = wp.ID
	d.notifier.Notify(fmt.Sprintf("Wallpaper %q applied", wp.Name), NoticeSuccess)
	d.publish()
	return nil
}

func (d *Desktop) SetBrightness(v int) error {
	if err := d.requireDesktop(); err != nil {
		return err
	}
	d.settings.SetBrightness(v)
	d.publish()
	return nil
}

func (d *Desktop) SetVolume(v int) error {
	if err := d.requireDesktop(); err != nil {
		return err
	}
	d.settings.SetVolume(v)
	d.publish()
	return nil
}

func (d *Desktop) ToggleSetting(index int) error {
	if err := d.requireDesktop(); err != nil {
		return err
	}
	if !d.settings.Toggle(index) {
		return errUnknownSetting
	}
	state := "off"
	if d.settings.IsEnabled(index) {
		state = "on"
	}
	d.notifier.Notify(settingDefs[index].Label+" turned "+state, NoticeInfo)
	d.publish()
	return nil
}

func (d *Desktop) SetDisplayName(name string) error {
	if err := d.requireDesktop(); err != nil {
		return err
	}
	if err := validateDisplayName(name); err != nil {
		return err
	}
	d.settings.DisplayName = strings.TrimSpace(name)
	d.notifier.Notify("Display name changed to "+d.settings.DisplayName, NoticeSuccess)
	d.publish()
	return nil
}

func validateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errDisplayNameEmpty
	}
	if len(name) > MaxDisplayNameLength {
		return errDisplayNameLong
	}
	return nil
}

// Storefronts

// Install starts a simulated download of item.
func (d *Desktop) Install(item StoreItem) error {
	if err := d.requireDesktop(); err != nil {
		return err
	}
	log.Printf("store: install %s (%s)", item.Name, item.Size)
	d.notifier.Notify(item.Name+" is starting to download...", NoticeSuccess)
	return nil
}
