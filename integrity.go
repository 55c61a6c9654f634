// System integrity state machine: system file deletion, delayed crash and reinstall.
package main

import (
	"log"
	"time"
)

// IntegrityPhase is the coarse state of the simulated system.
type IntegrityPhase int

const (
	PhaseHealthy IntegrityPhase = iota
	PhaseDegradedPending
	PhaseCrashed
)

func (p IntegrityPhase) String() string {
	switch p {
	case PhaseHealthy:
		return "healthy"
	case PhaseDegradedPending:
		return "degraded-pending"
	case PhaseCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// CrashTimer is a scheduled crash. The caller arranges for CrashTimerElapsed
// to be called with Generation once Delay has passed.
type CrashTimer struct {
	Generation uint64
	Delay      time.Duration
}

// Integrity tracks the system file and the crash it causes.
//
// Every DeleteSystemFile and Reinstall bumps generation; a timer only fires
// if it still carries the current generation, so a timer scheduled before a
// reinstall can never crash the reinstalled system.
type Integrity struct {
	SystemFileExists bool
	Crashed          bool

	crashPending bool
	generation   uint64
}

func newIntegrity() Integrity {
	return Integrity{SystemFileExists: true}
}

// Phase derives the phase from the flags.
func (i *Integrity) Phase() IntegrityPhase {
	switch {
	case i.Crashed:
		return PhaseCrashed
	case !i.SystemFileExists && i.crashPending:
		return PhaseDegradedPending
	default:
		return PhaseHealthy
	}
}

// CrashPending reports whether a crash timer is armed.
func (i *Integrity) CrashPending() bool {
	return i.crashPending
}

// DeleteSystemFile removes the system file and arms the crash timer.
// Deleting a file that is already gone is rejected, so at most one timer is
// ever pending.
func (i *Integrity) DeleteSystemFile(delay time.Duration) (CrashTimer, error) {
	if !i.SystemFileExists {
		return CrashTimer{}, errSystemFileMissing
	}
	i.SystemFileExists = false
	i.crashPending = true
	i.generation++
	log.Printf("integrity: %s deleted, crash in %s (gen %d)", SystemFileName, delay, i.generation)
	return CrashTimer{Generation: i.generation, Delay: delay}, nil
}

// CrashTimerElapsed applies the crash if the timer for generation is still
// the pending one. It reports whether the system crashed.
func (i *Integrity) CrashTimerElapsed(generation uint64) bool {
	if !i.crashPending || generation != i.generation || i.SystemFileExists {
		log.Printf("integrity: stale crash timer ignored (gen %d, current %d)", generation, i.generation)
		return false
	}
	i.crashPending = false
	i.Crashed = true
	log.Printf("integrity: system crashed (gen %d)", generation)
	return true
}

// Reinstall restores the system file, clears the crash and disarms any timer.
func (i *Integrity) Reinstall() {
	i.SystemFileExists = true
	i.Crashed = false
	i.crashPending = false
	i.generation++
	log.Printf("integrity: reinstalled (gen %d)", i.generation)
}
