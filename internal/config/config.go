// SPDX-License-Identifier: MIT

// Package config resolves runtime settings from JVSYNC_* environment
// variables. Configuration errors are surfaced immediately and never
// retried.
package config

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalid = errors.New("invalid configuration")

// Settings holds every tunable the pipeline reads at startup.
type Settings struct {
	// ServiceKey authenticates against the vendor service at Init time.
	ServiceKey string
	// Flavor selects the Central (JRA) or Regional (NAR) service variant.
	Flavor string
	// StoreDriver is "sqlite" or "postgres".
	StoreDriver string
	// StoreDSN is the database/sql data source name for the chosen driver.
	StoreDSN string
	// PollInterval is the Status poll cadence inside the download wait loop.
	PollInterval time.Duration
	// CycleTimeout bounds one open/wait/read/close cycle.
	CycleTimeout time.Duration
	// ChildTimeout bounds one per-day child process in the fetch harness.
	ChildTimeout time.Duration
	// Parallelism bounds concurrent harness children; 1 means sequential.
	Parallelism int
	// LogLevel is passed to the logger ("debug", "info", ...).
	LogLevel string
}

// FromEnv builds Settings from the environment, applying defaults.
func FromEnv() Settings {
	return Settings{
		ServiceKey:   ParseString("JVSYNC_SERVICE_KEY", ""),
		Flavor:       ParseString("JVSYNC_FLAVOR", "central"),
		StoreDriver:  ParseString("JVSYNC_DB_DRIVER", "sqlite"),
		StoreDSN:     ParseString("JVSYNC_DB_DSN", "jvsync.db"),
		PollInterval: ParseDuration("JVSYNC_POLL_INTERVAL", 300*time.Millisecond),
		CycleTimeout: ParseDuration("JVSYNC_CYCLE_TIMEOUT", 120*time.Second),
		ChildTimeout: ParseDuration("JVSYNC_CHILD_TIMEOUT", 1800*time.Second),
		Parallelism:  ParseInt("JVSYNC_PARALLELISM", 1),
		LogLevel:     ParseString("JVSYNC_LOG_LEVEL", ""),
	}
}

// Validate rejects settings the pipeline cannot run with.
func (s Settings) Validate() error {
	switch s.Flavor {
	case "central", "regional":
	default:
		return fmt.Errorf("%w: flavor %q (want central or regional)", ErrInvalid, s.Flavor)
	}
	switch s.StoreDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: db driver %q (want sqlite or postgres)", ErrInvalid, s.StoreDriver)
	}
	if s.StoreDSN == "" {
		return fmt.Errorf("%w: empty db dsn", ErrInvalid)
	}
	if s.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval %s", ErrInvalid, s.PollInterval)
	}
	if s.CycleTimeout <= 0 {
		return fmt.Errorf("%w: cycle timeout %s", ErrInvalid, s.CycleTimeout)
	}
	if s.ChildTimeout <= 0 {
		return fmt.Errorf("%w: child timeout %s", ErrInvalid, s.ChildTimeout)
	}
	if s.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism %d", ErrInvalid, s.Parallelism)
	}
	return nil
}
