// SPDX-License-Identifier: MIT

package jvlink

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrSessionFailed     = errors.New("jvlink: session failed")
	ErrServerBusy        = errors.New("jvlink: server-side transient")
	ErrTransfer          = errors.New("jvlink: transfer error")
	ErrConnectionDropped = errors.New("jvlink: connection dropped")
	ErrUnavailable       = errors.New("jvlink: vendor binding unavailable")
)

// SessionError wraps a sentinel with the failing operation and the raw
// vendor code.
type SessionError struct {
	Sentinel error
	Op       string
	Code     int
	Err      error // nested lower-level error
}

func (e *SessionError) Error() string {
	msg := fmt.Sprintf("jvlink: %s: %v", e.Op, e.Sentinel)
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code %d)", msg, e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *SessionError) Unwrap() error {
	return e.Sentinel
}

// Fatal builds the SessionError for a fatal vendor code, mapping the
// ladder codes to their dedicated sentinels.
func Fatal(op string, code int) *SessionError {
	sentinel := ErrSessionFailed
	switch code {
	case CodeServerBusy:
		sentinel = ErrServerBusy
	case CodeTransfer:
		sentinel = ErrTransfer
	}
	return &SessionError{Sentinel: sentinel, Op: op, Code: code}
}
