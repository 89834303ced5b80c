// SPDX-License-Identifier: MIT

// Package jvlink defines the boundary to the vendor data services. The
// Central (JRA) and Regional (NAR) services expose the same session state
// machine: Init once, then Open/Read/Status/Close per download cycle.
// Implementations normalize the vendor's mixed tuple and scalar return
// shapes into OpenResult and ReadResult.
package jvlink

import (
	"context"
	"fmt"
)

// Flavor selects the vendor service variant. The two variants differ in
// their recoverable code sets; see codes.go.
type Flavor int

const (
	Central Flavor = iota
	Regional
)

func (f Flavor) String() string {
	switch f {
	case Central:
		return "central"
	case Regional:
		return "regional"
	default:
		return fmt.Sprintf("flavor(%d)", int(f))
	}
}

// ParseFlavor maps a config string to a Flavor.
func ParseFlavor(s string) (Flavor, error) {
	switch s {
	case "central", "":
		return Central, nil
	case "regional":
		return Regional, nil
	default:
		return Central, fmt.Errorf("unknown service flavor %q", s)
	}
}

// OpenResult carries the normalized outcome of an Open call.
type OpenResult struct {
	Code          int
	ReadCount     int
	DownloadCount int
	LastTimestamp string
}

// ReadResult carries the normalized outcome of a Read call. Filename
// changes mark file boundaries inside one session.
type ReadResult struct {
	Code     int
	Payload  []byte
	Size     int
	Filename string
}

// Session is one logical connection to a vendor service. It is not safe
// for concurrent use: the vendor component requires affinity to a single
// caller, so every method of one Session must be invoked from the same
// goroutine.
type Session interface {
	// Init authenticates with the configured service key. Non-nil error
	// means the session is unusable.
	Init(ctx context.Context, serviceKey string) error

	// Open starts a download cycle for dataspec starting at fromTime
	// (YYYYMMDDhhmmss). Option 1 is a normal fetch, 2 is setup/bulk.
	// Recoverable negative codes are returned verbatim in OpenResult.Code;
	// fatal negatives produce a *SessionError.
	Open(ctx context.Context, dataspec, fromTime string, option int) (OpenResult, error)

	// Read delivers the next record. Code > 0 means Payload holds Size
	// bytes; 0 means the session is drained; pending codes (see
	// ReadPending) mean the caller should wait and retry.
	Read(ctx context.Context, maxSize int) (ReadResult, error)

	// Status reports download progress: 0 done, 1..100 percent.
	Status(ctx context.Context) (int, error)

	// Close ends the current cycle. Always safe to call.
	Close() error
}

// Connect returns a Session bound to the real vendor component. The
// component-object binding is hosted out of process and registered per
// machine; on hosts without it Connect fails with ErrUnavailable.
func Connect(flavor Flavor) (Session, error) {
	return nil, &SessionError{Sentinel: ErrUnavailable, Op: "connect",
		Err: fmt.Errorf("no %s vendor binding on this host", flavor)}
}
