// SPDX-License-Identifier: MIT

package jvlink

// Vendor return codes shared by both service flavors. Negative codes
// outside the recoverable sets below are fatal for the session.
const (
	// Open: session opened, all data local.
	CodeOK = 0
	// Open: local data incomplete but the session is usable.
	CodeIncomplete = -1
	// Open: additional downloads were scheduled server-side.
	CodeDownloadsScheduled = -301
	// Open/Read: server-side transient; ladder retries on the same
	// session after a long hold.
	CodeServerBusy = -421
	// Read: transfer error; ladder retries on the same session.
	CodeTransfer = -502
	// Read: data still downloading, retry shortly (Central).
	CodeReadPending = -1
	// Read: data still downloading, retry shortly (Regional).
	CodeReadPendingRegional = -3
)

// OpenUsable reports whether an Open code lets the cycle proceed.
// -1 and -301 leave the session usable while downloads continue.
func OpenUsable(code int) bool {
	return code == CodeOK || code == CodeIncomplete || code == CodeDownloadsScheduled
}

// OpenPending reports whether an Open code indicates server-side
// downloads that the wait loop should poll for.
func OpenPending(code int) bool {
	return code == CodeIncomplete || code == CodeDownloadsScheduled
}

// ReadPending reports whether a Read code means "still downloading,
// retry shortly". The Regional service signals this as -3.
func ReadPending(code int, flavor Flavor) bool {
	if code == CodeReadPending {
		return true
	}
	return flavor == Regional && code == CodeReadPendingRegional
}
