// SPDX-License-Identifier: MIT

package jvlink

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCodeClassification(t *testing.T) {
	assert.True(t, OpenUsable(CodeOK))
	assert.True(t, OpenUsable(CodeIncomplete))
	assert.True(t, OpenUsable(CodeDownloadsScheduled))
	assert.False(t, OpenUsable(CodeServerBusy))
	assert.False(t, OpenUsable(-111))

	assert.False(t, OpenPending(CodeOK))
	assert.True(t, OpenPending(CodeIncomplete))
	assert.True(t, OpenPending(CodeDownloadsScheduled))
}

func TestReadPendingByFlavor(t *testing.T) {
	assert.True(t, ReadPending(-1, Central))
	assert.True(t, ReadPending(-1, Regional))
	assert.False(t, ReadPending(-3, Central))
	assert.True(t, ReadPending(-3, Regional))
	assert.False(t, ReadPending(-502, Regional))
}

func TestFatalMapsLadderSentinels(t *testing.T) {
	err := Fatal("open", CodeServerBusy)
	require.ErrorIs(t, err, ErrServerBusy)
	assert.Contains(t, err.Error(), "code -421")

	err = Fatal("read", CodeTransfer)
	require.ErrorIs(t, err, ErrTransfer)

	err = Fatal("read", -999)
	require.ErrorIs(t, err, ErrSessionFailed)
	assert.False(t, errors.Is(err, ErrServerBusy))
}

func TestParseFlavor(t *testing.T) {
	f, err := ParseFlavor("regional")
	require.NoError(t, err)
	assert.Equal(t, Regional, f)

	f, err = ParseFlavor("")
	require.NoError(t, err)
	assert.Equal(t, Central, f)

	_, err = ParseFlavor("galactic")
	require.Error(t, err)
}

func TestStubSessionScripts(t *testing.T) {
	stub := &StubSession{
		OpenSteps: []OpenStep{{Result: OpenResult{Code: -1, DownloadCount: 3}}},
		ReadSteps: Records([]byte("RAxxx"), []byte("SEyyy")),
		Statuses:  []int{50, 0},
	}

	res, err := stub.Open(t.Context(), "RACE", "20240601000000", 1)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Code)
	assert.Equal(t, 3, res.DownloadCount)

	// Exhausted scripts return terminal values.
	r1, _ := stub.Read(t.Context(), 110000)
	r2, _ := stub.Read(t.Context(), 110000)
	r3, _ := stub.Read(t.Context(), 110000)
	r4, _ := stub.Read(t.Context(), 110000)
	assert.Equal(t, []byte("RAxxx"), r1.Payload)
	assert.Equal(t, []byte("SEyyy"), r2.Payload)
	assert.Zero(t, r3.Code)
	assert.Zero(t, r4.Code)

	s1, _ := stub.Status(t.Context())
	s2, _ := stub.Status(t.Context())
	s3, _ := stub.Status(t.Context())
	assert.Equal(t, []int{50, 0, 0}, []int{s1, s2, s3})

	require.NoError(t, stub.Close())
	assert.Equal(t, 1, stub.OpenCalls)
	assert.Equal(t, 4, stub.ReadCalls)
	assert.Equal(t, 1, stub.CloseCalls)
}
