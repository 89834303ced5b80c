// SPDX-License-Identifier: MIT

package fetch

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keibalab/jvsync/internal/ingest"
	"github.com/keibalab/jvsync/internal/jvlink"
	"github.com/keibalab/jvsync/internal/record"
	"github.com/keibalab/jvsync/internal/schema"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	return nil
}

func newTestFetcher(t *testing.T, sess *jvlink.StubSession) (*Fetcher, *sql.DB, *fakeClock) {
	t.Helper()
	db, d, err := ingest.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, ingest.CreateSchema(t.Context(), db, d, schema.Default(), jvlink.Central))

	clock := &fakeClock{now: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)}
	f := &Fetcher{
		Session:    sess,
		Writer:     ingest.NewWriter(db, d, schema.Default(), jvlink.Central),
		Registry:   record.Default(),
		Clock:      clock,
		ServiceKey: "TESTKEY0",
	}
	return f, db, clock
}

func racePayload(t *testing.T) []byte {
	t.Helper()
	l, ok := record.Default().Lookup("RA", 856)
	require.True(t, ok)
	payload, err := record.EncodeRow(l, map[string]any{
		"RecordSpec": "RA",
		"DataKubun":  "7",
		"Year":       int64(2026),
		"MonthDay":   "0601",
		"JyoCD":      "05",
		"Kaiji":      int64(3),
		"Nichiji":    int64(2),
		"RaceNum":    "11",
		"Hondai":     "テストレース",
	})
	require.NoError(t, err)
	return payload
}

func task() Task {
	return Task{Date: "20260601", Dataspec: "RACE", Family: schema.NL}
}

func TestFetchHappyPath(t *testing.T) {
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{{Result: jvlink.OpenResult{Code: 0, ReadCount: 1}}},
		ReadSteps: jvlink.Records(racePayload(t)),
	}
	f, db, _ := newTestFetcher(t, sess)

	res, err := f.Fetch(t.Context(), task())
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "RA", res.Records[0].Spec)
	assert.Equal(t, 856, res.Records[0].Size)
	assert.Equal(t, 0, res.OpenRC)
	assert.Equal(t, 1, res.ReadCount)
	assert.Empty(t, res.Error)
	assert.Equal(t, 1, sess.CloseCalls, "session closed at cycle end")

	var n int
	require.NoError(t, db.QueryRowContext(t.Context(),
		`SELECT COUNT(*) FROM "NL_RA"`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestStatusPollingStopsAtZero(t *testing.T) {
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{{Result: jvlink.OpenResult{
			Code: jvlink.CodeIncomplete, DownloadCount: 3,
		}}},
		Statuses: []int{50, 80, 100, 0},
	}
	f, _, clock := newTestFetcher(t, sess)

	res, err := f.Fetch(t.Context(), task())
	require.NoError(t, err)
	assert.Equal(t, 4, sess.StatusCalls, "status 0 ends the loop in that iteration")
	assert.Equal(t, 0, res.DownloadStatus)
	assert.Equal(t, []int{50, 80, 100, 0}, res.StatusTrace)

	polls := 0
	for _, d := range clock.sleeps {
		if d == defaultPollInterval {
			polls++
		}
	}
	assert.Equal(t, 3, polls, "one wait between successive status polls")
}

func TestStatusBudgetAtFullProgressIsSuccess(t *testing.T) {
	statuses := make([]int, 600)
	for i := range statuses {
		statuses[i] = 100
	}
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{{Result: jvlink.OpenResult{
			Code: jvlink.CodeIncomplete, DownloadCount: 1,
		}}},
		Statuses: statuses,
	}
	f, _, _ := newTestFetcher(t, sess)

	tk := task()
	tk.Timeout = time.Second
	res, err := f.Fetch(t.Context(), tk)
	require.NoError(t, err, "stuck at 100 percent counts as complete when the budget ends")
	assert.Equal(t, 100, res.DownloadStatus)
}

func TestStatusBudgetMidProgressFails(t *testing.T) {
	statuses := make([]int, 600)
	for i := range statuses {
		statuses[i] = 40
	}
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{{Result: jvlink.OpenResult{
			Code: jvlink.CodeIncomplete, DownloadCount: 1,
		}}},
		Statuses: statuses,
	}
	f, _, _ := newTestFetcher(t, sess)

	tk := task()
	tk.Timeout = time.Second
	res, err := f.Fetch(t.Context(), tk)
	require.Error(t, err)
	assert.Contains(t, res.Error, "incomplete")
	assert.Equal(t, 1, sess.CloseCalls)
}

func TestServerBusyRetriesOnSameSession(t *testing.T) {
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{
			{Result: jvlink.OpenResult{Code: jvlink.CodeServerBusy}},
			{Result: jvlink.OpenResult{Code: 0}},
		},
	}
	f, _, clock := newTestFetcher(t, sess)

	_, err := f.Fetch(t.Context(), task())
	require.NoError(t, err)
	assert.Equal(t, 2, sess.OpenCalls)
	assert.Equal(t, 1, sess.InitCalls, "busy holds the session, no re-init")
	assert.Contains(t, clock.sleeps, holdServerBusy)
}

func TestOpenRetryBudget(t *testing.T) {
	steps := make([]jvlink.OpenStep, 12)
	for i := range steps {
		steps[i] = jvlink.OpenStep{Result: jvlink.OpenResult{Code: jvlink.CodeServerBusy}}
	}
	sess := &jvlink.StubSession{OpenSteps: steps}
	f, _, _ := newTestFetcher(t, sess)

	res, err := f.Fetch(t.Context(), task())
	require.Error(t, err)
	assert.Equal(t, maxConsecutiveRetries, sess.OpenCalls)
	assert.Contains(t, res.Error, "retries")
	assert.Equal(t, 1, sess.CloseCalls)
}

func TestConnectionDroppedRebuildsSession(t *testing.T) {
	dropped := &jvlink.SessionError{Sentinel: jvlink.ErrConnectionDropped, Op: "open"}
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{
			{Err: dropped},
			{Result: jvlink.OpenResult{Code: 0}},
		},
	}
	f, _, clock := newTestFetcher(t, sess)

	_, err := f.Fetch(t.Context(), task())
	require.NoError(t, err)
	assert.Equal(t, 2, sess.InitCalls, "rebuild re-inits the session")
	assert.Equal(t, 2, sess.CloseCalls, "reconnect close plus cycle-end close")
	assert.Contains(t, clock.sleeps, holdReconnect)
}

func TestConnectionDroppedGivesUpAfterTwoRebuilds(t *testing.T) {
	dropped := &jvlink.SessionError{Sentinel: jvlink.ErrConnectionDropped, Op: "open"}
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{{Err: dropped}, {Err: dropped}, {Err: dropped}},
	}
	f, _, _ := newTestFetcher(t, sess)

	_, err := f.Fetch(t.Context(), task())
	require.Error(t, err)
	assert.ErrorIs(t, err, jvlink.ErrConnectionDropped)
	assert.Equal(t, 3, sess.OpenCalls)
}

func TestReadPendingWaits(t *testing.T) {
	payload := racePayload(t)
	sess := &jvlink.StubSession{
		ReadSteps: append([]jvlink.ReadStep{
			{Result: jvlink.ReadResult{Code: jvlink.CodeReadPending}},
		}, jvlink.Records(payload)...),
	}
	f, _, clock := newTestFetcher(t, sess)

	res, err := f.Fetch(t.Context(), task())
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Contains(t, clock.sleeps, readPendingDelay)
}

func TestUnknownSpecIsDroppedNotFatal(t *testing.T) {
	unknown := make([]byte, 50)
	copy(unknown, "ZZ")
	sess := &jvlink.StubSession{ReadSteps: jvlink.Records(unknown)}
	f, db, _ := newTestFetcher(t, sess)

	res, err := f.Fetch(t.Context(), task())
	require.NoError(t, err)
	require.Len(t, res.Records, 1, "unroutable records still count as read")
	assert.Equal(t, "ZZ", res.Records[0].Spec)

	var n int
	require.NoError(t, db.QueryRowContext(t.Context(),
		`SELECT COUNT(*) FROM "NL_RA"`).Scan(&n))
	assert.Zero(t, n)
}

func TestSchemaDriftFailsCycle(t *testing.T) {
	reg := record.NewRegistry()
	require.NoError(t, reg.Register(&record.Layout{
		Spec:   "RA",
		Length: 64,
		Fields: []record.Field{
			{Col: "RecordSpec", Start: 0, Len: 2, Kind: record.Code},
			{Col: "Year", Start: 2, Len: 4, Kind: record.Int},
			{Col: "BogusColumn", Start: 6, Len: 8, Kind: record.Text},
		},
	}))
	l, ok := reg.Lookup("RA", 64)
	require.True(t, ok)
	payload, err := record.EncodeRow(l, map[string]any{
		"RecordSpec":  "RA",
		"Year":        int64(2026),
		"BogusColumn": "oops",
	})
	require.NoError(t, err)

	sess := &jvlink.StubSession{ReadSteps: jvlink.Records(payload)}
	f, db, _ := newTestFetcher(t, sess)
	f.Registry = reg

	res, err := f.Fetch(t.Context(), task())
	require.Error(t, err, "a column the catalog lacks must fail the cycle")
	var drift *ingest.SchemaDrift
	require.ErrorAs(t, err, &drift)
	assert.Equal(t, "BogusColumn", drift.Column)
	assert.Contains(t, res.Error, "schema drift")
	assert.Empty(t, res.ParseErrors, "drift is not a per-record parse error")
	assert.Equal(t, 1, sess.CloseCalls)

	var n int
	require.NoError(t, db.QueryRowContext(t.Context(),
		`SELECT COUNT(*) FROM "NL_RA"`).Scan(&n))
	assert.Zero(t, n, "nothing commits from a drifted cycle")
}

func TestFatalOpenFailsCycle(t *testing.T) {
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{{Err: jvlink.Fatal("open", -504)}},
	}
	f, _, _ := newTestFetcher(t, sess)

	res, err := f.Fetch(t.Context(), task())
	require.Error(t, err)
	assert.ErrorIs(t, err, jvlink.ErrSessionFailed)
	assert.NotEmpty(t, res.Error)
	assert.Equal(t, 1, sess.CloseCalls)
}

func TestDownloadAllStopsWhenNothingScheduled(t *testing.T) {
	sess := &jvlink.StubSession{
		OpenSteps: []jvlink.OpenStep{
			{Result: jvlink.OpenResult{Code: jvlink.CodeDownloadsScheduled, DownloadCount: 3}},
			{Result: jvlink.OpenResult{Code: 0, DownloadCount: 0}},
		},
	}
	f, _, _ := newTestFetcher(t, sess)

	results, err := f.DownloadAll(t.Context(), task())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0].DownloadCount)
	assert.Zero(t, results[1].DownloadCount)
	assert.Equal(t, 1, sess.InitCalls, "one init across setup cycles")
	assert.Equal(t, 2, sess.CloseCalls, "each spool cycle closes immediately")
	assert.Zero(t, sess.ReadCalls, "spool cycles never read")
	assert.Zero(t, sess.StatusCalls, "spool cycles never poll")
}
