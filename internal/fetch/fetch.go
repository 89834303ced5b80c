// SPDX-License-Identifier: MIT

// Package fetch drives one download cycle against a vendor session:
// open, wait for scheduled downloads, drain records into the store,
// close. Recoverable vendor codes are retried on a fixed backoff
// ladder; everything else fails the cycle.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/keibalab/jvsync/internal/ingest"
	"github.com/keibalab/jvsync/internal/jvlink"
	"github.com/keibalab/jvsync/internal/log"
	"github.com/keibalab/jvsync/internal/metrics"
	"github.com/keibalab/jvsync/internal/record"
	"github.com/keibalab/jvsync/internal/schema"
)

const (
	defaultPollInterval = 300 * time.Millisecond
	defaultCycleBudget  = 120 * time.Second
	readPendingDelay    = 100 * time.Millisecond
	maxReadsPerCycle    = 10000
	maxReadSize         = 110000
	maxBackgroundCycles = 500
)

// Task is one unit of fetch work: a date and dataspec against one
// table family.
type Task struct {
	Date     string // YYYYMMDD
	Dataspec string
	Option   int // 1 normal, 2 setup
	Family   schema.Family
	Timeout  time.Duration // cycle budget; zero means the default
}

// RecordSummary identifies one accepted record in the bridge output.
// Payload bytes never cross the bridge.
type RecordSummary struct {
	File string `json:"file"`
	Size int    `json:"size"`
	Spec string `json:"spec"`
}

// Result reports one completed cycle. The JSON shape is the bridge
// contract consumed by the range harness over the child's stdout.
type Result struct {
	Date           string          `json:"date"`
	Dataspec       string          `json:"type"`
	Records        []RecordSummary `json:"records"`
	OpenRC         int             `json:"open_rc"`
	ReadCount      int             `json:"read_count"`
	DownloadCount  int             `json:"download_count"`
	DownloadStatus int             `json:"download_status"`
	Error          string          `json:"error"`

	ID          string         `json:"-"`
	StatusTrace []int          `json:"-"`
	ParseErrors map[string]int `json:"-"`
}

// Fetcher runs cycles against one session. Like the session itself it
// must stay on a single goroutine.
type Fetcher struct {
	Session  jvlink.Session
	Writer   *ingest.Writer
	Registry *record.Registry
	Clock    Clock
	Flavor   jvlink.Flavor

	ServiceKey   string
	PollInterval time.Duration

	inited bool
}

func (f *Fetcher) clock() Clock {
	if f.Clock == nil {
		return SystemClock
	}
	return f.Clock
}

func (f *Fetcher) pollInterval() time.Duration {
	if f.PollInterval <= 0 {
		return defaultPollInterval
	}
	return f.PollInterval
}

// Fetch runs one complete cycle. The returned Result is always
// non-nil; on failure its Error field matches the returned error.
func (f *Fetcher) Fetch(ctx context.Context, task Task) (*Result, error) {
	result := &Result{
		ID:          uuid.NewString(),
		Date:        task.Date,
		Dataspec:    task.Dataspec,
		Records:     []RecordSummary{},
		ParseErrors: make(map[string]int),
	}
	ctx = log.ContextWithCycleID(ctx, result.ID)
	ctx = log.ContextWithTask(ctx, task.Date+"/"+task.Dataspec)
	logger := log.WithComponentFromContext(ctx, "fetch")

	started := f.clock().Now()
	err := f.run(ctx, logger, task, result)
	metrics.ObserveCycle(f.clock().Now().Sub(started))
	if err != nil {
		result.Error = err.Error()
		logger.Error().Err(err).Str("event", "fetch.failed").Msg("cycle failed")
		return result, err
	}
	logger.Info().
		Int("records", len(result.Records)).
		Int("open_rc", result.OpenRC).
		Str("event", "fetch.done").
		Msg("cycle complete")
	return result, nil
}

func (f *Fetcher) ensureInit(ctx context.Context) error {
	if f.inited {
		return nil
	}
	if err := f.Session.Init(ctx, f.ServiceKey); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	f.inited = true
	return nil
}

func (f *Fetcher) run(ctx context.Context, logger zerolog.Logger, task Task, result *Result) error {
	if err := f.ensureInit(ctx); err != nil {
		return err
	}

	budget := task.Timeout
	if budget <= 0 {
		budget = defaultCycleBudget
	}
	deadline := f.clock().Now().Add(budget)

	option := task.Option
	if option == 0 {
		option = 1
	}
	open, err := f.openWithRetry(ctx, logger, task.Dataspec, task.Date+"000000", option)
	result.OpenRC = open.Code
	result.ReadCount = open.ReadCount
	result.DownloadCount = open.DownloadCount
	defer func() {
		if cerr := f.Session.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("event", "fetch.close_failed").Msg("session close failed")
		}
	}()
	if err != nil {
		return err
	}

	if jvlink.OpenPending(open.Code) && open.DownloadCount > 0 {
		status, trace, werr := f.waitForDownloads(ctx, deadline)
		result.DownloadStatus = status
		result.StatusTrace = trace
		if werr != nil {
			return werr
		}
	}

	if err := f.drain(ctx, logger, task, result); err != nil {
		return err
	}
	if _, err := f.Writer.Flush(ctx); err != nil {
		return err
	}
	return nil
}

// waitForDownloads polls Status until it reports done. Only 0 ends the
// loop; once 0 is observed no further Status call is made. 100 percent
// still polls, since the service confirms completion by dropping to 0,
// but counts as success if the budget runs out first.
func (f *Fetcher) waitForDownloads(ctx context.Context, deadline time.Time) (int, []int, error) {
	var trace []int
	for {
		status, err := f.Session.Status(ctx)
		if err != nil {
			return status, trace, fmt.Errorf("status: %w", err)
		}
		trace = append(trace, status)
		if status < 0 {
			return status, trace, fmt.Errorf("status: download failed with code %d", status)
		}
		if status == 0 {
			return status, trace, nil
		}
		if !f.clock().Now().Before(deadline) {
			if status >= 100 {
				return status, trace, nil
			}
			return status, trace, fmt.Errorf("status: download incomplete at cycle budget")
		}
		if err := f.clock().Sleep(ctx, f.pollInterval()); err != nil {
			return status, trace, err
		}
	}
}

// drain reads until the session reports end of data, demuxing every
// payload into buffered rows. Pending codes wait briefly; record-level
// failures are counted, not fatal.
func (f *Fetcher) drain(ctx context.Context, logger zerolog.Logger, task Task, result *Result) error {
	currentFile := ""
	for reads := 0; reads < maxReadsPerCycle; reads++ {
		rr, err := f.Session.Read(ctx, maxReadSize)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		switch {
		case rr.Code > 0:
			if currentFile != "" && rr.Filename != currentFile {
				if _, err := f.Writer.Flush(ctx); err != nil {
					return err
				}
			}
			if rr.Filename != "" {
				currentFile = rr.Filename
			}
			if err := f.ingestPayload(logger, task, rr.Payload, result); err != nil {
				return err
			}
			result.Records = append(result.Records, RecordSummary{
				File: rr.Filename,
				Size: rr.Size,
				Spec: specOf(rr.Payload),
			})
		case rr.Code == 0:
			return nil
		case jvlink.ReadPending(rr.Code, f.Flavor):
			if err := f.clock().Sleep(ctx, readPendingDelay); err != nil {
				return err
			}
		default:
			return fmt.Errorf("read: failed with code %d", rr.Code)
		}
	}
	logger.Warn().
		Int("reads", maxReadsPerCycle).
		Str("event", "fetch.read_cap").
		Msg("read cap reached, stopping cycle")
	return nil
}

// ingestPayload routes one payload into buffered rows. Unknown specs
// and malformed records are counted and dropped. Schema drift is the
// one exception: a row naming a column the catalog lacks means the
// layouts and the deployed schema have diverged, and the cycle fails.
func (f *Fetcher) ingestPayload(logger zerolog.Logger, task Task, payload []byte, result *Result) error {
	spec, layout, ok := f.Registry.Demux(payload)
	if !ok {
		metrics.IncUnknownSpec(spec)
		logger.Debug().Str("spec", spec).Int("len", len(payload)).
			Str("event", "fetch.unknown_spec").Msg("unroutable record dropped")
		return nil
	}
	rows, err := record.Parse(layout, payload)
	if err != nil {
		metrics.IncParseError(spec)
		result.ParseErrors[spec]++
		logger.Warn().Err(err).Str("spec", spec).
			Str("event", "fetch.parse_error").Msg("record rejected")
		return nil
	}
	for _, row := range rows {
		if err := f.Writer.Add(task.Family, row); err != nil {
			var drift *ingest.SchemaDrift
			if errors.As(err, &drift) {
				return err
			}
			metrics.IncParseError(spec)
			result.ParseErrors[spec]++
			logger.Warn().Err(err).Str("spec", spec).
				Str("event", "fetch.row_rejected").Msg("row rejected")
			return nil
		}
	}
	metrics.IncRecordRead(spec)
	return nil
}

func specOf(payload []byte) string {
	if len(payload) < 2 {
		return ""
	}
	return string(payload[0:2])
}

// DownloadAll pushes the service's server-side spooling forward with
// open/close cycles that read nothing, until no further downloads are
// scheduled. The cycle cap bounds a service that keeps scheduling
// work. Records are fetched afterwards with normal cycles.
func (f *Fetcher) DownloadAll(ctx context.Context, task Task) ([]*Result, error) {
	ctx = log.ContextWithTask(ctx, task.Date+"/"+task.Dataspec)
	logger := log.WithComponentFromContext(ctx, "fetch")

	if err := f.ensureInit(ctx); err != nil {
		return nil, err
	}
	fromTime := task.Date + "000000"
	var results []*Result
	for cycle := 0; cycle < maxBackgroundCycles; cycle++ {
		res := &Result{
			ID:       uuid.NewString(),
			Date:     task.Date,
			Dataspec: task.Dataspec,
			Records:  []RecordSummary{},
		}
		open, err := f.openWithRetry(ctx, logger, task.Dataspec, fromTime, 2)
		res.OpenRC = open.Code
		res.ReadCount = open.ReadCount
		res.DownloadCount = open.DownloadCount
		if cerr := f.Session.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("event", "fetch.close_failed").Msg("session close failed")
		}
		results = append(results, res)
		if err != nil {
			res.Error = err.Error()
			return results, err
		}
		if open.DownloadCount == 0 {
			logger.Info().Int("cycles", len(results)).
				Str("event", "fetch.spool_done").Msg("no downloads remain")
			return results, nil
		}
	}
	return results, fmt.Errorf("fetch: %d setup cycles without completion", maxBackgroundCycles)
}
