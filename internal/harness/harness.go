// SPDX-License-Identifier: MIT

// Package harness fans a date range out to per-day child processes.
// Each child runs one fetch cycle in its own process group and reports
// over stdout as JSON; a wedged vendor session therefore costs one day,
// not the whole range.
package harness

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/keibalab/jvsync/internal/fetch"
	"github.com/keibalab/jvsync/internal/log"
	"github.com/keibalab/jvsync/internal/procgroup"
)

// ErrInvalidArgument rejects malformed dates or dataspecs before any
// child is spawned.
var ErrInvalidArgument = errors.New("harness: invalid argument")

var (
	datePattern     = regexp.MustCompile(`^[0-9]{8}$`)
	dataspecPattern = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

const (
	defaultChildTimeout = 1800 * time.Second
	defaultGrace        = 10 * time.Second
)

// Runner spawns fetch children.
type Runner struct {
	// Executable is the child binary; empty means this process.
	Executable string
	// BaseArgs are prepended before the fetch-one arguments.
	BaseArgs []string
	// ExtraArgs are appended after them (store and flavor flags).
	ExtraArgs []string
	// Env entries are appended to the inherited environment.
	Env []string

	Timeout     time.Duration // per-day child budget
	Grace       time.Duration // termination grace before SIGKILL
	Parallelism int           // concurrent children; <=1 is sequential
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout <= 0 {
		return defaultChildTimeout
	}
	return r.Timeout
}

func (r *Runner) grace() time.Duration {
	if r.Grace <= 0 {
		return defaultGrace
	}
	return r.Grace
}

// FetchRange runs one child per day from start to end inclusive. It
// always returns exactly one result per day; per-day failures land in
// the result's Error field and never abort the range.
func (r *Runner) FetchRange(ctx context.Context, start, end, dataspec string) ([]*fetch.Result, error) {
	if !datePattern.MatchString(start) {
		return nil, fmt.Errorf("%w: start date %q", ErrInvalidArgument, start)
	}
	if !datePattern.MatchString(end) {
		return nil, fmt.Errorf("%w: end date %q", ErrInvalidArgument, end)
	}
	if !dataspecPattern.MatchString(dataspec) {
		return nil, fmt.Errorf("%w: dataspec %q", ErrInvalidArgument, dataspec)
	}
	from, err := time.Parse("20060102", start)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q", ErrInvalidArgument, start)
	}
	to, err := time.Parse("20060102", end)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %q", ErrInvalidArgument, end)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range %s..%s is reversed", ErrInvalidArgument, start, end)
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("20060102"))
	}

	results := make([]*fetch.Result, len(dates))
	g, ctx := errgroup.WithContext(ctx)
	limit := r.Parallelism
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i, date := range dates {
		g.Go(func() error {
			results[i] = r.runOne(ctx, date, dataspec)
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, date, dataspec string) *fetch.Result {
	logger := log.WithComponentFromContext(log.ContextWithTask(ctx, date+"/"+dataspec), "harness")
	failed := func(format string, args ...any) *fetch.Result {
		msg := fmt.Sprintf(format, args...)
		logger.Error().Str("event", "harness.child_failed").Msg(msg)
		return &fetch.Result{
			Date:     date,
			Dataspec: dataspec,
			Records:  []fetch.RecordSummary{},
			Error:    msg,
		}
	}

	exe := r.Executable
	if exe == "" {
		self, err := os.Executable()
		if err != nil {
			return failed("resolve executable: %v", err)
		}
		exe = self
	}

	args := append([]string{}, r.BaseArgs...)
	args = append(args, "--fetch-one", "-date", date, "-dataspec", dataspec)
	args = append(args, r.ExtraArgs...)

	cmd := exec.Command(exe, args...)
	cmd.Env = append(os.Environ(), r.Env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	procgroup.Set(cmd)

	logger.Info().Str("event", "harness.child_start").Msg("spawning fetch child")
	if err := cmd.Start(); err != nil {
		return failed("start child: %v", err)
	}

	waitCh := make(chan error, 1)
	go func() { waitCh <- cmd.Wait() }()

	timeout := r.timeout()
	select {
	case err := <-waitCh:
		if err != nil {
			return failed("child failed: %v: %s", err, firstLine(stderr.String()))
		}
	case <-time.After(timeout):
		_ = procgroup.Terminate(cmd, waitCh, r.grace())
		return failed("Timeout after %d seconds", int(timeout.Seconds()))
	case <-ctx.Done():
		_ = procgroup.Terminate(cmd, waitCh, r.grace())
		return failed("canceled: %v", ctx.Err())
	}

	var res fetch.Result
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		return failed("parse error: %v: %s", err, firstLine(stderr.String()))
	}
	logger.Info().
		Int("records", len(res.Records)).
		Str("event", "harness.child_done").
		Msg("fetch child finished")
	return &res
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
