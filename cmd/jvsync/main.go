// SPDX-License-Identifier: MIT

// Command jvsync synchronizes horse racing data from the vendor
// services into a relational store.
//
// Modes:
//
//	jvsync -start 20260601 -end 20260607 -dataspec RACE   range fetch (default)
//	jvsync --fetch-one -date 20260601 -dataspec RACE      one child cycle, JSON on stdout
//	jvsync -download -date 20240101 -dataspec RACE        setup download until drained
//	jvsync -initdb                                        create the schema and exit
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/keibalab/jvsync/internal/config"
	"github.com/keibalab/jvsync/internal/fetch"
	"github.com/keibalab/jvsync/internal/harness"
	"github.com/keibalab/jvsync/internal/ingest"
	"github.com/keibalab/jvsync/internal/jvlink"
	"github.com/keibalab/jvsync/internal/log"
	"github.com/keibalab/jvsync/internal/metrics"
	"github.com/keibalab/jvsync/internal/record"
	"github.com/keibalab/jvsync/internal/schema"
)

var version = "dev"

func main() {
	var (
		fetchOne = flag.Bool("fetch-one", false, "run one fetch cycle and print the result as JSON")
		download = flag.Bool("download", false, "run setup cycles until no downloads remain")
		initdb   = flag.Bool("initdb", false, "create the schema and exit")

		date     = flag.String("date", "", "date (YYYYMMDD) for fetch-one and download")
		start    = flag.String("start", "", "range start date (YYYYMMDD)")
		end      = flag.String("end", "", "range end date (YYYYMMDD)")
		dataspec = flag.String("dataspec", "RACE", "vendor dataspec to request")
		family   = flag.String("family", "nl", "target table family: nl, ts or rt")

		metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address")
	)
	flag.Parse()

	cfg := config.FromEnv()
	log.Configure(log.Config{Level: cfg.LogLevel, Service: "jvsync", Version: version})
	logger := log.WithComponent("main")

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("configuration rejected")
		os.Exit(2)
	}
	flavor, err := jvlink.ParseFlavor(cfg.Flavor)
	if err != nil {
		logger.Error().Err(err).Msg("configuration rejected")
		os.Exit(2)
	}
	fam, err := parseFamily(*family)
	if err != nil {
		logger.Error().Err(err).Msg("configuration rejected")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *metricsAddr != "" {
		go func() {
			if serr := http.ListenAndServe(*metricsAddr, metrics.Handler()); serr != nil {
				logger.Error().Err(serr).Msg("metrics listener failed")
			}
		}()
	}

	switch {
	case *initdb:
		os.Exit(runInitDB(ctx, cfg, flavor, logger))
	case *fetchOne:
		os.Exit(runFetchOne(ctx, cfg, flavor, fam, *date, *dataspec, logger))
	case *download:
		os.Exit(runDownload(ctx, cfg, flavor, fam, *date, *dataspec, logger))
	default:
		os.Exit(runRange(ctx, cfg, *start, *end, *dataspec, *family, logger))
	}
}

func parseFamily(s string) (schema.Family, error) {
	switch s {
	case "nl", "":
		return schema.NL, nil
	case "ts":
		return schema.TS, nil
	case "rt":
		return schema.RT, nil
	default:
		return schema.NL, fmt.Errorf("unknown family %q (want nl, ts or rt)", s)
	}
}

func openStore(ctx context.Context, cfg config.Settings, flavor jvlink.Flavor) (*ingest.Writer, error) {
	db, dialect, err := ingest.Open(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, err
	}
	if err := ingest.CreateSchema(ctx, db, dialect, schema.Default(), flavor); err != nil {
		db.Close()
		return nil, err
	}
	if err := ingest.VerifyIntegrity(ctx, db, dialect); err != nil {
		db.Close()
		return nil, err
	}
	return ingest.NewWriter(db, dialect, schema.Default(), flavor), nil
}

func runInitDB(ctx context.Context, cfg config.Settings, flavor jvlink.Flavor, logger zerolog.Logger) int {
	writer, err := openStore(ctx, cfg, flavor)
	if err != nil {
		logger.Error().Err(err).Msg("store initialization failed")
		return 1
	}
	defer writer.Close()
	logger.Info().Str("driver", cfg.StoreDriver).Msg("schema ready")
	return 0
}

func newFetcher(ctx context.Context, cfg config.Settings, flavor jvlink.Flavor) (*fetch.Fetcher, func(), error) {
	sess, err := jvlink.Connect(flavor)
	if err != nil {
		return nil, nil, err
	}
	writer, err := openStore(ctx, cfg, flavor)
	if err != nil {
		sess.Close()
		return nil, nil, err
	}
	f := &fetch.Fetcher{
		Session:      sess,
		Writer:       writer,
		Registry:     record.Default(),
		Clock:        fetch.SystemClock,
		Flavor:       flavor,
		ServiceKey:   cfg.ServiceKey,
		PollInterval: cfg.PollInterval,
	}
	cleanup := func() { writer.Close() }
	return f, cleanup, nil
}

// runFetchOne is the child side of the harness bridge. Once a cycle
// runs, the result is printed as JSON on stdout and the exit code is 0
// even if the cycle itself failed; the caller reads the error field.
func runFetchOne(ctx context.Context, cfg config.Settings, flavor jvlink.Flavor, fam schema.Family, date, dataspec string, logger zerolog.Logger) int {
	if date == "" {
		logger.Error().Msg("fetch-one requires -date")
		return 2
	}
	f, cleanup, err := newFetcher(ctx, cfg, flavor)
	if err != nil {
		logger.Error().Err(err).Msg("session setup failed")
		return 1
	}
	defer cleanup()

	result, _ := f.Fetch(ctx, fetch.Task{
		Date:     date,
		Dataspec: dataspec,
		Family:   fam,
		Timeout:  cfg.CycleTimeout,
	})
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(result); err != nil {
		logger.Error().Err(err).Msg("result encoding failed")
		return 1
	}
	return 0
}

func runDownload(ctx context.Context, cfg config.Settings, flavor jvlink.Flavor, fam schema.Family, date, dataspec string, logger zerolog.Logger) int {
	if date == "" {
		logger.Error().Msg("download requires -date")
		return 2
	}
	f, cleanup, err := newFetcher(ctx, cfg, flavor)
	if err != nil {
		logger.Error().Err(err).Msg("session setup failed")
		return 1
	}
	defer cleanup()

	results, err := f.DownloadAll(ctx, fetch.Task{
		Date:     date,
		Dataspec: dataspec,
		Family:   fam,
		Timeout:  cfg.CycleTimeout,
	})
	records := 0
	for _, res := range results {
		records += len(res.Records)
	}
	if err != nil {
		logger.Error().Err(err).Int("cycles", len(results)).Msg("setup download failed")
		return 1
	}
	logger.Info().Int("cycles", len(results)).Int("records", records).Msg("setup download complete")
	return 0
}

func runRange(ctx context.Context, cfg config.Settings, start, end, dataspec, family string, logger zerolog.Logger) int {
	if start == "" || end == "" {
		logger.Error().Msg("range mode requires -start and -end")
		return 2
	}
	runner := &harness.Runner{
		ExtraArgs:   []string{"-family", family},
		Timeout:     cfg.ChildTimeout,
		Parallelism: cfg.Parallelism,
	}
	results, err := runner.FetchRange(ctx, start, end, dataspec)
	if err != nil {
		logger.Error().Err(err).Msg("range rejected")
		return 2
	}

	records, failures := 0, 0
	for _, res := range results {
		records += len(res.Records)
		if res.Error != "" {
			failures++
			logger.Warn().Str("date", res.Date).Str("error", res.Error).Msg("day failed")
		}
	}
	logger.Info().
		Int("days", len(results)).
		Int("records", records).
		Int("failures", failures).
		Msg("range complete")
	if failures == len(results) && len(results) > 0 {
		return 1
	}
	return 0
}
