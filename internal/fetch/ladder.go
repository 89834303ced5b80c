// SPDX-License-Identifier: MIT

package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/keibalab/jvsync/internal/jvlink"
	"github.com/keibalab/jvsync/internal/metrics"
)

// Backoff ladder for recoverable open outcomes. Server busy holds the
// session and waits long; transfer hiccups retry quickly; a dropped
// connection is rebuilt from Init at most twice.
const (
	holdServerBusy = 180 * time.Second
	holdTransfer   = 30 * time.Second
	holdReconnect  = 30 * time.Second
	holdOther      = 60 * time.Second

	maxConsecutiveRetries = 10
	maxReconnects         = 2
)

func retryDelay(code int) time.Duration {
	switch code {
	case jvlink.CodeServerBusy:
		return holdServerBusy
	case jvlink.CodeTransfer:
		return holdTransfer
	default:
		return holdOther
	}
}

// openWithRetry climbs the ladder until Open yields a usable session
// or the retry budget runs out.
func (f *Fetcher) openWithRetry(ctx context.Context, logger zerolog.Logger, dataspec, fromTime string, option int) (jvlink.OpenResult, error) {
	consecutive := 0
	reconnects := 0
	for {
		res, err := f.Session.Open(ctx, dataspec, fromTime, option)
		if err != nil {
			if errors.Is(err, jvlink.ErrConnectionDropped) && reconnects < maxReconnects {
				reconnects++
				logger.Warn().Err(err).Int("reconnect", reconnects).
					Str("event", "fetch.reconnect").Msg("connection dropped, rebuilding session")
				_ = f.Session.Close()
				if serr := f.clock().Sleep(ctx, holdReconnect); serr != nil {
					return res, serr
				}
				if ierr := f.Session.Init(ctx, f.ServiceKey); ierr != nil {
					return res, fmt.Errorf("reinit: %w", ierr)
				}
				continue
			}
			return res, fmt.Errorf("open: %w", err)
		}
		if jvlink.OpenUsable(res.Code) {
			return res, nil
		}

		consecutive++
		if consecutive >= maxConsecutiveRetries {
			return res, fmt.Errorf("open: code %d after %d consecutive retries", res.Code, consecutive)
		}
		delay := retryDelay(res.Code)
		metrics.IncRetry(res.Code)
		logger.Warn().
			Int("code", res.Code).
			Dur("delay", delay).
			Int("attempt", consecutive).
			Str("event", "fetch.retry").
			Msg("open not ready, backing off")
		if err := f.clock().Sleep(ctx, delay); err != nil {
			return res, err
		}
	}
}
