// SPDX-License-Identifier: MIT

//go:build unix && !windows

package procgroup

import (
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/keibalab/jvsync/internal/metrics"
)

// Terminate gracefully stops a process group. It sends SIGTERM, waits for
// the process to exit via waitCh, and escalates to SIGKILL after grace.
// It consumes and returns the error from waitCh. Safe on nil commands.
func Terminate(cmd *exec.Cmd, waitCh <-chan error, grace time.Duration) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	// If the process already finished, Kill is a harmless ESRCH.
	if err := Kill(cmd, syscall.SIGTERM); err == nil {
		metrics.IncChildTerminate("SIGTERM", "sent")
	} else if alreadyGone(err) {
		metrics.IncChildTerminate("SIGTERM", "esrch")
	} else {
		metrics.IncChildTerminate("SIGTERM", "error")
	}

	select {
	case err := <-waitCh:
		if err == nil {
			metrics.IncChildWait("exit0")
		} else {
			metrics.IncChildWait("exit_nonzero")
		}
		return err
	case <-time.After(grace):
		if err := Kill(cmd, syscall.SIGKILL); err == nil {
			metrics.IncChildTerminate("SIGKILL", "sent")
		} else if alreadyGone(err) {
			metrics.IncChildTerminate("SIGKILL", "esrch")
		} else {
			metrics.IncChildTerminate("SIGKILL", "error")
		}

		// Always drain waitCh; SIGKILL frees a blocked Wait.
		err := <-waitCh
		if err == nil {
			metrics.IncChildWait("forced_exit0")
		} else {
			metrics.IncChildWait("forced_error")
		}
		return err
	}
}

func alreadyGone(err error) bool {
	return strings.Contains(err.Error(), "process already finished") ||
		strings.Contains(err.Error(), "no such process")
}
