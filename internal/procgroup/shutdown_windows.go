// SPDX-License-Identifier: MIT

//go:build windows

package procgroup

import (
	"os/exec"
	"syscall"
	"time"

	"github.com/keibalab/jvsync/internal/metrics"
)

// Terminate stops a child process. Windows has no graceful termination
// signal for console children, so after grace the process is killed
// outright.
func Terminate(cmd *exec.Cmd, waitCh <-chan error, grace time.Duration) error {
	if cmd == nil || cmd.Process == nil {
		return nil
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
		} else {
			metrics.IncChildTerminate("SIGKILL", "error")
		}
		err := <-waitCh
		if err == nil {
			metrics.IncChildWait("forced_exit0")
		} else {
			metrics.IncChildWait("forced_error")
		}
		return err
	}
}
