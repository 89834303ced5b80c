// SPDX-License-Identifier: MIT

// Package procgroup spawns and reaps whole process groups so a killed
// fetch child cannot leave orphaned descendants behind.
package procgroup

import "os/exec"

// Set configures the command to start in a new process group.
// Mandatory for Kill and Terminate to reach the whole child tree.
func Set(cmd *exec.Cmd) {
	set(cmd)
}
