//go:build unix

package monitor

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

// setProcessGroup puts the child in its own process group so signals can
// reach the whole training process tree.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &unix.SysProcAttr{Setpgid: true}
}

// terminateProcessGroup asks the child's process group to shut down.
func terminateProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = unix.Kill(-cmd.Process.Pid, unix.SIGTERM)
}

// killProcessGroup forcibly kills the child's process group.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
}
