//go:build !windows

package inject

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
