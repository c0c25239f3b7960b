//go:build !windows

package offsets

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
