// Package inject runs the external DLL-injection helper against a target
// thread and decodes its exit code. The injection technique itself (how the
// helper gets the hook DLL's path into the target's address space) is not
// implemented here or anywhere in this module; this package only owns the
// fixed three-argument CLI contract and the exit-code taxonomy.
package inject

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/lanternops/gcapture/internal/artifacts"
	"github.com/lanternops/gcapture/internal/logging"
)

var log = logging.L("inject")

const runTimeout = 10 * time.Second

// ExitStatus is the decoded meaning of the injector's process exit code.
type ExitStatus int

const (
	Success ExitStatus = iota
	InjectFailed
	InvalidParams
	OpenProcessFail
	UnlikelyFail
	Unknown
)

func (s ExitStatus) String() string {
	switch s {
	case Success:
		return "success"
	case InjectFailed:
		return "inject failed"
	case InvalidParams:
		return "invalid params"
	case OpenProcessFail:
		return "open process failed"
	case UnlikelyFail:
		return "unlikely failure"
	default:
		return "unknown"
	}
}

// decodeExitCode maps the injector's raw process exit code onto ExitStatus,
// matching the helper's documented contract exactly.
func decodeExitCode(code int) ExitStatus {
	switch code {
	case 0:
		return Success
	case -1:
		return InjectFailed
	case -2:
		return InvalidParams
	case -3:
		return OpenProcessFail
	case -4:
		return UnlikelyFail
	default:
		return Unknown
	}
}

// Error reports a non-success result from the injector, along with the raw
// exit code for diagnostics (meaningful mainly when Status is Unknown).
type Error struct {
	Status   ExitStatus
	RawCode  int
}

func (e *Error) Error() string {
	if e.Status == Unknown {
		return fmt.Sprintf("inject: unknown exit code %d", e.RawCode)
	}
	return fmt.Sprintf("inject: %s", e.Status)
}

// Graphics materializes the injector and hook DLL (if absent) and runs the
// injector against the given thread, using the fixed
// "<dll-path> <0|1> <tid>" argument contract.
func Graphics(ctx context.Context, src artifacts.Source, policy artifacts.PathPolicy, threadID uint32, antiCheatCompatible bool) error {
	injectorPath, err := artifacts.MaterializeWithPolicy(src, artifacts.InjectHelper, policy)
	if err != nil {
		return fmt.Errorf("inject: materialize injector: %w", err)
	}
	dllPath, err := artifacts.MaterializeWithPolicy(src, artifacts.HookDLL, policy)
	if err != nil {
		return fmt.Errorf("inject: materialize hook dll: %w", err)
	}

	acFlag := "0"
	if antiCheatCompatible {
		acFlag = "1"
	}

	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, injectorPath, dllPath, acFlag, strconv.FormatUint(uint64(threadID), 10))
	hideWindow(cmd)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	code := 0
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if runErr != nil {
		return fmt.Errorf("inject: launch injector: %w", runErr)
	}

	status := decodeExitCode(code)
	if status != Success {
		log.Warn("injector reported failure", "status", status.String(), "code", code, "stderr", stderr.String())
		return &Error{Status: status, RawCode: code}
	}

	return nil
}
