//go:build windows

// Package winproc locates the target window a Capture wants to attach to,
// resolving it down to the HWND, owning process ID, and owning thread ID the
// rest of the orchestrator needs.
package winproc

import (
	"fmt"
	"unsafe"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/windows"

	"github.com/lanternops/gcapture/internal/logging"
)

var log = logging.L("winproc")

var (
	user32                      = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW              = user32.NewProc("FindWindowW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
)

// Located describes a successfully located target window.
type Located struct {
	HWND     uintptr
	ProcessID uint32
	ThreadID  uint32
}

// Locate finds a top-level window by exact title match and resolves its
// owning process and thread IDs. ok is false if no matching window exists.
func Locate(windowTitle string) (loc Located, ok bool, err error) {
	titlePtr, err := windows.UTF16PtrFromString(windowTitle)
	if err != nil {
		return Located{}, false, fmt.Errorf("winproc: encode window title: %w", err)
	}

	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	if hwnd == 0 {
		return Located{}, false, nil
	}

	var pid uint32
	tid, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if tid == 0 {
		return Located{}, false, fmt.Errorf("winproc: GetWindowThreadProcessId failed for %q", windowTitle)
	}

	loc = Located{HWND: hwnd, ProcessID: pid, ThreadID: uint32(tid)}

	if p, perr := process.NewProcess(int32(pid)); perr == nil {
		if name, nerr := p.Name(); nerr == nil {
			log.Info("located target window", "window", windowTitle, "pid", pid, "exe", name)
		}
	}

	return loc, true, nil
}
