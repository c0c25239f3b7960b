//go:build windows

// Package winobj wraps the named Windows kernel objects gcapture and the
// hook DLL rendezvous through: events, a keepalive mutex, shared-memory
// file mappings, and a diagnostics pipe. Every wrapper here mirrors a single
// Win32 object lifetime and is not safe for concurrent use by multiple
// goroutines on the same value.
package winobj

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32       = syscall.NewLazyDLL("kernel32.dll")
	procOpenEventA = kernel32.NewProc("OpenEventA")
)

// Event wraps a named, manual-reset Windows event opened (not created) by
// name — the hook DLL owns creation.
type Event struct {
	handle windows.Handle
	name   string
}

// OpenEvent opens an existing named event for signal + wait access. The
// object name is ANSI (OpenEventA), matching the hook DLL's own naming.
func OpenEvent(name string) (*Event, error) {
	namePtr, err := syscall.BytePtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("winobj: encode event name %q: %w", name, err)
	}

	ret, _, callErr := procOpenEventA.Call(
		uintptr(windows.EVENT_MODIFY_STATE|windows.SYNCHRONIZE),
		0,
		uintptr(unsafe.Pointer(namePtr)),
	)
	if ret == 0 {
		return nil, fmt.Errorf("winobj: open event %q: %w", name, callErr)
	}

	return &Event{handle: windows.Handle(ret), name: name}, nil
}

// Signal sets the event.
func (e *Event) Signal() error {
	if err := windows.SetEvent(e.handle); err != nil {
		return fmt.Errorf("winobj: signal event %q: %w", e.name, err)
	}
	return nil
}

// Wait blocks until the event is signaled or timeoutMillis elapses
// (windows.INFINITE to block forever). Returns true if signaled, false on
// timeout.
func (e *Event) Wait(timeoutMillis uint32) (bool, error) {
	result, err := windows.WaitForSingleObject(e.handle, timeoutMillis)
	switch result {
	case windows.WAIT_OBJECT_0:
		return true, nil
	case uint32(windows.WAIT_TIMEOUT):
		return false, nil
	default:
		if err == nil {
			err = fmt.Errorf("unexpected wait result %d", result)
		}
		return false, fmt.Errorf("winobj: wait event %q: %w", e.name, err)
	}
}

// Close releases the underlying handle.
func (e *Event) Close() error {
	if e.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(e.handle)
	e.handle = 0
	return err
}
