//go:build windows

package winobj

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Mutex wraps a named Windows mutex used purely as a keepalive signal: its
// existence (not its lock state) tells the hook DLL a client is still
// attached. CreateMutex is used rather than Open so the first client to
// attach creates it and later calls simply observe ERROR_ALREADY_EXISTS.
type Mutex struct {
	handle windows.Handle
	name   string
}

// CreateMutex creates (or attaches to an already-created) named mutex.
func CreateMutex(name string) (*Mutex, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("winobj: encode mutex name %q: %w", name, err)
	}

	h, err := windows.CreateMutex(nil, false, namePtr)
	if err != nil && err != windows.ERROR_ALREADY_EXISTS {
		return nil, fmt.Errorf("winobj: create mutex %q: %w", name, err)
	}

	return &Mutex{handle: h, name: name}, nil
}

// Close releases the underlying handle, ending this client's keepalive.
func (m *Mutex) Close() error {
	if m.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(m.handle)
	m.handle = 0
	return err
}
