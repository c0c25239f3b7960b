//go:build windows

package winobj

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// FileMapping is a generic wrapper over a named file mapping whose view is
// exactly sizeof(T) bytes — the control-block layouts gcapture shares with
// the hook (HookInfo, SharedTextureData).
type FileMapping[T any] struct {
	handle windows.Handle
	view   uintptr
	name   string
}

// OpenFileMapping opens an existing named file mapping (created by the
// hook) and maps a read/write view of exactly sizeof(T) bytes.
func OpenFileMapping[T any](name string) (*FileMapping[T], error) {
	var zero T
	size := uintptr(unsafe.Sizeof(zero))

	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("winobj: encode mapping name %q: %w", name, err)
	}

	h, err := windows.OpenFileMapping(windows.FILE_MAP_ALL_ACCESS, false, namePtr)
	if err != nil {
		return nil, fmt.Errorf("winobj: open file mapping %q: %w", name, err)
	}

	view, err := windows.MapViewOfFile(h, windows.FILE_MAP_ALL_ACCESS, 0, 0, size)
	if err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("winobj: map view of %q: %w", name, err)
	}

	return &FileMapping[T]{handle: h, view: view, name: name}, nil
}

// Ptr returns a pointer to the mapped view, valid until Close.
func (f *FileMapping[T]) Ptr() *T {
	return (*T)(unsafe.Pointer(f.view))
}

// Close unmaps the view and closes the mapping handle.
func (f *FileMapping[T]) Close() error {
	var err error
	if f.view != 0 {
		err = windows.UnmapViewOfFile(f.view)
		f.view = 0
	}
	if f.handle != 0 {
		if cerr := windows.CloseHandle(f.handle); cerr != nil && err == nil {
			err = cerr
		}
		f.handle = 0
	}
	return err
}
