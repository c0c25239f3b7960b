//go:build windows

package d3d11

import (
	"syscall"
	"unsafe"
)

const MapRead = 1 // DXGI_MAP_READ

// MappedRect mirrors DXGI_MAPPED_RECT: a row pitch in bytes and a pointer
// to the first mapped byte.
type MappedRect struct {
	Pitch int32
	Bits  uintptr
}

// Release decrements the COM reference count.
func (s *Surface1) Release() uint32 {
	ret, _, _ := syscall.Syscall(s.vtbl().Release, 1, s.self, 0, 0)
	return uint32(ret)
}

// Map locks the surface for CPU read access and returns the row pitch and
// base pointer of the mapped memory.
func (s *Surface1) Map(flags uint32) (MappedRect, error) {
	var rect MappedRect
	ret, _, _ := syscall.Syscall(s.vtbl().Map, 3, s.self, uintptr(unsafe.Pointer(&rect)), uintptr(flags))
	if ret != 0 {
		return MappedRect{}, &HRESULTError{Call: "IDXGISurface1::Map", HR: ret}
	}
	return rect, nil
}

// Unmap releases the CPU lock taken by Map.
func (s *Surface1) Unmap() {
	syscall.Syscall(s.vtbl().Unmap, 1, s.self, 0, 0)
}
