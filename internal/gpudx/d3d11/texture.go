//go:build windows

package d3d11

import (
	"syscall"
	"unsafe"
)

// EvictionPriority values for ID3D11Resource::SetEvictionPriority.
const EvictionPriorityMaximum = 0xC8000000

// Release decrements the COM reference count.
func (t *Texture2D) Release() uint32 {
	ret, _, _ := syscall.Syscall(t.vtbl().Release, 1, t.self, 0, 0)
	return uint32(ret)
}

// SetEvictionPriority tells the driver how reluctant it should be to evict
// this resource from video memory. gcapture sets EvictionPriorityMaximum on
// each CPU-readable staging texture so it is not paged out under memory
// pressure.
func (t *Texture2D) SetEvictionPriority(priority uint32) {
	syscall.Syscall(t.vtbl().SetEvictionPriority, 2, t.self, uintptr(priority), 0)
}

// QuerySurface1 obtains the IDXGISurface1 view of this texture, used for
// CPU Map/Unmap access to a staging texture's pixel data.
func (t *Texture2D) QuerySurface1() (*Surface1, error) {
	iid := IID_IDXGISurface1
	var out uintptr

	ret, _, _ := syscall.Syscall(t.vtbl().QueryInterface, 3,
		t.self,
		uintptr(unsafe.Pointer(&iid)),
		uintptr(unsafe.Pointer(&out)))
	if ret != 0 {
		return nil, &HRESULTError{Call: "ID3D11Texture2D::QueryInterface(IDXGISurface1)", HR: ret}
	}
	return &Surface1{self: out}, nil
}

// AsResource reinterprets this texture as its ID3D11Resource base — valid
// because they share the same underlying COM object and vtable prefix, not
// a QueryInterface call.
func (t *Texture2D) AsResource() *Resource {
	return &Resource{self: t.self}
}
