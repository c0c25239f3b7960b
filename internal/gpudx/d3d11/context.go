//go:build windows

package d3d11

import "syscall"

// Release decrements the COM reference count.
func (c *DeviceContext) Release() uint32 {
	ret, _, _ := syscall.Syscall(c.vtbl().Release, 1, c.self, 0, 0)
	return uint32(ret)
}

// CopyResource copies dst's entire contents from src — both must have
// identical dimensions and a compatible format. Used to copy the opened
// shared texture into a CPU-readable staging texture.
func (c *DeviceContext) CopyResource(dst, src *Resource) {
	syscall.Syscall(c.vtbl().CopyResource, 3, c.self, dst.self, src.self)
}
