//go:build windows

package d3d11

import "syscall"

// Release decrements the COM reference count.
func (r *Resource) Release() uint32 {
	ret, _, _ := syscall.Syscall(r.vtbl().Release, 1, r.self, 0, 0)
	return uint32(ret)
}
