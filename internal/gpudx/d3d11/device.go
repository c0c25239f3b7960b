//go:build windows

package d3d11

import (
	"syscall"
	"unsafe"
)

// Release decrements the COM reference count. Callers release every
// wrapper obtained from this package exactly once, typically via defer.
func (d *Device) Release() uint32 {
	v := d.vtbl()
	ret, _, _ := syscall.Syscall(v.Release, 1, d.self, 0, 0)
	return uint32(ret)
}

// ImmediateContext returns the device's immediate context wrapper. Since
// CreateDevice already returns the context alongside the device, this is
// provided only for callers that obtained a Device some other way.
func (d *Device) ImmediateContext() *DeviceContext {
	v := d.vtbl()
	var ctx uintptr
	syscall.Syscall(v.GetImmediateContext, 2, d.self, uintptr(unsafe.Pointer(&ctx)), 0)
	return &DeviceContext{self: ctx}
}

// OpenSharedResource opens a cross-process D3D11 resource by its NT shared
// handle (as published by the hook DLL in SharedTextureData) and returns it
// as an ID3D11Texture2D.
func (d *Device) OpenSharedResource(handle uintptr) (*Texture2D, error) {
	v := d.vtbl()
	iid := IID_ID3D11Texture2D
	var out uintptr

	ret, _, _ := syscall.Syscall6(v.OpenSharedResource, 4,
		d.self,
		handle,
		uintptr(unsafe.Pointer(&iid)),
		uintptr(unsafe.Pointer(&out)),
		0, 0)
	if ret != 0 {
		return nil, &HRESULTError{Call: "ID3D11Device::OpenSharedResource", HR: ret}
	}
	return &Texture2D{self: out}, nil
}

// CreateStagingTexture2D creates a CPU-readable staging copy of desc, with
// Usage=STAGING, BindFlags=0, CPUAccessFlags=READ, MiscFlags=0 — the layout
// CopyResource + Map require for CPU pixel access.
func (d *Device) CreateStagingTexture2D(desc Texture2DDesc) (*Texture2D, error) {
	desc.Usage = UsageStaging
	desc.BindFlags = 0
	desc.CPUAccessFlags = CPUAccessRead
	desc.MiscFlags = 0

	v := d.vtbl()
	var out uintptr
	ret, _, _ := syscall.Syscall6(v.CreateTexture2D, 4,
		d.self,
		uintptr(unsafe.Pointer(&desc)),
		0, // pInitialData
		uintptr(unsafe.Pointer(&out)),
		0, 0)
	if ret != 0 {
		return nil, &HRESULTError{Call: "ID3D11Device::CreateTexture2D", HR: ret}
	}
	return &Texture2D{self: out}, nil
}
