//go:build windows

package d3d11

import (
	"syscall"
	"unsafe"
)

// Usage values for D3D11_USAGE.
const (
	UsageDefault uint32 = 0
	UsageStaging uint32 = 3
)

// CPU access flags for D3D11_CPU_ACCESS_FLAG.
const (
	CPUAccessWrite uint32 = 0x10000
	CPUAccessRead  uint32 = 0x20000
)

// Texture2DDesc mirrors D3D11_TEXTURE2D_DESC field-for-field;
// ID3D11Device::CreateTexture2D takes a pointer to this struct directly, so its layout
// must match the native struct exactly.
type Texture2DDesc struct {
	Width          uint32
	Height         uint32
	Mip            uint32
	ArraySize      uint32
	Format         uint32
	SampleCount    uint32
	SampleQuality  uint32
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// GetDesc retrieves the texture's description. Used to read Width/Height/
// Format off an opened shared texture before sizing the staging copy.
func (t *Texture2D) GetDesc() Texture2DDesc {
	var desc Texture2DDesc
	syscall.Syscall(t.vtbl().GetDesc, 2, t.self, uintptr(unsafe.Pointer(&desc)), 0)
	return desc
}
