// Package offsets loads the per-graphics-API function offsets that the hook
// DLL needs in order to find the Present/Blt/Flip entry points to trampoline.
// The offsets themselves are discovered by a small external helper binary
// (not part of this module) whose stdout this package parses.
package offsets

import "unsafe"

// D3D8 holds the single function pointer offset the hook needs to trampoline
// Direct3D8's vtable.
type D3D8 struct {
	Present uint32
}

// D3D9 holds the Direct3D9 entry-point offsets, including the Ex variant
// introduced in the Vista-era D3D9Ex runtime and the vtable-class-detection
// fields the hook uses to tell a D3D9 device from a D3D9Ex one.
type D3D9 struct {
	Present         uint32
	PresentEx       uint32
	PresentSwap     uint32
	ClassOffset     uint32
	IsExClassOffset uint32
}

// DXGI holds the DXGI swap-chain offsets shared by D3D10/D3D11/D3D12 titles.
type DXGI struct {
	Present  uint32
	Present1 uint32
	Resize   uint32
}

// DDraw holds the legacy DirectDraw surface vtable offsets.
type DDraw struct {
	SurfaceCreate     uint32
	SurfaceRestore    uint32
	SurfaceRelease    uint32
	SurfaceUnlock     uint32
	SurfaceBlt        uint32
	SurfaceFlip       uint32
	SurfaceSetPalette uint32
	SurfaceLock       uint32
}

// GraphicOffsets is the fixed 68-byte layout embedded verbatim into
// HookInfo's shared-memory control block. Field order and sizes are a
// binary contract with the hook DLL and must never change.
type GraphicOffsets struct {
	D3D8  D3D8  // 4 bytes
	D3D9  D3D9  // 20 bytes
	DXGI  DXGI  // 12 bytes
	DDraw DDraw // 32 bytes
}

func init() {
	if unsafe.Sizeof(D3D8{}) != 4 {
		panic("offsets: D3D8 layout size changed")
	}
	if unsafe.Sizeof(D3D9{}) != 20 {
		panic("offsets: D3D9 layout size changed")
	}
	if unsafe.Sizeof(DXGI{}) != 12 {
		panic("offsets: DXGI layout size changed")
	}
	if unsafe.Sizeof(DDraw{}) != 32 {
		panic("offsets: DDraw layout size changed")
	}
	if unsafe.Sizeof(GraphicOffsets{}) != 68 {
		panic("offsets: GraphicOffsets layout size changed")
	}
}

// ParsedOffsets is the TOML-decoded shape of the offset loader's stdout.
// It mirrors GraphicOffsets field-for-field; the loader never reports
// DDraw offsets, so that block stays zeroed.
type ParsedOffsets struct {
	D3D8 struct {
		Present uint32 `toml:"present"`
	} `toml:"d3d8"`
	D3D9 struct {
		Present         uint32 `toml:"present"`
		PresentEx       uint32 `toml:"present_ex"`
		PresentSwap     uint32 `toml:"present_swap"`
		ClassOffset     uint32 `toml:"class_offset"`
		IsExClassOffset uint32 `toml:"is_ex_class_offset"`
	} `toml:"d3d9"`
	DXGI struct {
		Present  uint32 `toml:"present"`
		Present1 uint32 `toml:"present1"`
		Resize   uint32 `toml:"resize"`
	} `toml:"dxgi"`
}

// ToGraphicOffsets converts the parsed TOML document into the binary layout
// shared with the hook. DDraw is intentionally left zeroed.
func (p ParsedOffsets) ToGraphicOffsets() GraphicOffsets {
	var g GraphicOffsets
	g.D3D8.Present = p.D3D8.Present
	g.D3D9.Present = p.D3D9.Present
	g.D3D9.PresentEx = p.D3D9.PresentEx
	g.D3D9.PresentSwap = p.D3D9.PresentSwap
	g.D3D9.ClassOffset = p.D3D9.ClassOffset
	g.D3D9.IsExClassOffset = p.D3D9.IsExClassOffset
	g.DXGI.Present = p.DXGI.Present
	g.DXGI.Present1 = p.DXGI.Present1
	g.DXGI.Resize = p.DXGI.Resize
	return g
}
