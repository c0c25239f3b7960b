//go:build windows

package d3d11

// GUID mirrors the Win32 GUID/IID layout exactly (16 bytes).
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

var (
	IID_IDXGIDevice          = GUID{0x54ec77fa, 0x1377, 0x44e6, [8]byte{0x8c, 0x32, 0x88, 0xfd, 0x5f, 0x44, 0xc8, 0x4c}}
	IID_IDXGISurface         = GUID{0xcafcb56c, 0x6ac3, 0x4889, [8]byte{0xbf, 0x47, 0x9e, 0x23, 0xbb, 0xd2, 0x60, 0xec}}
	IID_IDXGISurface1        = GUID{0x4ae63092, 0x6327, 0x4c1b, [8]byte{0x80, 0xae, 0xbf, 0xe1, 0x2e, 0xa3, 0x2b, 0x86}}
	IID_ID3D11Texture2D      = GUID{0x6f15aaf2, 0xd208, 0x4e89, [8]byte{0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}}
	IID_ID3D11Resource       = GUID{0xdc8e63f3, 0xd12b, 0x4952, [8]byte{0xb4, 0x7b, 0x5e, 0x45, 0x02, 0x6a, 0x86, 0x2d}}
)
