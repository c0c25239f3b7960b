//go:build windows

package d3d11

import (
	"strings"
	"testing"
	"unsafe"
)

func TestHRESULTErrorFormatsHexCode(t *testing.T) {
	err := &HRESULTError{Call: "ID3D11Device::CreateTexture2D", HR: 0x80070005}
	msg := err.Error()
	if !strings.Contains(msg, "CreateTexture2D") {
		t.Errorf("error message %q does not mention the failing call", msg)
	}
	if !strings.Contains(msg, "80070005") {
		t.Errorf("error message %q does not include the hresult", msg)
	}
}

func TestInterfaceGUIDsAreDistinct(t *testing.T) {
	guids := []GUID{
		IID_IDXGIDevice,
		IID_IDXGISurface,
		IID_IDXGISurface1,
		IID_ID3D11Texture2D,
		IID_ID3D11Resource,
	}
	for i := range guids {
		for j := range guids {
			if i == j {
				continue
			}
			if guids[i] == guids[j] {
				t.Errorf("guid %d and %d are identical: %+v", i, j, guids[i])
			}
		}
	}
}

func TestVtableChainSizesMatchMethodCounts(t *testing.T) {
	// Each embedding step adds exactly the methods documented in its
	// comment; a wrong method count silently misaligns every later field.
	const ptrSize = 8 // amd64 uintptr

	cases := []struct {
		name    string
		size    uintptr
		methods int
	}{
		{"iUnknownVtbl", unsafe.Sizeof(iUnknownVtbl{}), 3},
		{"deviceChildVtbl", unsafe.Sizeof(deviceChildVtbl{}), 7},
		{"resourceVtbl", unsafe.Sizeof(resourceVtbl{}), 10},
		{"texture2DVtbl", unsafe.Sizeof(texture2DVtbl{}), 11},
		{"dxgiObjectVtbl", unsafe.Sizeof(dxgiObjectVtbl{}), 7},
		{"dxgiDeviceSubObjectVtbl", unsafe.Sizeof(dxgiDeviceSubObjectVtbl{}), 8},
		{"dxgiSurfaceVtbl", unsafe.Sizeof(dxgiSurfaceVtbl{}), 11},
		{"dxgiSurface1Vtbl", unsafe.Sizeof(dxgiSurface1Vtbl{}), 13},
	}
	for _, c := range cases {
		want := uintptr(c.methods * ptrSize)
		if c.size != want {
			t.Errorf("%s: size = %d bytes (%d methods), want %d bytes (%d methods)",
				c.name, c.size, c.size/ptrSize, want, c.methods)
		}
	}
}
