//go:build windows

package d3d11

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"
)

// HRESULTError wraps a non-zero HRESULT returned by a D3D11/DXGI call.
type HRESULTError struct {
	Call string
	HR   uintptr
}

func (e *HRESULTError) Error() string {
	return fmt.Sprintf("d3d11: %s failed, hresult=0x%08x", e.Call, uint32(e.HR))
}

const (
	driverTypeHardware = 1 // D3D_DRIVER_TYPE_HARDWARE
	sdkVersion         = 7 // D3D11_SDK_VERSION

	featureLevel11_0 = 0xb000
	featureLevel10_1 = 0xa100
	featureLevel10_0 = 0xa000
)

type lib struct {
	dll                *syscall.LazyDLL
	d3d11CreateDevice  *syscall.LazyProc
}

var (
	once       sync.Once
	loaded     *lib
	loadErr    error
)

func load() (*lib, error) {
	once.Do(func() {
		dll := syscall.NewLazyDLL("d3d11.dll")
		proc := dll.NewProc("D3D11CreateDevice")
		if err := proc.Find(); err != nil {
			loadErr = fmt.Errorf("d3d11: load d3d11.dll: %w", err)
			return
		}
		loaded = &lib{dll: dll, d3d11CreateDevice: proc}
	})
	return loaded, loadErr
}

// CreateDevice creates a hardware D3D11 device and its immediate context,
// requesting feature levels 11_0 down to 10_0 in order.
func CreateDevice() (*Device, *DeviceContext, error) {
	l, err := load()
	if err != nil {
		return nil, nil, err
	}

	levels := [3]uint32{featureLevel11_0, featureLevel10_1, featureLevel10_0}

	var device uintptr
	var context uintptr
	var obtainedLevel uint32

	ret, _, _ := l.d3d11CreateDevice.Call(
		0,                                  // pAdapter
		uintptr(driverTypeHardware),        // DriverType
		0,                                  // Software
		0,                                  // Flags
		uintptr(unsafe.Pointer(&levels[0])), // pFeatureLevels
		uintptr(len(levels)),               // FeatureLevels
		uintptr(sdkVersion),                // SDKVersion
		uintptr(unsafe.Pointer(&device)),   // ppDevice
		uintptr(unsafe.Pointer(&obtainedLevel)), // pFeatureLevel
		uintptr(unsafe.Pointer(&context)),  // ppImmediateContext
	)
	if ret != 0 {
		return nil, nil, &HRESULTError{Call: "D3D11CreateDevice", HR: ret}
	}

	return &Device{self: device}, &DeviceContext{self: context}, nil
}
