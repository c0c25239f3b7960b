//go:build windows

// Package gpudx is the GPU resource helper: it wraps the pure-Go D3D11/DXGI
// bindings in internal/gpudx/d3d11 with the narrow sequence gcapture needs —
// device bring-up, opening a cross-process shared texture, and copying it
// into a CPU-readable staging texture for mapped read access.
package gpudx

import (
	"github.com/lanternops/gcapture/internal/gpudx/d3d11"
	"github.com/lanternops/gcapture/internal/logging"
)

var log = logging.L("gpudx")

// Device owns a D3D11 device and its immediate context, created at module
// bring-up and held for the lifetime of a capture.
type Device struct {
	dev *d3d11.Device
	ctx *d3d11.DeviceContext
}

// CreateDevice opens a hardware device at the default feature levels and
// returns it together with its immediate context.
func CreateDevice() (*Device, error) {
	dev, ctx, err := d3d11.CreateDevice()
	if err != nil {
		return nil, err
	}
	return &Device{dev: dev, ctx: ctx}, nil
}

// Close releases the device and its context. Safe to call once the caller
// is done with every resource and acquirer obtained from this device.
func (d *Device) Close() {
	if d.ctx != nil {
		d.ctx.Release()
		d.ctx = nil
	}
	if d.dev != nil {
		d.dev.Release()
		d.dev = nil
	}
}
