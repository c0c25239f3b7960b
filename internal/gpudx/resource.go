//go:build windows

package gpudx

import (
	"errors"
	"fmt"

	"github.com/lanternops/gcapture/internal/gpudx/d3d11"
)

// ErrCreateStagingTexture and ErrMapSurface are sentinel errors distinguishing
// the two ways AcquireFrame can fail; callers match them with errors.Is.
var (
	ErrCreateStagingTexture = errors.New("gpudx: create staging texture failed")
	ErrMapSurface           = errors.New("gpudx: map surface failed")
)

// SharedResource wraps the cross-process D3D11 texture opened from the
// hook's published NT handle.
type SharedResource struct {
	tex *d3d11.Texture2D
}

// OpenSharedResource opens a cross-process resource by its shared handle.
func (d *Device) OpenSharedResource(handle uintptr) (*SharedResource, error) {
	tex, err := d.dev.OpenSharedResource(handle)
	if err != nil {
		return nil, err
	}
	return &SharedResource{tex: tex}, nil
}

// Close releases the shared texture handle.
func (r *SharedResource) Close() {
	if r.tex != nil {
		r.tex.Release()
		r.tex = nil
	}
}

// Acquirer produces mapped CPU-readable frames from a shared resource,
// creating a fresh staging texture on each call. The mapping and staging
// texture from the previous call are released at the start of the next
// AcquireFrame, and on Close;
// a returned MappedRect therefore borrows memory valid only until the next
// AcquireFrame or Close.
type Acquirer struct {
	device *Device

	staging *d3d11.Texture2D
	surface *d3d11.Surface1
	mapped  bool
}

// NewAcquirer returns a frame acquirer bound to device.
func NewAcquirer(device *Device) *Acquirer {
	return &Acquirer{device: device}
}

// AcquireFrame reads shared's texture description, creates a CPU-readable
// staging texture with the same layout, copies the shared texture into it on
// the GPU, and maps the staging surface for CPU read. It returns the mapped
// rectangle and the source texture's width and height.
func (a *Acquirer) AcquireFrame(shared *SharedResource) (d3d11.MappedRect, uint32, uint32, error) {
	a.releasePrevious()

	desc := shared.tex.GetDesc()

	staging, err := a.device.dev.CreateStagingTexture2D(desc)
	if err != nil {
		return d3d11.MappedRect{}, 0, 0, fmt.Errorf("%w: %v", ErrCreateStagingTexture, err)
	}
	staging.SetEvictionPriority(d3d11.EvictionPriorityMaximum)

	a.device.ctx.CopyResource(staging.AsResource(), shared.tex.AsResource())

	surface, err := staging.QuerySurface1()
	if err != nil {
		staging.Release()
		return d3d11.MappedRect{}, 0, 0, fmt.Errorf("%w: %v", ErrMapSurface, err)
	}

	rect, err := surface.Map(d3d11.MapRead)
	if err != nil {
		surface.Release()
		staging.Release()
		return d3d11.MappedRect{}, 0, 0, fmt.Errorf("%w: %v", ErrMapSurface, err)
	}

	a.staging = staging
	a.surface = surface
	a.mapped = true

	return rect, desc.Width, desc.Height, nil
}

// releasePrevious unmaps and releases the previous call's staging texture,
// if any. Called at the start of each AcquireFrame and from Close.
func (a *Acquirer) releasePrevious() {
	if a.surface != nil {
		if a.mapped {
			a.surface.Unmap()
			a.mapped = false
		}
		a.surface.Release()
		a.surface = nil
	}
	if a.staging != nil {
		a.staging.Release()
		a.staging = nil
	}
}

// Close releases the last mapped surface and staging texture, if any.
func (a *Acquirer) Close() {
	a.releasePrevious()
}
