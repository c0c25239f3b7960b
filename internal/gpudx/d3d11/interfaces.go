//go:build windows

// Package d3d11 is a pure-Go, cgo-free binding of the small subset of the
// Direct3D11 and DXGI COM interfaces gcapture needs to open a cross-process
// shared texture and read it back on the CPU: device creation, staging-copy
// creation, CopyResource, and Map/Unmap. Every interface is represented the
// same way: a Go struct holding the raw COM pointer (self), with a private
// vtbl() accessor that reinterprets the first 8 bytes at that address as
// the interface's vtable pointer, then invokes a method field via
// syscall.Syscall/Syscall6/Syscall9. No cgo, no generated bindings.
package d3d11

import "unsafe"

// iUnknownVtbl is the 3-method head shared by every COM interface.
type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// deviceChildVtbl is ID3D11DeviceChild: IUnknown(3) + 4.
type deviceChildVtbl struct {
	iUnknownVtbl
	GetDevice               uintptr
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
}

// resourceVtbl is ID3D11Resource: ID3D11DeviceChild(7) + 3.
type resourceVtbl struct {
	deviceChildVtbl
	GetType             uintptr
	SetEvictionPriority uintptr
	GetEvictionPriority uintptr
}

// texture2DVtbl is ID3D11Texture2D: ID3D11Resource(10) + 1.
type texture2DVtbl struct {
	resourceVtbl
	GetDesc uintptr
}

// deviceVtbl is ID3D11Device: IUnknown(3) + 40 methods.
type deviceVtbl struct {
	iUnknownVtbl
	CreateBuffer                         uintptr
	CreateTexture1D                      uintptr
	CreateTexture2D                      uintptr
	CreateTexture3D                      uintptr
	CreateShaderResourceView             uintptr
	CreateUnorderedAccessView            uintptr
	CreateRenderTargetView               uintptr
	CreateDepthStencilView               uintptr
	CreateInputLayout                    uintptr
	CreateVertexShader                   uintptr
	CreateGeometryShader                 uintptr
	CreateGeometryShaderWithStreamOutput uintptr
	CreatePixelShader                    uintptr
	CreateHullShader                     uintptr
	CreateDomainShader                   uintptr
	CreateComputeShader                  uintptr
	CreateClassLinkage                   uintptr
	CreateBlendState                     uintptr
	CreateDepthStencilState              uintptr
	CreateRasterizerState                uintptr
	CreateSamplerState                   uintptr
	CreateQuery                          uintptr
	CreatePredicate                      uintptr
	CreateCounter                        uintptr
	CreateDeferredContext                uintptr
	OpenSharedResource                   uintptr
	CheckFormatSupport                   uintptr
	CheckMultisampleQualityLevels        uintptr
	CheckCounterInfo                     uintptr
	CheckCounter                         uintptr
	CheckFeatureSupport                  uintptr
	GetPrivateData                       uintptr
	SetPrivateData                       uintptr
	SetPrivateDataInterface              uintptr
	GetFeatureLevel                      uintptr
	GetCreationFlags                     uintptr
	GetDeviceRemovedReason               uintptr
	GetImmediateContext                  uintptr
	SetExceptionMode                     uintptr
	GetExceptionMode                     uintptr
}

// deviceContextVtbl is ID3D11DeviceContext: ID3D11DeviceChild(7) + the
// methods up to and including CopyResource; later methods
// (UpdateSubresource, clears, dispatch, ...) are never called and are
// omitted rather than padded, since nothing in this package indexes past
// CopyResource.
type deviceContextVtbl struct {
	deviceChildVtbl
	VSSetConstantBuffers                       uintptr
	PSSetShaderResources                       uintptr
	PSSetShader                                uintptr
	PSSetSamplers                              uintptr
	VSSetShader                                uintptr
	DrawIndexed                                uintptr
	Draw                                       uintptr
	Map                                        uintptr
	Unmap                                      uintptr
	PSSetConstantBuffers                       uintptr
	IASetInputLayout                           uintptr
	IASetVertexBuffers                         uintptr
	IASetIndexBuffer                           uintptr
	DrawIndexedInstanced                       uintptr
	DrawInstanced                              uintptr
	GSSetConstantBuffers                       uintptr
	GSSetShader                                uintptr
	IASetPrimitiveTopology                     uintptr
	VSSetShaderResources                       uintptr
	VSSetSamplers                              uintptr
	Begin                                      uintptr
	End                                        uintptr
	GetData                                    uintptr
	SetPredication                             uintptr
	GSSetShaderResources                       uintptr
	GSSetSamplers                              uintptr
	OMSetRenderTargets                         uintptr
	OMSetRenderTargetsAndUnorderedAccessViews  uintptr
	OMSetBlendState                            uintptr
	OMSetDepthStencilState                     uintptr
	SOSetTargets                               uintptr
	DrawAuto                                   uintptr
	DrawIndexedInstancedIndirect               uintptr
	DrawInstancedIndirect                      uintptr
	Dispatch                                   uintptr
	DispatchIndirect                           uintptr
	RSSetState                                 uintptr
	RSSetViewports                             uintptr
	RSSetScissorRects                          uintptr
	CopySubresourceRegion                      uintptr
	CopyResource                               uintptr
}

// dxgiObjectVtbl is IDXGIObject: IUnknown(3) + 4.
type dxgiObjectVtbl struct {
	iUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

// dxgiDeviceSubObjectVtbl is IDXGIDeviceSubObject: IDXGIObject(7) + 1.
type dxgiDeviceSubObjectVtbl struct {
	dxgiObjectVtbl
	GetDevice uintptr
}

// dxgiSurfaceVtbl is IDXGISurface: IDXGIDeviceSubObject(8) + 3.
type dxgiSurfaceVtbl struct {
	dxgiDeviceSubObjectVtbl
	GetDesc uintptr
	Map     uintptr
	Unmap   uintptr
}

// dxgiSurface1Vtbl is IDXGISurface1: IDXGISurface(11) + 2.
type dxgiSurface1Vtbl struct {
	dxgiSurfaceVtbl
	GetDC     uintptr
	ReleaseDC uintptr
}

// Resource wraps a raw ID3D11Resource COM pointer.
type Resource struct{ self uintptr }

// Texture2D wraps a raw ID3D11Texture2D COM pointer.
type Texture2D struct{ self uintptr }

// Device wraps a raw ID3D11Device COM pointer.
type Device struct{ self uintptr }

// DeviceContext wraps a raw ID3D11DeviceContext COM pointer.
type DeviceContext struct{ self uintptr }

// Surface1 wraps a raw IDXGISurface1 COM pointer.
type Surface1 struct{ self uintptr }

func (r *Resource) vtbl() *resourceVtbl { return *(**resourceVtbl)(unsafe.Pointer(r.self)) }
func (t *Texture2D) vtbl() *texture2DVtbl { return *(**texture2DVtbl)(unsafe.Pointer(t.self)) }
func (d *Device) vtbl() *deviceVtbl { return *(**deviceVtbl)(unsafe.Pointer(d.self)) }
func (c *DeviceContext) vtbl() *deviceContextVtbl {
	return *(**deviceContextVtbl)(unsafe.Pointer(c.self))
}
func (s *Surface1) vtbl() *dxgiSurface1Vtbl { return *(**dxgiSurface1Vtbl)(unsafe.Pointer(s.self)) }
