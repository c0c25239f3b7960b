// Package hookinfo defines the named kernel objects and the shared-memory
// control block (HookInfo) gcapture and the graphics-hook DLL rendezvous
// through. Every constant and field order here is a binary/textual contract
// with the hook and must not change independently of it.
package hookinfo

import (
	"fmt"
	"unsafe"

	"github.com/lanternops/gcapture/internal/offsets"
)

// Named-object base names. The actual kernel object name is one of these
// suffixed with the target process's decimal PID (see Name).
const (
	EventCaptureRestart = "CaptureHook_Restart"
	EventCaptureStop    = "CaptureHook_Stop"
	EventHookReady      = "CaptureHook_HookReady"
	EventHookExit       = "CaptureHook_Exit"
	EventHookInit       = "CaptureHook_Initialize"
	WindowHookKeepalive = "CaptureHook_KeepAlive"
	MutexTexture1       = "CaptureHook_TextureMutex1"
	MutexTexture2       = "CaptureHook_TextureMutex2"
	ShmemHookInfo       = "CaptureHook_HookInfo"
	ShmemTexture        = "CaptureHook_Texture"
	PipeName            = "CaptureHook_Pipe"
)

// Name composes a named-object base with the target process's PID, matching
// the hook DLL's own naming convention exactly (decimal, no separator).
func Name(base string, pid uint32) string {
	return fmt.Sprintf("%s%d", base, pid)
}

// TextureName composes the per-texture shared-memory mapping name the hook
// publishes once it knows its window handle and map id.
func TextureName(window, mapID uint32) string {
	return fmt.Sprintf("%s_%d_%d", ShmemTexture, window, mapID)
}

// CaptureType enumerates how the hook publishes frames: through shared
// memory or through a shared GPU texture.
type CaptureType uint32

const (
	CaptureTypeMemory CaptureType = iota
	CaptureTypeTexture
)

// SharedTextureData is the 4-byte control block mapped over ShmemTexture: a
// single D3D11 shared-resource handle, refreshed by the hook every frame.
type SharedTextureData struct {
	TexHandle uint32
}

// HookInfo is the 648-byte control block mapped over ShmemHookInfo. Field
// order matches the hook DLL's struct exactly; unused_* fields are retained
// only because removing them would shift every field after them.
type HookInfo struct {
	HookVerMajor   uint32
	HookVerMinor   uint32
	CaptureType    CaptureType
	Window         uint32
	Format         uint32
	CX             uint32
	CY             uint32
	UnusedBaseCX   uint32
	UnusedBaseCY   uint32
	Pitch          uint32
	MapID          uint32
	MapSize        uint32
	Flip           uint32
	FrameInterval  uint32
	UnusedUseScale uint32
	ForceShmem     uint32
	CaptureOverlay uint32

	GraphicsOffsets offsets.GraphicOffsets

	Reserved [128]uint32
}

func init() {
	if unsafe.Sizeof(SharedTextureData{}) != 4 {
		panic("hookinfo: SharedTextureData layout size changed")
	}
	if unsafe.Sizeof(HookInfo{}) != 648 {
		panic("hookinfo: HookInfo layout size changed")
	}
}
