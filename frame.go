//go:build windows

package gcapture

import (
	"context"
	"errors"
	"unsafe"

	"github.com/lanternops/gcapture/internal/gpudx"
)

// bgra8Size is sizeof(BGRA8), the 4-byte blue/green/red/alpha pixel layout
// the hook publishes frames in.
const bgra8Size = 4

// CaptureFrame produces one frame as a slice viewed at element type T,
// together with the source texture's (width, height). If the hook's
// restart event is absent or currently signalled, the launch sequence is
// re-run first. The returned slice borrows memory owned by the capture and
// is only valid until the next call to CaptureFrame or to Close.
func CaptureFrame[T any](c *Capture, ctx context.Context) ([]T, int, int, error) {
	if err := c.reacquireIfRestarted(ctx); err != nil {
		return nil, 0, 0, err
	}

	rect, width, height, err := c.acquirer.AcquireFrame(c.shared)
	if err != nil {
		return nil, 0, 0, classifyAcquireErr(err)
	}

	var zero T
	length := frameElementCount(rect.Pitch, height, unsafe.Sizeof(zero))

	slice := unsafe.Slice((*T)(unsafe.Pointer(rect.Bits)), length)
	return slice, int(width), int(height), nil
}

// frameElementCount implements the stride law: stride_T = pitch / sizeof
// (BGRA8); the produced slice length is stride_T * height * sizeof(BGRA8)
// / sizeof(T), exposing the raw surface at the caller's chosen element type
// without copying.
func frameElementCount(pitchBytes int32, height uint32, elemSize uintptr) uintptr {
	strideT := uintptr(pitchBytes) / bgra8Size
	return strideT * uintptr(height) * bgra8Size / elemSize
}

// reacquireIfRestarted implements the capture_frame restart check: an
// absent or signalled restart event means the hook was restarted, so the
// launch sequence runs again before continuing.
func (c *Capture) reacquireIfRestarted(ctx context.Context) error {
	if !c.launched || c.restartEvent == nil {
		return c.TryLaunch(ctx)
	}

	signalled, err := c.restartEvent.Wait(0)
	if err != nil || signalled {
		return c.TryLaunch(ctx)
	}
	return nil
}

// classifyAcquireErr maps the GPU helper's sentinel errors onto the
// CaptureError taxonomy's CreateTexture and MapSurface kinds.
func classifyAcquireErr(err error) error {
	switch {
	case errors.Is(err, gpudx.ErrCreateStagingTexture):
		return newErr(KindCreateTexture, err)
	case errors.Is(err, gpudx.ErrMapSurface):
		return newErr(KindMapSurface, err)
	default:
		return newErr(KindUnknown, err)
	}
}
