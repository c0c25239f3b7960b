package gcapture

import "fmt"

// Kind distinguishes the stage of the launch or frame-acquisition sequence
// that failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindProcessNotFound
	KindInject
	KindLoadGraphicOffsets
	KindCreatePipe
	KindCreateMutex
	KindCreateEvent
	KindCreateFileMapping
	KindCreateDevice
	KindOpenSharedResource
	KindCreateTexture
	KindMapSurface
)

func (k Kind) String() string {
	switch k {
	case KindProcessNotFound:
		return "ProcessNotFound"
	case KindInject:
		return "Inject"
	case KindLoadGraphicOffsets:
		return "LoadGraphicOffsets"
	case KindCreatePipe:
		return "CreatePipe"
	case KindCreateMutex:
		return "CreateMutex"
	case KindCreateEvent:
		return "CreateEvent"
	case KindCreateFileMapping:
		return "CreateFileMapping"
	case KindCreateDevice:
		return "CreateDevice"
	case KindOpenSharedResource:
		return "OpenSharedResource"
	case KindCreateTexture:
		return "CreateTexture"
	case KindMapSurface:
		return "MapSurface"
	default:
		return "Unknown"
	}
}

// CaptureError reports which stage of try_launch or capture_frame failed,
// wrapping the underlying cause.
type CaptureError struct {
	Kind Kind
	Err  error
}

func (e *CaptureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gcapture: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("gcapture: %s", e.Kind)
}

func (e *CaptureError) Unwrap() error { return e.Err }

func newErr(kind Kind, err error) *CaptureError {
	return &CaptureError{Kind: kind, Err: err}
}
