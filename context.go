//go:build windows

package gcapture

import (
	"github.com/lanternops/gcapture/internal/artifacts"
	"github.com/lanternops/gcapture/internal/gpudx"
	"github.com/lanternops/gcapture/internal/health"
	"github.com/lanternops/gcapture/internal/hookinfo"
	"github.com/lanternops/gcapture/internal/winobj"
)

// CaptureConfig is the minimal configuration a Capture needs; it is
// independent of any host application's on-disk configuration format.
type CaptureConfig struct {
	// WindowTitle is the exact top-level window title to locate.
	WindowTitle string
	// AntiCheatCompatible selects the injector's anti-cheat-compatible
	// injection mode (argument "1") over its default mode ("0").
	AntiCheatCompatible bool
	// CaptureOverlay asks the hook to additionally capture overlay layers.
	CaptureOverlay bool
	// Artifacts supplies the hook DLL, injector, and offset-loader bytes.
	// Defaults to artifacts.Embedded.
	Artifacts artifacts.Source
	// ArtifactDir is the directory artifacts are materialized into. Empty
	// means the current working directory.
	ArtifactDir string
	// ArtifactByHash content-addresses materialized artifacts under
	// ArtifactDir so distinct binary revisions never collide.
	ArtifactByHash bool
}

func (c CaptureConfig) artifactPolicy() artifacts.PathPolicy {
	return artifacts.PathPolicy{Dir: c.ArtifactDir, ByHash: c.ArtifactByHash}
}

func (c CaptureConfig) artifactSource() artifacts.Source {
	if c.Artifacts != nil {
		return c.Artifacts
	}
	return artifacts.Embedded
}

// Capture is a single dormant-or-live attachment to one target process's
// graphics hook. It is safe to move between goroutines but its methods must
// not be called concurrently from more than one goroutine at a time.
type Capture struct {
	cfg CaptureConfig

	pid uint32
	tid uint32

	keepalive *winobj.Mutex
	pipe      *winobj.PipeServer

	restartEvent *winobj.Event
	stopEvent    *winobj.Event
	initEvent    *winobj.Event
	readyEvent   *winobj.Event
	exitEvent    *winobj.Event

	hookInfoMapping *winobj.FileMapping[hookinfo.HookInfo]
	textureMapping  *winobj.FileMapping[hookinfo.SharedTextureData]

	device   *gpudx.Device
	shared   *gpudx.SharedResource
	acquirer *gpudx.Acquirer

	health *health.Monitor

	launched bool
}

// New constructs a dormant capture for the given window title. It performs
// no I/O; call TryLaunch to attach.
func New(windowTitle string) *Capture {
	return NewWithConfig(CaptureConfig{WindowTitle: windowTitle})
}

// NewWithConfig constructs a dormant capture from an explicit configuration.
func NewWithConfig(cfg CaptureConfig) *Capture {
	return &Capture{cfg: cfg, health: health.NewMonitor()}
}

// Health returns the capture's current health monitor. Its "launch"
// component records the outcome of the most recent TryLaunch; frame
// acquisition is not recorded.
func (c *Capture) Health() *health.Monitor {
	return c.health
}
