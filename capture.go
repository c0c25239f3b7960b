//go:build windows

package gcapture

import (
	"context"
	"time"

	"github.com/lanternops/gcapture/internal/gpudx"
	"github.com/lanternops/gcapture/internal/health"
	"github.com/lanternops/gcapture/internal/hookinfo"
	"github.com/lanternops/gcapture/internal/inject"
	"github.com/lanternops/gcapture/internal/logging"
	"github.com/lanternops/gcapture/internal/offsets"
	"github.com/lanternops/gcapture/internal/winobj"
	"github.com/lanternops/gcapture/internal/winproc"
)

var log = logging.L("gcapture")

// pipeCloseTimeout bounds how long Close waits for the diagnostics pipe's
// background reader to drain on shutdown.
const pipeCloseTimeout = 2 * time.Second

// TryLaunch drives the full acquisition sequence: locate the target window,
// establish the keepalive mutex and diagnostics pipe, probe for (or inject)
// the hook, publish hook info, open coordination events, signal the hook to
// initialize, read its published texture handle, and bring up the GPU
// device. It is idempotent: calling it again after a successful launch
// re-acquires the hook's state, which is how a restart is recovered from.
func (c *Capture) TryLaunch(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			c.health.Update("launch", health.Unhealthy, err.Error())
		}
	}()

	loc, ok, err := winproc.Locate(c.cfg.WindowTitle)
	if err != nil {
		return newErr(KindProcessNotFound, err)
	}
	if !ok {
		return newErr(KindProcessNotFound, nil)
	}
	c.pid = loc.ProcessID
	c.tid = loc.ThreadID

	if err := c.acquireKeepalive(); err != nil {
		return err
	}
	if err := c.startPipe(); err != nil {
		return err
	}
	if err := c.probeOrInject(ctx); err != nil {
		return err
	}
	if err := c.publishHookInfo(ctx); err != nil {
		return err
	}
	if err := c.openCoordinationEvents(); err != nil {
		return err
	}
	c.signalInit()
	if err := c.readTextureHandle(); err != nil {
		return err
	}
	if err := c.bringUpGPU(); err != nil {
		return err
	}

	c.launched = true
	c.health.Update("launch", health.Healthy, "")
	return nil
}

func (c *Capture) acquireKeepalive() error {
	if c.keepalive != nil {
		return nil
	}
	m, err := winobj.CreateMutex(hookinfo.Name(hookinfo.WindowHookKeepalive, c.pid))
	if err != nil {
		return newErr(KindCreateMutex, err)
	}
	c.keepalive = m
	return nil
}

func (c *Capture) startPipe() error {
	if c.pipe != nil {
		return nil
	}
	p, err := winobj.Listen(hookinfo.Name(hookinfo.PipeName, c.pid), func(line string) {
		log.Debug("hook diagnostic", "pid", c.pid, "line", line)
	})
	if err != nil {
		return newErr(KindCreatePipe, err)
	}
	c.pipe = p
	return nil
}

// probeOrInject implements step 4: probe for an already-attached hook via
// its restart event, signalling it to re-publish and resume; otherwise
// inject the hook fresh.
func (c *Capture) probeOrInject(ctx context.Context) error {
	restartName := hookinfo.Name(hookinfo.EventCaptureRestart, c.pid)
	if ev, err := winobj.OpenEvent(restartName); err == nil {
		if serr := ev.Signal(); serr != nil {
			log.Warn("failed to signal restart event on warm reattach", "pid", c.pid, "error", serr)
		}
		ev.Close()
		return nil
	}

	if err := inject.Graphics(ctx, c.cfg.artifactSource(), c.cfg.artifactPolicy(), c.tid, c.cfg.AntiCheatCompatible); err != nil {
		return newErr(KindInject, err)
	}
	return nil
}

// publishHookInfo implements step 5: open the hook-info mapping (which must
// already exist) and write the fields this side owns.
func (c *Capture) publishHookInfo(ctx context.Context) error {
	mapping, err := winobj.OpenFileMapping[hookinfo.HookInfo](hookinfo.Name(hookinfo.ShmemHookInfo, c.pid))
	if err != nil {
		return newErr(KindCreateFileMapping, err)
	}

	gfx, err := offsets.Load(ctx, c.cfg.artifactSource(), c.cfg.artifactPolicy())
	if err != nil {
		mapping.Close()
		return newErr(KindLoadGraphicOffsets, err)
	}

	info := mapping.Ptr()
	info.GraphicsOffsets = gfx
	if c.cfg.CaptureOverlay {
		info.CaptureOverlay = 1
	} else {
		info.CaptureOverlay = 0
	}
	info.ForceShmem = 0
	info.UnusedUseScale = 0

	if c.hookInfoMapping != nil {
		c.hookInfoMapping.Close()
	}
	c.hookInfoMapping = mapping
	return nil
}

// openCoordinationEvents implements step 6: open and retain every
// coordination event used for the lifetime of the capture.
func (c *Capture) openCoordinationEvents() error {
	closeEvent(&c.restartEvent)
	closeEvent(&c.stopEvent)
	closeEvent(&c.initEvent)
	closeEvent(&c.readyEvent)
	closeEvent(&c.exitEvent)

	open := func(base string) (*winobj.Event, error) {
		return winobj.OpenEvent(hookinfo.Name(base, c.pid))
	}

	var err error
	if c.restartEvent, err = open(hookinfo.EventCaptureRestart); err != nil {
		return newErr(KindCreateEvent, err)
	}
	if c.stopEvent, err = open(hookinfo.EventCaptureStop); err != nil {
		return newErr(KindCreateEvent, err)
	}
	if c.initEvent, err = open(hookinfo.EventHookInit); err != nil {
		return newErr(KindCreateEvent, err)
	}
	if c.readyEvent, err = open(hookinfo.EventHookReady); err != nil {
		return newErr(KindCreateEvent, err)
	}
	if c.exitEvent, err = open(hookinfo.EventHookExit); err != nil {
		return newErr(KindCreateEvent, err)
	}
	return nil
}

// signalInit implements step 7: best-effort signal telling the hook to
// build its shared texture now. Failure is logged, never returned.
func (c *Capture) signalInit() {
	ev, err := winobj.OpenEvent(hookinfo.Name(hookinfo.EventHookInit, c.pid))
	if err != nil {
		log.Warn("failed to open init event for signalling", "pid", c.pid, "error", err)
		return
	}
	defer ev.Close()

	if err := ev.Signal(); err != nil {
		log.Warn("failed to signal init event", "pid", c.pid, "error", err)
	}
}

// readTextureHandle implements step 8: re-read the hook-info mapping's
// window/map_id fields and open the per-texture mapping they identify.
func (c *Capture) readTextureHandle() error {
	info := c.hookInfoMapping.Ptr()
	name := hookinfo.TextureName(info.Window, info.MapID)

	mapping, err := winobj.OpenFileMapping[hookinfo.SharedTextureData](name)
	if err != nil {
		return newErr(KindCreateFileMapping, err)
	}

	if c.textureMapping != nil {
		c.textureMapping.Close()
	}
	c.textureMapping = mapping
	return nil
}

// bringUpGPU implements step 9: create the device and context and open the
// shared texture by the handle read in step 8.
func (c *Capture) bringUpGPU() error {
	if c.device == nil {
		dev, err := gpudx.CreateDevice()
		if err != nil {
			return newErr(KindCreateDevice, err)
		}
		c.device = dev
		c.acquirer = gpudx.NewAcquirer(dev)
	}

	handle := uintptr(c.textureMapping.Ptr().TexHandle)
	shared, err := c.device.OpenSharedResource(handle)
	if err != nil {
		return newErr(KindOpenSharedResource, err)
	}

	if c.shared != nil {
		c.shared.Close()
	}
	c.shared = shared
	return nil
}

// Close releases every OS handle, GPU resource, and background worker
// associated with this capture. Safe to call on a dormant (never-launched)
// capture.
func (c *Capture) Close() error {
	if c.acquirer != nil {
		c.acquirer.Close()
		c.acquirer = nil
	}
	if c.shared != nil {
		c.shared.Close()
		c.shared = nil
	}
	if c.device != nil {
		c.device.Close()
		c.device = nil
	}

	closeEvent(&c.restartEvent)
	closeEvent(&c.stopEvent)
	closeEvent(&c.initEvent)
	closeEvent(&c.readyEvent)
	closeEvent(&c.exitEvent)

	if c.textureMapping != nil {
		c.textureMapping.Close()
		c.textureMapping = nil
	}
	if c.hookInfoMapping != nil {
		c.hookInfoMapping.Close()
		c.hookInfoMapping = nil
	}

	if c.pipe != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), pipeCloseTimeout)
		if err := c.pipe.Close(closeCtx); err != nil {
			log.Warn("pipe close did not complete cleanly", "pid", c.pid, "error", err)
		}
		cancel()
		c.pipe = nil
	}

	if c.keepalive != nil {
		c.keepalive.Close()
		c.keepalive = nil
	}

	c.launched = false
	return nil
}

func closeEvent(e **winobj.Event) {
	if *e != nil {
		(*e).Close()
		*e = nil
	}
}
