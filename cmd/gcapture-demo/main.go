//go:build windows

// Command gcapture-demo drives gcapture against a named window from the
// command line: locate it, launch the hook, and pull frames at a
// configured interval, optionally broadcasting per-frame metadata to a
// local websocket for a browser-side viewer to poll against.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lanternops/gcapture"
	"github.com/lanternops/gcapture/internal/config"
	"github.com/lanternops/gcapture/internal/logging"
)

var (
	version = "0.1.0"
	cfgFile string
)

var log = logging.L("main")

var rootCmd = &cobra.Command{
	Use:   "gcapture-demo",
	Short: "gcapture demo driver",
	Long:  `gcapture-demo attaches to a window's graphics hook and pulls frames at a configured interval.`,
}

var captureCmd = &cobra.Command{
	Use:   "capture [window-title]",
	Short: "Attach to a window and stream frame metadata until interrupted",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCapture(args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gcapture-demo v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default search path under /etc/gcapture or ProgramData)")
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogging(cfg *config.Config) {
	var output io.Writer = os.Stdout
	if cfg.LogFile != "" {
		rw, err := logging.NewRotatingWriter(cfg.LogFile, cfg.LogMaxSizeMB, cfg.LogMaxBackups)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v (logging to stdout)\n", cfg.LogFile, err)
		} else {
			output = logging.TeeWriter(os.Stdout, rw)
		}
	}
	logging.Init(cfg.LogFormat, cfg.LogLevel, output)
	log = logging.L("main")
}

func runCapture(windowTitle string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.WindowTitle = windowTitle

	initLogging(cfg)

	if err := cfg.CheckFatal(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.Info("starting capture", "version", version, "window", cfg.WindowTitle)

	var preview *previewServer
	if cfg.PreviewEnabled {
		preview, err = startPreviewServer(cfg.PreviewAddr)
		if err != nil {
			log.Error("failed to start preview server, continuing without it", "error", err)
		} else {
			defer preview.Close()
			log.Info("preview server listening", "addr", cfg.PreviewAddr)
		}
	}

	session := gcapture.NewWithConfig(gcapture.CaptureConfig{
		WindowTitle:         cfg.WindowTitle,
		AntiCheatCompatible: cfg.AntiCheatCompatible,
		CaptureOverlay:      cfg.CaptureOverlay,
		ArtifactDir:         cfg.ArtifactDir,
		ArtifactByHash:      cfg.ArtifactByHash,
	})
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutting down capture")
		cancel()
	}()

	if err := session.TryLaunch(ctx); err != nil {
		log.Error("launch failed", "error", err)
		os.Exit(1)
	}
	log.Info("hook attached")

	interval := time.Duration(cfg.FrameIntervalMillis) * time.Millisecond
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fps := newFPSCounter(time.Second)
	var frames uint64

	for {
		select {
		case <-ctx.Done():
			log.Info("capture stopped", "frames", frames)
			return
		case <-ticker.C:
			start := time.Now()
			pixels, width, height, err := gcapture.CaptureFrame[byte](session, ctx)
			if err != nil {
				log.Warn("frame acquisition failed", "error", err)
				continue
			}
			frames++
			elapsed := time.Since(start)
			currentFPS := fps.Tick()

			if preview != nil {
				preview.Broadcast(frameMeta{
					Seq:       frames,
					Width:     width,
					Height:    height,
					Bytes:     len(pixels),
					LatencyMs: float64(elapsed.Microseconds()) / 1000,
					FPS:       currentFPS,
				})
			}
		}
	}
}
