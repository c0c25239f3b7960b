// Package config loads gcapture-demo's configuration: the target window
// title to capture, hook-injection policy, where on-disk collaborator
// artifacts are materialized, and logging setup. The core gcapture library
// itself takes a CaptureConfig struct directly and has no dependency on
// this package; this package exists for the cmd/gcapture-demo CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/lanternops/gcapture/internal/logging"
)

var log = logging.L("config")

// Config is the on-disk/env-driven configuration for the demo driver.
type Config struct {
	WindowTitle         string `mapstructure:"window_title"`
	AntiCheatCompatible bool   `mapstructure:"anti_cheat_compatible"`
	CaptureOverlay      bool   `mapstructure:"capture_overlay"`
	FrameIntervalMillis int    `mapstructure:"frame_interval_millis"`

	// ArtifactDir is where the hook DLL, injector, and offsets-loader
	// executables are materialized. Empty means "current working directory",
	// matching gcapture's own default artifact placement.
	ArtifactDir    string `mapstructure:"artifact_dir"`
	ArtifactByHash bool   `mapstructure:"artifact_by_hash"`

	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`

	// PreviewEnabled turns on the optional websocket frame-preview server.
	PreviewEnabled bool   `mapstructure:"preview_enabled"`
	PreviewAddr    string `mapstructure:"preview_addr"`
}

// Default returns the configuration used when no file or env var overrides
// a given field.
func Default() *Config {
	return &Config{
		WindowTitle:         "",
		AntiCheatCompatible: false,
		CaptureOverlay:      false,
		FrameIntervalMillis: 16,

		ArtifactDir:    "",
		ArtifactByHash: false,

		LogLevel:      "info",
		LogFormat:     "text",
		LogMaxSizeMB:  50,
		LogMaxBackups: 3,

		PreviewEnabled: false,
		PreviewAddr:    "127.0.0.1:9292",
	}
}

// Load reads configuration from cfgFile (or the default search path if
// empty) and environment variables prefixed GCAPTURE_, falling back to
// Default for anything unset. Only a malformed config file is fatal.
// WindowTitle is commonly supplied afterwards from a CLI argument rather
// than the config file, so callers should run ValidateTiered themselves
// once every field is final — see CheckFatal for the common case of
// validating and only surfacing warnings through the logger.
func Load(cfgFile string) (*Config, error) {
	cfg := Default()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gcapture")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(configDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("GCAPTURE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// CheckFatal runs ValidateTiered, logs every warning (clamped values are
// already applied to cfg by ValidateTiered itself), and returns the first
// fatal error, if any.
func (c *Config) CheckFatal() error {
	result := c.ValidateTiered()
	for _, w := range result.Warnings {
		log.Warn("config validation", "error", w)
	}
	if result.HasFatals() {
		for _, f := range result.Fatals {
			log.Error("config validation fatal", "error", f)
		}
		return fmt.Errorf("config has fatal validation errors: %v", result.Fatals[0])
	}
	return nil
}

// Save writes cfg to the default config path. SaveTo writes it to cfgFile.
func Save(cfg *Config) error {
	return SaveTo(cfg, "")
}

func SaveTo(cfg *Config, cfgFile string) error {
	viper.Set("window_title", cfg.WindowTitle)
	viper.Set("anti_cheat_compatible", cfg.AntiCheatCompatible)
	viper.Set("capture_overlay", cfg.CaptureOverlay)
	viper.Set("frame_interval_millis", cfg.FrameIntervalMillis)
	viper.Set("artifact_dir", cfg.ArtifactDir)
	viper.Set("log_level", cfg.LogLevel)
	viper.Set("log_format", cfg.LogFormat)

	var cfgPath string
	if cfgFile != "" {
		cfgPath = cfgFile
		dir := filepath.Dir(cfgPath)
		if dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return err
			}
		}
	} else {
		cfgPath = filepath.Join(configDir(), "gcapture.yaml")
		if err := os.MkdirAll(configDir(), 0700); err != nil {
			return err
		}
	}

	return viper.WriteConfigAs(cfgPath)
}

// ArtifactCacheDir returns a platform-specific per-user cache directory for
// materialized artifacts. Load does not apply it: with ArtifactByHash set,
// artifacts still go under ArtifactDir (or the working directory when it is
// empty).
func ArtifactCacheDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LocalAppData"), "gcapture", "artifacts")
	default:
		return filepath.Join(os.TempDir(), "gcapture-artifacts")
	}
}

func configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "gcapture")
	default:
		return "/etc/gcapture"
	}
}
