package offsets

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lanternops/gcapture/internal/artifacts"
	"github.com/lanternops/gcapture/internal/logging"
)

var log = logging.L("offsets")

const runTimeout = 10 * time.Second

// Load materializes the offset-discovery helper (if not already present
// under src) and runs it, parsing its TOML stdout into a GraphicOffsets.
func Load(ctx context.Context, src artifacts.Source, policy artifacts.PathPolicy) (GraphicOffsets, error) {
	path, err := artifacts.MaterializeWithPolicy(src, artifacts.GraphicOffsetsLoader, policy)
	if err != nil {
		return GraphicOffsets{}, &LoadError{Kind: WriteBinaryToFile, Err: err}
	}

	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, path)
	hideWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Warn("offsets loader failed", "error", err, "stderr", stderr.String())
		return GraphicOffsets{}, &LoadError{Kind: ExecuteBinary, Err: fmt.Errorf("%w: %s", err, stderr.String())}
	}

	if err := requireTablesAndKeys(stdout.Bytes()); err != nil {
		return GraphicOffsets{}, &LoadError{Kind: ParseOutput, Err: err}
	}

	var parsed ParsedOffsets
	if err := toml.Unmarshal(stdout.Bytes(), &parsed); err != nil {
		return GraphicOffsets{}, &LoadError{Kind: ParseOutput, Err: err}
	}

	return parsed.ToGraphicOffsets(), nil
}

// requiredKeys enumerates the top-level tables and u32-valued keys the
// offset loader's stdout must contain; a missing table or key is an error
// even though a present-but-zero value is not.
var requiredKeys = map[string][]string{
	"d3d8": {"present"},
	"d3d9": {"present", "present_ex", "present_swap", "class_offset", "is_ex_class_offset"},
	"dxgi": {"present", "present1", "resize"},
}

// requireTablesAndKeys enforces that every table and key requiredKeys names
// is present in doc, since toml.Unmarshal otherwise silently zero-fills
// anything absent.
func requireTablesAndKeys(doc []byte) error {
	var raw map[string]map[string]any
	if err := toml.Unmarshal(doc, &raw); err != nil {
		return err
	}

	for table, keys := range requiredKeys {
		values, ok := raw[table]
		if !ok {
			return fmt.Errorf("missing table %q", table)
		}
		for _, key := range keys {
			if _, ok := values[key]; !ok {
				return fmt.Errorf("missing key %q in table %q", key, table)
			}
		}
	}
	return nil
}
