package artifacts

import (
	"embed"
	"fmt"
)

//go:embed assets/graphics-hook64.dll assets/inject-helper.exe assets/get-graphic-offsets.exe
var embeddedAssets embed.FS

// Embedded is the default Source, backed by go:embed. In this module the
// files under assets/ are empty placeholders — the real collaborator
// binaries (built outside this module's scope) are substituted in by
// replacing those files at build time before go:embed runs.
var Embedded Source = embeddedSource{}

type embeddedSource struct{}

func (embeddedSource) Bytes(name Name) ([]byte, error) {
	data, err := embeddedAssets.ReadFile("assets/" + string(name))
	if err != nil {
		return nil, fmt.Errorf("embedded asset %s: %w", name, err)
	}
	return data, nil
}
