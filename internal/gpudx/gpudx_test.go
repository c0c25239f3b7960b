//go:build windows

package gpudx

import (
	"errors"
	"fmt"
	"testing"
)

func TestAcquireFrameErrorsAreDistinguishable(t *testing.T) {
	stagingErr := fmt.Errorf("%w: %v", ErrCreateStagingTexture, errors.New("device lost"))
	if !errors.Is(stagingErr, ErrCreateStagingTexture) {
		t.Error("wrapped staging-texture error should match ErrCreateStagingTexture")
	}
	if errors.Is(stagingErr, ErrMapSurface) {
		t.Error("staging-texture error should not match ErrMapSurface")
	}

	mapErr := fmt.Errorf("%w: %v", ErrMapSurface, errors.New("surface busy"))
	if !errors.Is(mapErr, ErrMapSurface) {
		t.Error("wrapped map error should match ErrMapSurface")
	}
}

func TestAcquirerCloseOnNeverAcquiredIsNoop(t *testing.T) {
	a := NewAcquirer(&Device{})
	a.Close() // must not panic when nothing was ever mapped
}
