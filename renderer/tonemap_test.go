package renderer

import (
	"testing"

	"github.com/david14higgins/Pathtracer/types"
)

func TestReinhardToneMapPreservesBlack(t *testing.T) {
	c := reinhardToneMap(types.Vec3{}, 1.0)
	if c != (types.Vec3{}) {
		t.Errorf("expected black to map to black, got %v", c)
	}
}

func TestReinhardToneMapCompressesBrightLuminance(t *testing.T) {
	bright := types.XYZ(4, 4, 4)
	mapped := reinhardToneMap(bright, 1.0)

	lBefore := 0.2126*bright.X + 0.7152*bright.Y + 0.0722*bright.Z
	lAfter := 0.2126*mapped.X + 0.7152*mapped.Y + 0.0722*mapped.Z

	if lAfter >= lBefore {
		t.Errorf("expected tone mapping to compress luminance, before=%v after=%v", lBefore, lAfter)
	}
}

func TestApplyExposureAndToneMapIsNoopWhenDisabled(t *testing.T) {
	c := types.XYZ(0.5, 0.2, 0.9)
	opts := DefaultOptions()
	opts.Exposure = 1
	opts.ToneMap = false

	got := applyExposureAndToneMap(c, opts)
	if got != c {
		t.Errorf("expected no-op with exposure 1 and tone mapping disabled, got %v want %v", got, c)
	}
}
