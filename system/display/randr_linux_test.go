//go:build linux

package display

import (
	"testing"

	"github.com/BurntSushi/xgb/randr"
	"github.com/stretchr/testify/require"
)

// CEA-861 timings as reported by xrandr --verbose
var (
	mode1080p60 = randr.ModeInfo{Id: 70, Width: 1920, Height: 1080, DotClock: 148500000, Htotal: 2200, Vtotal: 1125}
	mode1080p50 = randr.ModeInfo{Id: 71, Width: 1920, Height: 1080, DotClock: 148500000, Htotal: 2640, Vtotal: 1125}
	mode720p60  = randr.ModeInfo{Id: 72, Width: 1280, Height: 720, DotClock: 74250000, Htotal: 1650, Vtotal: 750}
)

func TestRefreshRate(t *testing.T) {
	require.EqualValues(t, 60, refreshRate(mode1080p60))
	require.EqualValues(t, 50, refreshRate(mode1080p50))
	require.EqualValues(t, 60, refreshRate(mode720p60))

	interlaced := mode1080p60
	interlaced.ModeFlags = randr.ModeFlagInterlace
	interlaced.DotClock /= 2
	require.EqualValues(t, 60, refreshRate(interlaced))

	doubleScan := mode720p60
	doubleScan.ModeFlags = randr.ModeFlagDoubleScan
	require.EqualValues(t, 30, refreshRate(doubleScan))

	require.Zero(t, refreshRate(randr.ModeInfo{Width: 1, Height: 1}))
}

func TestModesFromRandR(t *testing.T) {
	infos := []randr.ModeInfo{mode1080p60, mode720p60, mode1080p50}

	// screen order is kept as is
	require.Equal(t, []Mode{
		{1920, 1080, 60},
		{1280, 720, 60},
		{1920, 1080, 50},
	}, modesFromRandR(infos, nil))

	// output order wins, unknown ids are skipped
	require.Equal(t, []Mode{
		{1920, 1080, 50},
		{1920, 1080, 60},
	}, modesFromRandR(infos, []randr.Mode{71, 99, 70}))

	require.Empty(t, modesFromRandR(infos, []randr.Mode{}))
}
