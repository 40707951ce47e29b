//go:build linux

package display

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// randrSource returns the mode list the X server already keeps for the primary
// output, in the server's order. It performs no deduplication or sorting.
type randrSource struct{}

var _ Source = &randrSource{}

func newPlatformSource() (Source, error) {
	return &randrSource{}, nil
}

func (r *randrSource) Name() string {
	return "XRandR"
}

func (r *randrSource) SupportedResolutions() ([]Mode, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "display: cannot connect to X server")
	}
	defer conn.Close()

	if err := randr.Init(conn); err != nil {
		return nil, errors.Wrap(err, "display: randr init failed")
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root

	resources, err := randr.GetScreenResources(conn, root).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "display: cannot get screen resources")
	}

	primary, err := randr.GetOutputPrimary(conn, root).Reply()
	if err != nil || primary.Output == 0 {
		// no primary output configured, report every mode the screen knows
		return modesFromRandR(resources.Modes, nil), nil
	}

	info, err := randr.GetOutputInfo(conn, primary.Output, resources.ConfigTimestamp).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "display: cannot get primary output info")
	}

	return modesFromRandR(resources.Modes, info.Modes), nil
}

// modesFromRandR converts the screen's mode infos to modes. When ids is non-nil, only
// the listed modes are returned, in the order of ids.
func modesFromRandR(infos []randr.ModeInfo, ids []randr.Mode) []Mode {
	if ids == nil {
		modes := make([]Mode, 0, len(infos))
		for _, info := range infos {
			modes = append(modes, modeFromInfo(info))
		}
		return modes
	}

	byID := make(map[uint32]randr.ModeInfo, len(infos))
	for _, info := range infos {
		byID[info.Id] = info
	}
	modes := make([]Mode, 0, len(ids))
	for _, id := range ids {
		info, ok := byID[uint32(id)]
		if !ok {
			continue
		}
		modes = append(modes, modeFromInfo(info))
	}
	return modes
}

func modeFromInfo(info randr.ModeInfo) Mode {
	return Mode{
		Width:       uint32(info.Width),
		Height:      uint32(info.Height),
		RefreshRate: refreshRate(info),
	}
}

// refreshRate computes the vertical refresh rate in whole hertz, the same way xrandr does
func refreshRate(info randr.ModeInfo) uint32 {
	vtotal := uint64(info.Vtotal)
	if info.ModeFlags&randr.ModeFlagDoubleScan != 0 {
		vtotal *= 2
	}
	if info.ModeFlags&randr.ModeFlagInterlace != 0 {
		vtotal /= 2
	}
	pixels := uint64(info.Htotal) * vtotal
	if pixels == 0 {
		return 0
	}
	return uint32((uint64(info.DotClock) + pixels/2) / pixels)
}
