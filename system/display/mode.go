package display

import (
	"fmt"
	"sort"
)

// Mode is a single resolution and refresh rate reported for an output. Two modes
// with the same width, height and refresh rate are the same mode, regardless of
// any other attribute the driver reported alongside them.
type Mode struct {
	Width       uint32 `json:"width" yaml:"width"`
	Height      uint32 `json:"height" yaml:"height"`
	RefreshRate uint32 `json:"refreshRate" yaml:"refreshRate"`
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d : %d", m.Width, m.Height, m.RefreshRate)
}

// Compare orders modes by width, then height, then refresh rate. It returns a
// negative number when a sorts before b, zero when they are equal, and a positive
// number otherwise.
func Compare(a, b Mode) int {
	switch {
	case a.Width != b.Width:
		return cmpUint32(a.Width, b.Width)
	case a.Height != b.Height:
		return cmpUint32(a.Height, b.Height)
	default:
		return cmpUint32(a.RefreshRate, b.RefreshRate)
	}
}

func cmpUint32(a, b uint32) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Sort sorts modes in place using Compare
func Sort(modes []Mode) {
	sort.Slice(modes, func(i, j int) bool {
		return Compare(modes[i], modes[j]) < 0
	})
}

// ResolutionSet accumulates distinct modes during a single enumeration
type ResolutionSet map[Mode]struct{}

func NewResolutionSet() ResolutionSet {
	return make(ResolutionSet)
}

// Add inserts m. Adding a mode that is already present does nothing.
func (s ResolutionSet) Add(m Mode) {
	s[m] = struct{}{}
}

func (s ResolutionSet) Contains(m Mode) bool {
	_, ok := s[m]
	return ok
}

func (s ResolutionSet) Len() int {
	return len(s)
}

// Sorted drains the set into a new slice ordered by Compare. The result is never nil.
func (s ResolutionSet) Sorted() []Mode {
	modes := make([]Mode, 0, len(s))
	for m := range s {
		modes = append(modes, m)
	}
	Sort(modes)
	return modes
}
