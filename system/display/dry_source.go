package display

import (
	"encoding/binary"
	"log"
)

// driverMode is one row of a driver mode table, before color depth is discarded
type driverMode struct {
	Mode
	BitsPerPel uint32
}

// a mode table shaped like a real one: each resolution repeated at several color depths
var dryModeTable = []driverMode{
	{Mode{640, 480, 60}, 8},
	{Mode{640, 480, 60}, 16},
	{Mode{640, 480, 60}, 32},
	{Mode{1920, 1080, 60}, 32},
	{Mode{1920, 1080, 144}, 32},
	{Mode{1280, 720, 60}, 16},
	{Mode{1280, 720, 60}, 32},
	{Mode{3840, 2160, 60}, 32},
	{Mode{3840, 2160, 30}, 32},
	{Mode{3440, 1440, 100}, 32},
	{Mode{1920, 1080, 60}, 16},
	{Mode{2560, 1440, 165}, 32},
}

type drySource struct {
	table []driverMode
}

var _ Source = &drySource{}

// NewDrySource returns a Source that runs the regular enumeration over a fixed
// mode table instead of asking the driver
func NewDrySource() Source {
	log.Println("[dry run] display: enumerating a synthetic mode table")
	return &drySource{
		table: dryModeTable,
	}
}

func (d *drySource) Name() string {
	return "dry run"
}

func (d *drySource) SupportedResolutions() ([]Mode, error) {
	e := Enumerator{
		Query:     d.query,
		Allocator: HeapAllocator{},
	}
	modes, err := e.Enumerate()
	if err != nil {
		return nil, err
	}
	log.Printf("[dry run] display: %d driver entries, %d distinct modes\n", len(d.table), len(modes))
	return modes, nil
}

func (d *drySource) query(index uint32, record *RawModeRecord) bool {
	if int(index) >= len(d.table) {
		return false
	}
	writeDriverMode(record, d.table[index])
	return true
}

// writeDriverMode fills the record the way the driver would
func writeDriverMode(r *RawModeRecord, m driverMode) {
	binary.LittleEndian.PutUint32(r[bitsPerPelOffset:], m.BitsPerPel)
	binary.LittleEndian.PutUint32(r[pelsWidthOffset:], m.Width)
	binary.LittleEndian.PutUint32(r[pelsHeightOffset:], m.Height)
	binary.LittleEndian.PutUint32(r[displayFrequencyOffset:], m.RefreshRate)
}
