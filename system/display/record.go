package display

import "encoding/binary"

// Layout of the ANSI display mode descriptor (DEVMODEA) filled in by the driver.
// Only the fields we read or must write are described here.
const (
	// RecordSize is the size of the descriptor the driver expects
	RecordSize = 124

	sizeTagOffset          = 36  // dmSize
	bitsPerPelOffset       = 104 // dmBitsPerPel
	pelsWidthOffset        = 108 // dmPelsWidth
	pelsHeightOffset       = 112 // dmPelsHeight
	displayFrequencyOffset = 120 // dmDisplayFrequency
)

// RawModeRecord is an opaque display mode descriptor as laid out by the OS
type RawModeRecord [RecordSize]byte

// Prepare writes the size tag the driver checks before filling the record. It has to
// be called before every enumeration call.
func (r *RawModeRecord) Prepare() {
	binary.LittleEndian.PutUint16(r[sizeTagOffset:], RecordSize)
}

// SizeTag returns the value currently stored in the size tag field
func (r *RawModeRecord) SizeTag() uint16 {
	return binary.LittleEndian.Uint16(r[sizeTagOffset:])
}

// Decode extracts the width, height and refresh rate from a record filled in by the
// driver. No other byte of the record is read.
func Decode(r *RawModeRecord) Mode {
	return Mode{
		Width:       uint32(binary.LittleEndian.Uint16(r[pelsWidthOffset:])),
		Height:      uint32(binary.LittleEndian.Uint16(r[pelsHeightOffset:])),
		RefreshRate: uint32(binary.LittleEndian.Uint16(r[displayFrequencyOffset:])),
	}
}
