//go:build windows

package display

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	libUser32                = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplaySettingsA = libUser32.NewProc("EnumDisplaySettingsA")
)

// zero-initialized fixed memory
const _LMEM_ZEROINIT = 0x0040

type nativeSource struct{}

var _ Source = &nativeSource{}

func newPlatformSource() (Source, error) {
	if err := procEnumDisplaySettingsA.Find(); err != nil {
		return nil, errors.Wrap(err, "display: EnumDisplaySettingsA is not available")
	}
	return &nativeSource{}, nil
}

func (n *nativeSource) Name() string {
	return "EnumDisplaySettings"
}

// SupportedResolutions asks the driver of the primary display device for every mode it
// supports, bypassing any list cached by the desktop compositor
func (n *nativeSource) SupportedResolutions() ([]Mode, error) {
	e := Enumerator{
		Query:     enumDisplaySettings,
		Allocator: localAllocator{},
	}
	return e.Enumerate()
}

func enumDisplaySettings(index uint32, record *RawModeRecord) bool {
	ret, _, _ := procEnumDisplaySettingsA.Call(
		0, // NULL device name selects the primary display device
		uintptr(index),
		uintptr(unsafe.Pointer(record)),
	)
	return ret != 0
}

// localAllocator keeps the record in fixed memory owned by the OS heap
type localAllocator struct{}

var _ Allocator = localAllocator{}

func (localAllocator) Alloc() (*RawModeRecord, error) {
	ptr, err := windows.LocalAlloc(_LMEM_ZEROINIT, RecordSize)
	if err != nil {
		return nil, err
	}
	return (*RawModeRecord)(unsafe.Pointer(ptr)), nil
}

func (localAllocator) Free(record *RawModeRecord) error {
	_, err := windows.LocalFree(windows.Handle(unsafe.Pointer(record)))
	return err
}
