//go:build windows

package display

import (
	"github.com/bi-zone/wmi"
	"github.com/pkg/errors"
)

type win32VideoController struct {
	Name                        *string
	DriverVersion               *string
	CurrentHorizontalResolution *uint32
	CurrentVerticalResolution   *uint32
	CurrentRefreshRate          *uint32
}

const videoControllerQuery = `SELECT Name, DriverVersion, CurrentHorizontalResolution, CurrentVerticalResolution, CurrentRefreshRate FROM Win32_VideoController`

// Adapters lists the video controllers known to WMI
func Adapters() ([]Adapter, error) {
	var dst []win32VideoController
	if err := wmi.Query(videoControllerQuery, &dst); err != nil {
		return nil, errors.Wrap(err, "display: cannot query Win32_VideoController")
	}

	adapters := make([]Adapter, 0, len(dst))
	for _, c := range dst {
		adapters = append(adapters, Adapter{
			Name:          deref(c.Name),
			DriverVersion: deref(c.DriverVersion),
			Current: Mode{
				Width:       deref(c.CurrentHorizontalResolution),
				Height:      deref(c.CurrentVerticalResolution),
				RefreshRate: deref(c.CurrentRefreshRate),
			},
		})
	}
	return adapters, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
