package display

import (
	"log"

	"github.com/pkg/errors"
)

// ErrUnsupported is returned when no resolution source exists for the running platform
var ErrUnsupported = errors.New("display: resolution enumeration is not supported on this platform")

// Source provides the list of resolutions supported by the primary display path
type Source interface {
	// Name should identify the source in logs
	Name() string
	// SupportedResolutions should return the modes of the primary output
	SupportedResolutions() ([]Mode, error)
}

// Config selects the Source returned by NewSource
type Config struct {
	DryRun bool
}

// NewSource picks the resolution source for this platform. It is meant to be called
// once at startup.
func NewSource(conf Config) (Source, error) {
	if conf.DryRun {
		return NewDrySource(), nil
	}
	src, err := newPlatformSource()
	if err != nil {
		return nil, err
	}
	log.Printf("display: using %s source\n", src.Name())
	return src, nil
}
