//go:build !windows && !linux

package display

func newPlatformSource() (Source, error) {
	return nil, ErrUnsupported
}
