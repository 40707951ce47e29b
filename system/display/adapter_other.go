//go:build !windows

package display

// Adapters is only implemented on Windows
func Adapters() ([]Adapter, error) {
	return nil, ErrUnsupported
}
