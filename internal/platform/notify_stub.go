//go:build !linux

package platform

// Notify reports ErrUnsupported outside Linux.
func Notify(title, body string, opts Options) error {
	return ErrUnsupported
}
