//go:build !linux

package mpris

// New returns an adapter without a D-Bus server. Commands never arrive.
func New() (*Adapter, error) {
	return Detached(), nil
}
