//go:build !linux

package tray

// probeHost always succeeds: Windows and macOS always have a tray.
func probeHost() error {
	return nil
}
