// Package common provides shared constants, types, utilities, and interfaces
// used throughout the tray application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application identity, file names, tray and window dimensions
//   - Errors: sentinel errors shared by the tray, window and loop packages
//   - Interfaces: the toolkit window abstraction and the view state pushed to it
//   - Logger: leveled logging to the console and a rotated log file
//   - Utils: configuration and log directory helpers
//
// # Usage
//
//	common.LogInfo("Tray installed with %d menu items", n)
//
//	if errors.Is(err, common.ErrTrayCreate) {
//	    // no way to reach the user, abort
//	}
package common
