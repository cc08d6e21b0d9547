// Package common provides shared constants, types, utilities, and interfaces
// used throughout seccli.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application names, environment variables, and the VPN client protocol
//   - Errors: sentinel errors for consistent error handling across packages
//   - Interfaces: the logging abstraction
//   - Logger: leveled logging to stderr and an optional rotating file
//   - Utils: file and directory helpers
//
// # Usage
//
//	// Use logger
//	common.LogDebug("probing status via %s", execPath)
//
//	// Check errors
//	if errors.Is(err, common.ErrAlreadyConnected) {
//	    // Nothing to do
//	}
package common
