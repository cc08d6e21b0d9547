// Package common provides shared constants, types, and utilities
// used across seccli.
package common

// Application metadata.
const (
	// AppName is the command name of the application.
	AppName = "seccli"
	// AppUsage is the one-line description shown in help output.
	AppUsage = "CLI wrapper around Cisco Secure Client"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "seccli"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "seccli.log"
)

// Environment variables consulted for defaults.
const (
	EnvExec   = "VPN_EXEC"
	EnvHost   = "VPN_HOST"
	EnvMethod = "VPN_METHOD"
)

// VPN client protocol.
const (
	// DefaultMethod is the second-factor method answered when none is configured.
	DefaultMethod = "push"
	// ConnectedMarker is the substring the client prints in its status
	// output while a session is active.
	ConnectedMarker = "Connected"
	// InteractiveFlag starts the client in line-oriented interactive mode.
	InteractiveFlag = "-s"
	// StatusCommand asks the client for its current state.
	StatusCommand = "status"
)
