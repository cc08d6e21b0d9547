// Package vpn provides VPN connection management functionality.
// This file contains the Locator that finds the Cisco Secure Client
// command-line executable on the host.
package vpn

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/yllada/seccli/common"
)

// fallbackNames are looked up in PATH when no well-known location matches.
var fallbackNames = []string{"vpn", "vpncli"}

// CandidatePaths returns the well-known install locations of the VPN client
// for the given GOOS, in probe order. Unknown platforms get an empty list.
func CandidatePaths(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/opt/cisco/secureclient/bin/vpn",
			"/Applications/Cisco/Cisco Secure Client.app/Contents/MacOS/vpn",
			"/Applications/Cisco AnyConnect Secure Mobility Client.app/Contents/MacOS/vpn",
		}
	case "linux":
		return []string{
			"/opt/cisco/secureclient/bin/vpn",
			"/opt/cisco/anyconnect/bin/vpn",
			"/usr/local/bin/vpn",
			"/usr/bin/vpn",
		}
	case "windows":
		return []string{
			`C:\Program Files (x86)\Cisco\Cisco Secure Client\vpncli.exe`,
			`C:\Program Files (x86)\Cisco\Cisco AnyConnect Secure Mobility Client\vpncli.exe`,
			`C:\Program Files\Cisco\Cisco Secure Client\vpncli.exe`,
			`C:\Program Files\Cisco\Cisco AnyConnect Secure Mobility Client\vpncli.exe`,
		}
	default:
		return []string{}
	}
}

// Locator resolves the VPN client executable.
// Stat and LookPath are swappable so the search can be exercised without
// touching the real filesystem.
type Locator struct {
	GOOS     string
	Stat     func(name string) (os.FileInfo, error)
	LookPath func(file string) (string, error)
}

// NewLocator creates a Locator for the running platform.
func NewLocator() *Locator {
	return &Locator{
		GOOS:     runtime.GOOS,
		Stat:     os.Stat,
		LookPath: exec.LookPath,
	}
}

// Locate returns the first candidate path that exists and is executable,
// then falls back to a PATH search for "vpn" and "vpncli".
func (l *Locator) Locate() (string, error) {
	for _, path := range CandidatePaths(l.GOOS) {
		info, err := l.Stat(path)
		if err != nil {
			continue
		}
		if common.IsExecutable(info, l.GOOS) {
			common.LogDebug("Found VPN client at %s", path)
			return path, nil
		}
	}

	for _, name := range fallbackNames {
		if path, err := l.LookPath(name); err == nil {
			common.LogDebug("Found VPN client %q in PATH at %s", name, path)
			return path, nil
		}
	}

	return "", common.ErrExecutableNotFound
}
