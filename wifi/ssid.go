// Package wifi reports the name of the wireless network the host is
// associated with. It is informational only; nothing in seccli bases a
// connect or disconnect decision on it.
package wifi

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	shlex "github.com/anmitsu/go-shlex"

	"github.com/yllada/seccli/common"
)

const (
	airportCmd = "/System/Library/PrivateFrameworks/Apple80211.framework/Resources/airport -I"
	wdutilCmd  = "sudo wdutil info"
	nmcliCmd   = "nmcli -t -f active,ssid dev wifi"
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// Detector looks up the current SSID with platform-specific tools.
type Detector struct {
	GOOS string
	Run  Runner
	// NetworkManager queries NetworkManager directly; consulted on linux
	// before falling back to nmcli.
	NetworkManager func(ctx context.Context) (string, error)
}

// NewDetector creates a Detector for the running platform.
func NewDetector() *Detector {
	return &Detector{
		GOOS:           runtime.GOOS,
		Run:            runCommand,
		NetworkManager: networkManagerSSID,
	}
}

// CurrentSSID returns the SSID of the active wireless network, or "" when it
// cannot be determined.
func CurrentSSID(ctx context.Context) string {
	return NewDetector().SSID(ctx)
}

// SSID returns the SSID of the active wireless network, or "".
func (d *Detector) SSID(ctx context.Context) string {
	switch d.GOOS {
	case "darwin":
		if ssid := parseAirport(d.run(ctx, airportCmd)); ssid != "" {
			return ssid
		}
		return parseWdutil(d.run(ctx, wdutilCmd))
	case "linux":
		if d.NetworkManager != nil {
			ssid, err := d.NetworkManager(ctx)
			if err == nil && ssid != "" {
				return ssid
			}
			common.LogDebug("NetworkManager SSID lookup failed, trying nmcli: %v", err)
		}
		return parseNmcli(d.run(ctx, nmcliCmd))
	default:
		return ""
	}
}

// run tokenizes cmdline like a POSIX shell and executes it. Failures yield "".
func (d *Detector) run(ctx context.Context, cmdline string) string {
	args, err := shlex.Split(cmdline, true)
	if err != nil || len(args) == 0 {
		return ""
	}
	output, err := d.Run(ctx, args[0], args[1:]...)
	if err != nil {
		common.LogDebug("%s failed: %v", args[0], err)
		return ""
	}
	return strings.TrimSpace(output)
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, name, args...).Output()
	return string(output), err
}

// parseAirport extracts the value of the " SSID: " line of "airport -I".
func parseAirport(output string) string {
	_, after, found := strings.Cut(output, " SSID: ")
	if !found {
		return ""
	}
	line, _, _ := strings.Cut(after, "\n")
	return strings.TrimSpace(line)
}

// parseWdutil extracts the SSID field of "wdutil info", which may be written
// as "SSID: name" or "SSID    : name".
func parseWdutil(output string) string {
	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) != "SSID" {
			continue
		}
		return strings.TrimSpace(value)
	}
	return ""
}

// parseNmcli returns the SSID on the "yes:" line of terse nmcli output.
// nmcli escapes literal colons in values as "\:".
func parseNmcli(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if ssid, found := strings.CutPrefix(strings.TrimSpace(line), "yes:"); found {
			return strings.ReplaceAll(ssid, `\:`, ":")
		}
	}
	return ""
}
