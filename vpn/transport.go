// Package vpn provides VPN connection management functionality.
// This file contains the Transport that talks to the VPN client process.
package vpn

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/yllada/seccli/common"
)

// waitDelay caps how long output pipes may stay open after the client has
// been killed on cancellation.
const waitDelay = 2 * time.Second

// Transport runs the VPN client. Status returns the text printed by
// "<exec> status"; Run feeds a transcript to "<exec> -s" and waits for the
// client to exit.
type Transport interface {
	Status(ctx context.Context, execPath string) (string, error)
	Run(ctx context.Context, execPath string, script Script) error
}

// ExecTransport spawns the VPN client as a subprocess.
type ExecTransport struct {
	// Stdout and Stderr receive the client's output during Run.
	// Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
	// Timeout bounds every invocation. Zero waits until the client exits.
	Timeout time.Duration
}

var _ Transport = (*ExecTransport)(nil)

// Status runs "<exec> status" and returns its combined output.
func (t *ExecTransport) Status(ctx context.Context, execPath string) (string, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, execPath, common.StatusCommand)
	cmd.WaitDelay = waitDelay
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", common.WrapError(err, "status command failed")
	}
	return strings.TrimSpace(string(output)), nil
}

// Run starts the client in interactive mode and writes the transcript to its
// standard input.
func (t *ExecTransport) Run(ctx context.Context, execPath string, script Script) error {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	common.LogDebug("Running %s %s with transcript:\n%s", execPath, common.InteractiveFlag, script.Redacted())

	cmd := exec.CommandContext(ctx, execPath, common.InteractiveFlag)
	cmd.Stdin = strings.NewReader(script.String())
	cmd.Stdout = t.Stdout
	cmd.Stderr = t.Stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		return common.WrapError(err, "VPN command failed")
	}
	return nil
}

func (t *ExecTransport) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.Timeout > 0 {
		return context.WithTimeout(ctx, t.Timeout)
	}
	return context.WithCancel(ctx)
}
