// Package vpn provides VPN connection management functionality.
// This file contains the Client which checks status and drives
// connect/disconnect transcripts through a Transport.
package vpn

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/yllada/seccli/common"
)

// Common errors - re-exported from common package for convenience.
var (
	ErrExecutableNotFound = common.ErrExecutableNotFound
	ErrAlreadyConnected   = common.ErrAlreadyConnected
	ErrNotConnected       = common.ErrNotConnected
	ErrConnectFailed      = common.ErrConnectFailed
	ErrDisconnectFailed   = common.ErrDisconnectFailed
)

// PasswordFunc asks the user for the VPN password.
type PasswordFunc func() (string, error)

// Indicator runs a blocking status probe, for example behind a spinner,
// and returns its result.
type Indicator func(label string, probe func() bool) bool

// Labels passed to the Indicator.
const (
	LabelChecking      = "Checking VPN status..."
	LabelDisconnecting = "Disconnecting from VPN..."
)

// Option configures a Client.
type Option func(*Client)

// WithPassword sets the password source used by Connect.
func WithPassword(fn PasswordFunc) Option {
	return func(c *Client) {
		c.password = fn
	}
}

// WithIndicator sets the progress indicator wrapped around status probes.
func WithIndicator(fn Indicator) Option {
	return func(c *Client) {
		c.indicator = fn
	}
}

// WithLogger sets the logger. The process-wide logger is used by default.
func WithLogger(l common.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// Client drives the Cisco Secure Client CLI at a fixed executable path.
// Connection state is never cached: every decision re-runs "status".
type Client struct {
	execPath  string
	transport Transport
	password  PasswordFunc
	indicator Indicator
	log       common.Logger
}

// NewClient creates a Client for the given executable.
func NewClient(execPath string, transport Transport, opts ...Option) *Client {
	c := &Client{
		execPath:  execPath,
		transport: transport,
		password: func() (string, error) {
			return "", errors.New("no password source configured")
		},
		indicator: func(_ string, probe func() bool) bool {
			return probe()
		},
		log: common.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connected reports whether the client's status output contains the
// "Connected" marker. A failing status command counts as not connected.
func (c *Client) Connected(ctx context.Context) bool {
	output, err := c.transport.Status(ctx, c.execPath)
	if err != nil {
		c.log.Debug("Status probe failed, treating as disconnected: %v", err)
		return false
	}
	return strings.Contains(output, common.ConnectedMarker)
}

func (c *Client) checkConnected(ctx context.Context, label string) bool {
	return c.indicator(label, func() bool {
		return c.Connected(ctx)
	})
}

// Connect prompts for the password and runs the connect transcript against
// host. It fails with ErrAlreadyConnected without prompting when a session
// is already up, and with ErrConnectFailed when the client is still
// disconnected afterwards. The exit status of the transcript run does not
// decide the outcome; it is only reported as the cause of a failure.
func (c *Client) Connect(ctx context.Context, host, username, method string) error {
	if c.execPath == "" {
		return ErrExecutableNotFound
	}

	if c.checkConnected(ctx, LabelChecking) {
		return ErrAlreadyConnected
	}

	password, err := c.password()
	if err != nil {
		return common.WithCause(common.ErrPasswordPrompt, err)
	}

	c.log.Info("Connecting to %s as %s (method %s)", host, username, method)

	runErr := c.transport.Run(ctx, c.execPath, ConnectScript(host, username, password, method))
	if runErr != nil {
		c.log.Warn("Connect transcript returned an error: %v", runErr)
	}

	if !c.Connected(ctx) {
		c.log.Warn("Connect transcript finished but client reports no session")
		return common.WithCause(ErrConnectFailed, runErr)
	}

	c.log.Info("Connected to %s", host)
	return nil
}

// Disconnect runs the disconnect transcript. It fails with ErrNotConnected
// when there is no session, and with ErrDisconnectFailed when the client
// still reports one afterwards.
func (c *Client) Disconnect(ctx context.Context) error {
	if c.execPath == "" {
		return ErrExecutableNotFound
	}

	if !c.checkConnected(ctx, LabelChecking) {
		return ErrNotConnected
	}

	var runErr error
	stillConnected := c.indicator(LabelDisconnecting, func() bool {
		if runErr = c.transport.Run(ctx, c.execPath, DisconnectScript()); runErr != nil {
			c.log.Warn("Disconnect transcript returned an error: %v", runErr)
		}
		return c.Connected(ctx)
	})
	if stillConnected {
		c.log.Warn("Disconnect transcript finished but client still reports a session")
		return common.WithCause(ErrDisconnectFailed, runErr)
	}

	c.log.Info("Disconnected")
	return nil
}
