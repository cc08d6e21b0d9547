// Package cli provides the command-line interface of seccli.
// It parses the connect, disconnect, status and ssid subcommands, resolves
// the VPN client executable once, and reports a one-line result.
package cli

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/yllada/seccli/common"
	"github.com/yllada/seccli/config"
	"github.com/yllada/seccli/vpn"
	"github.com/yllada/seccli/wifi"
)

// Flag names.
const (
	flagConfig   = "config"
	flagDebug    = "debug"
	flagUsername = "username"
	flagHost     = "vpn-host"
	flagExec     = "vpn-exec"
	flagMethod   = "method"
	flagVerbose  = "verbose"
	flagTimeout  = "timeout"
)

// ExecLocator finds the VPN client executable.
type ExecLocator interface {
	Locate() (string, error)
}

// Deps are the collaborators of the CLI. Zero fields are filled with the
// production implementations by NewApp.
type Deps struct {
	// Version is reported by --version.
	Version string
	// LoadConfig returns the configuration for the --config path with the
	// environment already applied.
	LoadConfig func(path string) (*config.Config, error)
	// InitLogging is called once the configuration is known.
	InitLogging func(cfg *config.Config, debug bool) error
	Locator     ExecLocator
	// Stat checks an explicitly configured executable path.
	Stat func(name string) (os.FileInfo, error)
	// NewTransport builds the transport for one command invocation.
	NewTransport func(verbose bool, timeout time.Duration) vpn.Transport
	Password     vpn.PasswordFunc
	SSID         func(ctx context.Context) string
	Stdout       io.Writer
	Stderr       io.Writer
	// Interactive enables the status spinner.
	Interactive bool
}

func (d Deps) withDefaults() Deps {
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.LoadConfig == nil {
		d.LoadConfig = LoadConfig
	}
	if d.Locator == nil {
		d.Locator = vpn.NewLocator()
	}
	if d.Stat == nil {
		d.Stat = os.Stat
	}
	if d.NewTransport == nil {
		stdout, stderr := d.Stdout, d.Stderr
		d.NewTransport = func(verbose bool, timeout time.Duration) vpn.Transport {
			t := &vpn.ExecTransport{Timeout: timeout}
			if verbose {
				t.Stdout, t.Stderr = stdout, stderr
			}
			return t
		}
	}
	if d.Password == nil {
		d.Password = TerminalPassword(os.Stdin, d.Stderr)
	}
	if d.SSID == nil {
		d.SSID = wifi.CurrentSSID
	}
	return d
}

// LoadConfig reads the YAML configuration and applies VPN_* environment
// variables on top of it.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, cfg.Validate()
}

type app struct {
	deps Deps
	cfg  *config.Config
	out  *printer
}

// NewApp builds the seccli command tree.
func NewApp(deps Deps) *cli.App {
	a := &app{deps: deps.withDefaults()}
	a.out = newPrinter(a.deps.Stdout)

	execFlag := &cli.StringFlag{
		Name:  flagExec,
		Usage: "Path to VPN executable (auto-detected if not provided)",
	}
	verboseFlag := &cli.BoolFlag{
		Name:    flagVerbose,
		Aliases: []string{"v"},
		Usage:   "Show verbose output from VPN tool",
	}
	timeoutFlag := &cli.DurationFlag{
		Name:  flagTimeout,
		Usage: "Give up on the VPN tool after this long (0 waits forever)",
	}

	return &cli.App{
		Name:      common.AppName,
		Usage:     common.AppUsage,
		Version:   a.deps.Version,
		Writer:    a.deps.Stdout,
		ErrWriter: a.deps.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagConfig,
				Usage: "Path to the configuration file (default ~/.config/seccli/config.yaml)",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "Enable debug logging",
			},
		},
		Before: a.before,
		Action: a.unknown,
		Commands: []*cli.Command{
			{
				Name:  "connect",
				Usage: "Connect to VPN",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagUsername,
						Aliases: []string{"u"},
						Usage:   "Your VPN username",
					},
					&cli.StringFlag{
						Name:    flagHost,
						Aliases: []string{"H"},
						Usage:   "VPN URL (default $" + common.EnvHost + ")",
					},
					&cli.StringFlag{
						Name:    flagMethod,
						Aliases: []string{"m"},
						Usage:   "Authentication method (default $" + common.EnvMethod + " or " + common.DefaultMethod + ")",
					},
					execFlag,
					verboseFlag,
					timeoutFlag,
				},
				Action: a.connect,
			},
			{
				Name:   "disconnect",
				Usage:  "Disconnect from VPN",
				Flags:  []cli.Flag{execFlag, verboseFlag, timeoutFlag},
				Action: a.disconnect,
			},
			{
				Name:   "status",
				Usage:  "Show VPN connection status",
				Flags:  []cli.Flag{execFlag, timeoutFlag},
				Action: a.status,
			},
			{
				Name:   "ssid",
				Usage:  "Show the name of the current Wi-Fi network",
				Action: a.ssid,
			},
		},
	}
}

func (a *app) before(c *cli.Context) error {
	cfg, err := a.deps.LoadConfig(c.String(flagConfig))
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.deps.InitLogging != nil {
		if err := a.deps.InitLogging(cfg, c.Bool(flagDebug)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) unknown(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return common.WithCause(common.ErrUnrecognizedCommand, errors.Errorf("%q", c.Args().First()))
}

// stringOption prefers an explicitly set flag over the configured value.
func stringOption(c *cli.Context, name, configured string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return configured
}

func (a *app) timeout(c *cli.Context) time.Duration {
	if c.IsSet(flagTimeout) {
		return c.Duration(flagTimeout)
	}
	return a.cfg.Timeout
}

func (a *app) verbose(c *cli.Context) bool {
	return c.Bool(flagVerbose) || a.cfg.Verbose
}

// indicator shows a spinner on interactive terminals unless the VPN tool's
// own output is being streamed.
func (a *app) indicator(c *cli.Context) vpn.Indicator {
	if !a.deps.Interactive || a.verbose(c) {
		return func(_ string, probe func() bool) bool {
			return probe()
		}
	}
	return spinnerIndicator(a.deps.Stderr)
}

// client resolves the executable path once and builds the session client.
func (a *app) client(c *cli.Context) (*vpn.Client, error) {
	execPath := stringOption(c, flagExec, a.cfg.ExecPath)
	if execPath == "" {
		located, err := a.deps.Locator.Locate()
		if err != nil {
			return nil, err
		}
		execPath = located
	} else if err := a.checkExecutable(execPath); err != nil {
		return nil, err
	}
	common.LogDebug("Using VPN client %s", execPath)

	transport := a.deps.NewTransport(a.verbose(c), a.timeout(c))
	return vpn.NewClient(execPath, transport,
		vpn.WithPassword(a.deps.Password),
		vpn.WithIndicator(a.indicator(c)),
		vpn.WithLogger(common.GetLogger()),
	), nil
}

// checkExecutable rejects an override that is missing or not runnable.
func (a *app) checkExecutable(path string) error {
	info, err := a.deps.Stat(path)
	if err != nil {
		return common.WithCause(common.ErrExecutableNotFound, err)
	}
	if !common.IsExecutable(info, runtime.GOOS) {
		return common.WithCause(common.ErrExecutableNotFound, errors.Errorf("%s is not an executable file", path))
	}
	return nil
}
