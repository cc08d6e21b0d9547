// Package main provides the entry point for seccli.
// seccli scripts the Cisco Secure Client (AnyConnect) command-line shell so
// VPN sessions can be opened, closed and checked without typing into its
// interactive prompt.
//
// Usage:
//
//	seccli connect --username=<u> --vpn-host=<h> [--vpn-exec=<path>] [--method=<m>]
//	seccli disconnect [--vpn-exec=<path>]
//	seccli status [--vpn-exec=<path>]
//	seccli ssid
//
// Environment:
//
//	VPN_EXEC    default VPN client executable
//	VPN_HOST    default VPN host
//	VPN_METHOD  default authentication method (push when unset)
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/yllada/seccli/cli"
	"github.com/yllada/seccli/common"
	"github.com/yllada/seccli/config"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes one command and returns the process exit code. The log file
// is closed only after the failure has been written to it.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	app := cli.NewApp(cli.Deps{
		Version:     version(),
		InitLogging: initLogging,
		Stderr:      stderr,
		Interactive: cli.IsTerminal(os.Stderr),
	})

	err := app.RunContext(ctx, args)
	if err != nil {
		common.LogDebug("Command failed: %+v", err)
	}
	common.CloseLogger()

	if err != nil {
		cli.PrintError(stderr, err)
		return 1
	}
	return 0
}

func version() string {
	if buildTime == "unknown" {
		return appVersion
	}
	return fmt.Sprintf("%s (build %s, commit %s)", appVersion, buildTime, commitSHA)
}

// initLogging sets up the process-wide logger once the configuration is known.
func initLogging(cfg *config.Config, debug bool) error {
	logLevel := common.LevelWarn
	if debug {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  cfg.LogFile || debug,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}

	common.GetLogger().WithField("invocation", uuid.NewString())
	common.LogDebug("Starting %s %s", common.AppName, appVersion)
	return nil
}
