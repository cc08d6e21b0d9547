// Package config provides configuration management for seccli.
// It resolves defaults from a YAML file and the environment into a single
// Config value that is handed to the command dispatcher.
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/yllada/seccli/common"
)

// Config represents the application configuration.
// Every field can be set in the YAML file; the VPN_* environment variables
// and command-line flags take precedence over it.
type Config struct {
	// ExecPath is the VPN client executable. Empty means auto-detect.
	ExecPath string `yaml:"vpn_exec"`
	// Host is the default VPN head-end passed to "connect".
	Host string `yaml:"vpn_host"`
	// Username is the default VPN username.
	Username string `yaml:"username"`
	// Method is the second-factor answer sent after the password
	// (push, sms, phone, or a passcode).
	Method string `yaml:"method"`
	// Timeout bounds each VPN client invocation. Zero waits forever.
	Timeout time.Duration `yaml:"timeout"`
	// Verbose streams the VPN client's own output to the terminal.
	Verbose bool `yaml:"verbose"`
	// LogFile enables the rotating log file under the config directory.
	// It is off by default; --debug turns it on for one invocation.
	LogFile bool `yaml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Method: common.DefaultMethod,
	}
}

// DefaultPath returns ~/.config/seccli/config.yaml.
func DefaultPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, common.ConfigFileName), nil
}

// Load reads the configuration file at path, or at DefaultPath when path is
// empty. A missing file yields DefaultConfig.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, common.WithCause(common.ErrConfigLoad, err)
		}
	}

	cfg := DefaultConfig()

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, common.WithCause(common.ErrConfigLoad, errors.Wrapf(err, "opening %s", path))
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, common.WithCause(common.ErrConfigLoad, errors.Wrapf(err, "parsing %s", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from VPN_EXEC, VPN_HOST and VPN_METHOD.
// Empty variables are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(common.EnvExec); ok && v != "" {
		c.ExecPath = v
	}
	if v, ok := lookup(common.EnvHost); ok && v != "" {
		c.Host = v
	}
	if v, ok := lookup(common.EnvMethod); ok && v != "" {
		c.Method = v
	}
}

// Validate verifies that configuration values are usable.
func (c *Config) Validate() error {
	if c.Method == "" {
		c.Method = common.DefaultMethod
	}
	if c.Timeout < 0 {
		return common.WithCause(common.ErrInvalidConfig, errors.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	return nil
}
