package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/yllada/seccli/common"
	"github.com/yllada/seccli/vpn"
)

func (a *app) connect(c *cli.Context) error {
	username := stringOption(c, flagUsername, a.cfg.Username)
	host := stringOption(c, flagHost, a.cfg.Host)
	method := stringOption(c, flagMethod, a.cfg.Method)
	if method == "" {
		method = common.DefaultMethod
	}

	if username == "" {
		return common.WithCause(common.ErrMissingArgument, errors.New("--username is required for connect command"))
	}
	if host == "" {
		return common.WithCause(common.ErrMissingArgument, errors.New("--vpn-host is required for connect command"))
	}

	client, err := a.client(c)
	if err != nil {
		return err
	}

	if err := client.Connect(c.Context, host, username, method); err != nil {
		return err
	}

	a.out.success("VPN connection successful")
	return nil
}

func (a *app) disconnect(c *cli.Context) error {
	client, err := a.client(c)
	if err != nil {
		return err
	}

	if err := client.Disconnect(c.Context); err != nil {
		return err
	}

	a.out.success("VPN disconnection successful")
	return nil
}

func (a *app) status(c *cli.Context) error {
	client, err := a.client(c)
	if err != nil {
		return err
	}

	connected := a.indicator(c)(vpn.LabelChecking, func() bool {
		return client.Connected(c.Context)
	})

	if connected {
		a.out.success("VPN Connected: Yes")
	} else {
		a.out.plain("VPN Connected: No")
	}
	return nil
}

func (a *app) ssid(c *cli.Context) error {
	ssid := a.deps.SSID(c.Context)
	if ssid == "" {
		ssid = "unknown"
	}
	a.out.plain("SSID: " + ssid)
	return nil
}
