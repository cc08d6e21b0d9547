package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/yllada/seccli/vpn"
)

const passwordPrompt = "Enter VPN password: "

// TerminalPassword prompts on out and reads a password from in without
// echoing it. The password never travels through flags or the environment.
func TerminalPassword(in *os.File, out io.Writer) vpn.PasswordFunc {
	return func() (string, error) {
		fmt.Fprint(out, passwordPrompt)
		password, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(password), nil
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
