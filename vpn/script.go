package vpn

import "strings"

const redacted = "********"

// Script is the transcript written to the client's interactive prompt,
// one command or answer per line.
type Script struct {
	lines  []string
	secret int // index of the password line, -1 if none
}

// ConnectScript answers the client's connect dialogue: target host,
// username, password, second-factor method, a "y" to accept the banner or
// certificate prompt, and finally leaves the shell.
func ConnectScript(host, username, password, method string) Script {
	return Script{
		lines:  []string{"connect " + host, username, password, method, "y", "exit"},
		secret: 2,
	}
}

// DisconnectScript tears down the active session and leaves the shell.
func DisconnectScript() Script {
	return Script{lines: []string{"disconnect", "exit"}, secret: -1}
}

// Lines returns a copy of the transcript lines.
func (s Script) Lines() []string {
	return append([]string(nil), s.lines...)
}

// String renders the transcript exactly as it is fed to stdin.
func (s Script) String() string {
	return render(s.lines)
}

// Redacted renders the transcript with the password masked.
func (s Script) Redacted() string {
	lines := s.Lines()
	if s.secret >= 0 && s.secret < len(lines) {
		lines[s.secret] = redacted
	}
	return render(lines)
}

func render(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
