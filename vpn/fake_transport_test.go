package vpn

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yllada/seccli/common"
)

// fakeTransport replays scripted status outputs and records transcripts.
// A scripted "Connected" after a run models the client changing state.
type fakeTransport struct {
	statuses  []string // consumed in order; the last one repeats
	statusErr error
	runErr    error

	statusCalls int
	scripts     []Script
}

func (f *fakeTransport) Status(_ context.Context, _ string) (string, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return "", f.statusErr
	}
	if len(f.statuses) == 0 {
		return "", nil
	}
	out := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	return out, nil
}

func (f *fakeTransport) Run(_ context.Context, _ string, script Script) error {
	f.scripts = append(f.scripts, script)
	return f.runErr
}

var (
	errSpawn      = errors.New("exec: no such file")
	errExitStatus = errors.New("exit status 1")
)

// recordingLogger keeps formatted messages of every level.
type recordingLogger struct {
	lines []string
}

var _ common.Logger = (*recordingLogger)(nil)

func (r *recordingLogger) record(msg string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(msg, args...))
}

func (r *recordingLogger) Debug(msg string, args ...interface{}) { r.record(msg, args...) }
func (r *recordingLogger) Info(msg string, args ...interface{})  { r.record(msg, args...) }
func (r *recordingLogger) Warn(msg string, args ...interface{})  { r.record(msg, args...) }
func (r *recordingLogger) Error(msg string, args ...interface{}) { r.record(msg, args...) }

func (r *recordingLogger) contains(substr string) bool {
	for _, line := range r.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

const (
	statusConnected    = "Cisco Secure Client\n>> state: Connected\n>> notice: Connected to vpn.example.com."
	statusDisconnected = "Cisco Secure Client\n>> state: Disconnected\n>> notice: Ready to connect."
)
