package vpn

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/seccli/common"
)

type fakeFileInfo struct {
	name string
	mode fs.FileMode
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeFileInfo) Sys() interface{}   { return nil }

// fakeFS maps paths to modes; anything absent does not exist.
func fakeFS(files map[string]fs.FileMode) func(string) (os.FileInfo, error) {
	return func(name string) (os.FileInfo, error) {
		mode, ok := files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return fakeFileInfo{name: filepath.Base(name), mode: mode}, nil
	}
}

func fakePath(entries map[string]string) func(string) (string, error) {
	return func(file string) (string, error) {
		if path, ok := entries[file]; ok {
			return path, nil
		}
		return "", exec.ErrNotFound
	}
}

func TestCandidatePaths(t *testing.T) {
	tests := []struct {
		goos  string
		count int
		first string
	}{
		{"darwin", 3, "/opt/cisco/secureclient/bin/vpn"},
		{"linux", 4, "/opt/cisco/secureclient/bin/vpn"},
		{"windows", 4, `C:\Program Files (x86)\Cisco\Cisco Secure Client\vpncli.exe`},
		{"freebsd", 0, ""},
		{"", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			paths := CandidatePaths(tt.goos)
			require.Len(t, paths, tt.count)
			if tt.count > 0 {
				assert.Equal(t, tt.first, paths[0])
			}
		})
	}
}

func TestCandidatePaths_LinuxOrder(t *testing.T) {
	assert.Equal(t, []string{
		"/opt/cisco/secureclient/bin/vpn",
		"/opt/cisco/anyconnect/bin/vpn",
		"/usr/local/bin/vpn",
		"/usr/bin/vpn",
	}, CandidatePaths("linux"))
}

func TestLocator_Locate(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		files    map[string]fs.FileMode
		path     map[string]string
		expected string
		err      error
	}{
		{
			name:     "first existing executable candidate wins",
			goos:     "linux",
			files:    map[string]fs.FileMode{"/usr/local/bin/vpn": 0755, "/usr/bin/vpn": 0755},
			expected: "/usr/local/bin/vpn",
		},
		{
			name:     "non-executable candidate is skipped",
			goos:     "linux",
			files:    map[string]fs.FileMode{"/opt/cisco/secureclient/bin/vpn": 0644, "/usr/bin/vpn": 0755},
			expected: "/usr/bin/vpn",
		},
		{
			name:     "directory candidate is skipped",
			goos:     "darwin",
			files:    map[string]fs.FileMode{"/opt/cisco/secureclient/bin/vpn": fs.ModeDir | 0755},
			path:     map[string]string{"vpn": "/home/alice/bin/vpn"},
			expected: "/home/alice/bin/vpn",
		},
		{
			name:     "falls back to vpn in PATH",
			goos:     "linux",
			path:     map[string]string{"vpn": "/home/alice/bin/vpn", "vpncli": "/home/alice/bin/vpncli"},
			expected: "/home/alice/bin/vpn",
		},
		{
			name:     "falls back to vpncli in PATH",
			goos:     "plan9",
			path:     map[string]string{"vpncli": "/bin/vpncli"},
			expected: "/bin/vpncli",
		},
		{
			name:     "windows candidate needs no execute bit",
			goos:     "windows",
			files:    map[string]fs.FileMode{`C:\Program Files\Cisco\Cisco Secure Client\vpncli.exe`: 0644},
			expected: `C:\Program Files\Cisco\Cisco Secure Client\vpncli.exe`,
		},
		{
			name: "windows directory candidate is skipped",
			goos: "windows",
			files: map[string]fs.FileMode{
				`C:\Program Files (x86)\Cisco\Cisco Secure Client\vpncli.exe`: fs.ModeDir | 0755,
				`C:\Program Files\Cisco\Cisco Secure Client\vpncli.exe`:       0644,
			},
			expected: `C:\Program Files\Cisco\Cisco Secure Client\vpncli.exe`,
		},
		{
			name:     "linux candidate without execute bit falls through on any host",
			goos:     "linux",
			files:    map[string]fs.FileMode{"/usr/bin/vpn": 0644},
			path:     map[string]string{"vpncli": "/bin/vpncli"},
			expected: "/bin/vpncli",
		},
		{
			name: "nothing found",
			goos: "linux",
			err:  common.ErrExecutableNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locator := &Locator{GOOS: tt.goos, Stat: fakeFS(tt.files), LookPath: fakePath(tt.path)}

			got, err := locator.Locate()

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLocator_LocateOnRealFilesystem(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix permissions")
	}
	dir := t.TempDir()
	vpnPath := filepath.Join(dir, "vpn")
	require.NoError(t, os.WriteFile(vpnPath, []byte("#!/bin/sh\n"), 0755))
	t.Setenv("PATH", dir)

	locator := NewLocator()
	locator.GOOS = "unknown"

	got, err := locator.Locate()

	require.NoError(t, err)
	assert.Equal(t, vpnPath, got)
}
