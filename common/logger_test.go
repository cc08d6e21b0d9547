package common

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestAppLogger_SetLevel(t *testing.T) {
	logger := newAppLogger(&bytes.Buffer{}, LevelInfo)

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.level)
}

func TestAppLogger_LogFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newAppLogger(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	assert.Zero(t, buf.Len(), "Debug/Info messages should be filtered when level is Warn")

	logger.Warn("warn message")
	assert.Contains(t, buf.String(), "[WARN]")

	buf.Reset()
	logger.Error("error message")
	assert.Contains(t, buf.String(), "[ERROR]")
}

func TestAppLogger_LogFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := newAppLogger(&buf, LevelDebug)

	logger.Info("Test message with %s", "formatting")

	output := buf.String()
	assert.Contains(t, output, time.Now().Format("2006/01/02"))
	assert.Contains(t, output, "[INFO]")
	assert.Contains(t, output, "Test message with formatting")
	assert.Contains(t, output, "logger_test.go")
}

func TestAppLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	logger := newAppLogger(&buf, LevelDebug)

	logger.WithField("invocation", "abc123")
	logger.Debug("probing")

	assert.Contains(t, buf.String(), "invocation=abc123")
}

func TestAppLogger_FileLogging(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer
	logger := newAppLogger(&buf, LevelInfo)

	require.NoError(t, logger.EnableFileLogging(logDir))
	logger.Info("written to both")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(logDir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"written to both"`)
	assert.Contains(t, buf.String(), "written to both")
}

func TestAppLogger_FileLoggingRefusesSymlink(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "target")
	require.NoError(t, os.Mkdir(target, 0700))
	link := filepath.Join(tempDir, "logs")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	logger := newAppLogger(&bytes.Buffer{}, LevelInfo)
	assert.Error(t, logger.EnableFileLogging(link))
}

func TestDefaultLogConfig(t *testing.T) {
	assert.Equal(t, int64(5*1024*1024), int64(defaultMaxFileSize))
	assert.Equal(t, 5, defaultMaxBackups)
}

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, ConfigDirName))
}

type stubInfo struct {
	os.FileInfo
	mode os.FileMode
}

func (s stubInfo) Mode() os.FileMode { return s.mode }
func (s stubInfo) IsDir() bool       { return s.mode.IsDir() }

func TestIsExecutable(t *testing.T) {
	tests := []struct {
		name string
		info os.FileInfo
		goos string
		want bool
	}{
		{"unix script", stubInfo{mode: 0755}, "linux", true},
		{"unix plain file", stubInfo{mode: 0644}, "linux", false},
		{"darwin owner exec only", stubInfo{mode: 0700}, "darwin", true},
		{"windows plain file", stubInfo{mode: 0644}, "windows", true},
		{"windows directory", stubInfo{mode: os.ModeDir | 0755}, "windows", false},
		{"unix directory", stubInfo{mode: os.ModeDir | 0755}, "linux", false},
		{"windows device", stubInfo{mode: os.ModeDevice | 0644}, "windows", false},
		{"nil", nil, "linux", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExecutable(tt.info, tt.goos))
		})
	}
}

func TestIsExecutable_RealFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix permissions")
	}
	script := filepath.Join(t.TempDir(), "script")
	require.NoError(t, os.WriteFile(script, nil, 0700))

	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.True(t, IsExecutable(info, runtime.GOOS))
}

func TestWrapError(t *testing.T) {
	wrapped := WrapError(ErrConnectFailed, "additional context")

	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "additional context")
	assert.Contains(t, wrapped.Error(), ErrConnectFailed.Error())
	assert.True(t, errors.Is(wrapped, ErrConnectFailed))

	assert.NoError(t, WrapError(nil, "context"))
}

func TestWithCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := WithCause(ErrConnectFailed, cause)

	assert.Equal(t, "VPN connection failed: exit status 1", err.Error())
	assert.True(t, errors.Is(err, ErrConnectFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithCause", "stack of the cause survives %+v")

	assert.Equal(t, ErrNotConnected, WithCause(ErrNotConnected, nil))
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, LogFileName)

	largeContent := strings.Repeat("x", 1024*1024) // 1MB
	require.NoError(t, os.WriteFile(logFile, []byte(largeContent), 0600))

	logger := newAppLogger(&bytes.Buffer{}, LevelInfo)
	logger.maxFileSize = 512 * 1024
	logger.maxBackups = 2

	logger.rotateIfNeeded(logFile)

	info, err := os.Stat(logFile)
	if err == nil {
		assert.Zero(t, info.Size(), "original log file should be removed or empty after rotation")
	}

	matches, _ := filepath.Glob(logFile + ".*")
	assert.NotEmpty(t, matches, "backup file should be created after rotation")
}
