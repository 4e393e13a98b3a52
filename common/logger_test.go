package common

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
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
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppLogger_SetLevel(t *testing.T) {
	logger := &AppLogger{
		level: LevelInfo,
	}

	logger.SetLevel(LevelDebug)
	if logger.level != LevelDebug {
		t.Errorf("SetLevel did not update level, got %v, want %v", logger.level, LevelDebug)
	}
}

func TestAppLogger_LogFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := &AppLogger{level: LevelWarn}
	logger.SetOutput(&buf)

	logger.Debug("debug message")
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("Debug/Info messages should be filtered when level is Warn")
	}

	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "WARN") {
		t.Error("Warn message should be logged")
	}

	buf.Reset()
	logger.Error("error message")
	if !strings.Contains(buf.String(), "ERROR") {
		t.Error("Error message should be logged")
	}
}

func TestAppLogger_LogFormatting(t *testing.T) {
	var buf bytes.Buffer

	logger := &AppLogger{level: LevelDebug}
	logger.SetOutput(&buf)

	logger.Info("Test message with %s", "formatting")

	output := buf.String()

	if !strings.Contains(output, time.Now().Format("2006/01/02")) {
		t.Error("Log should contain date in YYYY/MM/DD format")
	}
	if !strings.Contains(output, "[INFO]") {
		t.Error("Log should contain level indicator")
	}
	if !strings.Contains(output, "logger_test.go:") {
		t.Errorf("Log should contain caller, got %q", output)
	}
	if !strings.Contains(output, "Test message with formatting") {
		t.Error("Log should contain formatted message")
	}
}

func TestAppLogger_NoConsole(t *testing.T) {
	logger := &AppLogger{level: LevelDebug}
	logger.SetOutput(nil)

	// Must not panic without any destination.
	logger.Info("dropped")
}

func TestAppLogger_FileLogging(t *testing.T) {
	dir := t.TempDir()

	logger := &AppLogger{
		level:       LevelInfo,
		maxFileSize: defaultMaxFileSize,
		maxBackups:  defaultMaxBackups,
	}
	logger.SetOutput(nil)

	if err := logger.EnableFileLogging(dir); err != nil {
		t.Fatalf("EnableFileLogging() error = %v", err)
	}
	logger.Info("written to file")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file = %q, want message", data)
	}
}

func TestAppLogger_FileLoggingRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0700); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	logger := &AppLogger{level: LevelInfo}
	if err := logger.EnableFileLogging(link); err == nil {
		t.Error("EnableFileLogging() should reject a symlinked directory")
	}
}

func TestDefaultLogConfig(t *testing.T) {
	if defaultMaxFileSize != 5*1024*1024 {
		t.Errorf("defaultMaxFileSize = %v, want 5MB", defaultMaxFileSize)
	}

	if defaultMaxBackups != 5 {
		t.Errorf("defaultMaxBackups = %v, want 5", defaultMaxBackups)
	}
}

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.HasSuffix(dir, ConfigDirName) {
		t.Errorf("GetConfigDir() = %v, should end with %v", dir, ConfigDirName)
	}

	if logDir := GetLogDir(); logDir != filepath.Join(dir, "logs") {
		t.Errorf("GetLogDir() = %v, want %v", logDir, filepath.Join(dir, "logs"))
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "present")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("FileExists() should return true for existing file")
	}

	if FileExists("/nonexistent/path/to/file") {
		t.Error("FileExists() should return false for non-existing file")
	}
}

func TestWrapError(t *testing.T) {
	wrapped := WrapError(ErrTrayCreate, "additional context")

	if wrapped == nil {
		t.Fatal("WrapError should return non-nil error")
	}

	if !strings.Contains(wrapped.Error(), "additional context") {
		t.Error("WrapError should include additional context")
	}

	if !errors.Is(wrapped, ErrTrayCreate) {
		t.Error("WrapError should unwrap to the original error")
	}

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestViewState_Summary(t *testing.T) {
	started := time.Date(2026, 1, 2, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		view ViewState
		want string
	}{
		{"zero", ViewState{}, "Running in the background just now. Window created 0 times."},
		{"once", ViewState{StartedAt: started, WindowsCreated: 1}, "Running in the background since 09:30. Window created once."},
		{"many", ViewState{StartedAt: started, WindowsCreated: 3}, "Running in the background since 09:30. Window created 3 times."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.view.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, LogFileName)

	largeContent := strings.Repeat("x", 1024*1024) // 1MB
	if err := os.WriteFile(logFile, []byte(largeContent), 0600); err != nil {
		t.Fatal(err)
	}

	logger := &AppLogger{
		level:       LevelInfo,
		maxFileSize: 512 * 1024,
		maxBackups:  2,
	}

	logger.rotateIfNeeded(logFile)

	info, err := os.Stat(logFile)
	if err == nil && info.Size() > 0 {
		t.Error("Original log file should be removed or empty after rotation")
	}

	matches, _ := filepath.Glob(filepath.Join(tempDir, LogFileName+".*"))
	if len(matches) == 0 {
		t.Error("Backup file should be created after rotation")
	}
}
