// Package common provides shared constants, types, and utilities
// used across the tray application.
package common

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// AppLogger is a leveled logger for the application.
// It writes to the console when one is attached and optionally to a
// size-rotated file.
type AppLogger struct {
	mu          sync.Mutex
	level       LogLevel
	logger      *log.Logger
	console     io.Writer // nil when stdout is not a terminal
	logFile     *os.File
	filePath    string
	maxFileSize int64
	maxBackups  int
}

// LogConfig holds configuration options for the logger.
type LogConfig struct {
	Level       LogLevel
	EnableFile  bool
	Dir         string // defaults to GetLogDir()
	MaxFileSize int64  // in bytes, default 5MB
	MaxBackups  int    // number of rotated files to keep, default 5
}

var (
	defaultLogger *AppLogger
	loggerOnce    sync.Once
)

const (
	defaultMaxFileSize = 5 * 1024 * 1024 // 5MB
	defaultMaxBackups  = 5
)

// consoleWriter returns stdout when it is attached to a terminal.
// A tray application started from a desktop session has no console.
func consoleWriter() io.Writer {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return os.Stdout
	}
	return nil
}

// GetLogger returns the singleton logger instance.
func GetLogger() *AppLogger {
	loggerOnce.Do(func() {
		defaultLogger = &AppLogger{
			level:       LevelInfo,
			console:     consoleWriter(),
			maxFileSize: defaultMaxFileSize,
			maxBackups:  defaultMaxBackups,
		}
		defaultLogger.resetOutput()
	})
	return defaultLogger
}

// InitLogger initializes the logger with custom configuration.
// Should be called early in application startup.
func InitLogger(config LogConfig) error {
	logger := GetLogger()
	logger.SetLevel(config.Level)

	if config.MaxFileSize > 0 {
		logger.maxFileSize = config.MaxFileSize
	}
	if config.MaxBackups > 0 {
		logger.maxBackups = config.MaxBackups
	}

	if !config.EnableFile {
		return nil
	}
	dir := config.Dir
	if dir == "" {
		dir = GetLogDir()
	}
	return logger.EnableFileLogging(dir)
}

// SetLevel sets the minimum log level.
func (l *AppLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput replaces the console destination. File logging is unaffected.
func (l *AppLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = w
	l.resetOutput()
}

// resetOutput rebuilds the underlying logger. Callers hold mu.
func (l *AppLogger) resetOutput() {
	var writers []io.Writer
	if l.console != nil {
		writers = append(writers, l.console)
	}
	if l.logFile != nil {
		writers = append(writers, l.logFile)
	}
	switch len(writers) {
	case 0:
		l.logger = log.New(io.Discard, "", 0)
	case 1:
		l.logger = log.New(writers[0], "", 0)
	default:
		l.logger = log.New(io.MultiWriter(writers...), "", 0)
	}
}

// isSymlink checks if a path is a symbolic link.
// Returns false if path doesn't exist (safe to create).
func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// EnableFileLogging enables logging to LogFileName inside logDir.
// The log file is rotated when it exceeds maxFileSize.
func (l *AppLogger) EnableFileLogging(logDir string) error {
	if logDir == "" {
		return fmt.Errorf("log directory unavailable")
	}
	if isSymlink(logDir) {
		return fmt.Errorf("security error: log directory is a symlink")
	}
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, LogFileName)
	if isSymlink(logPath) {
		return fmt.Errorf("security error: log file is a symlink")
	}

	l.rotateIfNeeded(logPath)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		l.logFile.Close()
	}
	l.logFile = file
	l.filePath = logPath
	l.resetOutput()
	return nil
}

// rotateIfNeeded checks if the log file needs rotation and performs it.
func (l *AppLogger) rotateIfNeeded(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil {
		return
	}
	if info.Size() < l.maxFileSize {
		return
	}
	l.rotate(logPath)
}

// rotate compresses the current log file and prunes old backups.
func (l *AppLogger) rotate(logPath string) {
	l.mu.Lock()
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
		l.resetOutput()
	}
	l.mu.Unlock()

	timestamp := time.Now().Format("20060102-150405")
	rotatedPath := fmt.Sprintf("%s.%s.gz", logPath, timestamp)

	if err := compressFile(logPath, rotatedPath); err != nil {
		os.Rename(logPath, strings.TrimSuffix(rotatedPath, ".gz"))
	} else {
		os.Remove(logPath)
	}

	l.cleanupOldBackups(filepath.Dir(logPath))
}

// compressFile compresses a file using gzip.
func compressFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	gzWriter := gzip.NewWriter(dstFile)
	defer gzWriter.Close()

	_, err = io.Copy(gzWriter, srcFile)
	return err
}

// cleanupOldBackups removes old backup files exceeding maxBackups.
func (l *AppLogger) cleanupOldBackups(logDir string) {
	matches, err := filepath.Glob(filepath.Join(logDir, LogFileName+".*"))
	if err != nil || len(matches) <= l.maxBackups {
		return
	}

	// Oldest first.
	sort.Slice(matches, func(i, j int) bool {
		infoI, _ := os.Stat(matches[i])
		infoJ, _ := os.Stat(matches[j])
		if infoI == nil || infoJ == nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	for _, path := range matches[:len(matches)-l.maxBackups] {
		os.Remove(path)
	}
}

// log writes a formatted log message.
func (l *AppLogger) log(level LogLevel, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	caller := "???"
	if ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	formattedMsg := msg
	if len(args) > 0 {
		formattedMsg = fmt.Sprintf(msg, args...)
	}

	timestamp := time.Now().Format("2006/01/02 15:04:05")
	l.logger.Printf("%s [%s] %s: %s", timestamp, level.String(), caller, formattedMsg)
}

// Debug logs a debug message.
func (l *AppLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *AppLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *AppLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *AppLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

// Shorthand functions for default logger.

// LogDebug logs a debug message to the default logger.
func LogDebug(msg string, args ...interface{}) {
	GetLogger().Debug(msg, args...)
}

// LogInfo logs an info message to the default logger.
func LogInfo(msg string, args ...interface{}) {
	GetLogger().Info(msg, args...)
}

// LogWarn logs a warning message to the default logger.
func LogWarn(msg string, args ...interface{}) {
	GetLogger().Warn(msg, args...)
}

// LogError logs an error message to the default logger.
func LogError(msg string, args ...interface{}) {
	GetLogger().Error(msg, args...)
}

// Close closes the log file. Should be called on application shutdown.
func (l *AppLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	l.resetOutput()
	return err
}

// CloseLogger closes the default logger.
func CloseLogger() error {
	return GetLogger().Close()
}
