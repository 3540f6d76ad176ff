package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 30
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
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

// ParseLevel maps a log_level setting to a Level, case insensitively.
// Anything unrecognised means LevelWarn.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger appends timestamped lines to a size-rotated file.
// Every line of one process carries the same run id.
type Logger struct {
	mu       sync.Mutex
	file     io.WriteCloser
	runID    string
	minLevel Level
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// SetDefault installs l as the logger behind the package-level Debug and Warn.
// A nil l silences them.
func SetDefault(l *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// New opens logPath for appending, creating it and its directory
// readable by the owner only.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	// lumberjack opens the file on first write; fail on a bad path now.
	probe, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	_ = probe.Close()

	return &Logger{
		file: &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		},
		runID:    uuid.NewString()[:8],
		minLevel: minLevel,
	}, nil
}

func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.minLevel {
		return
	}

	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s %s: %s\n", time.Now().Format("2006-01-02 15:04:05"), l.runID, level, message)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.file, line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Debug logs through the default logger, if one is installed.
func Debug(format string, args ...any) {
	current().Debug(format, args...)
}

// Warn logs through the default logger, if one is installed.
func Warn(format string, args ...any) {
	current().Warn(format, args...)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = NopLogger{}
)
