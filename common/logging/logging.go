// Package logging implements leveled, per-module structured logging on top
// of go-kit/log.
//
// Loggers are obtained per module with GetLogger, usually into a package
// level variable. They may be obtained before Initialize is called, and
// discard their output until it is.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

var (
	global = newBackend()

	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// Format is a log output format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

var formatNames = []string{
	FmtLogfmt: "logfmt",
	FmtJSON:   "JSON",
}

func (f *Format) String() string {
	return formatNames[*f]
}

// Set parses a format name, ignoring case.
func (f *Format) Set(s string) error {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			*f = Format(i)
			return nil
		}
	}
	return fmt.Errorf("logging: invalid log format: '%s'", s)
}

func (f *Format) Type() string {
	return "[" + strings.Join(formatNames, ",") + "]"
}

// Level is a log level. Messages below a logger's level are dropped.
type Level uint

const (
	// LevelDebug is the log level for debug messages.
	LevelDebug Level = iota
	// LevelInfo is the log level for informative messages.
	LevelInfo
	// LevelWarn is the log level for warning messages.
	LevelWarn
	// LevelError is the log level for error messages.
	LevelError
)

var levels = []struct {
	name    string
	leveled func(log.Logger) log.Logger
}{
	LevelDebug: {"DEBUG", level.Debug},
	LevelInfo:  {"INFO", level.Info},
	LevelWarn:  {"WARN", level.Warn},
	LevelError: {"ERROR", level.Error},
}

func (l *Level) String() string {
	return levels[*l].name
}

// Set parses a level name, ignoring case.
func (l *Level) Set(s string) error {
	for i, lvl := range levels {
		if strings.EqualFold(s, lvl.name) {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("logging: invalid log level: '%s'", s)
}

func (l *Level) Type() string {
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.name
	}
	return "[" + strings.Join(names, ",") + "]"
}

// Logger is a module logger.
type Logger struct {
	module string
	level  atomic.Uint32
	out    log.SwapLogger
}

func (l *Logger) log(lvl Level, msg string, keyvals []interface{}) {
	if Level(l.level.Load()) > lvl {
		return
	}
	keyvals = append([]interface{}{"msg", msg}, keyvals...)
	_ = levels[lvl].leveled(&l.out).Log(keyvals...)
}

// Debug logs the message and key value pairs at the Debug log level.
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.log(LevelDebug, msg, keyvals)
}

// Info logs the message and key value pairs at the Info log level.
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.log(LevelInfo, msg, keyvals)
}

// Warn logs the message and key value pairs at the Warn log level.
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.log(LevelWarn, msg, keyvals)
}

// Error logs the message and key value pairs at the Error log level.
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.log(LevelError, msg, keyvals)
}

// GetLogger returns a new logger for the module.
func GetLogger(module string) *Logger {
	return global.getLogger(module)
}

// Initialize points every logger, including those obtained earlier, at w
// in the given format. A module logs at the level of the longest prefix of
// its name in moduleLvls, or at defaultLvl if there is none. A nil w
// discards all output. Initialize may only be called once.
func Initialize(w io.Writer, format Format, defaultLvl Level, moduleLvls map[string]Level) error {
	return global.initialize(w, format, defaultLvl, moduleLvls)
}

type backend struct {
	sync.Mutex

	base         log.Logger
	defaultLevel Level
	moduleLevels map[string]Level
	loggers      []*Logger
	initialized  bool
}

func newBackend() *backend {
	return &backend{
		base:         log.NewNopLogger(),
		defaultLevel: LevelError,
	}
}

func (b *backend) levelFor(module string) Level {
	lvl, longest := b.defaultLevel, -1
	for prefix, l := range b.moduleLevels {
		if strings.HasPrefix(module, prefix) && len(prefix) > longest {
			lvl, longest = l, len(prefix)
		}
	}
	return lvl
}

func (b *backend) bindLocked(l *Logger) {
	l.out.Swap(log.WithPrefix(b.base, "module", l.module))
	l.level.Store(uint32(b.levelFor(l.module)))
}

func (b *backend) getLogger(module string) *Logger {
	b.Lock()
	defer b.Unlock()

	l := &Logger{module: module}
	b.bindLocked(l)
	b.loggers = append(b.loggers, l)
	return l
}

func (b *backend) initialize(w io.Writer, format Format, defaultLvl Level, moduleLvls map[string]Level) error {
	b.Lock()
	defer b.Unlock()

	if b.initialized {
		return fmt.Errorf("logging: already initialized")
	}

	base := log.NewNopLogger()
	if w != nil {
		w = log.NewSyncWriter(w)
		switch format {
		case FmtLogfmt:
			base = log.NewLogfmtLogger(w)
		case FmtJSON:
			base = log.NewJSONLogger(w)
		default:
			return fmt.Errorf("logging: unsupported log format: %d", format)
		}
	}

	b.base = log.With(base, "ts", log.DefaultTimestampUTC)
	b.defaultLevel = defaultLvl
	b.moduleLevels = moduleLvls
	b.initialized = true
	for _, l := range b.loggers {
		b.bindLocked(l)
	}
	return nil
}
