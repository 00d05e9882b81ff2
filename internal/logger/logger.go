// Package logger is the sdlgo-bridge terminal logger. It also adapts the
// library's zap diagnostics onto the same output.
package logger

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a charm logger writing to w at the named level.
// Unknown levels fall back to info.
func New(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sdlgo",
	})
	l.SetLevel(ParseLevel(level))
	return l
}

// ParseLevel maps a config level name onto a charm level.
func ParseLevel(level string) log.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DebugLevel
	case "WARN", "WARNING":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Zap returns a zap logger whose entries are written by l.
func Zap(l *log.Logger) *zap.Logger {
	return zap.New(&charmCore{out: l})
}

// charmCore is a zapcore.Core that hands entries to a charm logger.
type charmCore struct {
	out    *log.Logger
	fields []zapcore.Field
}

func (c *charmCore) Enabled(lvl zapcore.Level) bool {
	return charmLevel(lvl) >= c.out.GetLevel()
}

func (c *charmCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &charmCore{out: c.out}
	clone.fields = append(append(clone.fields, c.fields...), fields...)
	return clone
}

func (c *charmCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *charmCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	keyvals := make([]interface{}, 0, 2*(len(c.fields)+len(fields)))
	keyvals = appendFields(keyvals, c.fields)
	keyvals = appendFields(keyvals, fields)
	c.out.Log(charmLevel(ent.Level), ent.Message, keyvals...)
	return nil
}

// appendFields encodes fields one at a time so they print in the order
// they were given. Keys a single field expands to are sorted.
func appendFields(keyvals []interface{}, fields []zapcore.Field) []interface{} {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			if k != "stack" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			keyvals = append(keyvals, k, enc.Fields[k])
		}
	}
	return keyvals
}

func (c *charmCore) Sync() error { return nil }

func charmLevel(lvl zapcore.Level) log.Level {
	switch {
	case lvl <= zapcore.DebugLevel:
		return log.DebugLevel
	case lvl == zapcore.InfoLevel:
		return log.InfoLevel
	case lvl == zapcore.WarnLevel:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
