// Package log provides structured logging for pricefit on top of zerolog.
//
// Components obtain a named Logger from a LoggerProvider (or from the global
// provider through GetLoggerWithName) and log with key/value pairs:
//
//	logger := log.GetLoggerWithName("linear")
//	logger.Info("Training started", log.SamplesKey, 24)
//
// Log output goes to stderr so that it never mixes with the user-facing
// messages printed on stdout.
package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Structured logging keys.
const (
	ComponentKey  = "component"
	ModelNameKey  = "model"
	OperationKey  = "operation"
	PhaseKey      = "phase"
	SamplesKey    = "samples"
	IterationKey  = "iteration"
	DurationKey   = "duration_ms"
	PathKey       = "path"
	LossKey       = "loss"
	ErrorKey      = "error"
	PredictionKey = "prediction"
)

// Operation and phase values.
const (
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationEvaluate = "evaluate"
	OperationLoad     = "load"
	OperationSave     = "save"

	PhaseTraining   = "training"
	PhaseInference  = "inference"
	PhaseEvaluation = "evaluation"
)

// Logger is the key/value logging interface used by pricefit components.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// LoggerProvider hands out named loggers that share one sink and level.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
}

type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

// Error logs at error level. An error value as the first field is attached
// with Err instead of being treated as a key.
func (l *zerologLogger) Error(msg string, fields ...interface{}) {
	ev := l.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = ev.Err(err)
			fields = fields[1:]
		}
	}
	ev.Fields(fields).Msg(msg)
}

func (l *zerologLogger) With(fields ...interface{}) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(fields).Logger()}
}

// ZerologProvider is a LoggerProvider backed by a single zerolog.Logger.
type ZerologProvider struct {
	base zerolog.Logger
}

// NewZerologProvider creates a provider writing human readable output to stderr.
func NewZerologProvider(level zerolog.Level) *ZerologProvider {
	return NewZerologProviderWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, level)
}

// NewZerologProviderWithWriter creates a provider writing to w. Tests pass a
// bytes.Buffer here to inspect the JSON records.
func NewZerologProviderWithWriter(w io.Writer, level zerolog.Level) *ZerologProvider {
	return &ZerologProvider{base: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// GetLogger returns the unnamed logger.
func (p *ZerologProvider) GetLogger() Logger {
	return &zerologLogger{zl: p.base}
}

// GetLoggerWithName returns a logger tagged with the component name.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return &zerologLogger{zl: p.base.With().Str(ComponentKey, name).Logger()}
}

// Zerolog exposes the underlying zerolog.Logger for event-style logging.
func (p *ZerologProvider) Zerolog() *zerolog.Logger {
	return &p.base
}

var (
	mu             sync.RWMutex
	globalProvider = NewZerologProvider(zerolog.WarnLevel)
)

// ToLogLevel parses a level name. Unknown names map to info.
func ToLogLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// SetupLogger replaces the global provider with one at the given level.
func SetupLogger(level string) {
	SetProvider(NewZerologProvider(ToLogLevel(level)))
}

// SetProvider replaces the global provider.
func SetProvider(p *ZerologProvider) {
	mu.Lock()
	defer mu.Unlock()
	globalProvider = p
}

// Provider returns the global provider.
func Provider() *ZerologProvider {
	mu.RLock()
	defer mu.RUnlock()
	return globalProvider
}

// GetLogger returns the global zerolog.Logger for event-style logging.
func GetLogger() *zerolog.Logger {
	return Provider().Zerolog()
}

// GetLoggerWithName returns a named logger from the global provider.
func GetLoggerWithName(name string) Logger {
	return Provider().GetLoggerWithName(name)
}

// LogError logs err with its full chain at error level.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	GetLogger().Error().Err(err).Msg(msg)
}
