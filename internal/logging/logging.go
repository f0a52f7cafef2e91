package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfg = zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		// stdout carries conversion results
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	leveler = &levelSetter{
		levels: make(map[string]zap.AtomicLevel),
	}
)

// Leveler adjusts the level of named loggers after they have been built.
type Leveler interface {
	SetLevel(name string, level zapcore.Level)
	GetLevel(name string) zapcore.Level
}

type levelSetter struct {
	levels map[string]zap.AtomicLevel
	mu     sync.RWMutex
}

var _ Leveler = (*levelSetter)(nil)

func GetLeveler() Leveler {
	return leveler
}

func (ls *levelSetter) SetLevel(name string, level zapcore.Level) {
	ls.atomicLevel(name).SetLevel(level)
}

func (ls *levelSetter) GetLevel(name string) zapcore.Level {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	if l, ok := ls.levels[name]; ok {
		return l.Level()
	}

	return zap.InfoLevel
}

// atomicLevel returns the shared level for name, creating it at info if it
// does not exist yet. Loggers built with the same name share one level.
func (ls *levelSetter) atomicLevel(name string) zap.AtomicLevel {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	l, ok := ls.levels[name]
	if !ok {
		l = zap.NewAtomicLevelAt(zap.InfoLevel)
		ls.levels[name] = l
	}

	return l
}

func New(name string) *zap.SugaredLogger {
	c := cfg
	c.Level = leveler.atomicLevel(name)
	return zap.Must(c.Build(zap.AddStacktrace(zapcore.PanicLevel))).Named(name).Sugar()
}
