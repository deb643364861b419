package logbuffer

import (
	"time"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitBufferedLogger builds a zap logger whose sink is set up by
// pingcap/log (console or rotating file) and whose entries go through a
// BufferedCore. The returned core must be stopped when the program
// shuts down; entries logged after a crash-free Stop are not lost, they
// are flushed by the final drain.
func InitBufferedLogger(cfg *log.Config, pendingEntries int, flushInterval time.Duration) (*zap.Logger, *BufferedCore, error) {
	_, props, err := log.InitLogger(cfg)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}

	core := NewBufferedCore(props.Core, pendingEntries, flushInterval)
	logger := zap.New(core, zap.AddCaller(), zap.ErrorOutput(props.Syncer))
	return logger, core, nil
}

// NewRotatingWriteSyncer returns a write syncer backed by a
// size-rotated log file, the same rotation pingcap/log applies to its
// file sink.
func NewRotatingWriteSyncer(cfg *log.FileLogConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
	})
}
