package libevents

import (
	"go.uber.org/zap"
)

// zapLogger delegates all calls to the underlying zap.SugaredLogger
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger adapts a zap.Logger to the logger used by the event bus.
func NewZapLogger(l *zap.Logger) logger {
	return zapLogger{sugar: l.Sugar()}
}

func (z zapLogger) WithField(key string, value any) logger {
	return zapLogger{sugar: z.sugar.With(key, value)}
}

func (z zapLogger) Debug(args ...any)                 { z.sugar.Debug(args...) }
func (z zapLogger) Debugf(format string, args ...any) { z.sugar.Debugf(format, args...) }
func (z zapLogger) Debugln(args ...any)               { z.sugar.Debugln(args...) }
func (z zapLogger) Info(args ...any)                  { z.sugar.Info(args...) }
func (z zapLogger) Infof(format string, args ...any)  { z.sugar.Infof(format, args...) }
func (z zapLogger) Infoln(args ...any)                { z.sugar.Infoln(args...) }
func (z zapLogger) Warn(args ...any)                  { z.sugar.Warn(args...) }
func (z zapLogger) Warnf(format string, args ...any)  { z.sugar.Warnf(format, args...) }
func (z zapLogger) Warnln(args ...any)                { z.sugar.Warnln(args...) }
func (z zapLogger) Error(args ...any)                 { z.sugar.Error(args...) }
func (z zapLogger) Errorf(format string, args ...any) { z.sugar.Errorf(format, args...) }
func (z zapLogger) Errorln(args ...any)               { z.sugar.Errorln(args...) }
