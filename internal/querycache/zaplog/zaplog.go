// Package zaplog adapts a *zap.Logger to the querycache Logger interface.
package zaplog

import (
	"github.com/vportela/forja/internal/querycache"
	"go.uber.org/zap"
)

type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f querycache.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f querycache.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f querycache.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f querycache.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f querycache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
