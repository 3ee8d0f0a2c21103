// Package amqplog wraps zap.Logger: a single place that owns the logger
// construction so the rest of the module only ever depends on a thin
// Logger type, never on zap directly.
//
// Nothing in the codec core (frame, method, field, header, body) imports
// this package; those stay pure per the codec's no-I/O contract. It is
// used by the streaming adapter's optional diagnostic hook and by the
// amqpdump CLI.
package amqplog

import "go.uber.org/zap"

// Logger is the structured logger used for diagnostic, non-protocol
// output: frame-level trace events, CLI summaries.
type Logger struct {
	z *zap.Logger
}

// New wraps an existing *zap.Logger.
func New(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// NewDevelopment returns a Logger backed by zap's development config
// (human-readable, colorized console output), suitable for the CLI.
func NewDevelopment() (*Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return New(z), nil
}

// Nop returns a Logger that discards everything, for callers that don't
// want diagnostic output (e.g. library code embedding the adapter).
func Nop() *Logger {
	return New(zap.NewNop())
}

// FrameDecoded logs a successfully decoded frame at debug level.
func (l *Logger) FrameDecoded(channel uint16, frameType byte, consumed int) {
	l.z.Debug("frame decoded",
		zap.Uint16("channel", channel),
		zap.Uint8("type", frameType),
		zap.Int("consumed_bytes", consumed),
	)
}

// DecodeError logs a decode failure at warn level. NeedMore is not an
// error and must never be passed here.
func (l *Logger) DecodeError(err error) {
	l.z.Warn("frame decode failed", zap.Error(err))
}

// RateLimited logs a decode call rejected by the adapter's rate limiter.
func (l *Logger) RateLimited() {
	l.z.Warn("decode rate limit exceeded")
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}
