// Package stream presents the frame codec as the stateless pair of
// operations a streaming transport needs: decode bytes into zero-or-one
// frame (the caller keeps the unconsumed rest for next time), and encode a frame into
// bytes to append to an outgoing buffer.
//
// The adapter itself holds no session state; ordering guarantees like
// "a content-header follows its method frame" are a higher layer's
// concern. The only state an Adapter may hold is a decode-side rate
// limiter shared across calls.
package stream

import (
	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/amqplog"
	"github.com/amqpr/amqp-codec/frame"
	"golang.org/x/time/rate"
)

// Options configures an Adapter.
type Options struct {
	// Limiter, if set, throttles Decode calls with a token-bucket limiter,
	// guarding against a peer flooding malformed or empty frames.
	Limiter *rate.Limiter

	// Logger, if set, receives diagnostic events from Decode: decoded
	// frames, decode errors and rate-limit rejections (not NeedMore).
	// Never required for correctness; nil disables logging entirely.
	Logger *amqplog.Logger
}

// Adapter pairs the frame codec's decode and encode halves behind the
// two-call surface a streaming transport drives.
type Adapter struct {
	opts Options
}

// New constructs an Adapter. The zero Options value disables both rate
// limiting and logging.
func New(opts Options) *Adapter {
	return &Adapter{opts: opts}
}

// Decode attempts to extract exactly one frame from the head of buf. On
// success it returns the frame and how many leading bytes of buf were
// consumed. On amqperr.ErrNeedMore, consumed is 0 and buf must be treated
// as entirely unread; the caller should append more bytes and call
// Decode again.
func (a *Adapter) Decode(buf []byte) (frame.Frame, int, error) {
	if a.opts.Limiter != nil && !a.opts.Limiter.Allow() {
		if a.opts.Logger != nil {
			a.opts.Logger.RateLimited()
		}
		return frame.Frame{}, 0, amqperr.ErrRateLimited
	}

	f, n, err := frame.Extract(buf)
	if a.opts.Logger != nil {
		switch {
		case err == nil:
			a.opts.Logger.FrameDecoded(f.Channel, byte(f.Type), n)
		case err == amqperr.ErrNeedMore:
			// not an error; nothing to log
		default:
			a.opts.Logger.DecodeError(err)
		}
	}
	return f, n, err
}

// Encode appends the wire encoding of f to the end of dst and returns the
// extended slice.
func (a *Adapter) Encode(dst []byte, f frame.Frame) ([]byte, error) {
	b, err := frame.Emit(f)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}
