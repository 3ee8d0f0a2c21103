// Package body implements the content-body frame payload: an opaque byte
// passthrough. A single logical message is split across one or more
// content-body frames whose concatenated lengths equal the body_size
// declared in the preceding content-header frame; verifying that sum is a
// session-level concern this package does not perform.
package body

import "github.com/amqpr/amqp-codec/wire"

// Payload is a content-body frame's payload: the message bytes, verbatim.
type Payload struct {
	Data []byte
}

// Encode appends p's bytes with no framing of its own.
func Encode(w *wire.Writer, p Payload) {
	w.Raw(p.Data)
}

// Decode takes ownership of the full remaining payload as the body. The
// frame framer has already sliced out exactly this frame's payload bytes,
// so there is nothing left to delimit here.
func Decode(payload []byte) Payload {
	return Payload{Data: payload}
}
