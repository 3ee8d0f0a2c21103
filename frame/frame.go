// Package frame implements the outermost AMQP transport framing: the
// 8-byte header/trailer around every frame's payload, and dispatch of
// that payload to the matching payload codec.
package frame

import (
	"encoding/binary"

	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/body"
	"github.com/amqpr/amqp-codec/header"
	"github.com/amqpr/amqp-codec/method"
	"github.com/amqpr/amqp-codec/wire"
)

// Type identifies which payload codec a frame's bytes belong to.
type Type byte

// Frame types. Heartbeat is emitted as 8; the historical type byte 4 is
// accepted on decode but never produced.
const (
	TypeMethod        Type = 1
	TypeContentHeader Type = 2
	TypeContentBody   Type = 3
	TypeHeartbeat     Type = 8
)

const heartbeatTypeByteLegacy = 4

// Sentinel is the fixed trailing byte of every frame.
const Sentinel byte = 0xCE

// HeaderSize is the constant 8-byte overhead of every frame: 1 (type) +
// 2 (channel) + 4 (size) + 1 (end).
const HeaderSize = 8

// Frame is the unit of AMQP transport. Exactly one of Method, Header,
// Body is meaningful, selected by Type; Heartbeat carries none.
type Frame struct {
	Channel uint16
	Type    Type
	Method  method.Payload
	Header  header.Payload
	Body    body.Payload
}

// MethodFrame builds a Frame wrapping a method payload.
func MethodFrame(channel uint16, p method.Payload) Frame {
	return Frame{Channel: channel, Type: TypeMethod, Method: p}
}

// ContentHeaderFrame builds a Frame wrapping a content-header payload.
func ContentHeaderFrame(channel uint16, p header.Payload) Frame {
	return Frame{Channel: channel, Type: TypeContentHeader, Header: p}
}

// ContentBodyFrame builds a Frame wrapping a content-body payload.
func ContentBodyFrame(channel uint16, p body.Payload) Frame {
	return Frame{Channel: channel, Type: TypeContentBody, Body: p}
}

// HeartbeatFrame builds an empty heartbeat Frame on the given channel
// (conventionally channel 0).
func HeartbeatFrame(channel uint16) Frame {
	return Frame{Channel: channel, Type: TypeHeartbeat}
}

// encodePayload writes just the payload bytes (no frame header/sentinel)
// for f, dispatching on f.Type.
func encodePayload(f Frame) ([]byte, error) {
	switch f.Type {
	case TypeMethod:
		w := wire.NewWriter(32)
		if err := method.Encode(w, f.Method); err != nil {
			return nil, err
		}
		return w.Bytes(), nil
	case TypeContentHeader:
		w := wire.NewWriter(32)
		if err := header.Encode(w, f.Header); err != nil {
			return nil, err
		}
		return w.Bytes(), nil
	case TypeContentBody:
		w := wire.NewWriter(len(f.Body.Data))
		body.Encode(w, f.Body)
		return w.Bytes(), nil
	case TypeHeartbeat:
		return nil, nil
	default:
		return nil, amqperr.InvalidFrameTypeByte{Byte: byte(f.Type)}
	}
}

// Emit writes a complete frame (header, payload, sentinel) for f.
func Emit(f Frame) ([]byte, error) {
	payload, err := encodePayload(f)
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+len(payload))
	out[0] = byte(f.Type)
	binary.BigEndian.PutUint16(out[1:3], f.Channel)
	binary.BigEndian.PutUint32(out[3:7], uint32(len(payload)))
	copy(out[7:7+len(payload)], payload)
	out[len(out)-1] = Sentinel
	return out, nil
}

// Extract inspects buf for one complete frame. It returns the decoded
// frame and the number of leading bytes of buf it consumed. If buf does
// not yet hold a complete frame, it returns amqperr.ErrNeedMore and a
// consumed count of 0; buf is never modified by this function, so the
// caller's own buffer management decides what "unchanged" means.
func Extract(buf []byte) (Frame, int, error) {
	if len(buf) < HeaderSize {
		return Frame{}, 0, amqperr.ErrNeedMore
	}

	typeByte := buf[0]
	size := binary.BigEndian.Uint32(buf[3:7])
	total := HeaderSize + int(size)
	if len(buf) < total {
		return Frame{}, 0, amqperr.ErrNeedMore
	}

	if buf[total-1] != Sentinel {
		return Frame{}, 0, amqperr.ErrInvalidFrameEnd
	}

	channel := binary.BigEndian.Uint16(buf[1:3])
	payload := buf[7 : 7+size]

	var t Type
	switch typeByte {
	case byte(TypeMethod):
		t = TypeMethod
	case byte(TypeContentHeader):
		t = TypeContentHeader
	case byte(TypeContentBody):
		t = TypeContentBody
	case byte(TypeHeartbeat), heartbeatTypeByteLegacy:
		t = TypeHeartbeat
	default:
		return Frame{}, 0, amqperr.InvalidFrameTypeByte{Byte: typeByte}
	}

	f := Frame{Channel: channel, Type: t}
	switch t {
	case TypeMethod:
		p, err := method.Decode(wire.NewReader(payload))
		if err != nil {
			return Frame{}, 0, err
		}
		f.Method = p
	case TypeContentHeader:
		p, err := header.Decode(wire.NewReader(payload))
		if err != nil {
			return Frame{}, 0, err
		}
		f.Header = p
	case TypeContentBody:
		f.Body = body.Decode(payload)
	case TypeHeartbeat:
		// no payload to decode
	}

	return f, total, nil
}
