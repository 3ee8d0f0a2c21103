// Package wire implements the primitive big-endian codecs the rest of the
// AMQP codec is built from: fixed-width integers and floats, and the two
// length-prefixed string shapes (short-string and long-string).
//
// Everything here operates on a byte slice plus a cursor offset rather than
// an io.Reader, because the frame framer (see package frame) already holds
// the complete payload in memory before any of this runs, so there is never
// a partial primitive to block on.
package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/amqpr/amqp-codec/amqperr"
)

// Reader walks a byte slice left to right, tracking how much has been
// consumed. Raw reads are subslices of the buffer it was constructed with,
// never copies.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential decoding starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of bytes remaining.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Remainder returns the unconsumed tail of the buffer without advancing.
func (r *Reader) Remainder() []byte { return r.buf[r.pos:] }

func (r *Reader) need(n int) error {
	if r.Len() < n {
		return amqperr.ErrPayloadTruncated
	}
	return nil
}

// Octet reads one byte.
func (r *Reader) Octet() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// Short reads a big-endian uint16.
func (r *Reader) Short() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

// Long reads a big-endian uint32.
func (r *Reader) Long() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// LongLong reads a big-endian uint64.
func (r *Reader) LongLong() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

// Timestamp reads a big-endian uint64 seconds-since-epoch value.
func (r *Reader) Timestamp() (uint64, error) {
	return r.LongLong()
}

// Float32 reads a big-endian IEEE-754 single-precision float.
func (r *Reader) Float32() (float32, error) {
	bits, err := r.Long()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// Float64 reads a big-endian IEEE-754 double-precision float.
func (r *Reader) Float64() (float64, error) {
	bits, err := r.LongLong()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// Raw reads n raw bytes as a subslice of the underlying buffer.
func (r *Reader) Raw(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ShortString reads a u8 length prefix followed by that many bytes,
// validated as UTF-8.
func (r *Reader) ShortString() (string, error) {
	n, err := r.Octet()
	if err != nil {
		return "", err
	}
	b, err := r.Raw(int(n))
	if err != nil {
		return "", err
	}
	return bytesToUTF8String(b)
}

// LongString reads a u32 length prefix followed by that many bytes,
// validated as UTF-8.
func (r *Reader) LongString() (string, error) {
	n, err := r.Long()
	if err != nil {
		return "", err
	}
	b, err := r.Raw(int(n))
	if err != nil {
		return "", err
	}
	return bytesToUTF8String(b)
}

// LongBytes reads a u32 length prefix followed by that many raw bytes
// with no UTF-8 check, for length-delimited regions that are not text
// (field-table and field-array bodies).
func (r *Reader) LongBytes() ([]byte, error) {
	n, err := r.Long()
	if err != nil {
		return nil, err
	}
	return r.Raw(int(n))
}

func bytesToUTF8String(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", amqperr.ErrInvalidUTF8
	}
	return string(b), nil
}

// Writer accumulates an encoded byte sequence. Unlike Reader it owns its
// buffer outright: encoding always produces a fresh, self-contained
// sequence holding no references to the values it was built from.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer with capacity hint for size bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Octet appends one byte.
func (w *Writer) Octet(b byte) {
	w.buf = append(w.buf, b)
}

// Short appends a big-endian uint16.
func (w *Writer) Short(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// Long appends a big-endian uint32.
func (w *Writer) Long(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// LongLong appends a big-endian uint64.
func (w *Writer) LongLong(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// Timestamp appends a big-endian uint64 seconds-since-epoch value.
func (w *Writer) Timestamp(v uint64) {
	w.LongLong(v)
}

// Float32 appends a big-endian IEEE-754 single-precision float.
func (w *Writer) Float32(v float32) {
	w.Long(math.Float32bits(v))
}

// Float64 appends a big-endian IEEE-754 double-precision float.
func (w *Writer) Float64(v float64) {
	w.LongLong(math.Float64bits(v))
}

// Raw appends b verbatim, with no length prefix.
func (w *Writer) Raw(b []byte) {
	w.buf = append(w.buf, b...)
}

// ShortString appends a u8 length prefix followed by s's bytes. The caller
// is responsible for ensuring len(s) <= 255; longer names are a
// programming error, never a wire possibility this codec produces.
func (w *Writer) ShortString(s string) {
	w.Octet(byte(len(s)))
	w.buf = append(w.buf, s...)
}

// LongString appends a u32 length prefix followed by s's bytes.
func (w *Writer) LongString(s string) {
	w.Long(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// LongBytes appends a u32 length prefix followed by b verbatim.
func (w *Writer) LongBytes(b []byte) {
	w.Long(uint32(len(b)))
	w.buf = append(w.buf, b...)
}
