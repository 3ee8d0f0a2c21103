package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/amqpr/amqp-codec/amqperr"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.Octet(0x7F)
	w.Short(0x1234)
	w.Long(0xDEADBEEF)
	w.LongLong(0x0102030405060708)
	w.Float32(3.5)
	w.Float64(2.25)

	r := NewReader(w.Bytes())

	octet, err := r.Octet()
	if err != nil || octet != 0x7F {
		t.Fatalf("Octet: got (%v, %v)", octet, err)
	}
	short, err := r.Short()
	if err != nil || short != 0x1234 {
		t.Fatalf("Short: got (%v, %v)", short, err)
	}
	long, err := r.Long()
	if err != nil || long != 0xDEADBEEF {
		t.Fatalf("Long: got (%v, %v)", long, err)
	}
	longlong, err := r.LongLong()
	if err != nil || longlong != 0x0102030405060708 {
		t.Fatalf("LongLong: got (%v, %v)", longlong, err)
	}
	f32, err := r.Float32()
	if err != nil || f32 != 3.5 {
		t.Fatalf("Float32: got (%v, %v)", f32, err)
	}
	f64, err := r.Float64()
	if err != nil || f64 != 2.25 {
		t.Fatalf("Float64: got (%v, %v)", f64, err)
	}
	if r.Len() != 0 {
		t.Fatalf("expected reader exhausted, %d bytes remain", r.Len())
	}
}

func TestShortStringRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.ShortString("hello")
	r := NewReader(w.Bytes())
	s, err := r.ShortString()
	if err != nil {
		t.Fatalf("ShortString: %v", err)
	}
	if s != "hello" {
		t.Fatalf("got %q, want %q", s, "hello")
	}
	if !bytes.Equal(w.Bytes(), []byte{5, 'h', 'e', 'l', 'l', 'o'}) {
		t.Fatalf("unexpected wire bytes: % x", w.Bytes())
	}
}

func TestLongStringRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.LongString("application/text")
	r := NewReader(w.Bytes())
	s, err := r.LongString()
	if err != nil {
		t.Fatalf("LongString: %v", err)
	}
	if s != "application/text" {
		t.Fatalf("got %q", s)
	}
}

func TestTruncatedReadsFailClosed(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.Short(); !errors.Is(err, amqperr.ErrPayloadTruncated) {
		t.Fatalf("expected ErrPayloadTruncated, got %v", err)
	}
}

func TestInvalidUTF8Rejected(t *testing.T) {
	w := NewWriter(0)
	w.Octet(2)
	w.Raw([]byte{0xff, 0xfe})
	r := NewReader(w.Bytes())
	if _, err := r.ShortString(); !errors.Is(err, amqperr.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestShortStringStopsAtLength(t *testing.T) {
	buf := []byte{3, 'a', 'b', 'c', 'X'}
	r := NewReader(buf)
	s, err := r.ShortString()
	if err != nil {
		t.Fatalf("ShortString: %v", err)
	}
	if s != "abc" {
		t.Fatalf("got %q", s)
	}
}
