package stream

import (
	"errors"
	"testing"

	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/frame"
	"github.com/amqpr/amqp-codec/method"
	"golang.org/x/time/rate"
)

func TestAdapterEncodeDecodeRoundTrip(t *testing.T) {
	a := New(Options{})
	f := frame.MethodFrame(1, method.ChannelOpen{Reserved1: ""})

	buf, err := a.Encode(nil, f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, n, err := a.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d, want %d", n, len(buf))
	}
	if got.Channel != 1 || got.Type != frame.TypeMethod {
		t.Fatalf("got %+v", got)
	}
}

func TestAdapterDecodeNeedMoreOnPartialInput(t *testing.T) {
	a := New(Options{})
	buf, err := a.Encode(nil, frame.HeartbeatFrame(0))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	_, n, err := a.Decode(buf[:3])
	if !errors.Is(err, amqperr.ErrNeedMore) {
		t.Fatalf("expected ErrNeedMore, got %v", err)
	}
	if n != 0 {
		t.Fatalf("consumed %d, want 0", n)
	}
}

func TestAdapterEncodeAppendsToExistingBuffer(t *testing.T) {
	a := New(Options{})
	prefix := []byte{0xAA, 0xBB}
	buf, err := a.Encode(prefix, frame.HeartbeatFrame(0))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(buf) != len(prefix)+frame.HeaderSize {
		t.Fatalf("got %d bytes, want %d", len(buf), len(prefix)+frame.HeaderSize)
	}
	if buf[0] != 0xAA || buf[1] != 0xBB {
		t.Fatalf("prefix not preserved: % x", buf[:2])
	}
}

func TestAdapterRateLimiting(t *testing.T) {
	limiter := rate.NewLimiter(0, 0) // never allows a token
	a := New(Options{Limiter: limiter})

	buf, err := a.Encode(nil, frame.HeartbeatFrame(0))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	_, _, err = a.Decode(buf)
	if !errors.Is(err, amqperr.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestAdapterRateLimitingAllowsWithinBudget(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	a := New(Options{Limiter: limiter})

	buf, err := a.Encode(nil, frame.HeartbeatFrame(0))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	_, n, err := a.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d, want %d", n, len(buf))
	}
}
