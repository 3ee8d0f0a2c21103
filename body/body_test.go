package body

import (
	"bytes"
	"testing"

	"github.com/amqpr/amqp-codec/wire"
)

func TestBodyRoundTrip(t *testing.T) {
	p := Payload{Data: []byte("the quick brown fox")}
	w := wire.NewWriter(0)
	Encode(w, p)

	got := Decode(w.Bytes())
	if !bytes.Equal(got.Data, p.Data) {
		t.Fatalf("got %q, want %q", got.Data, p.Data)
	}
}

func TestEmptyBodyRoundTrip(t *testing.T) {
	w := wire.NewWriter(0)
	Encode(w, Payload{})
	got := Decode(w.Bytes())
	if len(got.Data) != 0 {
		t.Fatalf("got %d bytes, want 0", len(got.Data))
	}
}
