package method

import (
	"errors"
	"testing"

	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/field"
	"github.com/amqpr/amqp-codec/wire"
)

func roundTrip(t *testing.T, p Payload) Payload {
	t.Helper()
	w := wire.NewWriter(0)
	if err := Encode(w, p); err != nil {
		t.Fatalf("Encode %T: %v", p, err)
	}
	got, err := Decode(wire.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode %T: %v", p, err)
	}
	return got
}

func TestConnectionMethodsRoundTrip(t *testing.T) {
	props := field.Table{}
	props.Set("product", field.ShortString("amqp-codec"))

	start := ConnectionStart{VersionMajor: 0, VersionMinor: 9, ServerProperties: props, Mechanisms: "PLAIN", Locales: "en_US"}
	got := roundTrip(t, start).(ConnectionStart)
	if got.VersionMinor != 9 || got.Mechanisms != "PLAIN" {
		t.Fatalf("got %+v", got)
	}

	open := ConnectionOpen{VirtualHost: "/", Reserved2: true}
	gotOpen := roundTrip(t, open).(ConnectionOpen)
	if gotOpen.VirtualHost != "/" || !gotOpen.Reserved2 {
		t.Fatalf("got %+v", gotOpen)
	}

	close_ := ConnectionClose{ReplyCode: 320, ReplyText: "channel-error", ClassID_: 60, MethodID_: 40}
	gotClose := roundTrip(t, close_).(ConnectionClose)
	if gotClose != close_ {
		t.Fatalf("got %+v, want %+v", gotClose, close_)
	}

	blocked := ConnectionBlocked{Reason: "low on memory"}
	if roundTrip(t, blocked).(ConnectionBlocked) != blocked {
		t.Fatalf("ConnectionBlocked round trip failed")
	}
	if roundTrip(t, ConnectionUnblocked{}).(ConnectionUnblocked) != (ConnectionUnblocked{}) {
		t.Fatalf("ConnectionUnblocked round trip failed")
	}
}

func TestChannelMethodsRoundTrip(t *testing.T) {
	flow := ChannelFlow{Active: true}
	if roundTrip(t, flow).(ChannelFlow) != flow {
		t.Fatalf("ChannelFlow round trip failed")
	}
	closeMethod := ChannelClose{ReplyCode: 406, ReplyText: "PRECONDITION_FAILED", ClassID_: 50, MethodID_: 10}
	if roundTrip(t, closeMethod).(ChannelClose) != closeMethod {
		t.Fatalf("ChannelClose round trip failed")
	}
}

func TestExchangeMethodsRoundTrip(t *testing.T) {
	args := field.Table{}
	args.Set("x-match", field.ShortString("all"))

	declare := ExchangeDeclare{Exchange: "orders", Type: "topic", Durable: true, Arguments: args}
	got := roundTrip(t, declare).(ExchangeDeclare)
	if got.Exchange != "orders" || !got.Durable || got.Passive || got.AutoDelete {
		t.Fatalf("got %+v", got)
	}
	if v, ok := got.Arguments.Get("x-match"); !ok || v.Str != "all" {
		t.Fatalf("arguments: got %+v, ok=%v", v, ok)
	}

	bind := ExchangeBind{Destination: "dst", Source: "src", RoutingKey: "rk", NoWait: true}
	if roundTrip(t, bind).(ExchangeBind).NoWait != true {
		t.Fatalf("ExchangeBind.NoWait not preserved")
	}
	unbind := ExchangeUnbind{Destination: "dst", Source: "src"}
	if roundTrip(t, unbind).(ExchangeUnbind).Destination != "dst" {
		t.Fatalf("ExchangeUnbind round trip failed")
	}
}

func TestQueueMethodsRoundTrip(t *testing.T) {
	declare := QueueDeclare{Queue: "q1", Durable: true, Exclusive: false, AutoDelete: true, NoWait: false}
	got := roundTrip(t, declare).(QueueDeclare)
	if got.Queue != "q1" || !got.Durable || got.Exclusive || !got.AutoDelete {
		t.Fatalf("got %+v", got)
	}

	declareOk := QueueDeclareOk{Queue: "q1", MessageCount: 7, ConsumerCount: 2}
	if roundTrip(t, declareOk).(QueueDeclareOk) != declareOk {
		t.Fatalf("QueueDeclareOk round trip failed")
	}

	unbind := QueueUnbind{Queue: "q1", Exchange: "ex", RoutingKey: "rk"}
	got2 := roundTrip(t, unbind).(QueueUnbind)
	if got2.Queue != "q1" || got2.Exchange != "ex" {
		t.Fatalf("got %+v", got2)
	}
}

func TestTxMethodsRoundTrip(t *testing.T) {
	for _, p := range []Payload{TxSelect{}, TxSelectOk{}, TxCommit{}, TxCommitOk{}, TxRollback{}, TxRollbackOk{}} {
		got := roundTrip(t, p)
		if got.ClassID() != p.ClassID() || got.MethodID() != p.MethodID() {
			t.Fatalf("%T round trip failed: got %+v", p, got)
		}
	}
}

// The wire layout of Basic.Publish is class-id, method-id, reserved
// short, exchange short-string, routing-key short-string, then a single
// bit run packing mandatory/immediate into one octet.
func TestBasicPublishExactBytes(t *testing.T) {
	m := BasicPublish{Exchange: "ex", RoutingKey: "rk", Mandatory: true, Immediate: false}
	w := wire.NewWriter(0)
	if err := Encode(w, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b := w.Bytes()

	wantPrefix := []byte{
		0x00, 0x3C, // class id 60
		0x00, 0x28, // method id 40
		0x00, 0x00, // reserved1
		0x02, 'e', 'x', // exchange
		0x02, 'r', 'k', // routing key
	}
	if len(b) != len(wantPrefix)+1 {
		t.Fatalf("got %d bytes, want %d", len(b), len(wantPrefix)+1)
	}
	for i, wb := range wantPrefix {
		if b[i] != wb {
			t.Fatalf("byte %d: got 0x%02x, want 0x%02x", i, b[i], wb)
		}
	}
	if b[len(b)-1] != 0x01 {
		t.Fatalf("bit octet: got 0x%02x, want 0x01 (mandatory set, immediate clear)", b[len(b)-1])
	}
}

func TestBasicMethodsRoundTrip(t *testing.T) {
	nack := BasicNack{DeliveryTag: 42, Multiple: true, Requeue: true}
	if roundTrip(t, nack).(BasicNack) != nack {
		t.Fatalf("BasicNack round trip failed")
	}

	getOk := BasicGetOk{DeliveryTag: 1, Redelivered: true, Exchange: "ex", RoutingKey: "rk", MessageCount: 3}
	if roundTrip(t, getOk).(BasicGetOk) != getOk {
		t.Fatalf("BasicGetOk round trip failed")
	}

	consume := BasicConsume{Queue: "q", NoAck: true, Exclusive: true}
	got := roundTrip(t, consume).(BasicConsume)
	if !got.NoAck || !got.Exclusive || got.NoLocal || got.NoWait {
		t.Fatalf("got %+v", got)
	}
}

func TestBitRunMixedBitsRoundTrip(t *testing.T) {
	// ExchangeDeclare packs 5 consecutive bits (Passive, Durable,
	// AutoDelete, Internal, NoWait) into a single octet; verify a mixed
	// combination of set and clear bits survives the round trip, not just
	// all-true or all-false.
	m := ExchangeDeclare{Exchange: "e", Type: "direct", Passive: false, Durable: true, AutoDelete: false, Internal: true, NoWait: false}
	got := roundTrip(t, m).(ExchangeDeclare)
	if got.Passive || !got.Durable || got.AutoDelete || !got.Internal || got.NoWait {
		t.Fatalf("got %+v, want selective bits preserved", got)
	}
}

func TestUnknownClassMethodFails(t *testing.T) {
	r := wire.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	_, err := Decode(r)
	var target amqperr.UnknownClassMethod
	if !errors.As(err, &target) {
		t.Fatalf("expected UnknownClassMethod, got %v (%T)", err, err)
	}
	if target.ClassID != 0xFFFF || target.MethodID != 0xFFFF {
		t.Fatalf("got %+v", target)
	}
}

type unregisteredPayload struct{}

func (unregisteredPayload) ClassID() uint16  { return 12345 }
func (unregisteredPayload) MethodID() uint16 { return 54321 }

func TestEncodeUnregisteredPayloadFails(t *testing.T) {
	w := wire.NewWriter(0)
	err := Encode(w, unregisteredPayload{})
	var target amqperr.UnknownClassMethod
	if !errors.As(err, &target) {
		t.Fatalf("expected UnknownClassMethod, got %v (%T)", err, err)
	}
}
