package field

import (
	"errors"
	"reflect"
	"testing"

	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/wire"
)

func roundTrip(t *testing.T, v Value) Value {
	t.Helper()
	w := wire.NewWriter(0)
	if err := EncodeValue(w, v); err != nil {
		t.Fatalf("EncodeValue: %v", err)
	}
	got, err := DecodeValue(wire.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	return got
}

func TestScalarValueRoundTrip(t *testing.T) {
	cases := []Value{
		Bool(true),
		Bool(false),
		SignedOctet(-12),
		Octet(200),
		SignedShort(-1000),
		Short(60000),
		SignedLong(-70000),
		Long(4000000000),
		SignedLongLong(-1 << 40),
		LongLong(1 << 40),
		Float(3.25),
		Double(-9.5),
		Decimal(12345),
		ShortString("hi"),
		LongString("a longer piece of text"),
		Timestamp(1700000000),
		Void(),
	}
	for _, c := range cases {
		got := roundTrip(t, c)
		if !reflect.DeepEqual(got, c) {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, c)
		}
	}
}

func TestNestedTableRoundTrip(t *testing.T) {
	inner := Table{}
	inner.Set("x", Long(1))
	inner.Set("y", ShortString("z"))

	outer := Table{}
	outer.Set("name", ShortString("queue-1"))
	outer.Set("nested", NestedTable(inner))
	outer.Set("active", Bool(true))

	w := wire.NewWriter(0)
	EncodeTable(w, outer)

	got, err := DecodeTable(wire.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTable: %v", err)
	}

	if len(got.Entries) != len(outer.Entries) {
		t.Fatalf("entry count mismatch: got %d, want %d", len(got.Entries), len(outer.Entries))
	}
	name, ok := got.Get("name")
	if !ok || name.Str != "queue-1" {
		t.Fatalf("name: got %+v, ok=%v", name, ok)
	}
	nested, ok := got.Get("nested")
	if !ok || nested.Tag != TagTable {
		t.Fatalf("nested: got %+v, ok=%v", nested, ok)
	}
	innerX, ok := nested.Table.Get("x")
	if !ok || innerX.Uint32 != 1 {
		t.Fatalf("nested.x: got %+v, ok=%v", innerX, ok)
	}
	active, ok := got.Get("active")
	if !ok || active.Bool != true {
		t.Fatalf("active: got %+v, ok=%v", active, ok)
	}
}

func TestTableGetLastWriteWins(t *testing.T) {
	tbl := Table{}
	tbl.Set("dup", Long(1))
	tbl.Set("dup", Long(2))
	v, ok := tbl.Get("dup")
	if !ok || v.Uint32 != 2 {
		t.Fatalf("got %+v, ok=%v, want second write", v, ok)
	}
}

func TestByteArrayTagRejected(t *testing.T) {
	v := Value{Tag: TagByteArray}
	w := wire.NewWriter(0)
	err := EncodeValue(w, v)
	var encErr amqperr.UnsupportedFieldType
	if !errors.As(err, &encErr) {
		t.Fatalf("expected UnsupportedFieldType, got %v (%T)", err, err)
	}

	r := wire.NewReader([]byte{0x78})
	_, err = DecodeValue(r)
	var decErr amqperr.UnsupportedFieldType
	if !errors.As(err, &decErr) {
		t.Fatalf("expected UnsupportedFieldType, got %v (%T)", err, err)
	}
}

func TestUnknownTagRejected(t *testing.T) {
	r := wire.NewReader([]byte{0xAA})
	_, err := DecodeValue(r)
	var target amqperr.InvalidFieldArgumentTypeByte
	if !errors.As(err, &target) {
		t.Fatalf("expected InvalidFieldArgumentTypeByte, got %v (%T)", err, err)
	}
	if target.Byte != 0xAA {
		t.Fatalf("got byte 0x%02x, want 0xAA", target.Byte)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	a := Array{Values: []Value{Long(1), ShortString("two"), Bool(true)}}
	w := wire.NewWriter(0)
	if err := EncodeArray(w, a); err != nil {
		t.Fatalf("EncodeArray: %v", err)
	}
	got, err := DecodeArray(wire.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeArray: %v", err)
	}
	if len(got.Values) != 3 {
		t.Fatalf("got %d values, want 3", len(got.Values))
	}
	if got.Values[0].Uint32 != 1 || got.Values[1].Str != "two" || got.Values[2].Bool != true {
		t.Fatalf("unexpected values: %+v", got.Values)
	}
}

func TestEmptyTableRoundTrip(t *testing.T) {
	w := wire.NewWriter(0)
	EncodeTable(w, Table{})
	got, err := DecodeTable(wire.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTable: %v", err)
	}
	if len(got.Entries) != 0 {
		t.Fatalf("got %d entries, want 0", len(got.Entries))
	}
}
