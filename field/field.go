// Package field implements the AMQP field-table grammar: a recursive,
// dynamically-tagged key-value map used both as a method argument type
// (e.g. connection.start's server-properties) and as a content-header
// property (basic.headers).
//
// A field-table's wire length is a byte count of its body, not an entry
// count, so encoding always buffers the body first and splices in the
// length afterward rather than trying to predict it.
package field

import (
	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/wire"
)

// Tag is the one-byte type discriminator that precedes every field value
// on the wire.
type Tag byte

// Recognized field value tags.
const (
	TagBoolean        Tag = 0x74
	TagSignedOctet    Tag = 0x62
	TagOctet          Tag = 0x42
	TagSignedShort    Tag = 0x55
	TagShort          Tag = 0x75
	TagSignedLong     Tag = 0x49
	TagLong           Tag = 0x69
	TagSignedLongLong Tag = 0x4C
	TagLongLong       Tag = 0x6C
	TagFloat          Tag = 0x66
	TagDouble         Tag = 0x63
	TagDecimal        Tag = 0x44
	TagShortString    Tag = 0x73
	TagLongString     Tag = 0x53
	TagTimestamp      Tag = 0x54
	TagTable          Tag = 0x46
	TagVoid           Tag = 0x56
	TagByteArray      Tag = 0x78 // recognized, but its payload layout is undefined: always an error
)

// Value is a tagged union over the seventeen (plus the unsupported 0x78)
// field-argument variants. Exactly one of the typed fields is meaningful,
// selected by Tag; Go's `any` is avoided in favor of a flat struct so the
// zero Value is well-defined and comparable enough for tests.
type Value struct {
	Tag Tag

	Bool    bool
	Int8    int8
	Uint8   uint8
	Int16   int16
	Uint16  uint16
	Int32   int32
	Uint32  uint32
	Int64   int64 // also carries Decimal, which is stored scale-less and therefore lossy
	Uint64  uint64
	Float32 float32
	Float64 float64
	Str     string
	Table   Table
}

// Constructors, one per variant.

func Bool(v bool) Value      { return Value{Tag: TagBoolean, Bool: v} }
func SignedOctet(v int8) Value { return Value{Tag: TagSignedOctet, Int8: v} }
func Octet(v uint8) Value    { return Value{Tag: TagOctet, Uint8: v} }
func SignedShort(v int16) Value { return Value{Tag: TagSignedShort, Int16: v} }
func Short(v uint16) Value   { return Value{Tag: TagShort, Uint16: v} }
func SignedLong(v int32) Value { return Value{Tag: TagSignedLong, Int32: v} }
func Long(v uint32) Value    { return Value{Tag: TagLong, Uint32: v} }
func SignedLongLong(v int64) Value { return Value{Tag: TagSignedLongLong, Int64: v} }
func LongLong(v uint64) Value { return Value{Tag: TagLongLong, Uint64: v} }
func Float(v float32) Value  { return Value{Tag: TagFloat, Float32: v} }
func Double(v float64) Value { return Value{Tag: TagDouble, Float64: v} }
func Decimal(v int64) Value  { return Value{Tag: TagDecimal, Int64: v} }
func ShortString(v string) Value { return Value{Tag: TagShortString, Str: v} }
func LongString(v string) Value { return Value{Tag: TagLongString, Str: v} }
func Timestamp(v uint64) Value { return Value{Tag: TagTimestamp, Uint64: v} }
func NestedTable(v Table) Value { return Value{Tag: TagTable, Table: v} }
func Void() Value             { return Value{Tag: TagVoid} }

// Entry is a single (name, value) pair of a field-table. Tables preserve
// entries in wire order rather than collapsing into a Go map: the wire
// format never enforces key uniqueness, and keeping entries ordered makes
// encoding deterministic and byte-reproducible, which a map would not.
type Entry struct {
	Name  string
	Value Value
}

// Table is an ordered sequence of field-table entries.
type Table struct {
	Entries []Entry
}

// Set appends a new entry. It does not deduplicate: the wire format
// allows duplicate keys, and callers that want map semantics should use
// Get, which returns the last matching entry (last write wins).
func (t *Table) Set(name string, v Value) {
	t.Entries = append(t.Entries, Entry{Name: name, Value: v})
}

// Get returns the last entry matching name, mirroring what reading the
// table back into a map would produce.
func (t Table) Get(name string) (Value, bool) {
	for i := len(t.Entries) - 1; i >= 0; i-- {
		if t.Entries[i].Name == name {
			return t.Entries[i].Value, true
		}
	}
	return Value{}, false
}

// Array is an AMQP field-array: identical framing to a table except
// entries are bare values with no name prefix. No method schema uses an
// array-typed argument, and the field value grammar here has no array
// tag, so DecodeValue rejects an array nested inside a table; an Array is
// only read and written through DecodeArray and EncodeArray.
type Array struct {
	Values []Value
}

// DecodeValue reads one tag byte followed by its tag-specific encoding.
func DecodeValue(r *wire.Reader) (Value, error) {
	tagByte, err := r.Octet()
	if err != nil {
		return Value{}, err
	}
	tag := Tag(tagByte)
	switch tag {
	case TagBoolean:
		b, err := r.Octet()
		if err != nil {
			return Value{}, err
		}
		return Bool(b != 0), nil
	case TagSignedOctet:
		b, err := r.Octet()
		if err != nil {
			return Value{}, err
		}
		return SignedOctet(int8(b)), nil
	case TagOctet:
		b, err := r.Octet()
		if err != nil {
			return Value{}, err
		}
		return Octet(b), nil
	case TagSignedShort:
		v, err := r.Short()
		if err != nil {
			return Value{}, err
		}
		return SignedShort(int16(v)), nil
	case TagShort:
		v, err := r.Short()
		if err != nil {
			return Value{}, err
		}
		return Short(v), nil
	case TagSignedLong:
		v, err := r.Long()
		if err != nil {
			return Value{}, err
		}
		return SignedLong(int32(v)), nil
	case TagLong:
		v, err := r.Long()
		if err != nil {
			return Value{}, err
		}
		return Long(v), nil
	case TagSignedLongLong:
		v, err := r.LongLong()
		if err != nil {
			return Value{}, err
		}
		return SignedLongLong(int64(v)), nil
	case TagLongLong:
		v, err := r.LongLong()
		if err != nil {
			return Value{}, err
		}
		return LongLong(v), nil
	case TagFloat:
		v, err := r.Float32()
		if err != nil {
			return Value{}, err
		}
		return Float(v), nil
	case TagDouble:
		v, err := r.Float64()
		if err != nil {
			return Value{}, err
		}
		return Double(v), nil
	case TagDecimal:
		v, err := r.LongLong()
		if err != nil {
			return Value{}, err
		}
		return Decimal(int64(v)), nil
	case TagShortString:
		s, err := r.ShortString()
		if err != nil {
			return Value{}, err
		}
		return ShortString(s), nil
	case TagLongString:
		s, err := r.LongString()
		if err != nil {
			return Value{}, err
		}
		return LongString(s), nil
	case TagTimestamp:
		v, err := r.Timestamp()
		if err != nil {
			return Value{}, err
		}
		return Timestamp(v), nil
	case TagTable:
		t, err := DecodeTable(r)
		if err != nil {
			return Value{}, err
		}
		return NestedTable(t), nil
	case TagVoid:
		return Void(), nil
	case TagByteArray:
		return Value{}, amqperr.UnsupportedFieldType{Tag: byte(tag)}
	default:
		return Value{}, amqperr.InvalidFieldArgumentTypeByte{Byte: byte(tag)}
	}
}

// EncodeValue writes v's tag byte followed by its tag-specific encoding.
func EncodeValue(w *wire.Writer, v Value) error {
	w.Octet(byte(v.Tag))
	switch v.Tag {
	case TagBoolean:
		if v.Bool {
			w.Octet(1)
		} else {
			w.Octet(0)
		}
	case TagSignedOctet:
		w.Octet(byte(v.Int8))
	case TagOctet:
		w.Octet(v.Uint8)
	case TagSignedShort:
		w.Short(uint16(v.Int16))
	case TagShort:
		w.Short(v.Uint16)
	case TagSignedLong:
		w.Long(uint32(v.Int32))
	case TagLong:
		w.Long(v.Uint32)
	case TagSignedLongLong:
		w.LongLong(uint64(v.Int64))
	case TagLongLong:
		w.LongLong(v.Uint64)
	case TagFloat:
		w.Float32(v.Float32)
	case TagDouble:
		w.Float64(v.Float64)
	case TagDecimal:
		w.LongLong(uint64(v.Int64))
	case TagShortString:
		w.ShortString(v.Str)
	case TagLongString:
		w.LongString(v.Str)
	case TagTimestamp:
		w.Timestamp(v.Uint64)
	case TagTable:
		EncodeTable(w, v.Table)
	case TagVoid:
		// no payload
	case TagByteArray:
		return amqperr.UnsupportedFieldType{Tag: byte(v.Tag)}
	default:
		return amqperr.InvalidFieldArgumentTypeByte{Byte: byte(v.Tag)}
	}
	return nil
}

// DecodeTable reads a u32 body-length prefix and then entries (name,
// tagged value) until exactly that many bytes have been consumed.
// Recursion into nested tables reuses these same rules.
func DecodeTable(r *wire.Reader) (Table, error) {
	length, err := r.Long()
	if err != nil {
		return Table{}, err
	}
	body, err := r.Raw(int(length))
	if err != nil {
		return Table{}, err
	}
	inner := wire.NewReader(body)
	var t Table
	for inner.Len() > 0 {
		name, err := inner.ShortString()
		if err != nil {
			return Table{}, err
		}
		v, err := DecodeValue(inner)
		if err != nil {
			return Table{}, err
		}
		t.Entries = append(t.Entries, Entry{Name: name, Value: v})
	}
	return t, nil
}

// EncodeTable writes t's entries into a scratch buffer, then splices a u32
// length prefix computed from that buffer's final size. The length is
// always measured from the encoded body, never pre-computed.
func EncodeTable(w *wire.Writer, t Table) {
	body := wire.NewWriter(64)
	for _, e := range t.Entries {
		body.ShortString(e.Name)
		if err := EncodeValue(body, e.Value); err != nil {
			// Only reachable with a hand-built Entry carrying a bad Tag;
			// the typed constructors never produce one.
			panic(err)
		}
	}
	w.LongBytes(body.Bytes())
}

// DecodeArray reads a u32 body-length prefix followed by bare values (no
// name prefix) until exactly that many bytes have been consumed.
func DecodeArray(r *wire.Reader) (Array, error) {
	length, err := r.Long()
	if err != nil {
		return Array{}, err
	}
	body, err := r.Raw(int(length))
	if err != nil {
		return Array{}, err
	}
	inner := wire.NewReader(body)
	var a Array
	for inner.Len() > 0 {
		v, err := DecodeValue(inner)
		if err != nil {
			return Array{}, err
		}
		a.Values = append(a.Values, v)
	}
	return a, nil
}

// EncodeArray writes a's values into a scratch buffer, then splices a u32
// length prefix, identical in spirit to EncodeTable.
func EncodeArray(w *wire.Writer, a Array) error {
	body := wire.NewWriter(64)
	for _, v := range a.Values {
		if err := EncodeValue(body, v); err != nil {
			return err
		}
	}
	w.LongBytes(body.Bytes())
	return nil
}
