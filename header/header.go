// Package header implements the content-header frame payload: the fixed
// 12-byte class-id/weight/body-size prefix, the 16-bit property-flags
// word, and the conditional property list.
package header

import (
	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/field"
	"github.com/amqpr/amqp-codec/wire"
)

// Properties holds the thirteen canonical content-header properties in
// their fixed wire order. A nil field means "not present".
type Properties struct {
	ContentType     *string
	ContentEncoding *string
	Headers         *field.Table
	DeliveryMode    *uint8
	Priority        *uint8
	CorrelationID   *string
	ReplyTo         *string
	Expiration      *string
	MessageID       *string
	Timestamp       *uint64
	Type            *string
	UserID          *string
	AppID           *string
}

// Each canonical property occupies bit (15 - index) of the flags word;
// index 0 is content_type.
const numProperties = 13

// present reports, for each of the 13 properties in canonical order,
// whether it is set on p.
func (p Properties) present() [numProperties]bool {
	return [numProperties]bool{
		p.ContentType != nil,
		p.ContentEncoding != nil,
		p.Headers != nil,
		p.DeliveryMode != nil,
		p.Priority != nil,
		p.CorrelationID != nil,
		p.ReplyTo != nil,
		p.Expiration != nil,
		p.MessageID != nil,
		p.Timestamp != nil,
		p.Type != nil,
		p.UserID != nil,
		p.AppID != nil,
	}
}

// flagsWord computes the 16-bit property-flags word: bit (15-i) set iff
// the i-th property (0-indexed, canonical order) is present. Bit 0 is the
// continuation bit and always stays clear; this codec never emits a
// second flags word.
func flagsWord(present [numProperties]bool) uint16 {
	var flags uint16
	for i, set := range present {
		if set {
			flags |= 1 << uint(15-i)
		}
	}
	return flags
}

// Payload is the full content-header frame payload.
type Payload struct {
	ClassID    uint16
	BodySize   uint64
	Properties Properties
}

// Encode writes the fixed prefix, flags word, and conditional property
// list for p.
func Encode(w *wire.Writer, p Payload) error {
	w.Short(p.ClassID)
	w.Short(0) // weight, always zero
	w.LongLong(p.BodySize)

	present := p.Properties.present()
	w.Short(flagsWord(present))

	props := &p.Properties
	if present[0] {
		w.ShortString(*props.ContentType)
	}
	if present[1] {
		w.ShortString(*props.ContentEncoding)
	}
	if present[2] {
		field.EncodeTable(w, *props.Headers)
	}
	if present[3] {
		w.Octet(*props.DeliveryMode)
	}
	if present[4] {
		w.Octet(*props.Priority)
	}
	if present[5] {
		w.ShortString(*props.CorrelationID)
	}
	if present[6] {
		w.ShortString(*props.ReplyTo)
	}
	if present[7] {
		w.ShortString(*props.Expiration)
	}
	if present[8] {
		w.ShortString(*props.MessageID)
	}
	if present[9] {
		w.Timestamp(*props.Timestamp)
	}
	if present[10] {
		w.ShortString(*props.Type)
	}
	if present[11] {
		w.ShortString(*props.UserID)
	}
	if present[12] {
		w.ShortString(*props.AppID)
	}
	return nil
}

// Decode reads a content-header payload. weight must be zero; a set
// continuation bit (bit 0 of the flags word) is rejected rather than
// guessed at, since no property is defined past the thirteenth.
func Decode(r *wire.Reader) (Payload, error) {
	classID, err := r.Short()
	if err != nil {
		return Payload{}, err
	}
	weight, err := r.Short()
	if err != nil {
		return Payload{}, err
	}
	if weight != 0 {
		return Payload{}, amqperr.ErrInvalidWeight
	}
	bodySize, err := r.LongLong()
	if err != nil {
		return Payload{}, err
	}
	flags, err := r.Short()
	if err != nil {
		return Payload{}, err
	}
	if flags&0x0001 != 0 {
		return Payload{}, amqperr.ErrUnsupportedContinuation
	}

	var props Properties
	bit := func(i int) bool { return flags&(1<<uint(15-i)) != 0 }

	if bit(0) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.ContentType = &s
	}
	if bit(1) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.ContentEncoding = &s
	}
	if bit(2) {
		t, err := field.DecodeTable(r)
		if err != nil {
			return Payload{}, err
		}
		props.Headers = &t
	}
	if bit(3) {
		b, err := r.Octet()
		if err != nil {
			return Payload{}, err
		}
		props.DeliveryMode = &b
	}
	if bit(4) {
		b, err := r.Octet()
		if err != nil {
			return Payload{}, err
		}
		props.Priority = &b
	}
	if bit(5) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.CorrelationID = &s
	}
	if bit(6) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.ReplyTo = &s
	}
	if bit(7) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.Expiration = &s
	}
	if bit(8) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.MessageID = &s
	}
	if bit(9) {
		ts, err := r.Timestamp()
		if err != nil {
			return Payload{}, err
		}
		props.Timestamp = &ts
	}
	if bit(10) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.Type = &s
	}
	if bit(11) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.UserID = &s
	}
	if bit(12) {
		s, err := r.ShortString()
		if err != nil {
			return Payload{}, err
		}
		props.AppID = &s
	}

	return Payload{ClassID: classID, BodySize: bodySize, Properties: props}, nil
}
