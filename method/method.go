// Package method implements the per-(class-id, method-id) argument
// schemas for AMQP 0-9-1 method frames. There is no generic
// argument-list type on the wire: every method has a closed, fixed
// schema, transcribed here from the AMQP 0-9-1 reference and its
// RabbitMQ extensions.
package method

import (
	"github.com/amqpr/amqp-codec/amqperr"
	"github.com/amqpr/amqp-codec/wire"
)

// Class IDs.
const (
	ClassConnection uint16 = 10
	ClassChannel    uint16 = 20
	ClassExchange   uint16 = 40
	ClassQueue      uint16 = 50
	ClassBasic      uint16 = 60
	ClassTx         uint16 = 90
)

// Payload is a decoded method-frame argument list, tagged implicitly by
// its concrete Go type. ClassID/MethodID identify the schema that was
// used to decode it and that Encode will re-apply.
type Payload interface {
	ClassID() uint16
	MethodID() uint16
}

// key identifies a method schema by its class/method id pair.
type key struct {
	class  uint16
	method uint16
}

type encodeFunc func(w *wire.Writer, p Payload) error
type decodeFunc func(r *wire.Reader) (Payload, error)

var (
	encoders = map[key]encodeFunc{}
	decoders = map[key]decodeFunc{}
)

// register wires a method's encode/decode pair into the dispatch tables.
// Called from each class's init() in this package.
func register(class, methodID uint16, enc encodeFunc, dec decodeFunc) {
	k := key{class: class, method: methodID}
	encoders[k] = enc
	decoders[k] = dec
}

// Encode writes class_id, method_id, and p's argument sequence.
func Encode(w *wire.Writer, p Payload) error {
	k := key{class: p.ClassID(), method: p.MethodID()}
	enc, ok := encoders[k]
	if !ok {
		return amqperr.UnknownClassMethod{ClassID: p.ClassID(), MethodID: p.MethodID()}
	}
	w.Short(p.ClassID())
	w.Short(p.MethodID())
	return enc(w, p)
}

// Decode reads class_id and method_id, then dispatches to the matching
// schema's argument decoder. Unknown pairs fail with UnknownClassMethod.
func Decode(r *wire.Reader) (Payload, error) {
	classID, err := r.Short()
	if err != nil {
		return nil, err
	}
	methodID, err := r.Short()
	if err != nil {
		return nil, err
	}
	dec, ok := decoders[key{class: classID, method: methodID}]
	if !ok {
		return nil, amqperr.UnknownClassMethod{ClassID: classID, MethodID: methodID}
	}
	return dec(r)
}
