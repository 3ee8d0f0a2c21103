package method

import (
	"github.com/amqpr/amqp-codec/field"
	"github.com/amqpr/amqp-codec/wire"
)

// Exchange method ids. Bind/BindOk/Unbind/UnbindOk are RabbitMQ
// extensions; note UnbindOk is 51, not 41.
const (
	exchangeDeclare   uint16 = 10
	exchangeDeclareOk uint16 = 11
	exchangeDelete    uint16 = 20
	exchangeDeleteOk  uint16 = 21
	exchangeBind      uint16 = 30
	exchangeBindOk    uint16 = 31
	exchangeUnbind    uint16 = 40
	exchangeUnbindOk  uint16 = 51
)

// ExchangeDeclare is client-sent: declares an exchange.
type ExchangeDeclare struct {
	Reserved1  uint16
	Exchange   string
	Type       string
	Passive    bool
	Durable    bool
	AutoDelete bool
	Internal   bool
	NoWait     bool
	Arguments  field.Table
}

func (ExchangeDeclare) ClassID() uint16  { return ClassExchange }
func (ExchangeDeclare) MethodID() uint16 { return exchangeDeclare }

// ExchangeDeclareOk confirms an ExchangeDeclare.
type ExchangeDeclareOk struct{}

func (ExchangeDeclareOk) ClassID() uint16  { return ClassExchange }
func (ExchangeDeclareOk) MethodID() uint16 { return exchangeDeclareOk }

// ExchangeDelete is client-sent: deletes an exchange.
type ExchangeDelete struct {
	Reserved1 uint16
	Exchange  string
	IfUnused  bool
	NoWait    bool
}

func (ExchangeDelete) ClassID() uint16  { return ClassExchange }
func (ExchangeDelete) MethodID() uint16 { return exchangeDelete }

// ExchangeDeleteOk confirms an ExchangeDelete.
type ExchangeDeleteOk struct{}

func (ExchangeDeleteOk) ClassID() uint16  { return ClassExchange }
func (ExchangeDeleteOk) MethodID() uint16 { return exchangeDeleteOk }

// ExchangeBind is a RabbitMQ extension: binds an exchange to an exchange.
type ExchangeBind struct {
	Reserved1   uint16
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   field.Table
}

func (ExchangeBind) ClassID() uint16  { return ClassExchange }
func (ExchangeBind) MethodID() uint16 { return exchangeBind }

// ExchangeBindOk confirms an ExchangeBind.
type ExchangeBindOk struct{}

func (ExchangeBindOk) ClassID() uint16  { return ClassExchange }
func (ExchangeBindOk) MethodID() uint16 { return exchangeBindOk }

// ExchangeUnbind is a RabbitMQ extension: removes an exchange-to-exchange
// binding.
type ExchangeUnbind struct {
	Reserved1   uint16
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   field.Table
}

func (ExchangeUnbind) ClassID() uint16  { return ClassExchange }
func (ExchangeUnbind) MethodID() uint16 { return exchangeUnbind }

// ExchangeUnbindOk confirms an ExchangeUnbind.
type ExchangeUnbindOk struct{}

func (ExchangeUnbindOk) ClassID() uint16  { return ClassExchange }
func (ExchangeUnbindOk) MethodID() uint16 { return exchangeUnbindOk }

func init() {
	register(ClassExchange, exchangeDeclare,
		func(w *wire.Writer, p Payload) error {
			m := p.(ExchangeDeclare)
			w.Short(m.Reserved1)
			w.ShortString(m.Exchange)
			w.ShortString(m.Type)
			bw := newBitWriter(w)
			bw.put(m.Passive)
			bw.put(m.Durable)
			bw.put(m.AutoDelete)
			bw.put(m.Internal)
			bw.put(m.NoWait)
			bw.flush()
			field.EncodeTable(w, m.Arguments)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ExchangeDeclare
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Exchange, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Type, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Passive, err = br.get(); err != nil {
				return nil, err
			}
			if m.Durable, err = br.get(); err != nil {
				return nil, err
			}
			if m.AutoDelete, err = br.get(); err != nil {
				return nil, err
			}
			if m.Internal, err = br.get(); err != nil {
				return nil, err
			}
			if m.NoWait, err = br.get(); err != nil {
				return nil, err
			}
			if m.Arguments, err = field.DecodeTable(r); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassExchange, exchangeDeclareOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return ExchangeDeclareOk{}, nil })

	register(ClassExchange, exchangeDelete,
		func(w *wire.Writer, p Payload) error {
			m := p.(ExchangeDelete)
			w.Short(m.Reserved1)
			w.ShortString(m.Exchange)
			bw := newBitWriter(w)
			bw.put(m.IfUnused)
			bw.put(m.NoWait)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ExchangeDelete
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Exchange, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.IfUnused, err = br.get(); err != nil {
				return nil, err
			}
			if m.NoWait, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassExchange, exchangeDeleteOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return ExchangeDeleteOk{}, nil })

	register(ClassExchange, exchangeBind,
		func(w *wire.Writer, p Payload) error {
			m := p.(ExchangeBind)
			w.Short(m.Reserved1)
			w.ShortString(m.Destination)
			w.ShortString(m.Source)
			w.ShortString(m.RoutingKey)
			bw := newBitWriter(w)
			bw.put(m.NoWait)
			bw.flush()
			field.EncodeTable(w, m.Arguments)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ExchangeBind
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Destination, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Source, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.RoutingKey, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.NoWait, err = br.get(); err != nil {
				return nil, err
			}
			if m.Arguments, err = field.DecodeTable(r); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassExchange, exchangeBindOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return ExchangeBindOk{}, nil })

	register(ClassExchange, exchangeUnbind,
		func(w *wire.Writer, p Payload) error {
			m := p.(ExchangeUnbind)
			w.Short(m.Reserved1)
			w.ShortString(m.Destination)
			w.ShortString(m.Source)
			w.ShortString(m.RoutingKey)
			bw := newBitWriter(w)
			bw.put(m.NoWait)
			bw.flush()
			field.EncodeTable(w, m.Arguments)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ExchangeUnbind
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Destination, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Source, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.RoutingKey, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.NoWait, err = br.get(); err != nil {
				return nil, err
			}
			if m.Arguments, err = field.DecodeTable(r); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassExchange, exchangeUnbindOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return ExchangeUnbindOk{}, nil })
}
