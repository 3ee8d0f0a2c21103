package method

import (
	"github.com/amqpr/amqp-codec/field"
	"github.com/amqpr/amqp-codec/wire"
)

// Basic method ids. Nack=120 is a RabbitMQ extension.
const (
	basicQos          uint16 = 10
	basicQosOk        uint16 = 11
	basicConsume      uint16 = 20
	basicConsumeOk    uint16 = 21
	basicCancel       uint16 = 30
	basicCancelOk     uint16 = 31
	basicPublish      uint16 = 40
	basicReturn       uint16 = 50
	basicDeliver      uint16 = 60
	basicGet          uint16 = 70
	basicGetOk        uint16 = 71
	basicGetEmpty     uint16 = 72
	basicAck          uint16 = 80
	basicReject       uint16 = 90
	basicRecoverAsync uint16 = 100
	basicRecover      uint16 = 110
	basicRecoverOk    uint16 = 111
	basicNack         uint16 = 120
)

// BasicQos is client-sent: sets prefetch limits for the channel (or
// connection, if Global is set).
type BasicQos struct {
	PrefetchSize  uint32
	PrefetchCount uint16
	Global        bool
}

func (BasicQos) ClassID() uint16  { return ClassBasic }
func (BasicQos) MethodID() uint16 { return basicQos }

// BasicQosOk confirms a BasicQos.
type BasicQosOk struct{}

func (BasicQosOk) ClassID() uint16  { return ClassBasic }
func (BasicQosOk) MethodID() uint16 { return basicQosOk }

// BasicConsume is client-sent: starts a consumer on a queue.
type BasicConsume struct {
	Reserved1   uint16
	Queue       string
	ConsumerTag string
	NoLocal     bool
	NoAck       bool
	Exclusive   bool
	NoWait      bool
	Arguments   field.Table
}

func (BasicConsume) ClassID() uint16  { return ClassBasic }
func (BasicConsume) MethodID() uint16 { return basicConsume }

// BasicConsumeOk confirms a BasicConsume, returning the server-assigned
// consumer tag if the client didn't supply one.
type BasicConsumeOk struct {
	ConsumerTag string
}

func (BasicConsumeOk) ClassID() uint16  { return ClassBasic }
func (BasicConsumeOk) MethodID() uint16 { return basicConsumeOk }

// BasicCancel is client-sent: ends a consumer.
type BasicCancel struct {
	ConsumerTag string
	NoWait      bool
}

func (BasicCancel) ClassID() uint16  { return ClassBasic }
func (BasicCancel) MethodID() uint16 { return basicCancel }

// BasicCancelOk confirms a BasicCancel.
type BasicCancelOk struct {
	ConsumerTag string
}

func (BasicCancelOk) ClassID() uint16  { return ClassBasic }
func (BasicCancelOk) MethodID() uint16 { return basicCancelOk }

// BasicPublish is client-sent: publishes a message; the method frame is
// always immediately followed by a content-header and content-body frame
// pair.
type BasicPublish struct {
	Reserved1  uint16
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
}

func (BasicPublish) ClassID() uint16  { return ClassBasic }
func (BasicPublish) MethodID() uint16 { return basicPublish }

// BasicReturn is broker-sent: a published message could not be routed
// (Mandatory/Immediate) and is being returned to the publisher.
type BasicReturn struct {
	ReplyCode  uint16
	ReplyText  string
	Exchange   string
	RoutingKey string
}

func (BasicReturn) ClassID() uint16  { return ClassBasic }
func (BasicReturn) MethodID() uint16 { return basicReturn }

// BasicDeliver is broker-sent: delivers a message to a consumer.
type BasicDeliver struct {
	ConsumerTag string
	DeliveryTag uint64
	Redelivered bool
	Exchange    string
	RoutingKey  string
}

func (BasicDeliver) ClassID() uint16  { return ClassBasic }
func (BasicDeliver) MethodID() uint16 { return basicDeliver }

// BasicGet is client-sent: a synchronous pull of a single message.
type BasicGet struct {
	Reserved1 uint16
	Queue     string
	NoAck     bool
}

func (BasicGet) ClassID() uint16  { return ClassBasic }
func (BasicGet) MethodID() uint16 { return basicGet }

// BasicGetOk is broker-sent: a message was available for BasicGet.
type BasicGetOk struct {
	DeliveryTag  uint64
	Redelivered  bool
	Exchange     string
	RoutingKey   string
	MessageCount uint32
}

func (BasicGetOk) ClassID() uint16  { return ClassBasic }
func (BasicGetOk) MethodID() uint16 { return basicGetOk }

// BasicGetEmpty is broker-sent: no message was available for BasicGet.
type BasicGetEmpty struct {
	Reserved1 string // historically "cluster-id"
}

func (BasicGetEmpty) ClassID() uint16  { return ClassBasic }
func (BasicGetEmpty) MethodID() uint16 { return basicGetEmpty }

// BasicAck is sent by either side: acknowledges one or more deliveries.
type BasicAck struct {
	DeliveryTag uint64
	Multiple    bool
}

func (BasicAck) ClassID() uint16  { return ClassBasic }
func (BasicAck) MethodID() uint16 { return basicAck }

// BasicReject is client-sent: rejects a single delivery.
type BasicReject struct {
	DeliveryTag uint64
	Requeue     bool
}

func (BasicReject) ClassID() uint16  { return ClassBasic }
func (BasicReject) MethodID() uint16 { return basicReject }

// BasicRecoverAsync is client-sent and deprecated in favor of
// BasicRecover, but still part of the wire grammar.
type BasicRecoverAsync struct {
	Requeue bool
}

func (BasicRecoverAsync) ClassID() uint16  { return ClassBasic }
func (BasicRecoverAsync) MethodID() uint16 { return basicRecoverAsync }

// BasicRecover is client-sent: asks the broker to redeliver unacked
// messages on this channel.
type BasicRecover struct {
	Requeue bool
}

func (BasicRecover) ClassID() uint16  { return ClassBasic }
func (BasicRecover) MethodID() uint16 { return basicRecover }

// BasicRecoverOk confirms a BasicRecover.
type BasicRecoverOk struct{}

func (BasicRecoverOk) ClassID() uint16  { return ClassBasic }
func (BasicRecoverOk) MethodID() uint16 { return basicRecoverOk }

// BasicNack is a RabbitMQ extension: the negative-acknowledgement
// counterpart of BasicAck, supporting requeue and multi-ack.
type BasicNack struct {
	DeliveryTag uint64
	Multiple    bool
	Requeue     bool
}

func (BasicNack) ClassID() uint16  { return ClassBasic }
func (BasicNack) MethodID() uint16 { return basicNack }

func init() {
	register(ClassBasic, basicQos,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicQos)
			w.Long(m.PrefetchSize)
			w.Short(m.PrefetchCount)
			bw := newBitWriter(w)
			bw.put(m.Global)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicQos
			var err error
			if m.PrefetchSize, err = r.Long(); err != nil {
				return nil, err
			}
			if m.PrefetchCount, err = r.Short(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Global, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicQosOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return BasicQosOk{}, nil })

	register(ClassBasic, basicConsume,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicConsume)
			w.Short(m.Reserved1)
			w.ShortString(m.Queue)
			w.ShortString(m.ConsumerTag)
			bw := newBitWriter(w)
			bw.put(m.NoLocal)
			bw.put(m.NoAck)
			bw.put(m.Exclusive)
			bw.put(m.NoWait)
			bw.flush()
			field.EncodeTable(w, m.Arguments)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicConsume
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Queue, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.ConsumerTag, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.NoLocal, err = br.get(); err != nil {
				return nil, err
			}
			if m.NoAck, err = br.get(); err != nil {
				return nil, err
			}
			if m.Exclusive, err = br.get(); err != nil {
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

	register(ClassBasic, basicConsumeOk,
		func(w *wire.Writer, p Payload) error {
			w.ShortString(p.(BasicConsumeOk).ConsumerTag)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.ShortString()
			if err != nil {
				return nil, err
			}
			return BasicConsumeOk{ConsumerTag: s}, nil
		})

	register(ClassBasic, basicCancel,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicCancel)
			w.ShortString(m.ConsumerTag)
			bw := newBitWriter(w)
			bw.put(m.NoWait)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicCancel
			var err error
			if m.ConsumerTag, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.NoWait, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicCancelOk,
		func(w *wire.Writer, p Payload) error {
			w.ShortString(p.(BasicCancelOk).ConsumerTag)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.ShortString()
			if err != nil {
				return nil, err
			}
			return BasicCancelOk{ConsumerTag: s}, nil
		})

	register(ClassBasic, basicPublish,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicPublish)
			w.Short(m.Reserved1)
			w.ShortString(m.Exchange)
			w.ShortString(m.RoutingKey)
			bw := newBitWriter(w)
			bw.put(m.Mandatory)
			bw.put(m.Immediate)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicPublish
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Exchange, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.RoutingKey, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Mandatory, err = br.get(); err != nil {
				return nil, err
			}
			if m.Immediate, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicReturn,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicReturn)
			w.Short(m.ReplyCode)
			w.ShortString(m.ReplyText)
			w.ShortString(m.Exchange)
			w.ShortString(m.RoutingKey)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicReturn
			var err error
			if m.ReplyCode, err = r.Short(); err != nil {
				return nil, err
			}
			if m.ReplyText, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Exchange, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.RoutingKey, err = r.ShortString(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicDeliver,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicDeliver)
			w.ShortString(m.ConsumerTag)
			w.LongLong(m.DeliveryTag)
			bw := newBitWriter(w)
			bw.put(m.Redelivered)
			bw.flush()
			w.ShortString(m.Exchange)
			w.ShortString(m.RoutingKey)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicDeliver
			var err error
			if m.ConsumerTag, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.DeliveryTag, err = r.LongLong(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Redelivered, err = br.get(); err != nil {
				return nil, err
			}
			if m.Exchange, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.RoutingKey, err = r.ShortString(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicGet,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicGet)
			w.Short(m.Reserved1)
			w.ShortString(m.Queue)
			bw := newBitWriter(w)
			bw.put(m.NoAck)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicGet
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Queue, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.NoAck, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicGetOk,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicGetOk)
			w.LongLong(m.DeliveryTag)
			bw := newBitWriter(w)
			bw.put(m.Redelivered)
			bw.flush()
			w.ShortString(m.Exchange)
			w.ShortString(m.RoutingKey)
			w.Long(m.MessageCount)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicGetOk
			var err error
			if m.DeliveryTag, err = r.LongLong(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Redelivered, err = br.get(); err != nil {
				return nil, err
			}
			if m.Exchange, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.RoutingKey, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.MessageCount, err = r.Long(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicGetEmpty,
		func(w *wire.Writer, p Payload) error {
			w.ShortString(p.(BasicGetEmpty).Reserved1)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.ShortString()
			if err != nil {
				return nil, err
			}
			return BasicGetEmpty{Reserved1: s}, nil
		})

	register(ClassBasic, basicAck,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicAck)
			w.LongLong(m.DeliveryTag)
			bw := newBitWriter(w)
			bw.put(m.Multiple)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicAck
			var err error
			if m.DeliveryTag, err = r.LongLong(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Multiple, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicReject,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicReject)
			w.LongLong(m.DeliveryTag)
			bw := newBitWriter(w)
			bw.put(m.Requeue)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicReject
			var err error
			if m.DeliveryTag, err = r.LongLong(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Requeue, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassBasic, basicRecoverAsync,
		func(w *wire.Writer, p Payload) error {
			bw := newBitWriter(w)
			bw.put(p.(BasicRecoverAsync).Requeue)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			br := newBitReader(r)
			requeue, err := br.get()
			if err != nil {
				return nil, err
			}
			return BasicRecoverAsync{Requeue: requeue}, nil
		})

	register(ClassBasic, basicRecover,
		func(w *wire.Writer, p Payload) error {
			bw := newBitWriter(w)
			bw.put(p.(BasicRecover).Requeue)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			br := newBitReader(r)
			requeue, err := br.get()
			if err != nil {
				return nil, err
			}
			return BasicRecover{Requeue: requeue}, nil
		})

	register(ClassBasic, basicRecoverOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return BasicRecoverOk{}, nil })

	register(ClassBasic, basicNack,
		func(w *wire.Writer, p Payload) error {
			m := p.(BasicNack)
			w.LongLong(m.DeliveryTag)
			bw := newBitWriter(w)
			bw.put(m.Multiple)
			bw.put(m.Requeue)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m BasicNack
			var err error
			if m.DeliveryTag, err = r.LongLong(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Multiple, err = br.get(); err != nil {
				return nil, err
			}
			if m.Requeue, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})
}
