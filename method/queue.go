package method

import (
	"github.com/amqpr/amqp-codec/field"
	"github.com/amqpr/amqp-codec/wire"
)

// Queue method ids.
const (
	queueDeclare   uint16 = 10
	queueDeclareOk uint16 = 11
	queueBind      uint16 = 20
	queueBindOk    uint16 = 21
	queuePurge     uint16 = 30
	queuePurgeOk   uint16 = 31
	queueDelete    uint16 = 40
	queueDeleteOk  uint16 = 41
	queueUnbind    uint16 = 50
	queueUnbindOk  uint16 = 51
)

// QueueDeclare is client-sent: declares a queue.
type QueueDeclare struct {
	Reserved1  uint16
	Queue      string
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Arguments  field.Table
}

func (QueueDeclare) ClassID() uint16  { return ClassQueue }
func (QueueDeclare) MethodID() uint16 { return queueDeclare }

// QueueDeclareOk confirms a QueueDeclare, reporting current counts.
type QueueDeclareOk struct {
	Queue         string
	MessageCount  uint32
	ConsumerCount uint32
}

func (QueueDeclareOk) ClassID() uint16  { return ClassQueue }
func (QueueDeclareOk) MethodID() uint16 { return queueDeclareOk }

// QueueBind is client-sent: binds a queue to an exchange.
type QueueBind struct {
	Reserved1  uint16
	Queue      string
	Exchange   string
	RoutingKey string
	NoWait     bool
	Arguments  field.Table
}

func (QueueBind) ClassID() uint16  { return ClassQueue }
func (QueueBind) MethodID() uint16 { return queueBind }

// QueueBindOk confirms a QueueBind.
type QueueBindOk struct{}

func (QueueBindOk) ClassID() uint16  { return ClassQueue }
func (QueueBindOk) MethodID() uint16 { return queueBindOk }

// QueuePurge is client-sent: discards all messages in a queue.
type QueuePurge struct {
	Reserved1 uint16
	Queue     string
	NoWait    bool
}

func (QueuePurge) ClassID() uint16  { return ClassQueue }
func (QueuePurge) MethodID() uint16 { return queuePurge }

// QueuePurgeOk confirms a QueuePurge, reporting the number purged.
type QueuePurgeOk struct {
	MessageCount uint32
}

func (QueuePurgeOk) ClassID() uint16  { return ClassQueue }
func (QueuePurgeOk) MethodID() uint16 { return queuePurgeOk }

// QueueDelete is client-sent: deletes a queue.
type QueueDelete struct {
	Reserved1 uint16
	Queue     string
	IfUnused  bool
	IfEmpty   bool
	NoWait    bool
}

func (QueueDelete) ClassID() uint16  { return ClassQueue }
func (QueueDelete) MethodID() uint16 { return queueDelete }

// QueueDeleteOk confirms a QueueDelete, reporting the number of messages
// that were in the queue when it was deleted.
type QueueDeleteOk struct {
	MessageCount uint32
}

func (QueueDeleteOk) ClassID() uint16  { return ClassQueue }
func (QueueDeleteOk) MethodID() uint16 { return queueDeleteOk }

// QueueUnbind is client-sent: removes a queue-to-exchange binding.
type QueueUnbind struct {
	Reserved1  uint16
	Queue      string
	Exchange   string
	RoutingKey string
	Arguments  field.Table
}

func (QueueUnbind) ClassID() uint16  { return ClassQueue }
func (QueueUnbind) MethodID() uint16 { return queueUnbind }

// QueueUnbindOk confirms a QueueUnbind.
type QueueUnbindOk struct{}

func (QueueUnbindOk) ClassID() uint16  { return ClassQueue }
func (QueueUnbindOk) MethodID() uint16 { return queueUnbindOk }

func init() {
	register(ClassQueue, queueDeclare,
		func(w *wire.Writer, p Payload) error {
			m := p.(QueueDeclare)
			w.Short(m.Reserved1)
			w.ShortString(m.Queue)
			bw := newBitWriter(w)
			bw.put(m.Passive)
			bw.put(m.Durable)
			bw.put(m.Exclusive)
			bw.put(m.AutoDelete)
			bw.put(m.NoWait)
			bw.flush()
			field.EncodeTable(w, m.Arguments)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m QueueDeclare
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Queue, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Passive, err = br.get(); err != nil {
				return nil, err
			}
			if m.Durable, err = br.get(); err != nil {
				return nil, err
			}
			if m.Exclusive, err = br.get(); err != nil {
				return nil, err
			}
			if m.AutoDelete, err = br.get(); err != nil {
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

	register(ClassQueue, queueDeclareOk,
		func(w *wire.Writer, p Payload) error {
			m := p.(QueueDeclareOk)
			w.ShortString(m.Queue)
			w.Long(m.MessageCount)
			w.Long(m.ConsumerCount)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m QueueDeclareOk
			var err error
			if m.Queue, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.MessageCount, err = r.Long(); err != nil {
				return nil, err
			}
			if m.ConsumerCount, err = r.Long(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassQueue, queueBind,
		func(w *wire.Writer, p Payload) error {
			m := p.(QueueBind)
			w.Short(m.Reserved1)
			w.ShortString(m.Queue)
			w.ShortString(m.Exchange)
			w.ShortString(m.RoutingKey)
			bw := newBitWriter(w)
			bw.put(m.NoWait)
			bw.flush()
			field.EncodeTable(w, m.Arguments)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m QueueBind
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Queue, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Exchange, err = r.ShortString(); err != nil {
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

	register(ClassQueue, queueBindOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return QueueBindOk{}, nil })

	register(ClassQueue, queuePurge,
		func(w *wire.Writer, p Payload) error {
			m := p.(QueuePurge)
			w.Short(m.Reserved1)
			w.ShortString(m.Queue)
			bw := newBitWriter(w)
			bw.put(m.NoWait)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m QueuePurge
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Queue, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.NoWait, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassQueue, queuePurgeOk,
		func(w *wire.Writer, p Payload) error {
			w.Long(p.(QueuePurgeOk).MessageCount)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			n, err := r.Long()
			if err != nil {
				return nil, err
			}
			return QueuePurgeOk{MessageCount: n}, nil
		})

	register(ClassQueue, queueDelete,
		func(w *wire.Writer, p Payload) error {
			m := p.(QueueDelete)
			w.Short(m.Reserved1)
			w.ShortString(m.Queue)
			bw := newBitWriter(w)
			bw.put(m.IfUnused)
			bw.put(m.IfEmpty)
			bw.put(m.NoWait)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m QueueDelete
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Queue, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.IfUnused, err = br.get(); err != nil {
				return nil, err
			}
			if m.IfEmpty, err = br.get(); err != nil {
				return nil, err
			}
			if m.NoWait, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassQueue, queueDeleteOk,
		func(w *wire.Writer, p Payload) error {
			w.Long(p.(QueueDeleteOk).MessageCount)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			n, err := r.Long()
			if err != nil {
				return nil, err
			}
			return QueueDeleteOk{MessageCount: n}, nil
		})

	register(ClassQueue, queueUnbind,
		func(w *wire.Writer, p Payload) error {
			m := p.(QueueUnbind)
			w.Short(m.Reserved1)
			w.ShortString(m.Queue)
			w.ShortString(m.Exchange)
			w.ShortString(m.RoutingKey)
			field.EncodeTable(w, m.Arguments)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m QueueUnbind
			var err error
			if m.Reserved1, err = r.Short(); err != nil {
				return nil, err
			}
			if m.Queue, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Exchange, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.RoutingKey, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Arguments, err = field.DecodeTable(r); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassQueue, queueUnbindOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return QueueUnbindOk{}, nil })
}
