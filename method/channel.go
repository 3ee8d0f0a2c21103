package method

import "github.com/amqpr/amqp-codec/wire"

// Channel method ids.
const (
	channelOpen    uint16 = 10
	channelOpenOk  uint16 = 11
	channelFlow    uint16 = 20
	channelFlowOk  uint16 = 21
	channelClose   uint16 = 40
	channelCloseOk uint16 = 41
)

// ChannelOpen is client-sent: opens a channel for use.
type ChannelOpen struct {
	Reserved1 string
}

func (ChannelOpen) ClassID() uint16  { return ClassChannel }
func (ChannelOpen) MethodID() uint16 { return channelOpen }

// ChannelOpenOk is broker-sent, confirming the channel is open.
type ChannelOpenOk struct {
	Reserved1 string // historically the channel id
}

func (ChannelOpenOk) ClassID() uint16  { return ClassChannel }
func (ChannelOpenOk) MethodID() uint16 { return channelOpenOk }

// ChannelFlow asks the peer to pause or resume sending content data,
// sent by either side.
type ChannelFlow struct {
	Active bool
}

func (ChannelFlow) ClassID() uint16  { return ClassChannel }
func (ChannelFlow) MethodID() uint16 { return channelFlow }

// ChannelFlowOk confirms a ChannelFlow request.
type ChannelFlowOk struct {
	Active bool
}

func (ChannelFlowOk) ClassID() uint16  { return ClassChannel }
func (ChannelFlowOk) MethodID() uint16 { return channelFlowOk }

// ChannelClose requests a graceful channel shutdown, sent by either side.
type ChannelClose struct {
	ReplyCode uint16
	ReplyText string
	ClassID_  uint16
	MethodID_ uint16
}

func (ChannelClose) ClassID() uint16  { return ClassChannel }
func (ChannelClose) MethodID() uint16 { return channelClose }

// ChannelCloseOk confirms a ChannelClose handshake.
type ChannelCloseOk struct{}

func (ChannelCloseOk) ClassID() uint16  { return ClassChannel }
func (ChannelCloseOk) MethodID() uint16 { return channelCloseOk }

func init() {
	register(ClassChannel, channelOpen,
		func(w *wire.Writer, p Payload) error {
			w.ShortString(p.(ChannelOpen).Reserved1)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.ShortString()
			if err != nil {
				return nil, err
			}
			return ChannelOpen{Reserved1: s}, nil
		})

	register(ClassChannel, channelOpenOk,
		func(w *wire.Writer, p Payload) error {
			w.LongString(p.(ChannelOpenOk).Reserved1)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.LongString()
			if err != nil {
				return nil, err
			}
			return ChannelOpenOk{Reserved1: s}, nil
		})

	register(ClassChannel, channelFlow,
		func(w *wire.Writer, p Payload) error {
			bw := newBitWriter(w)
			bw.put(p.(ChannelFlow).Active)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			br := newBitReader(r)
			active, err := br.get()
			if err != nil {
				return nil, err
			}
			return ChannelFlow{Active: active}, nil
		})

	register(ClassChannel, channelFlowOk,
		func(w *wire.Writer, p Payload) error {
			bw := newBitWriter(w)
			bw.put(p.(ChannelFlowOk).Active)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			br := newBitReader(r)
			active, err := br.get()
			if err != nil {
				return nil, err
			}
			return ChannelFlowOk{Active: active}, nil
		})

	register(ClassChannel, channelClose,
		func(w *wire.Writer, p Payload) error {
			m := p.(ChannelClose)
			w.Short(m.ReplyCode)
			w.ShortString(m.ReplyText)
			w.Short(m.ClassID_)
			w.Short(m.MethodID_)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ChannelClose
			var err error
			if m.ReplyCode, err = r.Short(); err != nil {
				return nil, err
			}
			if m.ReplyText, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.ClassID_, err = r.Short(); err != nil {
				return nil, err
			}
			if m.MethodID_, err = r.Short(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassChannel, channelCloseOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return ChannelCloseOk{}, nil })
}
