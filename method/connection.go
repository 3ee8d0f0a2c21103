package method

import (
	"github.com/amqpr/amqp-codec/field"
	"github.com/amqpr/amqp-codec/wire"
)

// Connection method ids. Blocked/Unblocked are RabbitMQ extensions.
const (
	connectionStart     uint16 = 10
	connectionStartOk   uint16 = 11
	connectionSecure    uint16 = 20
	connectionSecureOk  uint16 = 21
	connectionTune      uint16 = 30
	connectionTuneOk    uint16 = 31
	connectionOpen      uint16 = 40
	connectionOpenOk    uint16 = 41
	connectionClose     uint16 = 50
	connectionCloseOk   uint16 = 51
	connectionBlocked   uint16 = 60
	connectionUnblocked uint16 = 61
)

// ConnectionStart is broker-sent: the first frame of a connection,
// announcing protocol version and supported SASL mechanisms/locales.
type ConnectionStart struct {
	VersionMajor     uint8
	VersionMinor     uint8
	ServerProperties field.Table
	Mechanisms       string
	Locales          string
}

func (ConnectionStart) ClassID() uint16  { return ClassConnection }
func (ConnectionStart) MethodID() uint16 { return connectionStart }

// ConnectionStartOk is client-sent, in reply to ConnectionStart.
type ConnectionStartOk struct {
	ClientProperties field.Table
	Mechanism        string
	Response         string
	Locale           string
}

func (ConnectionStartOk) ClassID() uint16  { return ClassConnection }
func (ConnectionStartOk) MethodID() uint16 { return connectionStartOk }

// ConnectionSecure is broker-sent: an additional SASL security challenge.
type ConnectionSecure struct {
	Challenge string
}

func (ConnectionSecure) ClassID() uint16  { return ClassConnection }
func (ConnectionSecure) MethodID() uint16 { return connectionSecure }

// ConnectionSecureOk is client-sent, in reply to ConnectionSecure.
type ConnectionSecureOk struct {
	Response string
}

func (ConnectionSecureOk) ClassID() uint16  { return ClassConnection }
func (ConnectionSecureOk) MethodID() uint16 { return connectionSecureOk }

// ConnectionTune is broker-sent: proposes connection tuning parameters.
type ConnectionTune struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (ConnectionTune) ClassID() uint16  { return ClassConnection }
func (ConnectionTune) MethodID() uint16 { return connectionTune }

// ConnectionTuneOk is client-sent, negotiating the final tuning values.
type ConnectionTuneOk struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (ConnectionTuneOk) ClassID() uint16  { return ClassConnection }
func (ConnectionTuneOk) MethodID() uint16 { return connectionTuneOk }

// ConnectionOpen is client-sent: selects the virtual host.
type ConnectionOpen struct {
	VirtualHost string
	Reserved1   string // historically "capabilities"
	Reserved2   bool   // historically "insist"
}

func (ConnectionOpen) ClassID() uint16  { return ClassConnection }
func (ConnectionOpen) MethodID() uint16 { return connectionOpen }

// ConnectionOpenOk is broker-sent, confirming the virtual host selection.
type ConnectionOpenOk struct {
	Reserved1 string // historically "known-hosts"
}

func (ConnectionOpenOk) ClassID() uint16  { return ClassConnection }
func (ConnectionOpenOk) MethodID() uint16 { return connectionOpenOk }

// ConnectionClose requests a graceful connection shutdown, sent by
// either side.
type ConnectionClose struct {
	ReplyCode uint16
	ReplyText string
	ClassID_  uint16 // the class/method that caused the close, if any
	MethodID_ uint16
}

func (ConnectionClose) ClassID() uint16  { return ClassConnection }
func (ConnectionClose) MethodID() uint16 { return connectionClose }

// ConnectionCloseOk confirms a ConnectionClose handshake.
type ConnectionCloseOk struct{}

func (ConnectionCloseOk) ClassID() uint16  { return ClassConnection }
func (ConnectionCloseOk) MethodID() uint16 { return connectionCloseOk }

// ConnectionBlocked is a RabbitMQ extension: broker-sent when it is about
// to start refusing further commands (e.g. due to a resource alarm).
type ConnectionBlocked struct {
	Reason string
}

func (ConnectionBlocked) ClassID() uint16  { return ClassConnection }
func (ConnectionBlocked) MethodID() uint16 { return connectionBlocked }

// ConnectionUnblocked is a RabbitMQ extension: broker-sent when the
// connection is no longer blocked.
type ConnectionUnblocked struct{}

func (ConnectionUnblocked) ClassID() uint16  { return ClassConnection }
func (ConnectionUnblocked) MethodID() uint16 { return connectionUnblocked }

func init() {
	register(ClassConnection, connectionStart,
		func(w *wire.Writer, p Payload) error {
			m := p.(ConnectionStart)
			w.Octet(m.VersionMajor)
			w.Octet(m.VersionMinor)
			field.EncodeTable(w, m.ServerProperties)
			w.LongString(m.Mechanisms)
			w.LongString(m.Locales)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ConnectionStart
			var err error
			if m.VersionMajor, err = r.Octet(); err != nil {
				return nil, err
			}
			if m.VersionMinor, err = r.Octet(); err != nil {
				return nil, err
			}
			if m.ServerProperties, err = field.DecodeTable(r); err != nil {
				return nil, err
			}
			if m.Mechanisms, err = r.LongString(); err != nil {
				return nil, err
			}
			if m.Locales, err = r.LongString(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassConnection, connectionStartOk,
		func(w *wire.Writer, p Payload) error {
			m := p.(ConnectionStartOk)
			field.EncodeTable(w, m.ClientProperties)
			w.ShortString(m.Mechanism)
			w.LongString(m.Response)
			w.ShortString(m.Locale)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ConnectionStartOk
			var err error
			if m.ClientProperties, err = field.DecodeTable(r); err != nil {
				return nil, err
			}
			if m.Mechanism, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Response, err = r.LongString(); err != nil {
				return nil, err
			}
			if m.Locale, err = r.ShortString(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassConnection, connectionSecure,
		func(w *wire.Writer, p Payload) error {
			w.LongString(p.(ConnectionSecure).Challenge)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.LongString()
			if err != nil {
				return nil, err
			}
			return ConnectionSecure{Challenge: s}, nil
		})

	register(ClassConnection, connectionSecureOk,
		func(w *wire.Writer, p Payload) error {
			w.LongString(p.(ConnectionSecureOk).Response)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.LongString()
			if err != nil {
				return nil, err
			}
			return ConnectionSecureOk{Response: s}, nil
		})

	register(ClassConnection, connectionTune,
		func(w *wire.Writer, p Payload) error {
			m := p.(ConnectionTune)
			w.Short(m.ChannelMax)
			w.Long(m.FrameMax)
			w.Short(m.Heartbeat)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ConnectionTune
			var err error
			if m.ChannelMax, err = r.Short(); err != nil {
				return nil, err
			}
			if m.FrameMax, err = r.Long(); err != nil {
				return nil, err
			}
			if m.Heartbeat, err = r.Short(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassConnection, connectionTuneOk,
		func(w *wire.Writer, p Payload) error {
			m := p.(ConnectionTuneOk)
			w.Short(m.ChannelMax)
			w.Long(m.FrameMax)
			w.Short(m.Heartbeat)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ConnectionTuneOk
			var err error
			if m.ChannelMax, err = r.Short(); err != nil {
				return nil, err
			}
			if m.FrameMax, err = r.Long(); err != nil {
				return nil, err
			}
			if m.Heartbeat, err = r.Short(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassConnection, connectionOpen,
		func(w *wire.Writer, p Payload) error {
			m := p.(ConnectionOpen)
			w.ShortString(m.VirtualHost)
			w.ShortString(m.Reserved1)
			bw := newBitWriter(w)
			bw.put(m.Reserved2)
			bw.flush()
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ConnectionOpen
			var err error
			if m.VirtualHost, err = r.ShortString(); err != nil {
				return nil, err
			}
			if m.Reserved1, err = r.ShortString(); err != nil {
				return nil, err
			}
			br := newBitReader(r)
			if m.Reserved2, err = br.get(); err != nil {
				return nil, err
			}
			return m, nil
		})

	register(ClassConnection, connectionOpenOk,
		func(w *wire.Writer, p Payload) error {
			w.ShortString(p.(ConnectionOpenOk).Reserved1)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.ShortString()
			if err != nil {
				return nil, err
			}
			return ConnectionOpenOk{Reserved1: s}, nil
		})

	register(ClassConnection, connectionClose,
		func(w *wire.Writer, p Payload) error {
			m := p.(ConnectionClose)
			w.Short(m.ReplyCode)
			w.ShortString(m.ReplyText)
			w.Short(m.ClassID_)
			w.Short(m.MethodID_)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			var m ConnectionClose
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

	register(ClassConnection, connectionCloseOk,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return ConnectionCloseOk{}, nil })

	register(ClassConnection, connectionBlocked,
		func(w *wire.Writer, p Payload) error {
			w.ShortString(p.(ConnectionBlocked).Reason)
			return nil
		},
		func(r *wire.Reader) (Payload, error) {
			s, err := r.ShortString()
			if err != nil {
				return nil, err
			}
			return ConnectionBlocked{Reason: s}, nil
		})

	register(ClassConnection, connectionUnblocked,
		func(w *wire.Writer, p Payload) error { return nil },
		func(r *wire.Reader) (Payload, error) { return ConnectionUnblocked{}, nil })
}
