package method

import "github.com/amqpr/amqp-codec/wire"

// Tx method ids. Every method in this class carries no arguments.
const (
	txSelect     uint16 = 10
	txSelectOk   uint16 = 11
	txCommit     uint16 = 20
	txCommitOk   uint16 = 21
	txRollback   uint16 = 30
	txRollbackOk uint16 = 31
)

// TxSelect is client-sent: puts the channel into transactional mode.
type TxSelect struct{}

func (TxSelect) ClassID() uint16  { return ClassTx }
func (TxSelect) MethodID() uint16 { return txSelect }

// TxSelectOk confirms a TxSelect.
type TxSelectOk struct{}

func (TxSelectOk) ClassID() uint16  { return ClassTx }
func (TxSelectOk) MethodID() uint16 { return txSelectOk }

// TxCommit is client-sent: commits the current transaction.
type TxCommit struct{}

func (TxCommit) ClassID() uint16  { return ClassTx }
func (TxCommit) MethodID() uint16 { return txCommit }

// TxCommitOk confirms a TxCommit.
type TxCommitOk struct{}

func (TxCommitOk) ClassID() uint16  { return ClassTx }
func (TxCommitOk) MethodID() uint16 { return txCommitOk }

// TxRollback is client-sent: abandons the current transaction.
type TxRollback struct{}

func (TxRollback) ClassID() uint16  { return ClassTx }
func (TxRollback) MethodID() uint16 { return txRollback }

// TxRollbackOk confirms a TxRollback.
type TxRollbackOk struct{}

func (TxRollbackOk) ClassID() uint16  { return ClassTx }
func (TxRollbackOk) MethodID() uint16 { return txRollbackOk }

func init() {
	noArgs := func(w *wire.Writer, p Payload) error { return nil }

	register(ClassTx, txSelect, noArgs, func(r *wire.Reader) (Payload, error) { return TxSelect{}, nil })
	register(ClassTx, txSelectOk, noArgs, func(r *wire.Reader) (Payload, error) { return TxSelectOk{}, nil })
	register(ClassTx, txCommit, noArgs, func(r *wire.Reader) (Payload, error) { return TxCommit{}, nil })
	register(ClassTx, txCommitOk, noArgs, func(r *wire.Reader) (Payload, error) { return TxCommitOk{}, nil })
	register(ClassTx, txRollback, noArgs, func(r *wire.Reader) (Payload, error) { return TxRollback{}, nil })
	register(ClassTx, txRollbackOk, noArgs, func(r *wire.Reader) (Payload, error) { return TxRollbackOk{}, nil })
}
