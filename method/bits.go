package method

import "github.com/amqpr/amqp-codec/wire"

// bitWriter packs a run of consecutive boolean fields into octets,
// least-significant bit first. A method's schema determines where
// a run starts and ends; the caller constructs one bitWriter per run and
// must call flush when the run is over, even if it ended mid-octet.
type bitWriter struct {
	w   *wire.Writer
	cur byte
	n   uint
}

func newBitWriter(w *wire.Writer) *bitWriter {
	return &bitWriter{w: w}
}

// put appends one boolean to the current run.
func (b *bitWriter) put(v bool) {
	if v {
		b.cur |= 1 << b.n
	}
	b.n++
	if b.n == 8 {
		b.w.Octet(b.cur)
		b.cur = 0
		b.n = 0
	}
}

// flush emits the partially-filled final octet of the run, if any bits
// were written since the last flush.
func (b *bitWriter) flush() {
	if b.n > 0 {
		b.w.Octet(b.cur)
		b.cur = 0
		b.n = 0
	}
}

// bitReader is the decode-side counterpart of bitWriter.
type bitReader struct {
	r   *wire.Reader
	cur byte
	n   uint
}

func newBitReader(r *wire.Reader) *bitReader {
	return &bitReader{r: r}
}

// get reads the next boolean from the run, pulling a fresh octet from the
// underlying reader whenever the previous one is exhausted.
func (b *bitReader) get() (bool, error) {
	if b.n == 0 {
		octet, err := b.r.Octet()
		if err != nil {
			return false, err
		}
		b.cur = octet
	}
	v := b.cur&(1<<b.n) != 0
	b.n++
	if b.n == 8 {
		b.n = 0
	}
	return v, nil
}
