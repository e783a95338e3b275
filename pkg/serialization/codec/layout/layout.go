// Package layout implements the fixed width little endian encoding used for
// persisted account records. Fields are written in call order with no padding
// or length prefixes, so a record of a given type always has the same size and
// every field lives at a fixed offset.
package layout

import (
	"fmt"
)

// Natural serializes an unsigned integer into exactly l little endian bytes.
func Natural[T uint8 | uint16 | uint32 | uint64](x T, l uint8) []byte {
	b := make([]byte, 0, l)
	for i := uint8(0); i < l; i++ {
		b = append(b, byte(x>>(8*uint64(i))))
	}
	return b
}

// Writer appends fixed width fields to a byte slice.
type Writer struct {
	buf []byte
}

// NewWriter returns a writer with capacity for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

func (w *Writer) Uint8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

func (w *Writer) Uint64(v uint64) *Writer {
	w.buf = append(w.buf, Natural(v, 8)...)
	return w
}

// Int64 writes the two's complement form of v.
func (w *Writer) Int64(v int64) *Writer {
	return w.Uint64(uint64(v))
}

func (w *Writer) Bool(v bool) *Writer {
	if v {
		return w.Uint8(1)
	}
	return w.Uint8(0)
}

// Bytes writes b as is, without a length prefix.
func (w *Writer) Bytes(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// Bytes32 writes a fixed 32 byte value.
func (w *Writer) Bytes32(b [32]byte) *Writer {
	return w.Bytes(b[:])
}

func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) Result() []byte {
	return w.buf
}

// Reader consumes fixed width fields. The first failure is sticky: later calls
// return zero values and Err reports the original failure.
type Reader struct {
	data []byte
	off  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) next(n int, field string) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.data)-r.off < n {
		r.err = fmt.Errorf("%w: field %s at offset %d needs %d bytes, have %d",
			ErrShortBuffer, field, r.off, n, len(r.data)-r.off)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) Uint8(field string) uint8 {
	b := r.next(1, field)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) Uint64(field string) uint64 {
	b := r.next(8, field)
	if b == nil {
		return 0
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func (r *Reader) Int64(field string) int64 {
	return int64(r.Uint64(field))
}

func (r *Reader) Bool(field string) bool {
	return r.Uint8(field) != 0
}

func (r *Reader) Bytes32(field string) [32]byte {
	var out [32]byte
	copy(out[:], r.next(32, field))
	return out
}

// Bytes reads the next n bytes into a fresh slice.
func (r *Reader) Bytes(n int, field string) []byte {
	b := r.next(n, field)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Offset reports how many bytes have been consumed.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) Err() error {
	return r.err
}

// Finish reports the sticky error, or ErrTrailingBytes if input remains.
func (r *Reader) Finish() error {
	if r.err != nil {
		return r.err
	}
	if r.off != len(r.data) {
		return fmt.Errorf("%w: %d unread", ErrTrailingBytes, len(r.data)-r.off)
	}
	return nil
}
