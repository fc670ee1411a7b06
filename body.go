package voovan

import (
	"io"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// Body is the response body collaborator. A body is owned by exactly one
// response and read by at most one transmission at a time.
//
// ReadInto fills p with the next body segment and reports the number of
// bytes read. End of stream is signaled by io.EOF with no data; a (0, nil)
// result is a legal non-terminal read. A released body fails every read
// with ErrBodyReleased.
//
// Release frees the underlying storage. It is idempotent: releasing twice
// is a no-op, not a logic error.
type Body interface {
	Size() int
	ReadInto(p []byte) (int, error)
	Compress() error
	Release()
}

// memBody is an in-memory body backed by a pooled byte buffer.
type memBody struct {
	buf        *bytebufferpool.ByteBuffer
	off        int
	compressed bool
	released   bool
}

func (b *memBody) Size() int {
	if b.released || b.buf == nil {
		return 0
	}
	return len(b.buf.B)
}

func (b *memBody) ReadInto(p []byte) (int, error) {
	if b.released {
		return 0, errors.WithMessage(ErrBodyReleased, "body read")
	}
	if b.buf == nil || b.off >= len(b.buf.B) {
		return 0, io.EOF
	}
	n := copy(p, b.buf.B[b.off:])
	b.off += n
	return n, nil
}

// Compress replaces the buffered content with its gzipped form. Calling it
// again is a no-op; the content is never double-compressed.
func (b *memBody) Compress() error {
	if b.released {
		return errors.WithMessage(ErrBodyReleased, "body compress")
	}
	if b.compressed || b.buf == nil {
		b.compressed = true
		return nil
	}
	zbuf := bytebufferpool.Get()
	zbuf.B = AppendGzipBytes(zbuf.B, b.buf.B)
	bytebufferpool.Put(b.buf)
	b.buf = zbuf
	b.off = 0
	b.compressed = true
	return nil
}

func (b *memBody) Release() {
	if b.released {
		return
	}
	if b.buf != nil {
		bytebufferpool.Put(b.buf)
		b.buf = nil
	}
	b.released = true
}

func (b *memBody) append(p []byte) {
	if b.buf == nil {
		b.buf = bytebufferpool.Get()
	}
	b.buf.B = append(b.buf.B, p...)
}

// streamBody is a body backed by an io.Reader with a declared size.
// Compress drains the reader into a pooled buffer, after which reads are
// served from memory.
type streamBody struct {
	r          io.Reader
	size       int
	buf        *bytebufferpool.ByteBuffer
	off        int
	compressed bool
	released   bool
}

func (b *streamBody) Size() int {
	if b.released {
		return 0
	}
	if b.compressed && b.buf != nil {
		return len(b.buf.B)
	}
	return b.size
}

func (b *streamBody) ReadInto(p []byte) (int, error) {
	if b.released {
		return 0, errors.WithMessage(ErrBodyReleased, "body read")
	}
	if b.buf != nil {
		if b.off >= len(b.buf.B) {
			return 0, io.EOF
		}
		n := copy(p, b.buf.B[b.off:])
		b.off += n
		return n, nil
	}
	n, err := b.r.Read(p)
	if n > 0 && err == io.EOF {
		// data and end marker never travel together
		err = nil
	}
	return n, err
}

func (b *streamBody) Compress() error {
	if b.released {
		return errors.WithMessage(ErrBodyReleased, "body compress")
	}
	if b.compressed {
		return nil
	}
	zbuf := bytebufferpool.Get()
	if err := gzipReadAll(zbuf, b.r); err != nil {
		bytebufferpool.Put(zbuf)
		return errors.WithMessage(err, "body compress")
	}
	b.buf = zbuf
	b.off = 0
	b.r = nil
	b.compressed = true
	return nil
}

func (b *streamBody) Release() {
	if b.released {
		return
	}
	if b.buf != nil {
		bytebufferpool.Put(b.buf)
		b.buf = nil
	}
	b.r = nil
	b.released = true
}
