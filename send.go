package voovan

import (
	"io"

	pool "github.com/newacorn/simple-bytes-pool"
	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// bodyBufferSize is the capacity of the pooled buffer body segments are
// read into during streaming.
const bodyBufferSize = 4096

// Sink accepts byte buffers for delivery to the remote peer. Send blocks
// until the buffer is accepted by the underlying session or fails with a
// transport error. A sink whose session was already torn down reports an
// error matching ErrBodyReleased; transmission treats that as an expected
// race and aborts without logging.
type Sink interface {
	Send(p []byte) error
}

// WriterSink adapts an io.Writer to the Sink interface.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Send(p []byte) error {
	_, err := s.W.Write(p)
	return err
}

// Send transmits the response over sink: head block first, then the body,
// chunked and gzipped when the compression flag is set, fixed-length
// otherwise.
//
// Failures are handled locally. Head assembly failures abort before any
// byte reaches the sink. Failures after the head was sent abandon the
// remaining body writes; bytes already on the wire stay there and the peer
// receives a truncated transfer. Whenever body streaming was entered, the
// terminal chunk marker is attempted and the pooled read buffer is returned
// regardless of outcome. The body storage is released on every path,
// exactly once.
//
// On a completed transmission Sent reports true and Send returns nil.
// Sending an already-sent response fails with ErrAlreadySent without
// touching the sink or the body.
func (resp *Response) Send(sink Sink) error {
	if resp.sent {
		return ErrAlreadySent
	}
	defer resp.Release()

	err := resp.transmit(sink)
	if err != nil {
		if !isReleaseRace(err) {
			logger.Error().Err(err).
				Int("status", resp.Protocol.StatusCode()).
				Msg("response send failed")
		}
		abortedCounter.Inc()
		return err
	}
	resp.sent = true
	sentCounter.Inc()
	return nil
}

func (resp *Response) transmit(sink Sink) error {
	// The pre-compression size drives both header finalization and the
	// body/no-body decision.
	size := resp.Body().Size()

	hbuf := bytebufferpool.Get()
	defer bytebufferpool.Put(hbuf)

	head, err := resp.appendHead(hbuf.B[:0])
	if err != nil {
		return &HeadAssemblyError{err}
	}
	hbuf.B = head

	if err = sink.Send(head); err != nil {
		return errors.WithMessage(err, "send head")
	}
	wireBytes.Add(int64(len(head)))

	if size == 0 {
		return nil
	}

	if resp.compress {
		if err = resp.body.Compress(); err != nil {
			// The head already promised chunked framing; close the frame
			// so the peer sees a well-formed truncated transfer.
			_ = sink.Send(chunkedEnd) //nolint:errcheck
			return err
		}
	}
	return resp.streamBody(sink)
}

// streamBody drives the body read loop over a pooled buffer. The terminal
// marker write, the buffer return and the wire-byte accounting run on every
// exit path.
func (resp *Response) streamBody(sink Sink) (err error) {
	pb := pool.Get(bodyBufferSize)
	pb.B = pb.B[:cap(pb.B)]
	buf := pb.B
	cw := chunkWriter{sink: sink, chunked: resp.compress}

	defer func() {
		if endErr := cw.writeEnd(); err == nil && endErr != nil {
			err = errors.WithMessage(endErr, "send terminal chunk")
		}
		pb.RecycleToPool00()
		wireBytes.Add(cw.written)
	}()

	var n int
	for {
		n, err = resp.body.ReadInto(buf)
		if n > 0 {
			if werr := cw.writeChunk(buf[:n]); werr != nil {
				err = errors.WithMessage(werr, "send body segment")
				return
			}
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			} else {
				err = errors.WithMessage(err, "read body")
			}
			return
		}
	}
}
