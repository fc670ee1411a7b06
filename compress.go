package voovan

import (
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/valyala/bytebufferpool"
)

var gzipWriterPool sync.Pool

func acquireGzipWriter(w io.Writer) *gzip.Writer {
	v := gzipWriterPool.Get()
	if v == nil {
		zw, err := gzip.NewWriterLevel(w, gzip.DefaultCompression)
		if err != nil {
			panic("BUG: gzip.NewWriterLevel with default level failed")
		}
		return zw
	}
	zw := v.(*gzip.Writer)
	zw.Reset(w)
	return zw
}

func releaseGzipWriter(zw *gzip.Writer) {
	gzipWriterPool.Put(zw)
}

// writeGzip writes the gzipped form of p to w.
func writeGzip(w io.Writer, p []byte) (int, error) {
	zw := acquireGzipWriter(w)
	n, err := zw.Write(p)
	if err1 := zw.Close(); err == nil {
		err = err1
	}
	releaseGzipWriter(zw)
	return n, err
}

// AppendGzipBytes appends the gzipped form of src to dst and returns the
// extended dst.
func AppendGzipBytes(dst, src []byte) []byte {
	w := &byteSliceWriter{b: dst}
	_, _ = writeGzip(w, src) //nolint:errcheck
	return w.b
}

type byteSliceWriter struct {
	b []byte
}

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

// gzipReadAll drains r through a pooled gzip writer into dst.
func gzipReadAll(dst *bytebufferpool.ByteBuffer, r io.Reader) error {
	zw := acquireGzipWriter(dst)
	_, err := io.Copy(zw, r)
	if err1 := zw.Close(); err == nil {
		err = err1
	}
	releaseGzipWriter(zw)
	return err
}
