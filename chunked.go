package voovan

// chunkWriter frames body segments for the transport. In chunked mode each
// segment is wrapped in a hex-length line and a trailing CRLF and the
// stream ends with the 0\r\n\r\n terminal marker. In fixed-length mode
// segments pass through untouched and no terminal marker exists.
type chunkWriter struct {
	sink    Sink
	chunked bool
	lenBuf  []byte
	written int64
}

func (cw *chunkWriter) send(p []byte) error {
	if err := cw.sink.Send(p); err != nil {
		return err
	}
	cw.written += int64(len(p))
	return nil
}

// writeChunk forwards one body segment. A zero-length segment is not a
// chunk boundary and emits nothing.
func (cw *chunkWriter) writeChunk(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if !cw.chunked {
		return cw.send(p)
	}
	cw.lenBuf = appendHexUint(cw.lenBuf[:0], len(p))
	cw.lenBuf = append(cw.lenBuf, strCRLF...)
	if err := cw.send(cw.lenBuf); err != nil {
		return err
	}
	if err := cw.send(p); err != nil {
		return err
	}
	return cw.send(strCRLF)
}

// writeEnd emits the terminal marker. It is attempted even after a failed
// segment write so the peer sees a well-formed, if truncated, frame
// boundary.
func (cw *chunkWriter) writeEnd() error {
	if !cw.chunked {
		return nil
	}
	return cw.send(chunkedEnd)
}
