package voovan

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"testing"

	"github.com/gookit/goutil/testutil/assert"
	"github.com/xyproto/randomstring"
)

// dechunk parses a chunked byte stream back into its segment sequence and
// asserts the terminal marker is present and well formed.
func dechunk(t *testing.T, raw []byte) [][]byte {
	t.Helper()
	var segments [][]byte
	br := bufio.NewReader(bytes.NewReader(raw))
	for {
		line, err := br.ReadString('\n')
		assert.NoErr(t, err)
		assert.True(t, len(line) >= 3)
		size, err := strconv.ParseInt(line[:len(line)-2], 16, 64)
		assert.NoErr(t, err)
		if size == 0 {
			crlf := make([]byte, 2)
			_, err = io.ReadFull(br, crlf)
			assert.NoErr(t, err)
			assert.Eq(t, []byte("\r\n"), crlf)
			_, err = br.ReadByte()
			assert.ErrIs(t, err, io.EOF)
			return segments
		}
		seg := make([]byte, size+2)
		_, err = io.ReadFull(br, seg)
		assert.NoErr(t, err)
		assert.Eq(t, []byte("\r\n"), seg[size:])
		segments = append(segments, seg[:size])
	}
}

func TestChunkWriterFraming(t *testing.T) {
	var sink recordingSink
	cw := chunkWriter{sink: &sink, chunked: true}
	assert.NoErr(t, cw.writeChunk([]byte("abcd")))
	assert.NoErr(t, cw.writeChunk(nil)) // zero-length read is not a boundary
	assert.NoErr(t, cw.writeChunk([]byte("ef")))
	assert.NoErr(t, cw.writeEnd())

	assert.Eq(t, "4\r\nabcd\r\n2\r\nef\r\n0\r\n\r\n", sink.buf.String())
	assert.Eq(t, int64(sink.buf.Len()), cw.written)
}

func TestChunkWriterFixedLengthPassThrough(t *testing.T) {
	var sink recordingSink
	cw := chunkWriter{sink: &sink, chunked: false}
	assert.NoErr(t, cw.writeChunk([]byte("abcd")))
	assert.NoErr(t, cw.writeEnd())
	assert.Eq(t, "abcd", sink.buf.String())
}

func TestChunkFramingRoundTrip(t *testing.T) {
	var sink recordingSink
	cw := chunkWriter{sink: &sink, chunked: true}
	var want [][]byte
	for _, n := range []int{1, 7, 16, 255, 256, 4096, 100000} {
		seg := []byte(randomstring.HumanFriendlyString(n))
		want = append(want, seg)
		assert.NoErr(t, cw.writeChunk(seg))
	}
	assert.NoErr(t, cw.writeEnd())

	assert.Eq(t, want, dechunk(t, sink.buf.Bytes()))
}

func TestAppendHexUint(t *testing.T) {
	for _, n := range []int{1, 9, 10, 15, 16, 255, 4096, 100000} {
		assert.Eq(t, strconv.FormatInt(int64(n), 16), string(appendHexUint(nil, n)))
	}
}

func TestAppendUint(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 99, 12345, 1 << 30} {
		assert.Eq(t, strconv.Itoa(n), string(appendUint(nil, n)))
	}
}
