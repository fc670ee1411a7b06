package voovan

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gookit/goutil/testutil/assert"
	"github.com/klauspost/compress/gzip"
	"github.com/xyproto/randomstring"
)

func TestMemBodyReadLoop(t *testing.T) {
	data := []byte(randomstring.HumanFriendlyString(10000))
	mb := &memBody{}
	mb.append(data)
	assert.Eq(t, len(data), mb.Size())

	var got []byte
	buf := make([]byte, 4096)
	for {
		n, err := mb.ReadInto(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		assert.NoErr(t, err)
	}
	assert.Eq(t, data, got)
}

func TestMemBodyCompressRoundTrip(t *testing.T) {
	data := []byte(randomstring.HumanFriendlyString(20000))
	mb := &memBody{}
	mb.append(data)
	assert.NoErr(t, mb.Compress())

	zr, err := gzip.NewReader(bytes.NewReader(mb.buf.B))
	assert.NoErr(t, err)
	got, err := io.ReadAll(zr)
	assert.NoErr(t, err)
	assert.Eq(t, data, got)
}

func TestMemBodyCompressIdempotent(t *testing.T) {
	mb := &memBody{}
	mb.append([]byte("hello"))
	assert.NoErr(t, mb.Compress())
	size := mb.Size()
	assert.NoErr(t, mb.Compress())
	assert.Eq(t, size, mb.Size())
}

func TestMemBodyReleasedReads(t *testing.T) {
	mb := &memBody{}
	mb.append([]byte("hello"))
	mb.Release()
	mb.Release() // double release is a no-op

	assert.Eq(t, 0, mb.Size())
	_, err := mb.ReadInto(make([]byte, 8))
	assert.ErrIs(t, err, ErrBodyReleased)
	assert.ErrIs(t, mb.Compress(), ErrBodyReleased)
}

func TestStreamBodyRead(t *testing.T) {
	data := randomstring.HumanFriendlyString(9000)
	sb := &streamBody{r: strings.NewReader(data), size: len(data)}
	assert.Eq(t, len(data), sb.Size())

	var got []byte
	buf := make([]byte, 1024)
	for {
		n, err := sb.ReadInto(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		assert.NoErr(t, err)
	}
	assert.Eq(t, data, string(got))
}

func TestStreamBodyCompress(t *testing.T) {
	data := randomstring.HumanFriendlyString(9000)
	sb := &streamBody{r: strings.NewReader(data), size: len(data)}
	assert.NoErr(t, sb.Compress())

	zr, err := gzip.NewReader(bytes.NewReader(sb.buf.B))
	assert.NoErr(t, err)
	got, err := io.ReadAll(zr)
	assert.NoErr(t, err)
	assert.Eq(t, data, string(got))
}

func TestStreamBodyReleased(t *testing.T) {
	sb := &streamBody{r: strings.NewReader("x"), size: 1}
	sb.Release()
	sb.Release()
	_, err := sb.ReadInto(make([]byte, 4))
	assert.ErrIs(t, err, ErrBodyReleased)
}
