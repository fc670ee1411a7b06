package voovan

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// Response is an outbound HTTP response: status line, ordered headers,
// cookies, a body handle and a compression flag.
//
// A response is mutated freely before transmission and transmitted exactly
// once via Send. After a completed Send its body storage is released and
// Sent reports true; a second Send fails with ErrAlreadySent.
//
// The zero value is a valid empty response.
type Response struct {
	Protocol Protocol
	Header   Header

	cookies  []Cookie
	body     Body
	compress bool
	charset  string
	sent     bool
}

func NewResponse() *Response {
	return &Response{body: &memBody{}}
}

// Body returns the body handle, installing an empty in-memory body first
// if none is set.
func (resp *Response) Body() Body {
	if resp.body == nil {
		resp.body = &memBody{}
	}
	return resp.body
}

// SetBody replaces the body with an in-memory copy of p. A previously set
// body is released.
func (resp *Response) SetBody(p []byte) {
	if resp.body != nil {
		resp.body.Release()
	}
	mb := &memBody{}
	mb.append(p)
	resp.body = mb
}

func (resp *Response) SetBodyString(s string) {
	resp.SetBody(s2b(s))
}

// AppendBody appends p to the in-memory body, replacing a non-appendable
// body first.
func (resp *Response) AppendBody(p []byte) {
	mb, ok := resp.body.(*memBody)
	if !ok || mb.released {
		if resp.body != nil {
			resp.body.Release()
		}
		mb = &memBody{}
		resp.body = mb
	}
	mb.append(p)
}

// SetBodyStream replaces the body with one backed by r. size is the byte
// size declared in Content-Length for uncompressed transmission; r must
// yield exactly size bytes in that mode. A negative size fails head
// assembly. A previously set body is released.
func (resp *Response) SetBodyStream(r io.Reader, size int) {
	if resp.body != nil {
		resp.body.Release()
	}
	resp.body = &streamBody{r: r, size: size}
}

// SetBodySource installs a caller-provided body collaborator. Ownership of
// b transfers to the response.
func (resp *Response) SetBodySource(b Body) {
	if resp.body != nil {
		resp.body.Release()
	}
	resp.body = b
}

// Compress reports whether the body is transmitted gzip-compressed with
// chunked framing.
func (resp *Response) Compress() bool {
	return resp.compress
}

func (resp *Response) SetCompress(compress bool) {
	resp.compress = compress
}

// Charset returns the charset appended to Content-Type, defaulting to
// DefaultCharset.
func (resp *Response) Charset() string {
	if resp.charset == "" {
		return DefaultCharset
	}
	return resp.charset
}

func (resp *Response) SetCharset(charset string) {
	resp.charset = charset
}

// AddCookie appends a copy of c to the cookie list. Cookies serialize in
// insertion order, one Set-Cookie line each.
func (resp *Response) AddCookie(c *Cookie) {
	resp.cookies = append(resp.cookies, *c)
}

func (resp *Response) Cookies() []Cookie {
	return resp.cookies
}

// Sent reports whether the response was transmitted completely.
func (resp *Response) Sent() bool {
	return resp.sent
}

// Release frees the body storage. Releasing twice is a no-op.
func (resp *Response) Release() {
	if resp.body != nil {
		resp.body.Release()
	}
}

// Clear resets the response for reuse: all containers are emptied, the body
// is released and replaced with a fresh empty one and the sent marker is
// cleared.
func (resp *Response) Clear() {
	resp.Protocol.Clear()
	resp.Header.Clear()
	resp.cookies = resp.cookies[:0]
	if resp.body != nil {
		resp.body.Release()
	}
	resp.body = &memBody{}
	resp.compress = false
	resp.sent = false
}

// Clone returns a shallow copy sharing the body handle. The status line,
// header list and cookie list are copied; the body is shared, so only one
// of the clones may call Send.
func (resp *Response) Clone() *Response {
	clone := &Response{
		Protocol: resp.Protocol,
		body:     resp.Body(),
		compress: resp.compress,
		charset:  resp.charset,
	}
	clone.Header.kvs = append([]headerKV(nil), resp.Header.kvs...)
	clone.cookies = append([]Cookie(nil), resp.cookies...)
	return clone
}

// appendHead finalizes the headers and appends the complete head block to
// dst: status line, header lines, Set-Cookie lines and the blank-line
// terminator. On error dst is unusable and nothing may be transmitted.
func (resp *Response) appendHead(dst []byte) ([]byte, error) {
	if err := resp.validateHead(); err != nil {
		return dst, err
	}
	size := resp.Body().Size()
	if size < 0 {
		return dst, errors.Errorf("body declares negative size %d", size)
	}
	resp.Header.finalize(size, resp.compress, resp.Charset())
	dst = resp.Protocol.AppendBytes(dst)
	dst = resp.Header.AppendBytes(dst)
	for i := range resp.cookies {
		dst = append(dst, strSetCookie...)
		dst = append(dst, strColonSpace...)
		dst = resp.cookies[i].AppendBytes(dst)
		dst = append(dst, strCRLF...)
	}
	return append(dst, strCRLF...), nil
}

// validateHead rejects header and cookie content that would corrupt the
// head block framing.
func (resp *Response) validateHead() (err error) {
	resp.Header.VisitAll(func(key, value []byte) {
		if err == nil && (hasLineBreak(key) || hasLineBreak(value)) {
			err = errors.Errorf("header %q contains a line break", key)
		}
	})
	if err != nil {
		return err
	}
	for i := range resp.cookies {
		c := &resp.cookies[i]
		if hasLineBreak(c.key) || hasLineBreak(c.value) {
			return errors.Errorf("cookie %q contains a line break", c.key)
		}
	}
	return nil
}

func hasLineBreak(b []byte) bool {
	return bytes.IndexByte(b, '\r') >= 0 || bytes.IndexByte(b, '\n') >= 0
}

// String returns the head block representation. Because header
// finalization is idempotent, rendering does not disturb a later Send.
//
// Returns an error message instead of the head block on assembly failure.
func (resp *Response) String() string {
	w := bytebufferpool.Get()
	defer bytebufferpool.Put(w)

	head, err := resp.appendHead(w.B[:0])
	if err != nil {
		return err.Error()
	}
	w.B = head
	return string(w.B)
}
