package voovan

import (
	"bytes"
)

type headerKV struct {
	key   []byte
	value []byte
}

// Header is an ordered response header container. Insertion order is
// preserved on output; key lookup is case-insensitive while the stored
// spelling is kept for serialization.
type Header struct {
	kvs []headerKV
}

// Set stores the given header value, replacing an existing entry in place or
// appending a new one. Both key and value are copied.
func (h *Header) Set(key, value string) {
	h.SetBytesKV(s2b(key), s2b(value))
}

// SetBytesKV stores the given header value. Both key and value are copied.
func (h *Header) SetBytesKV(key, value []byte) {
	for i := range h.kvs {
		kv := &h.kvs[i]
		if bytes.EqualFold(kv.key, key) {
			kv.value = append(kv.value[:0], value...)
			return
		}
	}
	h.appendKV(key, value)
}

// appendKV appends a copied key/value pair without looking for duplicates.
func (h *Header) appendKV(key, value []byte) {
	h.kvs = append(h.kvs, headerKV{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	})
}

// Get returns the value of the given header or "" if it is absent.
func (h *Header) Get(key string) string {
	return string(h.peekBytes(s2b(key)))
}

func (h *Header) peekBytes(key []byte) []byte {
	for i := range h.kvs {
		if bytes.EqualFold(h.kvs[i].key, key) {
			return h.kvs[i].value
		}
	}
	return nil
}

// Del removes the given header. Removing an absent header is a no-op.
func (h *Header) Del(key string) {
	h.delBytes(s2b(key))
}

func (h *Header) delBytes(key []byte) {
	for i := range h.kvs {
		if bytes.EqualFold(h.kvs[i].key, key) {
			h.kvs = append(h.kvs[:i], h.kvs[i+1:]...)
			return
		}
	}
}

// Len returns the number of stored headers.
func (h *Header) Len() int {
	return len(h.kvs)
}

// VisitAll calls f for each header in insertion order.
//
// The passed slices are valid only within f. Make copies to retain them.
func (h *Header) VisitAll(f func(key, value []byte)) {
	for i := range h.kvs {
		f(h.kvs[i].key, h.kvs[i].value)
	}
}

// Clear removes all stored headers, keeping allocated storage for reuse.
func (h *Header) Clear() {
	h.kvs = h.kvs[:0]
}

// AppendBytes appends all header lines to dst and returns the extended dst.
// The blank-line terminator is not included.
func (h *Header) AppendBytes(dst []byte) []byte {
	for i := range h.kvs {
		dst = appendHeaderLine(dst, h.kvs[i].key, h.kvs[i].value)
	}
	return dst
}

func (h *Header) String() string {
	return string(h.AppendBytes(nil))
}

// finalize derives the transfer framing headers from the body size and the
// compression flag and normalizes Content-Type.
//
// The derived headers are always re-appended at the tail so the output order
// is: caller headers, then Content-Length or Transfer-Encoding plus
// Content-Encoding, then Content-Type. Calling finalize again produces the
// same header set; in particular the charset suffix is never duplicated.
func (h *Header) finalize(bodySize int, compress bool, charset string) {
	contentType := append([]byte(nil), h.peekBytes(strContentType)...)

	h.delBytes(strContentLength)
	h.delBytes(strTransferEncoding)
	h.delBytes(strContentEncoding)
	h.delBytes(strContentType)

	if bodySize != 0 && compress {
		h.appendKV(strTransferEncoding, strChunked)
		h.appendKV(strContentEncoding, strGzip)
	} else {
		h.appendKV(strContentLength, appendUint(nil, bodySize))
	}

	if len(contentType) == 0 {
		contentType = append(contentType, strDefaultContentType...)
	}
	if !hasCharset(contentType) {
		contentType = append(contentType, strCharsetPrefix...)
		contentType = append(contentType, charset...)
	}
	h.appendKV(strContentType, contentType)
}

// hasCharset reports whether a Content-Type value already carries a charset
// parameter, in any spelling ("; charset=utf-8", ";Charset=GBK", ...).
func hasCharset(contentType []byte) bool {
	for i := 0; i+len(strCharset) <= len(contentType); i++ {
		if equalFoldASCII(contentType[i:i+len(strCharset)], strCharset) {
			return true
		}
	}
	return false
}

func equalFoldASCII(a, b []byte) bool {
	for i := range a {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}
	return true
}

func appendHeaderLine(dst, key, value []byte) []byte {
	dst = append(dst, key...)
	dst = append(dst, strColonSpace...)
	dst = append(dst, value...)
	return append(dst, strCRLF...)
}
