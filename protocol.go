package voovan

// Protocol is the response status line: version, status code and reason
// phrase. The zero value renders as "HTTP/1.1 200 OK".
type Protocol struct {
	version    []byte
	statusCode int
	reason     []byte
}

// StatusCode returns the response status code, defaulting to 200.
func (p *Protocol) StatusCode() int {
	if p.statusCode == 0 {
		return StatusOK
	}
	return p.statusCode
}

func (p *Protocol) SetStatusCode(statusCode int) {
	p.statusCode = statusCode
}

// Version returns the protocol version, defaulting to HTTP/1.1.
func (p *Protocol) Version() []byte {
	if len(p.version) == 0 {
		return strHTTP11
	}
	return p.version
}

func (p *Protocol) SetVersion(version string) {
	p.version = append(p.version[:0], version...)
}

// Reason returns the reason phrase, derived from the status code when unset.
func (p *Protocol) Reason() []byte {
	if len(p.reason) == 0 {
		return statusReason(p.StatusCode())
	}
	return p.reason
}

func (p *Protocol) SetReason(reason string) {
	p.reason = append(p.reason[:0], reason...)
}

// Clear resets the status line to its zero value.
func (p *Protocol) Clear() {
	p.version = p.version[:0]
	p.statusCode = 0
	p.reason = p.reason[:0]
}

// AppendBytes appends the status line followed by CRLF to dst and returns
// the extended dst.
func (p *Protocol) AppendBytes(dst []byte) []byte {
	dst = append(dst, p.Version()...)
	dst = append(dst, ' ')
	dst = appendUint(dst, p.StatusCode())
	dst = append(dst, ' ')
	dst = append(dst, p.Reason()...)
	return append(dst, strCRLF...)
}

func (p *Protocol) String() string {
	return string(p.AppendBytes(nil))
}

// Commonly used response status codes.
const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusMovedPermanently    = 301
	StatusFound               = 302
	StatusNotModified         = 304
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
)

var strHTTP11 = []byte("HTTP/1.1")

func statusReason(statusCode int) []byte {
	switch statusCode {
	case StatusOK:
		return []byte("OK")
	case StatusCreated:
		return []byte("Created")
	case StatusNoContent:
		return []byte("No Content")
	case StatusMovedPermanently:
		return []byte("Moved Permanently")
	case StatusFound:
		return []byte("Found")
	case StatusNotModified:
		return []byte("Not Modified")
	case StatusBadRequest:
		return []byte("Bad Request")
	case StatusUnauthorized:
		return []byte("Unauthorized")
	case StatusForbidden:
		return []byte("Forbidden")
	case StatusNotFound:
		return []byte("Not Found")
	case StatusMethodNotAllowed:
		return []byte("Method Not Allowed")
	case StatusInternalServerError:
		return []byte("Internal Server Error")
	case StatusBadGateway:
		return []byte("Bad Gateway")
	case StatusServiceUnavailable:
		return []byte("Service Unavailable")
	default:
		return []byte("Unknown Status Code")
	}
}
