package voovan

var (
	strCRLF       = []byte("\r\n")
	strColonSpace = []byte(": ")
	chunkedEnd    = []byte("0\r\n\r\n")

	strSetCookie        = []byte("Set-Cookie")
	strContentLength    = []byte("Content-Length")
	strContentType      = []byte("Content-Type")
	strTransferEncoding = []byte("Transfer-Encoding")
	strContentEncoding  = []byte("Content-Encoding")

	strChunked            = []byte("chunked")
	strGzip               = []byte("gzip")
	strDefaultContentType = []byte("text/html")
	strCharsetPrefix      = []byte(";charset=")
	strCharset            = []byte("charset=")

	strCookiePath     = []byte("; path=")
	strCookieDomain   = []byte("; domain=")
	strCookieExpires  = []byte("; expires=")
	strCookieMaxAge   = []byte("; max-age=")
	strCookieSecure   = []byte("; secure")
	strCookieHTTPOnly = []byte("; HttpOnly")
	strCookieSameSite = []byte("; SameSite")
	strCookieLax      = []byte("Lax")
	strCookieStrict   = []byte("Strict")
	strCookieNone     = []byte("None")
)

// DefaultCharset is appended to Content-Type during header finalization
// unless the response carries its own charset value.
const DefaultCharset = "UTF-8"
