package voovan

import (
	"time"
)

// CookieSameSite controls the SameSite attribute of a serialized cookie.
type CookieSameSite int

const (
	// CookieSameSiteDisabled omits the SameSite attribute.
	CookieSameSiteDisabled CookieSameSite = iota
	CookieSameSiteDefaultMode
	CookieSameSiteLaxMode
	CookieSameSiteStrictMode
	CookieSameSiteNoneMode
)

const cookieTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Cookie is a single response cookie. Each cookie serializes to one
// Set-Cookie header line.
type Cookie struct {
	key    []byte
	value  []byte
	path   []byte
	domain []byte

	expire   time.Time
	maxAge   int
	secure   bool
	httpOnly bool
	sameSite CookieSameSite
}

func (c *Cookie) Key() []byte {
	return c.key
}

func (c *Cookie) SetKey(key string) {
	c.key = append(c.key[:0], key...)
}

func (c *Cookie) Value() []byte {
	return c.value
}

func (c *Cookie) SetValue(value string) {
	c.value = append(c.value[:0], value...)
}

func (c *Cookie) SetPath(path string) {
	c.path = append(c.path[:0], path...)
}

func (c *Cookie) SetDomain(domain string) {
	c.domain = append(c.domain[:0], domain...)
}

// SetExpire sets the cookie expiry. The zero time omits the attribute.
func (c *Cookie) SetExpire(expire time.Time) {
	c.expire = expire
}

// SetMaxAge sets max-age in seconds. Zero or negative values omit the
// attribute; use a past expiry to delete a cookie.
func (c *Cookie) SetMaxAge(seconds int) {
	c.maxAge = seconds
}

func (c *Cookie) SetSecure(secure bool) {
	c.secure = secure
}

func (c *Cookie) SetHTTPOnly(httpOnly bool) {
	c.httpOnly = httpOnly
}

func (c *Cookie) SetSameSite(mode CookieSameSite) {
	c.sameSite = mode
}

// Reset clears the cookie, keeping allocated storage for reuse.
func (c *Cookie) Reset() {
	c.key = c.key[:0]
	c.value = c.value[:0]
	c.path = c.path[:0]
	c.domain = c.domain[:0]
	c.expire = time.Time{}
	c.maxAge = 0
	c.secure = false
	c.httpOnly = false
	c.sameSite = CookieSameSiteDisabled
}

// AppendBytes appends the cookie-string form (the Set-Cookie header value,
// without the header name) to dst and returns the extended dst.
func (c *Cookie) AppendBytes(dst []byte) []byte {
	dst = append(dst, c.key...)
	dst = append(dst, '=')
	dst = append(dst, c.value...)
	if c.maxAge > 0 {
		dst = append(dst, strCookieMaxAge...)
		dst = appendUint(dst, c.maxAge)
	} else if !c.expire.IsZero() {
		dst = append(dst, strCookieExpires...)
		dst = c.expire.In(time.UTC).AppendFormat(dst, cookieTimeFormat)
	}
	if len(c.domain) > 0 {
		dst = append(dst, strCookieDomain...)
		dst = append(dst, c.domain...)
	}
	if len(c.path) > 0 {
		dst = append(dst, strCookiePath...)
		dst = append(dst, c.path...)
	}
	if c.httpOnly {
		dst = append(dst, strCookieHTTPOnly...)
	}
	if c.secure {
		dst = append(dst, strCookieSecure...)
	}
	switch c.sameSite {
	case CookieSameSiteLaxMode:
		dst = append(dst, strCookieSameSite...)
		dst = append(dst, '=')
		dst = append(dst, strCookieLax...)
	case CookieSameSiteStrictMode:
		dst = append(dst, strCookieSameSite...)
		dst = append(dst, '=')
		dst = append(dst, strCookieStrict...)
	case CookieSameSiteNoneMode:
		dst = append(dst, strCookieSameSite...)
		dst = append(dst, '=')
		dst = append(dst, strCookieNone...)
	case CookieSameSiteDefaultMode:
		dst = append(dst, strCookieSameSite...)
	}
	return dst
}

func (c *Cookie) String() string {
	return string(c.AppendBytes(nil))
}
