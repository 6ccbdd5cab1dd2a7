// Package percent implements the application/x-www-form-urlencoded codec used for
// parameter names and values, with support for character encodings other than UTF-8.
package percent

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/encoding"
)

var (
	// ErrDecoding will be raised when percent encoded text is malformed or its bytes
	// cannot be interpreted in the character encoding
	ErrDecoding = errors.New("malformed percent encoded text")
	// ErrEncoding will be raised when text cannot be represented in the target
	// character encoding
	ErrEncoding = errors.New("text is not representable in the character encoding")
)

// Encoding is the character encoding used to interpret percent decoded bytes and to
// produce the bytes that get percent encoded. The zero value is not usable; use
// UTF8 or NewEncoding.
type Encoding struct {
	name string
	enc  encoding.Encoding
	utf8 bool
}

// UTF8 is the default encoding
var UTF8 = &Encoding{name: "UTF-8", utf8: true}

// NewEncoding wraps a golang.org/x/text encoding under the given name
func NewEncoding(name string, enc encoding.Encoding) *Encoding {
	return &Encoding{name: name, enc: enc}
}

// Name returns the name the encoding was created with
func (e *Encoding) Name() string {
	if e == nil {
		return UTF8.name
	}
	return e.name
}

// Decode percent decodes s and converts the resulting bytes from the character
// encoding to UTF-8. A '+' decodes to a space. A nil Encoding decodes as UTF-8.
func (e *Encoding) Decode(s string) (string, error) {
	raw, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	if e == nil || e.utf8 {
		return raw, nil
	}
	decoded, err := e.enc.NewDecoder().String(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return decoded, nil
}

// Encode converts s to the character encoding and percent encodes the resulting
// bytes. A space encodes to '+'. A nil Encoding encodes as UTF-8.
func (e *Encoding) Encode(s string) (string, error) {
	raw := s
	if e != nil && !e.utf8 {
		var err error
		raw, err = e.enc.NewEncoder().String(s)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrEncoding, err)
		}
	}
	return escape(raw), nil
}

const upperhex = "0123456789ABCDEF"

// unescapedByte reports whether b is emitted as-is. This is the
// x-www-form-urlencoded table: alphanumerics plus '.', '-', '*' and '_'.
// Notably '*' stays unescaped, so masked values remain readable in logs.
func unescapedByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	case b == '.' || b == '-' || b == '*' || b == '_':
		return true
	}
	return false
}

func escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case unescapedByte(b):
			sb.WriteByte(b)
		case b == ' ':
			sb.WriteByte('+')
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[b>>4])
			sb.WriteByte(upperhex[b&0x0F])
		}
	}
	return sb.String()
}
