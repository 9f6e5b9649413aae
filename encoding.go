package httpexec

import (
	"net/http"
	"strings"
	"unicode"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	textunicode "golang.org/x/text/encoding/unicode"
)

// defaultCharset is the fallback byte encoding for both directions.
const defaultCharset = "utf-8"

// EncodingSpec selects the byte encoding for one direction of a call from
// the relevant header set. Return "" to fall back to the default charset.
// FixedEncoding and DefaultEncoding cover the common cases.
type EncodingSpec func(h http.Header) string

// FixedEncoding always selects the named encoding.
func FixedEncoding(name string) EncodingSpec {
	return func(http.Header) string { return name }
}

// DefaultEncoding extracts the charset parameter from the content-type
// header, falling back to UTF-8 when the header or parameter is missing
// or malformed.
func DefaultEncoding(h http.Header) string {
	return charsetParam(h.Get("Content-Type"))
}

// charsetParam scans a content-type value for a charset= parameter. The
// match is case-insensitive and the token ends at ';', whitespace, or the
// end of the string.
func charsetParam(contentType string) string {
	const key = "charset="
	i := strings.Index(strings.ToLower(contentType), key)
	if i < 0 {
		return ""
	}
	token := contentType[i+len(key):]
	for j, r := range token {
		if r == ';' || unicode.IsSpace(r) {
			token = token[:j]
			break
		}
	}
	return strings.Trim(token, `"`)
}

// resolveEncoding turns a spec plus the relevant headers into a concrete
// encoding and the charset name actually used. Unsupported names silently
// substitute the default rather than failing the call.
func resolveEncoding(spec EncodingSpec, h http.Header) (encoding.Encoding, string) {
	if spec == nil {
		spec = DefaultEncoding
	}
	name := strings.ToLower(strings.TrimSpace(spec(h)))
	if name == "" {
		return textunicode.UTF8, defaultCharset
	}
	if enc := lookupEncoding(name); enc != nil {
		return enc, name
	}
	return textunicode.UTF8, defaultCharset
}

// lookupEncoding resolves a charset name via the WHATWG index first, then
// the IANA MIME registry. Returns nil for unsupported names.
func lookupEncoding(name string) encoding.Encoding {
	if name == "utf-8" || name == "utf8" {
		return textunicode.UTF8
	}
	if enc, _ := htmlcharset.Lookup(name); enc != nil {
		return enc
	}
	if enc, err := ianaindex.MIME.Encoding(name); err == nil && enc != nil {
		return enc
	}
	return nil
}

// encodeText converts UTF-8 text to bytes in the given encoding.
func encodeText(enc encoding.Encoding, text string) ([]byte, error) {
	if enc == textunicode.UTF8 {
		return []byte(text), nil
	}
	return enc.NewEncoder().Bytes([]byte(text))
}

// decodeText converts raw body bytes in the given encoding to UTF-8 text.
func decodeText(enc encoding.Encoding, raw []byte) (string, error) {
	if enc == textunicode.UTF8 {
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
