package httpexec

import (
	"fmt"
	"net/url"
	"strings"
)

// dummyOrigin anchors pathname validation. Prefix+path are parsed against
// it; any parse result that leaves this origin means the caller tried to
// smuggle an absolute URL, query, or fragment through the path.
const (
	dummyScheme = "http"
	dummyHost   = "origin.invalid"
)

// Param is one query entry. Entries keep their insertion order; a nil
// Value drops the entry, a slice Value expands to repeated key=value
// pairs, anything else is stringified.
type Param struct {
	Key   string
	Value any
}

// P builds a Param.
func P(key string, value any) Param {
	return Param{Key: key, Value: value}
}

// escapeDelims percent-encodes literal '?' and '#' so a downstream URL
// parser can never reinterpret them as query or fragment delimiters.
var escapeDelims = strings.NewReplacer("?", "%3F", "#", "%23")

// buildTarget joins the configured prefix with the caller path, validates
// that the result stays on the intended origin, and serializes the query.
// search is "" or a "?"-prefixed encoded form.
func buildTarget(prefix, path string, query []Param) (pathname, search string, err error) {
	raw := joinPath(prefix, path)
	if !strings.HasPrefix(raw, "/") {
		return "", "", &InvalidPathnameError{Path: path}
	}

	u, parseErr := url.Parse(dummyScheme + "://" + dummyHost + escapeDelims.Replace(raw))
	if parseErr != nil {
		return "", "", &InvalidPathnameError{Path: path}
	}
	if u.Scheme != dummyScheme || u.Host != dummyHost || u.RawQuery != "" || u.Fragment != "" {
		return "", "", &InvalidPathnameError{Path: path}
	}

	return u.EscapedPath(), encodeQuery(query), nil
}

// joinPath concatenates prefix and path with exactly one separating slash.
func joinPath(prefix, path string) string {
	if prefix == "" {
		return path
	}
	if path == "" {
		return prefix
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/")
}

// encodeQuery serializes params in insertion order, expanding slice values
// into repeated pairs and dropping nil entries.
func encodeQuery(query []Param) string {
	var sb strings.Builder
	for _, p := range query {
		if p.Value == nil {
			continue
		}
		switch v := p.Value.(type) {
		case []string:
			for _, el := range v {
				writePair(&sb, p.Key, el)
			}
		case []any:
			for _, el := range v {
				if el == nil {
					continue
				}
				writePair(&sb, p.Key, stringify(el))
			}
		default:
			writePair(&sb, p.Key, stringify(v))
		}
	}
	if sb.Len() == 0 {
		return ""
	}
	return "?" + sb.String()
}

func writePair(sb *strings.Builder, key, value string) {
	if sb.Len() > 0 {
		sb.WriteByte('&')
	}
	sb.WriteString(url.QueryEscape(key))
	sb.WriteByte('=')
	sb.WriteString(url.QueryEscape(value))
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
