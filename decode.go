package httpexec

import "encoding/json"

// protoKey is the prototype-chain property name stripped from decoded
// payloads. Untrusted responses can use it to pollute object graphs in
// consumers that splice decoded maps into template or scripting layers.
const protoKey = "__proto__"

// decodeJSON parses accumulated body text. Unless allowProtoKeys is set,
// every object property literally named "__proto__" is dropped at every
// depth. The transform is pure and shared by both protocol variants.
func decodeJSON(text string, allowProtoKeys bool) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	if !allowProtoKeys {
		v = stripProtoKeys(v)
	}
	return v, nil
}

func stripProtoKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		delete(t, protoKey)
		for k, el := range t {
			t[k] = stripProtoKeys(el)
		}
	case []any:
		for i, el := range t {
			t[i] = stripProtoKeys(el)
		}
	}
	return v
}
