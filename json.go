package fixedmap

import (
	"bytes"
	"encoding/json"
	"io"
)

// FromJSON builds a populated Map from a top-level JSON object,
// preserving the document's own key order — the one source form where
// insertion order survives the trip through Go (a map[string]any
// source would randomize it).  Decoding is token-level so duplicate
// object keys can be collapsed to their first occurrence, with the
// last value winning, matching set-after-construct semantics.  Empty
// string keys are filtered like everywhere else.
//
// Scalars decode as string, bool, int64 or float64 (integral number
// tokens stay integral); nested objects and arrays decode as
// map[string]any and []any.  Anything other than a well-formed JSON
// object root fails with an ErrInvalidArgument error.
func FromJSON(raw []byte, opts ...Option[any]) (*Map[any], error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, newErr(ErrInvalidArgument, "JSON parse error")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, newErr(ErrInvalidArgument, "JSON root is not an object")
	}

	var keys []string
	vals := make(map[string]any)
	for dec.More() {
		kTok, err := dec.Token()
		if err != nil {
			return nil, newErr(ErrInvalidArgument, "JSON parse error reading key")
		}
		key, ok := kTok.(string)
		if !ok {
			return nil, newErr(ErrInvalidArgument, "JSON key is not a string")
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		if _, dup := vals[key]; !dup {
			keys = append(keys, key)
		}
		vals[key] = val
	}
	if _, err := dec.Token(); err != nil {
		return nil, newErr(ErrInvalidArgument, "JSON parse error: missing '}'")
	}
	// Exactly one root object, no trailing content.
	if _, err := dec.Token(); err != io.EOF {
		return nil, newErr(ErrInvalidArgument, "trailing JSON content")
	}

	m, err := New(keys, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.MassUpdate(vals); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeJSONValue recursively decodes one JSON value from the decoder.
// Below the top level, object key order is not preserved.
func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, newErr(ErrInvalidArgument, "JSON parse error")
	}

	switch v := tok.(type) {

	case json.Delim:
		switch v {
		case '{':
			obj := make(map[string]any)
			for dec.More() {
				kTok, err := dec.Token()
				if err != nil {
					return nil, newErr(ErrInvalidArgument, "JSON parse error reading key")
				}
				key, ok := kTok.(string)
				if !ok {
					return nil, newErr(ErrInvalidArgument, "JSON key is not a string")
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj[key] = val
			}
			if _, err := dec.Token(); err != nil {
				return nil, newErr(ErrInvalidArgument, "JSON parse error: missing '}'")
			}
			return obj, nil
		case '[':
			arr := make([]any, 0, 8)
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, newErr(ErrInvalidArgument, "JSON parse error: missing ']'")
			}
			return arr, nil
		default:
			return nil, newErr(ErrInvalidArgument, "unexpected delimiter")
		}

	case string:
		return v, nil

	case bool:
		return v, nil

	case json.Number:
		// json.Number preserves the exact token, so "1.0" stays a
		// float even though its numeric value is integral.
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, newErr(ErrInvalidArgument, "bad JSON number: "+v.String())
		}
		return f, nil

	case nil:
		return nil, nil

	default:
		return nil, newErr(ErrInvalidArgument, "unexpected JSON token")
	}
}
