package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errTrailingData = errors.New("trailing data after document")

// decodeJSON decodes a JSON document, keeping object member order and
// number literals.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding json: %w", errTrailingData)
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := &Object{}

		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}

			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", kt)
			}

			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			obj.Set(key, v)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return obj, nil
	case '[':
		arr := &Array{Items: []any{}}

		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			arr.Items = append(arr.Items, v)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// encodeJSON writes v as JSON. indent 0 produces compact output.
func encodeJSON(buf *bytes.Buffer, v any, indent, depth int) error {
	switch x := v.(type) {
	case *Object:
		if len(x.Members) == 0 {
			buf.WriteString("{}")

			return nil
		}

		buf.WriteByte('{')

		for i, m := range x.Members {
			if i > 0 {
				buf.WriteByte(',')
			}

			newline(buf, indent, depth+1)

			if err := encodeScalar(buf, m.Key); err != nil {
				return err
			}

			buf.WriteByte(':')

			if indent > 0 {
				buf.WriteByte(' ')
			}

			if err := encodeJSON(buf, m.Value, indent, depth+1); err != nil {
				return err
			}
		}

		newline(buf, indent, depth)
		buf.WriteByte('}')
	case *Array:
		if len(x.Items) == 0 {
			buf.WriteString("[]")

			return nil
		}

		buf.WriteByte('[')

		for i, it := range x.Items {
			if i > 0 {
				buf.WriteByte(',')
			}

			newline(buf, indent, depth+1)

			if err := encodeJSON(buf, it, indent, depth+1); err != nil {
				return err
			}
		}

		newline(buf, indent, depth)
		buf.WriteByte(']')
	default:
		return encodeScalar(buf, v)
	}

	return nil
}

func encodeScalar(buf *bytes.Buffer, v any) error {
	switch v.(type) {
	case nil, string, json.Number, bool:
	default:
		return fmt.Errorf("unsupported tree value %T", v)
	}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	buf.Truncate(buf.Len() - 1)

	return nil
}

func newline(buf *bytes.Buffer, indent, depth int) {
	if indent <= 0 {
		return
	}

	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", indent*depth))
}
