// SPDX-License-Identifier: MIT

package record

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// decodeText converts CP932 bytes to a trimmed string. Undecodable
// byte sequences become U+FFFD instead of failing the record.
func decodeText(b []byte) string {
	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		// The decoder substitutes rather than erroring; a hard error
		// here means something pathological, fall back to raw ASCII.
		decoded = b
	}
	s := strings.TrimRight(string(decoded), " \x00")
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// decodeValue applies the field kind to raw record bytes. Blank fields
// normalize to the empty string for text kinds and to nil for numeric
// kinds, so nullable numeric columns get NULL, not zero.
func decodeValue(b []byte, kind Kind) any {
	s := decodeText(b)
	switch kind {
	case Int:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil
		}
		return n
	case Dec1:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil
		}
		return float64(n) / 10
	default:
		return s
	}
}

// encodeValue renders a decoded value back into its fixed-width slot.
// Numbers are zero-padded on the left, everything else space-padded on
// the right, matching the vendor's fill conventions.
func encodeValue(v any, f Field) ([]byte, error) {
	if v == nil {
		return []byte(strings.Repeat(" ", f.Len)), nil
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case int64:
		s = strconv.FormatInt(val, 10)
	case int:
		s = strconv.Itoa(val)
	default:
		return nil, &EncodeError{Col: f.Col, Reason: "unsupported value type"}
	}

	var b []byte
	if f.Kind == Int {
		if len(s) > f.Len {
			return nil, &EncodeError{Col: f.Col, Reason: "value wider than field"}
		}
		b = []byte(strings.Repeat("0", f.Len-len(s)) + s)
	} else {
		encoded, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, &EncodeError{Col: f.Col, Reason: "not representable in CP932"}
		}
		if len(encoded) > f.Len {
			return nil, &EncodeError{Col: f.Col, Reason: "value wider than field"}
		}
		b = append(encoded, []byte(strings.Repeat(" ", f.Len-len(encoded)))...)
	}
	return b, nil
}

// EncodeError reports a value that cannot be rendered into its slot.
type EncodeError struct {
	Col    string
	Reason string
}

func (e *EncodeError) Error() string {
	return "record: encode " + e.Col + ": " + e.Reason
}
