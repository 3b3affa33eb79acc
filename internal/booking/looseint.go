package booking

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// LooseInt is an integer parsed from free form text. When the text holds no
// leading digits the value is not a number and encodes as JSON null.
type LooseInt struct {
	Value int
	Valid bool
}

// Int returns a valid LooseInt holding v.
func Int(v int) LooseInt {
	return LooseInt{Value: v, Valid: true}
}

// ParseLooseInt reads a base-10 integer from the start of s. Leading white
// space is skipped, one sign is accepted and parsing stops at the first
// non-digit, so "10abc" yields 10 while "abc" and "" yield an invalid value.
// Values that do not fit in an int are reported as invalid.
func ParseLooseInt(s string) LooseInt {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return LooseInt{}
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return LooseInt{}
	}
	return Int(v)
}

// String renders the value the way a browser would print it.
func (l LooseInt) String() string {
	if !l.Valid {
		return "NaN"
	}
	return strconv.Itoa(l.Value)
}

// MarshalJSON implements json.Marshaler.
func (l LooseInt) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(l.Value)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LooseInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = LooseInt{}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = Int(v)
	return nil
}
