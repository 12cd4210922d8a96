package dnd5e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

// ScalingKind is the shape held by a ScalingValue
type ScalingKind int

// Scaling value shapes
const (
	ScalingUnset ScalingKind = iota
	ScalingInt
	ScalingText
	ScalingTable
)

func (k ScalingKind) String() string {
	switch k {
	case ScalingInt:
		return "int"
	case ScalingText:
		return "text"
	case ScalingTable:
		return "table"
	default:
		return "unset"
	}
}

// ShapeError reports a scaling value read or decoded as the wrong shape
type ShapeError struct {
	Key  string
	Want ScalingKind
	Got  ScalingKind
	Raw  string
}

func (e *ShapeError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("scaling value %q: cannot decode %s", e.Key, e.Raw)
	}
	if e.Want == ScalingUnset && e.Got == ScalingUnset {
		return fmt.Sprintf("scaling value %q is unset", e.Key)
	}
	return fmt.Sprintf("scaling value %q: want %s, got %s", e.Key, e.Want, e.Got)
}

// ScalingValue is a per-level class value: an integer count, a text token
// such as a die label, or a table of integers keyed by integer (spell slots
// keyed by slot level).
type ScalingValue struct {
	kind  ScalingKind
	i     int
	s     string
	table map[int]int
}

// Int creates an integer scaling value
func Int(v int) ScalingValue {
	return ScalingValue{kind: ScalingInt, i: v}
}

// Text creates a text scaling value
func Text(v string) ScalingValue {
	return ScalingValue{kind: ScalingText, s: v}
}

// Table creates a table scaling value. The map is copied.
func Table(v map[int]int) ScalingValue {
	return ScalingValue{kind: ScalingTable, table: copyTable(v)}
}

// Kind returns the held shape
func (v ScalingValue) Kind() ScalingKind {
	return v.kind
}

// AsInt returns the integer or a *ShapeError
func (v ScalingValue) AsInt() (int, error) {
	if v.kind != ScalingInt {
		return 0, &ShapeError{Want: ScalingInt, Got: v.kind}
	}
	return v.i, nil
}

// AsText returns the text or a *ShapeError
func (v ScalingValue) AsText() (string, error) {
	if v.kind != ScalingText {
		return "", &ShapeError{Want: ScalingText, Got: v.kind}
	}
	return v.s, nil
}

// AsTable returns a copy of the table or a *ShapeError
func (v ScalingValue) AsTable() (map[int]int, error) {
	if v.kind != ScalingTable {
		return nil, &ShapeError{Want: ScalingTable, Got: v.kind}
	}
	return copyTable(v.table), nil
}

// String renders the value for logs and CLI output
func (v ScalingValue) String() string {
	switch v.kind {
	case ScalingInt:
		return strconv.Itoa(v.i)
	case ScalingText:
		return v.s
	case ScalingTable:
		keys := sortedKeys(v.table)
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%d:%d", k, v.table[k])
		}
		buf.WriteByte('}')
		return buf.String()
	default:
		return ""
	}
}

// MarshalJSON encodes the natural shape: number, string or object
func (v ScalingValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ScalingInt:
		return []byte(strconv.Itoa(v.i)), nil
	case ScalingText:
		return json.Marshal(v.s)
	case ScalingTable:
		out := make(map[string]int, len(v.table))
		for k, n := range v.table {
			out[strconv.Itoa(k)] = n
		}
		return json.Marshal(out)
	default:
		return nil, &ShapeError{Got: ScalingUnset}
	}
}

// UnmarshalJSON accepts an integer, a string or an object whose keys are
// integers and whose values are integers. Anything else is a *ShapeError.
func (v *ScalingValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &ShapeError{Raw: "empty input"}
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &ShapeError{Raw: string(data)}
		}
		*v = Text(s)
		return nil
	case c == '{':
		var raw map[string]json.Number
		if err := json.Unmarshal(data, &raw); err != nil {
			return &ShapeError{Raw: string(data)}
		}
		table := make(map[int]int, len(raw))
		for k, n := range raw {
			level, err := strconv.Atoi(k)
			if err != nil {
				return &ShapeError{Raw: fmt.Sprintf("table key %q", k)}
			}
			count, err := strconv.Atoi(n.String())
			if err != nil {
				return &ShapeError{Raw: fmt.Sprintf("table value %q", n.String())}
			}
			table[level] = count
		}
		*v = ScalingValue{kind: ScalingTable, table: table}
		return nil
	case c == '-' || (c >= '0' && c <= '9'):
		n, err := strconv.Atoi(string(data))
		if err != nil {
			return &ShapeError{Raw: string(data)}
		}
		*v = Int(n)
		return nil
	default:
		return &ShapeError{Raw: string(data)}
	}
}

// MarshalYAML mirrors the JSON shape
func (v ScalingValue) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case ScalingInt:
		return v.i, nil
	case ScalingText:
		return v.s, nil
	case ScalingTable:
		return copyTable(v.table), nil
	default:
		return nil, &ShapeError{Got: ScalingUnset}
	}
}

// Scaling is the open set of named scaling values for one progression level
type Scaling map[string]ScalingValue

// Has reports whether key is present
func (s Scaling) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Int returns the integer value for key
func (s Scaling) Int(key string) (int, error) {
	v, err := s.get(key)
	if err != nil {
		return 0, err
	}
	n, err := v.AsInt()
	return n, withKey(err, key)
}

// Text returns the text value for key
func (s Scaling) Text(key string) (string, error) {
	v, err := s.get(key)
	if err != nil {
		return "", err
	}
	t, err := v.AsText()
	return t, withKey(err, key)
}

// Table returns a copy of the table value for key
func (s Scaling) Table(key string) (map[int]int, error) {
	v, err := s.get(key)
	if err != nil {
		return nil, err
	}
	t, err := v.AsTable()
	return t, withKey(err, key)
}

// Keys returns the value names in sorted order
func (s Scaling) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON encodes each value, tagging shape errors with their key.
// An unset value fails here so it never reaches storage.
func (s Scaling) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	out := make(map[string]json.RawMessage, len(s))
	for k, v := range s {
		data, err := v.MarshalJSON()
		if err != nil {
			return nil, withKey(err, k)
		}
		out[k] = data
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes each value, tagging shape errors with their key
func (s *Scaling) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = nil
		return nil
	}

	out := make(Scaling, len(raw))
	for k, msg := range raw {
		var v ScalingValue
		if err := v.UnmarshalJSON(msg); err != nil {
			return withKey(err, k)
		}
		out[k] = v
	}
	*s = out
	return nil
}

func (s Scaling) get(key string) (ScalingValue, error) {
	v, ok := s[key]
	if !ok {
		return ScalingValue{}, errors.NotFoundf("scaling value %s not found", key).
			WithMeta("key", key)
	}
	return v, nil
}

func withKey(err error, key string) error {
	if shapeErr, ok := err.(*ShapeError); ok {
		shapeErr.Key = key
		return shapeErr
	}
	return err
}

func copyTable(in map[int]int) map[int]int {
	out := make(map[int]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
