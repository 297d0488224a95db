package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Value is a metadata value. The set of kinds is closed: string, integer,
// float, boolean, and cross-reference. Exhaustive type switches over Value
// cover exactly these five types.
type Value interface {
	fmt.Stringer
	isValue()
}

// StringValue is plain text.
type StringValue string

// IntValue is a whole number.
type IntValue int64

// FloatValue is a fractional number. Percentages parse to their fraction, so
// "85%" is stored as FloatValue(0.85).
type FloatValue float64

// BoolValue is a boolean flag.
type BoolValue bool

// RefValue is an opaque cross-reference to another concept's id, always
// beginning with '*'.
type RefValue string

func (StringValue) isValue() {}
func (IntValue) isValue()    {}
func (FloatValue) isValue()  {}
func (BoolValue) isValue()   {}
func (RefValue) isValue()    {}

func (v StringValue) String() string { return string(v) }
func (v IntValue) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v FloatValue) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }
func (v RefValue) String() string    { return string(v) }

// Metadata is an ordered key/value mapping. Iteration and JSON marshaling
// follow first-insertion order; setting an existing key replaces the value
// but keeps the key's original position.
type Metadata struct {
	keys   []string
	values map[string]Value
}

// NewMetadata returns an empty mapping.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]Value)}
}

// Set stores v under key, overwriting any previous value.
func (m *Metadata) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value for key and whether it is present.
func (m *Metadata) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// MarshalJSON writes the mapping as a JSON object in insertion order.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		var raw any
		switch v := m.values[key].(type) {
		case StringValue:
			raw = string(v)
		case IntValue:
			raw = int64(v)
		case FloatValue:
			raw = float64(v)
		case BoolValue:
			raw = bool(v)
		case RefValue:
			raw = string(v)
		}
		vb, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order and re-inferring
// value kinds: numbers without a fractional part become IntValue, strings
// beginning with '*' become RefValue.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.values = make(map[string]Value)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("metadata: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("metadata: expected string key, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		v, err := valueFromToken(valTok)
		if err != nil {
			return fmt.Errorf("metadata key %q: %w", key, err)
		}
		m.Set(key, v)
	}

	// Closing brace.
	_, err = dec.Token()
	return err
}

func valueFromToken(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case string:
		if strings.HasPrefix(t, "*") {
			return RefValue(t), nil
		}
		return StringValue(t), nil
	case json.Number:
		if !strings.ContainsAny(t.String(), ".eE") {
			if i, err := t.Int64(); err == nil {
				return IntValue(i), nil
			}
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return FloatValue(f), nil
	case bool:
		return BoolValue(t), nil
	default:
		return nil, fmt.Errorf("unsupported value %v", tok)
	}
}
