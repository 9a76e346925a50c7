package toolcall

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the concrete type stored in a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// Value represents an arbitrary JSON argument value without empty interfaces.
type Value struct {
	Kind   Kind
	String string
	Number float64
	Bool   bool
	Object map[string]Value
	Array  []Value
}

// UnmarshalJSON decodes a JSON value into the typed Value representation.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty json value")
	}
	switch trimmed[0] {
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = KindObject
		v.Object = make(map[string]Value, len(raw))
		for key, value := range raw {
			var child Value
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Object[key] = child
		}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = KindArray
		v.Array = make([]Value, 0, len(raw))
		for _, value := range raw {
			var child Value
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Array = append(v.Array, child)
		}
		return nil
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = KindString
		v.String = value
		return nil
	case 't', 'f':
		var value bool
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = KindBool
		v.Bool = value
		return nil
	case 'n':
		if string(trimmed) != "null" {
			return fmt.Errorf("invalid json literal")
		}
		v.Kind = KindNull
		return nil
	default:
		var value float64
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = KindNumber
		v.Number = value
		return nil
	}
}

// MarshalJSON encodes the typed Value back into standard JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToInterface())
}

// StringValue returns the string when the value is a string.
func (v Value) StringValue() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.String, true
}

// NumberValue returns the number when the value is numeric.
func (v Value) NumberValue() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Number, true
}

// ObjectValue returns the object map when the value is an object.
func (v Value) ObjectValue() (map[string]Value, bool) {
	if v.Kind != KindObject {
		return nil, false
	}
	return v.Object, true
}

// Float coerces the value to a real number. Numbers pass through and
// numeric strings are parsed; every other kind fails.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Number, true
	case KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// ToInterface converts the Value into standard Go JSON types.
func (v Value) ToInterface() interface{} {
	switch v.Kind {
	case KindObject:
		out := make(map[string]interface{}, len(v.Object))
		for key, value := range v.Object {
			out[key] = value.ToInterface()
		}
		return out
	case KindArray:
		out := make([]interface{}, 0, len(v.Array))
		for _, value := range v.Array {
			out = append(out, value.ToInterface())
		}
		return out
	case KindString:
		return v.String
	case KindNumber:
		return v.Number
	case KindBool:
		return v.Bool
	default:
		return nil
	}
}
