package types

import (
	"fmt"
	"strconv"
)

// ValueKind is the type tag carried by an Attribute. Two attributes with
// the same name but different kinds are distinct attributes.
type ValueKind string

const (
	ValueKindString  ValueKind = "string"
	ValueKindBool    ValueKind = "bool"
	ValueKindInt     ValueKind = "int"
	ValueKindVersion ValueKind = "version"
)

// ParseValueKind maps a config token to a ValueKind.
func ParseValueKind(token string) (ValueKind, bool) {
	switch ValueKind(token) {
	case ValueKindString, ValueKindBool, ValueKindInt, ValueKindVersion:
		return ValueKind(token), true
	default:
		return "", false
	}
}

// Attribute is a typed, named dimension along which variants are
// described (target platform, packaging format, and so on). Attributes
// are plain comparable values: equality is name plus kind, and an
// Attribute is immutable once created.
type Attribute struct {
	Name string
	Kind ValueKind
}

// StringAttribute is the common case.
func StringAttribute(name string) Attribute {
	return Attribute{Name: name, Kind: ValueKindString}
}

// VersionAttribute declares an attribute whose values are compared with
// version semantics rather than plain equality.
func VersionAttribute(name string) Attribute {
	return Attribute{Name: name, Kind: ValueKindVersion}
}

func (a Attribute) String() string {
	return a.Name
}

// Value is one typed attribute value. It is a comparable tagged scalar
// so it can key maps and form sets; only the field matching Kind is
// meaningful. Version values keep their textual form and are parsed by
// the rules that compare them.
type Value struct {
	Kind ValueKind
	Str  string
	Int  int64
	Bool bool
}

func StringValue(v string) Value {
	return Value{Kind: ValueKindString, Str: v}
}

func BoolValue(v bool) Value {
	return Value{Kind: ValueKindBool, Bool: v}
}

func IntValue(v int64) Value {
	return Value{Kind: ValueKindInt, Int: v}
}

func VersionValue(v string) Value {
	return Value{Kind: ValueKindVersion, Str: v}
}

// ParseValue converts the textual form used in request and variant
// documents into a typed Value for the given kind.
func ParseValue(kind ValueKind, raw string) (Value, error) {
	switch kind {
	case ValueKindString:
		return StringValue(raw), nil
	case ValueKindVersion:
		return VersionValue(raw), nil
	case ValueKindBool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("not a bool: %q", raw)
		}
		return BoolValue(parsed), nil
	case ValueKindInt:
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("not an int: %q", raw)
		}
		return IntValue(parsed), nil
	default:
		return Value{}, fmt.Errorf("unknown value kind: %q", kind)
	}
}

// Render returns the canonical textual form of the value, the inverse
// of ParseValue.
func (v Value) Render() string {
	switch v.Kind {
	case ValueKindBool:
		return strconv.FormatBool(v.Bool)
	case ValueKindInt:
		return strconv.FormatInt(v.Int, 10)
	default:
		return v.Str
	}
}
