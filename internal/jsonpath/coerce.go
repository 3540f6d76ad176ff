package jsonpath

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind is the JSON type a raw command line value was coerced to.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindComposite:
		return "composite"
	default:
		return "string"
	}
}

// Value is a coerced JSON value.
type Value struct {
	Kind Kind
	Int  int64
	Str  string
	Raw  []byte
}

func Integer(n int64) Value { return Value{Kind: KindInteger, Int: n} }

func String(s string) Value { return Value{Kind: KindString, Str: s} }

func Composite(raw []byte) Value { return Value{Kind: KindComposite, Raw: raw} }

// Coerce decides what JSON value a raw token becomes:
// an embedded object or array when it starts with { or [,
// a 32-bit integer when it parses as one, a string otherwise.
//
// Floating point input such as "1.5" is kept as the string "1.5".
func Coerce(raw string) (Value, error) {
	if strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[") {
		if !gjson.Valid(raw) {
			return Value{}, &SyntaxError{What: "value", Input: raw}
		}
		return Composite([]byte(raw)), nil
	}

	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return Integer(n), nil
	}

	return String(raw), nil
}
