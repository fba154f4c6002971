package models

import (
	"fmt"
	"math"
	"strconv"
)

// Kind represents the different variants a sequence element can hold
type Kind int

const (
	KindAbsent Kind = iota
	KindNumber
	KindText
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single element of an input sequence. Only the field matching
// Kind is meaningful.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Absent returns the absent marker
func Absent() Value {
	return Value{Kind: KindAbsent}
}

// Number creates a numeric value
func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// Text creates a textual value
func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// IsAbsent reports whether v is the absent marker
func (v Value) IsAbsent() bool {
	return v.Kind == KindAbsent
}

// String renders the value the way it would appear in a literal: null, 10, "30"
func (v Value) String() string {
	switch v.Kind {
	case KindAbsent:
		return "null"
	case KindNumber:
		return FormatNumber(v.Num)
	case KindText:
		return strconv.Quote(v.Str)
	default:
		return v.Kind.String()
	}
}

// FormatNumber renders n with the shortest representation that round-trips
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Values builds a sequence from Go literals. nil becomes Absent, integers and
// floats become Number, strings become Text. Any other type panics.
func Values(elems ...any) []Value {
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		out = append(out, valueOf(e))
	}
	return out
}

func valueOf(e any) Value {
	switch x := e.(type) {
	case nil:
		return Absent()
	case Value:
		return x
	case string:
		return Text(x)
	case int:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	default:
		panic(fmt.Sprintf("models: unsupported literal of type %T", e))
	}
}

// ParseLiteral reads a command-line token: null is Absent, a double-quoted
// token is Text with the quotes removed, a finite number is Number and
// anything else is Text.
func ParseLiteral(s string) Value {
	if s == "null" {
		return Absent()
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if unquoted, err := strconv.Unquote(s); err == nil {
			return Text(unquoted)
		}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return Number(n)
	}
	return Text(s)
}

// ParseLiterals applies ParseLiteral to every token
func ParseLiterals(tokens []string) []Value {
	out := make([]Value, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, ParseLiteral(t))
	}
	return out
}

// CountPresent returns the number of non-absent elements
func CountPresent(values []Value) int {
	n := 0
	for _, v := range values {
		if !v.IsAbsent() {
			n++
		}
	}
	return n
}
