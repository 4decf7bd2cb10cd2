package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType represents the type of a runtime value
type ValueType int

const (
	// NothingType represents the absence of a value
	NothingType ValueType = iota
	// BoolType represents a boolean value
	BoolType
	// IntType represents a 64-bit integer value
	IntType
	// FloatType represents a 64-bit float value
	FloatType
	// StringType represents a string value
	StringType
	// ListType represents an ordered list of values
	ListType
	// RecordType represents an ordered column/value mapping
	RecordType
	// ClosureType represents a block reference with captured bindings
	ClosureType
)

// String returns the string representation of the value type
func (vt ValueType) String() string {
	switch vt {
	case NothingType:
		return "nothing"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case ListType:
		return "list"
	case RecordType:
		return "record"
	case ClosureType:
		return "closure"
	default:
		return "unknown"
	}
}

// Value represents a runtime value flowing between the evaluator and the
// completion engine
type Value interface {
	Type() ValueType
	String() string
}

// NothingValue represents the absence of a value
type NothingValue struct{}

func (n *NothingValue) Type() ValueType { return NothingType }
func (n *NothingValue) String() string  { return "" }

// BoolValue represents a boolean value
type BoolValue struct {
	Val bool
}

func (b *BoolValue) Type() ValueType { return BoolType }
func (b *BoolValue) String() string  { return strconv.FormatBool(b.Val) }

// IntValue represents an integer value
type IntValue struct {
	Val int64
}

func (i *IntValue) Type() ValueType { return IntType }
func (i *IntValue) String() string  { return strconv.FormatInt(i.Val, 10) }

// FloatValue represents a float value
type FloatValue struct {
	Val float64
}

func (f *FloatValue) Type() ValueType { return FloatType }
func (f *FloatValue) String() string  { return strconv.FormatFloat(f.Val, 'g', -1, 64) }

// StringValue represents a string value
type StringValue struct {
	Val string
}

func (s *StringValue) Type() ValueType { return StringType }
func (s *StringValue) String() string  { return s.Val }

// ListValue represents an ordered list of values
type ListValue struct {
	Items []Value
}

func (l *ListValue) Type() ValueType { return ListType }
func (l *ListValue) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// RecordValue represents an ordered column/value mapping. Columns keep
// insertion order so completions enumerate fields deterministically.
type RecordValue struct {
	Cols []string
	Vals []Value
}

func (r *RecordValue) Type() ValueType { return RecordType }
func (r *RecordValue) String() string {
	parts := make([]string, len(r.Cols))
	for i, col := range r.Cols {
		parts[i] = fmt.Sprintf("%s: %s", col, r.Vals[i].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the value of the named column.
func (r *RecordValue) Get(col string) (Value, bool) {
	for i, c := range r.Cols {
		if c == col {
			return r.Vals[i], true
		}
	}
	return nil, false
}

// Push appends a column to the record.
func (r *RecordValue) Push(col string, val Value) {
	r.Cols = append(r.Cols, col)
	r.Vals = append(r.Vals, val)
}

// ClosureValue represents a reference to a block together with the bindings
// it captured at creation time
type ClosureValue struct {
	Closure Closure
}

func (c *ClosureValue) Type() ValueType { return ClosureType }
func (c *ClosureValue) String() string  { return fmt.Sprintf("closure#%d", c.Closure.Block) }

// Nothing returns the canonical nothing value.
func Nothing() Value { return &NothingValue{} }

// NewString wraps a string into a Value.
func NewString(s string) Value { return &StringValue{Val: s} }

// NewInt wraps an integer into a Value.
func NewInt(i int64) Value { return &IntValue{Val: i} }

// NewList wraps values into a list Value.
func NewList(items ...Value) Value { return &ListValue{Items: items} }

// NewStringList wraps strings into a list of string values.
func NewStringList(items []string) Value {
	vals := make([]Value, len(items))
	for i, s := range items {
		vals[i] = NewString(s)
	}
	return &ListValue{Items: vals}
}

// CoerceString converts scalar values to their string form. Lists, records
// and closures do not coerce.
func CoerceString(v Value) (string, bool) {
	switch v.Type() {
	case StringType, IntType, FloatType, BoolType:
		return v.String(), true
	default:
		return "", false
	}
}
