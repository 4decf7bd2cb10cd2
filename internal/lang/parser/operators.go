package parser

// OpDef describes one binary operator.
type OpDef struct {
	Name string
	Desc string
}

var comparisonOps = []OpDef{
	{"==", "Checks if two values are equal."},
	{"!=", "Checks if two values are not equal."},
	{"<", "Checks if a value is less than another."},
	{"<=", "Checks if a value is less than or equal to another."},
	{">", "Checks if a value is greater than another."},
	{">=", "Checks if a value is greater than or equal to another."},
}

var membershipOps = []OpDef{
	{"in", "Checks if a value is in a list or string."},
	{"not-in", "Checks if a value is not in a list or string."},
}

var mathOps = []OpDef{
	{"+", "Adds two values."},
	{"-", "Subtracts two values."},
	{"*", "Multiplies two values."},
	{"/", "Divides two values."},
	{"//", "Divides two values and floors the result."},
	{"mod", "Divides two values and returns the remainder."},
	{"**", "Raises one value to the power of another."},
}

var bitOps = []OpDef{
	{"bit-or", "Performs a bitwise or on two values."},
	{"bit-xor", "Performs a bitwise xor on two values."},
	{"bit-and", "Performs a bitwise and on two values."},
	{"bit-shl", "Shifts a value left by another."},
	{"bit-shr", "Shifts a value right by another."},
}

var stringOps = []OpDef{
	{"=~", "Checks if a value matches a regular expression."},
	{"!~", "Checks if a value does not match a regular expression."},
	{"like", "Checks if a value matches a regular expression."},
	{"not-like", "Checks if a value does not match a regular expression."},
	{"starts-with", "Checks if a string starts with another."},
	{"ends-with", "Checks if a string ends with another."},
	{"++", "Concatenates two lists, two strings, or two binary values."},
}

var boolOps = []OpDef{
	{"and", "Checks if both values are true."},
	{"or", "Checks if either value is true."},
	{"xor", "Checks if one value is true and the other is false."},
}

var listOps = []OpDef{
	{"++", "Concatenates two lists, two strings, or two binary values."},
}

// OperatorsForShape returns the operators applicable to a left operand of
// the given shape. Shapes with no operand semantics get an empty set.
func OperatorsForShape(kind ShapeKind) []OpDef {
	var ops []OpDef
	switch kind {
	case ShapeInt:
		ops = append(ops, mathOps...)
		ops = append(ops, bitOps...)
		ops = append(ops, comparisonOps...)
		ops = append(ops, membershipOps...)
	case ShapeFloat:
		ops = append(ops, mathOps...)
		ops = append(ops, comparisonOps...)
		ops = append(ops, membershipOps...)
	case ShapeString:
		ops = append(ops, stringOps...)
		ops = append(ops, comparisonOps...)
		ops = append(ops, membershipOps...)
	case ShapeBool:
		ops = append(ops, boolOps...)
		ops = append(ops, []OpDef{{"==", comparisonOps[0].Desc}, {"!=", comparisonOps[1].Desc}}...)
		ops = append(ops, membershipOps...)
	case ShapeList:
		ops = append(ops, listOps...)
		ops = append(ops, []OpDef{{"==", comparisonOps[0].Desc}, {"!=", comparisonOps[1].Desc}}...)
		ops = append(ops, membershipOps...)
	case ShapeVariable:
		ops = append(ops, comparisonOps...)
		ops = append(ops, membershipOps...)
	}
	return ops
}

var operatorNames = func() map[string]bool {
	names := make(map[string]bool)
	for _, set := range [][]OpDef{comparisonOps, membershipOps, mathOps, bitOps, stringOps, boolOps, listOps} {
		for _, op := range set {
			names[op.Name] = true
		}
	}
	return names
}()

// IsOperatorName reports whether word is a known binary operator in any
// operand context.
func IsOperatorName(word string) bool {
	return operatorNames[word]
}
