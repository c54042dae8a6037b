// Package token defines the syntax-tree nodes produced by a Tokenizer and
// consumed, read-only, by every value grammar.
package token

import (
	"strconv"
	"strings"
)

// Node is one syntactic unit of a property value. The set of implementations
// is closed: Ident, Number, Dimension, Percentage, String, Hash, Function,
// Operator, WhiteSpace, Value and Declaration.
type Node interface {
	node()
}

// Ident is a bare identifier such as `red` or `ease-in`
type Ident struct {
	Name string
}

// Number is a unitless numeric literal
type Number struct {
	Value float64
}

// Dimension is a number followed by a unit, such as `10px`
type Dimension struct {
	Value float64
	Unit  string
}

// Percentage is a number followed by `%`
type Percentage struct {
	Value float64
}

// String is a quoted string with quotes and escapes removed
type String struct {
	Value string
}

// Hash is a `#` token; Value excludes the leading `#`
type Hash struct {
	Value string
}

// Function is a function call; Children holds every argument token,
// including commas and whitespace, in source order.
type Function struct {
	Name     string
	Children []Node
}

// Operator is a delimiter between values: `,` `/` `+` `-` `*`
type Operator struct {
	Value string
}

// WhiteSpace stands for any run of whitespace or comments
type WhiteSpace struct{}

// Value is the root of a tokenized property value
type Value struct {
	Children []Node
}

// Declaration is the root of a tokenized `property: value` pair
type Declaration struct {
	Property string
	Value    *Value
}

func (*Ident) node()       {}
func (*Number) node()      {}
func (*Dimension) node()   {}
func (*Percentage) node()  {}
func (*String) node()      {}
func (*Hash) node()        {}
func (*Function) node()    {}
func (*Operator) node()    {}
func (*WhiteSpace) node()  {}
func (*Value) node()       {}
func (*Declaration) node() {}

// Children returns the direct children of container nodes, or nil
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Value:
		return v.Children
	case *Function:
		return v.Children
	case *Declaration:
		if v.Value != nil {
			return v.Value.Children
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first, pre-order.
// Returning false from fn prunes the subtree below the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, fn)
	}
}

// IsWhiteSpace reports whether n is a WhiteSpace node
func IsWhiteSpace(n Node) bool {
	_, ok := n.(*WhiteSpace)
	return ok
}

// IsOperator reports whether n is the given operator
func IsOperator(n Node, op string) bool {
	o, ok := n.(*Operator)
	return ok && o.Value == op
}

// Describe names the node kind for error messages
func Describe(n Node) string {
	switch v := n.(type) {
	case *Ident:
		return "identifier " + v.Name
	case *Number:
		return "number"
	case *Dimension:
		return "dimension"
	case *Percentage:
		return "percentage"
	case *String:
		return "string"
	case *Hash:
		return "hash"
	case *Function:
		return "function " + v.Name + "()"
	case *Operator:
		return "operator " + v.Value
	case *WhiteSpace:
		return "whitespace"
	case *Value:
		return "value"
	case *Declaration:
		return "declaration"
	case nil:
		return "nothing"
	}
	return "unknown node"
}

// Serialize serializes a node back to CSS text, mainly for debugging and tests
func Serialize(n Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Ident:
		b.WriteString(v.Name)
	case *Number:
		b.WriteString(formatFloat(v.Value))
	case *Dimension:
		b.WriteString(formatFloat(v.Value))
		b.WriteString(v.Unit)
	case *Percentage:
		b.WriteString(formatFloat(v.Value))
		b.WriteByte('%')
	case *String:
		b.WriteString(strconv.Quote(v.Value))
	case *Hash:
		b.WriteByte('#')
		b.WriteString(v.Value)
	case *Function:
		b.WriteString(v.Name)
		b.WriteByte('(')
		for _, child := range v.Children {
			write(b, child)
		}
		b.WriteByte(')')
	case *Operator:
		b.WriteString(v.Value)
	case *WhiteSpace:
		b.WriteByte(' ')
	case *Value:
		for _, child := range v.Children {
			write(b, child)
		}
	case *Declaration:
		b.WriteString(v.Property)
		b.WriteString(": ")
		if v.Value != nil {
			write(b, v.Value)
		}
	}
}

func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
