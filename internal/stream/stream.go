// Package stream holds the token-stream helpers every value grammar uses to
// walk a flat node list: comma splitting, function lookup and argument
// extraction.
package stream

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/cssvalues/internal/token"
)

// ErrNotFound indicates FindFunctionNode found no matching function
var ErrNotFound = errors.New("function not found")

// SplitOptions tunes SplitByComma. The zero value skips whitespace and drops
// empty groups.
type SplitOptions struct {
	// StartIndex is the first node considered
	StartIndex int
	// AllowEmpty keeps the empty groups produced by leading, trailing or
	// doubled commas
	AllowEmpty bool
	// KeepWhitespace keeps WhiteSpace nodes inside groups
	KeepWhitespace bool
}

// SplitByComma splits a flat node list into groups at top-level `,` operators.
// Commas nested in functions are not boundaries since they live in the
// function's children.
func SplitByComma(nodes []token.Node, opts SplitOptions) [][]token.Node {
	groups := [][]token.Node{}
	if opts.StartIndex >= len(nodes) {
		return groups
	}

	current := []token.Node{}
	flush := func() {
		if len(current) > 0 || opts.AllowEmpty {
			groups = append(groups, current)
		}
		current = []token.Node{}
	}

	for _, n := range nodes[max(opts.StartIndex, 0):] {
		if token.IsOperator(n, ",") {
			flush()
			continue
		}
		if !opts.KeepWhitespace && token.IsWhiteSpace(n) {
			continue
		}
		current = append(current, n)
	}
	flush()
	return groups
}

// Significant returns nodes with whitespace removed
func Significant(nodes []token.Node) []token.Node {
	out := make([]token.Node, 0, len(nodes))
	for _, n := range nodes {
		if !token.IsWhiteSpace(n) {
			out = append(out, n)
		}
	}
	return out
}

// NotFoundError lists the function names FindFunctionNode looked for
type NotFoundError struct {
	Names []string
}

func (e *NotFoundError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = n + "()"
	}
	return fmt.Sprintf("function not found: expected %s", strings.Join(quoted, " or "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// FindFunctionNode returns the first Function node in tree, depth-first,
// whose name matches one of names ignoring case.
func FindFunctionNode(tree token.Node, names ...string) (*token.Function, error) {
	var found *token.Function
	token.Walk(tree, func(n token.Node) bool {
		if found != nil {
			return false
		}
		if fn, ok := n.(*token.Function); ok {
			for _, name := range names {
				if strings.EqualFold(fn.Name, name) {
					found = fn
					return false
				}
			}
		}
		return true
	})
	if found == nil {
		return nil, &NotFoundError{Names: names}
	}
	return found, nil
}

// ParseFunctionArguments returns the function's children with comma operators
// and whitespace removed, in order
func ParseFunctionArguments(fn *token.Function) []token.Node {
	out := make([]token.Node, 0, len(fn.Children))
	for _, n := range fn.Children {
		if token.IsOperator(n, ",") || token.IsWhiteSpace(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ParseCommaSeparatedSingle splits nodes at commas and requires exactly one
// node per group, returning those nodes in order
func ParseCommaSeparatedSingle(nodes []token.Node) ([]token.Node, error) {
	if len(Significant(nodes)) == 0 {
		return nil, errors.New("Expected at least one value")
	}
	groups := SplitByComma(nodes, SplitOptions{AllowEmpty: true})
	if len(groups) == 0 {
		return nil, errors.New("Expected at least one value")
	}
	out := make([]token.Node, 0, len(groups))
	for _, g := range groups {
		switch len(g) {
		case 0:
			return nil, errors.New("Empty value before comma")
		case 1:
			out = append(out, g[0])
		default:
			return nil, fmt.Errorf("Expected single value, got %d values", len(g))
		}
	}
	return out, nil
}

// JoinComma joins generated list items with the canonical `, ` separator
func JoinComma(parts []string) string {
	return strings.Join(parts, ", ")
}

// JoinSpace joins generated components with a single space
func JoinSpace(parts []string) string {
	return strings.Join(parts, " ")
}
