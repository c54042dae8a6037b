// Package css is the tree-sitter backed Tokenizer. Values are parsed inside a
// synthetic rule so the grammar sees a complete declaration.
package css

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"bennypowers.dev/cssvalues/internal/token"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// Parser wraps a tree-sitter parser configured for CSS
type Parser struct {
	parser *sitter.Parser
}

// parserPool is a pool of reusable CSS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
		}
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// Tokenizer implements token.Tokenizer over pooled tree-sitter parsers. It is
// safe for concurrent use.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

var _ token.Tokenizer = (*Tokenizer)(nil)

// Tokenize implements token.Tokenizer
func (*Tokenizer) Tokenize(text string, ctx token.Context) (token.Node, error) {
	p := AcquireParser()
	defer ReleaseParser(p)
	if ctx == token.ContextDeclaration {
		return p.Declaration(text)
	}
	return p.Value(text)
}

const (
	valuePrefix = "a{x:"
	declPrefix  = "a{"
	suffix      = ";}"
)

// Value tokenizes a bare property value
func (p *Parser) Value(text string) (token.Node, error) {
	if strings.TrimSpace(text) == "" {
		return &token.Value{Children: []token.Node{}}, nil
	}
	decl, err := p.parseDeclaration(valuePrefix, text)
	if err != nil {
		return nil, err
	}
	return decl.Value, nil
}

// Declaration tokenizes `property: value`, with or without a trailing `;`
func (p *Parser) Declaration(text string) (token.Node, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(text), ";")
	if !strings.Contains(trimmed, ":") {
		return nil, token.NewSyntaxError(len(text), "expected ':' in declaration")
	}
	return p.parseDeclaration(declPrefix, trimmed)
}

func (p *Parser) parseDeclaration(prefix, text string) (*token.Declaration, error) {
	source := []byte(prefix + text + suffix)
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse CSS")
	}
	defer tree.Close()

	w := &walker{source: source, base: len(prefix)}
	root := tree.RootNode()
	if bad := firstError(root); bad != nil {
		return nil, token.NewSyntaxError(w.offset(bad), "unexpected "+strconv.Quote(w.text(bad)))
	}
	node := findKind(root, "declaration")
	if node == nil {
		return nil, token.NewSyntaxError(0, "expected a declaration")
	}
	// a ; or } in text closes the synthetic declaration early
	end := len(strings.TrimRight(prefix+text, " \t\r\n\f"))
	if at := int(valueEnd(node)); countKind(root, "declaration") != 1 || at != end {
		at = min(at, len(source)-1)
		return nil, token.NewSyntaxError(at-len(prefix), "unexpected "+strconv.Quote(string(source[at:at+1])))
	}
	return w.declaration(node)
}

// valueEnd is the end of the last declaration child before its ';'
func valueEnd(decl *sitter.Node) uint {
	end := decl.EndByte()
	for i := int(decl.ChildCount()) - 1; i >= 0; i-- {
		child := decl.Child(uint(i))
		if child.Kind() != ";" {
			return child.EndByte()
		}
	}
	return end
}

// walker converts tree-sitter nodes into token nodes
type walker struct {
	source []byte
	base   int
}

func (w *walker) text(n *sitter.Node) string {
	return string(w.source[n.StartByte():n.EndByte()])
}

func (w *walker) offset(n *sitter.Node) int {
	return max(int(n.StartByte())-w.base, 0)
}

func (w *walker) declaration(n *sitter.Node) (*token.Declaration, error) {
	decl := &token.Declaration{Value: &token.Value{}}
	var values []*sitter.Node
	seenColon := false
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "property_name":
			decl.Property = strings.ToLower(w.text(child))
		case ":":
			seenColon = true
		case ";":
		case "important":
			return nil, token.NewUnsupportedTokenError(w.offset(child), w.text(child))
		default:
			if seenColon {
				values = append(values, child)
			}
		}
	}
	children, err := w.sequence(values)
	if err != nil {
		return nil, err
	}
	decl.Value.Children = children
	return decl, nil
}

// sequence converts sibling nodes, inserting WhiteSpace where the source has
// a gap between them
func (w *walker) sequence(nodes []*sitter.Node) ([]token.Node, error) {
	out := []token.Node{}
	var prevEnd uint
	for i, n := range nodes {
		if i > 0 && n.StartByte() > prevEnd && strings.TrimSpace(string(w.source[prevEnd:n.StartByte()])) == "" {
			out = append(out, &token.WhiteSpace{})
		}
		converted, err := w.convert(n)
		if err != nil {
			return nil, err
		}
		out = append(out, converted...)
		prevEnd = n.EndByte()
	}
	return out, nil
}

func (w *walker) convert(n *sitter.Node) ([]token.Node, error) {
	switch n.Kind() {
	case "plain_value", "keyword_query":
		return []token.Node{&token.Ident{Name: w.text(n)}}, nil
	case "integer_value", "float_value":
		num, err := w.number(n)
		if err != nil {
			return nil, err
		}
		return []token.Node{num}, nil
	case "color_value":
		return []token.Node{&token.Hash{Value: strings.TrimPrefix(w.text(n), "#")}}, nil
	case "string_value":
		return []token.Node{&token.String{Value: unquote(w.text(n))}}, nil
	case "call_expression":
		fn, err := w.function(n)
		if err != nil {
			return nil, err
		}
		return []token.Node{fn}, nil
	case "binary_expression":
		var parts []*sitter.Node
		for i := uint(0); i < n.ChildCount(); i++ {
			parts = append(parts, n.Child(i))
		}
		return w.sequence(parts)
	case ",", "/", "+", "-", "*":
		return []token.Node{&token.Operator{Value: n.Kind()}}, nil
	}
	return nil, token.NewUnsupportedTokenError(w.offset(n), w.text(n))
}

func (w *walker) number(n *sitter.Node) (token.Node, error) {
	text := w.text(n)
	var unit string
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child.Kind() == "unit" {
			unit = w.text(child)
			text = string(w.source[n.StartByte():child.StartByte()])
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, token.NewSyntaxError(w.offset(n), "invalid number "+w.text(n))
	}
	switch unit {
	case "":
		return &token.Number{Value: v}, nil
	case "%":
		return &token.Percentage{Value: v}, nil
	}
	return &token.Dimension{Value: v, Unit: unit}, nil
}

func (w *walker) function(n *sitter.Node) (*token.Function, error) {
	fn := &token.Function{Children: []token.Node{}}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "function_name":
			fn.Name = w.text(child)
		case "arguments":
			var args []*sitter.Node
			for j := uint(0); j < child.ChildCount(); j++ {
				arg := child.Child(j)
				if k := arg.Kind(); k == "(" || k == ")" {
					continue
				}
				args = append(args, arg)
			}
			children, err := w.sequence(args)
			if err != nil {
				return nil, err
			}
			fn.Children = children
		}
	}
	return fn, nil
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return n
}

func findKind(n *sitter.Node, kind string) *sitter.Node {
	if n.Kind() == kind {
		return n
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if found := findKind(n.Child(i), kind); found != nil {
			return found
		}
	}
	return nil
}

func countKind(n *sitter.Node, kind string) int {
	count := 0
	if n.Kind() == kind {
		count++
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		count += countKind(n.Child(i), kind)
	}
	return count
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
