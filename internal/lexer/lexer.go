// Package lexer is the pure-Go Tokenizer built on tdewolff's CSS3 lexer.
package lexer

import (
	"io"
	"strconv"
	"strings"

	"bennypowers.dev/cssvalues/internal/token"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Lexer implements token.Tokenizer. It holds no state and is safe for
// concurrent use.
type Lexer struct{}

// New creates a new Lexer
func New() *Lexer {
	return &Lexer{}
}

var _ token.Tokenizer = (*Lexer)(nil)

// frame is one level of function nesting being built
type frame struct {
	fn       *token.Function
	children []token.Node
}

// Tokenize implements token.Tokenizer
func (l *Lexer) Tokenize(text string, ctx token.Context) (token.Node, error) {
	switch ctx {
	case token.ContextDeclaration:
		return l.tokenizeDeclaration(text)
	default:
		nodes, err := tokenizeNodes(text, 0)
		if err != nil {
			return nil, err
		}
		return &token.Value{Children: nodes}, nil
	}
}

func (l *Lexer) tokenizeDeclaration(text string) (token.Node, error) {
	colon := topLevelColon(text)
	if colon < 0 {
		return nil, token.NewSyntaxError(len(text), "expected ':' in declaration")
	}
	property := strings.TrimSpace(text[:colon])
	if property == "" {
		return nil, token.NewSyntaxError(0, "missing property name")
	}
	value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text[colon+1:]), ";"))
	nodes, err := tokenizeNodes(value, colon+1)
	if err != nil {
		return nil, err
	}
	return &token.Declaration{
		Property: strings.ToLower(property),
		Value:    &token.Value{Children: nodes},
	}, nil
}

// topLevelColon finds the first ':' outside any function or string
func topLevelColon(text string) int {
	lx := css.NewLexer(parse.NewInputString(text))
	offset, depth := 0, 0
	for {
		tt, data := lx.Next()
		switch tt {
		case css.ErrorToken:
			return -1
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.ColonToken:
			if depth == 0 {
				return offset
			}
		}
		offset += len(data)
	}
}

func tokenizeNodes(text string, base int) ([]token.Node, error) {
	lx := css.NewLexer(parse.NewInputString(text))
	stack := []*frame{{}}
	offset := base

	appendNode := func(n token.Node) {
		top := stack[len(stack)-1]
		if _, ws := n.(*token.WhiteSpace); ws && len(top.children) > 0 && token.IsWhiteSpace(top.children[len(top.children)-1]) {
			return
		}
		top.children = append(top.children, n)
	}

	for {
		tt, data := lx.Next()
		if tt == css.ErrorToken {
			if err := lx.Err(); err != nil && err != io.EOF {
				return nil, token.NewSyntaxError(offset, err.Error())
			}
			break
		}
		raw := string(data)

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			appendNode(&token.WhiteSpace{})
		case css.IdentToken:
			appendNode(&token.Ident{Name: raw})
		case css.NumberToken:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, token.NewSyntaxError(offset, "invalid number "+raw)
			}
			appendNode(&token.Number{Value: v})
		case css.PercentageToken:
			v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
			if err != nil {
				return nil, token.NewSyntaxError(offset, "invalid percentage "+raw)
			}
			appendNode(&token.Percentage{Value: v})
		case css.DimensionToken:
			num, unit := splitDimension(raw)
			v, err := strconv.ParseFloat(num, 64)
			if err != nil || unit == "" {
				return nil, token.NewSyntaxError(offset, "invalid dimension "+raw)
			}
			appendNode(&token.Dimension{Value: v, Unit: unit})
		case css.HashToken:
			appendNode(&token.Hash{Value: strings.TrimPrefix(raw, "#")})
		case css.StringToken:
			appendNode(&token.String{Value: unquote(raw)})
		case css.CommaToken:
			appendNode(&token.Operator{Value: ","})
		case css.DelimToken:
			switch raw {
			case "/", "+", "-", "*":
				appendNode(&token.Operator{Value: raw})
			default:
				return nil, token.NewUnsupportedTokenError(offset, raw)
			}
		case css.FunctionToken:
			fn := &token.Function{Name: strings.TrimSuffix(raw, "(")}
			stack = append(stack, &frame{fn: fn})
		case css.RightParenthesisToken:
			if len(stack) == 1 {
				return nil, token.NewSyntaxError(offset, "unbalanced ')'")
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.fn.Children = top.children
			if top.fn.Children == nil {
				top.fn.Children = []token.Node{}
			}
			appendNode(top.fn)
		default:
			return nil, token.NewUnsupportedTokenError(offset, raw)
		}
		offset += len(data)
	}

	if len(stack) != 1 {
		return nil, token.NewSyntaxError(offset, "unclosed function "+stack[len(stack)-1].fn.Name+"()")
	}
	children := stack[0].children
	if children == nil {
		children = []token.Node{}
	}
	return children, nil
}

// splitDimension separates the numeric prefix of a dimension token from its unit
func splitDimension(raw string) (string, string) {
	i := 0
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	for i < len(raw) && (isDigit(raw[i]) || raw[i] == '.') {
		i++
	}
	if i+1 < len(raw) && (raw[i] == 'e' || raw[i] == 'E') {
		j := i + 1
		if raw[j] == '+' || raw[j] == '-' {
			j++
		}
		if j < len(raw) && isDigit(raw[j]) {
			for j < len(raw) && isDigit(raw[j]) {
				j++
			}
			i = j
		}
	}
	return raw[:i], raw[i:]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// unquote strips the surrounding quotes of a string token and resolves
// backslash escapes of single characters
func unquote(raw string) string {
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var b strings.Builder
	escaped := false
	for _, r := range raw {
		if escaped {
			if r != '\n' {
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
