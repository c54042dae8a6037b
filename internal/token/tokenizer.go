package token

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates text the tokenizer could not make sense of
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupportedToken indicates a token kind value grammars never accept
	ErrUnsupportedToken = errors.New("unsupported token")
)

// Context selects what the tokenizer expects the text to be
type Context int

const (
	// ContextValue is a bare property value, e.g. `10px solid red`
	ContextValue Context = iota
	// ContextDeclaration is a `property: value` pair
	ContextDeclaration
)

func (c Context) String() string {
	switch c {
	case ContextValue:
		return "value"
	case ContextDeclaration:
		return "declaration"
	}
	return fmt.Sprintf("Context(%d)", int(c))
}

// Tokenizer turns CSS text into a node tree. In ContextValue the returned node
// is a *Value; in ContextDeclaration it is a *Declaration.
type Tokenizer interface {
	Tokenize(text string, ctx Context) (Node, error)
}

// TokenizerFunc adapts a function to the Tokenizer interface
type TokenizerFunc func(text string, ctx Context) (Node, error)

func (f TokenizerFunc) Tokenize(text string, ctx Context) (Node, error) {
	return f(text, ctx)
}

// SyntaxError locates a tokenizer failure within the input text
type SyntaxError struct {
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(offset int, reason string) error {
	return &SyntaxError{Offset: offset, Reason: reason}
}

// UnsupportedTokenError names a token no value grammar accepts
type UnsupportedTokenError struct {
	Offset int
	Token  string
}

func (e *UnsupportedTokenError) Error() string {
	return fmt.Sprintf("unsupported token %q at offset %d", e.Token, e.Offset)
}

func (e *UnsupportedTokenError) Unwrap() error {
	return ErrUnsupportedToken
}

// NewUnsupportedTokenError creates a new unsupported token error
func NewUnsupportedTokenError(offset int, tok string) error {
	return &UnsupportedTokenError{Offset: offset, Token: tok}
}

// TokenizeValue tokenizes text in value context and returns the root's children
func TokenizeValue(tz Tokenizer, text string) ([]Node, error) {
	root, err := tz.Tokenize(text, ContextValue)
	if err != nil {
		return nil, err
	}
	v, ok := root.(*Value)
	if !ok {
		return nil, fmt.Errorf("tokenizer returned %s, expected value", Describe(root))
	}
	return v.Children, nil
}
