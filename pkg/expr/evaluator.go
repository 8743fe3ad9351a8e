// Package expr provides the arithmetic evaluator numeric controls use to
// accept expressions typed straight into an input ("12*4.5", "(3+2)/4").
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Evaluator turns raw input text into a value before numeric coercion.
// Implementations must return the input unchanged when it is not an
// expression they understand; a non-nil error is reserved for genuine
// evaluator failures and propagates to the caller untouched.
type Evaluator interface {
	Evaluate(raw string) (any, error)
}

// Arithmetic is the default Evaluator. It handles plain numbers and the four
// basic operators with parentheses and unary minus. Anything else, including
// malformed arithmetic, is passed through unchanged so the caller's numeric
// coercion decides the outcome.
type Arithmetic struct{}

// New returns the default arithmetic evaluator.
func New() *Arithmetic { return &Arithmetic{} }

// Evaluate implements Evaluator.
func (e *Arithmetic) Evaluate(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !expressionLike(trimmed) {
		return raw, nil
	}

	tokens, err := tokenize(trimmed)
	if err != nil {
		return raw, nil
	}

	stream := &tokenStream{tokens: tokens}
	value, err := parseSum(stream)
	if err != nil || stream.pos < len(stream.tokens) {
		return raw, nil
	}
	return value, nil
}

// expressionLike reports whether the input contains only characters an
// arithmetic expression may use. Group separators are excluded on purpose:
// "1,200" is formatted display text, not arithmetic.
func expressionLike(input string) bool {
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == '*' || r == '/':
		case r == '(' || r == ')' || r == '.' || r == ' ':
		default:
			return false
		}
	}
	return true
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
)

type token struct {
	kind  tokenKind
	value float64
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		ch := input[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case ch == '+':
			tokens = append(tokens, token{kind: tokenPlus})
			i++
		case ch == '-':
			tokens = append(tokens, token{kind: tokenMinus})
			i++
		case ch == '*':
			tokens = append(tokens, token{kind: tokenStar})
			i++
		case ch == '/':
			tokens = append(tokens, token{kind: tokenSlash})
			i++
		case ch == '(':
			tokens = append(tokens, token{kind: tokenLParen})
			i++
		case ch == ')':
			tokens = append(tokens, token{kind: tokenRParen})
			i++
		case (ch >= '0' && ch <= '9') || ch == '.':
			start := i
			for i < len(input) && ((input[i] >= '0' && input[i] <= '9') || input[i] == '.') {
				i++
			}
			value, err := strconv.ParseFloat(input[start:i], 64)
			if err != nil {
				return nil, fmt.Errorf("expr: invalid number %q", input[start:i])
			}
			tokens = append(tokens, token{kind: tokenNumber, value: value})
		default:
			return nil, fmt.Errorf("expr: unexpected character %q", ch)
		}
	}
	return tokens, nil
}

type tokenStream struct {
	tokens []token
	pos    int
}

func (s *tokenStream) match(kind tokenKind) bool {
	if s.pos >= len(s.tokens) || s.tokens[s.pos].kind != kind {
		return false
	}
	s.pos++
	return true
}

func (s *tokenStream) peek() (token, bool) {
	if s.pos >= len(s.tokens) {
		return token{}, false
	}
	return s.tokens[s.pos], true
}

func parseSum(stream *tokenStream) (float64, error) {
	left, err := parseProduct(stream)
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case stream.match(tokenPlus):
			right, err := parseProduct(stream)
			if err != nil {
				return 0, err
			}
			left += right
		case stream.match(tokenMinus):
			right, err := parseProduct(stream)
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func parseProduct(stream *tokenStream) (float64, error) {
	left, err := parseUnary(stream)
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case stream.match(tokenStar):
			right, err := parseUnary(stream)
			if err != nil {
				return 0, err
			}
			left *= right
		case stream.match(tokenSlash):
			right, err := parseUnary(stream)
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, errors.New("expr: division by zero")
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func parseUnary(stream *tokenStream) (float64, error) {
	if stream.match(tokenMinus) {
		inner, err := parseUnary(stream)
		if err != nil {
			return 0, err
		}
		return -inner, nil
	}
	if stream.match(tokenPlus) {
		return parseUnary(stream)
	}
	return parsePrimary(stream)
}

func parsePrimary(stream *tokenStream) (float64, error) {
	if stream.match(tokenLParen) {
		inner, err := parseSum(stream)
		if err != nil {
			return 0, err
		}
		if !stream.match(tokenRParen) {
			return 0, errors.New("expr: missing closing ')'")
		}
		return inner, nil
	}

	tok, ok := stream.peek()
	if !ok {
		return 0, errors.New("expr: empty expression")
	}
	if tok.kind != tokenNumber {
		return 0, errors.New("expr: expected number")
	}
	stream.pos++
	return tok.value, nil
}
