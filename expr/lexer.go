package expr

import (
	"math/big"
)

// Lexer tokenizes expression strings into tokens.
type Lexer struct {
	input string
	pos   int
	ch    byte
}

// NewLexer creates a new lexer for the given input string.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF}
	case '+':
		tok = Token{Type: TokenPlus, Literal: "+"}
	case '-':
		tok = Token{Type: TokenMinus, Literal: "-"}
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			tok = Token{Type: TokenPow, Literal: "**"}
		} else {
			tok = Token{Type: TokenStar, Literal: "*"}
		}
	case '^':
		tok = Token{Type: TokenPow, Literal: "^"}
	case '/':
		tok = Token{Type: TokenSlash, Literal: "/"}
	case '(':
		tok = Token{Type: TokenLParen, Literal: "("}
	case ')':
		tok = Token{Type: TokenRParen, Literal: ")"}
	case ',':
		tok = Token{Type: TokenComma, Literal: ","}
	default:
		switch {
		case isLetter(l.ch):
			literal := l.readIdentifier()
			return Token{Type: TokenIdent, Literal: literal, Value: literal}
		case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
			return l.readNumberToken()
		default:
			tok = Token{Type: TokenError, Literal: string(l.ch), Value: "unexpected character: " + string(l.ch)}
		}
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() string {
	start := l.pos - 1
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start : l.pos-1]
}

// readNumberToken reads an integer or decimal literal. Decimals are kept
// exact: "1.25" becomes the rational 5/4.
func (l *Lexer) readNumberToken() Token {
	start := l.pos - 1
	seenDot := false
	for isDigit(l.ch) || (l.ch == '.' && !seenDot) {
		if l.ch == '.' {
			seenDot = true
		}
		l.readChar()
	}
	literal := l.input[start : l.pos-1]

	value, ok := new(big.Rat).SetString(literal)
	if !ok {
		return Token{
			Type:    TokenError,
			Literal: literal,
			Value:   "invalid number: " + literal,
		}
	}
	return Token{
		Type:    TokenNumber,
		Literal: literal,
		Value:   value,
	}
}

// isLetter checks if the byte is an ASCII letter.
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit checks if the byte is an ASCII digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
