package expr

// TokenType represents the type of a token in the expression language.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenNumber

	// Arithmetic operators
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /
	TokenPow   // **, ^

	// Delimiters
	TokenLParen // (
	TokenRParen // )
	TokenComma  // ,

	TokenError // lexer error
)

var tokenNames = map[TokenType]string{
	TokenEOF:    "EOF",
	TokenIdent:  "IDENT",
	TokenNumber: "NUMBER",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenStar:   "*",
	TokenSlash:  "/",
	TokenPow:    "**",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenComma:  ",",
	TokenError:  "ERROR",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token in the expression language.
type Token struct {
	Type    TokenType
	Literal string
	Value   any
}
