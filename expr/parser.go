package expr

import (
	"fmt"
	"math/big"
)

// Operator precedence levels for parsing expressions.
// Precedence order (lowest to highest): SUM < PRODUCT < PREFIX < POWER
const (
	_ int = iota
	LOWEST
	SUM
	PRODUCT
	PREFIX
	POWER
)

var precedences = map[TokenType]int{
	TokenPlus:  SUM,
	TokenMinus: SUM,
	TokenStar:  PRODUCT,
	TokenSlash: PRODUCT,
	TokenPow:   POWER,
}

// Parser parses tokens from a lexer into an expression tree.
type Parser struct {
	lexer     *Lexer
	curToken  Token
	peekToken Token
	errors    []string
}

// NewParser creates a new parser for the given lexer.
func NewParser(lexer *Lexer) *Parser {
	p := &Parser{lexer: lexer}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses input such as "sqrt(2) + 3**(1/3)" into an expression.
func Parse(input string) (Expr, error) {
	return NewParser(NewLexer(input)).Parse()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

// Errors returns the list of parsing errors encountered.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

// Parse parses the input and returns an expression tree.
// Returns an error if parsing fails or if there is trailing input.
func (p *Parser) Parse() (Expr, error) {
	if p.curToken.Type == TokenEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	e := p.parseExpression(LOWEST)

	if p.peekToken.Type == TokenError {
		p.addLexerError(p.peekToken)
	} else if p.peekToken.Type != TokenEOF {
		p.addError("unexpected trailing token: %s", p.peekToken.Type)
	}

	if len(p.errors) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, p.errors)
	}
	return e, nil
}

func (p *Parser) addLexerError(tok Token) {
	if msg, ok := tok.Value.(string); ok {
		p.addError("lexer error: %s", msg)
	} else {
		p.addError("lexer error at: %s", tok.Literal)
	}
}

func (p *Parser) parseExpression(precedence int) Expr {
	var left Expr

	switch p.curToken.Type {
	case TokenError:
		p.addLexerError(p.curToken)
		return nil
	case TokenMinus:
		p.nextToken()
		operand := p.parseExpression(PREFIX)
		if operand == nil {
			return nil
		}
		left = Neg(operand)
	case TokenPlus:
		p.nextToken()
		left = p.parseExpression(PREFIX)
	case TokenLParen:
		left = p.parseGroupedExpression()
	case TokenNumber:
		left = NewNumber(p.curToken.Value.(*big.Rat))
	case TokenIdent:
		left = p.parseIdentifier()
	default:
		p.addError("unexpected token: %s", p.curToken.Type)
		return nil
	}

	for left != nil && p.peekToken.Type != TokenEOF && precedence < p.peekPrecedence() {
		p.nextToken()
		left = p.parseBinaryExpression(left)
	}

	return left
}

func (p *Parser) parseBinaryExpression(left Expr) Expr {
	operator := p.curToken.Type
	precedence := p.curPrecedence()

	// ** is right-associative.
	if operator == TokenPow {
		precedence--
	}

	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	switch operator {
	case TokenPlus:
		return NewAdd(left, right)
	case TokenMinus:
		return Sub(left, right)
	case TokenStar:
		return NewMul(left, right)
	case TokenSlash:
		return Quo(left, right)
	case TokenPow:
		return NewPow(left, right)
	}

	p.addError("unknown operator: %s", operator)
	return nil
}

func (p *Parser) parseGroupedExpression() Expr {
	p.nextToken()
	e := p.parseExpression(LOWEST)
	if e == nil {
		return nil
	}
	if !p.expectPeek(TokenRParen) {
		return nil
	}
	return e
}

func (p *Parser) parseIdentifier() Expr {
	name := p.curToken.Literal

	if p.peekToken.Type == TokenLParen {
		p.nextToken()
		args := p.parseCallArguments()
		if args == nil {
			return nil
		}
		return p.buildCall(name, args)
	}

	switch name {
	case Pi.Name:
		return Pi
	case E.Name:
		return E
	case "I":
		return I
	}
	return NewSymbol(name)
}

func (p *Parser) parseCallArguments() []Expr {
	args := []Expr{}

	if p.peekToken.Type == TokenRParen {
		p.nextToken()
		return args
	}

	p.nextToken()
	for {
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)

		if p.peekToken.Type != TokenComma {
			break
		}
		p.nextToken()
		p.nextToken()
	}

	if !p.expectPeek(TokenRParen) {
		return nil
	}
	return args
}

func (p *Parser) buildCall(name string, args []Expr) Expr {
	arity := map[string]int{
		"sqrt": 1, "cbrt": 1, "root": 2, "RootOf": 2,
		"exp": 1, "log": 1, "sin": 1, "cos": 1,
	}

	want, ok := arity[name]
	if !ok {
		p.addError("unknown function: %s", name)
		return nil
	}
	if len(args) != want {
		p.addError("%s expects %d arguments, got %d", name, want, len(args))
		return nil
	}

	switch name {
	case "sqrt":
		return Sqrt(args[0])
	case "cbrt":
		return NewPow(args[0], Rat(1, 3))
	case "root":
		n, ok := AsNumber(args[1])
		if !ok || !n.IsInt() || n.Sign() <= 0 {
			p.addError("root index must be a positive integer, got %s", args[1])
			return nil
		}
		return NewPow(args[0], &Number{Value: new(big.Rat).Inv(n)})
	case "RootOf":
		return p.buildRootOf(args[0], args[1])
	}

	return NewFunc(name, args...)
}

func (p *Parser) buildRootOf(polyExpr, indexExpr Expr) Expr {
	symbols := FreeSymbols(polyExpr)
	if len(symbols) != 1 {
		p.addError("RootOf expects a polynomial in one variable, got %s", polyExpr)
		return nil
	}

	pl, err := ToPoly(polyExpr, symbols[0])
	if err != nil {
		p.addError("%v", err)
		return nil
	}
	if pl.Degree() < 1 {
		p.addError("RootOf expects a non-constant polynomial, got %s", polyExpr)
		return nil
	}

	idx, ok := AsNumber(indexExpr)
	if !ok || !idx.IsInt() || !idx.Num().IsInt64() {
		p.addError("RootOf index must be an integer, got %s", indexExpr)
		return nil
	}
	index := int(idx.Num().Int64())
	if index < 0 || index >= pl.Degree() {
		p.addError("RootOf index %d out of range for degree %d", index, pl.Degree())
		return nil
	}

	return NewRootOf(pl, index)
}

func (p *Parser) expectPeek(t TokenType) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	if p.peekToken.Type == TokenError {
		p.addLexerError(p.peekToken)
		return false
	}
	p.addError("expected %s, got %s", t, p.peekToken.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}
