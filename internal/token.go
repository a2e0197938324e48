package internal

import "fmt"

// TokenType Holds a token
type TokenType int

const (
	// End of line marker, "\n"
	EOL TokenType = iota

	// Operators.
	// +, -, *, /
	PLUS
	MINUS
	STAR
	SLASH

	// Line comment, "//"
	COMMENT

	// Keywords.
	// set, const, =
	SET
	CONST
	EQUAL

	// Literals.
	// int, *variable*
	INT
	IDENTIFIER
)

var tokenNames = map[TokenType]string{
	EOL:        "EOL",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	COMMENT:    "COMMENT",
	SET:        "SET",
	CONST:      "CONST",
	EQUAL:      "EQUAL",
	INT:        "INT",
	IDENTIFIER: "IDENTIFIER",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Position locates a token inside the source. Line is 1-based, Column is the
// index of the fragment inside its line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("Line: %d, Char: %d", p.Line, p.Column)
}

// Token is a single lexical unit. Int is only meaningful for INT tokens and
// Lexeme holds the variable name for IDENTIFIER tokens.
type Token struct {
	Type   TokenType
	Lexeme string
	Int    int32
	Pos    Position
}

func (t Token) String() string {
	if t.Type == EOL {
		return fmt.Sprintf("end of line pos: %s", t.Pos)
	}
	return fmt.Sprintf("%s pos: %s", t.Lexeme, t.Pos)
}

func (t Token) isOperator() bool {
	switch t.Type {
	case PLUS, MINUS, STAR, SLASH:
		return true
	}
	return false
}

func (t Token) isDeclaration() bool {
	return t.Type == SET || t.Type == CONST
}
