package internal

import (
	"strconv"
)

type lexer struct {
	env *Env

	line    int
	current int

	fragments []string
	tokens    []Token
}

var keywords = map[string]TokenType{
	"+":     PLUS,
	"-":     MINUS,
	"/":     SLASH,
	"*":     STAR,
	"\n":    EOL,
	"//":    COMMENT,
	"set":   SET,
	"const": CONST,
	"=":     EQUAL,
}

func newLexer(env *Env) *lexer {
	return &lexer{env: env}
}

// scan converts the fragments of a line into tokens. Fragments after a
// comment marker are left untokenized and returned joined as the comment.
func (l *lexer) scan(fragments []string, line int) (Line, error) {
	l.line = line
	l.fragments = fragments
	l.tokens = make([]Token, 0, len(fragments))

	out := Line{Number: line}
	for l.current = 0; l.current < len(fragments); l.current++ {
		if err := l.scanToken(); err != nil {
			return out, err
		}
		if l.last().Type == COMMENT {
			out.Comment = joinFragments(fragments[l.current+1:])
			break
		}
	}

	out.Fragments = fragments[:len(l.tokens)]
	out.Tokens = l.tokens
	return out, nil
}

func (l *lexer) scanToken() error {
	fragment := l.fragments[l.current]

	if tokenType, ok := keywords[fragment]; ok {
		l.emit(tokenType, 0)
		return nil
	}

	if n, err := strconv.ParseInt(fragment, 10, 32); err == nil {
		l.emit(INT, int32(n))
		return nil
	}

	// A declaration introduces the name, so it cannot be bound yet
	if l.afterDeclaration() || l.env.Exists(fragment) {
		l.emit(IDENTIFIER, 0)
		return nil
	}

	return &LineError{
		Err:    ErrInvalidToken,
		Line:   l.line,
		Pos:    l.current,
		Lexeme: fragment,
	}
}

func (l *lexer) afterDeclaration() bool {
	if len(l.tokens) == 0 {
		return false
	}
	return l.last().isDeclaration()
}

func (l *lexer) last() Token {
	return l.tokens[len(l.tokens)-1]
}

func (l *lexer) emit(token TokenType, literal int32) {
	l.tokens = append(l.tokens, Token{
		Type:   token,
		Lexeme: l.fragments[l.current],
		Int:    literal,
		Pos:    Position{Line: l.line, Column: l.current},
	})
}

func joinFragments(fragments []string) string {
	out := ""
	for i, f := range fragments {
		if i != 0 {
			out += " "
		}
		out += f
	}
	return out
}
