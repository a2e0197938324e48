package internal

// hasDeclarationPrefix reports whether tokens start with
// set|const IDENTIFIER =
func hasDeclarationPrefix(tokens []Token) bool {
	return len(tokens) >= 3 &&
		tokens[0].isDeclaration() &&
		tokens[1].Type == IDENTIFIER &&
		tokens[2].Type == EQUAL
}

// statementBody drops trailing comment and end of line markers
func statementBody(tokens []Token) []Token {
	end := len(tokens)
	for end > 0 && (tokens[end-1].Type == COMMENT || tokens[end-1].Type == EOL) {
		end--
	}
	return tokens[:end]
}

// checkRules accepts exactly one binary operation with a number on both
// sides, optionally behind a declaration prefix.
func checkRules(line Line, env *Env) error {
	tokens := line.Tokens
	if hasDeclarationPrefix(tokens) {
		tokens = tokens[3:]
	}
	tokens = statementBody(tokens)

	operatorPos := findOperator(tokens)
	if operatorPos == -1 {
		return lineErr(ErrOperatorNotFound, line.Number)
	}

	// Nothing on the left to operate on
	if operatorPos == 0 {
		return tokenErr(ErrOperatorPosition, tokens[0])
	}

	if !numberAt(tokens, operatorPos-1, env) || !numberAt(tokens, operatorPos+1, env) {
		return lineErr(ErrNonNumericOperand, line.Number)
	}

	return nil
}

func findOperator(tokens []Token) int {
	for i, tk := range tokens {
		if tk.isOperator() {
			return i
		}
	}
	return -1
}

func numberAt(tokens []Token, pos int, env *Env) bool {
	if pos < 0 || pos >= len(tokens) {
		return false
	}
	switch tk := tokens[pos]; tk.Type {
	case INT:
		return true
	case IDENTIFIER:
		_, ok := env.Lookup(tk.Lexeme, IntType)
		return ok
	}
	return false
}
