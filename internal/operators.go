package internal

type operatorApply func(left, right int32) (int32, error)

// intOperations use int32 arithmetic as defined by Go: overflow wraps
// around and division truncates toward zero.
var intOperations = map[TokenType]operatorApply{
	PLUS: func(left, right int32) (int32, error) {
		return left + right, nil
	},
	MINUS: func(left, right int32) (int32, error) {
		return left - right, nil
	},
	STAR: func(left, right int32) (int32, error) {
		return left * right, nil
	},
	SLASH: func(left, right int32) (int32, error) {
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		// MinInt32 / -1 wraps to MinInt32
		return left / right, nil
	},
}

func getOperator(tk Token) (operatorApply, bool) {
	apply, ok := intOperations[tk.Type]
	return apply, ok
}
