package internal

import (
	"errors"
	"fmt"
	"io"
	"math"
	"testing"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	t.printed += fmt.Sprintf(format, a...)
	return 0, nil
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return t.Println(a...)
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

func checkExpression(t *testing.T, exp string, result string) {
	tp := &testPrinter{}
	RunSourceWithPrinter(exp, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s",
			exp,
			result,
			tp.printed,
		)
	}
}

func checkErrorMsg(t *testing.T, source string, errorMsg string, line int) {
	result := fmt.Sprintf("Error on line %d\n\t%s\n", line, errorMsg)

	tp := &testPrinter{}
	RunSourceWithPrinter(source, tp)
	if tp.printed != result {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s----\nFound:\n----\n%s----",
			source,
			result,
			tp.printed,
		)
	}
}

func checkStatements(t *testing.T, code string, result string) {
	tp := &testPrinter{}
	RunSourceWithPrinter(code, tp)
	if tp.printed != result {
		t.Errorf(
			"Error on: \n%s\n\tOutput should be equal to\n%s\ninstead of\n%s",
			code,
			result,
			tp.printed,
		)
	}
}

// evalSource tokenizes, checks and evaluates raw against env without
// binding the result
func evalSource(t *testing.T, env *Env, raw string) (Result, error) {
	t.Helper()
	line, err := newLexer(env).scan(splitFragments(raw), 1)
	if err != nil {
		t.Fatalf("unexpected tokenize error for %q: %v", raw, err)
	}
	e := &exec{env: env, log: NewInterpreter().log}
	return e.evalLine(line)
}

func TestExpressions(t *testing.T) {

	// Arithmethic
	{
		checkExpression(t, "1 + 1", "2")
		checkExpression(t, "5 - 3", "2")
		checkExpression(t, "2 * 3", "6")
		checkExpression(t, "8 / 2", "4")

		// Truncating division
		checkExpression(t, "7 / 2", "3")
		checkExpression(t, "-7 / 2", "-3")

		// Negative literals
		checkExpression(t, "-5 + -5", "-10")
		checkExpression(t, "+5 * 2", "10")
	}

	// Overflow wraps around
	{
		checkExpression(t, "2147483647 + 1", "-2147483648")
		checkExpression(t, "-2147483648 - 1", "2147483647")
		checkExpression(t, "65536 * 65536", "0")
		checkExpression(t, "-2147483648 / -1", "-2147483648")
	}

	// Declarations
	{
		checkExpression(t, "set x = 8 + 2", "set x = 10")
		checkExpression(t, "const x = 8 + 2", "const x = 10")
		checkExpression(t, "set x = 1 + 1 // two", "set x = 2")
	}
}

func TestArithmeticMatchesInt32(t *testing.T) {
	values := []int32{0, 1, -1, 2, 7, -13, 1000, 46341, math.MaxInt32, math.MinInt32}
	ops := map[string]func(a, b int32) int32{
		"+": func(a, b int32) int32 { return a + b },
		"-": func(a, b int32) int32 { return a - b },
		"*": func(a, b int32) int32 { return a * b },
	}

	for symbol, op := range ops {
		for _, a := range values {
			for _, b := range values {
				source := fmt.Sprintf("%d %s %d", a, symbol, b)
				result, err := NewInterpreter().EvalLine(source, 1)
				if err != nil {
					t.Errorf("%s: unexpected error %v", source, err)
					continue
				}
				if result.Kind != ResultInt || result.Int != op(a, b) {
					t.Errorf("%s: expected %d, got %v", source, op(a, b), result)
				}
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, source := range []string{"1 / 0", "0 / 0", "-2147483648 / 0"} {
		_, err := NewInterpreter().EvalLine(source, 1)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%s: expected division by zero, got %v", source, err)
		}
	}

	checkErrorMsg(t, "1 / 0", "Division by zero: /", 1)
}

func TestVariables(t *testing.T) {
	checkStatements(t, "set x = 8 + 2\nset y = x + 5", "set x = 10\nset y = 15\n")
	checkStatements(t, "const a = 2 * 3\na * a", "const a = 6\n36\n")
	checkStatements(t, "set x = 8 + 2\nx / x", "set x = 10\n1\n")

	checkErrorMsg(t, "1 + y", "Invalid token: y", 1)
	checkErrorMsg(t, "set x = y + 1", "Invalid token: y", 1)
}

func TestEvalDeclaration(t *testing.T) {
	env := NewEnv()

	result, err := evalSource(t, env, "set x = 8 + 2")
	if err != nil {
		t.Fatal(err)
	}
	expected := Variable{Name: "x", Value: IntValue(10), Mutable: true}
	if result.Kind != ResultVariable || result.Variable != expected {
		t.Errorf("expected %v, got %v", expected, result)
	}
	if env.Len() != 0 {
		t.Errorf("evaluation should not bind variables, env has %d", env.Len())
	}

	result, err = evalSource(t, env, "const z = 9 - 10")
	if err != nil {
		t.Fatal(err)
	}
	expected = Variable{Name: "z", Value: IntValue(-1), Mutable: false}
	if result.Variable != expected {
		t.Errorf("expected %v, got %v", expected, result.Variable)
	}
}

func TestEvalErrors(t *testing.T) {
	env := NewEnv()
	env.Define(Variable{Name: "x", Value: IntValue(1), Mutable: true})
	env.Define(Variable{Name: "s", Value: StringValue("hi")})

	tests := []struct {
		source string
		err    error
		lexeme string
	}{
		{"set x = 1 + 1", ErrVariableAlreadyExists, "x"},
		{"const x = 2 * 2", ErrVariableAlreadyExists, "x"},
		{"set = 1 + 2", ErrExpectedVariableName, "="},
		{"set y 1 + 2", ErrExpectedAssignment, "1"},
		{"s + 1", ErrExpectedInteger, "s"},
		{"1 - s", ErrExpectedInteger, "s"},
		{"5 1 + 2", ErrExpectedInteger, "+"},
		{"5 1 2 + 3", ErrExpectedOperator, "1"},
		{"1 + 2 3", ErrUnclassifiedLine, ""},
		{"1 +", ErrUnclassifiedLine, ""},
		{"x / 0", ErrDivisionByZero, "/"},
	}

	for _, test := range tests {
		_, err := evalSource(t, env, test.source)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, got %v", test.source, test.err, err)
			continue
		}
		var lineErr *LineError
		if !errors.As(err, &lineErr) {
			t.Errorf("%s: expected a *LineError, got %T", test.source, err)
			continue
		}
		if lineErr.Lexeme != test.lexeme {
			t.Errorf("%s: expected lexeme %q, got %q", test.source, test.lexeme, lineErr.Lexeme)
		}
		if lineErr.Line != 1 {
			t.Errorf("%s: expected line 1, got %d", test.source, lineErr.Line)
		}
	}

	if env.Len() != 2 {
		t.Errorf("failed evaluations changed the env: %v", env.Variables())
	}
}

func TestEvalMissingVariableName(t *testing.T) {
	line := Line{
		Number: 3,
		Tokens: []Token{{Type: SET, Lexeme: "set", Pos: Position{Line: 3}}},
	}
	e := &exec{env: NewEnv(), log: NewInterpreter().log}
	_, err := e.evalLine(line)
	if !errors.Is(err, ErrVariableNameNotFound) {
		t.Errorf("expected %v, got %v", ErrVariableNameNotFound, err)
	}
}
