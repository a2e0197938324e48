package internal

import (
	"errors"
	"fmt"
	"os"
)

// LineError is a failure attached to a single source line
type LineError struct {
	Err    error
	Line   int
	Pos    int
	Lexeme string
}

func (e *LineError) Error() string {
	if e.Lexeme != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Lexeme)
	}
	return e.Err.Error()
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(err error, line int) *LineError {
	return &LineError{Err: err, Line: line, Pos: -1}
}

func tokenErr(err error, tk Token) *LineError {
	return &LineError{
		Err:    err,
		Line:   tk.Pos.Line,
		Pos:    tk.Pos.Column,
		Lexeme: tk.Lexeme,
	}
}

// interpreterState stores the errors found while running a source
type interpreterState struct {
	errors []*LineError
	logger IPrinter
}

// setError records a failed line and prints it
func (s *interpreterState) setError(err *LineError) {
	s.errors = append(s.errors, err)
	if s.logger != nil {
		s.logger.Fprintf(os.Stderr, "Error on line %d\n\t%s\n", err.Line, err.Error())
	}
}

// Valid returns true if no line failed
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Tokenizer errors
var ErrInvalidToken = errors.New("Invalid token")

// Rule errors
var ErrOperatorNotFound = errors.New("Unable to find operator")
var ErrOperatorPosition = errors.New("Operator in an unexpected position")
var ErrNonNumericOperand = errors.New("Expected a number on both sides of the operator")

// Evaluation errors
var ErrExpectedInteger = errors.New("Expected an int")
var ErrExpectedOperator = errors.New("Expected operator")
var ErrVariableNameNotFound = errors.New("Unable to find name of variable")
var ErrExpectedVariableName = errors.New("Expected variable name")
var ErrExpectedAssignment = errors.New("Expected '=' after variable name")
var ErrVariableAlreadyExists = errors.New("Variable already exists")
var ErrUnclassifiedLine = errors.New("Failed to figure out what the line does")
var ErrDivisionByZero = errors.New("Division by zero")
