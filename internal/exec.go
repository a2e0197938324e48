package internal

import (
	"github.com/sirupsen/logrus"
)

// ResultKind tells which field of a Result is set
type ResultKind int

const (
	// ResultNone is returned for blank and comment lines
	ResultNone ResultKind = iota
	ResultInt
	ResultVariable
)

// Result is the outcome of evaluating a line
type Result struct {
	Kind     ResultKind
	Int      int32
	Variable Variable
}

func (r Result) String() string {
	switch r.Kind {
	case ResultInt:
		return IntValue(r.Int).String()
	case ResultVariable:
		return r.Variable.String()
	}
	return ""
}

type declaration struct {
	name    string
	mutable bool
}

type exec struct {
	env *Env
	log logrus.FieldLogger
}

// evalLine computes the value of a line that already passed checkRules.
// Declared variables are returned, never added to the env.
func (e *exec) evalLine(line Line) (Result, error) {
	tokens := line.Tokens

	var decl *declaration
	if len(tokens) > 0 && tokens[0].isDeclaration() {
		d, err := e.declaration(line)
		if err != nil {
			return Result{}, err
		}
		decl = d
		tokens = tokens[3:]
	}

	body := statementBody(tokens)
	if len(body) < 3 {
		return Result{}, lineErr(ErrUnclassifiedLine, line.Number)
	}

	left, err := e.operand(body[0])
	if err != nil {
		return Result{}, err
	}
	right, err := e.operand(body[2])
	if err != nil {
		return Result{}, err
	}

	operator := body[1]
	apply, ok := getOperator(operator)
	if !ok {
		return Result{}, tokenErr(ErrExpectedOperator, operator)
	}
	// Only a single operation per line
	if len(body) > 3 {
		return Result{}, lineErr(ErrUnclassifiedLine, line.Number)
	}
	value, err := apply(left, right)
	if err != nil {
		return Result{}, tokenErr(err, operator)
	}

	e.log.WithFields(logrus.Fields{
		"line":     line.Number,
		"operator": operator.Lexeme,
		"result":   value,
	}).Debug("evaluated")

	if decl == nil {
		return Result{Kind: ResultInt, Int: value}, nil
	}

	if e.env.Exists(decl.name) {
		return Result{}, tokenErr(ErrVariableAlreadyExists, line.Tokens[1])
	}

	return Result{
		Kind: ResultVariable,
		Variable: Variable{
			Name:    decl.name,
			Value:   IntValue(value),
			Mutable: decl.mutable,
		},
	}, nil
}

func (e *exec) declaration(line Line) (*declaration, error) {
	tokens := line.Tokens
	if len(tokens) < 2 {
		return nil, lineErr(ErrVariableNameNotFound, line.Number)
	}
	name := tokens[1]
	if name.Type != IDENTIFIER {
		return nil, tokenErr(ErrExpectedVariableName, name)
	}
	if len(tokens) < 3 {
		return nil, lineErr(ErrExpectedAssignment, line.Number)
	}
	if tokens[2].Type != EQUAL {
		return nil, tokenErr(ErrExpectedAssignment, tokens[2])
	}
	return &declaration{
		name:    name.Lexeme,
		mutable: tokens[0].Type == SET,
	}, nil
}

func (e *exec) operand(tk Token) (int32, error) {
	switch tk.Type {
	case INT:
		return tk.Int, nil
	case IDENTIFIER:
		if v, ok := e.env.Lookup(tk.Lexeme, IntType); ok {
			n, _ := v.Value.Int()
			return n, nil
		}
	}
	return 0, tokenErr(ErrExpectedInteger, tk)
}
