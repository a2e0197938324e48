package internal

import (
	"errors"
	"io"
	"io/ioutil"
	"strings"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// LineResult pairs a successful line with its result
type LineResult struct {
	Line   int
	Result Result
}

// Report summarizes a run
type Report struct {
	Lines   int
	Results []LineResult
	Errors  []*LineError
}

// Valid returns true if every line succeeded
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Interpreter runs programs line by line against a single Env
type Interpreter struct {
	env   *Env
	lexer *lexer
	exec  *exec
	log   logrus.FieldLogger

	printer      IPrinter
	printResults bool
	dumpTokens   bool
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for debug output
func WithLogger(log logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.log = log
	}
}

// WithPrinter makes Run print results and errors as lines are processed
func WithPrinter(p IPrinter) Option {
	return func(i *Interpreter) {
		i.printer = p
		i.printResults = true
	}
}

// WithoutResults keeps Run from printing the result of each line
func WithoutResults() Option {
	return func(i *Interpreter) {
		i.printResults = false
	}
}

// WithTokenDump makes Run print the tokens of every line before evaluating it
func WithTokenDump() Option {
	return func(i *Interpreter) {
		i.dumpTokens = true
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	discard := logrus.New()
	discard.SetOutput(ioutil.Discard)

	i := &Interpreter{
		env: NewEnv(),
		log: discard,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.lexer = newLexer(i.env)
	i.exec = &exec{env: i.env, log: i.log}
	return i
}

// Env returns the environment shared by every line of the run
func (i *Interpreter) Env() *Env {
	return i.env
}

// Tokenize splits and tokenizes a single line without evaluating it
func (i *Interpreter) Tokenize(raw string, number int) (Line, error) {
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
	line, err := i.lexer.scan(splitFragments(raw), number)
	line.Raw = raw
	return line, err
}

// EvalLine tokenizes, validates and evaluates one line. Declared variables
// are added to the env only when the whole line succeeded.
func (i *Interpreter) EvalLine(raw string, number int) (Result, error) {
	if skippable(strings.TrimSpace(raw)) {
		return Result{}, nil
	}

	line, err := i.Tokenize(raw, number)
	if err != nil {
		return Result{}, err
	}
	i.log.WithFields(logrus.Fields{
		"line":   number,
		"tokens": len(line.Tokens),
	}).Debug("tokenized")

	if i.dumpTokens && i.printer != nil {
		i.printer.Println(dumpLine(line))
	}

	if err := checkRules(line, i.env); err != nil {
		return Result{}, err
	}

	result, err := i.exec.evalLine(line)
	if err != nil {
		return Result{}, err
	}

	if result.Kind == ResultVariable {
		if err := i.env.Define(result.Variable); err != nil {
			return Result{}, withLine(err, number)
		}
		i.log.WithFields(logrus.Fields{
			"line":     number,
			"variable": result.Variable.Name,
			"mutable":  result.Variable.Mutable,
		}).Debug("bound")
	}

	return result, nil
}

// Run processes every line of source in order. A failing line is recorded
// and the run continues with the next one.
func (i *Interpreter) Run(source string) *Report {
	state := &interpreterState{
		errors: make([]*LineError, 0),
		logger: i.printer,
	}
	report := &Report{}

	for n, raw := range splitLines(source) {
		number := n + 1
		report.Lines++

		result, err := i.EvalLine(raw, number)
		if err != nil {
			state.setError(withLine(err, number))
			continue
		}
		if result.Kind == ResultNone {
			continue
		}

		report.Results = append(report.Results, LineResult{Line: number, Result: result})
		if i.printer != nil && i.printResults {
			i.printer.Println(result.String())
		}
	}

	report.Errors = state.errors
	i.log.WithFields(logrus.Fields{
		"lines":  report.Lines,
		"errors": len(report.Errors),
	}).Info("run finished")
	return report
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	return NewInterpreter(WithPrinter(p)).Run(source).Valid()
}

func withLine(err error, line int) *LineError {
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		return &LineError{Err: err, Line: line, Pos: -1}
	}
	if lineErr.Line == 0 {
		lineErr.Line = line
	}
	return lineErr
}
