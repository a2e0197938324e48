package internal

// Env holds the variables declared during a run, in declaration order
type Env struct {
	values []Variable
}

func NewEnv() *Env {
	return &Env{values: make([]Variable, 0)}
}

func (e *Env) find(name string) (Variable, bool) {
	for _, v := range e.values {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Exists reports whether name is already bound
func (e *Env) Exists(name string) bool {
	_, ok := e.find(name)
	return ok
}

// Lookup returns the variable bound to name only when its value is of the
// expected type
func (e *Env) Lookup(name string, expected ValueType) (Variable, bool) {
	v, ok := e.find(name)
	if !ok || v.Value.Type() != expected {
		return Variable{}, false
	}
	return v, true
}

// Define appends a new binding. Names are never overwritten.
func (e *Env) Define(v Variable) error {
	if e.Exists(v.Name) {
		return &LineError{Err: ErrVariableAlreadyExists, Pos: -1, Lexeme: v.Name}
	}
	e.values = append(e.values, v)
	return nil
}

// Variables returns a copy of the bindings in declaration order
func (e *Env) Variables() []Variable {
	out := make([]Variable, len(e.values))
	copy(out, e.values)
	return out
}

func (e *Env) Len() int {
	return len(e.values)
}
