package internal

import (
	"fmt"
	"strings"
)

// dumpLine renders the tokens of a line, e.g.
//
//	1: [set pos: Line: 1, Char: 0, x pos: Line: 1, Char: 1, ...]
func dumpLine(line Line) string {
	out := make([]string, len(line.Tokens))
	for i, tk := range line.Tokens {
		out[i] = tk.String()
	}
	dump := fmt.Sprintf("%d: [%s]", line.Number, strings.Join(out, ", "))
	if line.Comment != "" {
		dump += " " + line.Comment
	}
	return dump
}

// DumpEnv renders every binding of env in declaration order, one per line
func DumpEnv(env *Env) string {
	out := ""
	for _, v := range env.Variables() {
		out += v.String() + "\n"
	}
	return out
}
