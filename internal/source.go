package internal

import "strings"

// Line is a single tokenized source line. Tokens and Fragments always have
// the same length; whatever follows a "//" fragment is kept in Comment.
type Line struct {
	Number    int
	Raw       string
	Fragments []string
	Tokens    []Token
	Comment   string
}

func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(strings.TrimSuffix(l, "\r"))
	}
	return lines
}

func splitFragments(line string) []string {
	return strings.Split(line, " ")
}

// skippable lines are blank or start with a comment
func skippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "// ") || line == "//"
}
