package gcb

import (
	"strconv"
	"strings"
)

// Command is a single GCode line. A Command without Code is a comment line.
type Command struct {
	Code        GCode
	Args        []Arg
	LineComment string
}

type Arg struct {
	Name  string
	Value float64
}

func (c *Command) String(comments bool) string {
	parts := []string{string(c.Code)}
	for _, arg := range c.Args {
		parts = append(parts, arg.Name+strconv.FormatFloat(arg.Value, 'f', 4, 64))
	}

	if c.LineComment != "" && (comments || c.Code == "") {
		parts = append(parts, "; "+c.LineComment)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
