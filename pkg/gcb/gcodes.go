package gcb

// GCode represents a gcode (e.g. G0, G2)
type GCode string

// list of gcodes. See https://marlinfw.org/docs/gcode/G000-G001.html
// Only codes emitted as commands are listed; the preamble is plain text.
const (
	// G0 is a move command
	G0 GCode = "G0"
	// G2 is a clockwise arc move; without X/Y it draws a full circle
	G2 GCode = "G2"
)
