// Package gcb provides a highly-abstracted way to generate GCode for plotting circles.
package gcb

import (
	"fmt"
	"strings"
)

type (
	// RelativePos is a position relative to the current position
	RelativePos float64
	// AbsolutePos describes position absolute on the drawing.
	// starts form 0,0
	AbsolutePos float64
	// HardwareAbsolutePos describes a coordinates on Hardware.
	// The plotter's work area is offset from its real 0,0 (see MinX, MinY)
	// so this is AbsolutePos+MinX/MinY
	HardwareAbsolutePos float64
)

const DefaultPreamble = `;; BEGIN PREAMBLE
M107 ; Fan off
G90 ; Absolute positioning

G28 X Y ; Home X and Y axes

G0 X80 Y80 F5000.0 ; Move to start position

G91 ; Relative positioning
;; END PREAMBLE

;; BEGIN CIRCLES`

const DefaultPostamble = `;; END CIRCLES

;; BEGIN POSTAMBLE
M84 X Y Z E ; Disable ALL motors
;; END POSTAMBLE`

const (
	// BaseX, BaseY are the coordinates the preamble moves to.
	BaseX, BaseY = 80, 80
	// MinX, MinY, MaxX, MaxY are the bounds of the plotter's work area.
	MinX, MinY = 80, 80
	MaxX, MaxY = 160, 160
	BaseDepth  = 20
)

// GCodeBuilder builds GCode as a list of commands.
// All external API uses AbsolutePos - position absolute to the drawing (starting from 0,0);
// HardwareAbsolutePos is internal.
type GCodeBuilder struct {
	commands            []Command
	depth               RelativePos
	isDrawing           bool
	currentP            BetterPoint[HardwareAbsolutePos]
	preamble, postamble string
}

// NewGCodeBuilder creates new GCodeBuilder with default values.
func NewGCodeBuilder() *GCodeBuilder {
	return &GCodeBuilder{
		currentP:  BetterPoint[HardwareAbsolutePos]{BaseX, BaseY},
		depth:     BaseDepth,
		preamble:  DefaultPreamble,
		postamble: DefaultPostamble,
	}
}

// SetDepth sets how deep the head goes when drawing.
func (b *GCodeBuilder) SetDepth(depth RelativePos) *GCodeBuilder {
	b.depth = depth
	return b
}

// PushCommand appends commands as they are.
func (b *GCodeBuilder) PushCommand(cmds ...Command) *GCodeBuilder {
	b.commands = append(b.commands, cmds...)
	return b
}

// Commands returns a copy of the built commands.
func (b *GCodeBuilder) Commands() []Command {
	return append([]Command(nil), b.commands...)
}

// Comment writes comment to GCode.
func (b *GCodeBuilder) Comment(comment string) *GCodeBuilder {
	return b.PushCommand(Command{LineComment: comment})
}

func (b *GCodeBuilder) Commentf(format string, args ...any) *GCodeBuilder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// Up stops active drawing
func (b *GCodeBuilder) Up() error {
	if !b.isDrawing {
		return fmt.Errorf("%w: up called, but not drawing", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		Code:        G0,
		Args:        []Arg{{"Z", float64(b.depth)}},
		LineComment: "stop drawing",
	})

	b.isDrawing = false

	return nil
}

// Down starts drawing
func (b *GCodeBuilder) Down() error {
	if b.isDrawing {
		return fmt.Errorf("%w: down called, but already drawing", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		Code:        G0,
		Args:        []Arg{{"Z", -float64(b.depth)}},
		LineComment: "start drawing",
	})

	b.isDrawing = true

	return nil
}

// Current returns current position.
func (b *GCodeBuilder) Current() BetterPoint[AbsolutePos] {
	return Redefine[AbsolutePos](b.currentP.Offset(-MinX, -MinY))
}

// Code returns built GCode. Without comments, comment-only lines are dropped
// and line comments are stripped.
func (b *GCodeBuilder) Code(comments bool) string {
	lines := []string{b.preamble}
	for i := range b.commands {
		cmd := &b.commands[i]
		if cmd.Code == "" && !comments {
			continue
		}

		lines = append(lines, cmd.String(comments))
	}

	lines = append(lines, b.postamble)

	return strings.Join(lines, "\n") + "\n"
}

// String returns built GCode with comments.
func (b *GCodeBuilder) String() string {
	return b.Code(true)
}
