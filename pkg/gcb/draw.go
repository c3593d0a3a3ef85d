package gcb

import (
	"fmt"
)

// moveRel moves by p.
// NOTE: moveRel does NOT call Up/Down. It just moves.
func (b *GCodeBuilder) moveRel(p BetterPoint[RelativePos]) error {
	next := b.currentP.Add(Redefine[HardwareAbsolutePos](p))
	if err := validateHwAbs(next); err != nil {
		return err
	}

	b.currentP = next

	b.PushCommand(Command{
		Code: G0,
		Args: []Arg{
			{"X", float64(p.X)},
			{"Y", float64(p.Y)},
		},
		LineComment: fmt.Sprintf("move to %v", b.Current()),
	})

	return nil
}

// Move moves to absolute position given
// NOTE: Move does NOT call Up/Down. It just moves.
func (b *GCodeBuilder) Move(p BetterPoint[AbsolutePos]) error {
	if err := validateAbs(p); err != nil {
		return err
	}

	return b.moveRel(b.absToRel(translate(p)))
}

// DrawCircle draws circle on absolute p with radius r.
// The head starts and ends at the top of the circle.
func (b *GCodeBuilder) DrawCircle(p BetterPoint[AbsolutePos], r float64) error {
	if r < 0 {
		return fmt.Errorf("%w: %f", ErrNegativeRadius, r)
	}

	b.Commentf("BEGIN DrawCircle(%v, %f)", p, r)

	// 1.0: the whole circle has to fit
	for _, corner := range []BetterPoint[AbsolutePos]{
		p.Offset(AbsolutePos(-r), AbsolutePos(-r)),
		p.Offset(AbsolutePos(r), AbsolutePos(r)),
	} {
		if err := validateAbs(corner); err != nil {
			return fmt.Errorf("circle at %v with radius %f: %w", p, r, err)
		}

		if err := validateHwAbs(translate(corner)); err != nil {
			return fmt.Errorf("circle at %v with radius %f: %w", p, r, err)
		}
	}

	// 1.1: go to start position and start drawing
	start := p.Offset(0, AbsolutePos(r))
	if err := b.Move(start); err != nil {
		return fmt.Errorf("cant move to circle start: %w", err)
	}

	if err := b.Down(); err != nil {
		return fmt.Errorf("cant start drawing circle: %w", err)
	}

	// 1.2: do circle
	relP := b.absToRel(translate(p))
	b.PushCommand(Command{
		Code: G2,
		Args: []Arg{
			{"I", float64(relP.X)},
			{"J", float64(relP.Y)},
		},
		LineComment: fmt.Sprintf("circle with center %v and radius %f", p, r),
	})

	// 1.3: stop drawing
	if err := b.Up(); err != nil {
		return fmt.Errorf("cant stop drawing circle: %w", err)
	}

	b.Commentf("END DrawCircle(%v, %f)", p, r)

	return nil
}

func (b *GCodeBuilder) absToRel(p BetterPoint[HardwareAbsolutePos]) BetterPoint[RelativePos] {
	return Redefine[RelativePos](p.Sub(b.currentP))
}

func validateAbs(p BetterPoint[AbsolutePos]) error {
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("%w: absolute position must be positive, got %v", ErrOutOfWorkArea, p)
	}

	return nil
}

func validateHwAbs(p BetterPoint[HardwareAbsolutePos]) error {
	switch {
	case p.X < MinX, p.Y < MinY:
		return fmt.Errorf("%w: %v is below (%d, %d)", ErrOutOfWorkArea, p, MinX, MinY)
	case p.X > MaxX, p.Y > MaxY:
		return fmt.Errorf("%w: %v is above (%d, %d)", ErrOutOfWorkArea, p, MaxX, MaxY)
	}

	return nil
}

// translate converts AbsolutePos to HardwareAbsolutePos by adding MinX/Y
func translate(p BetterPoint[AbsolutePos]) BetterPoint[HardwareAbsolutePos] {
	return Redefine[HardwareAbsolutePos](p.Offset(MinX, MinY))
}
