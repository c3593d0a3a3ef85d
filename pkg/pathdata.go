package circlex

import (
	"fmt"
	"strconv"
)

// segmentAdder receives compiled path segments. Every segment continues from
// the end point of the previous one.
type segmentAdder interface {
	Start(p [2]float64)
	Line(p [2]float64)
	QuadBezier(c, p [2]float64)
	CubeBezier(c1, c2, p [2]float64)
}

// compilePath walks SVG path data (the full grammar: M L H V C S Q T A Z,
// absolute and relative) and feeds its segments to a. Arcs arrive as cubics.
func compilePath(d string, a segmentAdder) error {
	s := &pathScanner{d: d}

	var (
		cur, start, ctrl [2]float64
		cmd, prev        byte
		args             [7]float64
	)

	for !s.done() {
		pos := s.pos
		if c, ok := s.command(); ok {
			cmd = c
		} else {
			// implicit repetition of the last command
			switch cmd {
			case 0:
				return fmt.Errorf("offset %d: path data must start with a command", pos)
			case 'Z', 'z':
				return fmt.Errorf("offset %d: unexpected %q after closepath", pos, s.d[pos])
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}

		if prev == 0 && cmd != 'M' && cmd != 'm' {
			return fmt.Errorf("offset %d: path data must start with a moveto, got %q", pos, cmd)
		}

		var off [2]float64
		if cmd >= 'a' {
			off = cur
		}

		pt := func(x, y float64) [2]float64 {
			return [2]float64{off[0] + x, off[1] + y}
		}

		switch upper := cmd &^ 0x20; upper {
		case 'M':
			if err := s.numbers(args[:2]); err != nil {
				return err
			}

			cur = pt(args[0], args[1])
			start = cur
			a.Start(cur)
		case 'L':
			if err := s.numbers(args[:2]); err != nil {
				return err
			}

			cur = pt(args[0], args[1])
			a.Line(cur)
		case 'H':
			if err := s.numbers(args[:1]); err != nil {
				return err
			}

			cur = [2]float64{off[0] + args[0], cur[1]}
			a.Line(cur)
		case 'V':
			if err := s.numbers(args[:1]); err != nil {
				return err
			}

			cur = [2]float64{cur[0], off[1] + args[0]}
			a.Line(cur)
		case 'C', 'S':
			var c1 [2]float64
			if upper == 'C' {
				if err := s.numbers(args[:2]); err != nil {
					return err
				}

				c1 = pt(args[0], args[1])
			} else {
				c1 = reflect(ctrl, cur, prev, 'C', 'S')
			}

			if err := s.numbers(args[2:6]); err != nil {
				return err
			}

			ctrl = pt(args[2], args[3])
			cur = pt(args[4], args[5])
			a.CubeBezier(c1, ctrl, cur)
		case 'Q', 'T':
			if upper == 'Q' {
				if err := s.numbers(args[:2]); err != nil {
					return err
				}

				ctrl = pt(args[0], args[1])
			} else {
				ctrl = reflect(ctrl, cur, prev, 'Q', 'T')
			}

			if err := s.numbers(args[2:4]); err != nil {
				return err
			}

			cur = pt(args[2], args[3])
			a.QuadBezier(ctrl, cur)
		case 'A':
			if err := s.numbers(args[:3]); err != nil {
				return err
			}

			large, err := s.flag()
			if err != nil {
				return err
			}

			sweep, err := s.flag()
			if err != nil {
				return err
			}

			if err := s.numbers(args[3:5]); err != nil {
				return err
			}

			end := pt(args[3], args[4])
			arcTo(a, cur, args[0], args[1], args[2], large, sweep, end)
			cur = end
		case 'Z':
			cur = start
		default:
			return fmt.Errorf("offset %d: unknown command %q", pos, cmd)
		}

		prev = cmd
	}

	return nil
}

// reflect mirrors the last control point around cur when the previous command
// was one of kinds; otherwise the control point is cur itself.
func reflect(ctrl, cur [2]float64, prev byte, kinds ...byte) [2]float64 {
	for _, k := range kinds {
		if prev&^0x20 == k {
			return [2]float64{2*cur[0] - ctrl[0], 2*cur[1] - ctrl[1]}
		}
	}

	return cur
}

// pathScanner reads the tokens of SVG path data on demand.
type pathScanner struct {
	d   string
	pos int
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.d) {
		switch s.d[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) done() bool {
	s.skipSeparators()
	return s.pos >= len(s.d)
}

func (s *pathScanner) command() (byte, bool) {
	s.skipSeparators()
	if s.pos >= len(s.d) {
		return 0, false
	}

	switch c := s.d[s.pos]; c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		s.pos++
		return c, true
	}

	return 0, false
}

// number reads one number: sign, digits with an optional fraction, optional exponent.
// "0.5.5" is two numbers and "1-2" is two numbers, as in the SVG grammar.
func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()

	start, i := s.pos, s.pos
	if i < len(s.d) && (s.d[i] == '+' || s.d[i] == '-') {
		i++
	}

	digits := 0
	for ; i < len(s.d) && isDigit(s.d[i]); i++ {
		digits++
	}

	if i < len(s.d) && s.d[i] == '.' {
		for i++; i < len(s.d) && isDigit(s.d[i]); i++ {
			digits++
		}
	}

	if digits == 0 {
		if start >= len(s.d) {
			return 0, fmt.Errorf("offset %d: expected number, got end of data", start)
		}

		return 0, fmt.Errorf("offset %d: expected number, got %q", start, s.d[start])
	}

	if i < len(s.d) && (s.d[i] == 'e' || s.d[i] == 'E') {
		j := i + 1
		if j < len(s.d) && (s.d[j] == '+' || s.d[j] == '-') {
			j++
		}

		if j < len(s.d) && isDigit(s.d[j]) {
			for j < len(s.d) && isDigit(s.d[j]) {
				j++
			}

			i = j
		}
	}

	v, err := strconv.ParseFloat(s.d[start:i], 64)
	if err != nil {
		return 0, fmt.Errorf("offset %d: %w", start, err)
	}

	s.pos = i

	return v, nil
}

func (s *pathScanner) numbers(dst []float64) error {
	for i := range dst {
		v, err := s.number()
		if err != nil {
			return err
		}

		dst[i] = v
	}

	return nil
}

// flag reads an arc flag; flags need no separator ("a5 5 0 0110 0").
func (s *pathScanner) flag() (bool, error) {
	s.skipSeparators()
	if s.pos < len(s.d) {
		switch s.d[s.pos] {
		case '0':
			s.pos++
			return false, nil
		case '1':
			s.pos++
			return true, nil
		}
	}

	return false, fmt.Errorf("offset %d: expected arc flag 0 or 1", s.pos)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
