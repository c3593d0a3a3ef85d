package circlex

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// circleAttributes matches the first cx, cy and r attributes of a line, in that order.
var circleAttributes = regexp.MustCompile(`cx="(.*?)".*?cy="(.*?)".*?r="(.*?)"`)

// ParseCircleAttributes extracts a Circle from the cx, cy and r attributes found in s.
func ParseCircleAttributes(s string) (Circle, error) {
	m := circleAttributes.FindStringSubmatch(s)
	if m == nil {
		return Circle{}, ErrNoCircleAttributes
	}

	var values [3]float64
	for i, raw := range m[1:] {
		v, err := parseNumber(raw)
		if err != nil {
			return Circle{}, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
		}

		values[i] = v
	}

	return Circ(values[0], values[1], values[2]), nil
}

// parseNumber reads a decimal number the way the diagrams' original tooling
// did: surrounding space is ignored, digits may be grouped with single
// underscores, hex floats are refused and overflow gives an infinity.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xXpP") {
		return 0, strconv.ErrSyntax
	}

	if strings.Contains(s, "_") {
		for i := 0; i < len(s); i++ {
			if s[i] == '_' && (i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1])) {
				return 0, strconv.ErrSyntax
			}
		}

		s = strings.ReplaceAll(s, "_", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}

	return v, err
}

// pathData returns the first double-quoted value of a path element line.
func pathData(line string) (string, error) {
	parts := strings.SplitN(line, `"`, 3)
	if len(parts) < 2 {
		return "", ErrNoPathData
	}

	return parts[1], nil
}
