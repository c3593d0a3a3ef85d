// Package layout holds named stride layouts for the diagrams circlex knows about.
package layout

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	circlex "github.com/gucio321/circlex/pkg"
)

//go:embed layouts.json
var layouts []byte

// Default is the layout of the diagram circlex was written for.
const Default = "a250001"

var ErrUnknownLayout = errors.New("unknown layout")

// Layout describes how circles are laid out over input lines.
type Layout struct {
	Name        string
	Description string
	// Stride is the number of lines per group.
	Stride int
	// Skip is the number of leading lines of each stride that hold no circle.
	Skip int
}

// DataLines is the number of circles a complete group has.
func (l Layout) DataLines() int {
	return l.Stride - l.Skip
}

func (l Layout) Validate() error {
	if err := circlex.ValidateStride(l.Stride, l.Skip); err != nil {
		return fmt.Errorf("layout %q: %w", l.Name, err)
	}

	return nil
}

func decodeLayouts() ([]Layout, error) {
	var result []Layout
	if err := json.Unmarshal(layouts, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// List returns all known layouts.
func List() ([]Layout, error) {
	return decodeLayouts()
}

// Get looks a layout up by name.
func Get(name string) (*Layout, error) {
	all, err := decodeLayouts()
	if err != nil {
		return nil, err
	}

	for _, l := range all {
		if l.Name == name {
			return &l, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}
