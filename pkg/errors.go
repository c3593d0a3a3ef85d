package circlex

import "errors"

var (
	ErrNoCircleAttributes = errors.New("line has no cx/cy/r attributes")
	ErrInvalidNumber      = errors.New("attribute value is not a number")
	ErrNoPathData         = errors.New("path element has no quoted attribute value")
	ErrPathGeometry       = errors.New("cannot parse path data")
	ErrEmptyPath          = errors.New("path data has no points")
	ErrInvalidStride      = errors.New("invalid stride layout")
)
