package glkit

import (
	"fmt"

	"github.com/gogpu/glkit/driver"
)

// Primitive is the topology a draw assembles vertices into.
type Primitive uint8

const (
	Points Primitive = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
)

// String returns the string representation of Primitive.
func (p Primitive) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

func (p Primitive) mode() driver.Enum {
	switch p {
	case Points:
		return driver.POINTS
	case Lines:
		return driver.LINES
	case LineStrip:
		return driver.LINE_STRIP
	case TriangleStrip:
		return driver.TRIANGLE_STRIP
	default:
		return driver.TRIANGLES
	}
}
