package glkit

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit/driver"
)

// Attribute describes one field of a vertex type: the GLSL attribute
// name it feeds and its format.
//
// Only 32-bit formats are supported: Float32 through Float32x4,
// Sint32 through Sint32x4 and Uint32 through Uint32x4.
type Attribute struct {
	Name   string
	Format gputypes.VertexFormat
}

// Vertex is implemented by vertex types. Attributes lists the fields in
// declaration order; the sum of their sizes must equal the size of the
// type, so the struct must hold only the listed fields.
//
// Example:
//
//	type ColorVertex struct {
//	    Position [2]float32
//	    Color    [3]float32
//	}
//
//	func (ColorVertex) Attributes() []glkit.Attribute {
//	    return []glkit.Attribute{
//	        {Name: "position", Format: gputypes.VertexFormatFloat32x2},
//	        {Name: "color", Format: gputypes.VertexFormatFloat32x3},
//	    }
//	}
type Vertex interface {
	Attributes() []Attribute
}

// attribLayout is one attribute as uploaded: component count, GL type
// and byte offset inside the vertex. slot is filled in by a shader.
type attribLayout struct {
	name       string
	slot       uint32
	components int
	ty         driver.Enum
	integer    bool
	offset     int
}

type vertexLayout struct {
	stride  int
	attribs []attribLayout
}

// formatInfo maps a vertex format to its GL component count and type.
func formatInfo(f gputypes.VertexFormat) (components int, ty driver.Enum, integer bool, ok bool) {
	switch f {
	case gputypes.VertexFormatFloat32:
		return 1, driver.FLOAT, false, true
	case gputypes.VertexFormatFloat32x2:
		return 2, driver.FLOAT, false, true
	case gputypes.VertexFormatFloat32x3:
		return 3, driver.FLOAT, false, true
	case gputypes.VertexFormatFloat32x4:
		return 4, driver.FLOAT, false, true
	case gputypes.VertexFormatSint32:
		return 1, driver.INT, true, true
	case gputypes.VertexFormatSint32x2:
		return 2, driver.INT, true, true
	case gputypes.VertexFormatSint32x3:
		return 3, driver.INT, true, true
	case gputypes.VertexFormatSint32x4:
		return 4, driver.INT, true, true
	case gputypes.VertexFormatUint32:
		return 1, driver.UNSIGNED_INT, true, true
	case gputypes.VertexFormatUint32x2:
		return 2, driver.UNSIGNED_INT, true, true
	case gputypes.VertexFormatUint32x3:
		return 3, driver.UNSIGNED_INT, true, true
	case gputypes.VertexFormatUint32x4:
		return 4, driver.UNSIGNED_INT, true, true
	}
	return 0, 0, false, false
}

// layoutOf computes the layout of T from its Attributes.
func layoutOf[T Vertex]() (vertexLayout, error) {
	var zero T
	var l vertexLayout
	for _, a := range zero.Attributes() {
		n, ty, integer, ok := formatInfo(a.Format)
		if !ok {
			return vertexLayout{}, fmt.Errorf("%w: attribute %q has format %s", ErrUnsupportedFormat, a.Name, a.Format)
		}
		l.attribs = append(l.attribs, attribLayout{
			name:       a.Name,
			components: n,
			ty:         ty,
			integer:    integer,
			offset:     l.stride,
		})
		l.stride += 4 * n
	}
	if size := int(unsafe.Sizeof(zero)); size != l.stride {
		return vertexLayout{}, fmt.Errorf("%w: %T is %d bytes, attributes describe %d", ErrLayoutSize, zero, size, l.stride)
	}
	return l, nil
}

// mustLayout is layoutOf that raises a contract violation on error.
func mustLayout[T Vertex](log *slog.Logger, op string) vertexLayout {
	l, err := layoutOf[T]()
	if err != nil {
		violateErr(log, op, err)
	}
	return l
}
