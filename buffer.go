package glkit

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/glkit/driver"
)

// BufferAccess is the usage hint a buffer is created with.
type BufferAccess uint8

const (
	// Static buffers are written once and drawn many times.
	Static BufferAccess = iota
	// Stream buffers are written once and drawn a few times.
	Stream
	// Dynamic buffers are rewritten often and drawn many times.
	Dynamic
)

// String returns the string representation of BufferAccess.
func (a BufferAccess) String() string {
	switch a {
	case Static:
		return "Static"
	case Stream:
		return "Stream"
	case Dynamic:
		return "Dynamic"
	default:
		return fmt.Sprintf("BufferAccess(%d)", int(a))
	}
}

func (a BufferAccess) usage() driver.Enum {
	switch a {
	case Stream:
		return driver.STREAM_DRAW
	case Dynamic:
		return driver.DYNAMIC_DRAW
	default:
		return driver.STATIC_DRAW
	}
}

// VertexBuffer is a GPU array buffer holding up to Len vertices of type T.
type VertexBuffer[T Vertex] struct {
	dev      *device
	id       driver.Buffer
	length   int
	stride   int
	released bool
}

// NewVertexBuffer allocates storage for length vertices. The contents
// are undefined until written with Data.
func NewVertexBuffer[T Vertex](c *Context, length int, access BufferAccess) *VertexBuffer[T] {
	const op = "NewVertexBuffer"
	l := mustLayout[T](c.dev.log, op)
	if length < 0 {
		violate(c.dev.log, op, ErrOutOfBounds, "negative length %d", length)
	}
	id := c.dev.drv.CreateBuffer()
	if id == 0 {
		violate(c.dev.log, op, ErrCreateFailed, "array buffer")
	}
	size := length * l.stride

	drv := c.dev.drv
	drv.BindBuffer(driver.ARRAY_BUFFER, id)
	drv.BufferInit(driver.ARRAY_BUFFER, size, access.usage())
	drv.BindBuffer(driver.ARRAY_BUFFER, 0)

	c.dev.stats.addBuffer(size)
	c.dev.log.Debug("glkit: vertex buffer created", "id", id, "length", length, "stride", l.stride, "access", access)
	return &VertexBuffer[T]{dev: c.dev, id: id, length: length, stride: l.stride}
}

// Len returns the capacity in vertices.
func (b *VertexBuffer[T]) Len() int { return b.length }

// ID returns the driver handle.
func (b *VertexBuffer[T]) ID() driver.Buffer { return b.id }

// Data writes vertices starting at vertex index offset. Writing past Len
// is a contract violation.
func (b *VertexBuffer[T]) Data(offset int, data []T) {
	const op = "VertexBuffer.Data"
	if b.released {
		violate(b.dev.log, op, ErrResourceDestroyed, "vertex buffer %d", b.id)
	}
	if offset < 0 || offset+len(data) > b.length {
		violate(b.dev.log, op, ErrOutOfBounds, "too much data: %d vertices at %d, capacity %d", len(data), offset, b.length)
	}
	if len(data) == 0 {
		return
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*b.stride)

	drv := b.dev.drv
	drv.BindBuffer(driver.ARRAY_BUFFER, b.id)
	drv.BufferSubData(driver.ARRAY_BUFFER, offset*b.stride, raw)
	drv.BindBuffer(driver.ARRAY_BUFFER, 0)
}

// Destroy deletes the GL buffer. It is safe to call more than once.
func (b *VertexBuffer[T]) Destroy() {
	if b.released {
		return
	}
	b.released = true
	b.dev.drv.DeleteBuffer(b.id)
	b.dev.stats.removeBuffer(b.length * b.stride)
}

// IsReleased reports whether Destroy was called.
func (b *VertexBuffer[T]) IsReleased() bool { return b.released }

// IndexBuffer is a GPU element buffer of 16-bit indices.
type IndexBuffer struct {
	dev      *device
	id       driver.Buffer
	length   int
	released bool
}

const indexSize = 2

// NewIndexBuffer allocates storage for length indices.
func (c *Context) NewIndexBuffer(length int, access BufferAccess) *IndexBuffer {
	const op = "NewIndexBuffer"
	if length < 0 {
		violate(c.dev.log, op, ErrOutOfBounds, "negative length %d", length)
	}
	id := c.dev.drv.CreateBuffer()
	if id == 0 {
		violate(c.dev.log, op, ErrCreateFailed, "element buffer")
	}
	size := length * indexSize

	drv := c.dev.drv
	drv.BindBuffer(driver.ELEMENT_ARRAY_BUFFER, id)
	drv.BufferInit(driver.ELEMENT_ARRAY_BUFFER, size, access.usage())
	drv.BindBuffer(driver.ELEMENT_ARRAY_BUFFER, 0)

	c.dev.stats.addBuffer(size)
	c.dev.log.Debug("glkit: index buffer created", "id", id, "length", length, "access", access)
	return &IndexBuffer{dev: c.dev, id: id, length: length}
}

// Len returns the capacity in indices.
func (b *IndexBuffer) Len() int { return b.length }

// ID returns the driver handle.
func (b *IndexBuffer) ID() driver.Buffer { return b.id }

// Data writes indices starting at index offset. Writing past Len is a
// contract violation.
func (b *IndexBuffer) Data(offset int, data []uint16) {
	const op = "IndexBuffer.Data"
	if b.released {
		violate(b.dev.log, op, ErrResourceDestroyed, "index buffer %d", b.id)
	}
	if offset < 0 || offset+len(data) > b.length {
		violate(b.dev.log, op, ErrOutOfBounds, "too much data: %d indices at %d, capacity %d", len(data), offset, b.length)
	}
	if len(data) == 0 {
		return
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*indexSize)

	drv := b.dev.drv
	drv.BindBuffer(driver.ELEMENT_ARRAY_BUFFER, b.id)
	drv.BufferSubData(driver.ELEMENT_ARRAY_BUFFER, offset*indexSize, raw)
	drv.BindBuffer(driver.ELEMENT_ARRAY_BUFFER, 0)
}

// Destroy deletes the GL buffer. It is safe to call more than once.
func (b *IndexBuffer) Destroy() {
	if b.released {
		return
	}
	b.released = true
	b.dev.drv.DeleteBuffer(b.id)
	b.dev.stats.removeBuffer(b.length * indexSize)
}

// IsReleased reports whether Destroy was called.
func (b *IndexBuffer) IsReleased() bool { return b.released }
