package glkit

import (
	"github.com/gogpu/glkit/driver"
)

// PipelineInfo selects the fixed-function state of a pipeline.
type PipelineInfo struct {
	DepthTest  bool
	AlphaBlend bool
	FaceCull   bool
}

// Pipeline is a scoped use of a RenderPass with one bound Shader. Vertex
// buffers drawn through it must have the shader's vertex type.
//
// A pipeline owns a round-robin allocator over MaxTextureUnits texture
// units. Ending the pipeline unbinds the last bound texture and the
// program.
type Pipeline[T Vertex] struct {
	pass        *RenderPass
	ctx         *Context
	shader      *Shader[T]
	units       unitAllocator
	textureUsed bool
	ended       bool
}

// BeginPipeline binds shader and applies info, touching only the
// capabilities whose cached state differs.
func BeginPipeline[T Vertex](pass *RenderPass, shader *Shader[T], info PipelineInfo) *Pipeline[T] {
	const op = "BeginPipeline"
	pass.checkRecording(op)
	c := pass.ctx
	if pass.pipeline != nil {
		violate(c.dev.log, op, ErrPipelineActive, "")
	}
	if shader.released {
		violate(c.dev.log, op, ErrResourceDestroyed, "shader %d", shader.id)
	}

	c.setCapability(driver.DEPTH_TEST, &c.flags.depthTest, info.DepthTest)
	c.setCapability(driver.BLEND, &c.flags.alphaBlend, info.AlphaBlend)
	c.setCapability(driver.CULL_FACE, &c.flags.faceCull, info.FaceCull)
	c.dev.drv.UseProgram(shader.program)

	p := &Pipeline[T]{pass: pass, ctx: c, shader: shader}
	pass.pipeline = p
	return p
}

// WithPipeline runs fn inside a pipeline and ends the pipeline when fn
// returns or panics.
func WithPipeline[T Vertex](pass *RenderPass, shader *Shader[T], info PipelineInfo, fn func(*Pipeline[T])) {
	p := BeginPipeline(pass, shader, info)
	defer p.End()
	fn(p)
}

// Shader returns the bound shader.
func (p *Pipeline[T]) Shader() *Shader[T] { return p.shader }

// Pass returns the render pass the pipeline was opened on.
func (p *Pipeline[T]) Pass() *RenderPass { return p.pass }

// IsEnded reports whether End was called.
func (p *Pipeline[T]) IsEnded() bool { return p.ended }

func (p *Pipeline[T]) checkActive(op string) {
	if p.ended {
		violate(p.ctx.dev.log, op, ErrPipelineEnded, "")
	}
}

// BindTexture binds tex to the next free texture unit and points the
// sampler uniform at it. A persistent binding keeps the unit locked
// until the pipeline ends.
func (p *Pipeline[T]) BindTexture(key UniformKey[*Texture], tex *Texture, persistent bool) {
	const op = "Pipeline.BindTexture"
	p.checkActive(op)
	if p.ctx.dev.debug && key.shader != p.shader.id {
		violate(p.ctx.dev.log, op, ErrForeignUniformKey, "key of shader %d used with shader %d", key.shader, p.shader.id)
	}
	p.bindTexture(key.loc, tex, persistent)
}

func (p *Pipeline[T]) bindTexture(loc driver.Uniform, tex *Texture, persistent bool) {
	const op = "Pipeline.BindTexture"
	log := p.ctx.dev.log
	if tex.released {
		violate(log, op, ErrResourceDestroyed, "texture %d", tex.id)
	}
	unit, ok := p.units.next()
	if !ok {
		violate(log, op, ErrTextureUnitsExhausted, "%d units locked", p.units.lockedCount())
	}

	drv := p.ctx.dev.drv
	drv.Uniform1i(loc, int32(unit))
	drv.ActiveTexture(driver.TEXTURE0 + driver.Enum(unit))
	drv.BindTexture(driver.TEXTURE_2D, tex.id)

	p.units.take(unit, persistent)
	p.textureUsed = true
}

// Draw draws count vertices starting at offset. With a nil index buffer
// the vertices are read in order from vb; otherwise count indices are
// read from ib starting at index offset.
//
// Reading past the end of vb or ib is a contract violation.
func (p *Pipeline[T]) Draw(mode Primitive, vb *VertexBuffer[T], ib *IndexBuffer, offset, count int) {
	const op = "Pipeline.Draw"
	p.checkActive(op)
	log := p.ctx.dev.log
	if offset < 0 || count < 0 {
		violate(log, op, ErrOutOfBounds, "offset %d, count %d", offset, count)
	}
	if vb.released {
		violate(log, op, ErrResourceDestroyed, "vertex buffer %d", vb.id)
	}
	if ib == nil {
		if offset+count > vb.length {
			violate(log, op, ErrOutOfBounds, "not enough vertices in buffer: %d+%d > %d", offset, count, vb.length)
		}
	} else {
		if ib.released {
			violate(log, op, ErrResourceDestroyed, "index buffer %d", ib.id)
		}
		if offset+count > ib.length {
			violate(log, op, ErrOutOfBounds, "not enough indices in buffer: %d+%d > %d", offset, count, ib.length)
		}
	}

	drv := p.ctx.dev.drv
	layout := p.shader.layout
	drv.BindBuffer(driver.ARRAY_BUFFER, vb.id)
	for _, a := range layout.attribs {
		drv.EnableVertexAttribArray(a.slot)
		if a.integer {
			drv.VertexAttribIPointer(a.slot, a.components, a.ty, layout.stride, a.offset)
		} else {
			drv.VertexAttribPointer(a.slot, a.components, a.ty, false, layout.stride, a.offset)
		}
	}

	if ib != nil {
		drv.BindBuffer(driver.ELEMENT_ARRAY_BUFFER, ib.id)
		drv.DrawElements(mode.mode(), count, driver.UNSIGNED_SHORT, offset*indexSize)
	} else {
		drv.DrawArrays(mode.mode(), offset, count)
	}
	p.ctx.dev.stats.s.DrawCalls++

	for _, a := range layout.attribs {
		drv.DisableVertexAttribArray(a.slot)
	}
	drv.BindBuffer(driver.ARRAY_BUFFER, 0)
	if ib != nil {
		drv.BindBuffer(driver.ELEMENT_ARRAY_BUFFER, 0)
	}
}

// End unbinds the last bound texture, if any, and the program. Calling
// End on an ended pipeline does nothing.
func (p *Pipeline[T]) End() {
	if p.ended {
		return
	}
	p.ended = true
	drv := p.ctx.dev.drv
	if p.textureUsed {
		drv.BindTexture(driver.TEXTURE_2D, 0)
	}
	drv.UseProgram(0)
	if p.pass.pipeline == ender(p) {
		p.pass.pipeline = nil
	}
}
