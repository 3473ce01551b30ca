package glkit

import (
	"reflect"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/driver/drivertest"
)

func TestTriangleScenario(t *testing.T) {
	c, d := newTestContext(t)
	s := NewShader[colorVertex](c, colorVS, colorFS)
	vb := NewVertexBuffer[colorVertex](c, 3, Static)
	vb.Data(0, []colorVertex{
		{Pos: [2]float32{-1, -1}, Color: [3]float32{1, 0, 0}},
		{Pos: [2]float32{1, -1}, Color: [3]float32{0, 1, 0}},
		{Pos: [2]float32{0, 1}, Color: [3]float32{0, 0, 1}},
	})
	d.ResetCalls()

	black := gputypes.ColorBlack
	c.WithRenderPass(ScreenTarget(), RenderPassInfo{ClearColor: &black, ClearDepth: true}, func(pass *RenderPass) {
		WithPipeline(pass, s, PipelineInfo{DepthTest: true, FaceCull: true}, func(p *Pipeline[colorVertex]) {
			p.Draw(Triangles, vb, nil, 0, 3)
		})
	})

	if got := d.Named("DrawArrays"); len(got) != 1 ||
		!reflect.DeepEqual(got[0].Args, []any{driver.TRIANGLES, 0, 3}) {
		t.Errorf("DrawArrays calls = %v, want exactly one DrawArrays(TRIANGLES, 0, 3)", got)
	}
	if n := d.Count("ClearColor"); n != 0 {
		t.Errorf("ClearColor issued %d times for an unchanged color", n)
	}
	if n := d.Count("Enable") + d.Count("Disable"); n != 0 {
		t.Errorf("capabilities toggled %d times for default pipeline state", n)
	}
	if clr, ok := d.Last("Clear"); !ok || clr.Args[0] != driver.COLOR_BUFFER_BIT|driver.DEPTH_BUFFER_BIT {
		t.Errorf("Clear = %v, want COLOR|DEPTH", clr)
	}
	if d.ViewportXY != [4]int32{0, 0, 800, 600} {
		t.Errorf("viewport = %v", d.ViewportXY)
	}

	draw := d.Draws[0]
	want := []drivertest.AttribPointer{
		{Index: 0, Size: 2, Type: driver.FLOAT, Stride: 20, Offset: 0},
		{Index: 1, Size: 3, Type: driver.FLOAT, Stride: 20, Offset: 8},
	}
	if !reflect.DeepEqual(draw.Attribs, want) {
		t.Errorf("attribs at draw = %+v, want %+v", draw.Attribs, want)
	}
	if draw.Program != s.Program() || draw.ArrayBuffer != vb.ID() {
		t.Errorf("draw bound program %d buffer %d", draw.Program, draw.ArrayBuffer)
	}
	if d.ArrayEnabled(0) || d.ArrayEnabled(1) {
		t.Error("attribute arrays left enabled after draw")
	}
	if d.Program != 0 {
		t.Error("program left bound after pipeline end")
	}
	if c.Stats().DrawCalls != 1 {
		t.Errorf("DrawCalls = %d, want 1", c.Stats().DrawCalls)
	}
}

func TestPipelineCapabilities(t *testing.T) {
	c, d := newTestContext(t)
	s := NewShader[colorVertex](c, colorVS, colorFS)
	pass := c.BeginRenderPass(ScreenTarget(), RenderPassInfo{})
	defer pass.End()

	d.ResetCalls()
	BeginPipeline(pass, s, PipelineInfo{DepthTest: false, AlphaBlend: true, FaceCull: true}).End()
	want := []drivertest.Call{
		{Name: "Disable", Args: []any{driver.DEPTH_TEST}},
		{Name: "Enable", Args: []any{driver.BLEND}},
	}
	got := append(d.Named("Disable"), d.Named("Enable")...)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("toggles = %v, want %v", got, want)
	}

	d.ResetCalls()
	BeginPipeline(pass, s, PipelineInfo{DepthTest: false, AlphaBlend: true, FaceCull: true}).End()
	if n := d.Count("Enable") + d.Count("Disable"); n != 0 {
		t.Errorf("same pipeline state toggled %d capabilities", n)
	}
}

func TestDrawBounds(t *testing.T) {
	c, d := newTestContext(t)
	s := NewShader[posVertex](c, "attribute vec2 position;\nvoid main() {}", "void main() {}")
	vb := NewVertexBuffer[posVertex](c, 3, Static)
	ib := c.NewIndexBuffer(6, Static)

	c.WithRenderPass(ScreenTarget(), RenderPassInfo{}, func(pass *RenderPass) {
		WithPipeline(pass, s, PipelineInfo{}, func(p *Pipeline[posVertex]) {
			mustNotPanic(t, func() { p.Draw(Triangles, vb, nil, 0, 3) })
			mustPanic(t, ErrOutOfBounds, func() { p.Draw(Triangles, vb, nil, 1, 3) })
			mustPanic(t, ErrOutOfBounds, func() { p.Draw(Triangles, vb, nil, -1, 1) })

			mustNotPanic(t, func() { p.Draw(Triangles, vb, ib, 3, 3) })
			mustPanic(t, ErrOutOfBounds, func() { p.Draw(Triangles, vb, ib, 3, 4) })
		})
	})

	if n := len(d.Draws); n != 2 {
		t.Fatalf("draws = %d, want 2", n)
	}
	indexed := d.Draws[1]
	if !indexed.Indexed || indexed.IndexType != driver.UNSIGNED_SHORT || indexed.Offset != 6 || indexed.Count != 3 {
		t.Errorf("indexed draw = %+v, want UNSIGNED_SHORT count 3 at byte offset 6", indexed)
	}
	if indexed.IndexBuffer != ib.ID() {
		t.Errorf("index buffer bound at draw = %d, want %d", indexed.IndexBuffer, ib.ID())
	}
	if d.Buffers[driver.ELEMENT_ARRAY_BUFFER] != 0 || d.Buffers[driver.ARRAY_BUFFER] != 0 {
		t.Error("buffers left bound after draw")
	}
}

func TestPrimitiveModes(t *testing.T) {
	tests := []struct {
		p    Primitive
		mode driver.Enum
	}{
		{Points, driver.POINTS},
		{Lines, driver.LINES},
		{LineStrip, driver.LINE_STRIP},
		{Triangles, driver.TRIANGLES},
		{TriangleStrip, driver.TRIANGLE_STRIP},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			if got := tt.p.mode(); got != tt.mode {
				t.Errorf("mode() = 0x%x, want 0x%x", got, tt.mode)
			}
		})
	}
}

// samplerUnits returns the unit written to the sampler uniform by each
// texture binding, in order.
func samplerUnits(d *drivertest.Driver) []int32 {
	var units []int32
	for _, call := range d.Named("Uniform1i") {
		units = append(units, call.Args[1].(int32))
	}
	return units
}

func TestTextureUnitRotation(t *testing.T) {
	c, d := newTestContext(t)
	s := NewShader[uvVertex](c, uvVS, uvFS)
	key := Uniform[*Texture](s, "tex")
	tex := c.NewTexture(TextureConfig{Size: 2}, nil)

	c.WithRenderPass(ScreenTarget(), RenderPassInfo{}, func(pass *RenderPass) {
		WithPipeline(pass, s, PipelineInfo{}, func(p *Pipeline[uvVertex]) {
			d.ResetCalls()
			for range 3 {
				p.BindTexture(key, tex, false)
			}
			p.BindTexture(key, tex, true)
			for range 7 {
				p.BindTexture(key, tex, false)
			}
		})
	})

	want := []int32{0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2}
	if got := samplerUnits(d); !reflect.DeepEqual(got, want) {
		t.Fatalf("units = %v, want %v", got, want)
	}
	active := d.Named("ActiveTexture")
	if active[3].Args[0] != driver.TEXTURE0+3 {
		t.Errorf("ActiveTexture = %v, want TEXTURE3", active[3].Args[0])
	}
	last, _ := d.Last("BindTexture")
	if last.Args[1] != driver.Texture(0) {
		t.Errorf("texture not unbound at pipeline end: %v", last)
	}
}

func TestTextureUnitLocking(t *testing.T) {
	c, d := newTestContext(t)
	s := NewShader[uvVertex](c, uvVS, uvFS)
	key := Uniform[*Texture](s, "tex")
	tex := c.NewTexture(TextureConfig{Size: 2}, nil)

	c.WithRenderPass(ScreenTarget(), RenderPassInfo{}, func(pass *RenderPass) {
		WithPipeline(pass, s, PipelineInfo{}, func(p *Pipeline[uvVertex]) {
			d.ResetCalls()
			p.BindTexture(key, tex, true)
			p.BindTexture(key, tex, false)
			p.BindTexture(key, tex, true)
			for range 10 {
				p.BindTexture(key, tex, false)
			}
		})
	})

	units := samplerUnits(d)
	for i, u := range units[3:] {
		if u == 0 || u == 2 {
			t.Errorf("non-persistent binding %d used locked unit %d", i, u)
		}
	}
}

func TestTextureUnitsExhausted(t *testing.T) {
	c, _ := newTestContext(t)
	s := NewShader[uvVertex](c, uvVS, uvFS)
	key := Uniform[*Texture](s, "tex")
	tex := c.NewTexture(TextureConfig{Size: 2, Persistent: true}, nil)

	c.WithRenderPass(ScreenTarget(), RenderPassInfo{}, func(pass *RenderPass) {
		WithPipeline(pass, s, PipelineInfo{}, func(p *Pipeline[uvVertex]) {
			for range MaxTextureUnits {
				SetUniform(p, key, tex)
			}
			mustPanic(t, ErrTextureUnitsExhausted, func() { SetUniform(p, key, tex) })
		})
		WithPipeline(pass, s, PipelineInfo{}, func(p *Pipeline[uvVertex]) {
			mustNotPanic(t, func() { SetUniform(p, key, tex) })
		})
	})
}

func TestUnitAllocator(t *testing.T) {
	var a unitAllocator
	for want := range uint8(MaxTextureUnits) {
		u, ok := a.next()
		if !ok || u != want {
			t.Fatalf("next() = %d, %v, want %d", u, ok, want)
		}
		a.take(u, want%2 == 0)
	}
	if n := a.lockedCount(); n != 4 {
		t.Errorf("lockedCount() = %d, want 4", n)
	}
	for range 10 {
		u, ok := a.next()
		if !ok || u%2 == 0 {
			t.Fatalf("next() = %d, %v, want an odd unlocked unit", u, ok)
		}
		a.take(u, false)
	}
}

func TestPipelineNesting(t *testing.T) {
	c, d := newTestContext(t)
	s := NewShader[colorVertex](c, colorVS, colorFS)

	pass := c.BeginRenderPass(ScreenTarget(), RenderPassInfo{})
	p := BeginPipeline(pass, s, PipelineInfo{})
	mustPanic(t, ErrPipelineActive, func() { BeginPipeline(pass, s, PipelineInfo{}) })

	pass.End()
	if !p.IsEnded() {
		t.Error("ending the pass should end its pipeline")
	}
	if d.Program != 0 {
		t.Error("program left bound after pass end")
	}
	mustPanic(t, ErrPassEnded, func() { BeginPipeline(pass, s, PipelineInfo{}) })
}

func TestWithPipelinePanicEnds(t *testing.T) {
	c, d := newTestContext(t)
	s := NewShader[colorVertex](c, colorVS, colorFS)
	pass := c.BeginRenderPass(ScreenTarget(), RenderPassInfo{})
	defer pass.End()

	var p *Pipeline[colorVertex]
	func() {
		defer func() { _ = recover() }()
		WithPipeline(pass, s, PipelineInfo{}, func(pl *Pipeline[colorVertex]) {
			p = pl
			panic("boom")
		})
	}()
	if !p.IsEnded() || d.Program != 0 {
		t.Error("pipeline not ended after panic")
	}
	mustNotPanic(t, func() { BeginPipeline(pass, s, PipelineInfo{}).End() })
}
