package glkit

import (
	"reflect"
	"testing"

	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/driver/drivertest"
)

const allTypesFS = `uniform float f;
uniform vec2 v2;
uniform vec3 v3;
uniform vec4 v4;
uniform int i;
uniform ivec2 i2;
uniform ivec3 i3;
uniform ivec4 i4;
uniform uint u;
uniform uvec2 u2;
uniform uvec3 u3;
uniform uvec4 u4;
uniform mat2 m2;
uniform mat3 m3;
uniform mat4 m4;
uniform bool flag;
uniform sampler2D tex;
void main() {}`

func newAllTypesShader(t *testing.T, opts ...Option) (*Context, *drivertest.Driver, *Shader[posVertex]) {
	t.Helper()
	c, d := newTestContext(t, opts...)
	return c, d, NewShader[posVertex](c, "attribute vec2 position;\nvoid main() {}", allTypesFS)
}

func TestUniformTypeMatching(t *testing.T) {
	_, _, s := newAllTypesShader(t)

	ok := []func(){
		func() { Uniform[float32](s, "f") },
		func() { Uniform[Vec2](s, "v2") },
		func() { Uniform[Vec3](s, "v3") },
		func() { Uniform[Vec4](s, "v4") },
		func() { Uniform[int32](s, "i") },
		func() { Uniform[IVec2](s, "i2") },
		func() { Uniform[IVec3](s, "i3") },
		func() { Uniform[IVec4](s, "i4") },
		func() { Uniform[uint32](s, "u") },
		func() { Uniform[UVec2](s, "u2") },
		func() { Uniform[UVec3](s, "u3") },
		func() { Uniform[UVec4](s, "u4") },
		func() { Uniform[Mat2](s, "m2") },
		func() { Uniform[Mat3](s, "m3") },
		func() { Uniform[Mat4](s, "m4") },
		func() { Uniform[int32](s, "flag") },
		func() { Uniform[int32](s, "tex") },
		func() { Uniform[*Texture](s, "tex") },
	}
	for _, fn := range ok {
		mustNotPanic(t, fn)
	}

	bad := []func(){
		func() { Uniform[Vec3](s, "v4") },
		func() { Uniform[float32](s, "i") },
		func() { Uniform[int32](s, "u") },
		func() { Uniform[Mat4](s, "m3") },
		func() { Uniform[*Texture](s, "i") },
	}
	for _, fn := range bad {
		mustPanic(t, ErrUniformType, fn)
	}
}

func TestUniformUnknownName(t *testing.T) {
	t.Run("debug", func(t *testing.T) {
		_, _, s := newAllTypesShader(t, WithDebug(true))
		mustPanic(t, ErrUnknownUniform, func() { Uniform[float32](s, "missing") })
	})
	t.Run("release", func(t *testing.T) {
		c, d, s := newAllTypesShader(t, WithDebug(false))
		var key UniformKey[float32]
		mustNotPanic(t, func() { key = Uniform[float32](s, "missing") })
		if key.Valid() || key.Location() != driver.NoUniform {
			t.Errorf("inert key = %+v, want location -1", key)
		}

		c.WithRenderPass(ScreenTarget(), RenderPassInfo{}, func(pass *RenderPass) {
			WithPipeline(pass, s, PipelineInfo{}, func(p *Pipeline[posVertex]) {
				mustNotPanic(t, func() { SetUniform(p, key, 1) })
			})
		})
		if d.Count("Uniform1f") != 1 {
			t.Error("inert key upload should still reach the driver, which ignores location -1")
		}
	})
	t.Run("type still checked in release", func(t *testing.T) {
		_, _, s := newAllTypesShader(t, WithDebug(false))
		mustPanic(t, ErrUniformType, func() { Uniform[Vec2](s, "f") })
	})
}

func TestLookupUniform(t *testing.T) {
	_, _, s := newAllTypesShader(t)
	if _, ok := LookupUniform[Vec4](s, "v4"); !ok {
		t.Error("LookupUniform(v4) = false")
	}
	if _, ok := LookupUniform[Vec4](s, "v3"); ok {
		t.Error("LookupUniform[Vec4](v3) = true, want false on type mismatch")
	}
	if _, ok := LookupUniform[Vec4](s, "missing"); ok {
		t.Error("LookupUniform(missing) = true")
	}
}

func TestSetUniformDispatch(t *testing.T) {
	c, d, s := newAllTypesShader(t)

	tests := []struct {
		uniform string
		set     func(p *Pipeline[posVertex])
		call    string
		args    []any
	}{
		{"f", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[float32](s, "f"), 0.5) },
			"Uniform1f", []any{float32(0.5)}},
		{"v2", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[Vec2](s, "v2"), Vec2{1, 2}) },
			"Uniform2f", []any{float32(1), float32(2)}},
		{"v3", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[Vec3](s, "v3"), Vec3{1, 2, 3}) },
			"Uniform3f", []any{float32(1), float32(2), float32(3)}},
		{"v4", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[Vec4](s, "v4"), Vec4{1, 2, 3, 4}) },
			"Uniform4f", []any{float32(1), float32(2), float32(3), float32(4)}},
		{"i", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[int32](s, "i"), -7) },
			"Uniform1i", []any{int32(-7)}},
		{"i2", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[IVec2](s, "i2"), IVec2{1, -1}) },
			"Uniform2i", []any{int32(1), int32(-1)}},
		{"i3", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[IVec3](s, "i3"), IVec3{1, 2, 3}) },
			"Uniform3i", []any{int32(1), int32(2), int32(3)}},
		{"i4", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[IVec4](s, "i4"), IVec4{1, 2, 3, 4}) },
			"Uniform4i", []any{int32(1), int32(2), int32(3), int32(4)}},
		{"u", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[uint32](s, "u"), 9) },
			"Uniform1ui", []any{uint32(9)}},
		{"u2", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[UVec2](s, "u2"), UVec2{1, 2}) },
			"Uniform2ui", []any{uint32(1), uint32(2)}},
		{"u3", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[UVec3](s, "u3"), UVec3{1, 2, 3}) },
			"Uniform3ui", []any{uint32(1), uint32(2), uint32(3)}},
		{"u4", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[UVec4](s, "u4"), UVec4{1, 2, 3, 4}) },
			"Uniform4ui", []any{uint32(1), uint32(2), uint32(3), uint32(4)}},
		{"m2", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[Mat2](s, "m2"), Mat2{1, 0, 0, 1}) },
			"UniformMatrix2fv", []any{[]float32{1, 0, 0, 1}}},
		{"m3", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[Mat3](s, "m3"), Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}) },
			"UniformMatrix3fv", []any{[]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}}},
		{"m4", func(p *Pipeline[posVertex]) { SetUniform(p, Uniform[Mat4](s, "m4"), Mat4{0: 2, 5: 2, 10: 2, 15: 1}) },
			"UniformMatrix4fv", []any{[]float32{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1}}},
	}

	c.WithRenderPass(ScreenTarget(), RenderPassInfo{}, func(pass *RenderPass) {
		WithPipeline(pass, s, PipelineInfo{}, func(p *Pipeline[posVertex]) {
			for _, tt := range tests {
				t.Run(tt.uniform, func(t *testing.T) {
					tt.set(p)
					call, ok := d.Last(tt.call)
					if !ok {
						t.Fatalf("%s not called", tt.call)
					}
					if call.Args[0] != s.uniforms[tt.uniform].loc {
						t.Errorf("location = %v, want %v", call.Args[0], s.uniforms[tt.uniform].loc)
					}
					if !reflect.DeepEqual(call.Args[1:], tt.args) {
						t.Errorf("%s args = %v, want %v", tt.call, call.Args[1:], tt.args)
					}
				})
			}
		})
	})
}

func TestSetUniformForeignKey(t *testing.T) {
	tests := []struct {
		name   string
		debug  bool
		panics bool
	}{
		{"debug", true, true},
		{"release", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, WithDebug(tt.debug))
			a := NewShader[colorVertex](c, colorVS, colorFS)
			b := NewShader[colorVertex](c, colorVS, colorFS)
			alphaA := Uniform[float32](a, "alpha")
			texA := Uniform[*Texture](a, "tex")
			tex := c.NewTexture(TextureConfig{Size: 2}, nil)

			c.WithRenderPass(ScreenTarget(), RenderPassInfo{}, func(pass *RenderPass) {
				WithPipeline(pass, b, PipelineInfo{}, func(p *Pipeline[colorVertex]) {
					if tt.panics {
						mustPanic(t, ErrForeignUniformKey, func() { SetUniform(p, alphaA, 1) })
						mustPanic(t, ErrForeignUniformKey, func() { p.BindTexture(texA, tex, false) })
					} else {
						mustNotPanic(t, func() { SetUniform(p, alphaA, 1) })
						mustNotPanic(t, func() { p.BindTexture(texA, tex, false) })
					}
				})
				WithPipeline(pass, a, PipelineInfo{}, func(p *Pipeline[colorVertex]) {
					mustNotPanic(t, func() { SetUniform(p, alphaA, 1) })
				})
			})
		})
	}
}

func TestSetUniformAfterEnd(t *testing.T) {
	c, _, s := newAllTypesShader(t)
	key := Uniform[float32](s, "f")
	pass := c.BeginRenderPass(ScreenTarget(), RenderPassInfo{})
	defer pass.End()
	p := BeginPipeline(pass, s, PipelineInfo{})
	p.End()
	mustPanic(t, ErrPipelineEnded, func() { SetUniform(p, key, 1) })
}
