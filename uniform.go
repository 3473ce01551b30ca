package glkit

import (
	"fmt"

	"github.com/gogpu/glkit/driver"
)

// Vector and matrix uniform values. Matrices are column-major.
type (
	Vec2  [2]float32
	Vec3  [3]float32
	Vec4  [4]float32
	IVec2 [2]int32
	IVec3 [3]int32
	IVec4 [4]int32
	UVec2 [2]uint32
	UVec3 [3]uint32
	UVec4 [4]uint32
	Mat2  [4]float32
	Mat3  [9]float32
	Mat4  [16]float32
)

// UniformValue is the set of Go types a uniform can be set from.
// A *Texture value binds the texture to a free unit and sets the
// sampler to that unit.
type UniformValue interface {
	float32 | Vec2 | Vec3 | Vec4 |
		int32 | IVec2 | IVec3 | IVec4 |
		uint32 | UVec2 | UVec3 | UVec4 |
		Mat2 | Mat3 | Mat4 |
		*Texture
}

// UniformKey addresses a uniform of one shader with a fixed value type.
// The zero key is not bound to any shader.
type UniformKey[U UniformValue] struct {
	loc    driver.Uniform
	shader uint32
}

// Location returns the uniform location; -1 for an inert key.
func (k UniformKey[U]) Location() driver.Uniform { return k.loc }

// ShaderID returns the id of the shader the key was looked up on.
func (k UniformKey[U]) ShaderID() uint32 { return k.shader }

// Valid reports whether the key addresses an active uniform.
func (k UniformKey[U]) Valid() bool { return k.shader != 0 && k.loc >= 0 }

// glTypes returns the GLSL uniform types a value of type U can be set on.
func glTypes[U UniformValue]() []driver.Enum {
	var zero U
	switch any(zero).(type) {
	case float32:
		return []driver.Enum{driver.FLOAT}
	case Vec2:
		return []driver.Enum{driver.FLOAT_VEC2}
	case Vec3:
		return []driver.Enum{driver.FLOAT_VEC3}
	case Vec4:
		return []driver.Enum{driver.FLOAT_VEC4}
	case int32:
		return []driver.Enum{driver.INT, driver.BOOL, driver.SAMPLER_2D}
	case IVec2:
		return []driver.Enum{driver.INT_VEC2}
	case IVec3:
		return []driver.Enum{driver.INT_VEC3}
	case IVec4:
		return []driver.Enum{driver.INT_VEC4}
	case uint32:
		return []driver.Enum{driver.UNSIGNED_INT}
	case UVec2:
		return []driver.Enum{driver.UNSIGNED_INT_VEC2}
	case UVec3:
		return []driver.Enum{driver.UNSIGNED_INT_VEC3}
	case UVec4:
		return []driver.Enum{driver.UNSIGNED_INT_VEC4}
	case Mat2:
		return []driver.Enum{driver.FLOAT_MAT2}
	case Mat3:
		return []driver.Enum{driver.FLOAT_MAT3}
	case Mat4:
		return []driver.Enum{driver.FLOAT_MAT4}
	case *Texture:
		return []driver.Enum{driver.SAMPLER_2D}
	}
	return nil
}

func typeMatches[U UniformValue](ty driver.Enum) bool {
	for _, t := range glTypes[U]() {
		if t == ty {
			return true
		}
	}
	return false
}

// Uniform looks up a uniform of s by name and returns a key typed with U.
//
// A GLSL type that does not accept U is a contract violation. An unknown
// name is a contract violation when debug checks are on; otherwise a
// warning is logged and an inert key is returned, which GL ignores.
//
// Example:
//
//	color := glkit.Uniform[glkit.Vec4](shader, "color")
func Uniform[U UniformValue, T Vertex](s *Shader[T], name string) UniformKey[U] {
	const op = "Uniform"
	log := s.dev.log
	info, ok := s.uniforms[name]
	if !ok {
		if s.dev.debug {
			violate(log, op, ErrUnknownUniform, "%q in shader %d", name, s.id)
		}
		log.Warn("glkit: unknown uniform, key is inert", "name", name, "shader", s.id)
		return UniformKey[U]{loc: driver.NoUniform, shader: s.id}
	}
	if !typeMatches[U](info.ty) {
		var zero U
		violate(log, op, ErrUniformType, "%q is %s, not settable from %T", name, glslTypeName(info.ty), zero)
	}
	return UniformKey[U]{loc: info.loc, shader: s.id}
}

// LookupUniform is Uniform without contract checks. It reports false
// when the name is not active or its type does not accept U.
func LookupUniform[U UniformValue, T Vertex](s *Shader[T], name string) (UniformKey[U], bool) {
	info, ok := s.uniforms[name]
	if !ok || !typeMatches[U](info.ty) {
		return UniformKey[U]{}, false
	}
	return UniformKey[U]{loc: info.loc, shader: s.id}, true
}

// SetUniform sets a uniform of the pipeline's program. When debug checks
// are on, a key looked up on another shader is a contract violation.
func SetUniform[T Vertex, U UniformValue](p *Pipeline[T], key UniformKey[U], value U) {
	const op = "SetUniform"
	p.checkActive(op)
	if p.ctx.dev.debug && key.shader != p.shader.id {
		violate(p.ctx.dev.log, op, ErrForeignUniformKey, "key of shader %d used with shader %d", key.shader, p.shader.id)
	}

	drv := p.ctx.dev.drv
	loc := key.loc
	switch v := any(value).(type) {
	case float32:
		drv.Uniform1f(loc, v)
	case Vec2:
		drv.Uniform2f(loc, v[0], v[1])
	case Vec3:
		drv.Uniform3f(loc, v[0], v[1], v[2])
	case Vec4:
		drv.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case int32:
		drv.Uniform1i(loc, v)
	case IVec2:
		drv.Uniform2i(loc, v[0], v[1])
	case IVec3:
		drv.Uniform3i(loc, v[0], v[1], v[2])
	case IVec4:
		drv.Uniform4i(loc, v[0], v[1], v[2], v[3])
	case uint32:
		drv.Uniform1ui(loc, v)
	case UVec2:
		drv.Uniform2ui(loc, v[0], v[1])
	case UVec3:
		drv.Uniform3ui(loc, v[0], v[1], v[2])
	case UVec4:
		drv.Uniform4ui(loc, v[0], v[1], v[2], v[3])
	case Mat2:
		drv.UniformMatrix2fv(loc, v[:])
	case Mat3:
		drv.UniformMatrix3fv(loc, v[:])
	case Mat4:
		drv.UniformMatrix4fv(loc, v[:])
	case *Texture:
		if v == nil {
			violate(p.ctx.dev.log, op, ErrResourceDestroyed, "nil texture")
		}
		p.bindTexture(loc, v, v.persistent)
	}
}

func glslTypeName(ty driver.Enum) string {
	switch ty {
	case driver.FLOAT:
		return "float"
	case driver.FLOAT_VEC2:
		return "vec2"
	case driver.FLOAT_VEC3:
		return "vec3"
	case driver.FLOAT_VEC4:
		return "vec4"
	case driver.INT:
		return "int"
	case driver.INT_VEC2:
		return "ivec2"
	case driver.INT_VEC3:
		return "ivec3"
	case driver.INT_VEC4:
		return "ivec4"
	case driver.UNSIGNED_INT:
		return "uint"
	case driver.UNSIGNED_INT_VEC2:
		return "uvec2"
	case driver.UNSIGNED_INT_VEC3:
		return "uvec3"
	case driver.UNSIGNED_INT_VEC4:
		return "uvec4"
	case driver.BOOL:
		return "bool"
	case driver.FLOAT_MAT2:
		return "mat2"
	case driver.FLOAT_MAT3:
		return "mat3"
	case driver.FLOAT_MAT4:
		return "mat4"
	case driver.SAMPLER_2D:
		return "sampler2D"
	default:
		return fmt.Sprintf("0x%x", uint32(ty))
	}
}
