package glkit

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit/driver/drivertest"
)

type posVertex struct {
	Pos [2]float32
}

func (posVertex) Attributes() []Attribute {
	return []Attribute{{Name: "position", Format: gputypes.VertexFormatFloat32x2}}
}

type colorVertex struct {
	Pos   [2]float32
	Color [3]float32
}

func (colorVertex) Attributes() []Attribute {
	return []Attribute{
		{Name: "position", Format: gputypes.VertexFormatFloat32x2},
		{Name: "color", Format: gputypes.VertexFormatFloat32x3},
	}
}

type uvVertex struct {
	UV  [2]float32
	Pos [2]float32
}

func (uvVertex) Attributes() []Attribute {
	return []Attribute{
		{Name: "uv", Format: gputypes.VertexFormatFloat32x2},
		{Name: "position", Format: gputypes.VertexFormatFloat32x2},
	}
}

type idVertex struct {
	Pos [3]float32
	ID  int32
}

func (idVertex) Attributes() []Attribute {
	return []Attribute{
		{Name: "position", Format: gputypes.VertexFormatFloat32x3},
		{Name: "id", Format: gputypes.VertexFormatSint32},
	}
}

const colorVS = `attribute vec2 position;
attribute vec3 color;
uniform mat4 transform;
varying vec3 v_color;

void main() {
	v_color = color;
	gl_Position = transform * vec4(position, 0.0, 1.0);
}`

const colorFS = `varying vec3 v_color;
uniform float alpha;
uniform sampler2D tex;

void main() {
	gl_FragColor = vec4(v_color, alpha) * texture2D(tex, vec2(0.5));
}`

const uvVS = `attribute vec2 uv;
attribute vec2 position;
varying vec2 v_uv;

void main() {
	v_uv = uv;
	gl_Position = vec4(position, 0.0, 1.0);
}`

const uvFS = `varying vec2 v_uv;
uniform sampler2D tex;
uniform vec4 tint;

void main() {
	gl_FragColor = texture2D(tex, v_uv) * tint;
}`

func newTestContext(t *testing.T, opts ...Option) (*Context, *drivertest.Driver) {
	t.Helper()
	d := drivertest.New()
	opts = append([]Option{WithWindowSize(800, 600)}, opts...)
	return NewContext(d, opts...), d
}

// mustPanic runs fn and fails unless it panics with a *ContractError
// wrapping want.
func mustPanic(t *testing.T, want error, fn func()) *ContractError {
	t.Helper()
	var ce *ContractError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected panic wrapping %v", want)
			}
			err, ok := r.(error)
			if !ok {
				t.Fatalf("panic value %v (%T) is not an error", r, r)
			}
			if !errors.Is(err, want) {
				t.Fatalf("panic = %v, want %v", err, want)
			}
			if !errors.As(err, &ce) {
				t.Fatalf("panic value %T is not a *ContractError", err)
			}
		}()
		fn()
	}()
	return ce
}

// mustNotPanic runs fn and fails if it panics.
func mustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}
