package assets

import (
	"github.com/gogpu/glkit"
)

// Shader is a shader program loaded from shaders/<name>.vert and
// shaders/<name>.frag.
type Shader[T glkit.Vertex] struct {
	name       string
	vert, frag string
	src        map[string][]byte
	shader     *glkit.Shader[T]
}

// LoadShader registers a shader with s and starts reading its sources.
// With watch set, edits on disk rebuild the program.
func LoadShader[T glkit.Vertex](s *Set, name string, watch bool) (*Shader[T], error) {
	vert, frag := ShaderPath(name)
	sh := &Shader[T]{name: name, vert: vert, frag: frag, src: make(map[string][]byte, 2)}
	if err := s.register(sh, watch); err != nil {
		return nil, err
	}
	return sh, nil
}

// Name returns the shader name.
func (sh *Shader[T]) Name() string { return "shader " + sh.name }

// Get returns the current program, or nil before the first build.
func (sh *Shader[T]) Get() *glkit.Shader[T] { return sh.shader }

// Loaded reports whether a program has been built.
func (sh *Shader[T]) Loaded() bool { return sh.shader != nil }

func (sh *Shader[T]) files() []string { return []string{sh.vert, sh.frag} }

func (sh *Shader[T]) add(name string, data []byte) bool {
	sh.src[name] = data
	return len(sh.src) == 2
}

func (sh *Shader[T]) build(c *glkit.Context) error {
	var next *glkit.Shader[T]
	err := capture(func() {
		next = glkit.NewShader[T](c, string(sh.src[sh.vert]), string(sh.src[sh.frag]))
	})
	if err != nil {
		return err
	}
	if sh.shader != nil {
		sh.shader.Destroy()
	}
	sh.shader = next
	return nil
}

func (sh *Shader[T]) destroy() {
	if sh.shader != nil {
		sh.shader.Destroy()
		sh.shader = nil
	}
}
