package assets

import (
	"errors"
	"fmt"
	"path"

	"github.com/gogpu/glkit"
)

// Set groups resources that are loaded through one Loader and built on
// the context goroutine by Update.
type Set struct {
	loader    *Loader
	resources []resource
	byFile    map[string][]resource
}

// resource assembles one or more files into a GPU object.
type resource interface {
	Name() string
	files() []string
	// add stores one file and reports whether all files are present.
	add(name string, data []byte) bool
	build(c *glkit.Context) error
	Loaded() bool
	destroy()
}

// NewSet creates an empty set reading through l.
func NewSet(l *Loader) *Set {
	return &Set{loader: l, byFile: make(map[string][]resource)}
}

// Loader returns the loader behind the set.
func (s *Set) Loader() *Loader { return s.loader }

func (s *Set) register(r resource, watch bool) error {
	s.resources = append(s.resources, r)
	for _, f := range r.files() {
		s.byFile[f] = append(s.byFile[f], r)
		s.loader.Load(f)
		if watch {
			if err := s.loader.Watch(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Update hands finished reads to their resources and builds the ones
// that became complete. It must run on the goroutine that owns c.
// Failures are joined; the resource keeps its previous object, if any.
func (s *Set) Update(c *glkit.Context) error {
	var errs []error
	for _, f := range s.loader.Poll() {
		if f.Err != nil {
			errs = append(errs, f.Err)
			continue
		}
		for _, r := range s.byFile[f.Name] {
			if !r.add(f.Name, f.Data) {
				continue
			}
			if err := r.build(c); err != nil {
				errs = append(errs, fmt.Errorf("assets: %s: %w", r.Name(), err))
				continue
			}
			glkit.Logger().Debug("assets: loaded", "name", r.Name())
		}
	}
	return errors.Join(errs...)
}

// Progress reports how many resources have been built at least once.
func (s *Set) Progress() (loaded, total int) {
	for _, r := range s.resources {
		if r.Loaded() {
			loaded++
		}
	}
	return loaded, len(s.resources)
}

// Done reports whether every resource has been built.
func (s *Set) Done() bool {
	loaded, total := s.Progress()
	return loaded == total
}

// Destroy releases every built resource.
func (s *Set) Destroy() {
	for _, r := range s.resources {
		r.destroy()
	}
}

// ShaderPath returns the vertex and fragment file names for a shader.
func ShaderPath(name string) (vert, frag string) {
	base := path.Join("shaders", name)
	return base + ".vert", base + ".frag"
}

// TexturePath returns the file name for a texture.
func TexturePath(name string) string {
	return path.Join("textures", name+".png")
}

// capture turns a glkit contract panic into an error. Other panics
// propagate.
func capture(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*glkit.ContractError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()
	fn()
	return nil
}
