package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/glkit"
)

// ErrNotSquare is returned for images whose width and height differ.
var ErrNotSquare = errors.New("assets: image is not square")

// Texture is a texture loaded from textures/<name>.png. Any registered
// image format is accepted regardless of the extension.
type Texture struct {
	name    string
	file    string
	cfg     glkit.TextureConfig
	data    []byte
	texture *glkit.Texture
}

// LoadTexture registers a texture with s. cfg.Size is ignored; the
// image size is used and must be a power of two.
func LoadTexture(s *Set, name string, cfg glkit.TextureConfig, watch bool) (*Texture, error) {
	t := &Texture{name: name, file: TexturePath(name), cfg: cfg}
	if err := s.register(t, watch); err != nil {
		return nil, err
	}
	return t, nil
}

// Name returns the texture name.
func (t *Texture) Name() string { return "texture " + t.name }

// Get returns the current texture, or nil before the first build.
func (t *Texture) Get() *glkit.Texture { return t.texture }

// Loaded reports whether a texture has been built.
func (t *Texture) Loaded() bool { return t.texture != nil }

func (t *Texture) files() []string { return []string{t.file} }

func (t *Texture) add(_ string, data []byte) bool {
	t.data = data
	return true
}

func (t *Texture) build(c *glkit.Context) error {
	img, err := DecodeSquare(t.data)
	if err != nil {
		return err
	}
	cfg := t.cfg
	cfg.Size = img.Bounds().Dx()

	var next *glkit.Texture
	err = capture(func() {
		next = c.NewTextureFromImage(cfg, img)
	})
	if err != nil {
		return err
	}
	if t.texture != nil {
		t.texture.Destroy()
	}
	t.texture = next
	t.data = nil
	return nil
}

func (t *Texture) destroy() {
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
}

// DecodeSquare decodes data and checks that the image is square.
func DecodeSquare(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("%w: %s %dx%d", ErrNotSquare, format, b.Dx(), b.Dy())
	}
	return img, nil
}
