package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/glkit"
	"github.com/gogpu/glkit/backend"
	_ "github.com/gogpu/glkit/host/egl"
	"github.com/gogpu/glkit/internal/config"
)

// openBackend initializes the named backend, or the first one that
// works when name is empty.
func openBackend(name string) (backend.Backend, error) {
	if name == "" {
		return backend.InitDefault()
	}
	return backend.Open(name)
}

// runHeadless renders frames into an offscreen framebuffer and writes the
// last one to cfg.Output.Path.
func runHeadless(cfg *config.Config, frames int) error {
	b, err := openBackend(cfg.Output.Backend)
	if err != nil {
		return err
	}
	defer b.Close()

	size := cfg.Output.Size
	ctx := glkit.NewContext(b.Driver(),
		glkit.WithDebug(cfg.Render.Debug),
		glkit.WithWindowSize(size, size))
	img, err := renderImage(ctx, cfg, frames)
	if err != nil {
		return err
	}
	if err := writePNG(cfg.Output.Path, img); err != nil {
		return err
	}
	log.Printf("Rendered %d frame(s) with %s to %s (%dx%d)", max(frames, 1), b.Name(), cfg.Output.Path, size, size)
	return nil
}

// renderImage draws the scene frames times into a framebuffer of
// cfg.Output.Size and reads the result back.
func renderImage(ctx *glkit.Context, cfg *config.Config, frames int) (*image.NRGBA, error) {
	sc, err := newScene(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer sc.destroy()

	if sc.assets != nil {
		sc.assets.Loader().Wait()
		if err := sc.update(); err != nil {
			glkit.Logger().Warn("gldemo: asset failed", "err", err)
		}
	}

	target := ctx.NewFramebuffer(glkit.FramebufferConfig{Size: cfg.Output.Size, Depth: true})
	defer target.Destroy()
	for i := range max(frames, 1) {
		sc.frame(glkit.FramebufferTarget(target), float32(i)/60)
	}
	return flipRows(target.ReadPixels(), target.Size()), nil
}

// flipRows converts bottom-row-first RGBA pixels into an image.
func flipRows(pix []byte, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	stride := size * 4
	for y := range size {
		src := pix[(size-1-y)*stride : (size-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gldemo: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("gldemo: encode %s: %w", path, err)
	}
	return f.Close()
}
