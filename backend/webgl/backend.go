//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/gogpu/glkit/backend"
	"github.com/gogpu/glkit/driver"
)

func init() {
	backend.Register(backend.BackendWebGL, func() backend.Backend {
		return &Backend{Selector: "canvas"}
	})
}

// Backend adapts a page canvas to backend.Backend.
type Backend struct {
	// Selector finds the canvas. A canvas is appended to the body
	// when nothing matches.
	Selector string

	drv *Driver
}

// Name returns "webgl".
func (b *Backend) Name() string { return backend.BackendWebGL }

// Init acquires the WebGL context.
func (b *Backend) Init() error {
	doc := js.Global().Get("document")
	canvas := doc.Call("querySelector", b.Selector)
	if canvas.IsNull() {
		canvas = doc.Call("createElement", "canvas")
		doc.Get("body").Call("appendChild", canvas)
	}
	drv, err := New(canvas)
	if err != nil {
		return err
	}
	b.drv = drv
	return nil
}

// Driver returns the driver, or nil before Init.
func (b *Backend) Driver() driver.Driver {
	if b.drv == nil {
		return nil
	}
	return b.drv
}

// Close drops the context. The canvas stays in the page.
func (b *Backend) Close() {
	b.drv = nil
}
