//go:build linux && cgo && !(js && wasm)

package egl

import (
	"github.com/gogpu/glkit/backend"
	"github.com/gogpu/glkit/driver"
)

func init() {
	backend.Register(backend.BackendEGL, func() backend.Backend {
		return &Backend{cfg: DefaultConfig()}
	})
}

// Backend adapts a Host to backend.Backend.
type Backend struct {
	cfg  Config
	host *Host
}

// Name returns "egl".
func (b *Backend) Name() string { return backend.BackendEGL }

// Init creates the Host.
func (b *Backend) Init() error {
	h, err := New(b.cfg)
	if err != nil {
		return err
	}
	b.host = h
	return nil
}

// Driver returns the host driver, or nil before Init.
func (b *Backend) Driver() driver.Driver {
	if b.host == nil {
		return nil
	}
	return b.host.Driver()
}

// Host returns the underlying host, or nil before Init.
func (b *Backend) Host() *Host { return b.host }

// Close destroys the host.
func (b *Backend) Close() {
	if b.host != nil {
		b.host.Close()
		b.host = nil
	}
}
