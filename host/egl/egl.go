//go:build linux && cgo && !(js && wasm)

package egl

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	eglapi "github.com/gogpu/wgpu/hal/gles/egl"
	"golang.org/x/mobile/gl"

	"github.com/gogpu/glkit"
	"github.com/gogpu/glkit/backend/mobile"
)

// ErrClosed is returned when work is submitted to a closed Host.
var ErrClosed = errors.New("egl: host closed")

// Config selects the context version.
type Config struct {
	// Major and Minor select the OpenGL ES version. 2.0 matches the
	// x/mobile/gl binding; 3.x contexts are backwards compatible.
	Major, Minor int

	// Debug requests a debug context.
	Debug bool
}

// DefaultConfig returns an OpenGL ES 3.0 surfaceless configuration.
func DefaultConfig() Config {
	return Config{Major: 3, Minor: 0}
}

type funcRun struct {
	f    func()
	done chan struct{}
}

// Host owns an EGL context and the goroutine it is current on.
type Host struct {
	egl    *eglapi.Context
	glctx  gl.Context
	driver *mobile.Driver

	queue chan funcRun
	quit  chan struct{}
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// New creates the context and starts its thread.
func New(cfg Config) (*Host, error) {
	h := &Host{
		queue: make(chan funcRun),
		quit:  make(chan struct{}),
	}

	ready := make(chan error, 1)
	h.wg.Add(1)
	go h.loop(cfg, ready)
	if err := <-ready; err != nil {
		h.wg.Wait()
		return nil, err
	}

	h.driver = mobile.New(h.glctx)
	glkit.Logger().Info("egl: context ready",
		"version", fmt.Sprintf("%d.%d", cfg.Major, cfg.Minor),
		"window", h.egl.WindowKind())
	return h, nil
}

func (h *Host) loop(cfg Config, ready chan<- error) {
	defer h.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ctx, err := eglapi.NewContext(eglapi.ContextConfig{
		GLVersionMajor: cfg.Major,
		GLVersionMinor: cfg.Minor,
		Debug:          cfg.Debug,
		GLES:           true,
		Surfaceless:    true,
	})
	if err != nil {
		ready <- fmt.Errorf("egl: create context: %w", err)
		return
	}
	if err := ctx.MakeCurrent(); err != nil {
		ctx.Destroy()
		ready <- fmt.Errorf("egl: make current: %w", err)
		return
	}

	glctx, worker := gl.NewContext()
	h.egl = ctx
	h.glctx = glctx
	ready <- nil

	work := worker.WorkAvailable()
	for {
		select {
		case <-work:
			worker.DoWork()
		case r := <-h.queue:
			r.f()
			close(r.done)
		case <-h.quit:
			ctx.Destroy()
			return
		}
	}
}

// Driver returns the driver bound to the context.
func (h *Host) Driver() *mobile.Driver { return h.driver }

// Do runs f on the context thread and waits for it to return.
// f must not call into the Driver: those calls are served by the same
// thread and would never complete.
func (h *Host) Do(f func()) error {
	done := make(chan struct{})
	select {
	case h.queue <- funcRun{f: f, done: done}:
	case <-h.quit:
		return ErrClosed
	}
	<-done
	return nil
}

// Close destroys the context and stops its thread. It is safe to call
// more than once.
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		close(h.quit)
		h.wg.Wait()
		glkit.Logger().Debug("egl: context destroyed")
	})
}
