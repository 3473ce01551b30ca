//go:build cgo && (linux || darwin || windows)

package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
	"golang.org/x/mobile/gl"

	"github.com/gogpu/glkit"
	"github.com/gogpu/glkit/backend/mobile"
	"github.com/gogpu/glkit/internal/config"
)

func init() {
	// glfw and the GL worker must run on the main thread.
	runtime.LockOSThread()
}

// runWindow opens an OpenGL ES 2.0 window (desktop GL on macOS) and renders until it is closed.
//
// The main thread owns the window and drains the x/mobile/gl work queue.
// The scene runs on its own goroutine and receives the window size before
// each frame.
func runWindow(cfg *config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("gldemo: glfw: %w", err)
	}
	defer glfw.Terminate()

	// x/mobile/gl links the desktop OpenGL framework on macOS, which has
	// no ES contexts; its default legacy 2.1 context matches instead.
	if runtime.GOOS != "darwin" {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 0)
	}
	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("gldemo: create window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	glctx, worker := gl.NewContext()
	sizes := make(chan gpucontext.NullWindowProvider)
	swap := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- runApp(cfg, glctx, sizes, swap) }()

	next, pending, closing := windowState(win), true, false
	for {
		var send chan<- gpucontext.NullWindowProvider
		if pending {
			send = sizes
		}
		select {
		case send <- next:
			pending = false
		case <-worker.WorkAvailable():
			worker.DoWork()
		case <-swap:
			win.SwapBuffers()
			glfw.PollEvents()
			if win.ShouldClose() && !closing {
				closing = true
				close(sizes)
				continue
			}
			next, pending = windowState(win), !closing
		case err := <-done:
			return err
		}
	}
}

// windowState snapshots the drawable size. glfw reports framebuffer
// pixels directly, so the scale factor stays 1.
func windowState(win *glfw.Window) gpucontext.NullWindowProvider {
	w, h := win.GetFramebufferSize()
	return gpucontext.NullWindowProvider{W: w, H: h, SF: 1}
}

// runApp owns the glkit context. It draws one frame per window state and
// releases the scene once sizes is closed.
func runApp(cfg *config.Config, glctx gl.Context, sizes <-chan gpucontext.NullWindowProvider, swap chan<- struct{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*glkit.ContractError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	ctx := glkit.NewContext(mobile.New(glctx), glkit.WithDebug(cfg.Render.Debug))
	sc, err := newScene(ctx, cfg)
	if err != nil {
		return err
	}
	defer sc.destroy()

	start := time.Now()
	for wp := range sizes {
		ctx.SyncWindow(wp)
		if err := sc.update(); err != nil {
			glkit.Logger().Warn("gldemo: asset failed", "err", err)
		}
		sc.frame(glkit.ScreenTarget(), float32(time.Since(start).Seconds()))
		glctx.Flush()
		swap <- struct{}{}
	}
	return nil
}
