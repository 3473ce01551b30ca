// Package egl hosts a headless OpenGL ES context on Linux.
//
// The EGL context comes from github.com/gogpu/wgpu/hal/gles/egl and is made
// current on a goroutine locked to its OS thread. That goroutine drains the
// golang.org/x/mobile/gl work queue, so the driver returned by Host.Driver
// can be used from any single goroutine:
//
//	h, err := egl.New(egl.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//
//	ctx := glkit.NewContext(h.Driver())
//
// Importing the package registers the "egl" backend.
package egl
