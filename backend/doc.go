// Package backend provides a registry of GL context providers.
//
// A backend owns a GL context and exposes it as a driver.Driver that
// glkit.NewContext can wrap. Backends register themselves from init()
// functions and are selected at runtime.
//
// # Backend Registration
//
// The record backend is registered on import. Context-owning backends
// register when their package is imported:
//
//	import _ "github.com/gogpu/glkit/host/egl"
//
// # Backend Selection
//
// Use InitDefault() to initialize the best available backend, or Open()
// to request a specific backend by name:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	ctx := glkit.NewContext(b.Driver())
//
// # Available Backends
//
// - "egl": headless EGL context on Linux (host/egl)
// - "webgl": browser WebGL context (backend/webgl, js/wasm)
// - "record": CPU-only recording driver (always available)
package backend
