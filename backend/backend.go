package backend

import (
	"errors"

	"github.com/gogpu/glkit/driver"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendEGL is the headless EGL context driven through x/mobile/gl.
	BackendEGL = "egl"
	// BackendWebGL is the browser WebGL context (js/wasm only).
	BackendWebGL = "webgl"
	// BackendRecord is the CPU-only recording driver. It is always available.
	BackendRecord = "record"
)

// Backend owns a GL context and hands out the driver.Driver bound to it.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "egl", "webgl").
	Name() string

	// Init acquires the context. It must be called before Driver.
	Init() error

	// Driver returns the driver for the context, or nil before Init.
	Driver() driver.Driver

	// Close releases the context.
	// The backend and its driver should not be used after Close is called.
	Close()
}
