package glkit

import (
	"errors"
	"fmt"
	"log/slog"
)

// Contract violations. glkit panics with a *ContractError wrapping one of
// these; recover and test with errors.Is.
var (
	// ErrOutOfBounds is raised when a write or draw exceeds a buffer.
	ErrOutOfBounds = errors.New("glkit: out of bounds")

	// ErrNotPowerOfTwo is raised for texture and framebuffer sizes that are not a power of two.
	ErrNotPowerOfTwo = errors.New("glkit: size is not a power of two")

	// ErrDataLength is raised when texture data does not match size and channel.
	ErrDataLength = errors.New("glkit: texture data length mismatch")

	// ErrShaderCompile is raised when a shader stage fails to compile.
	ErrShaderCompile = errors.New("glkit: shader compilation failed")

	// ErrShaderLink is raised when a program fails to link.
	ErrShaderLink = errors.New("glkit: program link failed")

	// ErrUnknownUniform is raised when a uniform name is not active in the program.
	ErrUnknownUniform = errors.New("glkit: unknown uniform")

	// ErrUniformType is raised when a uniform's GLSL type does not match the key type.
	ErrUniformType = errors.New("glkit: uniform type mismatch")

	// ErrForeignUniformKey is raised when a key is used with a pipeline of another shader.
	ErrForeignUniformKey = errors.New("glkit: uniform key belongs to another shader")

	// ErrCreateFailed is raised when the driver fails to create an object.
	ErrCreateFailed = errors.New("glkit: driver object creation failed")

	// ErrIncompleteFramebuffer is raised when a new framebuffer is not complete.
	ErrIncompleteFramebuffer = errors.New("glkit: framebuffer incomplete")

	// ErrPassEnded is raised when a pipeline is opened on an ended render pass.
	ErrPassEnded = errors.New("glkit: render pass has already ended")

	// ErrPassActive is raised when a render pass is opened while another is recording.
	ErrPassActive = errors.New("glkit: render pass already active")

	// ErrPipelineActive is raised when a pipeline is opened while another is bound.
	ErrPipelineActive = errors.New("glkit: pipeline already active")

	// ErrPipelineEnded is raised when an ended pipeline is used.
	ErrPipelineEnded = errors.New("glkit: pipeline has already ended")

	// ErrTextureUnitsExhausted is raised when all texture units are locked.
	ErrTextureUnitsExhausted = errors.New("glkit: all texture units are locked")

	// ErrResourceDestroyed is raised when a destroyed resource is used.
	ErrResourceDestroyed = errors.New("glkit: resource destroyed")

	// ErrLayoutSize is raised when a vertex layout does not describe the vertex type.
	ErrLayoutSize = errors.New("glkit: vertex layout size mismatch")

	// ErrUnsupportedFormat is raised for vertex formats glkit cannot upload.
	ErrUnsupportedFormat = errors.New("glkit: unsupported vertex format")
)

// ContractError is the panic value for a violated API contract.
type ContractError struct {
	Op  string
	Err error
	Msg string
}

func (e *ContractError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Msg)
}

func (e *ContractError) Unwrap() error { return e.Err }

// violate logs and panics with a *ContractError.
func violate(log *slog.Logger, op string, err error, format string, args ...any) {
	ce := &ContractError{Op: op, Err: err}
	if format != "" {
		ce.Msg = fmt.Sprintf(format, args...)
	}
	log.Error("glkit: contract violation", "op", op, "err", ce.Error())
	panic(ce)
}

// violateErr panics with a *ContractError wrapping an already built error.
func violateErr(log *slog.Logger, op string, err error) {
	ce := &ContractError{Op: op, Err: err}
	log.Error("glkit: contract violation", "op", op, "err", ce.Error())
	panic(ce)
}
