package glkit

import "fmt"

// Stats contains live GL object counts and the bytes they were sized
// with at creation.
type Stats struct {
	// Buffers is the number of live vertex and index buffers.
	Buffers int

	// BufferBytes is the total size of live buffers.
	BufferBytes uint64

	// Textures is the number of live textures, framebuffer color
	// attachments included.
	Textures int

	// TextureBytes is the total size of live textures, mipmaps excluded.
	TextureBytes uint64

	// Framebuffers is the number of live framebuffers.
	Framebuffers int

	// Shaders is the number of live linked programs.
	Shaders int

	// DrawCalls is the number of draws issued since the Context was created.
	DrawCalls uint64
}

// String returns a human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("Resources[%d buffers %d KB, %d textures %d KB, %d framebuffers, %d shaders, %d draws]",
		s.Buffers, s.BufferBytes/1024,
		s.Textures, s.TextureBytes/1024,
		s.Framebuffers, s.Shaders, s.DrawCalls)
}

// stats is the mutable counter set shared through the device.
type stats struct {
	s Stats
}

func (st *stats) snapshot() Stats { return st.s }

func (st *stats) addBuffer(bytes int) {
	st.s.Buffers++
	st.s.BufferBytes += uint64(bytes) //nolint:gosec // G115: sizes are non-negative
}

func (st *stats) removeBuffer(bytes int) {
	st.s.Buffers--
	st.s.BufferBytes -= uint64(bytes) //nolint:gosec // G115: sizes are non-negative
}

func (st *stats) addTexture(bytes int) {
	st.s.Textures++
	st.s.TextureBytes += uint64(bytes) //nolint:gosec // G115: sizes are non-negative
}

func (st *stats) removeTexture(bytes int) {
	st.s.Textures--
	st.s.TextureBytes -= uint64(bytes) //nolint:gosec // G115: sizes are non-negative
}
