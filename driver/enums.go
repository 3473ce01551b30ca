package driver

// Enum is a GL enumerant.
type Enum uint32

// GL constants used by glkit. Values follow the Khronos registry so
// backends can pass them through unchanged.
const (
	ACTIVE_ATTRIBUTES    Enum = 0x8b89
	ACTIVE_UNIFORMS      Enum = 0x8b86
	ALPHA                Enum = 0x1906
	ARRAY_BUFFER         Enum = 0x8892
	BACK                 Enum = 0x0405
	BLEND                Enum = 0x0be2
	BOOL                 Enum = 0x8b56
	CLAMP_TO_EDGE        Enum = 0x812f
	COLOR_ATTACHMENT0    Enum = 0x8ce0
	COLOR_BUFFER_BIT     Enum = 0x4000
	COMPILE_STATUS       Enum = 0x8b81
	CULL_FACE            Enum = 0x0b44
	DEPTH_ATTACHMENT     Enum = 0x8d00
	DEPTH_BUFFER_BIT     Enum = 0x0100
	DEPTH_COMPONENT16    Enum = 0x81a5
	DEPTH_TEST           Enum = 0x0b71
	DYNAMIC_DRAW         Enum = 0x88e8
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	FALSE                Enum = 0
	FLOAT                Enum = 0x1406
	FLOAT_MAT2           Enum = 0x8b5a
	FLOAT_MAT3           Enum = 0x8b5b
	FLOAT_MAT4           Enum = 0x8b5c
	FLOAT_VEC2           Enum = 0x8b50
	FLOAT_VEC3           Enum = 0x8b51
	FLOAT_VEC4           Enum = 0x8b52
	FRAGMENT_SHADER      Enum = 0x8b30
	FRAMEBUFFER          Enum = 0x8d40
	FRAMEBUFFER_COMPLETE Enum = 0x8cd5
	FRAMEBUFFER_SRGB     Enum = 0x8db9
	FUNC_ADD             Enum = 0x8006
	INT                  Enum = 0x1404
	INT_VEC2             Enum = 0x8b53
	INT_VEC3             Enum = 0x8b54
	INT_VEC4             Enum = 0x8b55
	LEQUAL               Enum = 0x0203
	LINEAR               Enum = 0x2601
	LINEAR_MIPMAP_LINEAR Enum = 0x2703
	LINES                Enum = 0x0001
	LINE_STRIP           Enum = 0x0003
	LINK_STATUS          Enum = 0x8b82
	MIRRORED_REPEAT      Enum = 0x8370
	NEAREST              Enum = 0x2600
	ONE_MINUS_SRC_ALPHA  Enum = 0x0303
	POINTS               Enum = 0x0000
	RENDERBUFFER         Enum = 0x8d41
	REPEAT               Enum = 0x2901
	RGB                  Enum = 0x1907
	RGBA                 Enum = 0x1908
	SAMPLER_2D           Enum = 0x8b5e
	SRC_ALPHA            Enum = 0x0302
	STATIC_DRAW          Enum = 0x88e4
	STREAM_DRAW          Enum = 0x88e0
	TEXTURE0             Enum = 0x84c0
	TEXTURE_2D           Enum = 0x0de1
	TEXTURE_MAG_FILTER   Enum = 0x2800
	TEXTURE_MIN_FILTER   Enum = 0x2801
	TEXTURE_WRAP_S       Enum = 0x2802
	TEXTURE_WRAP_T       Enum = 0x2803
	TRIANGLES            Enum = 0x0004
	TRIANGLE_STRIP       Enum = 0x0005
	UNPACK_ALIGNMENT     Enum = 0x0cf5
	UNSIGNED_BYTE        Enum = 0x1401
	UNSIGNED_INT         Enum = 0x1405
	UNSIGNED_INT_VEC2    Enum = 0x8dc6
	UNSIGNED_INT_VEC3    Enum = 0x8dc7
	UNSIGNED_INT_VEC4    Enum = 0x8dc8
	UNSIGNED_SHORT       Enum = 0x1403
	VERTEX_SHADER        Enum = 0x8b31
)
