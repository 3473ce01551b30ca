package drivertest

import (
	"strconv"
	"strings"

	"github.com/gogpu/glkit/driver"
)

type decl struct {
	uniform bool
	ty      driver.Enum
	name    string
	array   int
}

var glslTypes = map[string]driver.Enum{
	"float":     driver.FLOAT,
	"vec2":      driver.FLOAT_VEC2,
	"vec3":      driver.FLOAT_VEC3,
	"vec4":      driver.FLOAT_VEC4,
	"int":       driver.INT,
	"ivec2":     driver.INT_VEC2,
	"ivec3":     driver.INT_VEC3,
	"ivec4":     driver.INT_VEC4,
	"uint":      driver.UNSIGNED_INT,
	"uvec2":     driver.UNSIGNED_INT_VEC2,
	"uvec3":     driver.UNSIGNED_INT_VEC3,
	"uvec4":     driver.UNSIGNED_INT_VEC4,
	"bool":      driver.BOOL,
	"mat2":      driver.FLOAT_MAT2,
	"mat3":      driver.FLOAT_MAT3,
	"mat4":      driver.FLOAT_MAT4,
	"sampler2D": driver.SAMPLER_2D,
}

// scan finds "attribute T name;", "in T name;" and "uniform T name;"
// declarations, one per statement. Precision qualifiers are skipped.
func scan(src string) []decl {
	var out []decl
	for _, stmt := range strings.Split(src, ";") {
		if i := strings.LastIndex(stmt, "\n"); i >= 0 {
			stmt = stmt[i+1:]
		}
		fields := strings.Fields(stmt)
		if len(fields) < 3 {
			continue
		}
		var d decl
		switch fields[0] {
		case "uniform":
			d.uniform = true
		case "attribute", "in":
		default:
			continue
		}
		fields = fields[1:]
		for len(fields) > 2 && isPrecision(fields[0]) {
			fields = fields[1:]
		}
		ty, ok := glslTypes[fields[0]]
		if !ok {
			continue
		}
		d.ty = ty
		d.name = fields[1]
		if i := strings.IndexByte(d.name, '['); i > 0 {
			n, err := strconv.Atoi(strings.TrimSuffix(d.name[i+1:], "]"))
			if err == nil {
				d.array = n
			}
			d.name = d.name[:i]
		}
		out = append(out, d)
	}
	return out
}

func isPrecision(s string) bool {
	return s == "lowp" || s == "mediump" || s == "highp"
}
