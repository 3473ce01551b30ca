// Package webgl implements driver.Driver over a browser WebGL context.
//
// WebGL objects are JavaScript values, so the driver keeps a table from
// the integer handles glkit passes around to the objects they name.
// Handle 0 always maps to null, which unbinds.
package webgl
