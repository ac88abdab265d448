// Package raw parses Wavefront OBJ (.obj) and MTL (.mtl) sources into plain
// data, without any processing for rendering.
//
// ParseOBJ returns a Document: the vertex attribute arrays, the point, line
// and polygon elements with 0-based indices into those arrays, and four
// independent groupings of the elements (object groups, material meshes,
// smoothing groups and merging groups) stored as ranges over the element
// lists.
//
// ParseMTL returns a MaterialLibrary mapping material names to their colors,
// scalar properties and texture maps.
//
// Both parsers read the source once, front to back, and fail on the first
// malformed statement. Statements describing free-form geometry and other
// unsupported features are recognized and rejected with ErrUnimplemented.
// Unknown statements fail with ErrUnexpectedStatement.
//
// Loading a Document into vertex and index buffers is done by the parent
// package, github.com/gogpu/obj.
package raw
