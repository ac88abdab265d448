// Package obj loads Wavefront .obj models into GPU-ready vertex and index
// buffers.
//
// # Overview
//
// Parsing and building are two steps. Package raw turns a source into a
// [raw.Document]: attribute arrays, element lists and the element ranges of
// groups, materials, smoothing groups and merging groups. This package turns
// a document into a [Model] whose vertex buffer holds every distinct vertex
// reference once.
//
// # Quick Start
//
//	import "github.com/gogpu/obj"
//
//	model, err := obj.Load[obj.Vertex, uint16](bufio.NewReader(f))
//	if err != nil {
//		return err
//	}
//	layout := model.BufferLayout()   // gputypes.VertexBufferLayout
//	format := model.IndexFormat()    // gputypes.IndexFormatUint16
//
// # Vertex Types
//
//   - [Position]: any face shape, plus point and line buffers
//   - [Vertex]: faces with normals (v//vn or v/vt/vn)
//   - [TexturedVertex]: faces with texture coordinates and normals (v/vt/vn)
//
// Faces must be triangles. The index type is any unsigned integer type; an
// index that does not fit fails with [ErrIndexOutOfRange].
//
// # Materials
//
// Material libraries named by a document are parsed separately with
// [raw.ParseMTL]. Opening files is left to the caller.
package obj
