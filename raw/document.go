package raw

import "github.com/go-gl/mathgl/mgl32"

// Document is the content of a parsed .obj source.
//
// All element indices are 0-based and have been checked against the array
// they reference.
type Document struct {
	// Name is set by the last "o" statement; empty when there is none.
	Name string
	// MaterialLibraries lists the .mtl files named by "mtllib", in order.
	MaterialLibraries []string

	// Positions holds "v" data as (x, y, z, w); w defaults to 1.
	Positions []mgl32.Vec4
	// TexCoords holds "vt" data as (u, v, w); v and w default to 0.
	TexCoords []mgl32.Vec3
	// Normals holds "vn" data.
	Normals []mgl32.Vec3
	// ParamVertices holds "vp" data as (u, v, w); v defaults to 0, w to 1.
	ParamVertices []mgl32.Vec3

	// Points holds one position index per point of a "p" statement.
	Points []Point
	// Lines holds one entry per "l" statement.
	Lines []Line
	// Polygons holds one entry per "f" or "fo" statement.
	Polygons []Polygon

	// Groups maps "g" names to the elements they contain. Elements before
	// the first "g" belong to "default".
	Groups map[string]Group
	// Meshes maps "usemtl" material names to the elements drawn with them.
	// Elements before the first "usemtl" belong to "".
	Meshes map[string]Group
	// SmoothingGroups maps "s" ids to their elements.
	SmoothingGroups map[uint32]Group
	// MergingGroups maps "mg" ids to their elements.
	MergingGroups map[uint32]Group
}

// Point is the position index of a point element.
type Point = int

// Shape tells which attributes the vertex references of an element carry.
type Shape uint8

const (
	// ShapeP references a position only: "v".
	ShapeP Shape = iota
	// ShapePT references a position and a texture coordinate: "v/vt".
	ShapePT
	// ShapePN references a position and a normal: "v//vn".
	ShapePN
	// ShapePTN references all three: "v/vt/vn".
	ShapePTN
)

func (s Shape) String() string {
	switch s {
	case ShapeP:
		return "P"
	case ShapePT:
		return "PT"
	case ShapePN:
		return "PN"
	case ShapePTN:
		return "PTN"
	default:
		return "Unknown"
	}
}

// HasTexCoord reports whether references of this shape carry a texture
// coordinate index.
func (s Shape) HasTexCoord() bool { return s == ShapePT || s == ShapePTN }

// HasNormal reports whether references of this shape carry a normal index.
func (s Shape) HasNormal() bool { return s == ShapePN || s == ShapePTN }

// None marks an attribute index a reference does not carry.
const None = -1

// VertexRef is one vertex reference of an element. TexCoord and Normal are
// None when the element's shape does not include them.
type VertexRef struct {
	Position int
	TexCoord int
	Normal   int
}

// Polygon is a face. All its references share Shape.
type Polygon struct {
	Shape Shape
	Refs  []VertexRef
}

// Line is a polyline. Its Shape is ShapeP or ShapePT.
type Line struct {
	Shape Shape
	Refs  []VertexRef
}

// Range is the half-open interval [Start, End) over an element list.
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements in the range.
func (r Range) Len() int { return r.End - r.Start }

// Group holds the element ranges belonging to one group, mesh, smoothing
// group or merging group. Ranges are increasing, non-overlapping and never
// empty.
type Group struct {
	Points   []Range
	Lines    []Range
	Polygons []Range
}
