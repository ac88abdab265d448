package obj

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// Position is a vertex with a position only.
type Position struct {
	Position mgl32.Vec3
}

// Vertex is a vertex with a position and a normal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// TexturedVertex is a vertex with a position, a normal and a texture
// coordinate (u, v, w).
type TexturedVertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Texture  mgl32.Vec3
}

// VertexType is the set of vertex records a Model can hold.
type VertexType interface {
	Position | Vertex | TexturedVertex
}

// Layout identifies a vertex type.
type Layout uint8

const (
	// LayoutPosition is the layout of Position.
	LayoutPosition Layout = iota
	// LayoutVertex is the layout of Vertex.
	LayoutVertex
	// LayoutTexturedVertex is the layout of TexturedVertex.
	LayoutTexturedVertex
)

// LayoutOf returns the layout of V.
func LayoutOf[V VertexType]() Layout {
	var zero V
	switch any(zero).(type) {
	case Vertex:
		return LayoutVertex
	case TexturedVertex:
		return LayoutTexturedVertex
	default:
		return LayoutPosition
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutPosition:
		return "Position"
	case LayoutVertex:
		return "Vertex"
	case LayoutTexturedVertex:
		return "TexturedVertex"
	default:
		return "Unknown"
	}
}

// Vertex strides in bytes.
const (
	positionStride       = 12 // position
	vertexStride         = 24 // position + normal
	texturedVertexStride = 36 // position + normal + texture
)

// BufferLayout describes how vertices of this layout sit in a GPU vertex
// buffer.
func (l Layout) BufferLayout() gputypes.VertexBufferLayout {
	switch l {
	case LayoutVertex:
		return gputypes.VertexBufferLayout{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
			},
		}
	case LayoutTexturedVertex:
		return gputypes.VertexBufferLayout{
			ArrayStride: texturedVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
				{Format: gputypes.VertexFormatFloat32x3, Offset: 24, ShaderLocation: 2}, // texture
			},
		}
	default:
		return gputypes.VertexBufferLayout{
			ArrayStride: positionStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
			},
		}
	}
}
