package obj

import (
	"io"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/obj/raw"
)

// Model is a render-ready mesh: a deduplicated vertex buffer and index
// buffers into it. Every index is below len(Vertices).
type Model[V VertexType, I Index] struct {
	// Name is the object name of the source, empty when it has none.
	Name string
	// Vertices holds one record per distinct vertex reference.
	Vertices []V
	// Indices is a triangle list, three indices per face.
	Indices []I

	// Points and Lines are only filled for Position models: a point list
	// and a line list built from the source's "p" and "l" elements.
	Points []I
	Lines  []I
}

// IndexBuffer is an index buffer together with the primitive topology it
// is drawn with.
type IndexBuffer[I Index] struct {
	Topology gputypes.PrimitiveTopology
	Indices  []I
}

// Layout returns the vertex layout of the model.
func (m *Model[V, I]) Layout() Layout { return LayoutOf[V]() }

// BufferLayout returns the GPU vertex buffer layout of Vertices.
func (m *Model[V, I]) BufferLayout() gputypes.VertexBufferLayout {
	return m.Layout().BufferLayout()
}

// IndexFormat returns the GPU index format of the index buffers.
func (m *Model[V, I]) IndexFormat() gputypes.IndexFormat { return IndexFormatOf[I]() }

// Topology returns the primitive topology of Indices.
func (m *Model[V, I]) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}

// IndexBuffers returns the non-empty index buffers of the model: triangles,
// then points, then lines.
func (m *Model[V, I]) IndexBuffers() []IndexBuffer[I] {
	var out []IndexBuffer[I]
	if len(m.Indices) > 0 {
		out = append(out, IndexBuffer[I]{Topology: m.Topology(), Indices: m.Indices})
	}
	if len(m.Points) > 0 {
		out = append(out, IndexBuffer[I]{Topology: gputypes.PrimitiveTopologyPointList, Indices: m.Points})
	}
	if len(m.Lines) > 0 {
		out = append(out, IndexBuffer[I]{Topology: gputypes.PrimitiveTopologyLineList, Indices: m.Lines})
	}
	return out
}

// New builds a model with vertex type V and index type I from doc.
// It calls BuildPositions, BuildVertices or BuildTexturedVertices.
func New[V VertexType, I Index](doc *raw.Document) (*Model[V, I], error) {
	var m any
	var err error
	switch LayoutOf[V]() {
	case LayoutVertex:
		m, err = BuildVertices[I](doc)
	case LayoutTexturedVertex:
		m, err = BuildTexturedVertices[I](doc)
	default:
		m, err = BuildPositions[I](doc)
	}
	if err != nil {
		return nil, err
	}
	return m.(*Model[V, I]), nil
}

// Load parses an .obj source and builds a model from it.
//
// Example:
//
//	f, err := os.Open("cube.obj")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	model, err := obj.Load[obj.TexturedVertex, uint16](bufio.NewReader(f))
func Load[V VertexType, I Index](r io.Reader, opts ...raw.Option) (*Model[V, I], error) {
	doc, err := raw.ParseOBJ(r, opts...)
	if err != nil {
		return nil, err
	}
	return New[V, I](doc)
}
