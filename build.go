package obj

import (
	"github.com/gogpu/obj/internal/cache"
	"github.com/gogpu/obj/raw"
)

// compactor writes deduplicated vertices of type V into a vertex buffer.
// Vertex references are identified by a key K made of the raw indices V is
// built from.
type compactor[K comparable, V any, I Index] struct {
	seen     *cache.Cache[K, I]
	vertices []V

	// accepts reports whether polygons of a shape carry what V needs.
	accepts func(raw.Shape) bool
	key     func(raw.VertexRef) K
	vertex  func(K) V
}

func newCompactor[K comparable, V any, I Index](doc *raw.Document, accepts func(raw.Shape) bool, key func(raw.VertexRef) K, vertex func(K) V) *compactor[K, V, I] {
	hint := len(doc.Positions)
	return &compactor[K, V, I]{
		seen:     cache.New[K, I](hint),
		vertices: make([]V, 0, hint),
		accepts:  accepts,
		key:      key,
		vertex:   vertex,
	}
}

// index returns the vertex buffer slot of key, appending a new vertex the
// first time key is seen.
func (c *compactor[K, V, I]) index(key K) (I, error) {
	return c.seen.GetOrCreate(key, func() (I, error) {
		idx, err := toIndex[I](len(c.vertices))
		if err != nil {
			return 0, err
		}
		c.vertices = append(c.vertices, c.vertex(key))
		return idx, nil
	})
}

// triangles builds the triangle list index buffer of all polygons.
func (c *compactor[K, V, I]) triangles(polygons []raw.Polygon) ([]I, error) {
	indices := make([]I, 0, 3*len(polygons))
	for i, poly := range polygons {
		if !c.accepts(poly.Shape) {
			return nil, &BuildError{Element: "polygon", Index: i, Err: ErrInsufficientData}
		}
		if len(poly.Refs) != 3 {
			return nil, &BuildError{Element: "polygon", Index: i, Err: ErrUntriangulatedModel}
		}
		for _, ref := range poly.Refs {
			idx, err := c.index(c.key(ref))
			if err != nil {
				return nil, &BuildError{Element: "polygon", Index: i, Err: err}
			}
			indices = append(indices, idx)
		}
	}
	return indices, nil
}

func (c *compactor[K, V, I]) logStats(layout Layout, indices int) {
	stats := c.seen.Stats()
	Logger().Debug("obj: built buffers",
		"layout", layout,
		"vertices", len(c.vertices),
		"indices", indices,
		"reused", stats.Hits)
}

// BuildPositions builds a position-only model from doc. Polygons of any
// shape are accepted. Besides the triangle list, the model holds a point
// list with one index per point and a line list with two indices per
// segment of every polyline, all sharing one vertex buffer.
func BuildPositions[I Index](doc *raw.Document) (*Model[Position, I], error) {
	c := newCompactor[int, Position, I](doc,
		func(raw.Shape) bool { return true },
		func(ref raw.VertexRef) int { return ref.Position },
		func(p int) Position { return Position{Position: doc.Positions[p].Vec3()} })

	indices, err := c.triangles(doc.Polygons)
	if err != nil {
		return nil, err
	}

	var points []I
	if len(doc.Points) > 0 {
		points = make([]I, 0, len(doc.Points))
	}
	for i, p := range doc.Points {
		idx, err := c.index(p)
		if err != nil {
			return nil, &BuildError{Element: "point", Index: i, Err: err}
		}
		points = append(points, idx)
	}

	var lines []I
	for i, line := range doc.Lines {
		var prev I
		for j, ref := range line.Refs {
			idx, err := c.index(ref.Position)
			if err != nil {
				return nil, &BuildError{Element: "line", Index: i, Err: err}
			}
			if j > 0 {
				lines = append(lines, prev, idx)
			}
			prev = idx
		}
	}

	c.logStats(LayoutPosition, len(indices)+len(points)+len(lines))
	return &Model[Position, I]{
		Name:     doc.Name,
		Vertices: c.vertices,
		Indices:  indices,
		Points:   points,
		Lines:    lines,
	}, nil
}

// BuildVertices builds a model of positions and normals from doc. Every
// polygon must be a triangle with normals (v//vn or v/vt/vn); texture
// coordinates are ignored.
func BuildVertices[I Index](doc *raw.Document) (*Model[Vertex, I], error) {
	c := newCompactor[[2]int, Vertex, I](doc,
		raw.Shape.HasNormal,
		func(ref raw.VertexRef) [2]int { return [2]int{ref.Position, ref.Normal} },
		func(k [2]int) Vertex {
			return Vertex{
				Position: doc.Positions[k[0]].Vec3(),
				Normal:   doc.Normals[k[1]],
			}
		})

	indices, err := c.triangles(doc.Polygons)
	if err != nil {
		return nil, err
	}

	c.logStats(LayoutVertex, len(indices))
	return &Model[Vertex, I]{Name: doc.Name, Vertices: c.vertices, Indices: indices}, nil
}

// BuildTexturedVertices builds a model of positions, normals and texture
// coordinates from doc. Every polygon must be a v/vt/vn triangle.
func BuildTexturedVertices[I Index](doc *raw.Document) (*Model[TexturedVertex, I], error) {
	c := newCompactor[[3]int, TexturedVertex, I](doc,
		func(s raw.Shape) bool { return s == raw.ShapePTN },
		func(ref raw.VertexRef) [3]int { return [3]int{ref.Position, ref.Normal, ref.TexCoord} },
		func(k [3]int) TexturedVertex {
			return TexturedVertex{
				Position: doc.Positions[k[0]].Vec3(),
				Normal:   doc.Normals[k[1]],
				Texture:  doc.TexCoords[k[2]],
			}
		})

	indices, err := c.triangles(doc.Polygons)
	if err != nil {
		return nil, err
	}

	c.logStats(LayoutTexturedVertex, len(indices))
	return &Model[TexturedVertex, I]{Name: doc.Name, Vertices: c.vertices, Indices: indices}, nil
}
