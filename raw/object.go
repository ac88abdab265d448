package raw

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/obj/internal/lexer"
)

// ParseOBJ parses a Wavefront .obj source.
//
// The source is read to the end unless a statement fails; the first error
// aborts the call and no partial document is returned. Failing statements
// are reported as *ParseError. Read errors of r are returned unchanged.
//
// Opening the file and locating the material libraries it names are left to
// the caller.
func ParseOBJ(r io.Reader, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	p := newObjParser(o)

	lx := lexer.New(o.reader(r))
	for lx.Next() {
		st := lx.Statement()
		if err := p.statement(st.Keyword, st.Args); err != nil {
			return nil, &ParseError{Line: st.Line, Keyword: st.Keyword, Err: err}
		}
	}
	if err := lx.Err(); err != nil {
		return nil, err
	}

	doc := p.finish()
	Logger().Debug("obj: parsed document",
		"name", doc.Name,
		"lines", lx.Line(),
		"positions", len(doc.Positions),
		"texcoords", len(doc.TexCoords),
		"normals", len(doc.Normals),
		"points", len(doc.Points),
		"polylines", len(doc.Lines),
		"polygons", len(doc.Polygons),
		"groups", len(doc.Groups),
		"meshes", len(doc.Meshes))
	return doc, nil
}

// objParser accumulates the state of one ParseOBJ call.
type objParser struct {
	opts options

	name              string
	materialLibraries []string

	positions     []mgl32.Vec4
	texCoords     []mgl32.Vec3
	normals       []mgl32.Vec3
	paramVertices []mgl32.Vec3

	points   []Point
	lines    []Line
	polygons []Polygon

	groups    *groupBuilder[string]
	meshes    *groupBuilder[string]
	smoothing *groupBuilder[uint32]
	merging   *groupBuilder[uint32]
}

func newObjParser(o options) *objParser {
	p := &objParser{opts: o}
	p.groups = newGroupBuilder[string](p.counts)
	p.meshes = newGroupBuilder[string](p.counts)
	p.smoothing = newGroupBuilder[uint32](p.counts)
	p.merging = newGroupBuilder[uint32](p.counts)

	p.groups.start("default")
	p.meshes.start("")
	return p
}

func (p *objParser) counts() counts {
	return counts{points: len(p.points), lines: len(p.lines), polygons: len(p.polygons)}
}

func (p *objParser) lens() arrayLens {
	return arrayLens{positions: len(p.positions), texCoords: len(p.texCoords), normals: len(p.normals)}
}

// unimplemented lists the recognized statements the parser rejects.
var unimplemented = map[string]bool{
	// Free-form curve / surface attributes
	"bmat": true, "step": true,
	// Free-form elements
	"curv": true, "curv2": true, "surf": true,
	// Free-form body statements
	"parm": true, "trim": true, "hole": true, "scrv": true, "sp": true, "end": true,
	// Connectivity between free-form surfaces
	"con": true,
	// Display / render attributes
	"bevel": true, "c_interp": true, "d_interp": true, "lod": true,
	"shadow_obj": true, "trace_obj": true, "ctech": true, "stech": true,
}

func (p *objParser) statement(keyword string, args []string) error {
	switch keyword {
	// Vertex data
	case "v":
		return p.position(args)
	case "vt":
		return p.texCoord(args)
	case "vn":
		return p.normal(args)
	case "vp":
		return p.paramVertex(args)

	// Elements
	case "p":
		return p.point(args)
	case "l":
		return p.line(args)
	case "f", "fo":
		return p.polygon(args)

	// Grouping
	case "g":
		if len(args) != 1 {
			return errorf(ErrWrongNumberOfArguments, "expected a group name, got %d arguments", len(args))
		}
		p.groups.start(args[0])
	case "s":
		return p.numberedGroup(p.smoothing, args)
	case "mg":
		return p.numberedGroup(p.merging, args)
	case "o":
		p.name = strings.Join(args, " ")

	// Render attributes
	case "usemtl":
		if len(args) != 1 {
			return errorf(ErrWrongNumberOfArguments, "expected a material name, got %d arguments", len(args))
		}
		p.meshes.start(args[0])
	case "mtllib":
		p.materialLibraries = append(p.materialLibraries, args...)

	// Free-form curve / surface attributes
	case "cstype":
		return cstype(args)
	case "deg":
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		if len(v) != 1 && len(v) != 2 {
			return errorf(ErrWrongNumberOfArguments, "expected 1 or 2 arguments, got %d", len(v))
		}
		return errorf(ErrUnimplemented, "deg")

	default:
		if unimplemented[keyword] {
			return errorf(ErrUnimplemented, "%s", keyword)
		}
		return errorf(ErrUnexpectedStatement, "unknown statement %q", keyword)
	}
	return nil
}

func (p *objParser) position(args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	switch len(v) {
	case 4:
		p.positions = append(p.positions, mgl32.Vec4{v[0], v[1], v[2], v[3]})
	case 3:
		p.positions = append(p.positions, mgl32.Vec4{v[0], v[1], v[2], 1})
	default:
		return errorf(ErrWrongNumberOfArguments, "expected 3 or 4 arguments, got %d", len(v))
	}
	return nil
}

func (p *objParser) texCoord(args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	switch len(v) {
	case 3:
		p.texCoords = append(p.texCoords, mgl32.Vec3{v[0], v[1], v[2]})
	case 2:
		p.texCoords = append(p.texCoords, mgl32.Vec3{v[0], v[1], 0})
	case 1:
		p.texCoords = append(p.texCoords, mgl32.Vec3{v[0], 0, 0})
	default:
		return errorf(ErrWrongNumberOfArguments, "expected 1, 2 or 3 arguments, got %d", len(v))
	}
	return nil
}

func (p *objParser) normal(args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	if len(v) != 3 {
		return errorf(ErrWrongNumberOfArguments, "expected 3 arguments, got %d", len(v))
	}
	p.normals = append(p.normals, mgl32.Vec3{v[0], v[1], v[2]})
	return nil
}

func (p *objParser) paramVertex(args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	switch len(v) {
	case 3:
		p.paramVertices = append(p.paramVertices, mgl32.Vec3{v[0], v[1], v[2]})
	case 2:
		p.paramVertices = append(p.paramVertices, mgl32.Vec3{v[0], v[1], 1})
	case 1:
		p.paramVertices = append(p.paramVertices, mgl32.Vec3{v[0], 0, 1})
	default:
		return errorf(ErrWrongNumberOfArguments, "expected 1, 2 or 3 arguments, got %d", len(v))
	}
	return nil
}

func (p *objParser) point(args []string) error {
	if len(args) == 0 {
		return errorf(ErrWrongNumberOfArguments, "expected at least 1 argument")
	}
	_, refs, err := parseRefs(args, p.lens(), ShapeP)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		p.points = append(p.points, ref.Position)
	}
	return nil
}

func (p *objParser) line(args []string) error {
	if len(args) < 2 {
		return errorf(ErrWrongNumberOfArguments, "expected at least 2 arguments, got %d", len(args))
	}
	shape, refs, err := parseRefs(args, p.lens(), ShapeP, ShapePT)
	if err != nil {
		return err
	}
	p.lines = append(p.lines, Line{Shape: shape, Refs: refs})
	return nil
}

func (p *objParser) polygon(args []string) error {
	if len(args) < 3 {
		return errorf(ErrWrongNumberOfArguments, "expected at least 3 arguments, got %d", len(args))
	}
	shape, refs, err := parseRefs(args, p.lens(), ShapeP, ShapePT, ShapePN, ShapePTN)
	if err != nil {
		return err
	}
	p.polygons = append(p.polygons, Polygon{Shape: shape, Refs: refs})
	return nil
}

// numberedGroup handles "s" and "mg": "off" or 0 closes the open group,
// any other id opens it.
func (p *objParser) numberedGroup(b *groupBuilder[uint32], args []string) error {
	if len(args) != 1 {
		return errorf(ErrWrongNumberOfArguments, "expected 1 argument, got %d", len(args))
	}
	if args[0] == "off" {
		b.end()
		return nil
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return err
	}
	if id == 0 {
		b.end()
		return nil
	}
	if id > p.opts.maxGroupNumber {
		return errorf(ErrTooBigGroupNumber, "%d exceeds %d", id, p.opts.maxGroupNumber)
	}
	b.start(uint32(id))
	return nil
}

func cstype(args []string) error {
	var kind string
	switch {
	case len(args) == 2 && args[0] == "rat":
		kind = args[1]
	case len(args) == 1:
		kind = args[0]
	default:
		return errorf(ErrWrongTypeOfArguments, "expected 'rat <type>' or '<type>'")
	}
	switch kind {
	case "bmatrix", "bezier", "bspline", "cardinal", "taylor":
		return errorf(ErrUnimplemented, "cstype %s", kind)
	default:
		return errorf(ErrWrongTypeOfArguments, "expected one of bmatrix, bezier, bspline, cardinal and taylor, got %q", kind)
	}
}

// finish closes every open group and assembles the document.
func (p *objParser) finish() *Document {
	p.groups.end()
	p.meshes.end()
	p.smoothing.end()
	p.merging.end()

	return &Document{
		Name:              p.name,
		MaterialLibraries: p.materialLibraries,

		Positions:     p.positions,
		TexCoords:     p.texCoords,
		Normals:       p.normals,
		ParamVertices: p.paramVertices,

		Points:   p.points,
		Lines:    p.lines,
		Polygons: p.polygons,

		Groups:          p.groups.result(),
		Meshes:          p.meshes.result(),
		SmoothingGroups: p.smoothing.result(),
		MergingGroups:   p.merging.result(),
	}
}

// parseFloats parses every argument as a 32-bit float.
func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}
