package raw

import (
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/encoding/charmap"
)

func mustParseOBJ(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	return doc
}

func TestParseOBJ_Empty(t *testing.T) {
	doc := mustParseOBJ(t, "")
	if doc.Name != "" {
		t.Errorf("Name = %q, want empty", doc.Name)
	}
	if len(doc.Positions) != 0 || len(doc.Polygons) != 0 {
		t.Errorf("empty source produced %d positions, %d polygons", len(doc.Positions), len(doc.Polygons))
	}
	if len(doc.Groups) != 0 || len(doc.Meshes) != 0 {
		t.Errorf("empty source produced groups %v, meshes %v", doc.Groups, doc.Meshes)
	}
}

func TestParseOBJ_VertexData(t *testing.T) {
	doc := mustParseOBJ(t, `
v 1 2 3
v 1 2 3 0.5
vt 0.25
vt 0.25 0.5
vt 0.25 0.5 0.75
vn 0 0 1
vp 0.5
vp 0.5 0.25
vp 0.5 0.25 0.125
`)

	wantPos := []mgl32.Vec4{{1, 2, 3, 1}, {1, 2, 3, 0.5}}
	if !reflect.DeepEqual(doc.Positions, wantPos) {
		t.Errorf("Positions = %v, want %v", doc.Positions, wantPos)
	}
	wantTex := []mgl32.Vec3{{0.25, 0, 0}, {0.25, 0.5, 0}, {0.25, 0.5, 0.75}}
	if !reflect.DeepEqual(doc.TexCoords, wantTex) {
		t.Errorf("TexCoords = %v, want %v", doc.TexCoords, wantTex)
	}
	wantNorm := []mgl32.Vec3{{0, 0, 1}}
	if !reflect.DeepEqual(doc.Normals, wantNorm) {
		t.Errorf("Normals = %v, want %v", doc.Normals, wantNorm)
	}
	wantParam := []mgl32.Vec3{{0.5, 0, 1}, {0.5, 0.25, 1}, {0.5, 0.25, 0.125}}
	if !reflect.DeepEqual(doc.ParamVertices, wantParam) {
		t.Errorf("ParamVertices = %v, want %v", doc.ParamVertices, wantParam)
	}
}

func TestParseOBJ_Elements(t *testing.T) {
	doc := mustParseOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 1
vn 0 0 1
p 1 2
l 1/1 2/2 3/1
f 1 2 3
f 1/1 2/2 3/1
f 1//1 2//1 3//1 4//1
f 1/2/1 2/1/1 3/2/1
`)

	if want := []Point{0, 1}; !reflect.DeepEqual(doc.Points, want) {
		t.Errorf("Points = %v, want %v", doc.Points, want)
	}

	wantLines := []Line{{Shape: ShapePT, Refs: []VertexRef{
		{Position: 0, TexCoord: 0, Normal: None},
		{Position: 1, TexCoord: 1, Normal: None},
		{Position: 2, TexCoord: 0, Normal: None},
	}}}
	if !reflect.DeepEqual(doc.Lines, wantLines) {
		t.Errorf("Lines = %v, want %v", doc.Lines, wantLines)
	}

	wantShapes := []Shape{ShapeP, ShapePT, ShapePN, ShapePTN}
	if len(doc.Polygons) != len(wantShapes) {
		t.Fatalf("len(Polygons) = %d, want %d", len(doc.Polygons), len(wantShapes))
	}
	for i, want := range wantShapes {
		if got := doc.Polygons[i].Shape; got != want {
			t.Errorf("Polygons[%d].Shape = %v, want %v", i, got, want)
		}
	}
	if got := len(doc.Polygons[2].Refs); got != 4 {
		t.Errorf("len(Polygons[2].Refs) = %d, want 4", got)
	}
	wantPTN := VertexRef{Position: 0, TexCoord: 1, Normal: 0}
	if got := doc.Polygons[3].Refs[0]; got != wantPTN {
		t.Errorf("Polygons[3].Refs[0] = %+v, want %+v", got, wantPTN)
	}
	wantP := VertexRef{Position: 2, TexCoord: None, Normal: None}
	if got := doc.Polygons[0].Refs[2]; got != wantP {
		t.Errorf("Polygons[0].Refs[2] = %+v, want %+v", got, wantP)
	}
}

func TestParseOBJ_NegativeIndices(t *testing.T) {
	doc := mustParseOBJ(t, `
v 0 0 0
v 1 0 0
v 2 0 0
v 3 0 0
v 4 0 0
f -1 -2 -3
`)
	got := make([]int, 0, 3)
	for _, ref := range doc.Polygons[0].Refs {
		got = append(got, ref.Position)
	}
	if want := []int{4, 3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("f -1 -2 -3 resolved to %v, want %v", got, want)
	}
}

func TestParseOBJ_NegativeIndicesAreRelativeToStatement(t *testing.T) {
	doc := mustParseOBJ(t, `
v 0 0 0
v 1 0 0
v 2 0 0
f -3 -2 -1
v 3 0 0
f -3 -2 -1
`)
	first := doc.Polygons[0].Refs[0].Position
	second := doc.Polygons[1].Refs[0].Position
	if first != 0 || second != 1 {
		t.Errorf("first references = (%d, %d), want (0, 1)", first, second)
	}
}

func TestParseOBJ_Groups(t *testing.T) {
	doc := mustParseOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
g A
f 1 2 3
f 1 2 3
f 1 2 3
g B
f 1 2 3
f 1 2 3
g A
f 1 2 3
`)

	want := map[string]Group{
		"A": {Polygons: []Range{{0, 3}, {5, 6}}},
		"B": {Polygons: []Range{{3, 5}}},
	}
	if !reflect.DeepEqual(doc.Groups, want) {
		t.Errorf("Groups = %+v, want %+v", doc.Groups, want)
	}
}

func TestParseOBJ_DefaultGroupAndMesh(t *testing.T) {
	doc := mustParseOBJ(t, `
mtllib a.mtl b.mtl
mtllib c.mtl
v 0 0 0
v 1 0 0
v 1 1 0
f 1 2 3
usemtl red
l 1 2
f 1 2 3
g named
p 1
`)

	wantGroups := map[string]Group{
		"default": {Lines: []Range{{0, 1}}, Polygons: []Range{{0, 2}}},
		"named":   {Points: []Range{{0, 1}}},
	}
	if !reflect.DeepEqual(doc.Groups, wantGroups) {
		t.Errorf("Groups = %+v, want %+v", doc.Groups, wantGroups)
	}

	wantMeshes := map[string]Group{
		"":    {Polygons: []Range{{0, 1}}},
		"red": {Points: []Range{{0, 1}}, Lines: []Range{{0, 1}}, Polygons: []Range{{1, 2}}},
	}
	if !reflect.DeepEqual(doc.Meshes, wantMeshes) {
		t.Errorf("Meshes = %+v, want %+v", doc.Meshes, wantMeshes)
	}

	if want := []string{"a.mtl", "b.mtl", "c.mtl"}; !reflect.DeepEqual(doc.MaterialLibraries, want) {
		t.Errorf("MaterialLibraries = %v, want %v", doc.MaterialLibraries, want)
	}
}

func TestParseOBJ_SmoothingGroups(t *testing.T) {
	doc := mustParseOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
f 1 2 3
s 1
f 1 2 3
s 2
f 1 2 3
s off
f 1 2 3
s 1
f 1 2 3
s 0
`)

	wantSmoothing := map[uint32]Group{
		1: {Polygons: []Range{{1, 2}, {4, 5}}},
		2: {Polygons: []Range{{2, 3}}},
	}
	if !reflect.DeepEqual(doc.SmoothingGroups, wantSmoothing) {
		t.Errorf("SmoothingGroups = %+v, want %+v", doc.SmoothingGroups, wantSmoothing)
	}
}

func TestParseOBJ_MergingGroups(t *testing.T) {
	doc := mustParseOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
mg 7
f 1 2 3
f 1 2 3
mg 0
f 1 2 3
`)
	want := map[uint32]Group{7: {Polygons: []Range{{0, 2}}}}
	if !reflect.DeepEqual(doc.MergingGroups, want) {
		t.Errorf("MergingGroups = %+v, want %+v", doc.MergingGroups, want)
	}
}

func TestParseOBJ_EmptyGroupIsDropped(t *testing.T) {
	doc := mustParseOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
g empty
g full
f 1 2 3
g full
g empty
`)
	if _, ok := doc.Groups["empty"]; ok {
		t.Errorf("group without elements was kept: %+v", doc.Groups)
	}
	if _, ok := doc.Groups["default"]; ok {
		t.Errorf("default group without elements was kept: %+v", doc.Groups)
	}
	if got, want := doc.Groups["full"], (Group{Polygons: []Range{{0, 1}}}); !reflect.DeepEqual(got, want) {
		t.Errorf(`Groups["full"] = %+v, want %+v`, got, want)
	}
}

func TestParseOBJ_Name(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"none", "v 0 0 0\n", ""},
		{"single", "o Cube\n", "Cube"},
		{"words", "o my   cube\n", "my cube"},
		{"last wins", "o first\no second\n", "second"},
		{"cleared", "o first\no\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParseOBJ(t, tt.src)
			if doc.Name != tt.want {
				t.Errorf("Name = %q, want %q", doc.Name, tt.want)
			}
		})
	}
}

func TestParseOBJ_ContinuationMatchesSingleLine(t *testing.T) {
	single := mustParseOBJ(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 3\n")
	split := mustParseOBJ(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 \\\n2 \\\n3 \\\n\n")
	if !reflect.DeepEqual(single, split) {
		t.Errorf("continued statement = %+v, want %+v", split, single)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	const tri = "v 0 0 0\nv 1 0 0\nv 1 1 0\n"
	tests := []struct {
		name    string
		src     string
		want    error
		line    int
		keyword string
	}{
		{"face with two refs", tri + "f 1 2\n", ErrWrongNumberOfArguments, 4, "f"},
		{"mixed shapes", tri + "vt 0 0\nf 1/1 2 3\n", ErrWrongTypeOfArguments, 5, "f"},
		{"line with one ref", tri + "l 1\n", ErrWrongNumberOfArguments, 4, "l"},
		{"line with normals", tri + "vn 0 0 1\nl 1//1 2//1\n", ErrWrongTypeOfArguments, 5, "l"},
		{"point with texcoord", tri + "vt 0 0\np 1/1\n", ErrWrongTypeOfArguments, 5, "p"},
		{"empty point", "p\n", ErrWrongNumberOfArguments, 1, "p"},
		{"zero index", tri + "f 0 1 2\n", ErrIndexOutOfRange, 4, "f"},
		{"index above", tri + "f 1 2 4\n", ErrIndexOutOfRange, 4, "f"},
		{"index below", tri + "f -4 1 2\n", ErrIndexOutOfRange, 4, "f"},
		{"point index", "p -18\n", ErrIndexOutOfRange, 1, "p"},
		{"texcoord index", tri + "vt 0 0\nf 1/2 2/1 3/1\n", ErrIndexOutOfRange, 5, "f"},
		{"too many slashes", tri + "f 1/1/1/1 2 3\n", ErrWrongTypeOfArguments, 4, "f"},
		{"short position", "v 1 2\n", ErrWrongNumberOfArguments, 1, "v"},
		{"long position", "v 1 2 3 4 5\n", ErrWrongNumberOfArguments, 1, "v"},
		{"long texcoord", "vt 1 2 3 4\n", ErrWrongNumberOfArguments, 1, "vt"},
		{"short normal", "vn 0 1\n", ErrWrongNumberOfArguments, 1, "vn"},
		{"empty param vertex", "vp\n", ErrWrongNumberOfArguments, 1, "vp"},
		{"group without name", "g\n", ErrWrongNumberOfArguments, 1, "g"},
		{"group with two names", "g a b\n", ErrWrongNumberOfArguments, 1, "g"},
		{"usemtl without name", "usemtl\n", ErrWrongNumberOfArguments, 1, "usemtl"},
		{"smoothing without id", "s\n", ErrWrongNumberOfArguments, 1, "s"},
		{"huge smoothing id", "s 100000000000\n", ErrTooBigGroupNumber, 1, "s"},
		{"huge merging id", "mg 1000000000000000000\n", ErrTooBigGroupNumber, 1, "mg"},
		{"unknown statement", "foo 1 2\n", ErrUnexpectedStatement, 1, "foo"},
		{"free-form body", "parm u 0 1\n", ErrUnimplemented, 1, "parm"},
		{"render attribute", "\n\nlod 2\n", ErrUnimplemented, 3, "lod"},
		{"curve type", "cstype rat bspline\n", ErrUnimplemented, 1, "cstype"},
		{"bad curve type", "cstype spline\n", ErrWrongTypeOfArguments, 1, "cstype"},
		{"degree", "deg 3 3\n", ErrUnimplemented, 1, "deg"},
		{"bad degree", "deg 1 2 3\n", ErrWrongNumberOfArguments, 1, "deg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseOBJ() error = %v, want %v", err, tt.want)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseOBJ() error = %T, want *ParseError", err)
			}
			if perr.Line != tt.line || perr.Keyword != tt.keyword {
				t.Errorf("ParseError at (%d, %q), want (%d, %q)", perr.Line, perr.Keyword, tt.line, tt.keyword)
			}
		})
	}
}

func TestParseOBJ_NumberErrors(t *testing.T) {
	for _, src := range []string{"v 1 x 3\n", "v 0 0 0\nf 1 1 a\n", "s one\n"} {
		_, err := ParseOBJ(strings.NewReader(src))
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("ParseOBJ(%q) error = %v, want *strconv.NumError", src, err)
		}
	}
}

func TestParseOBJ_MaxGroupNumber(t *testing.T) {
	if _, err := ParseOBJ(strings.NewReader("s 67108864\n")); err != nil {
		t.Errorf("ParseOBJ(s 67108864) error = %v, want nil", err)
	}
	if _, err := ParseOBJ(strings.NewReader("s 67108865\n")); !errors.Is(err, ErrTooBigGroupNumber) {
		t.Errorf("ParseOBJ(s 67108865) error = %v, want %v", err, ErrTooBigGroupNumber)
	}

	_, err := ParseOBJ(strings.NewReader("s 11\n"), WithMaxGroupNumber(10))
	if !errors.Is(err, ErrTooBigGroupNumber) {
		t.Errorf("ParseOBJ(s 11) with max 10 error = %v, want %v", err, ErrTooBigGroupNumber)
	}
}

func TestParseOBJ_BackslashAtEOF(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 0 0 0\nf 1 \\\n"))
	if !errors.Is(err, ErrBackslashAtEOF) {
		t.Errorf("ParseOBJ() error = %v, want %v", err, ErrBackslashAtEOF)
	}
}

func TestParseOBJ_ReadErrorUnchanged(t *testing.T) {
	readErr := errors.New("disk on fire")
	r := io.MultiReader(strings.NewReader("v 0 0 0\n"), iotest.ErrReader(readErr))
	_, err := ParseOBJ(r)
	if err != readErr {
		t.Errorf("ParseOBJ() error = %v, want %v unchanged", err, readErr)
	}
}

func TestParseOBJ_ByteOrderMark(t *testing.T) {
	doc := mustParseOBJ(t, "\ufeffv 1 2 3\n")
	if len(doc.Positions) != 1 {
		t.Errorf("len(Positions) = %d, want 1", len(doc.Positions))
	}
}

func TestParseOBJ_WithEncoding(t *testing.T) {
	// "o Café" in Windows-1252.
	src := []byte("o Caf\xe9\n")
	doc, err := ParseOBJ(strings.NewReader(string(src)), WithEncoding(charmap.Windows1252))
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if doc.Name != "Café" {
		t.Errorf("Name = %q, want %q", doc.Name, "Café")
	}
}

func TestParseOBJ_CommentsAndEscapes(t *testing.T) {
	doc := mustParseOBJ(t, "# header\nv 1 2 3 # trailing\ng part\\#1\nf 1 1 1\n")
	if len(doc.Positions) != 1 {
		t.Errorf("len(Positions) = %d, want 1", len(doc.Positions))
	}
	if _, ok := doc.Groups["part#1"]; !ok {
		t.Errorf("Groups = %v, want key %q", doc.Groups, "part#1")
	}
}
