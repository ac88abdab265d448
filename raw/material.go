package raw

import (
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/obj/internal/lexer"
)

// MaterialLibrary is the content of a parsed .mtl source.
type MaterialLibrary struct {
	// Materials maps "newmtl" names to their properties.
	Materials map[string]Material
}

// Material holds the properties of one "newmtl" block. Nil fields were not
// set by the source.
type Material struct {
	// Ambient is set by "Ka".
	Ambient *Color
	// Diffuse is set by "Kd".
	Diffuse *Color
	// Specular is set by "Ks".
	Specular *Color
	// Emissive is set by "Ke".
	Emissive *Color
	// TransmissionFilter is set by "Tf".
	TransmissionFilter *Color

	// IlluminationModel is set by "illum".
	IlluminationModel *uint32
	// Dissolve is the opacity, set by "d" or by "Tr" as 1 - Tr.
	Dissolve *float32
	// SpecularExponent is set by "Ns".
	SpecularExponent *float32
	// OpticalDensity is the index of refraction, set by "Ni".
	OpticalDensity *float32

	AmbientMap  *TextureMap // map_Ka
	DiffuseMap  *TextureMap // map_Kd
	SpecularMap *TextureMap // map_Ks
	EmissiveMap *TextureMap // map_Ke
	DissolveMap *TextureMap // map_d
	BumpMap     *TextureMap // map_bump, map_Bump, bump
}

// ColorSpace tells how a Color is specified.
type ColorSpace uint8

const (
	// ColorRGB is a color in the RGB color space.
	ColorRGB ColorSpace = iota
	// ColorXYZ is a color in the CIE XYZ color space.
	ColorXYZ
	// ColorSpectral is a color given by a spectral curve file.
	ColorSpectral
)

func (s ColorSpace) String() string {
	switch s {
	case ColorRGB:
		return "RGB"
	case ColorXYZ:
		return "XYZ"
	case ColorSpectral:
		return "Spectral"
	default:
		return "Unknown"
	}
}

// Color is a material color. Value holds the channels for ColorRGB and
// ColorXYZ; File and Multiplier describe a ColorSpectral curve (.rfl file).
type Color struct {
	Space      ColorSpace
	Value      mgl32.Vec3
	File       string
	Multiplier float32
}

// Vec3 returns the color channels. It is the zero vector for spectral
// colors.
func (c Color) Vec3() mgl32.Vec3 { return c.Value }

// RGB returns an RGB color.
func RGB(r, g, b float32) Color { return Color{Space: ColorRGB, Value: mgl32.Vec3{r, g, b}} }

// XYZ returns a CIE XYZ color.
func XYZ(x, y, z float32) Color { return Color{Space: ColorXYZ, Value: mgl32.Vec3{x, y, z}} }

// Spectral returns a color read from a spectral curve file, scaled by
// multiplier.
func Spectral(file string, multiplier float32) Color {
	return Color{Space: ColorSpectral, File: file, Multiplier: multiplier}
}

// ParseMTL parses a Wavefront .mtl source.
//
// Statements before the first "newmtl" are parsed but belong to no
// material and are dropped. Failing statements are reported as *ParseError;
// read errors of r are returned unchanged.
func ParseMTL(r io.Reader, opts ...Option) (*MaterialLibrary, error) {
	o := newOptions(opts)
	p := &mtlParser{materials: make(map[string]Material)}

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
	p.flush()

	Logger().Debug("mtl: parsed material library", "materials", len(p.materials))
	return &MaterialLibrary{Materials: p.materials}, nil
}

// mtlParser accumulates the state of one ParseMTL call.
type mtlParser struct {
	materials map[string]Material

	name  string
	named bool
	cur   Material
}

// flush stores the material being built, if it has a name.
func (p *mtlParser) flush() {
	if p.named {
		p.materials[p.name] = p.cur
	}
	p.cur = Material{}
	p.named = false
}

func (p *mtlParser) statement(keyword string, args []string) error {
	m := &p.cur
	var err error
	switch keyword {
	// Material name statement
	case "newmtl":
		p.flush()
		if len(args) != 1 {
			return errorf(ErrWrongNumberOfArguments, "expected exactly 1 argument, got %d", len(args))
		}
		p.name = args[0]
		p.named = true

	// Material color and illumination statements
	case "Ka":
		m.Ambient, err = parseColor(args)
	case "Kd":
		m.Diffuse, err = parseColor(args)
	case "Ks":
		m.Specular, err = parseColor(args)
	case "Ke":
		m.Emissive, err = parseColor(args)
	case "Tf":
		m.TransmissionFilter, err = parseColor(args)
	case "Ns":
		m.SpecularExponent, err = parseScalar(args)
	case "Ni":
		m.OpticalDensity, err = parseScalar(args)
	case "d":
		m.Dissolve, err = parseScalar(args)
	case "Tr":
		var tr *float32
		if tr, err = parseScalar(args); err == nil {
			d := 1 - *tr
			m.Dissolve = &d
		}
	case "illum":
		if len(args) != 1 {
			return errorf(ErrWrongNumberOfArguments, "expected exactly 1 argument, got %d", len(args))
		}
		v, perr := strconv.ParseUint(args[0], 10, 32)
		if perr != nil {
			return perr
		}
		illum := uint32(v)
		m.IlluminationModel = &illum

	// Texture map statements
	case "map_Ka":
		m.AmbientMap, err = parseTextureMap(args)
	case "map_Kd":
		m.DiffuseMap, err = parseTextureMap(args)
	case "map_Ks":
		m.SpecularMap, err = parseTextureMap(args)
	case "map_Ke":
		m.EmissiveMap, err = parseTextureMap(args)
	case "map_d":
		m.DissolveMap, err = parseTextureMap(args)
	case "map_bump", "map_Bump", "bump":
		m.BumpMap, err = parseTextureMap(args)

	case "Km", "map_aat", "map_refl", "disp", "refl":
		return errorf(ErrUnimplemented, "%s", keyword)

	default:
		return errorf(ErrUnexpectedStatement, "unknown statement %q", keyword)
	}
	return err
}

// parseColor parses the arguments of a color statement:
//
//	r [g b]
//	xyz x [y z]
//	spectral file.rfl [multiplier]
//
// A single channel value is used for all three channels.
func parseColor(args []string) (*Color, error) {
	if len(args) == 0 {
		return nil, errorf(ErrWrongNumberOfArguments, "expected at least 1 argument")
	}

	var c Color
	switch args[0] {
	case "xyz":
		v, err := parseChannels(args[1:])
		if err != nil {
			return nil, err
		}
		c = XYZ(v[0], v[1], v[2])
	case "spectral":
		rest := args[1:]
		switch len(rest) {
		case 1:
			c = Spectral(rest[0], 1)
		case 2:
			mult, err := strconv.ParseFloat(rest[1], 32)
			if err != nil {
				return nil, err
			}
			c = Spectral(rest[0], float32(mult))
		default:
			return nil, errorf(ErrWrongNumberOfArguments, "expected a curve file and an optional multiplier, got %d arguments", len(rest))
		}
	default:
		v, err := parseChannels(args)
		if err != nil {
			return nil, err
		}
		c = RGB(v[0], v[1], v[2])
	}
	return &c, nil
}

// parseChannels parses 1 or 3 color channel values.
func parseChannels(args []string) (mgl32.Vec3, error) {
	v, err := parseFloats(args)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	switch len(v) {
	case 1:
		return mgl32.Vec3{v[0], v[0], v[0]}, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl32.Vec3{}, errorf(ErrWrongNumberOfArguments, "expected 1 or 3 color values, got %d", len(v))
	}
}

func parseScalar(args []string) (*float32, error) {
	if len(args) != 1 {
		return nil, errorf(ErrWrongNumberOfArguments, "expected exactly 1 argument, got %d", len(args))
	}
	v, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return nil, err
	}
	f := float32(v)
	return &f, nil
}
