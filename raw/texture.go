package raw

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/cases"
)

// TextureMap is a texture map statement of a material: the image file and
// the options applied to it.
type TextureMap struct {
	// File is the image file name as written in the source.
	File string

	// BumpMultiplier scales bump map values (-bm).
	BumpMultiplier float32
	// OriginOffset shifts the texture origin (-o).
	OriginOffset mgl32.Vec3
	// Scale scales the texture (-s).
	Scale mgl32.Vec3
	// Turbulence applies noise to the lookup (-t).
	Turbulence mgl32.Vec3
	// Resolution is the resolution of a generated texture (-texres).
	Resolution uint32
	// Clamp restricts texture coordinates to [0, 1] (-clamp).
	Clamp bool
	// BaseGain is the base value and gain applied to the texture
	// values (-mm).
	BaseGain mgl32.Vec2
	// BlendU and BlendV enable horizontal and vertical texture
	// blending (-blendu, -blendv).
	BlendU bool
	BlendV bool
}

// DefaultTextureMap returns a map for file with every option at its
// default value.
func DefaultTextureMap(file string) TextureMap {
	return TextureMap{
		File:           file,
		BumpMultiplier: 1,
		Scale:          mgl32.Vec3{1, 1, 1},
		Resolution:     1,
		BaseGain:       mgl32.Vec2{0, 1},
	}
}

// parseTextureMap parses the arguments of a map statement. The last
// argument is the file name; the ones before it are options. Unknown
// options are skipped.
func parseTextureMap(args []string) (*TextureMap, error) {
	if len(args) == 0 {
		return nil, errorf(ErrWrongNumberOfArguments, "expected a file name")
	}
	m := DefaultTextureMap(args[len(args)-1])

	opts := args[:len(args)-1]
	for len(opts) > 0 {
		name := opts[0]
		opts = opts[1:]

		var err error
		switch name {
		case "-bm":
			var v []float32
			if v, opts, err = takeFloats(name, opts, 1); err == nil {
				m.BumpMultiplier = v[0]
			}
		case "-o":
			m.OriginOffset, opts, err = takeVec3(name, opts)
		case "-s":
			m.Scale, opts, err = takeVec3(name, opts)
		case "-t":
			m.Turbulence, opts, err = takeVec3(name, opts)
		case "-texres":
			if len(opts) < 1 {
				return nil, errorf(ErrWrongNumberOfArguments, "option %s expects a value", name)
			}
			v, perr := strconv.ParseUint(opts[0], 10, 32)
			if perr != nil {
				return nil, perr
			}
			m.Resolution = uint32(v)
			opts = opts[1:]
		case "-clamp":
			m.Clamp, opts, err = takeFlag(name, opts)
		case "-blendu":
			m.BlendU, opts, err = takeFlag(name, opts)
		case "-blendv":
			m.BlendV, opts, err = takeFlag(name, opts)
		case "-mm":
			var v []float32
			if v, opts, err = takeFloats(name, opts, 2); err == nil {
				m.BaseGain = mgl32.Vec2{v[0], v[1]}
			}
		default:
			Logger().Debug("mtl: skipping texture map option", "option", name, "file", m.File)
		}
		if err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// takeFloats consumes n float values of option name.
func takeFloats(name string, opts []string, n int) ([]float32, []string, error) {
	if len(opts) < n {
		return nil, opts, errorf(ErrWrongNumberOfArguments, "option %s expects %d values, got %d", name, n, len(opts))
	}
	v, err := parseFloats(opts[:n])
	if err != nil {
		return nil, opts, err
	}
	return v, opts[n:], nil
}

func takeVec3(name string, opts []string) (mgl32.Vec3, []string, error) {
	v, rest, err := takeFloats(name, opts, 3)
	if err != nil {
		return mgl32.Vec3{}, rest, err
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, rest, nil
}

// takeFlag consumes the on/off value of option name. "on" and "true" in any
// case are true, every other value is false.
func takeFlag(name string, opts []string) (bool, []string, error) {
	if len(opts) < 1 {
		return false, opts, errorf(ErrWrongNumberOfArguments, "option %s expects on or off", name)
	}
	switch cases.Fold().String(opts[0]) {
	case "on", "true":
		return true, opts[1:], nil
	default:
		return false, opts[1:], nil
	}
}
