package scene

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/trirast"
)

// Color is a color field of a scene file. Set reports whether the field was
// present.
type Color struct {
	trirast.Color
	Set bool
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts a hex string, an
// SVG color name such as "steelblue", a list of 3 or 4 components, or an
// {h, s, l} mapping with the hue in degrees.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if parsed, ok := trirast.ParseHex(s); ok {
			c.Color, c.Set = parsed, true
			return nil
		}
		if named, ok := colornames.Map[strings.ToLower(s)]; ok {
			c.Color, c.Set = trirast.FromColor(named), true
			return nil
		}
		return fmt.Errorf("%w: %q (line %d)", ErrBadColor, s, value.Line)

	case yaml.SequenceNode:
		var v []float32
		if err := value.Decode(&v); err != nil {
			return err
		}
		switch len(v) {
		case 3:
			c.Color = trirast.RGB(v[0], v[1], v[2])
		case 4:
			c.Color = trirast.Color{R: v[0], G: v[1], B: v[2], A: v[3]}
		default:
			return fmt.Errorf("%w: %d components (line %d)", ErrBadColor, len(v), value.Line)
		}
		c.Set = true
		return nil

	case yaml.MappingNode:
		var hsl map[string]float32
		if err := value.Decode(&hsl); err != nil {
			return err
		}
		h, okH := hsl["h"]
		sat, okS := hsl["s"]
		l, okL := hsl["l"]
		if !okH || !okS || !okL || len(hsl) != 3 {
			return fmt.Errorf("%w: mapping needs exactly h, s and l (line %d)", ErrBadColor, value.Line)
		}
		c.Color, c.Set = trirast.HSL(h, sat, l), true
		return nil

	default:
		return fmt.Errorf("%w: unexpected YAML node (line %d)", ErrBadColor, value.Line)
	}
}

// MarshalYAML implements yaml.Marshaler, writing the color as a list.
func (c Color) MarshalYAML() (any, error) {
	if !c.Set {
		return nil, nil
	}
	return []float32{c.R, c.G, c.B, c.A}, nil
}

// IsZero reports an unset color, so omitempty drops it.
func (c Color) IsZero() bool {
	return !c.Set
}
