package pointplot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Style maps aesthetics like "color" or "shape" to fixed values.
//
// The following formats are used:
//
//	"size"      "5"       point radius or line width in points
//	"shape"     "circle"  see String2PointShape
//	"linetype"  "dashed"  see String2LineType
//	"color"     "red"     see String2Color
//	"alpha"     "0.5"     opacity in [0,1]
type Style map[string]string

// MergeStyles merges the set values of all styles. Earlier styles take
// precedence over later ones.
func MergeStyles(styles ...Style) Style {
	merged := make(Style)
	for i := len(styles) - 1; i >= 0; i-- {
		for aes, v := range styles[i] {
			if v == "" {
				continue
			}
			merged[aes] = v
		}
	}
	return merged
}

func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return (low + high) / 2
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha returns c with its opacity replaced by a.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(a * 0xff))
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	CrossPoint
	PlusPoint
)

func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(PlusPoint) + 1))
	}
	switch s {
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "diamond":
		return DiamondPoint
	case "delta":
		return DeltaPoint
	case "nabla":
		return NablaPoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	case "cross":
		return CrossPoint
	case "plus":
		return PlusPoint
	}
	return BlankPoint
}

// Rune is the character used for the shape on text terminals.
func (s PointShape) Rune() rune {
	switch s {
	case CirclePoint:
		return 'o'
	case SolidCirclePoint:
		return '●'
	case SquarePoint, SolidSquarePoint:
		return '■'
	case DiamondPoint:
		return '◆'
	case DeltaPoint:
		return '▲'
	case NablaPoint:
		return '▼'
	case CrossPoint:
		return 'x'
	case PlusPoint:
		return '+'
	}
	return ' '
}

func String2PointSize(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err == nil && n > 0 {
		return n
	}
	return 3
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the on/off pattern of lt in units of the line width.
// Solid lines have no pattern, blank lines are not drawn at all.
func (lt LineType) Dashes() []float64 {
	switch lt {
	case DashedLine:
		return []float64{4, 4}
	case DottedLine:
		return []float64{1, 3}
	case DotDashLine:
		return []float64{1, 3, 4, 3}
	case LongdashLine:
		return []float64{8, 4}
	case TwodashLine:
		return []float64{2, 2, 6, 2}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.NRGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// ColorRamp maps c in [0,1] to a blue-green-red gradient. Values
// outside are clamped.
func ColorRamp(c float64) color.NRGBA {
	if math.IsNaN(c) || c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	if c < 0.5 {
		r := uint8(math.Round(c * 2 * 0xff))
		return color.NRGBA{0, r, 0xff - r, 0xff}
	}
	r := uint8(math.Round((c - 0.5) * 2 * 0xff))
	return color.NRGBA{r, 0xff - r, 0, 0xff}
}
