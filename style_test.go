package pointplot

import (
	"image/color"
	"testing"
)

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestMergeStyles(t *testing.T) {
	m := MergeStyles(Style{"color": "red", "size": ""}, Style{"color": "blue", "size": "4", "shape": "plus"})
	if m["color"] != "red" || m["size"] != "4" || m["shape"] != "plus" || len(m) != 3 {
		t.Errorf("Got %v", m)
	}
}

func TestColorRamp(t *testing.T) {
	if c := ColorRamp(0); c != (color.NRGBA{0, 0, 0xff, 0xff}) {
		t.Errorf("ColorRamp(0) = %v", c)
	}
	if c := ColorRamp(0.5); c != (color.NRGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("ColorRamp(0.5) = %v", c)
	}
	if c := ColorRamp(7); c != (color.NRGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("ColorRamp(7) = %v", c)
	}
}

func TestStyleParsing(t *testing.T) {
	if s := String2PointShape("diamond"); s != DiamondPoint {
		t.Errorf("Got shape %d", s)
	}
	if s := String2PointShape("unknown"); s != BlankPoint || s.Rune() != ' ' {
		t.Errorf("Got shape %d", s)
	}
	if lt := String2LineType("dashed"); lt != DashedLine || len(lt.Dashes()) != 2 {
		t.Errorf("Got line type %d", lt)
	}
	if SolidLine.Dashes() != nil {
		t.Errorf("Solid line has dashes")
	}
	if a := String2Float("50%", 0, 1); a != 0.5 {
		t.Errorf("Got alpha %f", a)
	}
	if a := String2Float("7", 0, 1); a != 1 {
		t.Errorf("Got alpha %f", a)
	}
	c := SetAlpha(color.NRGBA{1, 2, 3, 0xff}, 0.5).(color.NRGBA)
	if c.R != 1 || c.A != 0x80 {
		t.Errorf("Got %v", c)
	}
}
