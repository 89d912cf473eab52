package overlay

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestBuildAtlasDimensions(t *testing.T) {
	a := buildAtlas()

	face := basicfont.Face7x13
	wantCellW := face.Advance
	wantCellH := face.Ascent + face.Descent

	if a.cellW != wantCellW || a.cellH != wantCellH {
		t.Errorf("cell size = %dx%d, want %dx%d", a.cellW, a.cellH, wantCellW, wantCellH)
	}
	if a.width != atlasCols*wantCellW {
		t.Errorf("atlas width = %d, want %d", a.width, atlasCols*wantCellW)
	}
	if len(a.pix) != a.width*a.height {
		t.Errorf("pixel buffer length = %d, want %d", len(a.pix), a.width*a.height)
	}
}

func TestAtlasGlyphCoverage(t *testing.T) {
	a := buildAtlas()

	// Space stays empty, a visible glyph must have at least one lit pixel.
	lit := func(ch rune) bool {
		u0, v0, u1, v1 := a.glyphUV(ch)
		x0 := int(u0 * float32(a.width))
		x1 := int(u1 * float32(a.width))
		y0 := int(v0 * float32(a.height))
		y1 := int(v1 * float32(a.height))
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if a.pix[y*a.width+x] != 0 {
					return true
				}
			}
		}
		return false
	}

	if lit(' ') {
		t.Error("space glyph has lit pixels")
	}
	for _, ch := range "A0#%" {
		if !lit(ch) {
			t.Errorf("glyph %q has no lit pixels", ch)
		}
	}
}

func TestGlyphUVRangeAndFallback(t *testing.T) {
	a := buildAtlas()

	for _, ch := range []rune{' ', 'A', 'z', '~'} {
		u0, v0, u1, v1 := a.glyphUV(ch)
		if u0 < 0 || v0 < 0 || u1 > 1 || v1 > 1 {
			t.Errorf("glyph %q UVs (%f,%f)-(%f,%f) outside [0,1]", ch, u0, v0, u1, v1)
		}
		if u1 <= u0 || v1 <= v0 {
			t.Errorf("glyph %q has degenerate UV rect", ch)
		}
	}

	// Non-ASCII falls back to the question mark cell.
	wu0, wv0, _, _ := a.glyphUV('?')
	gu0, gv0, _, _ := a.glyphUV('世')
	if gu0 != wu0 || gv0 != wv0 {
		t.Errorf("non-ASCII glyph maps to (%f,%f), want '?' cell (%f,%f)", gu0, gv0, wu0, wv0)
	}
}

func TestMeasureText(t *testing.T) {
	a := buildAtlas()

	w, h := a.measure("", 1)
	if w != 0 || h != 0 {
		t.Errorf("empty text measures %fx%f, want 0x0", w, h)
	}

	w, h = a.measure("abcd", 1)
	if w != float32(4*a.cellW) || h != float32(a.cellH) {
		t.Errorf("single line measures %fx%f, want %dx%d", w, h, 4*a.cellW, a.cellH)
	}

	w, h = a.measure("ab\ncdef", 2)
	if w != float32(4*a.cellW*2) || h != float32(2*a.cellH*2) {
		t.Errorf("two lines at 2x measure %fx%f, want %dx%d", w, h, 4*a.cellW*2, 2*a.cellH*2)
	}
}
