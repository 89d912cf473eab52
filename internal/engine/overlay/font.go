package overlay

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font/basicfont"
)

const (
	atlasCols     = 16
	atlasFirstCh  = ' '
	atlasGlyphCnt = 95 // printable ASCII, 0x20-0x7e
)

// atlas is the CPU-side glyph sheet built from the basicfont face.
// Glyphs are laid out on a fixed grid, one byte of coverage per pixel.
type atlas struct {
	pix          []byte
	width        int
	height       int
	cellW, cellH int
}

// buildAtlas packs the Face7x13 glyph strip into a grid texture.
func buildAtlas() *atlas {
	face := basicfont.Face7x13
	glyphH := face.Ascent + face.Descent

	rows := (atlasGlyphCnt + atlasCols - 1) / atlasCols
	a := &atlas{
		width:  atlasCols * face.Advance,
		height: rows * glyphH,
		cellW:  face.Advance,
		cellH:  glyphH,
	}
	a.pix = make([]byte, a.width*a.height)

	// The face mask stacks glyphs vertically, one per range offset.
	for i := 0; i < atlasGlyphCnt; i++ {
		srcY := i * glyphH
		dstX := (i % atlasCols) * a.cellW
		dstY := (i / atlasCols) * a.cellH
		for y := 0; y < glyphH; y++ {
			for x := 0; x < face.Width; x++ {
				_, _, _, alpha := face.Mask.At(x, srcY+y).RGBA()
				a.pix[(dstY+y)*a.width+dstX+face.Left+x] = byte(alpha >> 8)
			}
		}
	}

	return a
}

// glyphUV returns the texture coordinates of the cell holding ch.
// Characters outside printable ASCII map to '?'.
func (a *atlas) glyphUV(ch rune) (u0, v0, u1, v1 float32) {
	idx := int(ch) - atlasFirstCh
	if idx < 0 || idx >= atlasGlyphCnt {
		idx = int('?') - atlasFirstCh
	}
	col := idx % atlasCols
	row := idx / atlasCols
	u0 = float32(col*a.cellW) / float32(a.width)
	v0 = float32(row*a.cellH) / float32(a.height)
	u1 = float32((col+1)*a.cellW) / float32(a.width)
	v1 = float32((row+1)*a.cellH) / float32(a.height)
	return
}

// measure returns the pixel size of rendered text at the given scale.
func (a *atlas) measure(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines := 1
	maxLen := 0
	cur := 0
	for _, ch := range text {
		if ch == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		if cur > maxLen {
			maxLen = cur
		}
	}
	return float32(maxLen*a.cellW) * scale, float32(lines*a.cellH) * scale
}

// Font is the atlas uploaded as a single-channel GL texture.
type Font struct {
	atlas   *atlas
	texture uint32
}

// NewFont builds the glyph atlas and uploads it to the GPU.
func NewFont() *Font {
	f := &Font{atlas: buildAtlas()}

	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8,
		int32(f.atlas.width), int32(f.atlas.height), 0,
		gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&f.atlas.pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f
}

// TextureID returns the GL texture handle of the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// GlyphSize returns the unscaled cell dimensions in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.atlas.cellW, f.atlas.cellH
}

// GetGlyphUV returns the atlas texture coordinates of ch.
func (f *Font) GetGlyphUV(ch rune) (u0, v0, u1, v1 float32) {
	return f.atlas.glyphUV(ch)
}

// MeasureText returns the pixel size of rendered text.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	return f.atlas.measure(text, scale)
}

// Close releases the GL texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
