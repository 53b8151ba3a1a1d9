package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// Atlas layout expected by snaplist.DrawList.AddText: a 16x6 grid of 8x8
// cells covering ASCII 32-127.
const (
	atlasWidth  = 128
	atlasHeight = 48
)

// glyphs covers what item labels use: digits and a little punctuation.
// Each entry is eight rows, most significant bit leftmost.
var glyphs = map[byte][8]byte{
	'0': {0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00},
	'1': {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00},
	'2': {0x3C, 0x66, 0x06, 0x1C, 0x30, 0x60, 0x7E, 0x00},
	'3': {0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00},
	'4': {0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0x00},
	'5': {0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00},
	'6': {0x1C, 0x30, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00},
	'7': {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00},
	'8': {0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00},
	'9': {0x3C, 0x66, 0x66, 0x3E, 0x06, 0x0C, 0x38, 0x00},
	'#': {0x24, 0x7E, 0x24, 0x24, 0x7E, 0x24, 0x00, 0x00},
	'-': {0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00},
	':': {0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00},
	'/': {0x02, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x40, 0x00},
	'?': {0x3C, 0x66, 0x06, 0x1C, 0x18, 0x00, 0x18, 0x00},
}

// rasterizeGlyphs returns the alpha-only atlas pixels.
func rasterizeGlyphs() []byte {
	data := make([]byte, atlasWidth*atlasHeight)
	for ch, rows := range glyphs {
		idx := int(ch - 32)
		ox, oy := (idx%16)*8, (idx/16)*8
		for y, bits := range rows {
			for x := 0; x < 8; x++ {
				if bits&(0x80>>x) != 0 {
					data[(oy+y)*atlasWidth+ox+x] = 255
				}
			}
		}
	}
	return data
}

// createFontTexture uploads the glyph atlas as a single-channel texture.
func createFontTexture() uint32 {
	data := rasterizeGlyphs()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasWidth, atlasHeight, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
