//go:build ebiten

package gui

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/pong"
)

const lineWidth = 3

// vectorCanvas draws pong frames onto an ebiten image in field units.
type vectorCanvas struct {
	dst   *ebiten.Image
	fonts *fontCache
}

var _ pong.Canvas = (*vectorCanvas)(nil)

func rgba(c core.Color) color.Color {
	r, g, b, ok := c.RGB()
	if !ok {
		return color.White
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (v *vectorCanvas) Clear() {
	v.dst.Fill(rgba(core.ColorBackground))
}

func (v *vectorCanvas) DashedLine(x1, y1, x2, y2, dash, gap float64, c core.Color) {
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 || dash <= 0 {
		return
	}
	ux, uy := (x2-x1)/length, (y2-y1)/length
	clr := rgba(c)
	for d := 0.0; d < length; d += dash + gap {
		end := math.Min(d+dash, length)
		vector.StrokeLine(v.dst,
			float32(x1+ux*d), float32(y1+uy*d),
			float32(x1+ux*end), float32(y1+uy*end),
			4, clr, true)
	}
}

func (v *vectorCanvas) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(v.dst, float32(x), float32(y), float32(w), float32(h), rgba(c), true)
}

func (v *vectorCanvas) StrokeRect(x, y, w, h float64, c core.Color) {
	vector.StrokeRect(v.dst, float32(x), float32(y), float32(w), float32(h), lineWidth, rgba(c), true)
}

func (v *vectorCanvas) Circle(x, y, r float64, fill, stroke core.Color) {
	vector.DrawFilledCircle(v.dst, float32(x), float32(y), float32(r), rgba(fill), true)
	vector.StrokeCircle(v.dst, float32(x), float32(y), float32(r), lineWidth, rgba(stroke), true)
}

// Text draws at a baseline like a 2D canvas.
func (v *vectorCanvas) Text(x, y float64, s string, style pong.TextStyle) {
	face := v.fonts.face(style)
	width := font.MeasureString(face, s).Round()
	ix := int(x)
	switch style.Align {
	case pong.AlignCenter:
		ix -= width / 2
	case pong.AlignRight:
		ix -= width
	}
	text.Draw(v.dst, s, face, ix, int(y), rgba(style.Color))
}

// Avatar draws a round badge with a face.
func (v *vectorCanvas) Avatar(x, y, size float64, c core.Color) {
	r := size / 2
	cx, cy := x+r, y+r
	v.Circle(cx, cy, r, core.ColorPanel, c)
	clr := rgba(c)
	vector.DrawFilledCircle(v.dst, float32(cx-r/3), float32(cy-r/4), float32(r/8), clr, true)
	vector.DrawFilledCircle(v.dst, float32(cx+r/3), float32(cy-r/4), float32(r/8), clr, true)
	vector.StrokeLine(v.dst, float32(cx-r/3), float32(cy+r/3), float32(cx+r/3), float32(cy+r/3), lineWidth, clr, true)
}

type faceKey struct {
	size   float64
	bold   bool
	italic bool
}

// fontCache holds one face per size and style.
type fontCache struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
	fonts map[string]*opentype.Font
}

func newFontCache() *fontCache {
	return &fontCache{
		faces: make(map[faceKey]font.Face),
		fonts: make(map[string]*opentype.Font),
	}
}

func (f *fontCache) face(style pong.TextStyle) font.Face {
	size := style.Size
	if size <= 0 {
		size = 16
	}
	key := faceKey{size: size, bold: style.Bold, italic: style.Italic && !style.Bold}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[key]; ok {
		return face
	}

	name, data := "regular", goregular.TTF
	switch {
	case key.bold:
		name, data = "bold", gobold.TTF
	case key.italic:
		name, data = "italic", goitalic.TTF
	}
	tt, ok := f.fonts[name]
	if !ok {
		var err error
		tt, err = opentype.Parse(data)
		if err != nil {
			panic(err) // embedded fonts always parse
		}
		f.fonts[name] = tt
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		panic(err)
	}
	f.faces[key] = face
	return face
}
