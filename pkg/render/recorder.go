// pkg/render/recorder.go
package render

import (
	"image/color"

	"alien-invasion/pkg/geom"
)

// Op — одна записанная операция рисования
type Op struct {
	Kind   string // clear, rect, sprite, text
	Sprite SpriteID
	Font   FontID
	Rect   geom.Rect
	Text   string
	Color  color.Color
}

// Recorder — Surface без пикселей: запоминает вызовы. Текст меряется
// моноширинно, CharW x CharH на символ.
type Recorder struct {
	W, H         int
	CharW, CharH float64
	Ops          []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h, CharW: 7, CharH: 13}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Color: clr})
}

func (r *Recorder) FillRect(rect geom.Rect, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Rect: rect, Color: clr})
}

func (r *Recorder) DrawSprite(id SpriteID, rect geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: "sprite", Sprite: id, Rect: rect})
}

func (r *Recorder) DrawText(str string, font FontID, x, y float64, clr color.Color) {
	w, h := r.MeasureText(str, font)
	r.Ops = append(r.Ops, Op{Kind: "text", Font: font, Text: str, Rect: geom.NewRect(x, y, w, h), Color: clr})
}

func (r *Recorder) MeasureText(str string, _ FontID) (float64, float64) {
	return float64(len([]rune(str))) * r.CharW, r.CharH
}

// Reset забывает записанные операции.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Sprites возвращает прямоугольники всех спрайтов id.
func (r *Recorder) Sprites(id SpriteID) []geom.Rect {
	var out []geom.Rect
	for _, op := range r.Ops {
		if op.Kind == "sprite" && op.Sprite == id {
			out = append(out, op.Rect)
		}
	}
	return out
}

// Texts возвращает все нарисованные строки по порядку.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}
