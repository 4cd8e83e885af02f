package render

import "strings"

// recorder implements Canvas and records draw calls so tests can
// assert layout behavior without decoding PDF bytes.
type recorder struct {
	pages int
	texts []textOp
}

type textOp struct {
	Page  int
	X, Y  float64
	S     string
	Style Style
}

func newRecorder() *recorder {
	return &recorder{pages: 1}
}

func (r *recorder) PageSize() (float64, float64) { return 210, 297 }

func (r *recorder) FillRect(x, y, w, h float64, fill RGB) {}

func (r *recorder) BorderRect(x, y, w, h float64, fill, border RGB, lineWidth float64) {}

func (r *recorder) Line(x1, y1, x2, y2 float64, color RGB, width float64) {}

func (r *recorder) Text(x, y float64, s string, style Style) {
	r.texts = append(r.texts, textOp{Page: r.pages, X: x, Y: y, S: s, Style: style})
}

func (r *recorder) NewPage() { r.pages++ }

func (r *recorder) hasText(s string) bool {
	_, ok := r.find(s)
	return ok
}

func (r *recorder) find(s string) (textOp, bool) {
	for _, op := range r.texts {
		if op.S == s {
			return op, true
		}
	}
	return textOp{}, false
}

func (r *recorder) findContaining(sub string) (textOp, bool) {
	for _, op := range r.texts {
		if strings.Contains(op.S, sub) {
			return op, true
		}
	}
	return textOp{}, false
}
