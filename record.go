package gridpaint

import (
	"fmt"
	"strings"
)

// OpKind names a draw primitive.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpStrokeEdge
	OpDrawText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fillRect"
	case OpStrokeRect:
		return "strokeRect"
	case OpStrokeEdge:
		return "strokeEdge"
	case OpDrawText:
		return "drawText"
	}
	return "unknown"
}

// DrawOp is one captured primitive. Only the fields relevant to Kind are set.
type DrawOp struct {
	Kind   OpKind
	Rect   Rect
	From   Point
	To     Point
	Color  string
	Stroke Stroke
	Text   string
	Style  TextStyle
}

// String formats the op compactly, e.g. `fillRect(1,1,99,19 #fff)`.
func (op DrawOp) String() string {
	r := op.Rect
	switch op.Kind {
	case OpFillRect:
		return fmt.Sprintf("fillRect(%g,%g,%g,%g %s)", r.X, r.Y, r.Width, r.Height, op.Color)
	case OpStrokeRect:
		return fmt.Sprintf("strokeRect(%g,%g,%g,%g %s/%g)", r.X, r.Y, r.Width, r.Height, op.Stroke.Color, op.Stroke.Width)
	case OpStrokeEdge:
		return fmt.Sprintf("strokeEdge(%g,%g-%g,%g %s/%g)", op.From.X, op.From.Y, op.To.X, op.To.Y, op.Stroke.Color, op.Stroke.Width)
	case OpDrawText:
		return fmt.Sprintf("drawText(%g,%g,%g,%g %q)", r.X, r.Y, r.Width, r.Height, op.Text)
	}
	return op.Kind.String()
}

// Recorder is a DrawTarget that captures primitives in call order instead
// of painting them. It is not safe for concurrent use.
type Recorder struct {
	Ops []DrawOp
}

func (rec *Recorder) FillRect(r Rect, color string) {
	rec.Ops = append(rec.Ops, DrawOp{Kind: OpFillRect, Rect: r, Color: color})
}

func (rec *Recorder) StrokeRect(r Rect, s Stroke) {
	rec.Ops = append(rec.Ops, DrawOp{Kind: OpStrokeRect, Rect: r, Stroke: s})
}

func (rec *Recorder) StrokeEdge(from, to Point, s Stroke) {
	rec.Ops = append(rec.Ops, DrawOp{Kind: OpStrokeEdge, From: from, To: to, Stroke: s})
}

func (rec *Recorder) DrawText(r Rect, text string, style TextStyle) {
	rec.Ops = append(rec.Ops, DrawOp{Kind: OpDrawText, Rect: r, Text: text, Style: style})
}

// Kinds returns the kind of every captured op, in order.
func (rec *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(rec.Ops))
	for i, op := range rec.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Reset drops captured ops, keeping the backing array.
func (rec *Recorder) Reset() {
	rec.Ops = rec.Ops[:0]
}

// String lists the ops one per line.
func (rec *Recorder) String() string {
	var b strings.Builder
	for _, op := range rec.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
