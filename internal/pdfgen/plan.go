// Package pdfgen renders an invoice snapshot onto a single fixed-size A4
// page and returns the PDF bytes. Layout is immediate-mode: a vertical
// cursor advances section by section, each with a literal or computed
// height. Content past the page bottom is clipped, not paginated.
//
// Rendering is split in two phases. buildPlan computes every drawing
// primitive (text runs, boxes, lines, images) as plain data from the
// immutable input snapshot; the renderer then plays the plan through the
// PDF encoder. The plan phase has no side effects and carries all the
// conditional-section logic, so it is where behavior is tested.
package pdfgen

// Page geometry in layout units (PostScript points). A4 portrait.
const (
	pageWidth  = 595.0
	pageHeight = 842.0
	margin     = 40.0

	tableRowHeight = 30.0
	totalsRowH     = 25.0
	notesBoxHeight = 50.0
	footerHeight   = 80.0
	footerGap      = 20.0
)

// Item table column widths, left to right: description, quantity, unit
// price, line total.
var colWidths = [4]float64{275, 60, 80, 80}

type rgb struct {
	R, G, B int
}

// Document palette. Always light, independent of any UI theme.
var (
	colorText       = rgb{0, 0, 0}
	colorSecondary  = rgb{85, 85, 85}
	colorSurface    = rgb{242, 242, 242}
	colorBorder     = rgb{0, 0, 0}
	colorAccent     = rgb{0, 102, 204}
	colorWarning    = rgb{255, 128, 0}
	colorWarningBG  = rgb{255, 242, 229}
	colorBackground = rgb{255, 255, 255}
)

type align int

const (
	alignRight align = iota
	alignCenter
	alignLeft
)

type direction int

const (
	// dirRTL forces right-to-left paragraph direction so bidirectional
	// Persian text shapes correctly regardless of the alignment chosen.
	dirRTL direction = iota
	// dirLTR is used only for inherently left-to-right values such as
	// account numbers.
	dirLTR
)

type fontSpec struct {
	Bold bool
	Size float64
}

var (
	fontHeader    = fontSpec{Bold: true, Size: 18}
	fontSubHeader = fontSpec{Bold: true, Size: 16}
	fontBody      = fontSpec{Size: 12}
	fontBoldBody  = fontSpec{Bold: true, Size: 12}
	fontSmall     = fontSpec{Size: 10}
	fontTotal     = fontSpec{Bold: true, Size: 14}
)

type rect struct {
	X, Y, W, H float64
}

// op is a single drawing primitive. The plan is an ordered op list in
// top-to-bottom, right-to-left reading order.
type op interface{ isOp() }

type textOp struct {
	Text  string
	Font  fontSpec
	Color rgb
	Rect  rect
	Align align
	Dir   direction
}

type boxOp struct {
	Rect      rect
	Fill      *rgb
	Stroke    rgb
	LineWidth float64
	Radius    float64
}

type lineOp struct {
	X1, Y1, X2, Y2 float64
	Color          rgb
	Width          float64
}

// imageOp places a registered raster image. Name refers to the image slot
// ("logo" or "signature") registered by the renderer.
type imageOp struct {
	Name string
	Rect rect
}

func (textOp) isOp()  {}
func (boxOp) isOp()   {}
func (lineOp) isOp()  {}
func (imageOp) isOp() {}

type plan struct {
	Ops []op
}

func (p *plan) add(o op) { p.Ops = append(p.Ops, o) }

func (p *plan) text(t string, f fontSpec, c rgb, r rect, a align, d direction) {
	p.add(textOp{Text: t, Font: f, Color: c, Rect: r, Align: a, Dir: d})
}

// texts returns all text ops, in order. Test helper surface.
func (p *plan) texts() []textOp {
	var out []textOp
	for _, o := range p.Ops {
		if t, ok := o.(textOp); ok {
			out = append(out, t)
		}
	}
	return out
}
