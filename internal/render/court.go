// Package render draws the half-court diagram and composes shot charts as
// SVG. Geometry uses the shot data's coordinate convention: origin at the
// center of the hoop, one unit = 0.1 ft, +y toward half court.
package render

import (
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Court extents in data units.
const (
	courtMinX = -250.0
	courtMaxX = 250.0
	courtMinY = -47.5
	courtMaxY = 422.5

	courtWidth  = courtMaxX - courtMinX
	courtHeight = courtMaxY - courtMinY
)

// Transform maps data coordinates onto the SVG canvas. SVG y grows downward,
// so the y axis flips: the baseline ends up at the bottom of the court area.
type Transform struct {
	OffsetY float64 // canvas y of the data point y = courtMaxY
}

func (t Transform) X(x float64) float64 { return x - courtMinX }
func (t Transform) Y(y float64) float64 { return courtMaxY - y + t.OffsetY }

// CourtStyle controls the court line rendering.
type CourtStyle struct {
	LineColor string
	LineWidth float64
}

// DefaultCourtStyle mirrors the familiar blue-on-white chart.
func DefaultCourtStyle() CourtStyle {
	return CourtStyle{LineColor: "blue", LineWidth: 2}
}

// DrawCourt draws the fixed half-court primitives onto the canvas.
func DrawCourt(canvas *svg.SVG, tr Transform, style CourtStyle) {
	c := courtPainter{canvas: canvas, tr: tr}
	canvas.Gstyle(lineStyle(style))

	// hoop and backboard
	c.circle(0, 0, 7.5)
	c.line(-30, -12.5, 30, -12.5)

	// the paint: outer 16ft box, inner 12ft box, free throw circle
	c.rect(-80, -47.5, 160, 190)
	c.rect(-60, -47.5, 120, 190)
	c.circle(0, 142.5, 60)

	// restricted area
	c.arc(0, 0, 40, 0, 180)

	// three point line: corner verticals plus the arc
	c.line(-220, -47.5, -220, 92.5)
	c.line(220, -47.5, 220, 92.5)
	c.arc(0, 0, 237.5, 22, 158)

	// center court arcs at the half court line
	c.arc(0, courtMaxY, 60, 180, 360)
	c.arc(0, courtMaxY, 20, 180, 360)

	// out of bounds lines
	c.rect(courtMinX, courtMinY, courtWidth, courtHeight)

	canvas.Gend()
}

func lineStyle(style CourtStyle) string {
	return "fill:none;stroke:" + style.LineColor + ";stroke-width:" + ftoa(style.LineWidth)
}

type courtPainter struct {
	canvas *svg.SVG
	tr     Transform
}

func (c courtPainter) circle(x, y, r float64) {
	c.canvas.Circle(c.tr.X(x), c.tr.Y(y), r)
}

func (c courtPainter) line(x1, y1, x2, y2 float64) {
	c.canvas.Line(c.tr.X(x1), c.tr.Y(y1), c.tr.X(x2), c.tr.Y(y2))
}

// rect takes the data-space bottom-left corner, matching how the court
// dimensions are usually quoted.
func (c courtPainter) rect(x, y, w, h float64) {
	c.canvas.Rect(c.tr.X(x), c.tr.Y(y+h), w, h)
}

// arc draws the circular arc from startDeg to endDeg, measured
// counterclockwise from the +x axis in data space.
func (c courtPainter) arc(cx, cy, r, startDeg, endDeg float64) {
	sx, sy := pointOnCircle(cx, cy, r, startDeg)
	ex, ey := pointOnCircle(cx, cy, r, endDeg)
	large := endDeg-startDeg > 180
	// counterclockwise in data space is clockwise on the flipped canvas
	c.canvas.Arc(c.tr.X(sx), c.tr.Y(sy), r, r, 0, large, true, c.tr.X(ex), c.tr.Y(ey))
}

func pointOnCircle(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}
