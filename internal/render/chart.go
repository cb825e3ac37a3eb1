package render

import (
	"io"

	svg "github.com/ajstarks/svgo/float"

	"nba-shotchart/internal/domain/shots"
)

const (
	canvasWidth  = 500.0
	titleBand    = 50.0
	footerBand   = 64.0
	canvasHeight = titleBand + courtHeight + footerBand

	madeRadius   = 5.0
	missHalfSize = 5.0

	madeStyle = "fill:none;stroke:green;stroke-width:2"
	missStyle = "stroke:red;stroke-width:2"
	textStyle = "font-family:Helvetica,sans-serif"
)

// ChartParams carries everything the composed chart shows.
type ChartParams struct {
	Title     string
	StatLines []string
	Shots     []shots.Record
	Court     CourtStyle
}

// Chart plots shots over the court diagram and overlays the stat text.
// Markers follow input order. An empty shot list yields a valid blank chart.
func Chart(w io.Writer, p ChartParams) {
	style := p.Court
	if style.LineColor == "" {
		style = DefaultCourtStyle()
	}
	tr := Transform{OffsetY: titleBand}

	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:white")

	canvas.Gstyle(textStyle)
	canvas.Text(canvasWidth/2, 32, p.Title, "text-anchor:middle;font-size:20px")
	canvas.Gend()

	DrawCourt(canvas, tr, style)

	for _, record := range p.Shots {
		x, y := tr.X(record.X), tr.Y(record.Y)
		if record.Made {
			canvas.Circle(x, y, madeRadius, madeStyle)
		} else {
			canvas.Line(x-missHalfSize, y-missHalfSize, x+missHalfSize, y+missHalfSize, missStyle)
			canvas.Line(x-missHalfSize, y+missHalfSize, x+missHalfSize, y-missHalfSize, missStyle)
		}
	}

	drawFooter(canvas, p.StatLines)
	canvas.End()
}

// drawFooter renders the legend bottom-left and the stat lines bottom-right.
func drawFooter(canvas *svg.SVG, statLines []string) {
	legendTop := titleBand + courtHeight + 18

	canvas.Circle(20, legendTop, madeRadius, madeStyle)
	canvas.Line(15, legendTop+13, 25, legendTop+23, missStyle)
	canvas.Line(15, legendTop+23, 25, legendTop+13, missStyle)

	canvas.Gstyle(textStyle + ";font-size:13px")
	canvas.Text(34, legendTop+4, "Made Shots")
	canvas.Text(34, legendTop+22, "Missed Shots")

	y := legendTop + 4
	for _, line := range statLines {
		canvas.Text(canvasWidth-12, y, line, "text-anchor:end")
		y += 18
	}
	canvas.Gend()
}
