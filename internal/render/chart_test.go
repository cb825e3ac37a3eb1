package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	svg "github.com/ajstarks/svgo/float"

	"nba-shotchart/internal/domain/shots"
)

func newTestCanvas(w io.Writer) *svg.SVG {
	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	return canvas
}

func endTestCanvas(canvas *svg.SVG) {
	canvas.End()
}

func TestChartEmptyShotsStillRendersCourt(t *testing.T) {
	var buf bytes.Buffer
	Chart(&buf, ChartParams{Title: "Blank Season"})

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not a complete SVG document:\n%s", out)
	}
	if !strings.Contains(out, "Blank Season") {
		t.Fatal("missing title")
	}
	// court lines are present even with zero shots
	if !strings.Contains(out, "stroke:blue") {
		t.Fatal("missing court line style")
	}
	if strings.Count(out, "<circle") < 2 {
		t.Fatal("expected hoop and free throw circle")
	}
}

func TestChartMarkerCountsMatchShots(t *testing.T) {
	records := []shots.Record{
		{X: 0, Y: 10, Made: true},
		{X: 100, Y: 50, Made: true},
		{X: -50, Y: 200, Made: false},
	}

	var buf bytes.Buffer
	Chart(&buf, ChartParams{Title: "t", Shots: records})
	out := buf.String()

	// legend carries one made marker and one missed marker of its own
	if got := strings.Count(out, madeStyle); got != 2+1 {
		t.Fatalf("made markers = %d, want 3", got)
	}
	if got := strings.Count(out, missStyle); got != 2+2 {
		t.Fatalf("missed marker lines = %d, want 4", got)
	}
}

func TestChartOverlaysStatLines(t *testing.T) {
	var buf bytes.Buffer
	Chart(&buf, ChartParams{
		Title:     "t",
		StatLines: []string{"FG%: 48.61% (700 - 1440)", "3PT%: 40.00% (100 - 250)"},
	})
	out := buf.String()

	if !strings.Contains(out, "FG%: 48.61% (700 - 1440)") {
		t.Fatal("missing FG stat line")
	}
	if !strings.Contains(out, "3PT%: 40.00% (100 - 250)") {
		t.Fatal("missing 3PT stat line")
	}
}

func TestTransformMapsCornersOntoCanvas(t *testing.T) {
	tr := Transform{OffsetY: titleBand}

	if got := tr.X(courtMinX); got != 0 {
		t.Fatalf("left edge maps to %v", got)
	}
	if got := tr.X(courtMaxX); got != courtWidth {
		t.Fatalf("right edge maps to %v", got)
	}
	if got := tr.Y(courtMaxY); got != titleBand {
		t.Fatalf("half court line maps to %v", got)
	}
	if got := tr.Y(courtMinY); got != titleBand+courtHeight {
		t.Fatalf("baseline maps to %v", got)
	}
	// hoop center
	if x, y := tr.X(0), tr.Y(0); x != 250 || y != titleBand+courtMaxY {
		t.Fatalf("hoop maps to (%v, %v)", x, y)
	}
}

func TestDrawCourtEmitsExpectedPrimitives(t *testing.T) {
	var buf bytes.Buffer
	canvas := newTestCanvas(&buf)
	DrawCourt(canvas, Transform{}, DefaultCourtStyle())
	endTestCanvas(canvas)
	out := buf.String()

	if strings.Count(out, "<circle") != 2 {
		t.Fatalf("expected hoop + free throw circle, got %d circles", strings.Count(out, "<circle"))
	}
	// backboard + two corner threes
	if strings.Count(out, "<line") != 3 {
		t.Fatalf("expected 3 lines, got %d", strings.Count(out, "<line"))
	}
	// paint boxes + out of bounds
	if strings.Count(out, "<rect") != 3 {
		t.Fatalf("expected 3 rects, got %d", strings.Count(out, "<rect"))
	}
	// restricted, three point, two center court arcs
	if strings.Count(out, "<path") != 4 {
		t.Fatalf("expected 4 arc paths, got %d", strings.Count(out, "<path"))
	}
}
