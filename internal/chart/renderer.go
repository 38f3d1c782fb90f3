// Package chart turns a telemetry window snapshot into drawable geometry and
// answers pointer hit-testing queries for the level tooltip.
package chart

import (
	"math"
	"time"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

const maxLevel = 100.0

// Point is a position in the chart's pixel space. The origin is the top-left
// corner; the level axis is inverted so level 0 sits on the baseline.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GradientStop positions a fill stop along the vertical axis, 0 at the top of
// the area and 1 at the baseline. Opacity is the only styling the renderer
// decides; colors belong to the UI.
type GradientStop struct {
	Offset  float64 `json:"offset"`
	Opacity float64 `json:"opacity"`
}

// Frame is the geometry for one render tick: a polyline through the samples
// and a closed area path between the polyline and the baseline. A frame with
// fewer than two points carries no polyline and no area.
type Frame struct {
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Points   []Point        `json:"points"`
	Area     []Point        `json:"area,omitempty"`
	Gradient []GradientStop `json:"gradient,omitempty"`
}

// Tooltip is the active hover state: the sample nearest the pointer and its
// pixel position.
type Tooltip struct {
	Sample   domain.Sample `json:"-"`
	Level    float64       `json:"level"`
	Position Point         `json:"position"`
}

// Renderer maps a window snapshot into a fixed pixel viewport. It keeps the
// last rendered frame and snapshot so pointer queries hit-test against what is
// actually on screen.
type Renderer struct {
	window   time.Duration
	width    float64
	height   float64
	frame    Frame
	snapshot []domain.Sample
	tooltip  *Tooltip
}

func NewRenderer(window time.Duration, width, height float64) *Renderer {
	return &Renderer{
		window: window,
		width:  width,
		height: height,
	}
}

// Render lays out the snapshot for the given instant and returns the frame.
// An empty snapshot yields a frame with no points: axes only, no polyline.
func (r *Renderer) Render(samples []domain.Sample, now time.Time) Frame {
	frame := Frame{Width: r.width, Height: r.height}

	points := make([]Point, 0, len(samples))
	for _, s := range samples {
		points = append(points, Point{
			X: r.xFor(s.Timestamp, now),
			Y: r.yFor(s.Level),
		})
	}
	frame.Points = points

	// A polyline needs at least two points.
	if len(points) >= 2 {
		area := make([]Point, 0, len(points)+2)
		area = append(area, points...)
		area = append(area,
			Point{X: points[len(points)-1].X, Y: r.height},
			Point{X: points[0].X, Y: r.height},
		)
		frame.Area = area
		frame.Gradient = []GradientStop{
			{Offset: 0, Opacity: 0.45},
			{Offset: 1, Opacity: 0},
		}
	}

	r.frame = frame
	r.snapshot = samples
	return frame
}

// SetPointer records the pointer position and recomputes the tooltip against
// the last rendered snapshot. It returns the active tooltip, or nil when the
// snapshot is empty.
func (r *Renderer) SetPointer(pointerX float64) *Tooltip {
	nearest, pos, ok := r.nearest(pointerX)
	if !ok {
		r.tooltip = nil
		return nil
	}

	r.tooltip = &Tooltip{
		Sample:   nearest,
		Level:    clampLevel(nearest.Level),
		Position: pos,
	}
	return r.tooltip
}

// ClearPointer drops the active tooltip, e.g. when the pointer leaves the
// chart.
func (r *Renderer) ClearPointer() {
	r.tooltip = nil
}

// ActiveTooltip returns the current hover state, or nil when none.
func (r *Renderer) ActiveTooltip() *Tooltip {
	return r.tooltip
}

// nearest finds the sample whose projected X is closest to the pointer.
// The window holds at most a few hundred samples, so a linear scan is fine.
func (r *Renderer) nearest(pointerX float64) (domain.Sample, Point, bool) {
	if len(r.snapshot) == 0 {
		return domain.Sample{}, Point{}, false
	}

	bestIdx := 0
	bestDist := math.Inf(1)
	for i, p := range r.frame.Points {
		if d := math.Abs(p.X - pointerX); d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	return r.snapshot[bestIdx], r.frame.Points[bestIdx], true
}

func (r *Renderer) xFor(t time.Time, now time.Time) float64 {
	start := now.Add(-r.window)
	return float64(t.Sub(start)) / float64(r.window) * r.width
}

func (r *Renderer) yFor(level float64) float64 {
	return r.height - clampLevel(level)/maxLevel*r.height
}

// clampLevel guards the viewport against out-of-range readings; the buffer
// stores levels as delivered.
func clampLevel(level float64) float64 {
	return math.Min(math.Max(level, 0), maxLevel)
}
