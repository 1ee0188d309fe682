package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/FlorianRuen/langs-usage-chart/model"
)

// fullCircleTolerance absorbs float drift on a slice covering the whole circle
const fullCircleTolerance = 1e-9

type Point struct {
	X float64
	Y float64
}

// PolarToCartesian convert an angle in degrees on a circle to svg coordinates
func PolarToCartesian(center Point, radius float64, angleDegrees float64) Point {
	radians := angleDegrees * math.Pi / 180

	return Point{
		X: center.X + radius*math.Cos(radians),
		Y: center.Y + radius*math.Sin(radians),
	}
}

// ArcBoundary contains the four corners of a circular sector
// inner points are equal to the center for a pie slice
type ArcBoundary struct {
	OuterStart Point
	OuterEnd   Point
	InnerStart Point
	InnerEnd   Point
}

// ArcPoints computes the corners of a sector between two angles
func ArcPoints(startAngle float64, endAngle float64, center Point, outerRadius float64, innerRadius float64) ArcBoundary {
	return ArcBoundary{
		OuterStart: PolarToCartesian(center, outerRadius, startAngle),
		OuterEnd:   PolarToCartesian(center, outerRadius, endAngle),
		InnerStart: PolarToCartesian(center, innerRadius, startAngle),
		InnerEnd:   PolarToCartesian(center, innerRadius, endAngle),
	}
}

// LargeArcFlag tell svg to draw the longest arc between two points
func LargeArcFlag(sweepAngle float64) int {
	if sweepAngle > 180 {
		return 1
	}

	return 0
}

// Slice is the angular part of the circle given to a language
type Slice struct {
	Language   string
	Color      string
	Percentage float64
	StartAngle float64
	SweepAngle float64
}

func (s Slice) EndAngle() float64 {
	return s.StartAngle + s.SweepAngle
}

// LayoutSlices split the circle between languages, in iteration order, starting at 0 degree
// angles are computed on the cumulated percentages so the last slice always ends at 360 degrees
// even when the rounded percentages do not sum exactly to 100
func LayoutSlices(languagesStats model.LanguageStats) []Slice {
	layout := make([]Slice, 0, len(languagesStats))
	total := languagesStats.TotalPercentage()

	if total <= 0 {
		return layout
	}

	cumulated := 0.0
	startAngle := 0.0

	for _, s := range languagesStats {
		cumulated += s.Percentage
		endAngle := cumulated / total * 360

		layout = append(layout, Slice{
			Language:   s.Language,
			Color:      ColorFor(s.Language),
			Percentage: s.Percentage,
			StartAngle: startAngle,
			SweepAngle: endAngle - startAngle,
		})

		startAngle = endAngle
	}

	return layout
}

// SlicePath builds the svg path of a slice
// innerRadius set to 0 draws a pie wedge, otherwise a donut ring segment
func SlicePath(s Slice, center Point, outerRadius float64, innerRadius float64) string {
	if s.SweepAngle >= 360-fullCircleTolerance {
		return fullCirclePath(s.StartAngle, center, outerRadius, innerRadius)
	}

	arc := ArcPoints(s.StartAngle, s.EndAngle(), center, outerRadius, innerRadius)
	largeArc := LargeArcFlag(s.SweepAngle)

	var path strings.Builder

	if innerRadius <= 0 {
		fmt.Fprintf(&path, "M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
			num(center.X), num(center.Y),
			num(arc.OuterStart.X), num(arc.OuterStart.Y),
			num(outerRadius), num(outerRadius), largeArc, num(arc.OuterEnd.X), num(arc.OuterEnd.Y),
		)

		return path.String()
	}

	fmt.Fprintf(&path, "M %s %s A %s %s 0 %d 1 %s %s L %s %s A %s %s 0 %d 0 %s %s Z",
		num(arc.OuterStart.X), num(arc.OuterStart.Y),
		num(outerRadius), num(outerRadius), largeArc, num(arc.OuterEnd.X), num(arc.OuterEnd.Y),
		num(arc.InnerEnd.X), num(arc.InnerEnd.Y),
		num(innerRadius), num(innerRadius), largeArc, num(arc.InnerStart.X), num(arc.InnerStart.Y),
	)

	return path.String()
}

// fullCirclePath draws a whole disc or ring as two half arcs
// an arc whose start and end points are equal is not rendered by svg
func fullCirclePath(startAngle float64, center Point, outerRadius float64, innerRadius float64) string {
	arc := ArcPoints(startAngle, startAngle+180, center, outerRadius, innerRadius)

	var path strings.Builder

	fmt.Fprintf(&path, "M %s %s A %s %s 0 1 1 %s %s A %s %s 0 1 1 %s %s Z",
		num(arc.OuterStart.X), num(arc.OuterStart.Y),
		num(outerRadius), num(outerRadius), num(arc.OuterEnd.X), num(arc.OuterEnd.Y),
		num(outerRadius), num(outerRadius), num(arc.OuterStart.X), num(arc.OuterStart.Y),
	)

	// inner circle drawn counter clockwise so the non zero fill rule leaves a hole
	if innerRadius > 0 {
		fmt.Fprintf(&path, " M %s %s A %s %s 0 1 0 %s %s A %s %s 0 1 0 %s %s Z",
			num(arc.InnerStart.X), num(arc.InnerStart.Y),
			num(innerRadius), num(innerRadius), num(arc.InnerEnd.X), num(arc.InnerEnd.Y),
			num(innerRadius), num(innerRadius), num(arc.InnerStart.X), num(arc.InnerStart.Y),
		)
	}

	return path.String()
}

func num(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
