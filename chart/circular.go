package chart

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/FlorianRuen/langs-usage-chart/model"
	"github.com/FlorianRuen/langs-usage-chart/stats"
)

const (
	circularWidth         = 400.0
	circularMinHeight     = 200.0
	circularRadius        = 60.0
	circularTitleY        = 20.0
	circularLegendRow     = 20.0
	circularLegendSpacing = 40.0 // room kept for the title when the legend grows
)

func renderPie(username string, languagesStats model.LanguageStats, options model.ChartOptions) string {
	return renderCircular(username, languagesStats, options, 0)
}

// renderDonut keep the six main languages, the hole is a percentage of the outer radius
func renderDonut(username string, languagesStats model.LanguageStats, options model.ChartOptions) string {
	topLanguages := stats.TopN(languagesStats, DonutTopLanguages)
	holeRadius := float64(options.HoleRadiusPercentage) / 100 * circularRadius

	return renderCircular(username, topLanguages, options, holeRadius)
}

// renderCircular draws the slices on the left third of the chart and the legend on the right
func renderCircular(username string, languagesStats model.LanguageStats, options model.ChartOptions, innerRadius float64) string {
	legendHeight := float64(len(languagesStats)) * circularLegendRow
	height := math.Max(circularMinHeight, legendHeight+circularLegendSpacing)

	center := Point{X: circularWidth / 3, Y: height / 2}
	legendX := 2*circularWidth/3 - 50
	legendY := (height-legendHeight)/2 + 10

	var svg strings.Builder
	writeHeader(&svg, username, circularWidth, height, circularTitleY, options)

	for _, slice := range LayoutSlices(languagesStats) {
		if slice.SweepAngle <= 0 {
			continue
		}

		fmt.Fprintf(&svg, `  <path d="%s" fill="%s"/>`+"\n", SlicePath(slice, center, circularRadius, innerRadius), slice.Color)
	}

	for i, s := range languagesStats {
		y := legendY + float64(i)*circularLegendRow

		fmt.Fprintf(&svg, `  <rect x="%s" y="%s" width="10" height="10" fill="%s"/>`+"\n",
			num(legendX), num(y), ColorFor(s.Language))
		fmt.Fprintf(&svg, `  <text x="%s" y="%s" class="lang-label">%s (%s%%)</text>`+"\n",
			num(legendX+15), num(y+10), html.EscapeString(s.Language), formatPercentage(s.Percentage))
	}

	writeFooter(&svg)
	return svg.String()
}
