package chart

import (
	"fmt"
	"html"
	"strings"

	"github.com/FlorianRuen/langs-usage-chart/model"
	"github.com/FlorianRuen/langs-usage-chart/stats"
)

const (
	barWidth             = 400.0
	barPadding           = 15.0
	barPaddingHorizontal = 30.0
	barHeight            = 20.0
	barSpaceAbove        = 40.0 // title
	barSpaceBelow        = 25.0
	barTitleY            = 30.0
	barLegendRow         = 18.0
	barLegendColumns     = 2
)

// renderStackedBar draws a single bar split in segments proportional to the languages usage
// legend entries are placed in two columns below the bar
func renderStackedBar(username string, languagesStats model.LanguageStats, options model.ChartOptions) string {
	topLanguages := stats.TopN(languagesStats, BarTopLanguages)

	rows := (len(topLanguages) + barLegendColumns - 1) / barLegendColumns
	height := barSpaceAbove + barHeight + barSpaceBelow + float64(rows)*barLegendRow + barPadding*2

	availableWidth := barWidth - barPaddingHorizontal*2

	var svg strings.Builder
	writeHeader(&svg, username, barWidth, height, barTitleY, options)

	// segments positions are computed on cumulated percentages so the last one ends on the bar edge
	total := topLanguages.TotalPercentage()
	if total > 0 {
		cumulated := 0.0
		currentX := barPaddingHorizontal

		for _, s := range topLanguages {
			cumulated += s.Percentage
			endX := barPaddingHorizontal + cumulated/total*availableWidth

			if endX > currentX {
				fmt.Fprintf(&svg, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
					num(currentX), num(barSpaceAbove), num(endX-currentX), num(barHeight), ColorFor(s.Language))
			}

			currentX = endX
		}
	}

	columnWidth := availableWidth / barLegendColumns
	legendStartX := (barWidth - availableWidth) / 2
	legendStartY := barSpaceAbove + barHeight + barSpaceBelow

	for i, s := range topLanguages {
		x := legendStartX + float64(i%barLegendColumns)*columnWidth
		y := legendStartY + float64(i/barLegendColumns)*barLegendRow

		fmt.Fprintf(&svg, `  <circle cx="%s" cy="%s" r="5" fill="%s"/>`+"\n",
			num(x+10), num(y+10), ColorFor(s.Language))
		fmt.Fprintf(&svg, `  <text x="%s" y="%s" class="lang-label">%s %s%%</text>`+"\n",
			num(x+25), num(y+15), html.EscapeString(s.Language), formatPercentage(s.Percentage))
	}

	writeFooter(&svg)
	return svg.String()
}
