package chart

import (
	"errors"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/FlorianRuen/langs-usage-chart/model"
)

// number of languages displayed before grouping the remaining ones in Others
const (
	DonutTopLanguages = 6
	BarTopLanguages   = 7
)

const fontFamily = `"Segoe UI", Ubuntu, Sans-Serif`

// Render draws the languages usage of a user as an svg document
// the languages must be sorted by descending percentage, as returned by stats.ComputeStats
// nothing is returned if an error occurs, the svg is always complete
func Render(username string, languagesStats model.LanguageStats, chartType model.ChartType, options model.ChartOptions) (string, error) {
	switch chartType {
	case model.ChartTypePie, model.ChartTypeBar, model.ChartTypeDonut:
	default:
		return "", model.UnsupportedChartTypeError{ChartType: string(chartType)}
	}

	if err := validate(languagesStats, chartType, options); err != nil {
		return "", model.ChartRenderError{ChartType: chartType, Err: err}
	}

	switch chartType {
	case model.ChartTypeBar:
		return renderStackedBar(username, languagesStats, options), nil
	case model.ChartTypeDonut:
		return renderDonut(username, languagesStats, options), nil
	default:
		return renderPie(username, languagesStats, options), nil
	}
}

// validate the values used by the geometry before writing anything
func validate(languagesStats model.LanguageStats, chartType model.ChartType, options model.ChartOptions) error {
	for _, s := range languagesStats {
		if math.IsNaN(s.Percentage) || math.IsInf(s.Percentage, 0) {
			return fmt.Errorf("percentage of %s is not a finite number", s.Language)
		}

		if s.Percentage < 0 {
			return fmt.Errorf("percentage of %s is negative (%v)", s.Language, s.Percentage)
		}
	}

	if chartType == model.ChartTypeDonut && (options.HoleRadiusPercentage < 0 || options.HoleRadiusPercentage >= 100) {
		return fmt.Errorf("hole radius percentage %d out of range [0, 100)", options.HoleRadiusPercentage)
	}

	if options.BorderRadius < 0 {
		return errors.New("border radius can't be negative")
	}

	return nil
}

// Title displayed on top of every chart
func Title(username string) string {
	return username + "'s Language Usage"
}

func writeHeader(svg *strings.Builder, username string, width float64, height float64, titleY float64, options model.ChartOptions) {
	fmt.Fprintf(svg, `<svg width="%s" height="%s" viewBox="0 0 %s %s" fill="none" xmlns="http://www.w3.org/2000/svg" role="img" aria-label="%s">`+"\n",
		num(width), num(height), num(width), num(height), html.EscapeString(Title(username)))

	svg.WriteString("  <style>\n")
	fmt.Fprintf(svg, "    .title { font: bold 14px %s; fill: %s; text-anchor: middle; }\n", fontFamily, options.TitleColor)
	fmt.Fprintf(svg, "    .lang-label { font: 400 12px %s; fill: %s; }\n", fontFamily, options.TextColor)
	svg.WriteString("  </style>\n")

	// frame is shrinked by half the stroke so the border is not cut by the viewBox
	fmt.Fprintf(svg, `  <rect x="0.5" y="0.5" rx="%d" width="%s" height="%s" fill="%s" stroke="%s"/>`+"\n",
		options.BorderRadius, num(width-1), num(height-1), options.BackgroundColor, options.BorderColor)

	fmt.Fprintf(svg, `  <text x="%s" y="%s" class="title">%s</text>`+"\n",
		num(width/2), num(titleY), html.EscapeString(Title(username)))
}

func writeFooter(svg *strings.Builder) {
	svg.WriteString("</svg>\n")
}

func formatPercentage(percentage float64) string {
	return strconv.FormatFloat(percentage, 'f', -1, 64)
}
