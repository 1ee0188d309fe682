package model

import (
	"regexp"
	"strconv"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{3,8}$`)

// ChartQuery contains the optional query parameters of a chart request
// all values are kept as string, invalid values fall back to the defaults
type ChartQuery struct {
	BorderColor          string `form:"border_color"`
	BackgroundColor      string `form:"background_color"`
	TitleColor           string `form:"title_color"`
	TextColor            string `form:"text_color"`
	HoleRadiusPercentage string `form:"hole_radius_percentage"`
}

// ToChartOptions merge the query values onto the default chart options
func (params ChartQuery) ToChartOptions(chartType ChartType) ChartOptions {
	options := DefaultChartOptions()

	options.BorderColor = normalizeColor(params.BorderColor, options.BorderColor)
	options.BackgroundColor = normalizeColor(params.BackgroundColor, options.BackgroundColor)
	options.TitleColor = normalizeColor(params.TitleColor, options.TitleColor)
	options.TextColor = normalizeColor(params.TextColor, options.TextColor)

	// out of range or non numeric values are replaced by the default one
	// hole is only meaningful for donut, a pie is a donut without hole
	if holeRadius, err := strconv.Atoi(strings.TrimSpace(params.HoleRadiusPercentage)); err == nil && holeRadius >= 0 && holeRadius < 100 {
		options.HoleRadiusPercentage = holeRadius
	}

	if chartType == ChartTypePie {
		options.HoleRadiusPercentage = 0
	}

	return options
}

// normalizeColor add the leading # to a color fragment
// empty or non hex values return the fallback
func normalizeColor(value string, fallback string) string {
	color := strings.TrimPrefix(strings.TrimSpace(value), "#")

	if !hexColorPattern.MatchString(color) {
		return fallback
	}

	return "#" + color
}
