package model

import "strings"

type ChartType string

const (
	ChartTypePie   ChartType = "pie"
	ChartTypeBar   ChartType = "bar"
	ChartTypeDonut ChartType = "donut"
)

// ParseChartType match the chart type from the url (case insensitive)
func ParseChartType(value string) (ChartType, error) {
	switch ChartType(strings.ToLower(strings.TrimSpace(value))) {
	case ChartTypePie:
		return ChartTypePie, nil
	case ChartTypeBar:
		return ChartTypeBar, nil
	case ChartTypeDonut:
		return ChartTypeDonut, nil
	}

	return "", UnsupportedChartTypeError{ChartType: value}
}

const (
	DefaultBorderColor          = "#E4E2E2"
	DefaultBackgroundColor      = "#fff"
	DefaultTitleColor           = "#000"
	DefaultTextColor            = "#000"
	DefaultHoleRadiusPercentage = 40
	DefaultBorderRadius         = 10
)

// ChartOptions hold the colors and proportions used to draw a chart
// built once per request using ChartQuery.ToChartOptions and never modified afterwards
type ChartOptions struct {
	BorderColor          string
	BackgroundColor      string
	TitleColor           string
	TextColor            string
	HoleRadiusPercentage int // only used by donut charts, 0 for pie
	BorderRadius         int
}

// DefaultChartOptions
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		BorderColor:          DefaultBorderColor,
		BackgroundColor:      DefaultBackgroundColor,
		TitleColor:           DefaultTitleColor,
		TextColor:            DefaultTextColor,
		HoleRadiusPercentage: DefaultHoleRadiusPercentage,
		BorderRadius:         DefaultBorderRadius,
	}
}
