package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FlorianRuen/langs-usage-chart/config"
	"github.com/FlorianRuen/langs-usage-chart/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generateCall struct {
	username  string
	chartType model.ChartType
	options   model.ChartOptions
}

type stubLangsService struct {
	svg   string
	err   error
	calls *[]generateCall
}

func (s stubLangsService) GenerateChart(_ context.Context, username string, chartType model.ChartType, options model.ChartOptions) (string, error) {
	*s.calls = append(*s.calls, generateCall{username: username, chartType: chartType, options: options})
	return s.svg, s.err
}

func setupRouter(svg string, err error) (*gin.Engine, *[]generateCall) {
	gin.SetMode(gin.TestMode)

	calls := []generateCall{}
	apiController := NewAPIController(*config.GetDefault(), stubLangsService{svg: svg, err: err, calls: &calls})

	router := gin.New()
	router.GET("/", apiController.Index)
	router.GET("/langs/:username/:chartType", apiController.GetLanguagesChart)

	return router, &calls
}

func TestGetLanguagesChart(t *testing.T) {
	router, calls := setupRouter(`<svg width="400"></svg>`, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/langs/octocat/donut?border_color=ff0000&text_color=%23333&hole_radius_percentage=55", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, `<svg width="400"></svg>`, w.Body.String())

	require.Len(t, *calls, 1)

	expectedOptions := model.DefaultChartOptions()
	expectedOptions.BorderColor = "#ff0000"
	expectedOptions.TextColor = "#333"
	expectedOptions.HoleRadiusPercentage = 55

	assert.Equal(t, generateCall{username: "octocat", chartType: model.ChartTypeDonut, options: expectedOptions}, (*calls)[0])
}

func TestGetLanguagesChartQueryFallback(t *testing.T) {
	tests := []struct {
		name               string
		url                string
		expectedChartType  model.ChartType
		expectedHoleRadius int
	}{
		{
			name:               "Donut with hole out of range",
			url:                "/langs/octocat/donut?hole_radius_percentage=150",
			expectedChartType:  model.ChartTypeDonut,
			expectedHoleRadius: 40,
		},
		{
			name:               "Donut with non numeric hole",
			url:                "/langs/octocat/donut?hole_radius_percentage=big",
			expectedChartType:  model.ChartTypeDonut,
			expectedHoleRadius: 40,
		},
		{
			name:               "Pie ignores hole",
			url:                "/langs/octocat/pie?hole_radius_percentage=30",
			expectedChartType:  model.ChartTypePie,
			expectedHoleRadius: 0,
		},
		{
			name:               "Chart type is case insensitive",
			url:                "/langs/octocat/BAR",
			expectedChartType:  model.ChartTypeBar,
			expectedHoleRadius: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, calls := setupRouter("<svg></svg>", nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			require.Len(t, *calls, 1)
			assert.Equal(t, tt.expectedChartType, (*calls)[0].chartType)
			assert.Equal(t, tt.expectedHoleRadius, (*calls)[0].options.HoleRadiusPercentage)
		})
	}
}

func TestGetLanguagesChartErrors(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		serviceErr   error
		expectedCode string
		expectedBody string
		expectCall   bool
	}{
		{
			name:         "Unsupported chart type",
			url:          "/langs/octocat/radar",
			expectedCode: "UNSUPPORTED_CHART_TYPE",
			expectedBody: "Error: Something went wrong - " + model.UnsupportedChartTypeError{ChartType: "radar"}.Error(),
		},
		{
			name:         "Unknown user",
			url:          "/langs/ghost/pie",
			serviceErr:   model.UserNotFoundError{Username: "ghost"},
			expectedCode: "USER_NOT_FOUND",
			expectedBody: "Error: Something went wrong - user ghost not found",
			expectCall:   true,
		},
		{
			name:         "Unexpected error",
			url:          "/langs/octocat/bar",
			serviceErr:   errors.New("boom"),
			expectedCode: "GENERIC_ERROR",
			expectedBody: "Error: Something went wrong - boom",
			expectCall:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, calls := setupRouter("", tt.serviceErr)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.expectedCode, w.Header().Get(ErrorCodeHeader))
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.expectCall, len(*calls) == 1)
		})
	}
}

func TestIndex(t *testing.T) {
	router, _ := setupRouter("", nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "charts.example.com"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://charts.example.com/langs/<username>/<chartType>", body["Langs Usage"])
}
