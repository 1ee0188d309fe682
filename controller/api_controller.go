package controller

import (
	"net/http"

	"github.com/FlorianRuen/langs-usage-chart/config"
	"github.com/FlorianRuen/langs-usage-chart/logger"
	"github.com/FlorianRuen/langs-usage-chart/model"
	"github.com/FlorianRuen/langs-usage-chart/service"
	"github.com/gin-gonic/gin"
)

const (
	ErrorCodeHeader = "X-Error-Code"
	svgContentType  = "image/svg+xml"
)

type APIController interface {
	GetLanguagesChart(c *gin.Context)
	Index(c *gin.Context)
}

type apiController struct {
	langsService service.LangsService
	config       config.Config
}

func NewAPIController(config config.Config, langsService service.LangsService) APIController {
	return apiController{
		langsService: langsService,
		config:       config,
	}
}

// GetLanguagesChart render the languages usage chart of a github user
// any failure is sent back as plain text with a 500 status
func (s apiController) GetLanguagesChart(c *gin.Context) {
	username := c.Param("username")

	chartType, err := model.ParseChartType(c.Param("chartType"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	// a malformed query can't fail the request, ChartQuery only holds strings
	var chartQuery model.ChartQuery
	if err := c.ShouldBindQuery(&chartQuery); err != nil {
		s.abortWithError(c, err)
		return
	}

	svg, err := s.langsService.GenerateChart(c.Request.Context(), username, chartType, chartQuery.ToChartOptions(chartType))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, svgContentType, []byte(svg))
}

// Index list the available routes
func (s apiController) Index(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	c.JSON(http.StatusOK, gin.H{
		"Langs Usage": scheme + "://" + c.Request.Host + "/langs/<username>/<chartType>",
	})
}

func (s apiController) abortWithError(c *gin.Context, err error) {
	apiErr := model.NewAPIError(err)

	logger.FromContext(c.Request.Context()).
		WithError(err).
		WithField("code", apiErr.Code).
		Warning("unable to generate chart")

	c.Header(ErrorCodeHeader, apiErr.Code)
	c.String(http.StatusInternalServerError, apiErr.ResponseBody())
}
