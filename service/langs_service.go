package service

import (
	"context"

	"github.com/FlorianRuen/langs-usage-chart/chart"
	"github.com/FlorianRuen/langs-usage-chart/logger"
	"github.com/FlorianRuen/langs-usage-chart/model"
	"github.com/FlorianRuen/langs-usage-chart/stats"
	"github.com/FlorianRuen/langs-usage-chart/tracing"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type LangsService interface {
	GenerateChart(ctx context.Context, username string, chartType model.ChartType, options model.ChartOptions) (string, error)
}

type langsService struct {
	githubService GithubService
}

func NewLangsService(githubService GithubService) LangsService {
	return langsService{
		githubService: githubService,
	}
}

// GenerateChart fetch the repositories of the user, compute the languages usage and render the chart
// the whole request fails on the first error, there is no fallback chart
func (s langsService) GenerateChart(ctx context.Context, username string, chartType model.ChartType, options model.ChartOptions) (string, error) {
	ctx, span := tracing.Tracer().Start(ctx, "GenerateChart", trace.WithAttributes(
		attribute.String("github.username", username),
		attribute.String("chart.type", string(chartType)),
	))
	defer span.End()

	repos, err := s.fetchRepositories(ctx, username)
	if err != nil {
		return "", recordError(span, err)
	}

	_, statsSpan := tracing.Tracer().Start(ctx, "ComputeStats")
	languagesStats, err := stats.ComputeStats(repos)
	statsSpan.SetAttributes(attribute.Int("languages.count", len(languagesStats)))
	statsSpan.End()

	if err != nil {
		return "", recordError(span, err)
	}

	logger.FromContext(ctx).WithFields(log.Fields{
		"username":      username,
		"repositories":  len(repos),
		"languages":     len(languagesStats),
		"chartType":     chartType,
		"holeRadiusPct": options.HoleRadiusPercentage,
	}).Debug("languages stats computed, will render chart")

	_, renderSpan := tracing.Tracer().Start(ctx, "RenderChart")
	svg, err := chart.Render(username, languagesStats, chartType, options)
	renderSpan.End()

	if err != nil {
		return "", recordError(span, err)
	}

	return svg, nil
}

func (s langsService) fetchRepositories(ctx context.Context, username string) ([]*model.Repository, error) {
	ctx, span := tracing.Tracer().Start(ctx, "FetchUserRepositories")
	defer span.End()

	repos, err := s.githubService.FetchUserRepositories(ctx, username)
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.Int("repositories.count", len(repos)))
	return repos, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
