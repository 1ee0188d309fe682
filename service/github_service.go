package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/FlorianRuen/langs-usage-chart/config"
	"github.com/FlorianRuen/langs-usage-chart/logger"
	"github.com/FlorianRuen/langs-usage-chart/model"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
)

type GithubService interface {
	FetchUserRepositories(ctx context.Context, username string) ([]*model.Repository, error)
	HandleRequestErrors(username string, err error) error
}

type githubService struct {
	githubClient *github.Client
	config       config.Config
}

// NewGithubService
// the client is created outside of the service to easily replace it with a mocked one in tests
func NewGithubService(config config.Config, githubClient *github.Client) GithubService {
	return githubService{
		githubClient: githubClient,
		config:       config,
	}
}

// NewGithubClient build the github client from configuration
func NewGithubClient(cfg config.Config, httpClient *http.Client) (*github.Client, error) {
	githubClient := github.NewClient(httpClient)

	if cfg.Github.Token != "" {
		log.Debug("will setup github client with authorization token")
		githubClient = githubClient.WithAuthToken(cfg.Github.Token)
	}

	// the base url must end with a slash, go-github resolves the endpoints relatively to it
	if cfg.Github.BaseURL != "" {
		baseURL, err := url.Parse(cfg.Github.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github base url: %w", err)
		}

		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}

		githubClient.BaseURL = baseURL
	}

	return githubClient, nil
}

// FetchUserRepositories list the public repositories owned by a user
// only the first page is loaded
func (s githubService) FetchUserRepositories(ctx context.Context, username string) ([]*model.Repository, error) {
	logEntry := logger.FromContext(ctx).WithField("username", username)
	logEntry.Info("fetch repositories of user from github")

	perPage := s.config.Github.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}

	repos, _, err := s.githubClient.Repositories.ListByUser(ctx, username, &github.RepositoryListByUserOptions{
		Type: "owner",
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: perPage,
		},
	})

	if err != nil {
		return nil, s.HandleRequestErrors(username, err)
	}

	repositories := make([]*model.Repository, 0, len(repos))

	for i, r := range repos {
		if r == nil {
			logEntry.WithField("index", i).Debug("nil repository found in github response")
			return nil, model.InvalidInputError{Reason: fmt.Sprintf("repository at index %d is nil", i)}
		}

		// name is only informational, the language is what matters for the stats
		if r.Name == nil {
			logEntry.WithField("index", i).Warning("repository found without name")
		}

		// language can be null for empty repositories or repositories github can't analyze
		repositories = append(repositories, &model.Repository{
			Name:     r.GetName(),
			Language: r.Language,
		})
	}

	logEntry.WithField("numberOfRepositories", len(repositories)).Debug("repositories loaded from github")

	return repositories, nil
}

// HandleRequestErrors convert errors from github client to the service errors
func (s githubService) HandleRequestErrors(username string, err error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.FetchError{RateLimited: true, Err: err}
	}

	// secondary rate limit, triggered by too many requests in a short period
	var abuseRateLimitErr *github.AbuseRateLimitError
	if errors.As(err, &abuseRateLimitErr) {
		log.Warning("the Github secondary rate limit has been reached. Wait a few minutes before retrying")
		return model.FetchError{RateLimited: true, Err: err}
	}

	var errorResponse *github.ErrorResponse
	if errors.As(err, &errorResponse) && errorResponse.Response != nil && errorResponse.Response.StatusCode == http.StatusNotFound {
		return model.UserNotFoundError{Username: username}
	}

	log.WithError(err).Error("error catched when fetching data from github")
	return model.FetchError{Err: err}
}
