// Package gateway provides a gateway to the GitHub repository search API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/config"
)

// Sort keys accepted by the repository search endpoint.
const (
	SortStars   = "stars"
	SortForks   = "forks"
	SortUpdated = "updated"
)

// Sort orders accepted by the repository search endpoint.
const (
	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// maxPerPage is the hard per_page ceiling of the search endpoint.
const maxPerPage = 100

// ErrMissingToken is returned when no API credential is configured. It is
// raised before any network call is made.
var ErrMissingToken = errors.New("GITHUB_TOKEN is not configured")

// APIError carries a non-2xx response from the search endpoint. It is
// surfaced verbatim to the user; the gateway never retries.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github search failed with status %d: %s", e.StatusCode, e.Message)
}

// genericHint stands in for the provider message when the error body has none.
const genericHint = "check your token and rate limit"

// Searcher defines the behavior of a gateway fetching repository metadata.
type Searcher interface {
	SearchRepositories(ctx context.Context, query, sort, order string, limit int) ([]*github.Repository, error)
}

// GitHubGateway is the concrete implementation of the Searcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// It fails with ErrMissingToken when cfg carries no credential.
func NewGitHubGateway(cfg config.Config, logger *log.Logger) (*GitHubGateway, error) {
	if !cfg.HasToken() {
		return nil, ErrMissingToken
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: &oauth2.Transport{Source: ts},
	}
	client := github.NewClient(httpClient)
	if cfg.APIBaseURL != "" {
		base, err := url.Parse(cfg.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.APIBaseURL, err)
		}
		client.BaseURL = base
	}

	return &GitHubGateway{client: client, logger: logger}, nil
}

// SearchRepositories issues a single search request and returns at most
// limit raw repository records, in the provider's response order. It does
// not retry and does not paginate beyond one page; zero matches is a
// successful empty result.
func (g *GitHubGateway) SearchRepositories(ctx context.Context, query, sort, order string, limit int) ([]*github.Repository, error) {
	if limit < 1 {
		limit = 1
	} else if limit > maxPerPage {
		limit = maxPerPage
	}

	opts := &github.SearchOptions{
		Sort:        sort,
		Order:       order,
		ListOptions: github.ListOptions{PerPage: limit},
	}
	g.logger.Debug("searching repositories", "query", query, "sort", sort, "order", order, "per_page", limit)

	result, _, err := g.client.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, mapSearchError(err)
	}

	items := result.Repositories
	// The provider already applies per_page; the cut is a guard only.
	if len(items) > limit {
		items = items[:limit]
	}
	g.logger.Debug("search complete", "total", result.GetTotal(), "returned", len(items))
	return items, nil
}

// mapSearchError translates client errors into the gateway taxonomy.
// Non-2xx responses become *APIError carrying the provider's message field
// when one was present; transport failures (including the client timeout)
// are wrapped and passed through.
func mapSearchError(err error) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		return &APIError{
			StatusCode: errResp.Response.StatusCode,
			Message:    messageOrHint(errResp.Message),
		}
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &APIError{
			StatusCode: rateErr.Response.StatusCode,
			Message:    messageOrHint(rateErr.Message),
		}
	}
	return fmt.Errorf("search repositories: %w", err)
}

func messageOrHint(msg string) string {
	if msg == "" {
		return genericHint
	}
	return msg
}
