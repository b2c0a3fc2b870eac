// Package release looks up the latest published todayiwill release.
package release

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v68/github"
)

// Result compares the running version with the latest release
type Result struct {
	Current         string
	Latest          string
	UpdateAvailable bool
}

type Checker struct {
	client *github.Client
	owner  string
	repo   string
}

type Option func(*Checker) error

// WithBaseURL points the checker at another GitHub API endpoint
func WithBaseURL(rawURL string) Option {
	return func(c *Checker) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}

		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("invalid base url %q: %w", rawURL, err)
		}

		c.client.BaseURL = u
		return nil
	}
}

// NewChecker takes the repository as "owner/name"
func NewChecker(httpClient *http.Client, repository string, opts ...Option) (*Checker, error) {
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, fmt.Errorf("invalid repository %q, expected owner/name", repository)
	}

	c := &Checker{
		client: github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Latest returns the tag of the latest release
func (c *Checker) Latest(ctx context.Context) (string, error) {
	rel, _, err := c.client.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
	if err != nil {
		return "", fmt.Errorf("failed fetching latest release of %s/%s: %w", c.owner, c.repo, err)
	}

	tag := rel.GetTagName()
	if tag == "" {
		return "", fmt.Errorf("latest release of %s/%s has no tag", c.owner, c.repo)
	}
	return tag, nil
}

// Check compares current against the latest release. Versions that are not
// semver are compared as plain strings.
func (c *Checker) Check(ctx context.Context, current string) (Result, error) {
	latest, err := c.Latest(ctx)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Current:         current,
		Latest:          latest,
		UpdateAvailable: newer(latest, current),
	}, nil
}

func newer(latest, current string) bool {
	lv, err := semver.NewVersion(latest)
	if err != nil {
		return strings.TrimPrefix(latest, "v") != strings.TrimPrefix(current, "v")
	}

	cv, err := semver.NewVersion(current)
	if err != nil {
		return true
	}

	return lv.GreaterThan(cv)
}
