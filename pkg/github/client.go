// Package github looks up release pull requests through the GitHub API.
// It exists so an operator can find the PR to hand to the update and
// publish subcommands; all repository mutation still goes through the gh
// CLI in the release workflow.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// ReleaseBranchPrefix identifies branches created by the release
// initiator.
const ReleaseBranchPrefix = "release-"

// Client wraps a go-github client scoped to release PR queries.
type Client struct {
	gh *github.Client
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at a different API endpoint (tests).
func WithBaseURL(base string) Option {
	return func(c *Client) error {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", base, err)
		}
		c.gh.BaseURL = u
		return nil
	}
}

// NewClient creates a GitHub API client. An empty token yields an
// unauthenticated client, which is enough for public repositories.
func NewClient(token string, opts ...Option) (*Client, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = 30 * time.Second
	}

	c := &Client{gh: github.NewClient(httpClient)}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ReleasePR is an open pull request staged by the release initiator.
type ReleasePR struct {
	Number    int
	Title     string
	HeadRef   string
	URL       string
	CreatedAt time.Time
}

// ListReleasePRs returns the open pull requests on owner/repo whose head
// branch carries the release prefix, newest first (GitHub's default
// ordering).
func (c *Client) ListReleasePRs(ctx context.Context, owner, repo string) ([]ReleasePR, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var out []ReleasePR
	for {
		prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", owner, repo, err)
		}

		for _, pr := range prs {
			head := pr.GetHead().GetRef()
			if !strings.HasPrefix(head, ReleaseBranchPrefix) {
				continue
			}
			out = append(out, ReleasePR{
				Number:    pr.GetNumber(),
				Title:     pr.GetTitle(),
				HeadRef:   head,
				URL:       pr.GetHTMLURL(),
				CreatedAt: pr.GetCreatedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// SplitRepo parses an "owner/name" repository reference.
func SplitRepo(full string) (owner, name string, err error) {
	parts := strings.Split(full, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q (expected owner/name)", full)
	}
	return parts[0], parts[1], nil
}
