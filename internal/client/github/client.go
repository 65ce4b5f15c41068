// Package github fetches commit details from the GitHub REST API
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	httpClient "github.com/proofofcontribution/permit-agent/internal/client/http"
	"github.com/proofofcontribution/permit-agent/internal/helpers"
	"github.com/proofofcontribution/permit-agent/internal/logger"
)

const (
	// DefaultBaseURL is the public GitHub API
	DefaultBaseURL = "https://api.github.com"

	acceptHeader   = "application/vnd.github+json"
	apiVersion     = "2022-11-28"
	userAgent      = "permit-agent"
	defaultTimeout = 30 * time.Second
)

// Client is a GitHub commits client
type Client struct {
	http  *httpClient.HTTPClient
	token string
}

// Options configures the client
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	MaxRetries int
}

// CommitResponse is the subset of GET /repos/{owner}/{repo}/commits/{ref} we use
type CommitResponse struct {
	SHA    string       `json:"sha"`
	Commit CommitDetail `json:"commit"`
	Files  []CommitFile `json:"files"`
}

// CommitDetail holds the git-level commit data. Message is a pointer so an
// absent key is told apart from an empty message.
type CommitDetail struct {
	Message *string       `json:"message"`
	Author  *CommitAuthor `json:"author"`
}

// MessageText returns the commit message, empty when absent
func (d CommitDetail) MessageText() string {
	if d.Message == nil {
		return ""
	}
	return *d.Message
}

// CommitAuthor is the git author. Email is required.
type CommitAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
}

// CommitFile is one changed file. Patch is absent for binary or oversized files.
type CommitFile struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Patch    string `json:"patch,omitempty"`
}

// Validate enforces the fields the resolver depends on
func (r *CommitResponse) Validate() error {
	if r.Commit.Message == nil {
		return apperrors.Upstreamf("commit response missing commit.message")
	}
	if r.Commit.Author == nil {
		return apperrors.Upstreamf("commit response missing commit.author")
	}
	if r.Commit.Author.Email == "" {
		return apperrors.Upstreamf("commit response missing commit.author.email")
	}
	return nil
}

// Diff joins every non-empty file patch with newlines, in upstream order
func (r *CommitResponse) Diff() string {
	patches := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		if f.Patch != "" {
			patches = append(patches, f.Patch)
		}
	}
	return strings.Join(patches, "\n")
}

// NewClient creates a GitHub client. Retries stay off unless MaxRetries > 0.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	clientOpts := []httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(timeout),
		httpClient.WithDefaultHeader("Accept", acceptHeader),
		httpClient.WithDefaultHeader("X-GitHub-Api-Version", apiVersion),
		httpClient.WithDefaultHeader("User-Agent", userAgent),
		httpClient.WithMiddleware(httpClient.LoggingMiddleware()),
	}
	if opts.MaxRetries > 0 {
		clientOpts = append(clientOpts, httpClient.WithRetryConfig(httpClient.DefaultRetryConfig(opts.MaxRetries)))
	}

	return &Client{
		http:  httpClient.NewHTTPClient(clientOpts...),
		token: opts.Token,
	}
}

// GetCommit fetches a single commit with its file patches.
// A 404 maps to a not found error; every other failure is an upstream error.
func (c *Client) GetCommit(ctx context.Context, repo, sha string) (*CommitResponse, error) {
	owner, name, ok := helpers.SplitRepo(repo)
	if !ok {
		return nil, apperrors.Validationf("invalid repository %q, expected owner/name", repo)
	}

	path := fmt.Sprintf("/repos/%s/%s/commits/%s", url.PathEscape(owner), url.PathEscape(name), url.PathEscape(sha))

	var commit CommitResponse
	err := c.http.GetJSON(ctx, path, &commit, httpClient.WithBearerToken(c.token))
	if err != nil {
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusNotFound {
				return nil, apperrors.Wrapf(err, apperrors.CodeNotFound, "commit %s not found in %s", sha, repo)
			}
			return nil, apperrors.Wrapf(err, apperrors.CodeUpstream, "github returned status %d for %s@%s", httpErr.StatusCode, repo, sha)
		}
		logger.Warn("GitHub commit fetch failed", zap.String("repo", repo), zap.String("sha", sha), zap.Error(err))
		return nil, apperrors.Wrap(pkgerrors.Wrap(err, "github request"), apperrors.CodeUpstream, "failed to fetch commit from github")
	}

	if err := commit.Validate(); err != nil {
		return nil, err
	}

	return &commit, nil
}
