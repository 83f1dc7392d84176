package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/bumped/pkg/git"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
	// TokenEnv holds the API token used for authenticated calls.
	TokenEnv = "GITHUB_TOKEN"
)

// Handles both https://github.com/owner/repo.git and git@github.com:owner/repo.git.
var remotePattern = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client        *github.Client
	git           git.Git
	authenticated bool
}

// NewGitHub creates a new GitHub forge instance, authenticated when GITHUB_TOKEN is set.
func NewGitHub(g git.Git) *GitHub {
	if token := os.Getenv(TokenEnv); token != "" {
		return NewGitHubWithClient(github.NewTokenClient(context.Background(), token), g, true)
	}
	return NewGitHubWithClient(github.NewClient(nil), g, false)
}

// NewGitHubWithClient creates a GitHub forge around an existing client.
func NewGitHubWithClient(client *github.Client, g git.Git, authenticated bool) *GitHub {
	return &GitHub{
		client:        client,
		git:           g,
		authenticated: authenticated,
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// ValidateForgeRepository validates that the remote points to GitHub.
func (g *GitHub) ValidateForgeRepository(repoPath, remote string) error {
	url, err := g.git.GetRemoteURL(repoPath, remote)
	if err != nil {
		return fmt.Errorf("failed to get remote %s: %w", remote, err)
	}

	if !strings.Contains(url, GitHubDomain) {
		return fmt.Errorf("%w: %s is not hosted on %s", ErrUnsupportedForge, url, GitHubDomain)
	}

	return nil
}

// CreateRelease publishes a GitHub release for params.Tag.
func (g *GitHub) CreateRelease(ctx context.Context, params ReleaseParams) (string, error) {
	if !g.authenticated {
		return "", fmt.Errorf("%w: set the %s environment variable", ErrUnauthorized, TokenEnv)
	}

	url, err := g.git.GetRemoteURL(params.RepoPath, params.Remote)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", params.Remote, err)
	}

	owner, repo, err := ParseRepository(url)
	if err != nil {
		return "", err
	}

	name := params.Name
	if name == "" {
		name = params.Tag
	}

	release, resp, err := g.client.Repositories.CreateRelease(ctx, owner, repo, &github.RepositoryRelease{
		TagName:    github.String(params.Tag),
		Name:       github.String(name),
		Body:       github.String(params.Body),
		Draft:      github.Bool(params.Draft),
		Prerelease: github.Bool(params.Prerelease),
	})
	if err != nil {
		return "", g.handleGitHubError(err, resp, owner+"/"+repo)
	}

	return release.GetHTMLURL(), nil
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, repository string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrRepositoryNotFound, repository)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check %s environment variable", ErrUnauthorized, TokenEnv)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("%w: %w", ErrReleaseFailed, err)
}

// ParseRepository extracts the owner and repository name of a GitHub remote URL.
func ParseRepository(url string) (owner, repo string, err error) {
	matches := remotePattern.FindStringSubmatch(strings.TrimSpace(url))
	if len(matches) != 3 {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRemote, url)
	}
	return matches[1], matches[2], nil
}
