// Package update asks GitHub whether a newer release exists. It never
// downloads or replaces anything.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	DefaultRepo = "appengine-ltd/plantagotchi"

	githubAPI = "https://api.github.com"

	maxReleaseBytes = 1 << 20
)

var repoPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

type Checker struct {
	Repo    string
	BaseURL string
	Client  *http.Client
	// AllowedHosts limits which API hosts may be contacted. Empty means the
	// host of BaseURL only.
	AllowedHosts map[string]struct{}
}

type Result struct {
	Current   string
	Latest    string
	Available bool
}

func (r Result) String() string {
	switch {
	case r.Available:
		return fmt.Sprintf("Update available: v%s → v%s.", r.Current, r.Latest)
	case r.Current == r.Latest:
		return fmt.Sprintf("Up to date (v%s).", r.Latest)
	default:
		return fmt.Sprintf("Latest release is v%s.", r.Latest)
	}
}

func NewChecker() *Checker {
	return &Checker{
		Repo:    DefaultRepo,
		BaseURL: githubAPI,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// Check compares currentVersion with the latest release tag. Dev builds never
// report an update, only the latest version.
func (c *Checker) Check(ctx context.Context, currentVersion string) (Result, error) {
	tag, err := c.latestTag(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Current: strings.TrimPrefix(currentVersion, "v"),
		Latest:  strings.TrimPrefix(tag, "v"),
	}
	if res.Current != "" && res.Current != "dev" && res.Current != res.Latest {
		res.Available = true
	}
	return res, nil
}

type githubRelease struct {
	TagName string `json:"tag_name"`
}

func (c *Checker) latestTag(ctx context.Context) (string, error) {
	if err := validateRepo(c.Repo); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/releases/latest", strings.TrimSuffix(c.BaseURL, "/"), c.Repo)
	if err := validateHTTPSURL(endpoint, c.allowedHosts()); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	// #nosec G107 -- URL scheme and host are validated above.
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("github latest release: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var rel githubRelease
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReleaseBytes)).Decode(&rel); err != nil {
		return "", fmt.Errorf("decode latest release: %w", err)
	}
	if rel.TagName == "" {
		return "", errors.New("latest release has no tag_name")
	}
	return rel.TagName, nil
}

func (c *Checker) allowedHosts() map[string]struct{} {
	if len(c.AllowedHosts) > 0 {
		return c.AllowedHosts
	}
	hosts := map[string]struct{}{}
	if parsed, err := url.Parse(c.BaseURL); err == nil {
		hosts[strings.ToLower(parsed.Hostname())] = struct{}{}
	}
	return hosts
}

func validateRepo(repo string) error {
	if !repoPattern.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %q", repo)
	}
	return nil
}

func validateHTTPSURL(raw string, allowedHosts map[string]struct{}) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !strings.EqualFold(parsed.Scheme, "https") {
		return fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	host := strings.ToLower(parsed.Hostname())
	if _, ok := allowedHosts[host]; !ok {
		return fmt.Errorf("unsupported URL host: %s", host)
	}
	return nil
}
