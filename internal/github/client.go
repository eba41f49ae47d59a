package github

import (
	"encoding/json"
	"fmt"
	"sync"
)

const DefaultBaseURL = "https://api.github.com"

// OrgClient lists an organization's public repositories. The org payload
// is fetched at most once per instance; every other call is derived from
// that cached result or issues its own fetch through the injected Getter.
//
// The client performs no retries and no error translation: whatever the
// Getter returns surfaces to the caller as-is.
type OrgClient struct {
	orgName string
	getter  Getter
	baseURL string

	orgOnce sync.Once
	org     *Organization
	orgRaw  map[string]any
	orgErr  error
}

func NewOrgClient(orgName string, getter Getter) *OrgClient {
	return &OrgClient{
		orgName: orgName,
		getter:  getter,
		baseURL: DefaultBaseURL,
	}
}

// SetBaseURL overrides the API base, e.g. for GitHub Enterprise or a
// test server. Must be called before the first fetch.
func (c *OrgClient) SetBaseURL(url string) {
	c.baseURL = url
}

func (c *OrgClient) fetchOrg() {
	url := fmt.Sprintf("%s/orgs/%s", c.baseURL, c.orgName)

	var raw json.RawMessage
	if err := c.getter.GetJSON(url, &raw); err != nil {
		c.orgErr = err
		return
	}

	var org Organization
	if err := json.Unmarshal(raw, &org); err != nil {
		c.orgErr = fmt.Errorf("failed to decode organization: %w", err)
		return
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		c.orgErr = fmt.Errorf("failed to decode organization: %w", err)
		return
	}

	c.org = &org
	c.orgRaw = m
}

// Org returns the organization metadata, fetching it on first use.
func (c *OrgClient) Org() (*Organization, error) {
	c.orgOnce.Do(c.fetchOrg)
	return c.org, c.orgErr
}

// OrgRaw returns the undecoded org payload from the same single fetch
// that backs Org.
func (c *OrgClient) OrgRaw() (map[string]any, error) {
	c.orgOnce.Do(c.fetchOrg)
	return c.orgRaw, c.orgErr
}

// ReposURL returns the repos_url field of the organization payload.
func (c *OrgClient) ReposURL() (string, error) {
	org, err := c.Org()
	if err != nil {
		return "", err
	}
	if org.ReposURL == "" {
		return "", fmt.Errorf("organization %s has no repos_url", c.orgName)
	}
	return org.ReposURL, nil
}

// Repos fetches the organization's repository records from ReposURL.
// Unlike the org payload this is not memoized; each call issues a fetch.
func (c *OrgClient) Repos() ([]Repo, error) {
	url, err := c.ReposURL()
	if err != nil {
		return nil, err
	}

	var repos []Repo
	if err := c.getter.GetJSON(url, &repos); err != nil {
		return nil, err
	}

	return repos, nil
}

// PublicRepos returns the repository names in listing order. A non-empty
// license narrows the result to repos whose license key matches; repos
// without license metadata are excluded by the filter.
func (c *OrgClient) PublicRepos(license string) ([]string, error) {
	repos, err := c.Repos()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(repos))
	for _, repo := range repos {
		if license != "" && !HasLicense(repo, license) {
			continue
		}
		names = append(names, repo.Name)
	}

	return names, nil
}

// HasLicense reports whether repo carries the given license key. A repo
// with no license block never matches.
func HasLicense(repo Repo, key string) bool {
	return repo.License != nil && repo.License.Key == key
}

// LicenseCounts groups repos by license key. Repos without license
// metadata are counted under the empty key.
func LicenseCounts(repos []Repo) map[string]int {
	counts := make(map[string]int)
	for _, repo := range repos {
		key := ""
		if repo.License != nil {
			key = repo.License.Key
		}
		counts[key]++
	}
	return counts
}
