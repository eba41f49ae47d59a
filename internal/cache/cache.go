package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kirksw/orgls/internal/github"
)

const CacheDir = ".cache/orgls"
const DefaultTTL = 24 * time.Hour

// OrgCache stores fetched repository listings per organization as JSON
// files on disk. It is a CLI convenience only; repos are stored in the
// order the API returned them.
type OrgCache struct {
	cacheDir string
	ttl      time.Duration
}

type CacheMetadata struct {
	LastRefreshed time.Time     `json:"last_refreshed"`
	TTL           time.Duration `json:"ttl"`
}

func New() *OrgCache {
	homeDir, _ := os.UserHomeDir()
	cacheDir := filepath.Join(homeDir, CacheDir)

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		cacheDir = os.TempDir()
	}

	return &OrgCache{
		cacheDir: cacheDir,
		ttl:      DefaultTTL,
	}
}

func (c *OrgCache) SetTTL(ttl time.Duration) {
	c.ttl = ttl
}

func (c *OrgCache) Get(org string) (*github.CachedOrg, error) {
	cached, err := c.GetStale(org)
	if err != nil {
		return nil, err
	}

	if c.IsExpired(org) {
		return nil, fmt.Errorf("cache expired for org: %s", org)
	}

	return cached, nil
}

// GetStale returns the cached listing regardless of TTL.
func (c *OrgCache) GetStale(org string) (*github.CachedOrg, error) {
	data, err := os.ReadFile(c.orgPath(org))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("org not cached: %s", org)
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var cached github.CachedOrg
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache: %w", err)
	}

	return &cached, nil
}

func (c *OrgCache) Set(org string, repos []github.Repo) error {
	cached := github.CachedOrg{
		Org:      org,
		Repos:    repos,
		CachedAt: time.Now(),
		TTL:      c.ttl.String(),
	}

	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(c.orgPath(org), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	metadata := CacheMetadata{
		LastRefreshed: time.Now(),
		TTL:           c.ttl,
	}

	metaData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := os.WriteFile(c.metadataPath(org), metaData, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	return nil
}

func (c *OrgCache) Refresh(org string, fetchRepos func() ([]github.Repo, error)) error {
	repos, err := fetchRepos()
	if err != nil {
		return fmt.Errorf("failed to fetch repos: %w", err)
	}

	return c.Set(org, repos)
}

func (c *OrgCache) Invalidate(org string) error {
	if err := os.Remove(c.orgPath(org)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache: %w", err)
	}

	if err := os.Remove(c.metadataPath(org)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete metadata: %w", err)
	}

	return nil
}

// Search matches cached repos by name, full name, or description,
// across every cached organization.
func (c *OrgCache) Search(pattern string) ([]github.Repo, error) {
	orgs, err := c.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read cache dir: %w", err)
	}

	lowered := strings.ToLower(pattern)

	var matches []github.Repo
	for _, org := range orgs {
		cached, err := c.GetStale(org)
		if err != nil {
			continue
		}
		for _, repo := range cached.Repos {
			if strings.Contains(strings.ToLower(repo.Name), lowered) ||
				strings.Contains(strings.ToLower(repo.FullName), lowered) ||
				strings.Contains(strings.ToLower(repo.Description), lowered) {
				matches = append(matches, repo)
			}
		}
	}

	return matches, nil
}

func (c *OrgCache) ListAll() ([]string, error) {
	var orgs []string

	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		if strings.HasSuffix(entry.Name(), ".meta.json") {
			continue
		}

		orgs = append(orgs, strings.TrimSuffix(entry.Name(), ".json"))
	}

	return orgs, nil
}

func (c *OrgCache) IsExpired(org string) bool {
	data, err := os.ReadFile(c.metadataPath(org))
	if err != nil {
		return true
	}

	var metadata CacheMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return true
	}

	return time.Since(metadata.LastRefreshed) > metadata.TTL
}

func (c *OrgCache) orgPath(org string) string {
	return filepath.Join(c.cacheDir, fmt.Sprintf("%s.json", org))
}

func (c *OrgCache) metadataPath(org string) string {
	return filepath.Join(c.cacheDir, fmt.Sprintf("%s.meta.json", org))
}
