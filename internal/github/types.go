package github

import "time"

// Organization is the decoded payload of /orgs/{org}. ReposURL is the
// only field the client itself depends on; the rest is carried for
// display.
type Organization struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ReposURL    string `json:"repos_url"`
	HTMLURL     string `json:"html_url"`
	PublicRepos int    `json:"public_repos"`
}

// License is the license block of a repository record. Key is the short
// SPDX-style identifier, e.g. "apache-2.0".
type License struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type Repo struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Private         bool     `json:"private"`
	Fork            bool     `json:"fork"`
	Description     string   `json:"description"`
	Language        string   `json:"language"`
	DefaultBranch   string   `json:"default_branch"`
	StargazersCount int      `json:"stargazers_count"`
	License         *License `json:"license"`
}

type CachedOrg struct {
	Org      string    `json:"org"`
	Repos    []Repo    `json:"repos"`
	CachedAt time.Time `json:"cached_at"`
	TTL      string    `json:"ttl"`
}
