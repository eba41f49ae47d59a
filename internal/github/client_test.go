package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// fakeGetter serves canned payloads keyed by URL and counts requests.
type fakeGetter struct {
	payloads map[string]string
	calls    map[string]int
	err      error
}

func newFakeGetter(payloads map[string]string) *fakeGetter {
	return &fakeGetter{
		payloads: payloads,
		calls:    make(map[string]int),
	}
}

func (f *fakeGetter) GetJSON(url string, v any) error {
	f.calls[url]++
	if f.err != nil {
		return f.err
	}
	payload, ok := f.payloads[url]
	if !ok {
		return &StatusError{Code: 404, Body: "Not Found"}
	}
	return json.Unmarshal([]byte(payload), v)
}

func TestOrgFetchesDerivedURL(t *testing.T) {
	tests := []struct {
		org  string
		want Organization
	}{
		{"google", Organization{Login: "google"}},
		{"abc", Organization{Login: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.org, func(t *testing.T) {
			url := fmt.Sprintf("https://api.github.com/orgs/%s", tt.org)
			getter := newFakeGetter(map[string]string{
				url: fmt.Sprintf(`{"login":%q}`, tt.org),
			})

			client := NewOrgClient(tt.org, getter)
			org, err := client.Org()
			if err != nil {
				t.Fatalf("Org() error = %v", err)
			}
			if *org != tt.want {
				t.Fatalf("Org() = %+v, want %+v", *org, tt.want)
			}
			if getter.calls[url] != 1 {
				t.Fatalf("requests to %s = %d, want 1", url, getter.calls[url])
			}
		})
	}
}

func TestOrgFetchedOncePerClient(t *testing.T) {
	url := "https://api.github.com/orgs/google"
	getter := newFakeGetter(map[string]string{
		url: `{"login":"google","repos_url":"https://api.github.com/orgs/google/repos"}`,
	})

	client := NewOrgClient("google", getter)
	for i := 0; i < 3; i++ {
		if _, err := client.Org(); err != nil {
			t.Fatalf("Org() call %d error = %v", i+1, err)
		}
	}
	if _, err := client.ReposURL(); err != nil {
		t.Fatalf("ReposURL() error = %v", err)
	}
	if _, err := client.OrgRaw(); err != nil {
		t.Fatalf("OrgRaw() error = %v", err)
	}

	if getter.calls[url] != 1 {
		t.Fatalf("requests = %d, want 1 (org payload must be memoized)", getter.calls[url])
	}
}

func TestOrgErrorMemoized(t *testing.T) {
	getter := newFakeGetter(nil)
	getter.err = errors.New("connection refused")

	client := NewOrgClient("google", getter)
	_, err1 := client.Org()
	_, err2 := client.Org()

	if err1 == nil || err2 == nil {
		t.Fatal("Org() should fail when the getter fails")
	}
	if !errors.Is(err1, getter.err) || !errors.Is(err2, getter.err) {
		t.Fatalf("errors not propagated unchanged: %v, %v", err1, err2)
	}
	if getter.calls["https://api.github.com/orgs/google"] != 1 {
		t.Fatal("failed org fetch should not be retried")
	}
}

func TestReposURL(t *testing.T) {
	getter := newFakeGetter(map[string]string{
		"https://api.github.com/orgs/google": `{"repos_url":"https://api.github.com/users/google/repos"}`,
	})

	client := NewOrgClient("google", getter)
	url, err := client.ReposURL()
	if err != nil {
		t.Fatalf("ReposURL() error = %v", err)
	}
	if url != "https://api.github.com/users/google/repos" {
		t.Fatalf("ReposURL() = %s, want https://api.github.com/users/google/repos", url)
	}
}

func TestReposURLMissingField(t *testing.T) {
	getter := newFakeGetter(map[string]string{
		"https://api.github.com/orgs/google": `{"login":"google"}`,
	})

	client := NewOrgClient("google", getter)
	if _, err := client.ReposURL(); err == nil {
		t.Fatal("ReposURL() should fail when repos_url is absent")
	}
}

func TestPublicRepos(t *testing.T) {
	reposURL := "https://api.github.com/users/google/repos"
	getter := newFakeGetter(map[string]string{
		"https://api.github.com/orgs/google": fmt.Sprintf(`{"repos_url":%q}`, reposURL),
		reposURL: `[
			{"name":"episodes.dart","full_name":"google/episodes.dart"},
			{"name":"kratu","full_name":"google/kratu"}
		]`,
	})

	client := NewOrgClient("google", getter)
	names, err := client.PublicRepos("")
	if err != nil {
		t.Fatalf("PublicRepos() error = %v", err)
	}

	want := []string{"episodes.dart", "kratu"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("PublicRepos() = %v, want %v", names, want)
	}
	if getter.calls[reposURL] != 1 {
		t.Fatalf("repo list requests = %d, want 1", getter.calls[reposURL])
	}
}

func TestPublicReposLicenseFilter(t *testing.T) {
	reposURL := "https://api.github.com/orgs/google/repos"
	getter := newFakeGetter(map[string]string{
		"https://api.github.com/orgs/google": fmt.Sprintf(`{"repos_url":%q}`, reposURL),
		reposURL: `[
			{"name":"truth","license":{"key":"apache-2.0"}},
			{"name":"ruby-openid-apps-discovery"},
			{"name":"autoparse","license":{"key":"apache-2.0"}},
			{"name":"episodes.dart","license":{"key":"bsd-3-clause"}}
		]`,
	})

	client := NewOrgClient("google", getter)
	names, err := client.PublicRepos("apache-2.0")
	if err != nil {
		t.Fatalf("PublicRepos() error = %v", err)
	}

	want := []string{"truth", "autoparse"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("PublicRepos(apache-2.0) = %v, want %v", names, want)
	}
}

func TestPublicReposPropagatesListError(t *testing.T) {
	reposURL := "https://api.github.com/orgs/google/repos"
	getter := newFakeGetter(map[string]string{
		"https://api.github.com/orgs/google": fmt.Sprintf(`{"repos_url":%q}`, reposURL),
	})

	client := NewOrgClient("google", getter)
	_, err := client.PublicRepos("")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("PublicRepos() error = %v, want *StatusError", err)
	}
	if statusErr.Code != 404 {
		t.Fatalf("status = %d, want 404", statusErr.Code)
	}
}

func TestHasLicense(t *testing.T) {
	tests := []struct {
		name string
		repo Repo
		key  string
		want bool
	}{
		{
			name: "matching key",
			repo: Repo{License: &License{Key: "bsd-3-clause"}},
			key:  "bsd-3-clause",
			want: true,
		},
		{
			name: "different key",
			repo: Repo{License: &License{Key: "bsl-1.0"}},
			key:  "bsd-3-clause",
			want: false,
		},
		{
			name: "no license",
			repo: Repo{Name: "unlicensed"},
			key:  "bsd-3-clause",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasLicense(tt.repo, tt.key); got != tt.want {
				t.Fatalf("HasLicense() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLicenseCounts(t *testing.T) {
	repos := []Repo{
		{Name: "a", License: &License{Key: "apache-2.0"}},
		{Name: "b", License: &License{Key: "apache-2.0"}},
		{Name: "c", License: &License{Key: "mit"}},
		{Name: "d"},
	}

	counts := LicenseCounts(repos)
	want := map[string]int{"apache-2.0": 2, "mit": 1, "": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("LicenseCounts() = %v, want %v", counts, want)
	}
}

func TestOrgRawNestedFields(t *testing.T) {
	getter := newFakeGetter(map[string]string{
		"https://api.github.com/orgs/google": `{"login":"google","plan":{"name":"enterprise"}}`,
	})

	client := NewOrgClient("google", getter)
	raw, err := client.OrgRaw()
	if err != nil {
		t.Fatalf("OrgRaw() error = %v", err)
	}
	if raw["login"] != "google" {
		t.Fatalf(`raw["login"] = %v, want google`, raw["login"])
	}
	plan, ok := raw["plan"].(map[string]any)
	if !ok || plan["name"] != "enterprise" {
		t.Fatalf("nested plan not preserved: %v", raw["plan"])
	}
}
