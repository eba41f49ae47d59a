package cmd

import (
	"fmt"

	"github.com/kirksw/orgls/internal/config"
	"github.com/kirksw/orgls/internal/github"
	"github.com/kirksw/orgls/internal/utils"
)

// newOrgClient builds an org client from config: token lookup, optional
// API base override for GitHub Enterprise.
func newOrgClient(cfg *config.Config, org string) (*github.OrgClient, error) {
	if err := utils.ValidateOrgName(org); err != nil {
		return nil, err
	}

	client := github.NewOrgClient(org, github.NewHTTPGetter(cfg.GetGitHubToken()))
	if base := cfg.GetAPIBase(); base != "" {
		client.SetBaseURL(base)
	}

	return client, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
