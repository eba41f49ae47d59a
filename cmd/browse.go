package cmd

import (
	"fmt"

	"github.com/kirksw/orgls/internal/cache"
	"github.com/kirksw/orgls/internal/github"
	"github.com/kirksw/orgls/internal/ui"
	"github.com/spf13/cobra"
)

var browseCached bool

var browseCmd = &cobra.Command{
	Use:   "browse <org>",
	Short: "Browse an organization's repositories interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().BoolVar(&browseCached, "cached", false, "browse the cached listing instead of fetching")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	org := args[0]

	var repos []github.Repo

	if browseCached {
		cached, err := cache.New().Get(org)
		if err != nil {
			return fmt.Errorf("failed to read cache (try 'orgls cache refresh %s'): %w", org, err)
		}
		repos = cached.Repos
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := newOrgClient(cfg, org)
		if err != nil {
			return err
		}

		repos, err = client.Repos()
		if err != nil {
			return err
		}
	}

	if len(repos) == 0 {
		fmt.Printf("No repositories in %s\n", org)
		return nil
	}

	result, err := ui.RunBrowse(org, repos)
	if err != nil {
		return err
	}
	if result.Cancelled {
		return nil
	}

	repo := result.Repo
	fmt.Println(repo.FullName)
	if repo.Description != "" {
		fmt.Printf("  %s\n", repo.Description)
	}
	if repo.License != nil {
		fmt.Printf("  License: %s\n", repo.License.Name)
	}
	if repo.Language != "" {
		fmt.Printf("  Language: %s\n", repo.Language)
	}
	fmt.Printf("  Stars: %d\n", repo.StargazersCount)

	return nil
}
