package cmd

import (
	"fmt"

	"github.com/kirksw/orgls/internal/github"
	"github.com/spf13/cobra"
)

var refreshCacheCmd = &cobra.Command{
	Use:   "refresh [org]",
	Short: "Refresh the cached listing for organization(s)",
	Long:  `Refresh the cached repository listing for the given organization, or for every organization configured under [organizations] when none is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRefreshCache,
}

func init() {
	cacheCmd.AddCommand(refreshCacheCmd)
}

func runRefreshCache(cmd *cobra.Command, args []string) error {
	cfg, c, err := loadConfigAndCache()
	if err != nil {
		return err
	}

	orgs := cfg.GetOrganizations()
	if len(args) == 1 {
		orgs = []string{args[0]}
	}
	if len(orgs) == 0 {
		return fmt.Errorf("no organizations specified in config or as argument")
	}

	for _, org := range orgs {
		fmt.Printf("Refreshing cache for %s...\n", org)

		client, err := newOrgClient(cfg, org)
		if err != nil {
			fmt.Printf("Failed to refresh %s: %v\n", org, err)
			continue
		}

		var repos []github.Repo
		if err := c.Refresh(org, func() ([]github.Repo, error) {
			var fetchErr error
			repos, fetchErr = client.Repos()
			return repos, fetchErr
		}); err != nil {
			fmt.Printf("Failed to refresh %s: %v\n", org, err)
			continue
		}

		fmt.Printf("✓ Cached %d repositories from %s\n", len(repos), org)
	}

	return nil
}
