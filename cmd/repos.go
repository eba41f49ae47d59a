package cmd

import (
	"fmt"

	"github.com/kirksw/orgls/internal/cache"
	"github.com/kirksw/orgls/internal/github"
	"github.com/spf13/cobra"
)

var (
	licenseFilter string
	useCached     bool
)

var reposCmd = &cobra.Command{
	Use:   "repos <org>",
	Short: "List an organization's public repositories",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)

	reposCmd.Flags().StringVarP(&licenseFilter, "license", "l", "", "only repos with this license key (e.g. apache-2.0)")
	reposCmd.Flags().BoolVar(&useCached, "cached", false, "read the listing from the local cache instead of the API")
}

func runRepos(cmd *cobra.Command, args []string) error {
	org := args[0]

	var names []string

	if useCached {
		cached, err := cache.New().Get(org)
		if err != nil {
			return fmt.Errorf("failed to read cache (try 'orgls cache refresh %s'): %w", org, err)
		}
		names = filterRepoNames(cached.Repos, licenseFilter)
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := newOrgClient(cfg, org)
		if err != nil {
			return err
		}

		if verbose {
			url, err := client.ReposURL()
			if err != nil {
				return err
			}
			fmt.Printf("Fetching %s\n", url)
		}

		names, err = client.PublicRepos(licenseFilter)
		if err != nil {
			return err
		}
	}

	if len(names) == 0 {
		if licenseFilter != "" {
			fmt.Printf("No repositories in %s with license %s\n", org, licenseFilter)
		} else {
			fmt.Printf("No repositories in %s\n", org)
		}
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}

	return nil
}

func filterRepoNames(repos []github.Repo, license string) []string {
	names := make([]string, 0, len(repos))
	for _, repo := range repos {
		if license != "" && !github.HasLicense(repo, license) {
			continue
		}
		names = append(names, repo.Name)
	}
	return names
}
