package cmd

import (
	"fmt"
	"sort"

	"github.com/kirksw/orgls/internal/github"
	"github.com/spf13/cobra"
)

var licensesCmd = &cobra.Command{
	Use:   "licenses <org>",
	Short: "Summarize repository counts by license",
	Args:  cobra.ExactArgs(1),
	RunE:  runLicenses,
}

func init() {
	rootCmd.AddCommand(licensesCmd)
}

func runLicenses(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newOrgClient(cfg, args[0])
	if err != nil {
		return err
	}

	repos, err := client.Repos()
	if err != nil {
		return err
	}

	if len(repos) == 0 {
		fmt.Printf("No repositories in %s\n", args[0])
		return nil
	}

	for _, line := range formatLicenseCounts(github.LicenseCounts(repos)) {
		fmt.Println(line)
	}

	return nil
}

// formatLicenseCounts renders counts as "key: n" lines, most common
// first, ties broken by key; unlicensed repos last as "(none)".
func formatLicenseCounts(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		if key != "" {
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	lines := make([]string, 0, len(counts))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d", key, counts[key]))
	}
	if n, ok := counts[""]; ok {
		lines = append(lines, fmt.Sprintf("(none): %d", n))
	}

	return lines
}
