package cmd

import (
	"fmt"
	"strings"

	"github.com/kirksw/orgls/internal/utils"
	"github.com/spf13/cobra"
)

var orgField string

var orgCmd = &cobra.Command{
	Use:   "org <name>",
	Short: "Show organization metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrg,
}

func init() {
	rootCmd.AddCommand(orgCmd)

	orgCmd.Flags().StringVar(&orgField, "field", "", "print a single field of the org payload, dotted for nesting (e.g. plan.name)")
}

func runOrg(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newOrgClient(cfg, args[0])
	if err != nil {
		return err
	}

	if orgField != "" {
		raw, err := client.OrgRaw()
		if err != nil {
			return err
		}

		value, err := utils.NestedLookup(raw, strings.Split(orgField, ".")...)
		if err != nil {
			return err
		}

		fmt.Println(value)
		return nil
	}

	org, err := client.Org()
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", org.Login)
	if org.Name != "" {
		fmt.Printf("  Name:         %s\n", org.Name)
	}
	if org.Description != "" {
		fmt.Printf("  Description:  %s\n", org.Description)
	}
	fmt.Printf("  Public repos: %d\n", org.PublicRepos)
	fmt.Printf("  Repos URL:    %s\n", org.ReposURL)
	if org.HTMLURL != "" {
		fmt.Printf("  URL:          %s\n", org.HTMLURL)
	}

	return nil
}
