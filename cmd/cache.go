package cmd

import (
	"fmt"
	"time"

	"github.com/kirksw/orgls/internal/cache"
	"github.com/kirksw/orgls/internal/config"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local repository listing cache",
}

var ttlString string

func init() {
	rootCmd.AddCommand(cacheCmd)

	cacheCmd.PersistentFlags().StringVar(&ttlString, "ttl", "", "set custom TTL (e.g., 24h, 1h30m)")
}

func loadConfigAndCache() (*config.Config, *cache.OrgCache, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	c := cache.New()

	ttl := ttlString
	if ttl == "" {
		ttl = cfg.Cache.TTL
	}
	if ttl != "" {
		duration, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid TTL format: %w", err)
		}
		c.SetTTL(duration)
	}

	return cfg, c, nil
}
