package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the response cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cache location and size",
	Args:  cobra.NoArgs,
	RunE:  runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached response",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

var cacheListKeys bool

func init() {
	cacheInfoCmd.Flags().BoolVar(&cacheListKeys, "keys", false, "list cached keys")
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheInfo(cmd *cobra.Command, _ []string) error {
	if responseCache == nil {
		return errors.New("response cache not configured")
	}

	cmd.Printf("Path:    %s\n", responseCache.Path())
	cmd.Printf("Entries: %d\n", responseCache.Len())

	if cacheListKeys {
		cmd.Println()
		for _, k := range responseCache.Keys() {
			cmd.Println(k)
		}
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if responseCache == nil {
		return errors.New("response cache not configured")
	}

	n := responseCache.Len()
	if err := responseCache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	cmd.Printf("Removed %d cached responses.\n", n)
	return nil
}
