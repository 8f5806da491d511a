package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kateryna-senchenko/textencryptor/pkg/cache"
	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached results from the file cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.Cache.Backend == backendRedis {
				printWarning(c.Out, "Redis entries expire after their TTL and are not cleared by this command")
			}

			dir, err := c.cacheDir()
			if err != nil {
				return err
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "open cache dir %s", dir)
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			count, err := fc.Clear()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "clear cache")
			}
			prog.done("cleared cache", "entries", count, "dir", dir)

			if count == 0 {
				printInfo(c.Out, "Cache is empty")
				return nil
			}
			printSuccess(c.Out, "Cleared %d cached entries", count)
			printDetail(c.Out, "Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, dir)
			return nil
		},
	}
}
