package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kateryna-senchenko/textencryptor/pkg/pipeline"
)

// encryptOpts holds the command-line flags for the encrypt command.
type encryptOpts struct {
	input   inputOpts
	json    bool // print the full result as JSON
	noCache bool // bypass the cache entirely
	refresh bool // recompute and overwrite the cached entry
	stats   bool // print grid size and cache status after the ciphertext
}

// encryptCommand creates the encrypt command.
func (c *CLI) encryptCommand() *cobra.Command {
	var opts encryptOpts

	cmd := &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt text with the square code cipher",
		Long: `Encrypt text with the square code cipher.

Text is taken from the arguments (joined with single spaces), from --file, or
from standard input when it is piped. Whitespace is ignored.`,
		Example: `  squarecode encrypt "if man was meant to stay on the ground"
  echo "chill out" | squarecode encrypt
  squarecode encrypt --file message.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEncrypt(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input.file, "file", "f", "", "read text from file (- for stdin)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results and recompute")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "show grid size and cache status")
	cmd.MarkFlagsMutuallyExclusive("no-cache", "refresh")
	cmd.MarkFlagsMutuallyExclusive("json", "stats")

	return cmd
}

func (c *CLI) runEncrypt(cmd *cobra.Command, args []string, opts encryptOpts) error {
	ctx := cmd.Context()

	text, err := c.readInput(args, opts.input)
	if err != nil {
		return err
	}
	if text == nil {
		return noInputError()
	}

	runner, store, err := c.newRunner(ctx, opts.noCache, false)
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := runner.Encrypt(ctx, pipeline.Options{
		Text:    text,
		Refresh: opts.refresh,
		TTL:     c.Config.Cache.TTL,
	})
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(c.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(c.Out, res.Ciphertext)
	if opts.stats {
		printDetail(c.Out, "%d characters · %d×%d grid", res.Length, res.Rows, res.Columns)
		printCacheStatus(c.Out, res.CacheHit)
	}
	return nil
}
