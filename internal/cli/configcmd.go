package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath != "" {
				fmt.Fprintln(c.Out, c.configPath)
				return nil
			}
			p, err := configPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, p)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(c.Out).Encode(c.Config)
		},
	})

	return cmd
}
