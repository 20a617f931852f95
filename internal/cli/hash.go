package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotmark/pkg/render"
)

// hashCommand creates the hash command, which prints the file name a graph
// source renders to without running Graphviz.
func (c *CLI) hashCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "hash <file>...",
		Short: "Print the SVG file name each graph source renders to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("key") {
				cfg, err := c.loadConfig()
				if err != nil {
					return err
				}
				key = cfg.Key
			}

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read graph: %w", err)
				}
				name := render.NameFor(key, string(data))
				if len(args) == 1 {
					fmt.Println(name)
				} else {
					printKeyValue(name, path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", render.PluginName, "HMAC key for file names")

	return cmd
}
