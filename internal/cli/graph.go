package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotmark/pkg/render"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	engine      string
	destination string
	inline      bool
	noCache     bool
}

// graphCommand creates the graph command, which renders standalone graph
// files the same way documents render them.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{engine: string(render.EngineDot)}

	cmd := &cobra.Command{
		Use:               "graph <file.dot>...",
		Short:             "Render graph files to content-addressed SVG images",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: fileCompletion("dot", "gv"),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := render.ParseEngine(opts.engine)
			if err != nil {
				return err
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			r, lc, err := c.newRenderer(ctx, cfg, opts.noCache)
			if err != nil {
				return err
			}
			defer lc.Close()

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read graph: %w", err)
				}

				if opts.inline {
					markup, err := r.RenderInline(ctx, string(data), engine)
					if err != nil {
						return err
					}
					fmt.Println(markup)
					continue
				}

				dest := opts.destination
				if dest == "" {
					dest = filepath.Dir(path)
				}
				prog := newProgress(logger)
				link, err := r.Render(ctx, dest, string(data), engine)
				if err != nil {
					return err
				}
				prog.done("Rendered graph", "path", path, "engine", engine)
				printSuccess("%s", path)
				printFile(filepath.Join(dest, filepath.Base(link)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.engine, "engine", "e", opts.engine, "layout engine (dot, circo)")
	cmd.Flags().StringVarP(&opts.destination, "destination", "d", "", "output directory (default: next to each input)")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "print <img> markup with an embedded SVG instead of writing files")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	_ = cmd.RegisterFlagCompletionFunc("engine", engineCompletion)

	return cmd
}
