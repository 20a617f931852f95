package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/dotmark/pkg/config"
	"github.com/matzehuels/dotmark/pkg/document"
	"github.com/matzehuels/dotmark/pkg/observability"
	"github.com/matzehuels/dotmark/pkg/transform"
)

// renderOpts holds the command-line flags for the render command.
// Zero values mean "use the config file".
type renderOpts struct {
	output      string // output HTML path, single input only
	destination string // directory for rendered images
	inline      bool   // embed code block graphs as data URIs
	concurrency int    // documents processed at once
	strict      bool   // fail when any graph failed
	noCache     bool   // bypass the layout cache
}

// renderResult is the outcome of converting one document.
type renderResult struct {
	file   *document.File
	output string
}

// renderCommand creates the render command for converting markdown documents.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file.md>...",
		Short: "Render markdown to HTML, replacing graphs with SVG images",
		Long: `Render converts markdown documents to HTML. Fenced code blocks whose language
is dot or circo are rendered with Graphviz and replaced by an image; links
and images titled "dot:" that point at a graph file are pointed at the
rendered SVG instead.

Images are written next to each document unless --destination is set.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: fileCompletion("md", "markdown"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "" && len(args) > 1 {
				return fmt.Errorf("--output requires a single input, got %d", len(args))
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyRenderFlags(cmd, cfg, &opts)
			if err := cfg.Validate(); err != nil {
				return err
			}

			return c.runRender(cmd.Context(), args, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output HTML file (single input only)")
	cmd.Flags().StringVarP(&opts.destination, "destination", "d", "", "directory for rendered images")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "embed code block graphs as data URIs")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "documents processed in parallel")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit non-zero when any graph fails")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")

	return cmd
}

// applyRenderFlags overrides cfg with the flags the user set explicitly.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, opts *renderOpts) {
	flags := cmd.Flags()
	if flags.Changed("destination") {
		cfg.Destination = opts.destination
	}
	if flags.Changed("inline") {
		cfg.Inline = opts.inline
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = opts.concurrency
	}
}

func (c *CLI) runRender(ctx context.Context, paths []string, cfg *config.Config, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	stats := &renderStats{}
	stats.register()
	defer observability.Reset()

	r, lc, err := c.newRenderer(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer lc.Close()

	md := goldmark.New(goldmark.WithExtensions(
		transform.NewExtension(
			transform.WithInline(cfg.Inline),
			transform.WithRenderer(r),
			transform.WithLogger(logger),
		),
	))

	results := make([]renderResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := convertDocument(md, path, cfg.Destination, opts.output)
			if err != nil {
				return err
			}
			results[i] = res
			logger.Debug("converted document", "path", path, "messages", len(res.file.Messages))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		failed += printDiagnostics(res)
	}
	prog.done("Rendered documents", "documents", len(results), "failed", failed)
	printDetail("%s", stats.summary())

	if failed > 0 && opts.strict {
		return fmt.Errorf("%d graph(s) failed to render", failed)
	}
	return nil
}

// convertDocument renders the markdown at path to HTML. Graph failures are
// recorded on the returned File; only I/O problems with the document itself
// are returned as errors.
func convertDocument(md goldmark.Markdown, path, destination, output string) (renderResult, error) {
	src, f, err := document.Read(path)
	if err != nil {
		return renderResult{}, fmt.Errorf("read document: %w", err)
	}
	f.DestinationDir = destination

	var buf bytes.Buffer
	pc := document.WithFile(nil, f)
	if err := md.Convert(src, &buf, parser.WithContext(pc)); err != nil {
		return renderResult{}, fmt.Errorf("convert %s: %w", path, err)
	}

	if output == "" {
		output = htmlPath(f)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return renderResult{}, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return renderResult{}, fmt.Errorf("write %s: %w", output, err)
	}
	return renderResult{file: f, output: output}, nil
}

// htmlPath returns the default output path for f: the document's base name
// with an .html extension, inside the image destination.
func htmlPath(f *document.File) string {
	base := filepath.Base(f.Path)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
	return filepath.Join(document.Destination(f), name)
}

// formatMessage renders a diagnostic the way compilers do: path:line:col.
func formatMessage(path string, m document.Message) string {
	loc := path
	if m.Position.IsValid() {
		loc = fmt.Sprintf("%s:%s", path, m.Position)
	}
	return fmt.Sprintf("%s: %s [%s]", loc, m.Text, m.Origin)
}

// printDiagnostics prints the result of one document and returns how many
// error messages it carried.
func printDiagnostics(res renderResult) int {
	errs := 0
	for _, m := range res.file.Messages {
		switch m.Severity {
		case document.SeverityError:
			errs++
			printError("%s", formatMessage(res.file.Path, m))
		default:
			printDetail("%s", formatMessage(res.file.Path, m))
		}
	}
	if errs == 0 {
		printSuccess("%s", res.file.Path)
	} else {
		printWarning("%s: %d graph(s) failed", res.file.Path, errs)
	}
	printFile(res.output)
	return errs
}
