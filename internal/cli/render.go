package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tato14/Ped-eeg-position/pkg/config"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

// defaultOutputBase is the output file stem used when --output is not given.
const defaultOutputBase = "montage"

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		chain      bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render electrode positions as a scalp diagram or chain schematic",
		Long: `Render electrode positions as a scalp diagram or chain schematic.

The render command computes the layout from the four head measurements and
draws it. The scalp view (-t scalp) is a top-down head diagram at true scale;
the chain view (-t chain) is a Graphviz schematic connecting the electrode
chains (and can emit raw DOT with -f dot).

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Path())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyRenderConfig(cmd, &opts, cfg.Render)

			if chain {
				opts.Viz = pipeline.VizChain
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			if err := pipeline.ValidateViz(opts.Viz); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output, noCache || !cfg.Cache.Enabled, cfg.Cache.Duration())
		},
	}

	subjectFlags(cmd, &opts)
	markSubjectFlagsRequired(cmd)

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when a cached artifact exists")

	// Render flags
	cmd.Flags().StringVarP(&opts.Viz, "type", "t", opts.Viz, "visualization type: scalp (default), chain")
	cmd.Flags().BoolVar(&chain, "chain", false, "shorthand for --type chain")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: clinical (default), print")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "viewport width in pixels (scalp)")
	cmd.Flags().BoolVar(&opts.Grid, "grid", opts.Grid, "draw a centimeter grid (scalp)")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", opts.NoLabels, "hide electrode names (scalp)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "raster scale factor for PNG")
	cmd.Flags().BoolVar(&opts.Fiducials, "fiducials", opts.Fiducials, "include anatomical landmarks (chain)")
	cmd.Flags().BoolVar(&opts.Coordinates, "coordinates", opts.Coordinates, "annotate nodes with coordinates (chain)")

	return cmd
}

// applyRenderConfig fills render options from the config file for any flag
// the user did not set explicitly.
func applyRenderConfig(cmd *cobra.Command, opts *pipeline.Options, rc config.RenderConfig) {
	if !cmd.Flags().Changed("style") && rc.Style != "" {
		opts.Style = rc.Style
	}
	if !cmd.Flags().Changed("width") && rc.Width > 0 {
		opts.Width = rc.Width
	}
	if !cmd.Flags().Changed("scale") && rc.Scale > 0 {
		opts.Scale = rc.Scale
	}
	if !cmd.Flags().Changed("no-labels") {
		opts.NoLabels = !rc.Labels
	}
}

// runRender computes the layout, renders the requested formats, and writes files.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool, ttl time.Duration) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	runner.TTL = ttl
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Viz))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, output)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(result.Document.Electrodes), result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes each rendered format to its own file and returns the paths.
// A single format goes to output verbatim (or <base>.<format> when output is
// empty); multiple formats share a base path and get per-format extensions.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	if len(formats) == 1 {
		path := output
		if path == "" {
			path = defaultOutputBase + "." + formats[0]
		}
		if err := writeFile(path, artifacts[formats[0]]); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	base := basePath(output)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if err := writeFile(path, artifacts[format]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath derives the shared output stem for multi-format runs.
// A known format extension on output is stripped so "head.svg" and "head"
// behave the same.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
