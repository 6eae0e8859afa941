// Package cli implements the pedeeg command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Tato14/Ped-eeg-position/pkg/buildinfo"
	"github.com/Tato14/Ped-eeg-position/pkg/cache"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "pedeeg"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pedeeg",
		Short:        "Pedeeg places 10-20 EEG electrodes on pediatric heads",
		Long:         `Pedeeg computes standard 10-20 electrode coordinates from four head measurements (age, sex, nasion-inion and preauricular distance) and renders them as scalp diagrams or chain schematics.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.computeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, artifactKeyer(), c.Logger), nil
}

// artifactKeyer scopes cache keys to the binary version, so artifacts
// rendered by an older build are never served after an upgrade changes
// the output.
func artifactKeyer() cache.Keyer {
	return cache.NewScopedKeyer(nil, buildinfo.Version+":")
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pedeeg/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// subjectFlags registers the head-measurement flags shared by compute,
// render, and inspect.
func subjectFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.AgeMonths, "age", opts.AgeMonths, "age in months")
	cmd.Flags().StringVar(&opts.Sex, "sex", opts.Sex, "subject sex: m or f")
	cmd.Flags().Float64Var(&opts.NasionInion, "nasion-inion", opts.NasionInion, "nasion-inion distance in cm")
	cmd.Flags().Float64Var(&opts.Preauricular, "preauricular", opts.Preauricular, "preauricular (ear-to-ear) distance in cm")
	cmd.Flags().BoolVar(&opts.AgeSpacing, "age-spacing", false, "compress midline spacing for young subjects")
	cmd.Flags().Float64Var(&opts.MinSpacing, "min-spacing", 0, "spacing floor used with --age-spacing")
}

// markSubjectFlagsRequired forces the four measurements to be given
// explicitly. Age zero is a valid newborn, so absence cannot be inferred
// from the zero value.
func markSubjectFlagsRequired(cmd *cobra.Command) {
	for _, name := range []string{"age", "sex", "nasion-inion", "preauricular"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

// setCLIDefaults applies CLI-specific defaults on top of pipeline defaults.
func setCLIDefaults(opts *pipeline.Options) {
	opts.SetRenderDefaults()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
