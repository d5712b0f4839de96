package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/infiniscroll/pkg/errors"
	traceio "github.com/matzehuels/infiniscroll/pkg/io"
	"github.com/matzehuels/infiniscroll/pkg/scenario"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	out      string
	json     bool
	noCache  bool
	refresh  bool
	cacheURL string
	quiet    bool
}

// runCommand creates the run command for replaying scenarios.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <scenario.toml>...",
		Short: "Replay scenario files and record traces",
		Long: `Replay one or more scenario files against the engine and print the visible
window after every step.

Traces are cached by scenario content and engine version. Use --cache-url to
share the cache through Redis, --refresh to ignore cached traces, or
--no-cache to disable caching.`,
		Example: `  # Replay a scenario and print its trace
  infiniscroll run examples/scenarios/carousel.toml

  # Export traces as JSON into a directory
  infiniscroll run examples/scenarios/*.toml -o traces/

  # Print the trace JSON to stdout
  infiniscroll run examples/scenarios/list.toml --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScenarios(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "output", "o", "", "write traces as JSON (a file for one scenario, a directory for several)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print traces as JSON to stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the trace cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached traces")
	cmd.Flags().StringVar(&opts.cacheURL, "cache-url", "", "Redis URL for a shared trace cache (redis://host:port/db)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the summary line per scenario")

	return cmd
}

func (c *CLI) runScenarios(cmd *cobra.Command, paths []string, opts runOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.noCache && opts.cacheURL != "" && !opts.json {
		printWarning("--cache-url is ignored with --no-cache")
	}
	runner, tc, err := c.newRunner(ctx, opts.noCache, opts.cacheURL)
	if err != nil {
		return err
	}
	defer tc.Close()

	prog := newProgress(logger)
	for _, path := range paths {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}

		var spinner *Spinner
		if !opts.json {
			spinner = newSpinner(ctx, os.Stderr, "Replaying "+s.Name+"...")
			spinner.Start()
		}
		trace, cached, err := runner.Run(ctx, s, scenario.RunOptions{Refresh: opts.refresh})
		if err != nil {
			if spinner != nil {
				spinner.StopWithError(s.Name + " failed")
			}
			return fmt.Errorf("%s: %w", path, err)
		}
		if spinner != nil {
			spinner.Stop()
		}

		if opts.json {
			if err := traceio.WriteJSON(trace, os.Stdout); err != nil {
				return err
			}
		} else {
			printSuccess("%s %s", StyleTitle.Render(s.Name), StyleDim.Render(path))
			printStats(trace.Stats, cached)
			if !opts.quiet {
				fmt.Println(renderTrace(trace))
			}
		}

		if opts.out != "" {
			dest, err := outputPath(opts.out, s.Name, len(paths) > 1)
			if err != nil {
				return err
			}
			if err := traceio.ExportJSON(trace, dest); err != nil {
				return err
			}
			if !opts.json {
				printFile(dest)
			}
		}
	}
	prog.done(fmt.Sprintf("Replayed %d scenario(s)", len(paths)))

	if opts.out != "" && !opts.json {
		printNewline()
		printNextStep("Inspect a trace", appName+" show <trace.json>")
	}
	return nil
}

// outputPath returns where the trace of the named scenario is written. With
// several scenarios, out is a directory and files are named after scenarios.
func outputPath(out, name string, multi bool) (string, error) {
	info, err := os.Stat(out)
	isDir := err == nil && info.IsDir()
	if !multi && !isDir {
		return out, nil
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory")
	}
	return filepath.Join(out, fileName(name)+".json"), nil
}

// fileName turns a scenario name into a safe file name.
func fileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, name)
}
