package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scuttlehq/scuttle/internal/config"
	"github.com/scuttlehq/scuttle/internal/engine"
	"github.com/scuttlehq/scuttle/internal/topology"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// resolveConfig layers the command's flags over the optional config file
// and validates the result. Flags win wherever both are set.
func resolveConfig(cmd *cobra.Command, path, project, region, profile string, continueOnError bool) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if project != "" {
		cfg.Project = project
	}
	if region != "" {
		cfg.Region = region
	}
	if profile != "" {
		cfg.Profile = profile
	}
	if cmd.Flags().Changed("continue-on-error") {
		cfg.ContinueOnError = continueOnError
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// renderManifest prints the resources discovery found, one red deletion
// line each, followed by the count.
func renderManifest(w io.Writer, manifest *topology.Manifest) {
	fmt.Fprintln(w, "\nScuttle will destroy the following resources:")
	fmt.Fprintln(w)
	for _, res := range manifest.Resources() {
		fmt.Fprintf(w, "%s  - %-10s %s%s (%s)\n", colorRed, res.Kind, res.ID, colorReset, res.Name)
	}
	fmt.Fprintf(w, "\nPlan: %d resource(s) to destroy.\n", manifest.Len())
}

// confirm asks for explicit approval. Only "y" or "yes" proceeds; anything
// else, including end of input, declines. One read, no retry loop.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s (y/n): ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// renderResult prints the terminal progress line for one execution event.
// The "started" event opens the line; the outcome closes it.
func renderResult(w io.Writer, event engine.Event) {
	switch event.Status {
	case "started":
		fmt.Fprintf(w, "Deleting %s... ", event.Resource)
	case "deleted":
		fmt.Fprintln(w, "OK")
	case "not-found":
		fmt.Fprintln(w, "already gone")
	case "failed":
		fmt.Fprintln(w, "FAILED")
	case "skipped":
		fmt.Fprintf(w, "Skipping %s\n", event.Resource)
	}
}

// renderSummary prints the final per-run counts.
func renderSummary(w io.Writer, summary *engine.Summary) {
	if summary.Failed > 0 {
		fmt.Fprintf(w, "\nTeardown incomplete: %d deleted, %d not found, %d failed, %d skipped.\n",
			summary.Deleted, summary.NotFound, summary.Failed, summary.Skipped)
		fmt.Fprintln(w, "Re-running after the failure is addressed will pick up where this run stopped.")
		return
	}
	fmt.Fprintf(w, "\nTeardown complete! Resources: %d deleted, %d not found, %d failed.\n",
		summary.Deleted, summary.NotFound, summary.Failed)
}
