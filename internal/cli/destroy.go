package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scuttlehq/scuttle/internal/engine"
	"github.com/scuttlehq/scuttle/internal/logging"
	"github.com/scuttlehq/scuttle/internal/topology"
	"github.com/scuttlehq/scuttle/providers/aws"
)

var (
	destroyProject         string
	destroyRegion          string
	destroyProfile         string
	destroyConfigFile      string
	destroyAutoApprove     bool
	destroyContinueOnError bool
)

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Discover and delete every resource of a project",
	Long: `Destroys every resource belonging to the project prefix.

The run discovers which resources still exist, shows the manifest for
review, and deletes them in dependency order after confirmation. Nothing
outside the discovered manifest is ever touched, and a run interrupted
halfway can simply be repeated.`,
	RunE: runDestroy,
}

func init() {
	destroyCmd.Flags().StringVarP(&destroyProject, "project", "p", "", "Project prefix the resource names derive from")
	destroyCmd.Flags().StringVar(&destroyRegion, "region", "", "AWS region (defaults to the SDK's resolution)")
	destroyCmd.Flags().StringVar(&destroyProfile, "profile", "", "Shared credentials profile")
	destroyCmd.Flags().StringVarP(&destroyConfigFile, "config", "c", "", "Path to a scuttle config file")
	destroyCmd.Flags().BoolVar(&destroyAutoApprove, "auto-approve", false, "Skip interactive approval before deleting")
	destroyCmd.Flags().BoolVar(&destroyContinueOnError, "continue-on-error", false, "Keep deleting after a resource fails")
}

func runDestroy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd, destroyConfigFile, destroyProject, destroyRegion, destroyProfile, destroyContinueOnError)
	if err != nil {
		return err
	}

	client, err := aws.New(ctx, aws.Options{Region: cfg.Region, Profile: cfg.Profile})
	if err != nil {
		return err
	}

	fmt.Fprint(out, "Resolving caller identity... ")
	identity, err := client.CallerIdentity(ctx)
	if err != nil {
		fmt.Fprintln(out, "FAILED")
		return err
	}
	fmt.Fprintln(out, "OK")

	fmt.Fprintf(out, "\nProject:   %s\n", cfg.Project)
	fmt.Fprintf(out, "Account:   %s\n", identity.Account)
	fmt.Fprintf(out, "Principal: %s\n", identity.ARN)
	fmt.Fprintf(out, "Region:    %s\n", client.Region())

	reg := topology.New(cfg.Project)
	eng := engine.New(client, engine.Options{ContinueOnError: cfg.ContinueOnError})

	fmt.Fprint(out, "\nScanning for resources... ")
	manifest, err := eng.Discover(ctx, reg)
	if err != nil {
		fmt.Fprintln(out, "FAILED")
		return err
	}
	fmt.Fprintln(out, "OK")

	audit := auditEntry{Project: cfg.Project, Region: client.Region(), Account: identity.Account}

	if manifest.Empty() {
		fmt.Fprintln(out, "\nNo resources found. Nothing to do.")
		recordAudit(audit)
		return nil
	}

	renderManifest(out, manifest)

	if !destroyAutoApprove {
		if !confirm(cmd.InOrStdin(), out, "\nDo you want to destroy these resources?") {
			fmt.Fprintln(out, "Teardown cancelled.")
			audit.Aborted = true
			recordAudit(audit)
			return nil
		}
	}

	fmt.Fprintf(out, "\nDestroying %d resource(s)...\n\n", manifest.Len())

	summary, execErr := eng.Execute(ctx, manifest, func(event engine.Event) {
		renderResult(out, event)
	})

	// A summary with no failed entries but a non-nil error means the run was
	// cut short (cancellation) rather than rejected by the provider.
	if execErr == nil || summary.Failed > 0 {
		renderSummary(out, summary)
	}

	audit.Results = auditResults(summary)
	audit.Failed = summary.Failed
	recordAudit(audit)
	return execErr
}

// recordAudit appends the run to the audit log. A failed audit write warns
// and never blocks the run's outcome.
func recordAudit(entry auditEntry) {
	if err := writeAuditLog(entry); err != nil {
		logging.Warn("failed to write audit log", "error", err)
	}
}
