package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scuttlehq/scuttle/internal/engine"
	"github.com/scuttlehq/scuttle/internal/topology"
	"github.com/scuttlehq/scuttle/providers/aws"
)

var (
	planProject    string
	planRegion     string
	planProfile    string
	planConfigFile string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what a destroy run would delete",
	Long: `Runs discovery and prints the teardown manifest without deleting
anything.

The listing is exactly what 'scuttle destroy' would present for review
before asking for confirmation.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planProject, "project", "p", "", "Project prefix the resource names derive from")
	planCmd.Flags().StringVar(&planRegion, "region", "", "AWS region (defaults to the SDK's resolution)")
	planCmd.Flags().StringVar(&planProfile, "profile", "", "Shared credentials profile")
	planCmd.Flags().StringVarP(&planConfigFile, "config", "c", "", "Path to a scuttle config file")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd, planConfigFile, planProject, planRegion, planProfile, false)
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

	eng := engine.New(client, engine.Options{})

	fmt.Fprint(out, "\nScanning for resources... ")
	manifest, err := eng.Discover(ctx, topology.New(cfg.Project))
	if err != nil {
		fmt.Fprintln(out, "FAILED")
		return err
	}
	fmt.Fprintln(out, "OK")

	if manifest.Empty() {
		fmt.Fprintln(out, "\nNo resources found. Nothing to do.")
		return nil
	}

	renderManifest(out, manifest)
	fmt.Fprintln(out, "\nRun 'scuttle destroy' to delete these resources.")
	return nil
}
