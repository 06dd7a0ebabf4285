package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/regression-io/aws-list-all/pkg/awsmeta"
	"github.com/regression-io/aws-list-all/pkg/catalog"
	"github.com/regression-io/aws-list-all/pkg/cloud/awsapi"
	"github.com/regression-io/aws-list-all/pkg/regions"
)

var introspectCmd = &cobra.Command{
	Use:   "introspect",
	Short: "Print introspection debugging information",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return fmt.Errorf("a detail subcommand is required")
	},
}

var listServicesCmd = &cobra.Command{
	Use:   "list-services",
	Short: "List available AWS services",
	Long:  "Lists short names of AWS services present in the metadata cache.",
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := awsmeta.Load()
		if err != nil {
			return exitError("load service metadata", err)
		}
		for _, name := range meta.ServiceNames() {
			fmt.Println(name)
		}
		return nil
	},
}

var listServiceRegionsCmd = &cobra.Command{
	Use:   "list-service-regions",
	Short: "List AWS service regions",
	Long: `Lists regions where AWS services are said to be available, checking
each against the client factory. Used to validate the metadata cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := awsmeta.Load()
		if err != nil {
			return exitError("load service metadata", err)
		}
		factory := awsapi.NewFactory()
		regions.NewResolver(meta).Diagnose(cmd.Context(), os.Stdout, factory.CanConstruct)
		return nil
	},
}

var listOperationsServices []string

var listOperationsCmd = &cobra.Command{
	Use:   "list-operations",
	Short: "List discovered listing operations",
	Long:  "List all discovered listing operations on all (or the given) services.",
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := awsmeta.Load()
		if err != nil {
			return exitError("load service metadata", err)
		}
		names := listOperationsServices
		if len(names) == 0 {
			names = meta.ServiceNames()
		}
		for _, name := range names {
			svc, ok := meta.Service(name)
			if !ok {
				return fmt.Errorf("unknown service %q", name)
			}
			ops, err := catalog.ListingOperations(svc)
			if err != nil {
				return exitError("discover listing operations", err)
			}
			for _, op := range ops {
				fmt.Println(name, op)
			}
		}
		return nil
	},
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Print verb classification for every operation",
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := awsmeta.Load()
		if err != nil {
			return exitError("load service metadata", err)
		}
		for _, name := range meta.ServiceNames() {
			svc, _ := meta.Service(name)
			for _, verb := range catalog.Verbs(svc) {
				fmt.Println(name, verb.Operation, verb.Class)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(introspectCmd)
	introspectCmd.AddCommand(listServicesCmd)
	introspectCmd.AddCommand(listServiceRegionsCmd)
	introspectCmd.AddCommand(listOperationsCmd)
	introspectCmd.AddCommand(debugCmd)

	listOperationsCmd.Flags().StringArrayVarP(&listOperationsServices, "service", "s", nil, "Only list operations of the given service (can be repeated)")
}
