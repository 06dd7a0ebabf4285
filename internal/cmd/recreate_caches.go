package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regression-io/aws-list-all/pkg/awsmeta"
)

var recreateCachesCmd = &cobra.Command{
	Use:   "recreate-caches",
	Short: "Recreate service and region caches",
	Long: `The list of AWS services and endpoints can change over time. This
command (re-)creates the on-disk cache for this data so services can be
listed in regions where they have not been available previously. The
cache lives in the OS cache directory, e.g. ~/.cache/aws-list-all/.`,
	RunE: runRecreateCaches,
}

var recreateUpdatePackaged bool

func init() {
	rootCmd.AddCommand(recreateCachesCmd)
	recreateCachesCmd.Flags().BoolVar(&recreateUpdatePackaged, "update-packaged-values", false,
		"Instead of writing to the cache, update the data files packaged with aws-list-all. Use this only from a source checkout.")
}

func runRecreateCaches(cmd *cobra.Command, args []string) error {
	path, err := awsmeta.RecreateCaches(recreateUpdatePackaged)
	if err != nil {
		return exitError("recreate caches", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
