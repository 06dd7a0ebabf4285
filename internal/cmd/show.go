package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/regression-io/aws-list-all/pkg/listing"
)

var showCmd = &cobra.Command{
	Use:   "show <listingfile>...",
	Short: "Display saved listings",
	Long: `Show a summary or details of saved listing files.

Each file is processed independently; a malformed file reports its own
error without stopping the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	listing.Show(args, os.Stdout, rootVerbosity)
	return nil
}
