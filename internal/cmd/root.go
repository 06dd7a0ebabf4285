// Package cmd implements the aws-list-all command-line interface.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/regression-io/aws-list-all/internal/observability"
)

// versionInfo holds build-time version metadata, set via SetVersionInfo.
var versionInfo = struct {
	Version   string
	Commit    string
	BuildDate string
}{
	Version:   "dev",
	Commit:    "HEAD",
	BuildDate: "unknown",
}

// SetVersionInfo records build metadata injected by the linker.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

var rootVerbosity int

var rootCmd = &cobra.Command{
	Use:   "aws-list-all",
	Short: "List AWS resources across services and regions",
	Long: `List AWS resources on one account across regions and services.

Results are saved into a JSON file, which can be passed back to this
tool to show its contents.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		observability.Init(rootVerbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&rootVerbosity, "verbose", "v", "Print detailed info during run (repeat for more)")
	setDefaults()
}

// setDefaults registers configuration defaults and environment binding.
// Every default can be overridden via AWS_LIST_ALL_* environment
// variables or the corresponding flag.
func setDefaults() {
	viper.SetDefault("parallel", 32)
	viper.SetDefault("directory", ".")
	viper.SetDefault("profile", "")
	viper.SetDefault("rate-limit", 0.0)

	viper.SetEnvPrefix("AWS_LIST_ALL")
	// Keys like "rate-limit" must map to AWS_LIST_ALL_RATE_LIMIT; dashes
	// are not valid in env names.
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command. A returned error means a usage or
// execution failure; main maps it to exit code 1.
func Execute() error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", versionInfo.Version, versionInfo.Commit, versionInfo.BuildDate)
	return rootCmd.Execute()
}

// exitError wraps a failure with a user-facing message for the CLI edge.
func exitError(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}
