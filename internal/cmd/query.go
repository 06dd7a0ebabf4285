package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/regression-io/aws-list-all/internal/limits"
	"github.com/regression-io/aws-list-all/internal/observability"
	"github.com/regression-io/aws-list-all/pkg/awsmeta"
	"github.com/regression-io/aws-list-all/pkg/cloud/awsapi"
	"github.com/regression-io/aws-list-all/pkg/listing"
	"github.com/regression-io/aws-list-all/pkg/regions"
	"github.com/regression-io/aws-list-all/pkg/sweep"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query AWS for resources",
	Long: `Query AWS for resources across the selected services, regions, and
listing operations, and save the classified results to a JSON file.

Filters accept glob patterns and can be repeated:
  aws-list-all query -s s3 -s ec2 -r 'us-*' -o 'List*'

Per-job failures never abort the run; they land in the NO_ACCESS or
ERROR buckets of the saved listing.`,
	RunE: runQuery,
}

var (
	queryServices   []string
	queryRegions    []string
	queryOperations []string
	queryParallel   int
	queryDirectory  string
	queryProfile    string
	queryRateLimit  float64
)

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringArrayVarP(&queryServices, "service", "s", nil, "Restrict querying to the given service (can be repeated)")
	queryCmd.Flags().StringArrayVarP(&queryRegions, "region", "r", nil, "Restrict querying to the given region (can be repeated)")
	queryCmd.Flags().StringArrayVarP(&queryOperations, "operation", "o", nil, "Restrict querying to the given operation (can be repeated)")
	queryCmd.Flags().IntVarP(&queryParallel, "parallel", "p", 32, "Number of requests to do in parallel")
	queryCmd.Flags().StringVarP(&queryDirectory, "directory", "d", ".", "Directory to save result listings to")
	queryCmd.Flags().StringVarP(&queryProfile, "profile", "c", "", "Use a specific credentials profile")
	queryCmd.Flags().Float64Var(&queryRateLimit, "rate-limit", 0, "Max requests per second across all workers (0 = unlimited)")

	bindQueryFlags()
}

// bindQueryFlags routes the tunable query flags through viper so the
// AWS_LIST_ALL_* environment overrides apply when the flag is unset.
// Flag defaults are literals here; init order within the package must
// not matter.
func bindQueryFlags() {
	for _, name := range []string{"parallel", "directory", "profile", "rate-limit"} {
		_ = viper.BindPFlag(name, queryCmd.Flags().Lookup(name))
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := observability.CLILogger

	directory := viper.GetString("directory")
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return exitError("create output directory", err)
	}
	limits.RaiseNoFile(logger)

	meta, err := awsmeta.Load()
	if err != nil {
		return exitError("load service metadata", err)
	}

	resolver := regions.NewResolver(meta)
	if hint := regions.DetectDefaultRegion(ctx); hint != "" {
		logger.Debug("using instance metadata region hint", zap.String("region", hint))
		resolver.WithDefaultRegion(hint)
	}

	filter := sweep.Filter{
		Services:   queryServices,
		Regions:    queryRegions,
		Operations: queryOperations,
	}
	jobs, err := sweep.BuildJobs(meta, resolver, filter)
	if err != nil {
		return exitError("build job set", err)
	}
	if len(jobs) == 0 {
		logger.Warn("selection matched no jobs")
	}

	factory := awsapi.NewFactory().WithStaticCredentials(
		viper.GetString("access_key_id"),
		viper.GetString("secret_access_key"),
	)
	dispatcher := sweep.New(factory, sweep.Config{
		Parallelism: viper.GetInt("parallel"),
		RateLimit:   viper.GetFloat64("rate-limit"),
		Profile:     viper.GetString("profile"),
	}, logger)

	records := dispatcher.Run(ctx, jobs)
	if err := ctx.Err(); err != nil {
		logger.Warn("sweep interrupted, saving partial results", zap.Int("records", len(records)))
	}

	group := listing.Aggregate(records)
	path, err := group.Write(directory)
	if err != nil {
		return exitError("save listing", err)
	}
	fmt.Printf("Wrote results to %s\n", path)

	// NOTHING is excluded from the console summary; inspect it in the
	// saved file when needed.
	for _, class := range []sweep.ResultClass{sweep.ClassSomething, sweep.ClassNoAccess, sweep.ClassError} {
		for _, row := range group.Rows(class) {
			fmt.Println(string(class), row)
		}
	}
	return nil
}
