// Package regions resolves which regions a service can be queried in.
package regions

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"

	"github.com/regression-io/aws-list-all/pkg/awsmeta"
)

// DefaultRegion is used for services without a regional partition and as
// the last-resort fallback when no metadata region is known.
const DefaultRegion = "us-east-1"

// Resolver maps services to the ordered regions they are queryable in.
//
// The mapping comes from the cached service metadata and is read-only at
// query time; only the recreate-caches path rebuilds it.
type Resolver struct {
	catalog *awsmeta.Catalog

	// defaultRegion overrides DefaultRegion for global-service fallback,
	// typically set from an IMDS hint when running inside EC2.
	defaultRegion string
}

// NewResolver creates a resolver over the given metadata catalog.
func NewResolver(catalog *awsmeta.Catalog) *Resolver {
	return &Resolver{catalog: catalog, defaultRegion: DefaultRegion}
}

// WithDefaultRegion overrides the fallback region for global services.
// Empty values are ignored. Returns the resolver for chaining.
func (r *Resolver) WithDefaultRegion(region string) *Resolver {
	if region != "" {
		r.defaultRegion = region
	}
	return r
}

// RegionsFor returns the ordered regions the service is advertised in.
// Services with no declared regional partition (global services) resolve
// to a single default region.
func (r *Resolver) RegionsFor(service string) []string {
	svc, ok := r.catalog.Service(service)
	if !ok || svc.Global || len(svc.Regions) == 0 {
		return []string{r.defaultRegion}
	}
	out := make([]string, len(svc.Regions))
	copy(out, svc.Regions)
	return out
}

// AllRegions returns the sorted union of every region any service is
// advertised in.
func (r *Resolver) AllRegions() []string {
	seen := map[string]bool{}
	for _, svc := range r.catalog.Services {
		for _, region := range svc.Regions {
			seen[region] = true
		}
	}
	regions := make([]string, 0, len(seen))
	for region := range seen {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// DetectDefaultRegion returns the region the process appears to run in.
//
// The standard region environment variables win without any network
// traffic. Only when neither is set does the EC2 instance metadata
// service get asked, under a short timeout; off EC2 that lookup fails
// and the empty string is returned, which is the normal case, not an
// error.
func DetectDefaultRegion(ctx context.Context) string {
	for _, key := range []string{"AWS_REGION", "AWS_DEFAULT_REGION"} {
		if region := os.Getenv(key); region != "" {
			return region
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return ""
	}
	out, err := imds.NewFromConfig(cfg).GetRegion(ctx, &imds.GetRegionInput{})
	if err != nil {
		return ""
	}
	return out.Region
}

// Probe reports whether a client can actually be constructed for the
// given service and region. Used by the diagnostic path to validate the
// metadata cache against the live client factory.
type Probe func(ctx context.Context, service, region string) bool

// Diagnose prints, per service, every region the metadata advertises and
// whether the probe accepts it. This is a maintenance path for spotting
// stale cache entries; it is not part of the query flow.
func (r *Resolver) Diagnose(ctx context.Context, w io.Writer, probe Probe) {
	for _, svc := range r.catalog.Services {
		advertised := r.RegionsFor(svc.Name)
		fmt.Fprintf(w, "%s:\n", svc.Name)
		for _, region := range advertised {
			status := "advertised"
			if probe != nil {
				if probe(ctx, svc.Name, region) {
					status = "advertised, client ok"
				} else {
					status = "advertised, client FAILED"
				}
			}
			fmt.Fprintf(w, "  %-20s %s\n", region, status)
		}
	}
}
