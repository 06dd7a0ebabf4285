package sweep

import (
	"fmt"

	"github.com/regression-io/aws-list-all/pkg/awsmeta"
	"github.com/regression-io/aws-list-all/pkg/catalog"
	"github.com/regression-io/aws-list-all/pkg/regions"
)

// BuildJobs materializes the job set for a run: for every selected
// service, the Cartesian product of its filtered regions and its
// filtered listing operations.
//
// The result is deterministic (services sorted, regions in resolver
// order, operations sorted) and free of duplicate triples.
func BuildJobs(meta *awsmeta.Catalog, resolver *regions.Resolver, filter Filter) ([]Job, error) {
	var jobs []Job
	for _, name := range meta.ServiceNames() {
		if !filter.MatchService(name) {
			continue
		}
		svc, _ := meta.Service(name)

		ops, err := catalog.ListingOperations(svc)
		if err != nil {
			return nil, fmt.Errorf("discover listing operations for %s: %w", name, err)
		}

		for _, region := range resolver.RegionsFor(name) {
			if !filter.MatchRegion(region) {
				continue
			}
			for _, op := range ops {
				if !filter.MatchOperation(op) {
					continue
				}
				jobs = append(jobs, Job{Service: name, Region: region, Operation: op})
			}
		}
	}
	return jobs, nil
}
