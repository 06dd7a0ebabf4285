package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regression-io/aws-list-all/pkg/awsmeta"
	"github.com/regression-io/aws-list-all/pkg/regions"
)

func testCatalog(t *testing.T) *awsmeta.Catalog {
	t.Helper()
	meta, err := awsmeta.Packaged()
	require.NoError(t, err)
	return meta
}

func TestBuildJobs_UniqueTriples(t *testing.T) {
	meta := testCatalog(t)
	jobs, err := BuildJobs(meta, regions.NewResolver(meta), Filter{})
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	seen := map[Job]bool{}
	for _, job := range jobs {
		assert.False(t, seen[job], "duplicate job %s", job)
		seen[job] = true
	}
}

func TestBuildJobs_Filters(t *testing.T) {
	meta := testCatalog(t)
	resolver := regions.NewResolver(meta)

	t.Run("service filter", func(t *testing.T) {
		jobs, err := BuildJobs(meta, resolver, Filter{Services: []string{"s3"}})
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.Equal(t, "s3", job.Service)
		}
	})

	t.Run("region glob filter", func(t *testing.T) {
		jobs, err := BuildJobs(meta, resolver, Filter{Services: []string{"ec2"}, Regions: []string{"us-*"}})
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.Contains(t, job.Region, "us-")
		}
	})

	t.Run("operation filter intersects discovered operations", func(t *testing.T) {
		jobs, err := BuildJobs(meta, resolver, Filter{
			Services:   []string{"s3"},
			Regions:    []string{"us-east-1"},
			Operations: []string{"ListBuckets"},
		})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, Job{Service: "s3", Region: "us-east-1", Operation: "ListBuckets"}, jobs[0])
	})

	t.Run("filter matching nothing yields no jobs", func(t *testing.T) {
		jobs, err := BuildJobs(meta, resolver, Filter{Services: []string{"nonexistent"}})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestBuildJobs_GlobalServiceUsesDefaultRegion(t *testing.T) {
	meta := testCatalog(t)
	jobs, err := BuildJobs(meta, regions.NewResolver(meta), Filter{Services: []string{"iam"}})
	require.NoError(t, err)
	require.NotEmpty(t, jobs)
	for _, job := range jobs {
		assert.Equal(t, regions.DefaultRegion, job.Region)
	}
}

func TestBuildJobs_ExcludesParameterizedOperations(t *testing.T) {
	meta := testCatalog(t)
	jobs, err := BuildJobs(meta, regions.NewResolver(meta), Filter{Services: []string{"s3"}})
	require.NoError(t, err)
	for _, job := range jobs {
		assert.NotEqual(t, "ListObjectsV2", job.Operation, "operations with required members must not be auto-invoked")
		assert.NotEqual(t, "CreateBucket", job.Operation)
	}
}

func TestFilter_MatchAny(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		value    string
		want     bool
	}{
		{"empty matches everything", nil, "anything", true},
		{"exact match", []string{"s3"}, "s3", true},
		{"exact mismatch", []string{"s3"}, "ec2", false},
		{"glob match", []string{"us-*"}, "us-east-1", true},
		{"glob mismatch", []string{"us-*"}, "eu-west-1", false},
		{"second pattern matches", []string{"ec2", "s3"}, "s3", true},
		{"invalid pattern falls back to literal", []string{"[oops"}, "[oops", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchAny(tt.patterns, tt.value))
		})
	}
}
