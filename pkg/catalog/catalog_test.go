package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regression-io/aws-list-all/pkg/awsmeta"
)

func service(t *testing.T, name string) *awsmeta.ServiceDescriptor {
	t.Helper()
	meta, err := awsmeta.Packaged()
	require.NoError(t, err)
	svc, ok := meta.Service(name)
	require.True(t, ok, "service %s missing from packaged metadata", name)
	return svc
}

func TestListingOperations(t *testing.T) {
	t.Run("s3 keeps only parameterless enumerations", func(t *testing.T) {
		ops, err := ListingOperations(service(t, "s3"))
		require.NoError(t, err)
		assert.Equal(t, []string{"ListBuckets"}, ops)
	})

	t.Run("required members disqualify", func(t *testing.T) {
		ops, err := ListingOperations(service(t, "sqs"))
		require.NoError(t, err)
		assert.Contains(t, ops, "ListQueues")
		assert.NotContains(t, ops, "ListDeadLetterSourceQueues")
		assert.NotContains(t, ops, "GetQueueAttributes")
		assert.NotContains(t, ops, "CreateQueue")
	})

	t.Run("force-include overrides the heuristic", func(t *testing.T) {
		ops, err := ListingOperations(service(t, "iam"))
		require.NoError(t, err)
		assert.Contains(t, ops, "GetAccountSummary", "curated include")
		assert.Contains(t, ops, "ListUsers")
	})

	t.Run("force-exclude removes known false positives", func(t *testing.T) {
		ops, err := ListingOperations(service(t, "ec2"))
		require.NoError(t, err)
		assert.Contains(t, ops, "DescribeInstances")
		assert.NotContains(t, ops, "DescribeReservedInstancesOfferings")
		assert.NotContains(t, ops, "DescribeSpotPriceHistory")
		assert.NotContains(t, ops, "DescribeImages")
	})

	t.Run("result is sorted", func(t *testing.T) {
		ops, err := ListingOperations(service(t, "ec2"))
		require.NoError(t, err)
		assert.IsNonDecreasing(t, ops)
	})
}

func TestIsListingName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ListBuckets", true},
		{"DescribeInstances", true},
		{"GetAccountSettings", true},
		{"GetUser", false},
		{"GetConsoleOutput", false},
		{"GetBucketReplicationStatus", false},
		{"CreateBucket", false},
		{"TerminateInstances", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isListingName(tt.name))
		})
	}
}

func TestVerbs(t *testing.T) {
	verbs := Verbs(service(t, "s3"))
	byOp := map[string]VerbClass{}
	for _, v := range verbs {
		byOp[v.Operation] = v.Class
	}
	assert.Equal(t, VerbList, byOp["ListBuckets"])
	assert.Equal(t, VerbGet, byOp["GetObject"])
	assert.Equal(t, VerbOther, byOp["CreateBucket"])
	assert.Equal(t, VerbOther, byOp["DeleteBucket"])

	ec2Verbs := Verbs(service(t, "ec2"))
	byOp = map[string]VerbClass{}
	for _, v := range ec2Verbs {
		byOp[v.Operation] = v.Class
	}
	assert.Equal(t, VerbDescribe, byOp["DescribeInstances"])
}

func TestBoilerplateKeys(t *testing.T) {
	assert.Equal(t, []string{"Owner"}, BoilerplateKeys("s3", "ListBuckets"))
	assert.Nil(t, BoilerplateKeys("s3", "NoSuchOperation"))
	assert.Nil(t, BoilerplateKeys("nosuch", "ListBuckets"))
}
