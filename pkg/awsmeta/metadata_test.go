package awsmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackaged(t *testing.T) {
	meta, err := Packaged()
	require.NoError(t, err)

	t.Run("contains core services", func(t *testing.T) {
		for _, name := range []string{"s3", "ec2", "iam", "sqs"} {
			_, ok := meta.Service(name)
			assert.True(t, ok, "missing %s", name)
		}
	})

	t.Run("service names are sorted", func(t *testing.T) {
		assert.IsNonDecreasing(t, meta.ServiceNames())
	})

	t.Run("global services carry no region list", func(t *testing.T) {
		iam, ok := meta.Service("iam")
		require.True(t, ok)
		assert.True(t, iam.Global)
		assert.Empty(t, iam.Regions)
	})

	t.Run("required members parsed", func(t *testing.T) {
		s3, ok := meta.Service("s3")
		require.True(t, ok)

		op, ok := s3.Operation("ListObjectsV2")
		require.True(t, ok)
		assert.True(t, op.Required())
		assert.Equal(t, []string{"Bucket"}, op.RequiredMembers)

		op, ok = s3.Operation("ListBuckets")
		require.True(t, ok)
		assert.False(t, op.Required())
	})
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := parseCatalog([]byte("{oops"), "test input")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test input")
}

func TestParseCatalog_Empty(t *testing.T) {
	_, err := parseCatalog([]byte(`{"version":"x","services":[]}`), "test input")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no services")
}

func TestParseCatalog_SortsServices(t *testing.T) {
	raw := []byte(`{"version":"x","services":[{"name":"zeta"},{"name":"alpha"}]}`)
	c, err := parseCatalog(raw, "test input")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, c.ServiceNames())
	assert.Equal(t, "alpha", c.Services[0].Name)
}
