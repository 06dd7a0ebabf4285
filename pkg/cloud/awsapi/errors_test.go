package awsapi

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regression-io/aws-list-all/pkg/cloud"
)

func TestClassify_APICodes(t *testing.T) {
	tests := []struct {
		code string
		want cloud.Kind
	}{
		{"AccessDenied", cloud.KindAccessDenied},
		{"AccessDeniedException", cloud.KindAccessDenied},
		{"AuthFailure", cloud.KindAccessDenied},
		{"UnauthorizedOperation", cloud.KindAccessDenied},
		{"OptInRequired", cloud.KindNotSubscribed},
		{"SubscriptionRequiredException", cloud.KindNotSubscribed},
		{"InvalidAction", cloud.KindNotSubscribed},
		{"Throttling", cloud.KindThrottled},
		{"SlowDown", cloud.KindThrottled},
		{"RequestLimitExceeded", cloud.KindThrottled},
		{"ValidationException", cloud.KindValidation},
		{"MissingParameter", cloud.KindValidation},
		{"SomeNewCode", cloud.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := classify("ec2", "us-east-1", "DescribeInstances",
				&smithy.GenericAPIError{Code: tt.code, Message: "detail"})
			assert.Equal(t, tt.want, err.Kind)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, "detail", err.Message)
		})
	}
}

func TestClassify_MessageFallback(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want cloud.Kind
	}{
		{"regional availability in prose", "This operation is not supported in this region", cloud.KindNotSubscribed},
		{"subscription in prose", "The AWS Access Key Id needs a subscription: not subscribed", cloud.KindNotSubscribed},
		{"throttle in prose", "Rate exceeded", cloud.KindThrottled},
		{"opaque message", "some completely novel failure", cloud.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("svc", "r", "Op", &smithy.GenericAPIError{Code: "Unmapped", Message: tt.msg})
			assert.Equal(t, tt.want, err.Kind)
		})
	}
}

func TestClassify_TransportErrors(t *testing.T) {
	t.Run("net error", func(t *testing.T) {
		var netErr net.Error = &net.DNSError{Err: "no such host", Name: "sqs.nowhere.amazonaws.com", IsNotFound: true}
		err := classify("sqs", "us-east-1", "ListQueues", netErr)
		assert.Equal(t, cloud.KindTransport, err.Kind)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		err := classify("sqs", "us-east-1", "ListQueues", context.DeadlineExceeded)
		assert.Equal(t, cloud.KindTransport, err.Kind)
	})

	t.Run("connection refused in prose", func(t *testing.T) {
		err := classify("sqs", "us-east-1", "ListQueues", errors.New("dial tcp 1.2.3.4:443: connection refused"))
		assert.Equal(t, cloud.KindTransport, err.Kind)
	})

	t.Run("plain error stays unknown", func(t *testing.T) {
		err := classify("sqs", "us-east-1", "ListQueues", errors.New("boom"))
		assert.Equal(t, cloud.KindUnknown, err.Kind)
	})
}

func TestClassify_Identity(t *testing.T) {
	err := classify("kms", "eu-central-1", "ListKeys", &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"})
	require.Equal(t, "kms", err.Service)
	require.Equal(t, "eu-central-1", err.Region)
	require.Equal(t, "ListKeys", err.Operation)

	// Sanity: the classified error renders all identity parts.
	assert.Contains(t, err.Error(), "kms eu-central-1 ListKeys")
}
