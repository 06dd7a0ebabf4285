package cloud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	withCode := &APIError{
		Service: "ec2", Region: "eu-west-1", Operation: "DescribeInstances",
		Code: "UnauthorizedOperation", Message: "not allowed", Kind: KindAccessDenied,
	}
	assert.Equal(t, "ec2 eu-west-1 DescribeInstances: UnauthorizedOperation: not allowed", withCode.Error())

	withoutCode := &APIError{
		Service: "s3", Region: "us-east-1", Operation: "ListBuckets",
		Message: "dial tcp: no route to host", Kind: KindTransport,
	}
	assert.Equal(t, "s3 us-east-1 ListBuckets: dial tcp: no route to host", withoutCode.Error())
}

func TestKindHelpers(t *testing.T) {
	tests := []struct {
		kind         Kind
		accessDenied bool
		notSub       bool
		throttled    bool
	}{
		{KindAccessDenied, true, false, false},
		{KindNotSubscribed, false, true, false},
		{KindThrottled, false, false, true},
		{KindValidation, false, false, false},
		{KindUnknown, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &APIError{Kind: tt.kind}
			assert.Equal(t, tt.accessDenied, IsAccessDenied(err))
			assert.Equal(t, tt.notSub, IsNotSubscribed(err))
			assert.Equal(t, tt.throttled, IsThrottled(err))
		})
	}
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.False(t, IsAccessDenied(errors.New("access denied")), "message text alone must not classify")
}
