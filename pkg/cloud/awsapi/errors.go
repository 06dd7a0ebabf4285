package awsapi

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/regression-io/aws-list-all/pkg/cloud"
)

// errorKinds maps AWS API error codes to classified kinds. The table is
// shared across services; codes differ only in suffix conventions.
var errorKinds = map[string]cloud.Kind{
	"AccessDenied":          cloud.KindAccessDenied,
	"AccessDeniedException": cloud.KindAccessDenied,
	"AuthFailure":           cloud.KindAccessDenied,
	"Forbidden":             cloud.KindAccessDenied,
	"NotAuthorized":         cloud.KindAccessDenied,
	"UnauthorizedAccess":    cloud.KindAccessDenied,
	"UnauthorizedOperation": cloud.KindAccessDenied,

	"InvalidAction":                 cloud.KindNotSubscribed,
	"OptInRequired":                 cloud.KindNotSubscribed,
	"SubscriptionRequiredException": cloud.KindNotSubscribed,
	"UnsupportedOperation":          cloud.KindNotSubscribed,

	"RequestLimitExceeded":     cloud.KindThrottled,
	"RequestThrottled":         cloud.KindThrottled,
	"SlowDown":                 cloud.KindThrottled,
	"Throttling":               cloud.KindThrottled,
	"ThrottlingException":      cloud.KindThrottled,
	"TooManyRequestsException": cloud.KindThrottled,

	"InvalidParameterCombination": cloud.KindValidation,
	"InvalidParameterValue":       cloud.KindValidation,
	"MissingParameter":            cloud.KindValidation,
	"MissingParameterException":   cloud.KindValidation,
	"ValidationError":             cloud.KindValidation,
	"ValidationException":         cloud.KindValidation,
}

// classify converts an SDK invocation error into a tagged *cloud.APIError.
// This is the single place provider errors are inspected.
func classify(service, region, operation string, err error) *cloud.APIError {
	tagged := &cloud.APIError{
		Service:   service,
		Region:    region,
		Operation: operation,
		Message:   err.Error(),
		Kind:      cloud.KindUnknown,
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		tagged.Code = apiErr.ErrorCode()
		tagged.Message = apiErr.ErrorMessage()
		if kind, ok := errorKinds[tagged.Code]; ok {
			tagged.Kind = kind
			return tagged
		}
		tagged.Kind = kindFromMessage(tagged.Code + " " + tagged.Message)
		return tagged
	}

	var netErr net.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded):
		tagged.Kind = cloud.KindTransport
	default:
		tagged.Kind = kindFromMessage(err.Error())
	}
	return tagged
}

// kindFromMessage is the fallback for codes missing from the table.
// Some services report availability problems only in prose.
func kindFromMessage(msg string) cloud.Kind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not supported in this region"),
		strings.Contains(lower, "not subscribed"),
		strings.Contains(lower, "is not available in"):
		return cloud.KindNotSubscribed
	case strings.Contains(lower, "access denied"),
		strings.Contains(lower, "not authorized"):
		return cloud.KindAccessDenied
	case strings.Contains(lower, "rate exceeded"),
		strings.Contains(lower, "throttl"):
		return cloud.KindThrottled
	case strings.Contains(lower, "no such host"),
		strings.Contains(lower, "connection refused"),
		strings.Contains(lower, "connection reset"):
		return cloud.KindTransport
	default:
		return cloud.KindUnknown
	}
}
