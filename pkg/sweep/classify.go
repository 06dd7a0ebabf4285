package sweep

import (
	"sort"

	"github.com/regression-io/aws-list-all/pkg/cloud"
)

// paginationKeys are response fields carried by every paginated API
// shape regardless of content. They never count as substance.
var paginationKeys = map[string]bool{
	"ContinuationToken":     true,
	"EncodingType":          true,
	"IsTruncated":           true,
	"KeyMarker":             true,
	"Marker":                true,
	"MaxItems":              true,
	"MaxKeys":               true,
	"MaxResults":            true,
	"NextContinuationToken": true,
	"NextKeyMarker":         true,
	"NextMarker":            true,
	"NextToken":             true,
	"RequestId":             true,
	"ResponseMetadata":      true,
	"Truncated":             true,
}

// Classify assigns a result class to one invocation outcome.
//
// It is a pure function: the same pages, error, and boilerplate set
// always yield the same class and result types.
//
// Failed invocations classify by error kind per the cloud taxonomy:
// permission and availability failures are NO_ACCESS, everything else is
// ERROR with the message retained. Successful invocations classify by
// substance: after dropping pagination keys and the curated boilerplate
// for this operation, any remaining list- or map-valued field with at
// least one entry makes the outcome SOMETHING, carrying the sorted
// distinct names of those fields. Otherwise the outcome is NOTHING:
// a structurally non-empty but semantically empty response (tokens,
// echoed limits, fixed owner blocks) must not read as a finding.
func Classify(pages []*cloud.Page, err error, boilerplate []string) Outcome {
	if err != nil {
		out := Outcome{ErrorMessage: err.Error()}
		switch cloud.KindOf(err) {
		case cloud.KindAccessDenied, cloud.KindNotSubscribed:
			out.Class = ClassNoAccess
		default:
			out.Class = ClassError
		}
		return out
	}

	skip := make(map[string]bool, len(boilerplate))
	for _, key := range boilerplate {
		skip[key] = true
	}

	seen := map[string]bool{}
	for _, page := range pages {
		for name, value := range page.Fields {
			if paginationKeys[name] || skip[name] {
				continue
			}
			if substantive(value) {
				seen[name] = true
			}
		}
	}

	if len(seen) == 0 {
		return Outcome{Class: ClassNothing}
	}

	types := make([]string, 0, len(seen))
	for name := range seen {
		types = append(types, name)
	}
	sort.Strings(types)
	return Outcome{Class: ClassSomething, ResultTypes: types}
}

// substantive reports whether a decoded response field carries content.
// Only collection-valued fields count: scalars are echoes of request
// parameters or fixed response attributes, not inventory.
func substantive(value any) bool {
	switch v := value.(type) {
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return false
	}
}
