package awsapi

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/regression-io/aws-list-all/pkg/cloud"
)

// tokenFields maps output continuation fields to the request parameter
// that carries them on the next call. Order matters: the first field
// present and non-empty in a response wins.
var tokenFields = []struct {
	output string
	input  string
}{
	{"NextToken", "NextToken"},
	{"NextContinuationToken", "ContinuationToken"},
	{"NextMarker", "Marker"},
	{"Marker", "Marker"},
	{"NextKeyMarker", "KeyMarker"},
}

// metadataFields are response fields carried by the SDK envelope rather
// than the API payload. They are dropped during decoding.
var metadataFields = map[string]bool{
	"ResultMetadata": true,
}

// serviceClient invokes operations on one generated SDK client through
// reflection. Generated clients are safe for concurrent use, and the
// reflection layer holds no mutable state, so serviceClient is too.
type serviceClient struct {
	service string
	region  string
	api     any
}

// Invoke calls the named operation with the given parameters.
//
// Generated operation methods have the shape
//
//	func (c *Client) Op(ctx, *OpInput, ...func(*Options)) (*OpOutput, error)
//
// The input struct is built fresh per call and populated from params via
// a JSON round-trip, which tolerates the SDK's pointer-heavy field types.
func (c *serviceClient) Invoke(ctx context.Context, operation string, params map[string]any) (*cloud.Page, error) {
	method := reflect.ValueOf(c.api).MethodByName(operation)
	if !method.IsValid() {
		return nil, c.apiError(operation, "UnknownOperation", "operation not provided by the "+c.service+" client", cloud.KindValidation)
	}
	mt := method.Type()
	if mt.NumIn() < 2 || mt.NumOut() != 2 || mt.In(1).Kind() != reflect.Ptr {
		return nil, c.apiError(operation, "UnknownOperation", "unexpected method shape for "+operation, cloud.KindValidation)
	}

	input := reflect.New(mt.In(1).Elem())
	if len(params) > 0 {
		raw, err := json.Marshal(params)
		if err != nil {
			return nil, c.apiError(operation, "", "encode parameters: "+err.Error(), cloud.KindValidation)
		}
		if err := json.Unmarshal(raw, input.Interface()); err != nil {
			return nil, c.apiError(operation, "", "apply parameters: "+err.Error(), cloud.KindValidation)
		}
	}

	results := method.Call([]reflect.Value{reflect.ValueOf(ctx), input})
	if errVal := results[1]; !errVal.IsNil() {
		return nil, classify(c.service, c.region, operation, errVal.Interface().(error))
	}

	fields, err := decodeOutput(results[0].Interface())
	if err != nil {
		return nil, c.apiError(operation, "", "decode response: "+err.Error(), cloud.KindUnknown)
	}

	page := &cloud.Page{Fields: fields}
	page.NextToken, page.TokenParam = continuation(fields)
	return page, nil
}

func (c *serviceClient) apiError(operation, code, message string, kind cloud.Kind) *cloud.APIError {
	return &cloud.APIError{
		Service:   c.service,
		Region:    c.region,
		Operation: operation,
		Code:      code,
		Message:   message,
		Kind:      kind,
	}
}

// decodeOutput flattens a typed SDK output struct into a field map via a
// JSON round-trip, dropping SDK envelope metadata.
func decodeOutput(out any) (map[string]any, error) {
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for name := range metadataFields {
		delete(fields, name)
	}
	return fields, nil
}

// continuation extracts the pagination token from a decoded response.
func continuation(fields map[string]any) (token, param string) {
	// IsTruncated=false means any marker present is residue, not a cue
	// to keep paging (S3 and IAM both do this).
	if truncated, ok := fields["IsTruncated"].(bool); ok && !truncated {
		return "", ""
	}
	for _, tf := range tokenFields {
		if v, ok := fields[tf.output].(string); ok && v != "" {
			return v, tf.input
		}
	}
	return "", ""
}
