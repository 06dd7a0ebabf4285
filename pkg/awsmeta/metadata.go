// Package awsmeta provides static AWS service metadata: the API operations
// each service exposes (with their required input members) and the regions
// each service is advertised in.
//
// Metadata is served from a refreshable on-disk cache when present, falling
// back to descriptors packaged with the binary. The data is read-only at
// query time; only the recreate-caches path rewrites it.
package awsmeta

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// OperationDescriptor describes a single API operation of a service.
type OperationDescriptor struct {
	// Name is the operation name as it appears in the service API,
	// e.g. "ListBuckets" or "DescribeInstances".
	Name string `json:"name"`

	// RequiredMembers lists input members the API marks as required.
	// Operations with any required member cannot be auto-invoked.
	RequiredMembers []string `json:"required,omitempty"`
}

// Required reports whether the operation declares mandatory input members.
func (o OperationDescriptor) Required() bool {
	return len(o.RequiredMembers) > 0
}

// ServiceDescriptor describes one AWS service: its operations and the
// regions it is advertised in.
type ServiceDescriptor struct {
	// Name is the short service identifier, e.g. "s3" or "ec2".
	Name string `json:"name"`

	// Global marks services without a regional partition (IAM, Route 53).
	// Global services carry no Regions list.
	Global bool `json:"global,omitempty"`

	// Regions lists region identifiers where the service is advertised.
	Regions []string `json:"regions,omitempty"`

	// Operations lists every API operation of the service.
	Operations []OperationDescriptor `json:"operations"`
}

// Operation returns the descriptor for the named operation, if present.
func (s *ServiceDescriptor) Operation(name string) (OperationDescriptor, bool) {
	for _, op := range s.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return OperationDescriptor{}, false
}

// Catalog is the full set of service descriptors for one metadata version.
type Catalog struct {
	// Version identifies the metadata snapshot, e.g. "2025-08-19".
	Version string `json:"version"`

	// Services holds one descriptor per service, sorted by name.
	Services []ServiceDescriptor `json:"services"`
}

// Service returns the descriptor for the named service, if present.
func (c *Catalog) Service(name string) (*ServiceDescriptor, bool) {
	for i := range c.Services {
		if c.Services[i].Name == name {
			return &c.Services[i], true
		}
	}
	return nil, false
}

// ServiceNames returns the sorted short names of all known services.
func (c *Catalog) ServiceNames() []string {
	names := make([]string, 0, len(c.Services))
	for _, s := range c.Services {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// Load returns the service catalog, preferring a refreshed on-disk cache
// over the packaged copy.
//
// A corrupt cache file is an error rather than a silent fallback: the
// operator asked for refreshed data and should know it is unreadable.
func Load() (*Catalog, error) {
	if path, err := cachedServicesPath(); err == nil {
		if raw, err := os.ReadFile(path); err == nil {
			return parseCatalog(raw, path)
		}
	}
	return Packaged()
}

// Packaged parses the descriptors embedded in the binary, ignoring any
// on-disk cache.
func Packaged() (*Catalog, error) {
	return parseCatalog(packagedServices, "packaged services.json")
}

func parseCatalog(raw []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse service metadata from %s: %w", source, err)
	}
	if len(c.Services) == 0 {
		return nil, fmt.Errorf("service metadata from %s contains no services", source)
	}
	sort.Slice(c.Services, func(i, j int) bool { return c.Services[i].Name < c.Services[j].Name })
	return &c, nil
}
