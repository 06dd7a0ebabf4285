// Package catalog derives the set of candidate listing operations for a
// service from its static API metadata.
//
// An operation qualifies as a listing operation when its name carries
// enumeration semantics (List*, Describe*, or Get* on a collection-shaped
// noun) and it declares no required input members; an operation needing
// parameters cannot be safely auto-invoked. Two curated override sets,
// kept as versioned YAML data, correct the heuristic in both directions.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/regression-io/aws-list-all/pkg/awsmeta"
)

//go:embed overrides.yaml
var overridesYAML []byte

// VerbClass is the first-word classification of an operation name,
// exposed for debug introspection.
type VerbClass string

const (
	VerbGet      VerbClass = "Get"
	VerbList     VerbClass = "List"
	VerbDescribe VerbClass = "Describe"
	VerbOther    VerbClass = "Other"
)

// Verb pairs an operation name with its verb classification.
type Verb struct {
	Operation string
	Class     VerbClass
}

type overrides struct {
	Version int `yaml:"version"`

	// Include forces operations into the listing set per service.
	Include map[string][]string `yaml:"include"`

	// Exclude removes known false positives per service.
	Exclude map[string][]string `yaml:"exclude"`

	// Boilerplate maps "service.Operation" to response keys that are
	// present regardless of content and must not count as substance.
	Boilerplate map[string][]string `yaml:"boilerplate"`
}

var (
	overridesOnce   sync.Once
	overridesData   overrides
	overridesParse  error
	overridesLoader = func() ([]byte, error) { return overridesYAML, nil }
)

func loadOverrides() (*overrides, error) {
	overridesOnce.Do(func() {
		raw, err := overridesLoader()
		if err != nil {
			overridesParse = err
			return
		}
		overridesParse = yaml.Unmarshal(raw, &overridesData)
		if overridesParse != nil {
			overridesParse = fmt.Errorf("parse operation overrides: %w", overridesParse)
		}
	})
	if overridesParse != nil {
		return nil, overridesParse
	}
	return &overridesData, nil
}

// ListingOperations returns the ordered names of operations safe to
// auto-invoke for the given service.
//
// The result is a pure function of the service metadata and the override
// data; it is sorted so repeated runs build identical job sets.
func ListingOperations(svc *awsmeta.ServiceDescriptor) ([]string, error) {
	ov, err := loadOverrides()
	if err != nil {
		return nil, err
	}

	include := toSet(ov.Include[svc.Name])
	exclude := toSet(ov.Exclude[svc.Name])

	var ops []string
	for _, op := range svc.Operations {
		if exclude[op.Name] {
			continue
		}
		if include[op.Name] || (isListingName(op.Name) && !op.Required()) {
			ops = append(ops, op.Name)
		}
	}
	sort.Strings(ops)
	return ops, nil
}

// BoilerplateKeys returns the curated always-present response keys for
// the given operation. A nil result means no curated entry exists.
func BoilerplateKeys(service, operation string) []string {
	ov, err := loadOverrides()
	if err != nil {
		return nil
	}
	return ov.Boilerplate[service+"."+operation]
}

// Verbs classifies every operation of the service by its leading verb.
// This is a debug surface for inspecting what the heuristic sees.
func Verbs(svc *awsmeta.ServiceDescriptor) []Verb {
	verbs := make([]Verb, 0, len(svc.Operations))
	for _, op := range svc.Operations {
		verbs = append(verbs, Verb{Operation: op.Name, Class: classifyVerb(op.Name)})
	}
	sort.Slice(verbs, func(i, j int) bool { return verbs[i].Operation < verbs[j].Operation })
	return verbs
}

func classifyVerb(name string) VerbClass {
	switch {
	case strings.HasPrefix(name, "List"):
		return VerbList
	case strings.HasPrefix(name, "Describe"):
		return VerbDescribe
	case strings.HasPrefix(name, "Get"):
		return VerbGet
	default:
		return VerbOther
	}
}

// isListingName reports whether the operation name alone suggests
// enumeration semantics. List and Describe verbs always qualify; Get
// only qualifies when the noun looks collection-shaped (plural), since
// Get on a singular noun fetches one resource and usually needs an
// identifier in practice even when metadata says otherwise.
func isListingName(name string) bool {
	switch classifyVerb(name) {
	case VerbList, VerbDescribe:
		return true
	case VerbGet:
		return strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "Status")
	default:
		return false
	}
}

func toSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
