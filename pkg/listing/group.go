// Package listing persists classified sweep results and reads them back.
//
// The on-disk shape is a single JSON document grouping entries by
// result class, then region, then service. All four class keys are
// always present, even when empty, so consumers can index without
// existence checks.
package listing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/regression-io/aws-list-all/pkg/sweep"
)

// FileName is the fixed output filename; each run overwrites it.
const FileName = "aws_list_all.json"

// Entry is one classified operation under a (class, region, service) key.
type Entry struct {
	Operation string `json:"operation"`

	// ResultTypes names the response fields that carried content, for
	// SOMETHING entries.
	ResultTypes []string `json:"result_types"`

	// Error retains the error payload for NO_ACCESS and ERROR entries.
	Error string `json:"error,omitempty"`
}

// Group is the aggregated structure persisted to disk:
// class → region → service → entries.
//
// Entry order within a service follows job completion order; consumers
// sort for display.
type Group map[sweep.ResultClass]map[string]map[string][]Entry

// Aggregate folds classified records into a Group. Every terminal
// result class is present in the output even when it collected nothing.
func Aggregate(records []sweep.Record) Group {
	g := Group{}
	for _, class := range sweep.Classes {
		g[class] = map[string]map[string][]Entry{}
	}
	for _, rec := range records {
		byRegion := g[rec.Class]
		if byRegion == nil {
			byRegion = map[string]map[string][]Entry{}
			g[rec.Class] = byRegion
		}
		byService := byRegion[rec.Region]
		if byService == nil {
			byService = map[string][]Entry{}
			byRegion[rec.Region] = byService
		}
		byService[rec.Service] = append(byService[rec.Service], Entry{
			Operation:   rec.Operation,
			ResultTypes: rec.ResultTypes,
			Error:       rec.ErrorMessage,
		})
	}
	return g
}

// Counts returns the number of entries per result class.
func (g Group) Counts() map[sweep.ResultClass]int {
	counts := map[sweep.ResultClass]int{}
	for class, byRegion := range g {
		n := 0
		for _, byService := range byRegion {
			for _, entries := range byService {
				n += len(entries)
			}
		}
		counts[class] = n
	}
	return counts
}

// Rows renders the entries of one class as sorted display lines of the
// form "region service operation detail".
func (g Group) Rows(class sweep.ResultClass) []string {
	var rows []string
	for region, byService := range g[class] {
		for service, entries := range byService {
			for _, e := range entries {
				detail := strings.Join(e.ResultTypes, ", ")
				if detail == "" {
					detail = e.Error
				}
				rows = append(rows, strings.TrimRight(fmt.Sprintf("%s %s %s %s", region, service, e.Operation, detail), " "))
			}
		}
	}
	sort.Strings(rows)
	return rows
}

// Write serializes the group as formatted JSON into dir, overwriting any
// previous listing, and returns the written path.
func (g Group) Write(dir string) (string, error) {
	raw, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode listing: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write listing: %w", err)
	}
	return path, nil
}

// Load parses a previously saved listing file.
//
// A malformed file fails only itself; callers processing several files
// surface the error and move on.
func Load(path string) (Group, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listing %s: %w", path, err)
	}
	var g Group
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("parse listing %s: %w", path, err)
	}
	return g, nil
}
