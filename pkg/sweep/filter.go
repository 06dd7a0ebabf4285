package sweep

import "github.com/bmatcuk/doublestar/v4"

// Filter restricts which services, regions, and operations a sweep
// covers. Each field is a set of glob patterns (plain names work as
// exact matches); an empty set matches everything.
type Filter struct {
	Services   []string
	Regions    []string
	Operations []string
}

// MatchService reports whether the service passes the filter.
func (f Filter) MatchService(name string) bool {
	return matchAny(f.Services, name)
}

// MatchRegion reports whether the region passes the filter.
func (f Filter) MatchRegion(name string) bool {
	return matchAny(f.Regions, name)
}

// MatchOperation reports whether the operation passes the filter.
func (f Filter) MatchOperation(name string) bool {
	return matchAny(f.Operations, name)
}

func matchAny(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		ok, err := doublestar.Match(p, name)
		if err != nil {
			// Unparseable pattern: fall back to exact comparison so a
			// literal name with odd characters still selects.
			ok = p == name
		}
		if ok {
			return true
		}
	}
	return false
}
