package inventory

import "sort"

// ExpansionSet tracks which bundle rows are expanded. The zero value is an
// empty set ready for use.
type ExpansionSet struct {
	ids map[string]struct{}
}

// NewExpansionSet returns an empty set.
func NewExpansionSet() *ExpansionSet {
	return &ExpansionSet{ids: make(map[string]struct{})}
}

// Toggle adds id when absent and removes it when present. It returns whether
// id is expanded afterwards.
func (s *ExpansionSet) Toggle(id string) bool {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// IsExpanded reports whether id is in the set.
func (s *ExpansionSet) IsExpanded(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of expanded ids.
func (s *ExpansionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the expanded ids in sorted order.
func (s *ExpansionSet) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
