package funnel

// Selection is the set of allowed values per categorical field. A record
// survives filtering only if all four of its fields are members of the
// corresponding set. An empty (or nil) set matches nothing; there is no
// implicit "empty means all" — callers wanting everything pass the full
// universe (see SelectAll).
type Selection struct {
	Brands      map[string]struct{}
	Campaigns   map[string]struct{}
	Regions     map[string]struct{}
	Specialties map[string]struct{}
}

// NewSelection builds a Selection from value slices.
func NewSelection(brands, campaigns, regions, specialties []string) Selection {
	return Selection{
		Brands:      toSet(brands),
		Campaigns:   toSet(campaigns),
		Regions:     toSet(regions),
		Specialties: toSet(specialties),
	}
}

// SelectAll returns a Selection covering every known value of every field.
func SelectAll() Selection {
	return NewSelection(Brands, Campaigns(), Regions, Specialties)
}

// Matches reports whether e passes all four set-membership checks.
func (s Selection) Matches(e Event) bool {
	if _, ok := s.Brands[e.Brand]; !ok {
		return false
	}
	if _, ok := s.Campaigns[e.Campaign]; !ok {
		return false
	}
	if _, ok := s.Regions[e.Region]; !ok {
		return false
	}
	_, ok := s.Specialties[e.Specialty]
	return ok
}

// Filter returns the order-preserving subsequence of events matching sel.
// The input slice is never mutated; the result is always a fresh slice.
func Filter(events []Event, sel Selection) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if sel.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
