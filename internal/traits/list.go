package traits

// traitList accumulates candidate strings with first-seen deduplication
// and a fixed cap. Candidates arriving after the cap is reached are
// dropped, so insertion order decides which survive truncation.
type traitList struct {
	limit int
	seen  map[string]bool
	items []string
}

func newTraitList(limit int) *traitList {
	return &traitList{
		limit: limit,
		seen:  make(map[string]bool),
	}
}

// add appends each candidate not already present, up to the cap.
func (l *traitList) add(candidates ...string) {
	for _, c := range candidates {
		if len(l.items) >= l.limit {
			return
		}
		if l.seen[c] {
			continue
		}
		l.seen[c] = true
		l.items = append(l.items, c)
	}
}

// values returns the accumulated list. Never nil, so empty groups
// serialize as [] rather than null.
func (l *traitList) values() []string {
	if l.items == nil {
		return []string{}
	}
	return l.items
}
