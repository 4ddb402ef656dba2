package tags

// Tagset is a deduplicated set of tags. The zero value is not usable; use
// NewTagset.
type Tagset struct {
	items map[string]Tag
}

// NewTagset returns a set containing the given tags.
func NewTagset(ts ...Tag) Tagset {
	s := Tagset{items: make(map[string]Tag, len(ts))}
	for _, t := range ts {
		s.Add(t)
	}
	return s
}

// Add inserts a tag. Empty tags are ignored.
func (s Tagset) Add(t Tag) {
	if len(t) == 0 {
		return
	}
	key := t.String()
	if _, ok := s.items[key]; ok {
		return
	}
	s.items[key] = append(Tag(nil), t...)
}

// Union adds every tag of other into s.
func (s Tagset) Union(other Tagset) {
	for k, t := range other.items {
		if _, ok := s.items[k]; !ok {
			s.items[k] = t
		}
	}
}

// Contains reports whether t is in the set.
func (s Tagset) Contains(t Tag) bool {
	_, ok := s.items[t.String()]
	return ok
}

// Len returns the number of distinct tags.
func (s Tagset) Len() int {
	return len(s.items)
}

// Empty reports whether the set has no tags.
func (s Tagset) Empty() bool {
	return len(s.items) == 0
}

// Sorted returns the tags in canonical order.
func (s Tagset) Sorted() []Tag {
	out := make([]Tag, 0, len(s.items))
	for _, t := range s.items {
		out = append(out, t)
	}
	Sort(out)
	return out
}

// Strings returns the joined form of each tag in canonical order.
func (s Tagset) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, t := range sorted {
		out[i] = t.String()
	}
	return out
}

// Equal reports whether both sets hold the same tags.
func (s Tagset) Equal(other Tagset) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for k := range s.items {
		if _, ok := other.items[k]; !ok {
			return false
		}
	}
	return true
}
