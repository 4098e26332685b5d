package forms

import "strings"

// TagSet is an ordered set of video tags.
//
// Tags are trimmed and lowercased on entry; adding a duplicate is a no-op and
// the set refuses to grow past [TagsMax].
type TagSet struct {
	tags []string
}

// NewTagSet creates an empty tag set.
func NewTagSet() *TagSet {
	return &TagSet{}
}

// Add inserts a tag, reporting whether the set changed.
//
// Empty input and duplicates (case-insensitive, trimmed) are no-ops; an
// insert past the limit is rejected.
func (s *TagSet) Add(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return false
	}

	for _, existing := range s.tags {
		if existing == tag {
			return false
		}
	}

	if len(s.tags) >= TagsMax {
		return false
	}

	s.tags = append(s.tags, tag)
	return true
}

// Remove deletes the first entry matching tag (after normalization),
// reporting whether the set changed.
func (s *TagSet) Remove(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, existing := range s.tags {
		if existing == tag {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of tags.
func (s *TagSet) Len() int { return len(s.tags) }

// List returns a copy of the tags in insertion order.
func (s *TagSet) List() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// ParseTagSet builds a set from a comma-separated string, applying the same
// normalization and limits as [TagSet.Add].
func ParseTagSet(csv string) *TagSet {
	s := NewTagSet()
	for _, tag := range strings.Split(csv, ",") {
		s.Add(tag)
	}
	return s
}
