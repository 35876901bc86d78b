package knowledge

import (
	apperrors "qa-mentor/errors"
)

// Index is the process-lifetime, read-only collection of topics. It is built
// once at startup and safely shared across request handlers without locking.
type Index struct {
	topics  map[string]*Topic
	order   []string
	entries []EntryRef
}

// NewIndex validates the topic collection against the declared order and
// flattens all entries for iteration. Any inconsistency is a construction
// error; callers are expected to treat it as fatal.
func NewIndex(topics []*Topic, order []string) (*Index, error) {
	byID := make(map[string]*Topic, len(topics))
	for _, t := range topics {
		if t.ID == "" {
			return nil, apperrors.WrapErrorf(apperrors.ErrIndexInconsistent, "topic %q has empty id", t.Name)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, apperrors.WrapErrorf(apperrors.ErrIndexInconsistent, "duplicate topic id %q", t.ID)
		}
		if len(t.Entries) == 0 {
			return nil, apperrors.WrapErrorf(apperrors.ErrIndexInconsistent, "topic %q has no entries", t.ID)
		}
		byID[t.ID] = t
	}

	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if _, ok := byID[id]; !ok {
			return nil, apperrors.WrapErrorf(apperrors.ErrIndexInconsistent, "topic order references unknown topic %q", id)
		}
		if seen[id] {
			return nil, apperrors.WrapErrorf(apperrors.ErrIndexInconsistent, "topic %q listed twice in topic order", id)
		}
		seen[id] = true
	}
	for id := range byID {
		if !seen[id] {
			return nil, apperrors.WrapErrorf(apperrors.ErrIndexInconsistent, "topic %q missing from topic order", id)
		}
	}

	ix := &Index{
		topics: byID,
		order:  append([]string(nil), order...),
	}
	for _, id := range ix.order {
		t := byID[id]
		for i := range t.Entries {
			ix.entries = append(ix.entries, EntryRef{Topic: t, Entry: &t.Entries[i]})
		}
	}
	return ix, nil
}

// TopicOrder returns the fixed total order of topic identifiers.
func (ix *Index) TopicOrder() []string {
	return append([]string(nil), ix.order...)
}

// Topic looks up a topic by identifier.
func (ix *Index) Topic(id string) (*Topic, bool) {
	t, ok := ix.topics[id]
	return t, ok
}

// Entries returns every (topic, entry) pair in iteration order.
func (ix *Index) Entries() []EntryRef {
	return ix.entries
}

// FirstTopic returns the first topic in the course order.
func (ix *Index) FirstTopic() *Topic {
	return ix.topics[ix.order[0]]
}

// Position returns the index of a topic id within the topic order.
func (ix *Index) Position(id string) (int, bool) {
	for i, tid := range ix.order {
		if tid == id {
			return i, true
		}
	}
	return 0, false
}

// TopicCount returns the number of topics in the course.
func (ix *Index) TopicCount() int {
	return len(ix.order)
}
