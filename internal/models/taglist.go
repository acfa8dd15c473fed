// ABOUTME: TagList is an insertion-ordered, duplicate-rejecting tag sequence.
// ABOUTME: Makes the no-duplicates invariant structural instead of per-call-site.

package models

type TagList struct {
	names []string
}

// NewTagList builds a list from names, dropping duplicates. First occurrence wins.
func NewTagList(names ...string) *TagList {
	l := &TagList{}
	for _, n := range names {
		l.Add(n)
	}
	return l
}

// Add appends name if absent. Returns true if the name was inserted.
func (l *TagList) Add(name string) bool {
	if l.Has(name) {
		return false
	}
	l.names = append(l.names, name)
	return true
}

// Remove deletes name from the list. Returns true if it was present.
func (l *TagList) Remove(name string) bool {
	for i, n := range l.names {
		if n == name {
			l.names = append(l.names[:i], l.names[i+1:]...)
			return true
		}
	}
	return false
}

func (l *TagList) Has(name string) bool {
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

// Toggle flips membership and returns true if name is now present.
func (l *TagList) Toggle(name string) bool {
	if l.Remove(name) {
		return false
	}
	l.names = append(l.names, name)
	return true
}

// Union appends the names from other that are not already present, in order.
func (l *TagList) Union(other []string) {
	for _, n := range other {
		l.Add(n)
	}
}

// Names returns a copy of the list in insertion order.
func (l *TagList) Names() []string {
	if len(l.names) == 0 {
		return nil
	}
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

func (l *TagList) Len() int {
	return len(l.names)
}
