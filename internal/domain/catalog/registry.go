package catalog

import (
	"sort"
	"strings"
)

// CategoryRegistry records category labels independently of the services
// that reference them, so a freshly created label is suggestible before any
// service carries it. The registry is an explicit value passed in and out
// of the catalog usecases, never ambient state.
type CategoryRegistry struct {
	labels map[string]struct{}
}

func NewCategoryRegistry(labels ...string) *CategoryRegistry {
	r := &CategoryRegistry{labels: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		r.Add(l)
	}
	return r
}

// Add records a label. Empty and sentinel labels are ignored.
func (r *CategoryRegistry) Add(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || label == Uncategorized {
		return false
	}
	if _, ok := r.labels[label]; ok {
		return false
	}
	r.labels[label] = struct{}{}
	return true
}

func (r *CategoryRegistry) Rename(from, to string) bool {
	to = strings.TrimSpace(to)
	if _, ok := r.labels[from]; !ok || to == "" {
		return false
	}
	delete(r.labels, from)
	r.labels[to] = struct{}{}
	return true
}

func (r *CategoryRegistry) Remove(label string) {
	delete(r.labels, label)
}

func (r *CategoryRegistry) Has(label string) bool {
	_, ok := r.labels[label]
	return ok
}

// Labels returns the registered labels sorted lexicographically.
func (r *CategoryRegistry) Labels() []string {
	out := make([]string, 0, len(r.labels))
	for l := range r.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
