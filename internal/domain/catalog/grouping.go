package catalog

import "sort"

type CategoryGroup struct {
	Category string
	Services []*Service
}

// GroupByCategory buckets services by category, categories ordered
// lexicographically with the Uncategorized bucket last. Services keep their
// input order within a bucket.
func GroupByCategory(services []*Service) []CategoryGroup {
	buckets := make(map[string][]*Service)
	for _, s := range services {
		cat := s.Category()
		buckets[cat] = append(buckets[cat], s)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		if name != Uncategorized {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := buckets[Uncategorized]; ok {
		names = append(names, Uncategorized)
	}

	groups := make([]CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, CategoryGroup{Category: name, Services: buckets[name]})
	}
	return groups
}
