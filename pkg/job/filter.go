package job

import "strings"

// Filter returns the records matching both predicates, preserving input
// order. An empty predicate matches everything; a record with an empty
// location never matches a non-empty location filter.
func Filter(jobs []Job, f Filters) []Job {
	role := strings.ToLower(strings.TrimSpace(f.Role))
	location := strings.ToLower(strings.TrimSpace(f.Location))
	if role == "" && location == "" {
		return jobs
	}
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if role != "" && !strings.Contains(strings.ToLower(j.Title), role) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		out = append(out, j)
	}
	return out
}
