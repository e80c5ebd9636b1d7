package classify

// Unique removes later duplicates from tasks, keeping each string at its
// first-occurrence position. A nil or empty input returns an empty,
// non-nil slice so callers can range and index without nil checks.
func Unique(tasks []string) []string {
	seen := make(map[string]struct{}, len(tasks))
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if _, ok := seen[task]; ok {
			continue
		}
		seen[task] = struct{}{}
		out = append(out, task)
	}
	return out
}
