package keys

// DedupeTitles normalizes a list of raw titles, drops the ones that normalize
// to an empty key, and removes duplicates by canonical key while preserving
// first-seen order. Used when a member submits a personal inventory list that
// must not contain the same item type twice.
func DedupeTitles(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		key := Normalize(title)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
