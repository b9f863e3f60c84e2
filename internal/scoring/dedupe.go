package scoring

// dedupe collapses records that describe the same underlying story:
// two records match if they share a non-empty normalized title or a
// non-empty URL. Both indices repoint to the surviving slot on every
// insert, so chains of matches (A~B by title, B~C by URL) collapse onto
// one representative transitively. First-seen order is preserved for
// stories that never collide.
func dedupe(records []record) []record {
	unique := make([]record, 0, len(records))
	titleIndex := map[string]int{}
	urlIndex := map[string]int{}

	for _, candidate := range records {
		idx := -1
		if candidate.normalizedTitle != "" {
			if i, ok := titleIndex[candidate.normalizedTitle]; ok {
				idx = i
			}
		}
		if idx < 0 && candidate.url != "" {
			if i, ok := urlIndex[candidate.url]; ok {
				idx = i
			}
		}

		if idx < 0 {
			unique = append(unique, candidate)
			idx = len(unique) - 1
		} else if betterThan(candidate, unique[idx]) {
			// The loser is discarded entirely; its URL is not kept as a
			// secondary link.
			unique[idx] = candidate
		}

		if candidate.normalizedTitle != "" {
			titleIndex[candidate.normalizedTitle] = idx
		}
		if candidate.url != "" {
			urlIndex[candidate.url] = idx
		}
	}

	return unique
}

// betterThan decides which of two colliding records represents the
// story: strictly higher source quality wins; on equal quality the
// later published time wins.
func betterThan(candidate, existing record) bool {
	if candidate.sourceQuality != existing.sourceQuality {
		return candidate.sourceQuality > existing.sourceQuality
	}
	return candidate.publishedTime.After(existing.publishedTime)
}
