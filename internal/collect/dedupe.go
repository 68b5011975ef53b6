// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"strings"

	"github.com/pdiddy/pubtrends/pkg/types"
)

// Deduplicate collapses the concatenated paper sequence to unique papers in
// a single left-to-right pass; the first occurrence always wins and output
// order preserves input order. Identity is the source identifier when
// present: two records sharing a non-empty id merge even when their titles
// differ, and keeping a record by id also claims its normalized title so a
// later id-less record with the same title is treated as a duplicate.
// Records without an id dedup purely by normalized title, regardless of
// year or any other field. Returns the unique set and the number removed.
func Deduplicate(papers []types.Paper) ([]types.Paper, int) {
	seenIDs := make(map[string]bool)
	seenTitles := make(map[string]bool)

	var unique []types.Paper
	for _, p := range papers {
		title := normalizeTitle(p.Title)

		if p.ID != "" {
			if seenIDs[p.ID] {
				continue
			}
			seenIDs[p.ID] = true
			if title != "" {
				seenTitles[title] = true
			}
			unique = append(unique, p)
			continue
		}

		if title == "" || seenTitles[title] {
			continue
		}
		seenTitles[title] = true
		unique = append(unique, p)
	}

	return unique, len(papers) - len(unique)
}

// normalizeTitle returns the lowercased, whitespace-trimmed title used as
// the fallback dedup key.
func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
