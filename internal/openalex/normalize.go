// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import "github.com/pdiddy/pubtrends/pkg/types"

// maxAuthors caps the author list at the first entries in source order.
const maxAuthors = 10

// normalizeWork maps one raw work into a Paper tagged with the query that
// produced it. Every extraction is defensive: a missing nested field yields
// a zero value, never a failure. The second return is false when the work's
// year is absent or outside [startYear, endYear]; such records are dropped.
func normalizeWork(w work, term string, category types.Category, strategy types.Strategy, startYear, endYear int) (types.Paper, bool) {
	if w.PublicationYear == 0 || w.PublicationYear < startYear || w.PublicationYear > endYear {
		return types.Paper{}, false
	}

	p := types.Paper{
		ID:            w.ID,
		Title:         w.DisplayName,
		Year:          w.PublicationYear,
		DOI:           w.DOI,
		CitationCount: w.CitedByCount,
		OpenAccess:    w.OpenAccess.IsOA,
		Venue:         venueName(w),
		SearchTerm:    term,
		Category:      category,
		Strategy:      strategy,
	}

	for _, a := range w.Authorships {
		if len(p.Authors) >= maxAuthors {
			break
		}
		if a.Author.DisplayName == "" {
			continue
		}
		p.Authors = append(p.Authors, types.Author{
			Name:  a.Author.DisplayName,
			ORCID: a.Author.ORCID,
		})
	}

	return p, true
}

// venueName reads the venue display name through the two optional nesting
// levels (primary_location, then source), defaulting to "" when either is
// absent.
func venueName(w work) string {
	if w.PrimaryLocation == nil || w.PrimaryLocation.Source == nil {
		return ""
	}
	return w.PrimaryLocation.Source.DisplayName
}
