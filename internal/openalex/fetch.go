// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pdiddy/pubtrends/pkg/types"
)

// SearchTitle runs the paginated title-field strategy for one search term.
// The page-level filter spans cfg.TitleYearStart–TitleYearEnd sorted by
// publication date descending; each record is then narrowed to the target
// window during normalization. Pagination stops on an empty page, when the
// API-reported total is exhausted, or at the page safety cap.
//
// A transport failure or non-success status ends pagination immediately:
// the pages already fetched are returned alongside the error, and the
// caller decides whether to carry on with other queries.
func (c *Client) SearchTitle(ctx context.Context, term string, category types.Category, cfg types.CollectConfig) (FetchResult, error) {
	filter := fmt.Sprintf("publication_year:%d-%d,title.search:%s",
		cfg.TitleYearStart, cfg.TitleYearEnd, term)

	params := url.Values{
		"filter":   {filter},
		"per-page": {fmt.Sprintf("%d", titlePerPage)},
		"sort":     {"publication_date:desc"},
	}
	if c.Email != "" {
		params.Set("mailto", c.Email)
	}

	var out FetchResult
	for page := 1; ; page++ {
		params.Set("page", fmt.Sprintf("%d", page))

		pg, err := c.getPage(ctx, params)
		if err != nil {
			return out, fmt.Errorf("title search %q page %d: %w", term, page, err)
		}
		if len(pg.Results) == 0 {
			break
		}

		for _, w := range pg.Results {
			if p, ok := normalizeWork(w, term, category, types.StrategyTitle, cfg.TargetYearStart, cfg.TargetYearEnd); ok {
				out.Papers = append(out.Papers, p)
			}
		}

		pagesNeeded := (pg.Meta.Count + titlePerPage - 1) / titlePerPage
		if page >= pagesNeeded {
			break
		}
		if page >= maxPages {
			out.Truncated = true
			break
		}
	}

	return out, nil
}

// SearchAbstract runs the single-page abstract-field strategy for one
// search term. The filter spans the target window directly and results are
// sorted by citation count descending so the highest-impact records land
// in the single page.
func (c *Client) SearchAbstract(ctx context.Context, term string, category types.Category, cfg types.CollectConfig) (FetchResult, error) {
	filter := fmt.Sprintf("publication_year:%d-%d,abstract.search:%s",
		cfg.TargetYearStart, cfg.TargetYearEnd, term)

	params := url.Values{
		"filter":   {filter},
		"per-page": {fmt.Sprintf("%d", abstractPerPage)},
		"sort":     {"cited_by_count:desc"},
	}
	if c.Email != "" {
		params.Set("mailto", c.Email)
	}

	var out FetchResult
	pg, err := c.getPage(ctx, params)
	if err != nil {
		return out, fmt.Errorf("abstract search %q: %w", term, err)
	}

	for _, w := range pg.Results {
		if p, ok := normalizeWork(w, term, category, types.StrategyAbstract, cfg.TargetYearStart, cfg.TargetYearEnd); ok {
			out.Papers = append(out.Papers, p)
		}
	}

	return out, nil
}
