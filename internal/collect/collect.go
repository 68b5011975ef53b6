// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect drives the OpenAlex fetcher across the search-term
// catalog and deduplicates the combined result set.
package collect

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/pubtrends/internal/openalex"
	"github.com/pdiddy/pubtrends/pkg/types"
)

// QueryStat records one catalog query's outcome.
type QueryStat struct {
	Term     string         `json:"term" yaml:"term"`
	Category types.Category `json:"category" yaml:"category"`
	Strategy types.Strategy `json:"strategy" yaml:"strategy"`
	Found    int            `json:"found" yaml:"found"`

	// Truncated reports that the page safety cap cut this query short.
	Truncated bool `json:"truncated,omitempty" yaml:"truncated,omitempty"`

	// Err holds the failure that ended this query early, if any. Partial
	// results counted in Found are kept.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Output holds the deduplicated paper set and collection statistics.
type Output struct {
	// Papers is the unique paper set, first-occurrence order.
	Papers []types.Paper

	// RawCount is the concatenated pre-dedup record count.
	RawCount int

	// DupsRemoved is how many records dedup discarded.
	DupsRemoved int

	// Queries lists per-query statistics in catalog order.
	Queries []QueryStat
}

// Run executes the title strategy over the core and related term groups,
// then the abstract strategy over the abstract term list, sequentially and
// in catalog order, pausing between queries to avoid burst rate-limiting.
// A failed query contributes whatever partial results it produced and a
// warning on w; it never aborts the run. The concatenated set is
// deduplicated before returning, so results are deterministic for a given
// catalog order.
func Run(ctx context.Context, client *openalex.Client, catalog types.TermCatalog, cfg types.CollectConfig, w io.Writer) Output {
	var out Output
	var all []types.Paper

	type query struct {
		term     string
		category types.Category
		strategy types.Strategy
	}

	var queries []query
	for _, term := range catalog.Core {
		queries = append(queries, query{term, types.CategoryCore, types.StrategyTitle})
	}
	for _, term := range catalog.Related {
		queries = append(queries, query{term, types.CategoryRelated, types.StrategyTitle})
	}
	for _, term := range catalog.Abstract {
		queries = append(queries, query{term, types.CategoryRelated, types.StrategyAbstract})
	}

	for i, q := range queries {
		if i > 0 && cfg.InterQueryDelay > 0 {
			select {
			case <-ctx.Done():
				fmt.Fprintf(w, "warning: collection cancelled: %v\n", ctx.Err())
				out.RawCount = len(all)
				out.Papers, out.DupsRemoved = Deduplicate(all)
				return out
			case <-time.After(cfg.InterQueryDelay):
			}
		}

		var res openalex.FetchResult
		var err error
		switch q.strategy {
		case types.StrategyAbstract:
			res, err = client.SearchAbstract(ctx, q.term, q.category, cfg)
		default:
			res, err = client.SearchTitle(ctx, q.term, q.category, cfg)
		}

		stat := QueryStat{
			Term:      q.term,
			Category:  q.category,
			Strategy:  q.strategy,
			Found:     len(res.Papers),
			Truncated: res.Truncated,
		}
		if err != nil {
			stat.Err = err.Error()
			fmt.Fprintf(w, "warning: query %q failed: %v\n", q.term, err)
		} else {
			fmt.Fprintf(w, "%q (%s, %s): %d papers\n", q.term, q.category, q.strategy, len(res.Papers))
		}
		out.Queries = append(out.Queries, stat)
		all = append(all, res.Papers...)
	}

	out.RawCount = len(all)
	out.Papers, out.DupsRemoved = Deduplicate(all)
	return out
}
