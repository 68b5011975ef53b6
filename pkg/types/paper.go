// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubtrends pipeline.
package types

// Category classifies a search term by how directly it matches the topic
// under study. Records collected under a tag outside this enumeration stay
// in the raw set but are excluded from per-category aggregation.
type Category string

const (
	CategoryCore    Category = "core"
	CategoryRelated Category = "related"
)

// Strategy identifies the retrieval method that produced a record. It is
// provenance only and never participates in deduplication.
type Strategy string

const (
	// StrategyTitle is the precise, paginated title-field search.
	StrategyTitle Strategy = "title_search"

	// StrategyAbstract is the broader single-page abstract-field search,
	// ranked by citation count.
	StrategyAbstract Strategy = "abstract_search"
)

// Author is one entry of a paper's author list, in source order.
type Author struct {
	// Name is the author display name.
	Name string `json:"name" yaml:"name"`

	// ORCID is the author's ORCID URL when the source provides one.
	ORCID string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
}

// Paper is a normalized bibliographic record. Papers are immutable after
// normalization: deduplication discards non-unique instances and every
// later stage reads them as-is.
type Paper struct {
	// ID is the opaque source identifier (an OpenAlex work URL). May be
	// empty; dedup then falls back to the normalized title.
	ID string `json:"id" yaml:"id"`

	// Title is the display title.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year. 0 means the source reported no year;
	// aggregation drops such records.
	Year int `json:"year" yaml:"year"`

	// DOI is the DOI URL when present.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Venue is the publication venue display name, empty when the source
	// record lacks a primary location or source block.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// CitationCount is the source-reported citation count (never negative).
	CitationCount int `json:"citation_count" yaml:"citation_count"`

	// OpenAccess reports whether the work is open access.
	OpenAccess bool `json:"open_access" yaml:"open_access"`

	// Authors lists at most the first 10 authors from the source record.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`

	// SearchTerm is the query string that produced this record.
	SearchTerm string `json:"search_term" yaml:"search_term"`

	// Category is the term group the producing query belonged to.
	Category Category `json:"category" yaml:"category"`

	// Strategy records the retrieval method that found this record.
	Strategy Strategy `json:"source_strategy" yaml:"source_strategy"`
}
