// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex retrieves bibliographic records from the OpenAlex Works
// API and normalizes them into Paper records.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/pubtrends/pkg/types"
)

// openAlexBase is the OpenAlex Works endpoint. Declared as a var so tests
// can substitute an httptest server.
var openAlexBase = "https://api.openalex.org/works"

const (
	// titlePerPage is the page size for the paginated title strategy
	// (the API maximum).
	titlePerPage = 200

	// abstractPerPage is the page size for the single-page abstract strategy.
	abstractPerPage = 100

	// maxPages is the hard safety cap on pages fetched per query, bounding
	// the title strategy at 2000 raw records.
	maxPages = 10
)

// Client queries the OpenAlex API. The zero value is not usable; set HTTP
// to a (preferably rate-limited) client.
type Client struct {
	HTTP *http.Client

	// Email is sent as the mailto parameter for polite pool access.
	Email string

	// UserAgent is sent as the User-Agent header.
	UserAgent string
}

// FetchResult is one query's contribution to the raw paper set. Papers may
// be non-empty even when the producing call also returned an error: a
// failed page request truncates the result, it does not discard the pages
// already fetched.
type FetchResult struct {
	Papers []types.Paper

	// Truncated reports that the page safety cap ended pagination while
	// the API still advertised more results.
	Truncated bool
}

// getPage issues one request against the Works endpoint and decodes the
// response. A non-2xx status is returned as an error with the body ignored.
func (c *Client) getPage(ctx context.Context, params url.Values) (worksPage, error) {
	reqURL := openAlexBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return worksPage{}, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return worksPage{}, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return worksPage{}, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var page worksPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return worksPage{}, fmt.Errorf("parsing OpenAlex response: %w", err)
	}
	return page, nil
}

// OpenAlex API JSON structures. Nested blocks that may be absent decode
// through pointers so a missing level reads as nil rather than a zero
// struct with misleading contents.
type worksPage struct {
	Meta    worksMeta `json:"meta"`
	Results []work    `json:"results"`
}

type worksMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type work struct {
	ID              string           `json:"id"`
	DisplayName     string           `json:"display_name"`
	DOI             string           `json:"doi"`
	PublicationYear int              `json:"publication_year"`
	CitedByCount    int              `json:"cited_by_count"`
	OpenAccess      openAccess       `json:"open_access"`
	PrimaryLocation *primaryLocation `json:"primary_location"`
	Authorships     []authorship     `json:"authorships"`
}

type openAccess struct {
	IsOA     bool   `json:"is_oa"`
	OAStatus string `json:"oa_status"`
}

type primaryLocation struct {
	Source *locationSource `json:"source"`
}

type locationSource struct {
	DisplayName string `json:"display_name"`
}

type authorship struct {
	Author workAuthor `json:"author"`
}

type workAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	ORCID       string `json:"orcid"`
}
