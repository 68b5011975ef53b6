// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubtrends/pkg/types"
)

func TestWriteAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubtrends.db")

	papers := []types.Paper{
		{
			ID: "https://openalex.org/W1", Title: "Hub Study", Year: 2021,
			CitationCount: 9, OpenAccess: true,
			Authors:    []types.Author{{Name: "A. One"}, {Name: "B. Two"}},
			SearchTerm: "energy hub", Category: types.CategoryCore, Strategy: types.StrategyTitle,
		},
		{
			ID: "https://openalex.org/W2", Title: "Adjacent", Year: 2022,
			SearchTerm: "multi-energy system", Category: types.CategoryRelated, Strategy: types.StrategyAbstract,
		},
	}
	summary := []types.AnnualSummary{
		{Year: 2021, CorePapers: 1, TotalPapers: 1, CoreCitations: 9, TotalCitations: 9,
			CoreAvgCitations: 9, TotalAvgCitations: 9, CoreOpenAccess: 1, TotalOpenAccess: 1,
			CoreOAPercent: 100, TotalOAPercent: 100},
		{Year: 2022, RelatedPapers: 1, TotalPapers: 1, GrowthPercent: 0},
	}

	require.NoError(t, Write(path, papers, summary))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM papers").Scan(&n))
	assert.Equal(t, 2, n)

	var authors string
	var oa int
	require.NoError(t, db.QueryRow(
		"SELECT authors, open_access FROM papers WHERE openalex_id = ?",
		"https://openalex.org/W1").Scan(&authors, &oa))
	assert.Equal(t, "A. One; B. Two", authors)
	assert.Equal(t, 1, oa)

	var total int
	var oaPct float64
	require.NoError(t, db.QueryRow(
		"SELECT total_papers, total_oa_percentage FROM annual_summary WHERE year = 2021").Scan(&total, &oaPct))
	assert.Equal(t, 1, total)
	assert.InDelta(t, 100, oaPct, 0.001)
}

func TestWriteReplacesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubtrends.db")
	first := []types.Paper{{ID: "W1", Title: "one", Year: 2020, Category: types.CategoryCore}}
	second := []types.Paper{{ID: "W2", Title: "two", Year: 2021, Category: types.CategoryCore}}

	require.NoError(t, Write(path, first, nil))
	require.NoError(t, Write(path, second, nil))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM papers").Scan(&n))
	assert.Equal(t, 1, n, "a rerun should replace, not append")

	var id string
	require.NoError(t, db.QueryRow("SELECT openalex_id FROM papers").Scan(&id))
	assert.Equal(t, "W2", id)
}

func TestWriteEmptySkips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubtrends.db")
	require.NoError(t, Write(path, nil, nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty collection should not create a database")
}
