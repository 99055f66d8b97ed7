package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campanalytics/funnelboard/internal/funnel"
)

type breakdownPage struct {
	Data       []BreakdownRow `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

func TestHandleBreakdown_Brand(t *testing.T) {
	ds := seedTestData(t, 17, 2000)
	app := setupFiberTest(t, http.MethodGet, "/api/breakdown/:dimension", HandleBreakdown)

	var got breakdownPage
	resp := doJSON(t, app, http.MethodGet, "/api/breakdown/brand", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, got.Data, 2)
	assert.Equal(t, int64(2), got.Pagination.Total)

	// Default sort is target desc.
	assert.GreaterOrEqual(t, got.Data[0].Counts.Target, got.Data[1].Counts.Target)

	totalTarget := got.Data[0].Counts.Target + got.Data[1].Counts.Target
	summary := funnel.Aggregate(ds.Events, funnel.ModeEvents)
	assert.Equal(t, summary.Counts.Target, totalTarget)
}

func TestHandleBreakdown_SortByNameAsc(t *testing.T) {
	seedTestData(t, 17, 2000)
	app := setupFiberTest(t, http.MethodGet, "/api/breakdown/:dimension", HandleBreakdown)

	var got breakdownPage
	resp := doJSON(t, app, http.MethodGet, "/api/breakdown/region?sort_by=name&sort_order=asc", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, got.Data, 4)
	assert.Equal(t, "E", got.Data[0].Name)
	assert.Equal(t, "W", got.Data[3].Name)
}

func TestHandleBreakdown_SpecialtyPagination(t *testing.T) {
	seedTestData(t, 17, 2000)
	app := setupFiberTest(t, http.MethodGet, "/api/breakdown/:dimension", HandleBreakdown)

	var got breakdownPage
	resp := doJSON(t, app, http.MethodGet, "/api/breakdown/specialty?per=4&page=2", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Len(t, got.Data, 2, "six specialties, page 2 of 4 holds the remainder")
	assert.Equal(t, int64(6), got.Pagination.Total)
	assert.Equal(t, 2, got.Pagination.TotalPages)
	assert.False(t, got.Pagination.HasMore)
}

func TestHandleBreakdown_CampaignRespectsFilters(t *testing.T) {
	seedTestData(t, 17, 2000)
	app := setupFiberTest(t, http.MethodGet, "/api/breakdown/:dimension", HandleBreakdown)

	var got breakdownPage
	resp := doJSON(t, app, http.MethodGet, "/api/breakdown/campaign?brand=Brand+B", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, got.Data, 2)
	names := []string{got.Data[0].Name, got.Data[1].Name}
	assert.ElementsMatch(t, []string{"Retention", "New Launch"}, names)
}

func TestHandleBreakdown_UnknownDimension(t *testing.T) {
	seedTestData(t, 17, 100)
	app := setupFiberTest(t, http.MethodGet, "/api/breakdown/:dimension", HandleBreakdown)

	resp := doJSON(t, app, http.MethodGet, "/api/breakdown/browser", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
