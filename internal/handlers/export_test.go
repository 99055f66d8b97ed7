package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExport_CSVDefault(t *testing.T) {
	seedTestData(t, 17, 500)
	app := setupFiberTest(t, http.MethodGet, "/api/export", HandleExport)

	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "stage,count,rate_vs_previous"))
	assert.Contains(t, string(body), "month,target,reach,open,click")
}

func TestHandleExport_XLSX(t *testing.T) {
	seedTestData(t, 17, 500)
	app := setupFiberTest(t, http.MethodGet, "/api/export", HandleExport)

	req := httptest.NewRequest(http.MethodGet, "/api/export?format=xlsx&period=quarter", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// XLSX files are zip archives.
	assert.True(t, strings.HasPrefix(string(body), "PK"))
}

func TestHandleExport_UnknownFormat(t *testing.T) {
	seedTestData(t, 17, 100)
	app := setupFiberTest(t, http.MethodGet, "/api/export", HandleExport)

	resp := doJSON(t, app, http.MethodGet, "/api/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExport_UnknownPeriod(t *testing.T) {
	seedTestData(t, 17, 100)
	app := setupFiberTest(t, http.MethodGet, "/api/export", HandleExport)

	resp := doJSON(t, app, http.MethodGet, "/api/export?period=decade", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
