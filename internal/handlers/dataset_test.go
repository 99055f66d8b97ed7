package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleDatasetInfo(t *testing.T) {
	ds := seedTestData(t, 17, 300)
	app := setupFiberTest(t, http.MethodGet, "/api/dataset", HandleDatasetInfo)

	var got DatasetInfo
	resp := doJSON(t, app, http.MethodGet, "/api/dataset", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, ds.ID.String(), got.ID)
	assert.Equal(t, int64(17), got.Seed)
	assert.Equal(t, 300, got.Rows)
	assert.NotEmpty(t, got.GeneratedAt)
}

func TestHandleRegenerate_DefaultsToCurrentParams(t *testing.T) {
	before := seedTestData(t, 17, 300)
	app := setupFiberTest(t, http.MethodPost, "/api/dataset/regenerate", HandleRegenerate)

	var got DatasetInfo
	resp := doJSON(t, app, http.MethodPost, "/api/dataset/regenerate", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NotEqual(t, before.ID.String(), got.ID)
	assert.Equal(t, before.Seed, got.Seed)
	assert.Equal(t, before.Rows, got.Rows)

	// Pure generator: same seed reproduces the same events.
	assert.Equal(t, before.Events, Data.Current().Events)
}

func TestHandleRegenerate_NewSeedAndRows(t *testing.T) {
	seedTestData(t, 17, 300)
	app := setupFiberTest(t, http.MethodPost, "/api/dataset/regenerate", HandleRegenerate)

	var got DatasetInfo
	resp := doJSON(t, app, http.MethodPost, "/api/dataset/regenerate?seed=99&rows=50", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, int64(99), got.Seed)
	assert.Equal(t, 50, got.Rows)
	assert.Len(t, Data.Current().Events, 50)
}

func TestHandleRegenerate_RejectsHugeRowCount(t *testing.T) {
	before := seedTestData(t, 17, 100)
	app := setupFiberTest(t, http.MethodPost, "/api/dataset/regenerate", HandleRegenerate)

	resp := doJSON(t, app, http.MethodPost, "/api/dataset/regenerate?rows=99999999", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, before.ID, Data.Current().ID, "dataset unchanged on rejection")
}

func TestHandleRegenerate_RejectsNegativeRows(t *testing.T) {
	seedTestData(t, 17, 100)
	app := setupFiberTest(t, http.MethodPost, "/api/dataset/regenerate", HandleRegenerate)

	resp := doJSON(t, app, http.MethodPost, "/api/dataset/regenerate?rows=-1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
