package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/campanalytics/funnelboard/internal/dataset"
	"github.com/campanalytics/funnelboard/internal/funnel"
)

// seedTestData points the package-level store at a deterministic dataset and
// restores the previous store when the test finishes.
func seedTestData(t *testing.T, seed int64, rows int) *dataset.Dataset {
	t.Helper()

	store, err := dataset.NewStore(seed, rows, funnel.DefaultScenario())
	require.NoError(t, err)

	original := Data
	Data = store
	t.Cleanup(func() { Data = original })

	return store.Current()
}

func setupFiberTest(t *testing.T, method, route string, handler fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Add([]string{method}, route, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, url string, out any) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, url, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil && resp.StatusCode == http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp
}
