package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/campanalytics/funnelboard/internal/logging"
)

var requestValidator = validator.New()

// regenerateRequest carries the optional query overrides for a regeneration.
// The row cap keeps a typo from allocating an absurd in-memory dataset.
type regenerateRequest struct {
	Seed int64 `validate:"-"`
	Rows int   `validate:"gte=0,lte=1000000"`
}

// HandleDatasetInfo describes the active dataset.
func HandleDatasetInfo(c fiber.Ctx) error {
	ds := Data.Current()
	return c.JSON(DatasetInfo{
		ID:          ds.ID.String(),
		Seed:        ds.Seed,
		Rows:        ds.Rows,
		GeneratedAt: ds.GeneratedAt.Format(time.RFC3339),
	})
}

// HandleRegenerate swaps in a freshly generated dataset. seed and rows
// default to the current dataset's values, so a bare POST reproduces the
// same events under a new dataset id.
func HandleRegenerate(c fiber.Ctx) error {
	current := Data.Current()

	req := regenerateRequest{
		Seed: fiber.Query[int64](c, "seed", current.Seed),
		Rows: fiber.Query[int](c, "rows", current.Rows),
	}
	if err := requestValidator.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid regenerate parameters"})
	}

	ds, err := Data.Regenerate(req.Seed, req.Rows, current.Scenario)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	logging.L().Info("dataset regenerated",
		zap.String("dataset_id", ds.ID.String()),
		zap.Int64("seed", ds.Seed),
		zap.Int("rows", ds.Rows))

	return c.JSON(DatasetInfo{
		ID:          ds.ID.String(),
		Seed:        ds.Seed,
		Rows:        ds.Rows,
		GeneratedAt: ds.GeneratedAt.Format(time.RFC3339),
	})
}
