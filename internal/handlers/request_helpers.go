package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/campanalytics/funnelboard/internal/dataset"
	"github.com/campanalytics/funnelboard/internal/funnel"
)

// Data is the session dataset store shared by all handlers. The CLI sets it
// before registering routes; tests swap in their own store.
var Data *dataset.Store

// parseSelection builds the funnel filter from the brand/campaign/region/
// specialty query parameters. An absent parameter means "all values" (the
// dashboard default); a present parameter is an exact comma-separated set,
// so an explicitly empty value is an empty set and matches nothing.
func parseSelection(c fiber.Ctx) funnel.Selection {
	return funnel.NewSelection(
		querySet(c, "brand", funnel.Brands),
		querySet(c, "campaign", funnel.Campaigns()),
		querySet(c, "region", funnel.Regions),
		querySet(c, "specialty", funnel.Specialties),
	)
}

func querySet(c fiber.Ctx, key string, universe []string) []string {
	if !c.RequestCtx().QueryArgs().Has(key) {
		return universe
	}

	parts := strings.Split(c.Query(key), ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// filteredEvents applies the request's selection to the current dataset.
func filteredEvents(c fiber.Ctx) (*dataset.Dataset, []funnel.Event) {
	ds := Data.Current()
	return ds, funnel.Filter(ds.Events, parseSelection(c))
}
