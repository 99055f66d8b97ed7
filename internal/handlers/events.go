package handlers

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// HandleEvents returns a sorted, paginated page of the filtered raw rows for
// the detail table.
func HandleEvents(c fiber.Ctx) error {
	pagination := ParsePaginationParamsWithValidation(c, "events")

	_, events := filteredEvents(c)

	// Filter already returned a fresh slice, so sorting in place is safe.
	sort.SliceStable(events, func(i, j int) bool {
		var cmp int
		if pagination.SortBy == "hcp_id" {
			cmp = strings.Compare(events[i].HCPID, events[j].HCPID)
		} else {
			cmp = events[i].EventDate.Compare(events[j].EventDate)
		}
		if pagination.SortOrder == SortAsc {
			return cmp < 0
		}
		return cmp > 0
	})

	return c.JSON(NewPaginatedResponse(pageSlice(events, pagination), pagination, int64(len(events))))
}
