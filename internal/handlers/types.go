package handlers

import "github.com/campanalytics/funnelboard/internal/funnel"

// DatasetInfo describes the active generated dataset.
type DatasetInfo struct {
	ID          string `json:"id"`
	Seed        int64  `json:"seed"`
	Rows        int    `json:"rows"`
	GeneratedAt string `json:"generated_at"`
}

// FilterOptions lists the selectable values for the dashboard dropdowns.
type FilterOptions struct {
	Brands           []string            `json:"brands"`
	Campaigns        []string            `json:"campaigns"`
	CampaignsByBrand map[string][]string `json:"campaigns_by_brand"`
	Regions          []string            `json:"regions"`
	Specialties      []string            `json:"specialties"`
	Modes            []string            `json:"modes"`
	Periods          []string            `json:"periods"`
}

// FunnelResponse is the KPI payload for the dashboard cards and the
// funnel detail table.
type FunnelResponse struct {
	DatasetID string         `json:"dataset_id"`
	Filtered  int            `json:"filtered_events"`
	Summary   funnel.Summary `json:"summary"`
}

// TrendResponse is the payload for the engagement trend chart.
type TrendResponse struct {
	Period  string                `json:"period"`
	Mode    string                `json:"mode"`
	Buckets []funnel.PeriodCounts `json:"buckets"`
}

// BreakdownRow is one dimension value with its stage counts.
type BreakdownRow struct {
	Name   string             `json:"name"`
	Counts funnel.StageCounts `json:"counts"`
}
