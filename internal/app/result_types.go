package app

import (
	"lab-dashboard/internal/dashboards/business"
	"lab-dashboard/internal/dashboards/research"
	"lab-dashboard/internal/details/contract"
	"lab-dashboard/internal/details/equipment"
	"lab-dashboard/internal/details/experiment"
	"lab-dashboard/internal/view"
)

// Page configurations produced by the detail roots.
type (
	EquipmentPage  = view.DetailConfig[equipment.Section]
	ContractPage   = view.DetailConfig[contract.Section]
	ExperimentPage = view.DetailConfig[experiment.Section]
)

// DashboardResult is a validated dashboard with one tab selected and
// arranged into regions.
type DashboardResult[W any] struct {
	Config  view.DashboardConfig[W]
	Tab     view.Tab[W]
	Regions []view.Region[W]
}

// BusinessResult is returned by BusinessDashboard.
type BusinessResult = DashboardResult[business.Widget]

// ResearchResult is returned by ResearchDashboard.
type ResearchResult = DashboardResult[research.Widget]

// DetailResult is the state a detail page settled in. State.Phase is Loading
// when the lookup did not finish within the configured timeout.
type DetailResult[C any] struct {
	Entity Entity
	State  view.State[C]
}

// ListingRow is one record of a listing page.
type ListingRow struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Status   view.Badge `json:"status"`
	Href     string     `json:"href"`
}

// ListingResult is returned by List.
type ListingResult struct {
	Entity Entity       `json:"entity"`
	Rows   []ListingRow `json:"rows"`
}
