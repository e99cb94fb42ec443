package research

import "lab-dashboard/internal/view"

// Region names.
const (
	RegionMain = "main"
	RegionSide = "side"
)

// Layouts arranges the overview tab; every other tab renders in list order.
var Layouts = view.NewLayouts(map[string]view.Strategy[Widget]{
	TabOverview: view.Partition[Kind, Widget](
		view.Slot[Kind]{Name: RegionMain, Kinds: []Kind{KindLineChart, KindProjectProgress}},
		view.Slot[Kind]{Name: RegionSide, Kinds: []Kind{KindActivityFeed, KindEquipmentUtilization}},
	),
})
