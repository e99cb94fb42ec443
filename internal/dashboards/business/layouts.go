package business

import "lab-dashboard/internal/view"

// Region names.
const (
	RegionMain   = "main"
	RegionSide   = "side"
	RegionCharts = "charts"
	RegionFull   = "full"
)

// Layouts arranges each tab. The clients tab has no strategy and renders in
// list order.
var Layouts = view.NewLayouts(map[string]view.Strategy[Widget]{
	TabOverview: view.Partition[Kind, Widget](
		view.Slot[Kind]{Name: RegionMain, Kinds: []Kind{KindPipeline, KindContractGrid}},
		view.Slot[Kind]{Name: RegionSide, Kinds: []Kind{KindClientRanking, KindQuickLinks}},
	),
	TabFinancials: view.Partition[Kind, Widget](
		view.Slot[Kind]{Name: RegionCharts, Kinds: []Kind{KindBarChart, KindPieChart}},
		view.Slot[Kind]{Name: RegionFull, Kinds: []Kind{KindPayments}},
	),
})
