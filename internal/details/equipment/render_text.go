package equipment

import (
	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
)

// Text renders equipment sections as plain text.
var Text = mustRegistry("equipment-section/text", Renderers[string]{
	func(s SpecificationsSection) string {
		fields := append([]view.Field{{Label: "Serial number", Value: s.Serial}}, s.Specs...)
		return ui.TextSection("Specifications", ui.TextFields(fields))
	},
	func(s UsageSection) string {
		return ui.TextSection("Usage", ui.TextBars(s.Data)+s.Total+" total, "+s.Average+" per month")
	},
	func(s MaintenanceHistorySection) string {
		rows := make([][]string, len(s.Records))
		for i, r := range s.Records {
			rows[i] = []string{r.Date, r.Type, r.Technician, r.Cost}
		}
		return ui.TextSection("Maintenance history", ui.TextTable([]string{"DATE", "TYPE", "TECHNICIAN", "COST"}, rows)+"Total "+s.TotalCost)
	},
	func(s LinkedExperimentsSection) string {
		rows := make([][]string, len(s.Experiments))
		for i, e := range s.Experiments {
			rows[i] = []string{e.ID, e.Title, e.Researcher, ui.TextBadge(e.Status)}
		}
		return ui.TextSection("Linked experiments", ui.TextTable([]string{"ID", "TITLE", "RESEARCHER", "STATUS"}, rows))
	},
	func(s CalibrationSection) string {
		return ui.TextSection("Calibration "+ui.TextBadge(s.Status), ui.TextFields([]view.Field{
			{Label: "Last", Value: s.Last},
			{Label: "Next", Value: s.Next + " (" + s.DueIn + ")"},
			{Label: "Interval", Value: s.Interval},
		}))
	},
	func(s WarrantySection) string {
		return ui.TextSection("Warranty "+ui.TextBadge(s.Status), ui.TextFields([]view.Field{
			{Label: "Purchased", Value: s.Purchased + " for " + s.PurchasePrice},
			{Label: "Expiry", Value: s.Expiry + " (" + s.Remaining + ")"},
		}))
	},
	func(s AssignmentSection) string {
		return ui.TextSection("Assignment", ui.TextFields([]view.Field{
			{Label: "Assigned to", Value: s.AssignedTo},
			{Label: "Department", Value: s.Department},
			{Label: "Location", Value: s.Location},
		}))
	},
})
