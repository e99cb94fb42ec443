package equipment

import (
	"github.com/a-h/templ"

	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
)

// HTML renders equipment sections as templ components.
var HTML = mustRegistry("equipment-section/html", Renderers[templ.Component]{
	specificationsHTML,
	usageHTML,
	maintenanceHTML,
	linkedExperimentsHTML,
	calibrationHTML,
	warrantyHTML,
	assignmentHTML,
})

func specificationsHTML(s SpecificationsSection) templ.Component {
	fields := append([]view.Field{{Label: "Serial number", Value: s.Serial}}, s.Specs...)
	return ui.Card("Specifications", "list", ui.Fields(fields))
}

func usageHTML(s UsageSection) templ.Component {
	if len(s.Data) == 0 {
		return ui.Card("Usage", "clock", ui.Empty("No usage logged."))
	}
	return ui.Card("Usage", "clock", ui.Stack(
		ui.BarChart(s.Data),
		ui.Element("p", "chart-total", ui.Text(s.Total+" total, "+s.Average+" per month")),
	))
}

func maintenanceHTML(s MaintenanceHistorySection) templ.Component {
	rows := make([][]ui.Cell, len(s.Records))
	for i, r := range s.Records {
		rows[i] = ui.Plain(r.Date, r.Type, r.Technician, r.Description, r.Cost)
	}
	return ui.Card("Maintenance history", "wrench", ui.Stack(
		ui.Table([]string{"Date", "Type", "Technician", "Description", "Cost"}, rows),
		ui.Element("p", "chart-total", ui.Text("Total "+s.TotalCost)),
	))
}

func linkedExperimentsHTML(s LinkedExperimentsSection) templ.Component {
	rows := make([][]ui.Cell, len(s.Experiments))
	for i, e := range s.Experiments {
		rows[i] = []ui.Cell{
			{Text: e.ID, Href: e.Href},
			{Text: e.Title},
			{Text: e.Researcher},
			{Text: e.Status.Text, Tone: e.Status.Tone},
		}
	}
	return ui.Card("Linked experiments", "flask", ui.Table([]string{"ID", "Title", "Researcher", "Status"}, rows))
}

func calibrationHTML(s CalibrationSection) templ.Component {
	return ui.Card("Calibration", "gauge", ui.Stack(
		ui.Badge(s.Status),
		ui.Fields([]view.Field{
			{Label: "Last", Value: s.Last},
			{Label: "Next", Value: s.Next + " (" + s.DueIn + ")"},
			{Label: "Interval", Value: s.Interval},
		}),
	))
}

func warrantyHTML(s WarrantySection) templ.Component {
	return ui.Card("Warranty", "shield", ui.Stack(
		ui.Badge(s.Status),
		ui.Fields([]view.Field{
			{Label: "Purchased", Value: s.Purchased},
			{Label: "Price", Value: s.PurchasePrice},
			{Label: "Expiry", Value: s.Expiry},
			{Label: "Remaining", Value: s.Remaining},
		}),
	))
}

func assignmentHTML(s AssignmentSection) templ.Component {
	return ui.Card("Assignment", "user", ui.Fields([]view.Field{
		{Label: "Assigned to", Value: s.AssignedTo},
		{Label: "Department", Value: s.Department},
		{Label: "Location", Value: s.Location},
		{Label: "Category", Value: s.Category},
	}))
}
