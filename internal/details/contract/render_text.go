package contract

import (
	"lab-dashboard/internal/ui"
)

// Text renders contract sections as plain text.
var Text = mustRegistry("contract-section/text", Renderers[string]{
	func(s OverviewSection) string {
		return ui.TextSection("Overview", s.Description+"\n\n"+ui.TextFields(s.Fields))
	},
	func(s MilestonesSection) string {
		rows := make([][]string, len(s.Rows))
		for i, m := range s.Rows {
			rows[i] = []string{m.Title, m.Due, ui.TextBadge(m.Status)}
		}
		return ui.TextSection("Milestones", ui.TextProgress(s.Progress, s.ProgressLabel)+ui.TextTable([]string{"MILESTONE", "DUE", "STATUS"}, rows))
	},
	func(s PaymentsSection) string {
		rows := make([][]string, len(s.Rows))
		for i, p := range s.Rows {
			rows[i] = []string{p.Reference, p.Amount, p.Due, p.Paid, ui.TextBadge(p.Status)}
		}
		return ui.TextSection("Payments", ui.TextTable([]string{"INVOICE", "AMOUNT", "DUE", "PAID", "STATUS"}, rows)+s.Paid+" paid, "+s.Outstanding+" outstanding")
	},
	func(s TimelineSection) string {
		lines := make([]string, len(s.Events))
		for i, e := range s.Events {
			mark := " "
			if e.Past {
				mark = "x"
			}
			lines[i] = "[" + mark + "] " + e.Date + "  " + e.Text
		}
		return ui.TextSection("Timeline", ui.TextList(lines))
	},
	func(s ClientInfoSection) string {
		others := make([]string, len(s.Contract))
		for i, c := range s.Contract {
			others[i] = c.Title + " " + ui.TextBadge(c.Status)
		}
		return ui.TextSection("Client: "+s.Name, ui.TextFields(s.Fields)+"Other contracts:\n"+ui.TextList(others))
	},
	func(s DocumentsSection) string {
		rows := make([][]string, len(s.Rows))
		for i, d := range s.Rows {
			rows[i] = []string{d.Name, d.Type, d.Uploaded, d.Size}
		}
		return ui.TextSection("Documents", ui.TextTable([]string{"FILE", "TYPE", "UPLOADED", "SIZE"}, rows))
	},
})
