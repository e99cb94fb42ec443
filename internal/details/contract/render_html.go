package contract

import (
	"github.com/a-h/templ"

	"lab-dashboard/internal/ui"
)

// HTML renders contract sections as templ components.
var HTML = mustRegistry("contract-section/html", Renderers[templ.Component]{
	overviewHTML,
	milestonesHTML,
	paymentsHTML,
	timelineHTML,
	clientInfoHTML,
	documentsHTML,
})

func overviewHTML(s OverviewSection) templ.Component {
	return ui.Card("Overview", "info", ui.Stack(
		ui.Paragraph(s.Description),
		ui.Fields(s.Fields),
	))
}

func milestonesHTML(s MilestonesSection) templ.Component {
	if len(s.Rows) == 0 {
		return ui.Card("Milestones", "flag", ui.Empty("No milestones defined."))
	}
	rows := make([][]ui.Cell, len(s.Rows))
	for i, m := range s.Rows {
		rows[i] = []ui.Cell{
			{Text: m.Title},
			{Text: m.Deliverable},
			{Text: m.Due},
			{Text: m.Status.Text, Tone: m.Status.Tone},
		}
	}
	return ui.Card("Milestones", "flag", ui.Stack(
		ui.Progress(s.Progress, s.ProgressLabel+" complete"),
		ui.Table([]string{"Milestone", "Deliverable", "Due", "Status"}, rows),
	))
}

func paymentsHTML(s PaymentsSection) templ.Component {
	rows := make([][]ui.Cell, len(s.Rows))
	for i, p := range s.Rows {
		rows[i] = []ui.Cell{
			{Text: p.Reference},
			{Text: p.Amount},
			{Text: p.Due},
			{Text: p.Paid},
			{Text: p.Status.Text, Tone: p.Status.Tone},
		}
	}
	return ui.Card("Payments", "credit-card", ui.Stack(
		ui.Table([]string{"Invoice", "Amount", "Due", "Paid", "Status"}, rows),
		ui.Element("p", "chart-total", ui.Text(s.Paid+" paid, "+s.Outstanding+" outstanding")),
	))
}

func timelineHTML(s TimelineSection) templ.Component {
	items := make([]templ.Component, len(s.Events))
	for i, e := range s.Events {
		class := "timeline-event"
		if e.Past {
			class += " past"
		}
		items[i] = ui.Element("li", class, ui.Stack(
			ui.Element("span", "timeline-date", ui.Text(e.Date)),
			ui.Element("span", "timeline-text", ui.Text(e.Text)),
		))
	}
	return ui.Card("Timeline", "calendar", ui.Element("ol", "timeline", ui.Stack(items...)))
}

func clientInfoHTML(s ClientInfoSection) templ.Component {
	links := make([]templ.Component, len(s.Contract))
	for i, c := range s.Contract {
		links[i] = ui.Element("li", "", ui.Stack(ui.Link(c.Title, c.Href), ui.Badge(c.Status)))
	}
	body := []templ.Component{ui.Element("h4", "", ui.Text(s.Name)), ui.Fields(s.Fields)}
	if len(links) > 0 {
		body = append(body, ui.Element("h5", "", ui.Text("Other contracts")), ui.Element("ul", "link-list", ui.Stack(links...)))
	}
	return ui.Card("Client", "building", ui.Stack(body...))
}

func documentsHTML(s DocumentsSection) templ.Component {
	if len(s.Rows) == 0 {
		return ui.Card("Documents", "paperclip", ui.Empty("No documents attached."))
	}
	rows := make([][]ui.Cell, len(s.Rows))
	for i, d := range s.Rows {
		rows[i] = ui.Plain(d.Name, d.Type, d.Uploaded, d.Size)
	}
	return ui.Card("Documents", "paperclip", ui.Table([]string{"File", "Type", "Uploaded", "Size"}, rows))
}
