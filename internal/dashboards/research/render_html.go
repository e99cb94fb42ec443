package research

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
)

// HTML renders research widgets as templ components.
var HTML = mustRegistry("research-widget/html", Renderers[templ.Component]{
	statsHTML,
	lineChartHTML,
	barChartHTML,
	projectProgressHTML,
	experimentTableHTML,
	publicationsHTML,
	utilizationHTML,
	activityFeedHTML,
})

func statsHTML(w StatsWidget) templ.Component {
	return ui.KPIStrip(w.Stats)
}

func lineChartHTML(w LineChartWidget) templ.Component {
	return ui.Card(w.Title, w.Icon, ui.Stack(
		ui.LineChart(w.Data),
		ui.Element("p", "chart-total", ui.Text(w.Caption)),
	))
}

func barChartHTML(w BarChartWidget) templ.Component {
	return ui.Card(w.Title, w.Icon, ui.Stack(
		ui.BarChart(w.Data),
		ui.Element("p", "chart-total", ui.Text("Total "+w.Total)),
	))
}

func projectProgressHTML(w ProjectProgressWidget) templ.Component {
	items := make([]templ.Component, len(w.Projects))
	for i, p := range w.Projects {
		items[i] = ui.Element("article", "project", ui.Stack(
			ui.Element("h3", "", ui.Text(p.Name)),
			ui.Badge(p.Status),
			ui.Fields([]view.Field{
				{Label: "Lead", Value: p.Lead},
				{Label: "Budget", Value: p.Budget},
				{Label: "Spent", Value: p.Spent},
				{Label: "Experiments", Value: p.Experiments},
			}),
			ui.Progress(p.Progress, p.ProgressLabel),
		))
	}
	return ui.Card(w.Title, "target", ui.Stack(items...))
}

func experimentTableHTML(w ExperimentTableWidget) templ.Component {
	rows := make([][]ui.Cell, len(w.Rows))
	for i, e := range w.Rows {
		rows[i] = []ui.Cell{
			{Text: e.ID, Href: e.Href},
			{Text: e.Title},
			{Text: e.Project},
			{Text: e.Researcher},
			{Text: e.Started},
			{Text: e.Status.Text, Tone: e.Status.Tone},
		}
	}
	return ui.Card(w.Title, "flask", ui.Table([]string{"ID", "Title", "Project", "Researcher", "Started", "Status"}, rows))
}

func publicationsHTML(w PublicationsWidget) templ.Component {
	rows := make([][]ui.Cell, len(w.Items))
	for i, p := range w.Items {
		rows[i] = []ui.Cell{
			{Text: p.Title},
			{Text: p.Journal},
			{Text: p.Authors},
			{Text: p.Date},
			{Text: p.Citations},
			{Text: p.Status.Text, Tone: p.Status.Tone},
		}
	}
	return ui.Card(w.Title, "book", ui.Table([]string{"Title", "Journal", "Authors", "Date", "Citations", "Status"}, rows))
}

func utilizationHTML(w EquipmentUtilizationWidget) templ.Component {
	items := make([]templ.Component, len(w.Items))
	for i, u := range w.Items {
		items[i] = ui.Element("div", "utilization", ui.Stack(
			ui.Link(u.Name, u.Href),
			ui.Badge(u.Status),
			ui.Element("span", "hours", ui.Text(u.Hours)),
			ui.Progress(u.Utilization, u.Label),
		))
	}
	return ui.Card(w.Title, "cpu", ui.Stack(items...))
}

func activityFeedHTML(w ActivityFeedWidget) templ.Component {
	return ui.Card(w.Title, "activity", templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		if len(w.Events) == 0 {
			_, err := io.WriteString(out, `<p class="empty">No recent activity.</p>`)
			return err
		}
		if _, err := io.WriteString(out, `<ol class="feed">`); err != nil {
			return err
		}
		for _, e := range w.Events {
			text := templ.EscapeString(e.Text)
			if e.Href != "" {
				text = fmt.Sprintf(`<a href="%s">%s</a>`, templ.EscapeString(e.Href), text)
			}
			if _, err := fmt.Fprintf(out, `<li><span class="icon icon-%s"></span>%s <time title="%s">%s</time></li>`,
				templ.EscapeString(e.Icon), text, templ.EscapeString(e.Date), templ.EscapeString(e.When)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(out, `</ol>`)
		return err
	}))
}
