package business

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
)

// HTML renders business widgets as templ components.
var HTML = mustRegistry("business-widget/html", Renderers[templ.Component]{
	statsHTML,
	barChartHTML,
	pieChartHTML,
	pipelineHTML,
	contractGridHTML,
	clientRankingHTML,
	quickLinksHTML,
	paymentsHTML,
})

func statsHTML(w StatsWidget) templ.Component {
	return ui.KPIStrip(w.Stats)
}

func barChartHTML(w BarChartWidget) templ.Component {
	return ui.Card(w.Title, w.Icon, ui.Stack(
		ui.BarChart(w.Data),
		ui.Element("p", "chart-total", ui.Text("Total "+w.Total)),
	))
}

func pieChartHTML(w PieChartWidget) templ.Component {
	return ui.Card(w.Title, w.Icon, ui.PieChart(w.Data))
}

func pipelineHTML(w PipelineWidget) templ.Component {
	items := make([]templ.Component, len(w.Stages))
	for i, s := range w.Stages {
		items[i] = ui.Element("div", "pipeline-stage pipeline-"+s.Stage, ui.Stack(
			ui.Element("span", "stage-label", ui.Text(s.Label)),
			ui.Element("span", "stage-count", ui.Text(s.Count)),
			ui.Element("span", "stage-value", ui.Text(s.Value)),
			ui.Progress(s.Share, fmt.Sprintf("%d%%", s.Share)),
		))
	}
	return ui.Card(w.Title, "funnel", ui.Stack(
		ui.Grid(len(w.Stages), items...),
		ui.Element("p", "chart-total", ui.Text("Pipeline total "+w.Total)),
	))
}

func contractGridHTML(w ContractGridWidget) templ.Component {
	if len(w.Contracts) == 0 {
		return ui.Card(w.Title, "file-text", ui.Empty("No active contracts."))
	}
	cards := make([]templ.Component, len(w.Contracts))
	for i, c := range w.Contracts {
		cards[i] = ui.Element("article", "contract-card", ui.Stack(
			ui.Element("h3", "", ui.Link(c.Title, c.Href)),
			ui.Badge(c.Badge),
			ui.Fields([]view.Field{
				{Label: "Client", Value: c.Client},
				{Label: "Value", Value: c.Value},
				{Label: "Ends", Value: c.EndDate},
			}),
			ui.Progress(c.Progress, c.ProgressLabel),
		))
	}
	return ui.Card(w.Title, "file-text", ui.Grid(2, cards...))
}

func clientRankingHTML(w ClientRankingWidget) templ.Component {
	rows := make([][]ui.Cell, len(w.Clients))
	for i, c := range w.Clients {
		rows[i] = ui.Plain(fmt.Sprint(c.Rank), c.Name, c.Industry, c.Contracts, c.Value, c.Share)
	}
	return ui.Card(w.Title, "users", ui.Table([]string{"#", "Client", "Industry", "Contracts", "Value", "Share"}, rows))
}

func quickLinksHTML(w QuickLinksWidget) templ.Component {
	return ui.Card(w.Title, "link", templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		if _, err := io.WriteString(out, `<ul class="quick-links">`); err != nil {
			return err
		}
		for _, l := range w.Links {
			if _, err := fmt.Fprintf(out, `<li><a href="%s"><span class="icon icon-%s"></span><strong>%s</strong><small>%s</small></a></li>`,
				templ.EscapeString(l.Href), templ.EscapeString(l.Icon), templ.EscapeString(l.Label), templ.EscapeString(l.Description)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(out, `</ul>`)
		return err
	}))
}

func paymentsHTML(w PaymentsWidget) templ.Component {
	rows := make([][]ui.Cell, len(w.Rows))
	for i, p := range w.Rows {
		rows[i] = []ui.Cell{
			{Text: p.Reference},
			{Text: p.Contract, Href: p.ContractHref},
			{Text: p.Client},
			{Text: p.Amount},
			{Text: p.Due},
			{Text: p.Status.Text, Tone: p.Status.Tone},
		}
	}
	return ui.Card(w.Title, "dollar", ui.Stack(
		ui.Table([]string{"Reference", "Contract", "Client", "Amount", "Due", "Status"}, rows),
		ui.Element("p", "chart-total", ui.Text("Outstanding "+w.Outstanding)),
	))
}
