package business

import (
	"fmt"
	"strings"

	"lab-dashboard/internal/ui"
)

// Text renders business widgets as plain text.
var Text = mustRegistry("business-widget/text", Renderers[string]{
	statsText,
	barChartText,
	pieChartText,
	pipelineText,
	contractGridText,
	clientRankingText,
	quickLinksText,
	paymentsText,
})

func statsText(w StatsWidget) string {
	var b strings.Builder
	for _, s := range w.Stats {
		fmt.Fprintf(&b, "%s: %s", s.Label, s.Value)
		if s.Hint != "" {
			fmt.Fprintf(&b, " (%s)", s.Hint)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func barChartText(w BarChartWidget) string {
	return ui.TextSection(w.Title, ui.TextBars(w.Data)+"Total "+w.Total)
}

func pieChartText(w PieChartWidget) string {
	return ui.TextSection(w.Title, ui.TextBars(w.Data))
}

func pipelineText(w PipelineWidget) string {
	rows := make([][]string, len(w.Stages))
	for i, s := range w.Stages {
		rows[i] = []string{s.Label, s.Count, s.Value, fmt.Sprintf("%d%%", s.Share)}
	}
	return ui.TextSection(w.Title, ui.TextTable([]string{"STAGE", "COUNT", "VALUE", "SHARE"}, rows)+"Total "+w.Total)
}

func contractGridText(w ContractGridWidget) string {
	rows := make([][]string, len(w.Contracts))
	for i, c := range w.Contracts {
		rows[i] = []string{c.ID, c.Title, c.Client, c.Value, c.EndDate, ui.TextProgress(c.Progress, c.ProgressLabel)}
	}
	return ui.TextSection(w.Title, ui.TextTable([]string{"ID", "TITLE", "CLIENT", "VALUE", "ENDS", "PAID"}, rows))
}

func clientRankingText(w ClientRankingWidget) string {
	rows := make([][]string, len(w.Clients))
	for i, c := range w.Clients {
		rows[i] = []string{fmt.Sprint(c.Rank), c.Name, c.Industry, c.Contracts, c.Value, c.Share}
	}
	return ui.TextSection(w.Title, ui.TextTable([]string{"#", "CLIENT", "INDUSTRY", "CONTRACTS", "VALUE", "SHARE"}, rows))
}

func quickLinksText(w QuickLinksWidget) string {
	items := make([]string, len(w.Links))
	for i, l := range w.Links {
		items[i] = l.Label + " (" + l.Href + ")"
	}
	return ui.TextSection(w.Title, ui.TextList(items))
}

func paymentsText(w PaymentsWidget) string {
	rows := make([][]string, len(w.Rows))
	for i, p := range w.Rows {
		rows[i] = []string{p.Reference, p.Contract, p.Client, p.Amount, p.Due, ui.TextBadge(p.Status)}
	}
	return ui.TextSection(w.Title,
		ui.TextTable([]string{"REFERENCE", "CONTRACT", "CLIENT", "AMOUNT", "DUE", "STATUS"}, rows)+"Outstanding "+w.Outstanding)
}
