package research

import (
	"fmt"
	"strings"

	"lab-dashboard/internal/ui"
)

// Text renders research widgets as plain text.
var Text = mustRegistry("research-widget/text", Renderers[string]{
	statsText,
	lineChartText,
	barChartText,
	projectProgressText,
	experimentTableText,
	publicationsText,
	utilizationText,
	activityFeedText,
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

func lineChartText(w LineChartWidget) string {
	return ui.TextSection(w.Title, ui.TextBars(w.Data)+w.Caption)
}

func barChartText(w BarChartWidget) string {
	return ui.TextSection(w.Title, ui.TextBars(w.Data)+"Total "+w.Total)
}

func projectProgressText(w ProjectProgressWidget) string {
	rows := make([][]string, len(w.Projects))
	for i, p := range w.Projects {
		rows[i] = []string{p.ID, p.Name, ui.TextBadge(p.Status), p.Spent + " / " + p.Budget, ui.TextProgress(p.Progress, p.ProgressLabel), p.Experiments}
	}
	return ui.TextSection(w.Title, ui.TextTable([]string{"ID", "PROJECT", "STATUS", "SPENT", "BURN", "EXPERIMENTS"}, rows))
}

func experimentTableText(w ExperimentTableWidget) string {
	rows := make([][]string, len(w.Rows))
	for i, e := range w.Rows {
		rows[i] = []string{e.ID, e.Title, e.Project, e.Researcher, e.Started, ui.TextBadge(e.Status)}
	}
	return ui.TextSection(w.Title, ui.TextTable([]string{"ID", "TITLE", "PROJECT", "RESEARCHER", "STARTED", "STATUS"}, rows))
}

func publicationsText(w PublicationsWidget) string {
	rows := make([][]string, len(w.Items))
	for i, p := range w.Items {
		rows[i] = []string{p.Title, p.Journal, p.Date, p.Citations, ui.TextBadge(p.Status)}
	}
	return ui.TextSection(w.Title, ui.TextTable([]string{"TITLE", "JOURNAL", "DATE", "CITATIONS", "STATUS"}, rows))
}

func utilizationText(w EquipmentUtilizationWidget) string {
	rows := make([][]string, len(w.Items))
	for i, u := range w.Items {
		rows[i] = []string{u.Name, ui.TextBadge(u.Status), u.Hours, ui.TextProgress(u.Utilization, u.Label)}
	}
	return ui.TextSection(w.Title, ui.TextTable([]string{"INSTRUMENT", "STATUS", "HOURS", "UTILIZATION"}, rows))
}

func activityFeedText(w ActivityFeedWidget) string {
	items := make([]string, len(w.Events))
	for i, e := range w.Events {
		items[i] = e.Date + " (" + e.When + ")  " + e.Text
	}
	return ui.TextSection(w.Title, ui.TextList(items))
}
