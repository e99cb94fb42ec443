package research

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/status"
	"lab-dashboard/internal/view"
)

// Tab ids.
const (
	TabOverview     = "overview"
	TabProjects     = "projects"
	TabExperiments  = "experiments"
	TabPublications = "publications"
	TabEquipment    = "equipment"
)

const (
	trendMonths = 6
	feedLength  = 8
)

// Assemble builds the research dashboard from repo.
func Assemble(repo core.Repository) view.DashboardConfig[Widget] {
	asOf := repo.AsOf()
	projects := projectNames(repo)
	progress := projectProgress(repo)
	utilization := equipmentUtilization(repo)

	return view.DashboardConfig[Widget]{
		Header: view.Header{
			Title:    "Research",
			Subtitle: "Projects, experiments and instruments as of " + core.Date(asOf),
			Icon:     "flask",
			Breadcrumbs: []view.Crumb{
				{Label: "Dashboards"},
				{Label: "Research"},
			},
		},
		Global: []Widget{stats(repo)},
		Tabs: []view.Tab[Widget]{
			{
				ID:    TabOverview,
				Label: "Overview",
				Variants: []Widget{
					activityFeed(repo),
					experimentTrend(repo),
					utilization,
					progress,
				},
			},
			{
				ID:       TabProjects,
				Label:    "Projects",
				Variants: []Widget{progress, spendChart(repo)},
			},
			{
				ID:       TabExperiments,
				Label:    "Experiments",
				Variants: []Widget{experimentTable(repo, projects)},
			},
			{
				ID:       TabPublications,
				Label:    "Publications",
				Variants: []Widget{publications(repo)},
			},
			{
				ID:       TabEquipment,
				Label:    "Equipment",
				Variants: []Widget{utilization},
			},
		},
	}
}

func projectNames(repo core.Repository) map[string]string {
	m := make(map[string]string)
	for _, p := range repo.Projects() {
		m[p.ID] = p.Name
	}
	return m
}

func stats(repo core.Repository) StatsWidget {
	active := 0
	for _, p := range repo.Projects() {
		if p.Status == "active" {
			active++
		}
	}
	running, completed, failed := 0, 0, 0
	for _, e := range repo.Experiments() {
		switch e.Status {
		case core.ExperimentRunning:
			running++
		case core.ExperimentCompleted:
			completed++
		case core.ExperimentFailed:
			failed++
		}
	}
	success := 0.0
	if completed+failed > 0 {
		success = float64(completed) / float64(completed+failed)
	}
	published := 0
	for _, p := range repo.Publications() {
		if p.Status == "published" {
			published++
		}
	}
	equipment := repo.AllEquipment()
	operational := 0
	for _, e := range equipment {
		if e.Status == core.EquipmentOperational {
			operational++
		}
	}
	opShare := 0.0
	if len(equipment) > 0 {
		opShare = float64(operational) / float64(len(equipment))
	}
	return StatsWidget{Stats: []view.KPI{
		{Label: "Active projects", Value: core.Count(active), Hint: core.Count(len(repo.Projects())) + " total", Tone: view.ToneInfo},
		{Label: "Running experiments", Value: core.Count(running)},
		{Label: "Success rate", Value: core.Percent(success), Hint: fmt.Sprintf("%d of %d concluded", completed, completed+failed), Tone: view.ToneGood},
		{Label: "Publications", Value: core.Count(len(repo.Publications())), Hint: core.Count(published) + " published"},
		{Label: "Equipment operational", Value: core.Percent(opShare), Hint: fmt.Sprintf("%d of %d instruments", operational, len(equipment))},
	}}
}

func experimentTrend(repo core.Repository) LineChartWidget {
	asOf := repo.AsOf()
	first := core.MonthStart(asOf).AddDate(0, -(trendMonths - 1), 0)
	counts := make([]int, trendMonths)
	for _, e := range repo.Experiments() {
		if e.StartDate.After(asOf) {
			continue
		}
		i := core.MonthsBetween(first, e.StartDate)
		if i >= 0 && i < trendMonths {
			counts[i]++
		}
	}
	data := make([]view.Datum, trendMonths)
	total := 0
	for i, n := range counts {
		total += n
		data[i] = view.Datum{Label: core.MonthLabel(first.AddDate(0, i, 0)), Value: float64(n), Display: core.Count(n)}
	}
	return LineChartWidget{
		Title:   "Experiments started",
		Icon:    "chart-line",
		Data:    data,
		Caption: fmt.Sprintf("%d started in the last %d months", total, trendMonths),
	}
}

func spendChart(repo core.Repository) BarChartWidget {
	var total decimal.Decimal
	data := make([]view.Datum, 0, len(repo.Projects()))
	for _, p := range repo.Projects() {
		f, _ := p.Spent.Float64()
		data = append(data, view.Datum{Label: p.Name, Value: f, Display: core.CompactMoney(p.Spent)})
		total = total.Add(p.Spent)
	}
	return BarChartWidget{Title: "Spend by project", Icon: "chart-bar", Data: data, Total: core.Money(total)}
}

func projectProgress(repo core.Repository) ProjectProgressWidget {
	type tally struct{ all, done int }
	tallies := make(map[string]tally)
	for _, e := range repo.Experiments() {
		t := tallies[e.ProjectID]
		t.all++
		if e.Status == core.ExperimentCompleted || e.Status == core.ExperimentFailed {
			t.done++
		}
		tallies[e.ProjectID] = t
	}
	rows := make([]ProjectRow, 0, len(repo.Projects()))
	for _, p := range repo.Projects() {
		burn := core.Ratio(p.Spent, p.Budget)
		t := tallies[p.ID]
		rows = append(rows, ProjectRow{
			ID:            p.ID,
			Name:          p.Name,
			Lead:          p.Lead,
			Status:        status.Project(p.Status),
			Budget:        core.Money(p.Budget),
			Spent:         core.Money(p.Spent),
			Progress:      int(burn*100 + 0.5),
			ProgressLabel: core.Percent(burn) + " of budget",
			Experiments:   fmt.Sprintf("%d of %d concluded", t.done, t.all),
		})
	}
	return ProjectProgressWidget{Title: "Project progress", Projects: rows}
}

func experimentTable(repo core.Repository, projects map[string]string) ExperimentTableWidget {
	exps := slices.Clone(repo.Experiments())
	slices.SortStableFunc(exps, func(a, b core.Experiment) int { return b.StartDate.Compare(a.StartDate) })
	rows := make([]ExperimentRow, len(exps))
	for i, e := range exps {
		rows[i] = ExperimentRow{
			ID:         e.ID,
			Title:      e.Title,
			Href:       "/experiments/" + e.ID,
			Project:    projects[e.ProjectID],
			Researcher: e.Researcher,
			Started:    core.Date(e.StartDate),
			Status:     status.Experiment(e.Status),
		}
	}
	return ExperimentTableWidget{Title: "Experiments", Rows: rows}
}

func publications(repo core.Repository) PublicationsWidget {
	pubs := slices.Clone(repo.Publications())
	slices.SortStableFunc(pubs, func(a, b core.Publication) int { return b.Date.Compare(a.Date) })
	items := make([]PublicationRow, len(pubs))
	for i, p := range pubs {
		items[i] = PublicationRow{
			Title:     p.Title,
			Journal:   p.Journal,
			Date:      core.Date(p.Date),
			Authors:   strings.Join(p.Authors, ", "),
			Citations: core.Count(p.Citations),
			Status:    status.Publication(p.Status),
		}
	}
	return PublicationsWidget{Title: "Publications", Items: items}
}

// equipmentUtilization ranks instruments in service by logged hours over the
// trend window relative to their capacity for that window.
func equipmentUtilization(repo core.Repository) EquipmentUtilizationWidget {
	asOf := repo.AsOf()
	first := core.MonthStart(asOf).AddDate(0, -(trendMonths - 1), 0)
	type usage struct {
		eq    core.Equipment
		hours float64
		ratio float64
	}
	var all []usage
	for _, e := range repo.AllEquipment() {
		if e.Status == core.EquipmentRetired {
			continue
		}
		u := usage{eq: e}
		for _, m := range e.Usage {
			if !m.Month.Before(first) && !m.Month.After(asOf) {
				u.hours += m.Hours
			}
		}
		if e.MonthlyCapacity > 0 {
			u.ratio = u.hours / (e.MonthlyCapacity * trendMonths)
		}
		all = append(all, u)
	}
	slices.SortStableFunc(all, func(a, b usage) int {
		if c := cmp.Compare(b.ratio, a.ratio); c != 0 {
			return c
		}
		return cmp.Compare(a.eq.Name, b.eq.Name)
	})
	items := make([]UtilizationRow, len(all))
	for i, u := range all {
		items[i] = UtilizationRow{
			Name:        u.eq.Name,
			Href:        "/equipment/" + u.eq.ID,
			Hours:       core.Hours(u.hours),
			Utilization: int(u.ratio*100 + 0.5),
			Label:       core.Percent(u.ratio) + " of capacity",
			Status:      status.Equipment(u.eq.Status),
		}
	}
	return EquipmentUtilizationWidget{Title: "Equipment utilization", Items: items}
}

type event struct {
	at time.Time
	Activity
}

// activityFeed merges experiment, maintenance and publication events up to
// the reference date, newest first.
func activityFeed(repo core.Repository) ActivityFeedWidget {
	asOf := repo.AsOf()
	var events []event
	add := func(at time.Time, icon, text, href string) {
		if at.IsZero() || at.After(asOf) {
			return
		}
		events = append(events, event{at: at, Activity: Activity{
			Date: core.Date(at),
			When: core.Days(asOf, at),
			Icon: icon,
			Text: text,
			Href: href,
		}})
	}
	for _, e := range repo.Experiments() {
		href := "/experiments/" + e.ID
		add(e.StartDate, "play", "Started "+e.Title, href)
		if e.EndDate != nil {
			verb := "Completed "
			if e.Status == core.ExperimentFailed {
				verb = "Failed "
			}
			add(*e.EndDate, "flag", verb+e.Title, href)
		}
	}
	for _, eq := range repo.AllEquipment() {
		for _, m := range eq.Maintenance {
			add(m.Date, "wrench", core.Label(m.Type)+" of "+eq.Name, "/equipment/"+eq.ID)
		}
	}
	for _, p := range repo.Publications() {
		add(p.Date, "book", core.Label(p.Status)+": "+p.Title, "")
	}
	slices.SortStableFunc(events, func(a, b event) int { return b.at.Compare(a.at) })
	if len(events) > feedLength {
		events = events[:feedLength]
	}
	out := make([]Activity, len(events))
	for i, e := range events {
		out[i] = e.Activity
	}
	return ActivityFeedWidget{Title: "Recent activity", Events: out}
}
