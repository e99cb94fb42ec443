package experiment

import (
	"fmt"
	"strconv"
	"time"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/status"
	"lab-dashboard/internal/view"
)

// Assemble builds the detail page for the experiment with the given id. It
// reports false when no such experiment exists.
func Assemble(id string, repo core.Repository) (view.DetailConfig[Section], bool) {
	e, ok := repo.Experiment(id)
	if !ok {
		return view.DetailConfig[Section]{}, false
	}
	asOf := repo.AsOf()
	project, _ := repo.Project(e.ProjectID)
	badge := status.Experiment(e.Status)
	protocol := protocolSection(e.Protocol)

	return view.DetailConfig[Section]{
		Header: view.Header{
			Title:    e.Title,
			Subtitle: e.ID + " · " + project.Name,
			Icon:     "flask",
			Badge:    &badge,
			Breadcrumbs: []view.Crumb{
				{Label: "Experiments", Href: "/experiments"},
				{Label: e.ID},
			},
		},
		KPIs: []view.KPI{
			{Label: "Researcher", Value: e.Researcher},
			{Label: "Started", Value: core.Date(e.StartDate), Hint: duration(e, asOf)},
			{Label: "Protocol", Value: protocol.ProgressLabel, Hint: core.Percent(float64(protocol.Progress)/100) + " done"},
			{Label: "Results", Value: core.Count(len(e.Results))},
			{Label: "Samples", Value: core.Count(len(e.Samples))},
		},
		Actions: []view.Action{
			{Label: "All experiments", Href: "/experiments"},
			{Label: "Research projects", Href: "/research?tab=projects"},
			{Label: "Export JSON", Href: "/api/experiments/" + e.ID, Primary: true},
		},
		Main: []Section{
			HypothesisSection{Hypothesis: e.Hypothesis, Objective: e.Objective},
			protocol,
			resultsSection(e.Results),
			samplesSection(e.Samples),
			NotesSection{Notes: append([]string(nil), e.Notes...)},
		},
		Sidebar: []Section{
			teamSection(e.Team),
			equipmentUsed(e.EquipmentIDs, repo),
		},
	}, true
}

func duration(e core.Experiment, asOf time.Time) string {
	switch {
	case e.StartDate.After(asOf):
		return "starts " + core.Days(asOf, e.StartDate)
	case e.EndDate != nil:
		return fmt.Sprintf("ran %d days", core.DaysBetween(e.StartDate, *e.EndDate))
	default:
		return fmt.Sprintf("%d days so far", core.DaysBetween(e.StartDate, asOf))
	}
}

func protocolSection(steps []core.ProtocolStep) ProtocolSection {
	out := make([]Step, len(steps))
	done := 0
	for i, s := range steps {
		if s.Done {
			done++
		}
		out[i] = Step{Number: i + 1, Title: s.Title, Detail: s.Detail, Duration: s.Duration, Done: s.Done}
	}
	progress := 0
	if len(steps) > 0 {
		progress = (done*100 + len(steps)/2) / len(steps)
	}
	return ProtocolSection{
		Steps:         out,
		Progress:      progress,
		ProgressLabel: fmt.Sprintf("%d of %d steps", done, len(steps)),
	}
}

func resultsSection(obs []core.Observation) ResultsSection {
	out := make([]Result, len(obs))
	for i, o := range obs {
		out[i] = Result{Metric: o.Metric, Value: measurement(o.Value, o.Unit), Note: o.Note}
	}
	return ResultsSection{Results: out}
}

func measurement(v float64, unit string) string {
	n := strconv.FormatFloat(v, 'f', -1, 64)
	switch unit {
	case "":
		return n
	case "%":
		return n + "%"
	default:
		return n + " " + unit
	}
}

func samplesSection(samples []core.Sample) SamplesSection {
	rows := make([]SampleRow, len(samples))
	for i, s := range samples {
		rows[i] = SampleRow{Code: s.Code, Type: s.Type, Quantity: s.Quantity, Storage: s.Storage, Collected: core.Date(s.Collected)}
	}
	return SamplesSection{Rows: rows}
}

func teamSection(team []core.Member) TeamSection {
	out := make([]TeamMember, len(team))
	for i, m := range team {
		out[i] = TeamMember{Name: m.Name, Role: m.Role}
	}
	return TeamSection{Members: out}
}

// equipmentUsed keeps ids the snapshot does not know, marked as unknown.
func equipmentUsed(ids []string, repo core.Repository) EquipmentUsedSection {
	out := make([]Instrument, len(ids))
	for i, id := range ids {
		eq, ok := repo.Equipment(id)
		if !ok {
			out[i] = Instrument{ID: id, Name: id, Status: view.Badge{Text: "Unknown", Tone: view.ToneNeutral}}
			continue
		}
		out[i] = Instrument{
			ID:       eq.ID,
			Name:     eq.Name,
			Href:     "/equipment/" + eq.ID,
			Location: eq.Location,
			Status:   status.Equipment(eq.Status),
		}
	}
	return EquipmentUsedSection{Instruments: out}
}
