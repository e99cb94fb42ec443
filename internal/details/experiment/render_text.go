package experiment

import (
	"strconv"

	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
)

// Text renders experiment sections as plain text.
var Text = mustRegistry("experiment-section/text", Renderers[string]{
	func(s HypothesisSection) string {
		return ui.TextSection("Hypothesis", s.Hypothesis+"\n\nObjective: "+s.Objective)
	},
	func(s ProtocolSection) string {
		rows := make([][]string, len(s.Steps))
		for i, st := range s.Steps {
			mark := " "
			if st.Done {
				mark = "x"
			}
			rows[i] = []string{strconv.Itoa(st.Number), "[" + mark + "]", st.Title, st.Duration}
		}
		return ui.TextSection("Protocol", ui.TextProgress(s.Progress, s.ProgressLabel)+ui.TextTable([]string{"#", "", "STEP", "DURATION"}, rows))
	},
	func(s ResultsSection) string {
		rows := make([][]string, len(s.Results))
		for i, r := range s.Results {
			rows[i] = []string{r.Metric, r.Value, r.Note}
		}
		return ui.TextSection("Results", ui.TextTable([]string{"METRIC", "VALUE", "NOTE"}, rows))
	},
	func(s SamplesSection) string {
		rows := make([][]string, len(s.Rows))
		for i, r := range s.Rows {
			rows[i] = []string{r.Code, r.Type, r.Quantity, r.Storage, r.Collected}
		}
		return ui.TextSection("Samples", ui.TextTable([]string{"CODE", "TYPE", "QUANTITY", "STORAGE", "COLLECTED"}, rows))
	},
	func(s TeamSection) string {
		fields := make([]view.Field, len(s.Members))
		for i, m := range s.Members {
			fields[i] = view.Field{Label: m.Role, Value: m.Name}
		}
		return ui.TextSection("Team", ui.TextFields(fields))
	},
	func(s EquipmentUsedSection) string {
		rows := make([][]string, len(s.Instruments))
		for i, in := range s.Instruments {
			rows[i] = []string{in.ID, in.Name, in.Location, ui.TextBadge(in.Status)}
		}
		return ui.TextSection("Equipment used", ui.TextTable([]string{"ID", "NAME", "LOCATION", "STATUS"}, rows))
	},
	func(s NotesSection) string {
		return ui.TextSection("Notes", ui.TextList(s.Notes))
	},
})
