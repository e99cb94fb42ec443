package experiment

import (
	"strconv"

	"github.com/a-h/templ"

	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
)

// HTML renders experiment sections as templ components.
var HTML = mustRegistry("experiment-section/html", Renderers[templ.Component]{
	hypothesisHTML,
	protocolHTML,
	resultsHTML,
	samplesHTML,
	teamHTML,
	equipmentUsedHTML,
	notesHTML,
})

func hypothesisHTML(s HypothesisSection) templ.Component {
	return ui.Card("Hypothesis", "lightbulb", ui.Stack(
		ui.Element("blockquote", "hypothesis", ui.Text(s.Hypothesis)),
		ui.Fields([]view.Field{{Label: "Objective", Value: s.Objective}}),
	))
}

func protocolHTML(s ProtocolSection) templ.Component {
	if len(s.Steps) == 0 {
		return ui.Card("Protocol", "list-checks", ui.Empty("Protocol not written yet."))
	}
	rows := make([][]ui.Cell, len(s.Steps))
	for i, st := range s.Steps {
		state := view.Badge{Text: "Pending", Tone: view.ToneNeutral}
		if st.Done {
			state = view.Badge{Text: "Done", Tone: view.ToneGood}
		}
		rows[i] = []ui.Cell{
			{Text: strconv.Itoa(st.Number)},
			{Text: st.Title},
			{Text: st.Detail},
			{Text: st.Duration},
			{Text: state.Text, Tone: state.Tone},
		}
	}
	return ui.Card("Protocol", "list-checks", ui.Stack(
		ui.Progress(s.Progress, s.ProgressLabel),
		ui.Table([]string{"#", "Step", "Detail", "Duration", "Status"}, rows),
	))
}

func resultsHTML(s ResultsSection) templ.Component {
	if len(s.Results) == 0 {
		return ui.Card("Results", "chart", ui.Empty("No results recorded."))
	}
	rows := make([][]ui.Cell, len(s.Results))
	for i, r := range s.Results {
		rows[i] = ui.Plain(r.Metric, r.Value, r.Note)
	}
	return ui.Card("Results", "chart", ui.Table([]string{"Metric", "Value", "Note"}, rows))
}

func samplesHTML(s SamplesSection) templ.Component {
	if len(s.Rows) == 0 {
		return ui.Card("Samples", "test-tube", ui.Empty("No samples collected."))
	}
	rows := make([][]ui.Cell, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = ui.Plain(r.Code, r.Type, r.Quantity, r.Storage, r.Collected)
	}
	return ui.Card("Samples", "test-tube", ui.Table([]string{"Code", "Type", "Quantity", "Storage", "Collected"}, rows))
}

func teamHTML(s TeamSection) templ.Component {
	fields := make([]view.Field, len(s.Members))
	for i, m := range s.Members {
		fields[i] = view.Field{Label: m.Role, Value: m.Name}
	}
	return ui.Card("Team", "users", ui.Fields(fields))
}

func equipmentUsedHTML(s EquipmentUsedSection) templ.Component {
	rows := make([][]ui.Cell, len(s.Instruments))
	for i, in := range s.Instruments {
		rows[i] = []ui.Cell{
			{Text: in.Name, Href: in.Href},
			{Text: in.Location},
			{Text: in.Status.Text, Tone: in.Status.Tone},
		}
	}
	return ui.Card("Equipment used", "microscope", ui.Table([]string{"Instrument", "Location", "Status"}, rows))
}

func notesHTML(s NotesSection) templ.Component {
	if len(s.Notes) == 0 {
		return ui.Card("Notes", "notebook", ui.Empty("No notes."))
	}
	return ui.Card("Notes", "notebook", ui.List(s.Notes))
}
