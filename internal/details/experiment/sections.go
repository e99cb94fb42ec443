// Package experiment assembles and renders the experiment detail page.
package experiment

import "lab-dashboard/internal/view"

// Kind discriminates experiment page sections.
type Kind string

const (
	KindHypothesis    Kind = "hypothesis"
	KindProtocol      Kind = "protocol"
	KindResults       Kind = "results"
	KindSamples       Kind = "samples"
	KindTeam          Kind = "team"
	KindEquipmentUsed Kind = "equipment-used"
	KindNotes         Kind = "notes"
)

// Section is an experiment page section.
type Section interface {
	view.Variant[Kind]
	experimentSection()
}

// Members returns the zero value of every Section member.
func Members() []Section {
	return []Section{
		HypothesisSection{},
		ProtocolSection{},
		ResultsSection{},
		SamplesSection{},
		TeamSection{},
		EquipmentUsedSection{},
		NotesSection{},
	}
}

// Kinds returns the declared section kinds.
func Kinds() []Kind { return view.KindsOf[Kind](Members()) }

type HypothesisSection struct {
	Hypothesis string `json:"hypothesis"`
	Objective  string `json:"objective"`
}

// Step is one numbered protocol step.
type Step struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Duration string `json:"duration"`
	Done     bool   `json:"done"`
}

type ProtocolSection struct {
	Steps         []Step `json:"steps"`
	Progress      int    `json:"progress"`
	ProgressLabel string `json:"progress_label"`
}

// Result is one formatted observation.
type Result struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Note   string `json:"note"`
}

type ResultsSection struct {
	Results []Result `json:"results"`
}

// SampleRow is one specimen.
type SampleRow struct {
	Code      string `json:"code"`
	Type      string `json:"type"`
	Quantity  string `json:"quantity"`
	Storage   string `json:"storage"`
	Collected string `json:"collected"`
}

type SamplesSection struct {
	Rows []SampleRow `json:"rows"`
}

// TeamMember is a person on the experiment.
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type TeamSection struct {
	Members []TeamMember `json:"members"`
}

// Instrument is a piece of equipment the experiment uses.
type Instrument struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Href     string     `json:"href,omitempty"`
	Location string     `json:"location"`
	Status   view.Badge `json:"status"`
}

type EquipmentUsedSection struct {
	Instruments []Instrument `json:"instruments"`
}

type NotesSection struct {
	Notes []string `json:"notes"`
}

func (HypothesisSection) Kind() Kind    { return KindHypothesis }
func (ProtocolSection) Kind() Kind      { return KindProtocol }
func (ResultsSection) Kind() Kind       { return KindResults }
func (SamplesSection) Kind() Kind       { return KindSamples }
func (TeamSection) Kind() Kind          { return KindTeam }
func (EquipmentUsedSection) Kind() Kind { return KindEquipmentUsed }
func (NotesSection) Kind() Kind         { return KindNotes }

func (HypothesisSection) experimentSection()    {}
func (ProtocolSection) experimentSection()      {}
func (ResultsSection) experimentSection()       {}
func (SamplesSection) experimentSection()       {}
func (TeamSection) experimentSection()          {}
func (EquipmentUsedSection) experimentSection() {}
func (NotesSection) experimentSection()         {}

// Renderers holds one renderer per Section member, in member order.
type Renderers[O any] struct {
	Hypothesis    func(HypothesisSection) O
	Protocol      func(ProtocolSection) O
	Results       func(ResultsSection) O
	Samples       func(SamplesSection) O
	Team          func(TeamSection) O
	EquipmentUsed func(EquipmentUsedSection) O
	Notes         func(NotesSection) O
}

// NewRegistry binds every renderer of t to its kind.
func NewRegistry[O any](union string, t Renderers[O]) (*view.Registry[Kind, Section, O], error) {
	return view.NewRegistry(union, Kinds(),
		view.Bind[Kind, Section](KindHypothesis, t.Hypothesis),
		view.Bind[Kind, Section](KindProtocol, t.Protocol),
		view.Bind[Kind, Section](KindResults, t.Results),
		view.Bind[Kind, Section](KindSamples, t.Samples),
		view.Bind[Kind, Section](KindTeam, t.Team),
		view.Bind[Kind, Section](KindEquipmentUsed, t.EquipmentUsed),
		view.Bind[Kind, Section](KindNotes, t.Notes),
	)
}

func mustRegistry[O any](union string, t Renderers[O]) *view.Registry[Kind, Section, O] {
	r, err := NewRegistry(union, t)
	if err != nil {
		panic(err)
	}
	return r
}
