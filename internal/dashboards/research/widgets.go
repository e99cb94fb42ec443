// Package research assembles and renders the research dashboard.
package research

import (
	"lab-dashboard/internal/view"
)

// Kind discriminates research dashboard widgets.
type Kind string

const (
	KindStats                Kind = "stats"
	KindLineChart            Kind = "line-chart"
	KindBarChart             Kind = "bar-chart"
	KindProjectProgress      Kind = "project-progress"
	KindExperimentTable      Kind = "experiment-table"
	KindPublications         Kind = "publications"
	KindEquipmentUtilization Kind = "equipment-utilization"
	KindActivityFeed         Kind = "activity-feed"
)

// Widget is a research dashboard widget.
type Widget interface {
	view.Variant[Kind]
	researchWidget()
}

// Members returns the zero value of every Widget member.
func Members() []Widget {
	return []Widget{
		StatsWidget{},
		LineChartWidget{},
		BarChartWidget{},
		ProjectProgressWidget{},
		ExperimentTableWidget{},
		PublicationsWidget{},
		EquipmentUtilizationWidget{},
		ActivityFeedWidget{},
	}
}

// Kinds returns the declared widget kinds.
func Kinds() []Kind { return view.KindsOf[Kind](Members()) }

type StatsWidget struct {
	Stats []view.KPI `json:"stats"`
}

type LineChartWidget struct {
	Title   string       `json:"title"`
	Icon    string       `json:"icon"`
	Data    []view.Datum `json:"data"`
	Caption string       `json:"caption"`
}

type BarChartWidget struct {
	Title string       `json:"title"`
	Icon  string       `json:"icon"`
	Data  []view.Datum `json:"data"`
	Total string       `json:"total"`
}

// ProjectRow is one project with its budget burn.
type ProjectRow struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Lead          string     `json:"lead"`
	Status        view.Badge `json:"status"`
	Budget        string     `json:"budget"`
	Spent         string     `json:"spent"`
	Progress      int        `json:"progress"`
	ProgressLabel string     `json:"progress_label"`
	Experiments   string     `json:"experiments"`
}

type ProjectProgressWidget struct {
	Title    string       `json:"title"`
	Projects []ProjectRow `json:"projects"`
}

// ExperimentRow is one experiment in the experiment table.
type ExperimentRow struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Href       string     `json:"href"`
	Project    string     `json:"project"`
	Researcher string     `json:"researcher"`
	Started    string     `json:"started"`
	Status     view.Badge `json:"status"`
}

type ExperimentTableWidget struct {
	Title string          `json:"title"`
	Rows  []ExperimentRow `json:"rows"`
}

// PublicationRow is one paper.
type PublicationRow struct {
	Title     string     `json:"title"`
	Journal   string     `json:"journal"`
	Date      string     `json:"date"`
	Authors   string     `json:"authors"`
	Citations string     `json:"citations"`
	Status    view.Badge `json:"status"`
}

type PublicationsWidget struct {
	Title string           `json:"title"`
	Items []PublicationRow `json:"items"`
}

// UtilizationRow is one instrument's logged hours against its capacity.
type UtilizationRow struct {
	Name        string     `json:"name"`
	Href        string     `json:"href"`
	Hours       string     `json:"hours"`
	Utilization int        `json:"utilization"`
	Label       string     `json:"label"`
	Status      view.Badge `json:"status"`
}

type EquipmentUtilizationWidget struct {
	Title string           `json:"title"`
	Items []UtilizationRow `json:"items"`
}

// Activity is one entry of the activity feed.
type Activity struct {
	Date string `json:"date"`
	When string `json:"when"`
	Icon string `json:"icon"`
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

type ActivityFeedWidget struct {
	Title  string     `json:"title"`
	Events []Activity `json:"events"`
}

func (StatsWidget) Kind() Kind                { return KindStats }
func (LineChartWidget) Kind() Kind            { return KindLineChart }
func (BarChartWidget) Kind() Kind             { return KindBarChart }
func (ProjectProgressWidget) Kind() Kind      { return KindProjectProgress }
func (ExperimentTableWidget) Kind() Kind      { return KindExperimentTable }
func (PublicationsWidget) Kind() Kind         { return KindPublications }
func (EquipmentUtilizationWidget) Kind() Kind { return KindEquipmentUtilization }
func (ActivityFeedWidget) Kind() Kind         { return KindActivityFeed }

func (StatsWidget) researchWidget()                {}
func (LineChartWidget) researchWidget()            {}
func (BarChartWidget) researchWidget()             {}
func (ProjectProgressWidget) researchWidget()      {}
func (ExperimentTableWidget) researchWidget()      {}
func (PublicationsWidget) researchWidget()         {}
func (EquipmentUtilizationWidget) researchWidget() {}
func (ActivityFeedWidget) researchWidget()         {}

// Renderers holds one renderer per Widget member, in member order. Build it
// with an unkeyed composite literal.
type Renderers[O any] struct {
	Stats                func(StatsWidget) O
	LineChart            func(LineChartWidget) O
	BarChart             func(BarChartWidget) O
	ProjectProgress      func(ProjectProgressWidget) O
	ExperimentTable      func(ExperimentTableWidget) O
	Publications         func(PublicationsWidget) O
	EquipmentUtilization func(EquipmentUtilizationWidget) O
	ActivityFeed         func(ActivityFeedWidget) O
}

// NewRegistry binds every renderer of t to its kind.
func NewRegistry[O any](union string, t Renderers[O]) (*view.Registry[Kind, Widget, O], error) {
	return view.NewRegistry(union, Kinds(),
		view.Bind[Kind, Widget](KindStats, t.Stats),
		view.Bind[Kind, Widget](KindLineChart, t.LineChart),
		view.Bind[Kind, Widget](KindBarChart, t.BarChart),
		view.Bind[Kind, Widget](KindProjectProgress, t.ProjectProgress),
		view.Bind[Kind, Widget](KindExperimentTable, t.ExperimentTable),
		view.Bind[Kind, Widget](KindPublications, t.Publications),
		view.Bind[Kind, Widget](KindEquipmentUtilization, t.EquipmentUtilization),
		view.Bind[Kind, Widget](KindActivityFeed, t.ActivityFeed),
	)
}

func mustRegistry[O any](union string, t Renderers[O]) *view.Registry[Kind, Widget, O] {
	r, err := NewRegistry(union, t)
	if err != nil {
		panic(err)
	}
	return r
}
