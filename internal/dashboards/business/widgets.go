// Package business assembles and renders the business dashboard: contract
// pipeline, revenue and payment tracking, client ranking.
package business

import (
	"lab-dashboard/internal/view"
)

// Kind discriminates business dashboard widgets.
type Kind string

const (
	KindStats         Kind = "stats"
	KindBarChart      Kind = "bar-chart"
	KindPieChart      Kind = "pie-chart"
	KindPipeline      Kind = "pipeline"
	KindContractGrid  Kind = "contract-grid"
	KindClientRanking Kind = "client-ranking"
	KindQuickLinks    Kind = "quick-links"
	KindPayments      Kind = "payments"
)

// Widget is a business dashboard widget.
type Widget interface {
	view.Variant[Kind]
	businessWidget()
}

// Members returns the zero value of every Widget member.
func Members() []Widget {
	return []Widget{
		StatsWidget{},
		BarChartWidget{},
		PieChartWidget{},
		PipelineWidget{},
		ContractGridWidget{},
		ClientRankingWidget{},
		QuickLinksWidget{},
		PaymentsWidget{},
	}
}

// Kinds returns the declared widget kinds.
func Kinds() []Kind { return view.KindsOf[Kind](Members()) }

// StatsWidget is the headline figure row shown above the tabs.
type StatsWidget struct {
	Stats []view.KPI `json:"stats"`
}

// BarChartWidget charts one value per label.
type BarChartWidget struct {
	Title string       `json:"title"`
	Icon  string       `json:"icon"`
	Data  []view.Datum `json:"data"`
	Total string       `json:"total"`
}

// PieChartWidget charts the share of each label.
type PieChartWidget struct {
	Title string       `json:"title"`
	Icon  string       `json:"icon"`
	Data  []view.Datum `json:"data"`
}

// PipelineStage is one contract stage with its count and value.
type PipelineStage struct {
	Stage string `json:"stage"`
	Label string `json:"label"`
	Count string `json:"count"`
	Value string `json:"value"`
	Share int    `json:"share"`
}

// PipelineWidget shows contracts grouped by stage.
type PipelineWidget struct {
	Title  string          `json:"title"`
	Stages []PipelineStage `json:"stages"`
	Total  string          `json:"total"`
}

// ContractCard summarises one contract.
type ContractCard struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Client        string     `json:"client"`
	Value         string     `json:"value"`
	EndDate       string     `json:"end_date"`
	Href          string     `json:"href"`
	Progress      int        `json:"progress"`
	ProgressLabel string     `json:"progress_label"`
	Badge         view.Badge `json:"badge"`
}

// ContractGridWidget lays out contract cards.
type ContractGridWidget struct {
	Title     string         `json:"title"`
	Contracts []ContractCard `json:"contracts"`
}

// ClientRank is one row of the client ranking.
type ClientRank struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Value     string `json:"value"`
	Share     string `json:"share"`
	Contracts string `json:"contracts"`
}

// ClientRankingWidget ranks clients by contract value.
type ClientRankingWidget struct {
	Title   string       `json:"title"`
	Clients []ClientRank `json:"clients"`
}

// QuickLink is a shortcut to another page.
type QuickLink struct {
	Label       string `json:"label"`
	Href        string `json:"href"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// QuickLinksWidget lists shortcuts.
type QuickLinksWidget struct {
	Title string      `json:"title"`
	Links []QuickLink `json:"links"`
}

// PaymentRow is one invoice instalment.
type PaymentRow struct {
	Reference    string     `json:"reference"`
	Contract     string     `json:"contract"`
	ContractHref string     `json:"contract_href"`
	Client       string     `json:"client"`
	Amount       string     `json:"amount"`
	Due          string     `json:"due"`
	Status       view.Badge `json:"status"`
}

// PaymentsWidget tabulates payments.
type PaymentsWidget struct {
	Title       string       `json:"title"`
	Rows        []PaymentRow `json:"rows"`
	Outstanding string       `json:"outstanding"`
}

func (StatsWidget) Kind() Kind         { return KindStats }
func (BarChartWidget) Kind() Kind      { return KindBarChart }
func (PieChartWidget) Kind() Kind      { return KindPieChart }
func (PipelineWidget) Kind() Kind      { return KindPipeline }
func (ContractGridWidget) Kind() Kind  { return KindContractGrid }
func (ClientRankingWidget) Kind() Kind { return KindClientRanking }
func (QuickLinksWidget) Kind() Kind    { return KindQuickLinks }
func (PaymentsWidget) Kind() Kind      { return KindPayments }

func (StatsWidget) businessWidget()         {}
func (BarChartWidget) businessWidget()      {}
func (PieChartWidget) businessWidget()      {}
func (PipelineWidget) businessWidget()      {}
func (ContractGridWidget) businessWidget()  {}
func (ClientRankingWidget) businessWidget() {}
func (QuickLinksWidget) businessWidget()    {}
func (PaymentsWidget) businessWidget()      {}

// Renderers holds one renderer per Widget member. Build it with an unkeyed
// composite literal: the compiler then rejects a table that misses a member
// or names one that no longer exists.
type Renderers[O any] struct {
	Stats         func(StatsWidget) O
	BarChart      func(BarChartWidget) O
	PieChart      func(PieChartWidget) O
	Pipeline      func(PipelineWidget) O
	ContractGrid  func(ContractGridWidget) O
	ClientRanking func(ClientRankingWidget) O
	QuickLinks    func(QuickLinksWidget) O
	Payments      func(PaymentsWidget) O
}

// NewRegistry binds every renderer of t to its kind.
func NewRegistry[O any](union string, t Renderers[O]) (*view.Registry[Kind, Widget, O], error) {
	return view.NewRegistry(union, Kinds(),
		view.Bind[Kind, Widget](KindStats, t.Stats),
		view.Bind[Kind, Widget](KindBarChart, t.BarChart),
		view.Bind[Kind, Widget](KindPieChart, t.PieChart),
		view.Bind[Kind, Widget](KindPipeline, t.Pipeline),
		view.Bind[Kind, Widget](KindContractGrid, t.ContractGrid),
		view.Bind[Kind, Widget](KindClientRanking, t.ClientRanking),
		view.Bind[Kind, Widget](KindQuickLinks, t.QuickLinks),
		view.Bind[Kind, Widget](KindPayments, t.Payments),
	)
}

func mustRegistry[O any](union string, t Renderers[O]) *view.Registry[Kind, Widget, O] {
	r, err := NewRegistry(union, t)
	if err != nil {
		panic(err)
	}
	return r
}
