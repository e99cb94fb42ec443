// Package contract assembles and renders the contract detail page.
package contract

import "lab-dashboard/internal/view"

// Kind discriminates contract page sections.
type Kind string

const (
	KindOverview   Kind = "overview"
	KindMilestones Kind = "milestones"
	KindPayments   Kind = "payments"
	KindTimeline   Kind = "timeline"
	KindClientInfo Kind = "client-info"
	KindDocuments  Kind = "documents"
)

// Section is a contract page section.
type Section interface {
	view.Variant[Kind]
	contractSection()
}

// Members returns the zero value of every Section member.
func Members() []Section {
	return []Section{
		OverviewSection{},
		MilestonesSection{},
		PaymentsSection{},
		TimelineSection{},
		ClientInfoSection{},
		DocumentsSection{},
	}
}

// Kinds returns the declared section kinds.
func Kinds() []Kind { return view.KindsOf[Kind](Members()) }

type OverviewSection struct {
	Description string       `json:"description"`
	Fields      []view.Field `json:"fields"`
}

// MilestoneRow is one contract deliverable.
type MilestoneRow struct {
	Title       string     `json:"title"`
	Due         string     `json:"due"`
	Deliverable string     `json:"deliverable"`
	Status      view.Badge `json:"status"`
}

type MilestonesSection struct {
	Rows          []MilestoneRow `json:"rows"`
	Progress      int            `json:"progress"`
	ProgressLabel string         `json:"progress_label"`
}

// PaymentRow is one instalment of the contract.
type PaymentRow struct {
	Reference string     `json:"reference"`
	Amount    string     `json:"amount"`
	Due       string     `json:"due"`
	Paid      string     `json:"paid"`
	Status    view.Badge `json:"status"`
}

type PaymentsSection struct {
	Rows        []PaymentRow `json:"rows"`
	Paid        string       `json:"paid"`
	Outstanding string       `json:"outstanding"`
}

// TimelineEvent is one dated point in the life of the contract.
type TimelineEvent struct {
	Date string `json:"date"`
	Text string `json:"text"`
	Past bool   `json:"past"`
}

type TimelineSection struct {
	Events []TimelineEvent `json:"events"`
}

// ContractLink points at another contract of the same client.
type ContractLink struct {
	Title  string     `json:"title"`
	Href   string     `json:"href"`
	Status view.Badge `json:"status"`
}

type ClientInfoSection struct {
	Name     string         `json:"name"`
	Fields   []view.Field   `json:"fields"`
	Contract []ContractLink `json:"contracts"`
}

// DocumentRow is one attached file.
type DocumentRow struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Uploaded string `json:"uploaded"`
	Size     string `json:"size"`
}

type DocumentsSection struct {
	Rows []DocumentRow `json:"rows"`
}

func (OverviewSection) Kind() Kind   { return KindOverview }
func (MilestonesSection) Kind() Kind { return KindMilestones }
func (PaymentsSection) Kind() Kind   { return KindPayments }
func (TimelineSection) Kind() Kind   { return KindTimeline }
func (ClientInfoSection) Kind() Kind { return KindClientInfo }
func (DocumentsSection) Kind() Kind  { return KindDocuments }

func (OverviewSection) contractSection()   {}
func (MilestonesSection) contractSection() {}
func (PaymentsSection) contractSection()   {}
func (TimelineSection) contractSection()   {}
func (ClientInfoSection) contractSection() {}
func (DocumentsSection) contractSection()  {}

// Renderers holds one renderer per Section member, in member order.
type Renderers[O any] struct {
	Overview   func(OverviewSection) O
	Milestones func(MilestonesSection) O
	Payments   func(PaymentsSection) O
	Timeline   func(TimelineSection) O
	ClientInfo func(ClientInfoSection) O
	Documents  func(DocumentsSection) O
}

// NewRegistry binds every renderer of t to its kind.
func NewRegistry[O any](union string, t Renderers[O]) (*view.Registry[Kind, Section, O], error) {
	return view.NewRegistry(union, Kinds(),
		view.Bind[Kind, Section](KindOverview, t.Overview),
		view.Bind[Kind, Section](KindMilestones, t.Milestones),
		view.Bind[Kind, Section](KindPayments, t.Payments),
		view.Bind[Kind, Section](KindTimeline, t.Timeline),
		view.Bind[Kind, Section](KindClientInfo, t.ClientInfo),
		view.Bind[Kind, Section](KindDocuments, t.Documents),
	)
}

func mustRegistry[O any](union string, t Renderers[O]) *view.Registry[Kind, Section, O] {
	r, err := NewRegistry(union, t)
	if err != nil {
		panic(err)
	}
	return r
}
