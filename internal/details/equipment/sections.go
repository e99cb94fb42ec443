// Package equipment assembles and renders the equipment detail page.
package equipment

import "lab-dashboard/internal/view"

// Kind discriminates equipment page sections.
type Kind string

const (
	KindSpecifications     Kind = "specifications"
	KindUsage              Kind = "usage"
	KindMaintenanceHistory Kind = "maintenance-history"
	KindLinkedExperiments  Kind = "linked-experiments"
	KindCalibration        Kind = "calibration"
	KindWarranty           Kind = "warranty"
	KindAssignment         Kind = "assignment"
)

// Section is an equipment page section.
type Section interface {
	view.Variant[Kind]
	equipmentSection()
}

// Members returns the zero value of every Section member.
func Members() []Section {
	return []Section{
		SpecificationsSection{},
		UsageSection{},
		MaintenanceHistorySection{},
		LinkedExperimentsSection{},
		CalibrationSection{},
		WarrantySection{},
		AssignmentSection{},
	}
}

// Kinds returns the declared section kinds.
func Kinds() []Kind { return view.KindsOf[Kind](Members()) }

type SpecificationsSection struct {
	Specs  []view.Field `json:"specs"`
	Serial string       `json:"serial"`
}

type UsageSection struct {
	Data    []view.Datum `json:"data"`
	Total   string       `json:"total"`
	Average string       `json:"average"`
}

// MaintenanceRow is one service event.
type MaintenanceRow struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Technician  string `json:"technician"`
	Description string `json:"description"`
	Cost        string `json:"cost"`
}

type MaintenanceHistorySection struct {
	Records   []MaintenanceRow `json:"records"`
	TotalCost string           `json:"total_cost"`
}

// LinkedExperiment is an experiment that used the instrument.
type LinkedExperiment struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Href       string     `json:"href"`
	Researcher string     `json:"researcher"`
	Status     view.Badge `json:"status"`
}

type LinkedExperimentsSection struct {
	Experiments []LinkedExperiment `json:"experiments"`
}

type CalibrationSection struct {
	Last     string     `json:"last"`
	Next     string     `json:"next"`
	Interval string     `json:"interval"`
	DueIn    string     `json:"due_in"`
	Status   view.Badge `json:"status"`
}

type WarrantySection struct {
	Purchased     string     `json:"purchased"`
	PurchasePrice string     `json:"purchase_price"`
	Expiry        string     `json:"expiry"`
	Remaining     string     `json:"remaining"`
	Status        view.Badge `json:"status"`
}

type AssignmentSection struct {
	AssignedTo string `json:"assigned_to"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Category   string `json:"category"`
}

func (SpecificationsSection) Kind() Kind     { return KindSpecifications }
func (UsageSection) Kind() Kind              { return KindUsage }
func (MaintenanceHistorySection) Kind() Kind { return KindMaintenanceHistory }
func (LinkedExperimentsSection) Kind() Kind  { return KindLinkedExperiments }
func (CalibrationSection) Kind() Kind        { return KindCalibration }
func (WarrantySection) Kind() Kind           { return KindWarranty }
func (AssignmentSection) Kind() Kind         { return KindAssignment }

func (SpecificationsSection) equipmentSection()     {}
func (UsageSection) equipmentSection()              {}
func (MaintenanceHistorySection) equipmentSection() {}
func (LinkedExperimentsSection) equipmentSection()  {}
func (CalibrationSection) equipmentSection()        {}
func (WarrantySection) equipmentSection()           {}
func (AssignmentSection) equipmentSection()         {}

// Renderers holds one renderer per Section member, in member order.
type Renderers[O any] struct {
	Specifications     func(SpecificationsSection) O
	Usage              func(UsageSection) O
	MaintenanceHistory func(MaintenanceHistorySection) O
	LinkedExperiments  func(LinkedExperimentsSection) O
	Calibration        func(CalibrationSection) O
	Warranty           func(WarrantySection) O
	Assignment         func(AssignmentSection) O
}

// NewRegistry binds every renderer of t to its kind.
func NewRegistry[O any](union string, t Renderers[O]) (*view.Registry[Kind, Section, O], error) {
	return view.NewRegistry(union, Kinds(),
		view.Bind[Kind, Section](KindSpecifications, t.Specifications),
		view.Bind[Kind, Section](KindUsage, t.Usage),
		view.Bind[Kind, Section](KindMaintenanceHistory, t.MaintenanceHistory),
		view.Bind[Kind, Section](KindLinkedExperiments, t.LinkedExperiments),
		view.Bind[Kind, Section](KindCalibration, t.Calibration),
		view.Bind[Kind, Section](KindWarranty, t.Warranty),
		view.Bind[Kind, Section](KindAssignment, t.Assignment),
	)
}

func mustRegistry[O any](union string, t Renderers[O]) *view.Registry[Kind, Section, O] {
	r, err := NewRegistry(union, t)
	if err != nil {
		panic(err)
	}
	return r
}
