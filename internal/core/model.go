package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Business ──────────────────────────────────────────────────────────────────

// Client is an organisation the lab holds contracts with.
type Client struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Industry string `yaml:"industry"`
	Contact  string `yaml:"contact"`
	Email    string `yaml:"email"`
	Country  string `yaml:"country"`
}

// Contract status values, in pipeline order.
const (
	ContractDraft       = "draft"
	ContractNegotiation = "negotiation"
	ContractActive      = "active"
	ContractCompleted   = "completed"
	ContractCancelled   = "cancelled"
)

// ContractStatuses lists contract statuses in pipeline order.
var ContractStatuses = []string{
	ContractDraft, ContractNegotiation, ContractActive, ContractCompleted, ContractCancelled,
}

// Milestone is a deliverable inside a contract.
type Milestone struct {
	Title       string    `yaml:"title"`
	Due         time.Time `yaml:"due"`
	Done        bool      `yaml:"done"`
	Deliverable string    `yaml:"deliverable"`
}

// Document is a file attached to a contract.
type Document struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Uploaded time.Time `yaml:"uploaded"`
	SizeKB   int64     `yaml:"size_kb"`
}

// Contract is a service agreement with a client.
type Contract struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	ClientID    string          `yaml:"client_id"`
	Status      string          `yaml:"status"`
	Value       decimal.Decimal `yaml:"value"`
	Currency    string          `yaml:"currency"`
	StartDate   time.Time       `yaml:"start_date"`
	EndDate     time.Time       `yaml:"end_date"`
	Manager     string          `yaml:"manager"`
	Description string          `yaml:"description"`
	Milestones  []Milestone     `yaml:"milestones"`
	Documents   []Document      `yaml:"documents"`
}

// Payment status values. Overdue is derived, never stored.
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentOverdue = "overdue"
)

// Payment is an invoice instalment against a contract.
type Payment struct {
	ID         string          `yaml:"id"`
	ContractID string          `yaml:"contract_id"`
	Amount     decimal.Decimal `yaml:"amount"`
	DueDate    time.Time       `yaml:"due_date"`
	PaidDate   *time.Time      `yaml:"paid_date"`
	Reference  string          `yaml:"reference"`
}

// StatusAt returns the payment status as of the given date.
func (p Payment) StatusAt(asOf time.Time) string {
	switch {
	case p.PaidDate != nil:
		return PaymentPaid
	case p.DueDate.Before(asOf):
		return PaymentOverdue
	default:
		return PaymentPending
	}
}

// ── Research ──────────────────────────────────────────────────────────────────

// Project groups experiments under one research objective.
type Project struct {
	ID     string          `yaml:"id"`
	Name   string          `yaml:"name"`
	Lead   string          `yaml:"lead"`
	Status string          `yaml:"status"`
	Budget decimal.Decimal `yaml:"budget"`
	Spent  decimal.Decimal `yaml:"spent"`
}

// Experiment status values.
const (
	ExperimentPlanned   = "planned"
	ExperimentRunning   = "running"
	ExperimentCompleted = "completed"
	ExperimentFailed    = "failed"
)

// ProtocolStep is one step of an experiment protocol.
type ProtocolStep struct {
	Title    string `yaml:"title"`
	Detail   string `yaml:"detail"`
	Duration string `yaml:"duration"`
	Done     bool   `yaml:"done"`
}

// Observation is one measured result.
type Observation struct {
	Metric string  `yaml:"metric"`
	Value  float64 `yaml:"value"`
	Unit   string  `yaml:"unit"`
	Note   string  `yaml:"note"`
}

// Sample is a specimen consumed or produced by an experiment.
type Sample struct {
	Code      string    `yaml:"code"`
	Type      string    `yaml:"type"`
	Quantity  string    `yaml:"quantity"`
	Storage   string    `yaml:"storage"`
	Collected time.Time `yaml:"collected"`
}

// Member is a person working on an experiment.
type Member struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// Experiment is a single investigation inside a project.
type Experiment struct {
	ID           string         `yaml:"id"`
	Title        string         `yaml:"title"`
	ProjectID    string         `yaml:"project_id"`
	Researcher   string         `yaml:"researcher"`
	Status       string         `yaml:"status"`
	StartDate    time.Time      `yaml:"start_date"`
	EndDate      *time.Time     `yaml:"end_date"`
	Hypothesis   string         `yaml:"hypothesis"`
	Objective    string         `yaml:"objective"`
	Protocol     []ProtocolStep `yaml:"protocol"`
	Results      []Observation  `yaml:"results"`
	Samples      []Sample       `yaml:"samples"`
	Team         []Member       `yaml:"team"`
	EquipmentIDs []string       `yaml:"equipment_ids"`
	Notes        []string       `yaml:"notes"`
}

// Publication is a paper produced by a project.
type Publication struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	ProjectID string    `yaml:"project_id"`
	Journal   string    `yaml:"journal"`
	Status    string    `yaml:"status"`
	Date      time.Time `yaml:"date"`
	Citations int       `yaml:"citations"`
	Authors   []string  `yaml:"authors"`
}

// ── Inventory ─────────────────────────────────────────────────────────────────

// Equipment status values.
const (
	EquipmentOperational = "operational"
	EquipmentMaintenance = "maintenance"
	EquipmentOutOfOrder  = "out-of-order"
	EquipmentRetired     = "retired"
)

// Spec is one technical specification of an instrument.
type Spec struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// MaintenanceRecord is one service event.
type MaintenanceRecord struct {
	Date        time.Time       `yaml:"date"`
	Type        string          `yaml:"type"`
	Technician  string          `yaml:"technician"`
	Description string          `yaml:"description"`
	Cost        decimal.Decimal `yaml:"cost"`
}

// UsageMonth is the logged instrument time for one calendar month.
type UsageMonth struct {
	Month time.Time `yaml:"month"`
	Hours float64   `yaml:"hours"`
}

// Equipment is a lab instrument.
type Equipment struct {
	ID              string              `yaml:"id"`
	Name            string              `yaml:"name"`
	Model           string              `yaml:"model"`
	Manufacturer    string              `yaml:"manufacturer"`
	SerialNumber    string              `yaml:"serial_number"`
	Category        string              `yaml:"category"`
	Location        string              `yaml:"location"`
	Status          string              `yaml:"status"`
	PurchaseDate    time.Time           `yaml:"purchase_date"`
	PurchasePrice   decimal.Decimal     `yaml:"purchase_price"`
	WarrantyExpiry  time.Time           `yaml:"warranty_expiry"`
	LastCalibration time.Time           `yaml:"last_calibration"`
	CalibrationDays int                 `yaml:"calibration_days"`
	AssignedTo      string              `yaml:"assigned_to"`
	Department      string              `yaml:"department"`
	MonthlyCapacity float64             `yaml:"monthly_capacity"`
	Specifications  []Spec              `yaml:"specifications"`
	Maintenance     []MaintenanceRecord `yaml:"maintenance"`
	Usage           []UsageMonth        `yaml:"usage"`
}

// NextCalibration returns the date the next calibration is due.
func (e Equipment) NextCalibration() time.Time {
	return e.LastCalibration.AddDate(0, 0, e.CalibrationDays)
}

// TotalHours returns the logged usage across all months.
func (e Equipment) TotalHours() float64 {
	var total float64
	for _, u := range e.Usage {
		total += u.Hours
	}
	return total
}
