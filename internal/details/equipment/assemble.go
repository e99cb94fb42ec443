package equipment

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/status"
	"lab-dashboard/internal/view"
)

// calibrationWarnDays is how early an upcoming calibration is flagged.
const calibrationWarnDays = 30

// Assemble builds the detail page for the instrument with the given id. It
// reports false when no such instrument exists.
func Assemble(id string, repo core.Repository) (view.DetailConfig[Section], bool) {
	eq, ok := repo.Equipment(id)
	if !ok {
		return view.DetailConfig[Section]{}, false
	}
	asOf := repo.AsOf()
	badge := status.Equipment(eq.Status)
	usage := usageSection(eq)
	maint := maintenanceSection(eq)
	calib := calibrationSection(eq, repo)

	utilization := 0.0
	if capacity := eq.MonthlyCapacity * float64(len(eq.Usage)); capacity > 0 {
		utilization = eq.TotalHours() / capacity
	}

	return view.DetailConfig[Section]{
		Header: view.Header{
			Title:    eq.Name,
			Subtitle: eq.Manufacturer + " " + eq.Model + " · " + eq.Location,
			Icon:     "cpu",
			Badge:    &badge,
			Breadcrumbs: []view.Crumb{
				{Label: "Equipment", Href: "/equipment"},
				{Label: eq.Name},
			},
		},
		KPIs: []view.KPI{
			{Label: "Logged hours", Value: usage.Total, Hint: usage.Average + " per month"},
			{Label: "Utilization", Value: core.Percent(utilization), Hint: "of monthly capacity"},
			{Label: "Maintenance cost", Value: maint.TotalCost, Hint: core.Count(len(eq.Maintenance)) + " service events"},
			{Label: "Next calibration", Value: calib.Next, Hint: calib.DueIn, Tone: calib.Status.Tone},
		},
		Actions: []view.Action{
			{Label: "All equipment", Href: "/equipment"},
			{Label: "Utilization ranking", Href: "/research?tab=equipment"},
			{Label: "Export JSON", Href: "/api/equipment/" + eq.ID, Primary: true},
		},
		Main: []Section{
			SpecificationsSection{Specs: specs(eq), Serial: eq.SerialNumber},
			usage,
			maint,
			linkedExperiments(eq, repo),
		},
		Sidebar: []Section{
			calib,
			warrantySection(eq, asOf),
			AssignmentSection{
				AssignedTo: eq.AssignedTo,
				Department: eq.Department,
				Location:   eq.Location,
				Category:   eq.Category,
			},
		},
	}, true
}

func specs(eq core.Equipment) []view.Field {
	out := make([]view.Field, len(eq.Specifications))
	for i, s := range eq.Specifications {
		out[i] = view.Field{Label: s.Name, Value: s.Value}
	}
	return out
}

func usageSection(eq core.Equipment) UsageSection {
	data := make([]view.Datum, len(eq.Usage))
	for i, u := range eq.Usage {
		data[i] = view.Datum{Label: core.MonthLabel(u.Month), Value: u.Hours, Display: core.Hours(u.Hours)}
	}
	total := eq.TotalHours()
	avg := 0.0
	if len(eq.Usage) > 0 {
		avg = total / float64(len(eq.Usage))
	}
	return UsageSection{Data: data, Total: core.Hours(total), Average: core.Hours(avg)}
}

func maintenanceSection(eq core.Equipment) MaintenanceHistorySection {
	records := slices.Clone(eq.Maintenance)
	slices.SortStableFunc(records, func(a, b core.MaintenanceRecord) int { return b.Date.Compare(a.Date) })
	var total decimal.Decimal
	rows := make([]MaintenanceRow, len(records))
	for i, m := range records {
		total = total.Add(m.Cost)
		rows[i] = MaintenanceRow{
			Date:        core.Date(m.Date),
			Type:        m.Type,
			Technician:  m.Technician,
			Description: m.Description,
			Cost:        core.Money(m.Cost),
		}
	}
	return MaintenanceHistorySection{Records: rows, TotalCost: core.Money(total)}
}

func linkedExperiments(eq core.Equipment, repo core.Repository) LinkedExperimentsSection {
	var out []LinkedExperiment
	for _, e := range repo.Experiments() {
		if !slices.Contains(e.EquipmentIDs, eq.ID) {
			continue
		}
		out = append(out, LinkedExperiment{
			ID:         e.ID,
			Title:      e.Title,
			Href:       "/experiments/" + e.ID,
			Researcher: e.Researcher,
			Status:     status.Experiment(e.Status),
		})
	}
	return LinkedExperimentsSection{Experiments: out}
}

func calibrationSection(eq core.Equipment, repo core.Repository) CalibrationSection {
	asOf := repo.AsOf()
	next := eq.NextCalibration()
	days := core.DaysBetween(asOf, next)
	badge := view.Badge{Text: "Current", Tone: view.ToneGood}
	switch {
	case days < 0:
		badge = view.Badge{Text: "Overdue", Tone: view.ToneBad}
	case days <= calibrationWarnDays:
		badge = view.Badge{Text: "Due soon", Tone: view.ToneWarn}
	}
	return CalibrationSection{
		Last:     core.Date(eq.LastCalibration),
		Next:     core.Date(next),
		Interval: fmt.Sprintf("every %d days", eq.CalibrationDays),
		DueIn:    core.Days(asOf, next),
		Status:   badge,
	}
}

func warrantySection(eq core.Equipment, asOf time.Time) WarrantySection {
	w := WarrantySection{
		Purchased:     core.Date(eq.PurchaseDate),
		PurchasePrice: core.Money(eq.PurchasePrice),
		Expiry:        core.Date(eq.WarrantyExpiry),
		Remaining:     core.Days(asOf, eq.WarrantyExpiry),
		Status:        view.Badge{Text: "Covered", Tone: view.ToneGood},
	}
	if eq.WarrantyExpiry.Before(asOf) {
		w.Remaining = "expired " + core.Days(asOf, eq.WarrantyExpiry)
		w.Status = view.Badge{Text: "Expired", Tone: view.ToneNeutral}
	}
	return w
}
