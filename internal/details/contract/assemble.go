package contract

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/status"
	"lab-dashboard/internal/view"
)

// Assemble builds the detail page for the contract with the given id. It
// reports false when no such contract exists.
func Assemble(id string, repo core.Repository) (view.DetailConfig[Section], bool) {
	c, ok := repo.Contract(id)
	if !ok {
		return view.DetailConfig[Section]{}, false
	}
	asOf := repo.AsOf()
	client, _ := repo.Client(c.ClientID)
	payments := paymentsSection(repo.PaymentsFor(c.ID), asOf)
	milestones := milestonesSection(c, asOf)
	badge := status.Contract(c.Status)

	var paid decimal.Decimal
	for _, p := range repo.PaymentsFor(c.ID) {
		if p.StatusAt(asOf) == core.PaymentPaid {
			paid = paid.Add(p.Amount)
		}
	}
	remaining := core.Days(asOf, c.EndDate)
	if c.EndDate.Before(asOf) {
		remaining = "ended " + remaining
	} else {
		remaining = "ends " + remaining
	}

	return view.DetailConfig[Section]{
		Header: view.Header{
			Title:    c.Title,
			Subtitle: c.ID + " · " + client.Name,
			Icon:     "file-text",
			Badge:    &badge,
			Breadcrumbs: []view.Crumb{
				{Label: "Contracts", Href: "/contracts"},
				{Label: c.ID},
			},
		},
		KPIs: []view.KPI{
			{Label: "Contract value", Value: core.Money(c.Value), Hint: c.Currency},
			{Label: "Paid", Value: payments.Paid, Hint: core.Percent(core.Ratio(paid, c.Value)) + " of value", Tone: view.ToneGood},
			{Label: "Outstanding", Value: payments.Outstanding, Tone: view.ToneWarn},
			{Label: "Milestones", Value: milestones.ProgressLabel},
			{Label: "End date", Value: core.Date(c.EndDate), Hint: remaining},
		},
		Actions: []view.Action{
			{Label: "All contracts", Href: "/contracts"},
			{Label: "Financials", Href: "/business?tab=financials"},
			{Label: "Export JSON", Href: "/api/contracts/" + c.ID, Primary: true},
		},
		Main: []Section{
			OverviewSection{
				Description: c.Description,
				Fields: []view.Field{
					{Label: "Manager", Value: c.Manager},
					{Label: "Start", Value: core.Date(c.StartDate)},
					{Label: "End", Value: core.Date(c.EndDate)},
					{Label: "Duration", Value: fmt.Sprintf("%d days", core.DaysBetween(c.StartDate, c.EndDate))},
					{Label: "Currency", Value: c.Currency},
				},
			},
			milestones,
			payments,
			timeline(c, repo.PaymentsFor(c.ID), asOf),
		},
		Sidebar: []Section{
			clientInfo(client, c, repo),
			documents(c),
		},
	}, true
}

func milestonesSection(c core.Contract, asOf time.Time) MilestonesSection {
	rows := make([]MilestoneRow, len(c.Milestones))
	done := 0
	for i, m := range c.Milestones {
		st := view.Badge{Text: "Upcoming", Tone: view.ToneNeutral}
		switch {
		case m.Done:
			done++
			st = view.Badge{Text: "Done", Tone: view.ToneGood}
		case m.Due.Before(asOf):
			st = view.Badge{Text: "Late", Tone: view.ToneBad}
		}
		rows[i] = MilestoneRow{Title: m.Title, Due: core.Date(m.Due), Deliverable: m.Deliverable, Status: st}
	}
	ratio := 0.0
	if len(c.Milestones) > 0 {
		ratio = float64(done) / float64(len(c.Milestones))
	}
	return MilestonesSection{
		Rows:          rows,
		Progress:      int(ratio*100 + 0.5),
		ProgressLabel: fmt.Sprintf("%d of %d", done, len(c.Milestones)),
	}
}

func paymentsSection(payments []core.Payment, asOf time.Time) PaymentsSection {
	payments = slices.Clone(payments)
	slices.SortStableFunc(payments, func(a, b core.Payment) int { return a.DueDate.Compare(b.DueDate) })
	var paid, outstanding decimal.Decimal
	rows := make([]PaymentRow, len(payments))
	for i, p := range payments {
		st := p.StatusAt(asOf)
		row := PaymentRow{
			Reference: p.Reference,
			Amount:    core.Money(p.Amount),
			Due:       core.Date(p.DueDate),
			Paid:      "-",
			Status:    status.Payment(st),
		}
		if st == core.PaymentPaid {
			paid = paid.Add(p.Amount)
			row.Paid = core.Date(*p.PaidDate)
		} else {
			outstanding = outstanding.Add(p.Amount)
		}
		rows[i] = row
	}
	return PaymentsSection{Rows: rows, Paid: core.Money(paid), Outstanding: core.Money(outstanding)}
}

type dated struct {
	at time.Time
	TimelineEvent
}

func timeline(c core.Contract, payments []core.Payment, asOf time.Time) TimelineSection {
	var events []dated
	add := func(at time.Time, text string) {
		events = append(events, dated{at: at, TimelineEvent: TimelineEvent{
			Date: core.Date(at),
			Text: text,
			Past: !at.After(asOf),
		}})
	}
	add(c.StartDate, "Contract starts")
	for _, m := range c.Milestones {
		add(m.Due, "Milestone: "+m.Title)
	}
	for _, p := range payments {
		if p.PaidDate != nil {
			add(*p.PaidDate, "Payment received: "+core.Money(p.Amount))
		} else {
			add(p.DueDate, "Payment due: "+core.Money(p.Amount))
		}
	}
	add(c.EndDate, "Contract ends")
	slices.SortStableFunc(events, func(a, b dated) int { return a.at.Compare(b.at) })
	out := make([]TimelineEvent, len(events))
	for i, e := range events {
		out[i] = e.TimelineEvent
	}
	return TimelineSection{Events: out}
}

func clientInfo(client core.Client, c core.Contract, repo core.Repository) ClientInfoSection {
	var others []ContractLink
	for _, o := range repo.Contracts() {
		if o.ClientID != c.ClientID || o.ID == c.ID {
			continue
		}
		others = append(others, ContractLink{Title: o.Title, Href: "/contracts/" + o.ID, Status: status.Contract(o.Status)})
	}
	return ClientInfoSection{
		Name: client.Name,
		Fields: []view.Field{
			{Label: "Industry", Value: client.Industry},
			{Label: "Contact", Value: client.Contact},
			{Label: "Email", Value: client.Email},
			{Label: "Country", Value: client.Country},
		},
		Contract: others,
	}
}

func documents(c core.Contract) DocumentsSection {
	rows := make([]DocumentRow, len(c.Documents))
	for i, d := range c.Documents {
		rows[i] = DocumentRow{Name: d.Name, Type: d.Type, Uploaded: core.Date(d.Uploaded), Size: core.FileSize(d.SizeKB)}
	}
	return DocumentsSection{Rows: rows}
}
