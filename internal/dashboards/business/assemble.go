package business

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/status"
	"lab-dashboard/internal/view"
)

// Tab ids.
const (
	TabOverview   = "overview"
	TabFinancials = "financials"
	TabClients    = "clients"
)

// revenueMonths is the width of the collected-revenue chart.
const revenueMonths = 6

// Assemble builds the business dashboard from repo. It reads nothing but repo,
// so equal snapshots yield equal configs.
func Assemble(repo core.Repository) view.DashboardConfig[Widget] {
	asOf := repo.AsOf()
	contracts := repo.Contracts()
	payments := repo.Payments()
	clients := clientNames(repo)

	ranking := rankClients(repo, contracts)

	return view.DashboardConfig[Widget]{
		Header: view.Header{
			Title:    "Business",
			Subtitle: "Contracts, revenue and clients as of " + core.Date(asOf),
			Icon:     "briefcase",
			Breadcrumbs: []view.Crumb{
				{Label: "Dashboards"},
				{Label: "Business"},
			},
		},
		Global: []Widget{stats(repo, contracts, payments)},
		Tabs: []view.Tab[Widget]{
			{
				ID:    TabOverview,
				Label: "Overview",
				Variants: []Widget{
					pipeline(contracts),
					ranking,
					contractGrid(repo, contracts, clients),
					quickLinks(),
				},
			},
			{
				ID:    TabFinancials,
				Label: "Financials",
				Variants: []Widget{
					revenueChart(asOf, payments),
					paymentsTable(asOf, contracts, payments, clients),
					statusChart(contracts),
				},
			},
			{
				ID:    TabClients,
				Label: "Clients",
				Variants: []Widget{
					ranking,
					industryChart(repo, contracts),
				},
			},
		},
	}
}

func clientNames(repo core.Repository) map[string]string {
	m := make(map[string]string)
	for _, c := range repo.Clients() {
		m[c.ID] = c.Name
	}
	return m
}

func stats(repo core.Repository, contracts []core.Contract, payments []core.Payment) StatsWidget {
	asOf := repo.AsOf()
	var active decimal.Decimal
	activeCount := 0
	for _, c := range contracts {
		if c.Status == core.ContractActive {
			active = active.Add(c.Value)
			activeCount++
		}
	}
	var collected, outstanding decimal.Decimal
	overdue := 0
	for _, p := range payments {
		switch p.StatusAt(asOf) {
		case core.PaymentPaid:
			collected = collected.Add(p.Amount)
		case core.PaymentOverdue:
			overdue++
			outstanding = outstanding.Add(p.Amount)
		default:
			outstanding = outstanding.Add(p.Amount)
		}
	}
	overdueTone := view.ToneGood
	if overdue > 0 {
		overdueTone = view.ToneBad
	}
	return StatsWidget{Stats: []view.KPI{
		{Label: "Active contract value", Value: core.Money(active), Hint: core.Count(activeCount) + " active contracts", Tone: view.ToneInfo},
		{Label: "Collected", Value: core.Money(collected), Tone: view.ToneGood},
		{Label: "Outstanding", Value: core.Money(outstanding), Tone: view.ToneWarn},
		{Label: "Overdue payments", Value: core.Count(overdue), Tone: overdueTone},
		{Label: "Clients", Value: core.Count(len(repo.Clients()))},
	}}
}

func revenueChart(asOf time.Time, payments []core.Payment) BarChartWidget {
	first := core.MonthStart(asOf).AddDate(0, -(revenueMonths - 1), 0)
	sums := make([]decimal.Decimal, revenueMonths)
	var total decimal.Decimal
	for _, p := range payments {
		if p.PaidDate == nil || p.PaidDate.After(asOf) {
			continue
		}
		m := core.MonthStart(*p.PaidDate)
		if m.Before(first) {
			continue
		}
		i := core.MonthsBetween(first, m)
		if i >= revenueMonths {
			continue
		}
		sums[i] = sums[i].Add(p.Amount)
		total = total.Add(p.Amount)
	}
	data := make([]view.Datum, revenueMonths)
	for i, s := range sums {
		f, _ := s.Float64()
		data[i] = view.Datum{Label: core.MonthLabel(first.AddDate(0, i, 0)), Value: f, Display: core.CompactMoney(s)}
	}
	return BarChartWidget{
		Title: "Collected revenue",
		Icon:  "chart-bar",
		Data:  data,
		Total: core.Money(total),
	}
}

func statusChart(contracts []core.Contract) PieChartWidget {
	counts := make(map[string]int)
	for _, c := range contracts {
		counts[c.Status]++
	}
	var data []view.Datum
	for _, s := range core.ContractStatuses {
		if n := counts[s]; n > 0 {
			data = append(data, view.Datum{Label: core.Label(s), Value: float64(n), Display: core.Count(n)})
		}
	}
	return PieChartWidget{Title: "Contracts by status", Icon: "chart-pie", Data: data}
}

func pipeline(contracts []core.Contract) PipelineWidget {
	var total decimal.Decimal
	for _, c := range contracts {
		total = total.Add(c.Value)
	}
	stages := make([]PipelineStage, 0, len(core.ContractStatuses))
	for _, s := range core.ContractStatuses {
		var value decimal.Decimal
		n := 0
		for _, c := range contracts {
			if c.Status == s {
				value = value.Add(c.Value)
				n++
			}
		}
		stages = append(stages, PipelineStage{
			Stage: s,
			Label: core.Label(s),
			Count: core.Count(n),
			Value: core.Money(value),
			Share: int(core.Ratio(value, total)*100 + 0.5),
		})
	}
	return PipelineWidget{Title: "Contract pipeline", Stages: stages, Total: core.Money(total)}
}

func contractGrid(repo core.Repository, contracts []core.Contract, clients map[string]string) ContractGridWidget {
	asOf := repo.AsOf()
	var cards []ContractCard
	for _, c := range contracts {
		if c.Status != core.ContractActive {
			continue
		}
		var paid decimal.Decimal
		for _, p := range repo.PaymentsFor(c.ID) {
			if p.StatusAt(asOf) == core.PaymentPaid {
				paid = paid.Add(p.Amount)
			}
		}
		ratio := core.Ratio(paid, c.Value)
		cards = append(cards, ContractCard{
			ID:            c.ID,
			Title:         c.Title,
			Client:        clients[c.ClientID],
			Value:         core.Money(c.Value),
			EndDate:       core.Date(c.EndDate),
			Href:          "/contracts/" + c.ID,
			Progress:      int(ratio*100 + 0.5),
			ProgressLabel: core.Percent(ratio) + " paid",
			Badge:         status.Contract(c.Status),
		})
	}
	return ContractGridWidget{Title: "Active contracts", Contracts: cards}
}

type clientTotal struct {
	client    core.Client
	value     decimal.Decimal
	contracts int
}

// rankClients orders clients by the value of their non-cancelled contracts,
// then by name.
func rankClients(repo core.Repository, contracts []core.Contract) ClientRankingWidget {
	totals := make([]clientTotal, 0, len(repo.Clients()))
	var grand decimal.Decimal
	for _, cl := range repo.Clients() {
		t := clientTotal{client: cl}
		for _, c := range contracts {
			if c.ClientID == cl.ID && c.Status != core.ContractCancelled {
				t.value = t.value.Add(c.Value)
				t.contracts++
			}
		}
		grand = grand.Add(t.value)
		totals = append(totals, t)
	}
	slices.SortStableFunc(totals, func(a, b clientTotal) int {
		if c := b.value.Cmp(a.value); c != 0 {
			return c
		}
		return cmp.Compare(a.client.Name, b.client.Name)
	})
	rows := make([]ClientRank, len(totals))
	for i, t := range totals {
		rows[i] = ClientRank{
			Rank:      i + 1,
			Name:      t.client.Name,
			Industry:  t.client.Industry,
			Value:     core.Money(t.value),
			Share:     core.Percent(core.Ratio(t.value, grand)),
			Contracts: core.Count(t.contracts),
		}
	}
	return ClientRankingWidget{Title: "Top clients", Clients: rows}
}

func industryChart(repo core.Repository, contracts []core.Contract) PieChartWidget {
	industry := make(map[string]string)
	for _, cl := range repo.Clients() {
		industry[cl.ID] = cl.Industry
	}
	var order []string
	sums := make(map[string]decimal.Decimal)
	for _, c := range contracts {
		if c.Status == core.ContractCancelled {
			continue
		}
		ind := industry[c.ClientID]
		if _, ok := sums[ind]; !ok {
			order = append(order, ind)
		}
		sums[ind] = sums[ind].Add(c.Value)
	}
	data := make([]view.Datum, 0, len(order))
	for _, ind := range order {
		f, _ := sums[ind].Float64()
		data = append(data, view.Datum{Label: ind, Value: f, Display: core.CompactMoney(sums[ind])})
	}
	return PieChartWidget{Title: "Contract value by industry", Icon: "chart-pie", Data: data}
}

func quickLinks() QuickLinksWidget {
	return QuickLinksWidget{
		Title: "Quick links",
		Links: []QuickLink{
			{Label: "All contracts", Href: "/contracts", Description: "Browse every contract", Icon: "file-text"},
			{Label: "Financials", Href: "/business?tab=" + TabFinancials, Description: "Revenue and payments", Icon: "dollar"},
			{Label: "Research", Href: "/research", Description: "Projects and experiments", Icon: "flask"},
			{Label: "Equipment", Href: "/equipment", Description: "Instrument inventory", Icon: "cpu"},
		},
	}
}

func paymentsTable(asOf time.Time, contracts []core.Contract, payments []core.Payment, clients map[string]string) PaymentsWidget {
	clientOf := make(map[string]string, len(contracts))
	for _, c := range contracts {
		clientOf[c.ID] = clients[c.ClientID]
	}
	sorted := slices.Clone(payments)
	slices.SortStableFunc(sorted, func(a, b core.Payment) int { return a.DueDate.Compare(b.DueDate) })

	var outstanding decimal.Decimal
	rows := make([]PaymentRow, 0, len(sorted))
	for _, p := range sorted {
		st := p.StatusAt(asOf)
		if st != core.PaymentPaid {
			outstanding = outstanding.Add(p.Amount)
		}
		rows = append(rows, PaymentRow{
			Reference:    p.Reference,
			Contract:     p.ContractID,
			ContractHref: "/contracts/" + p.ContractID,
			Client:       clientOf[p.ContractID],
			Amount:       core.Money(p.Amount),
			Due:          core.Date(p.DueDate),
			Status:       status.Payment(st),
		})
	}
	return PaymentsWidget{Title: "Payments", Rows: rows, Outstanding: core.Money(outstanding)}
}
