// Package status maps domain status slugs to display badges. Every page that
// shows a status uses these so the same status always gets the same tone.
package status

import (
	"lab-dashboard/internal/core"
	"lab-dashboard/internal/view"
)

func badge(slug string, tone view.Tone) view.Badge {
	return view.Badge{Text: core.Label(slug), Tone: tone}
}

// Contract returns the badge for a contract status.
func Contract(s string) view.Badge {
	switch s {
	case core.ContractActive:
		return badge(s, view.ToneGood)
	case core.ContractNegotiation:
		return badge(s, view.ToneInfo)
	case core.ContractCompleted:
		return badge(s, view.ToneNeutral)
	case core.ContractCancelled:
		return badge(s, view.ToneBad)
	default:
		return badge(s, view.ToneWarn)
	}
}

// Payment returns the badge for a derived payment status.
func Payment(s string) view.Badge {
	switch s {
	case core.PaymentPaid:
		return badge(s, view.ToneGood)
	case core.PaymentOverdue:
		return badge(s, view.ToneBad)
	default:
		return badge(s, view.ToneWarn)
	}
}

// Experiment returns the badge for an experiment status.
func Experiment(s string) view.Badge {
	switch s {
	case core.ExperimentRunning:
		return badge(s, view.ToneInfo)
	case core.ExperimentCompleted:
		return badge(s, view.ToneGood)
	case core.ExperimentFailed:
		return badge(s, view.ToneBad)
	default:
		return badge(s, view.ToneNeutral)
	}
}

// Equipment returns the badge for an equipment status.
func Equipment(s string) view.Badge {
	switch s {
	case core.EquipmentOperational:
		return badge(s, view.ToneGood)
	case core.EquipmentMaintenance:
		return badge(s, view.ToneWarn)
	case core.EquipmentOutOfOrder:
		return badge(s, view.ToneBad)
	default:
		return badge(s, view.ToneNeutral)
	}
}

// Project returns the badge for a project status.
func Project(s string) view.Badge {
	switch s {
	case "active":
		return badge(s, view.ToneGood)
	case "completed":
		return badge(s, view.ToneNeutral)
	default:
		return badge(s, view.ToneInfo)
	}
}

// Publication returns the badge for a publication status.
func Publication(s string) view.Badge {
	switch s {
	case "published":
		return badge(s, view.ToneGood)
	case "accepted":
		return badge(s, view.ToneInfo)
	default:
		return badge(s, view.ToneWarn)
	}
}
