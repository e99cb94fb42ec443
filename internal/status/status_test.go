package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/status"
	"lab-dashboard/internal/view"
)

func TestBadges(t *testing.T) {
	tests := []struct {
		name string
		got  view.Badge
		want view.Badge
	}{
		{"operational", status.Equipment(core.EquipmentOperational), view.Badge{Text: "Operational", Tone: view.ToneGood}},
		{"out of order", status.Equipment(core.EquipmentOutOfOrder), view.Badge{Text: "Out Of Order", Tone: view.ToneBad}},
		{"retired", status.Equipment(core.EquipmentRetired), view.Badge{Text: "Retired", Tone: view.ToneNeutral}},
		{"contract active", status.Contract(core.ContractActive), view.Badge{Text: "Active", Tone: view.ToneGood}},
		{"payment overdue", status.Payment(core.PaymentOverdue), view.Badge{Text: "Overdue", Tone: view.ToneBad}},
		{"experiment running", status.Experiment(core.ExperimentRunning), view.Badge{Text: "Running", Tone: view.ToneInfo}},
		{"unknown publication", status.Publication("in-review"), view.Badge{Text: "In Review", Tone: view.ToneWarn}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
