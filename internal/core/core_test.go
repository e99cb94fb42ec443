package core_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-dashboard/internal/core"
)

var asOf = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

func TestDefaultSnapshot(t *testing.T) {
	s, err := core.DefaultSnapshot()
	require.NoError(t, err)
	assert.True(t, s.AsOf().Equal(asOf))

	c, ok := s.Contract("CT-1001")
	require.True(t, ok)
	assert.Equal(t, "CL-01", c.ClientID)
	assert.Len(t, s.PaymentsFor("CT-1001"), 4)
	assert.Empty(t, s.PaymentsFor("CT-9999"))
	assert.Len(t, s.AllEquipment(), 7)

	_, ok = s.Equipment("EQ-999")
	assert.False(t, ok)
}

func TestLoadSnapshot_EmptyPathUsesEmbeddedSeed(t *testing.T) {
	s, err := core.LoadSnapshot("")
	require.NoError(t, err)
	assert.True(t, s.AsOf().Equal(asOf))

	_, err = core.LoadSnapshot("does-not-exist.yaml")
	assert.ErrorContains(t, err, "open seed")
}

func TestDecodeSnapshot_RejectsUnknownKeys(t *testing.T) {
	_, err := core.DecodeSnapshot(strings.NewReader("as_of: 2025-06-30\nwidgets: []\n"))
	assert.ErrorContains(t, err, "decode seed")
}

func TestNewSnapshot_Validation(t *testing.T) {
	client := core.Client{ID: "CL-01", Name: "Meridian"}
	contract := core.Contract{ID: "CT-1", ClientID: "CL-01", Value: decimal.NewFromInt(10)}

	tests := []struct {
		name string
		data core.SnapshotData
		want string
	}{
		{
			name: "missing as_of",
			data: core.SnapshotData{},
			want: "snapshot: as_of is required",
		},
		{
			name: "duplicate id",
			data: core.SnapshotData{AsOf: asOf, Clients: []core.Client{client, client}},
			want: "snapshot: duplicate client id CL-01",
		},
		{
			name: "missing id",
			data: core.SnapshotData{AsOf: asOf, Equipment: []core.Equipment{{Name: "Scope"}}},
			want: "snapshot: equipment at position 0 has no id",
		},
		{
			name: "unknown client",
			data: core.SnapshotData{AsOf: asOf, Contracts: []core.Contract{contract}},
			want: "snapshot: contract CT-1 references unknown client CL-01",
		},
		{
			name: "unknown contract",
			data: core.SnapshotData{
				AsOf:     asOf,
				Clients:  []core.Client{client},
				Payments: []core.Payment{{ID: "PM-1", ContractID: "CT-2"}},
			},
			want: "snapshot: payment PM-1 references unknown contract CT-2",
		},
		{
			name: "unknown project",
			data: core.SnapshotData{AsOf: asOf, Experiments: []core.Experiment{{ID: "EXP-1", ProjectID: "PR-9"}}},
			want: "snapshot: experiment EXP-1 references unknown project PR-9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.NewSnapshot(tt.data)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$185,000.00", core.Money(decimal.NewFromInt(185000)))
	assert.Equal(t, "-$12.50", core.Money(decimal.RequireFromString("-12.5")))
	assert.Equal(t, "$1.2M", core.CompactMoney(decimal.NewFromInt(1_234_567)))
	assert.Equal(t, "$93K", core.CompactMoney(decimal.NewFromInt(92_600)))
	assert.Equal(t, "12,345", core.Count(12345))
	assert.Equal(t, "50%", core.Percent(0.5))
	assert.Equal(t, "0%", core.Percent(core.Ratio(decimal.NewFromInt(1), decimal.Zero)))
	assert.Equal(t, "Jun 30, 2025", core.Date(asOf))
	assert.Equal(t, "Out Of Order", core.Label("out-of-order"))
	assert.Equal(t, "842 kB", core.FileSize(842))
}

func TestDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "today"},
		{1, "tomorrow"},
		{-1, "yesterday"},
		{12, "in 12 days"},
		{-3, "3 days ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, core.Days(asOf, asOf.AddDate(0, 0, tt.days)), "%d days", tt.days)
	}
	assert.Equal(t, 7, core.MonthsBetween(asOf, asOf.AddDate(0, 7, 0)))
}
