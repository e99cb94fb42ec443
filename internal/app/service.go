package app

import (
	"context"
	"time"

	"lab-dashboard/internal/view"
)

// ApplicationService is the single interface all presentation adapters (web,
// CLI, REPL) call. Implementations return view models only and contain no
// rendering or display logic.
type ApplicationService interface {
	// AsOf returns the reference date of the loaded snapshot.
	AsOf() time.Time

	// BusinessDashboard assembles the business dashboard and selects tab,
	// falling back to the first tab when tab is empty or unknown.
	BusinessDashboard(ctx context.Context, tab string) (*BusinessResult, error)

	// ResearchDashboard assembles the research dashboard. See BusinessDashboard.
	ResearchDashboard(ctx context.Context, tab string) (*ResearchResult, error)

	// Equipment drives the equipment page for id to a terminal state, or
	// returns it still Loading when the lookup timeout passes first.
	Equipment(ctx context.Context, id string) (*DetailResult[EquipmentPage], error)

	// Contract drives the contract page for id. See Equipment.
	Contract(ctx context.Context, id string) (*DetailResult[ContractPage], error)

	// Experiment drives the experiment page for id. See Equipment.
	Experiment(ctx context.Context, id string) (*DetailResult[ExperimentPage], error)

	// List returns every record of entity in stored order.
	List(ctx context.Context, entity Entity) (*ListingResult, error)

	// Registries reports the kinds covered by every renderer registry.
	Registries() []view.Coverage

	// Roots exposes the detail composition roots for adapters that keep
	// long-lived page machines.
	Roots() Roots
}

// Roots groups the per-entity detail composition roots.
type Roots struct {
	Equipment  *DetailRoot[EquipmentPage]
	Contract   *DetailRoot[ContractPage]
	Experiment *DetailRoot[ExperimentPage]
}
