package app

import (
	"context"
	"fmt"
	"time"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/dashboards/business"
	"lab-dashboard/internal/dashboards/research"
	"lab-dashboard/internal/details/contract"
	"lab-dashboard/internal/details/equipment"
	"lab-dashboard/internal/details/experiment"
	"lab-dashboard/internal/platform/logger"
	"lab-dashboard/internal/status"
	"lab-dashboard/internal/view"
)

type appService struct {
	repo  core.Repository
	log   *logger.Logger
	roots Roots
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(repo core.Repository, opts Options, log *logger.Logger) ApplicationService {
	if log == nil {
		log = logger.Nop()
	}
	return &appService{
		repo: repo,
		log:  log,
		roots: Roots{
			Equipment:  NewDetailRoot(EntityEquipment, loader(repo, equipment.Assemble), opts, log),
			Contract:   NewDetailRoot(EntityContract, loader(repo, contract.Assemble), opts, log),
			Experiment: NewDetailRoot(EntityExperiment, loader(repo, experiment.Assemble), opts, log),
		},
	}
}

// loader adapts a pure assembler to the machine's lookup signature.
func loader[C any](repo core.Repository, assemble func(string, core.Repository) (C, bool)) view.Loader[C] {
	return func(_ context.Context, id string) (C, bool) {
		return assemble(id, repo)
	}
}

func (s *appService) AsOf() time.Time { return s.repo.AsOf() }

func (s *appService) Roots() Roots { return s.roots }

// BusinessDashboard assembles the business dashboard and selects tab.
func (s *appService) BusinessDashboard(_ context.Context, tab string) (*BusinessResult, error) {
	return arrange(business.Assemble(s.repo), business.Layouts, tab)
}

// ResearchDashboard assembles the research dashboard and selects tab.
func (s *appService) ResearchDashboard(_ context.Context, tab string) (*ResearchResult, error) {
	return arrange(research.Assemble(s.repo), research.Layouts, tab)
}

func arrange[W any](cfg view.DashboardConfig[W], layouts view.Layouts[W], tab string) (*DashboardResult[W], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s dashboard: %w", cfg.Header.Title, err)
	}
	t := cfg.SelectTab(tab)
	return &DashboardResult[W]{Config: cfg, Tab: t, Regions: layouts.Arrange(t.ID, t.Variants)}, nil
}

func (s *appService) Equipment(ctx context.Context, id string) (*DetailResult[EquipmentPage], error) {
	return open(ctx, s.roots.Equipment, id)
}

func (s *appService) Contract(ctx context.Context, id string) (*DetailResult[ContractPage], error) {
	return open(ctx, s.roots.Contract, id)
}

func (s *appService) Experiment(ctx context.Context, id string) (*DetailResult[ExperimentPage], error) {
	return open(ctx, s.roots.Experiment, id)
}

func open[C any](ctx context.Context, root *DetailRoot[C], id string) (*DetailResult[C], error) {
	st, err := root.Open(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("open %s %s: %w", root.Entity().Singular(), id, err)
	}
	return &DetailResult[C]{Entity: root.Entity(), State: st}, nil
}

// List returns every record of entity in stored order.
func (s *appService) List(_ context.Context, entity Entity) (*ListingResult, error) {
	res := &ListingResult{Entity: entity}
	switch entity {
	case EntityEquipment:
		for _, e := range s.repo.AllEquipment() {
			res.Rows = append(res.Rows, ListingRow{
				ID:       e.ID,
				Title:    e.Name,
				Subtitle: e.Manufacturer + " " + e.Model + " · " + e.Location,
				Status:   status.Equipment(e.Status),
				Href:     entity.Href() + "/" + e.ID,
			})
		}
	case EntityContract:
		for _, c := range s.repo.Contracts() {
			client, _ := s.repo.Client(c.ClientID)
			res.Rows = append(res.Rows, ListingRow{
				ID:       c.ID,
				Title:    c.Title,
				Subtitle: client.Name + " · " + core.Money(c.Value),
				Status:   status.Contract(c.Status),
				Href:     entity.Href() + "/" + c.ID,
			})
		}
	case EntityExperiment:
		for _, e := range s.repo.Experiments() {
			res.Rows = append(res.Rows, ListingRow{
				ID:       e.ID,
				Title:    e.Title,
				Subtitle: e.Researcher + " · started " + core.Date(e.StartDate),
				Status:   status.Experiment(e.Status),
				Href:     entity.Href() + "/" + e.ID,
			})
		}
	default:
		return nil, fmt.Errorf("list %q: %w", entity, core.ErrNotFound)
	}
	return res, nil
}

// Registries reports the HTML and text registries of every union.
func (s *appService) Registries() []view.Coverage {
	return []view.Coverage{
		business.HTML.Coverage(), business.Text.Coverage(),
		research.HTML.Coverage(), research.Text.Coverage(),
		equipment.HTML.Coverage(), equipment.Text.Coverage(),
		contract.HTML.Coverage(), contract.Text.Coverage(),
		experiment.HTML.Coverage(), experiment.Text.Coverage(),
	}
}
