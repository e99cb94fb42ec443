package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by adapters when an identifier does not resolve.
var ErrNotFound = errors.New("not found")

// Repository is the read-only view of lab data the assemblers consume.
// Lookups report false for unknown identifiers; listings return records in
// their stored order. Implementations must be safe for concurrent reads.
type Repository interface {
	// AsOf is the reference date for every time-relative computation.
	AsOf() time.Time

	Client(id string) (Client, bool)
	Clients() []Client
	Contract(id string) (Contract, bool)
	Contracts() []Contract
	Payments() []Payment
	PaymentsFor(contractID string) []Payment

	Project(id string) (Project, bool)
	Projects() []Project
	Experiment(id string) (Experiment, bool)
	Experiments() []Experiment
	Publications() []Publication

	Equipment(id string) (Equipment, bool)
	AllEquipment() []Equipment
}

// Snapshot is an immutable in-memory Repository.
type Snapshot struct {
	asOf         time.Time
	clients      []Client
	contracts    []Contract
	payments     []Payment
	projects     []Project
	experiments  []Experiment
	publications []Publication
	equipment    []Equipment

	clientIdx     map[string]int
	contractIdx   map[string]int
	projectIdx    map[string]int
	experimentIdx map[string]int
	equipmentIdx  map[string]int
	paymentsBy    map[string][]int
}

// SnapshotData is the raw content of a Snapshot, as found in a seed file.
type SnapshotData struct {
	AsOf         time.Time     `yaml:"as_of"`
	Clients      []Client      `yaml:"clients"`
	Contracts    []Contract    `yaml:"contracts"`
	Payments     []Payment     `yaml:"payments"`
	Projects     []Project     `yaml:"projects"`
	Experiments  []Experiment  `yaml:"experiments"`
	Publications []Publication `yaml:"publications"`
	Equipment    []Equipment   `yaml:"equipment"`
}

// NewSnapshot indexes data. It fails on duplicate identifiers and on
// references to unknown clients, contracts or projects.
func NewSnapshot(data SnapshotData) (*Snapshot, error) {
	if data.AsOf.IsZero() {
		return nil, errors.New("snapshot: as_of is required")
	}
	s := &Snapshot{
		asOf:         data.AsOf,
		clients:      data.Clients,
		contracts:    data.Contracts,
		payments:     data.Payments,
		projects:     data.Projects,
		experiments:  data.Experiments,
		publications: data.Publications,
		equipment:    data.Equipment,
		paymentsBy:   make(map[string][]int),
	}

	var err error
	if s.clientIdx, err = index("client", s.clients, func(c Client) string { return c.ID }); err != nil {
		return nil, err
	}
	if s.contractIdx, err = index("contract", s.contracts, func(c Contract) string { return c.ID }); err != nil {
		return nil, err
	}
	if s.projectIdx, err = index("project", s.projects, func(p Project) string { return p.ID }); err != nil {
		return nil, err
	}
	if s.experimentIdx, err = index("experiment", s.experiments, func(e Experiment) string { return e.ID }); err != nil {
		return nil, err
	}
	if s.equipmentIdx, err = index("equipment", s.equipment, func(e Equipment) string { return e.ID }); err != nil {
		return nil, err
	}

	for _, c := range s.contracts {
		if _, ok := s.clientIdx[c.ClientID]; !ok {
			return nil, fmt.Errorf("snapshot: contract %s references unknown client %s", c.ID, c.ClientID)
		}
	}
	for i, p := range s.payments {
		if _, ok := s.contractIdx[p.ContractID]; !ok {
			return nil, fmt.Errorf("snapshot: payment %s references unknown contract %s", p.ID, p.ContractID)
		}
		s.paymentsBy[p.ContractID] = append(s.paymentsBy[p.ContractID], i)
	}
	for _, e := range s.experiments {
		if _, ok := s.projectIdx[e.ProjectID]; !ok {
			return nil, fmt.Errorf("snapshot: experiment %s references unknown project %s", e.ID, e.ProjectID)
		}
	}
	return s, nil
}

func index[T any](kind string, items []T, id func(T) string) (map[string]int, error) {
	m := make(map[string]int, len(items))
	for i, it := range items {
		key := id(it)
		if key == "" {
			return nil, fmt.Errorf("snapshot: %s at position %d has no id", kind, i)
		}
		if _, dup := m[key]; dup {
			return nil, fmt.Errorf("snapshot: duplicate %s id %s", kind, key)
		}
		m[key] = i
	}
	return m, nil
}

func lookup[T any](items []T, idx map[string]int, id string) (T, bool) {
	i, ok := idx[id]
	if !ok {
		var zero T
		return zero, false
	}
	return items[i], true
}

func (s *Snapshot) AsOf() time.Time { return s.asOf }

func (s *Snapshot) Client(id string) (Client, bool) { return lookup(s.clients, s.clientIdx, id) }
func (s *Snapshot) Clients() []Client                { return s.clients }

func (s *Snapshot) Contract(id string) (Contract, bool) {
	return lookup(s.contracts, s.contractIdx, id)
}
func (s *Snapshot) Contracts() []Contract { return s.contracts }
func (s *Snapshot) Payments() []Payment   { return s.payments }

func (s *Snapshot) PaymentsFor(contractID string) []Payment {
	idx := s.paymentsBy[contractID]
	out := make([]Payment, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.payments[i])
	}
	return out
}

func (s *Snapshot) Project(id string) (Project, bool) { return lookup(s.projects, s.projectIdx, id) }
func (s *Snapshot) Projects() []Project                { return s.projects }

func (s *Snapshot) Experiment(id string) (Experiment, bool) {
	return lookup(s.experiments, s.experimentIdx, id)
}
func (s *Snapshot) Experiments() []Experiment   { return s.experiments }
func (s *Snapshot) Publications() []Publication { return s.publications }

func (s *Snapshot) Equipment(id string) (Equipment, bool) {
	return lookup(s.equipment, s.equipmentIdx, id)
}
func (s *Snapshot) AllEquipment() []Equipment { return s.equipment }
