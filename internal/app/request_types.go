package app

import (
	"fmt"
	"strings"
	"time"
)

// Entity names a kind of detail page. Its value is the URL segment the web
// adapter mounts the listing and detail pages under.
type Entity string

const (
	EntityEquipment  Entity = "equipment"
	EntityContract   Entity = "contracts"
	EntityExperiment Entity = "experiments"
)

// Entities lists every entity in navigation order.
var Entities = []Entity{EntityEquipment, EntityContract, EntityExperiment}

// ParseEntity accepts the plural URL form as well as the singular.
func ParseEntity(s string) (Entity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equipment":
		return EntityEquipment, nil
	case "contract", "contracts":
		return EntityContract, nil
	case "experiment", "experiments":
		return EntityExperiment, nil
	}
	return "", fmt.Errorf("unknown entity %q (want equipment, contract or experiment)", s)
}

// Singular is the display name of one record.
func (e Entity) Singular() string {
	switch e {
	case EntityContract:
		return "Contract"
	case EntityExperiment:
		return "Experiment"
	default:
		return "Equipment"
	}
}

// Plural is the display name of the listing.
func (e Entity) Plural() string {
	switch e {
	case EntityContract:
		return "Contracts"
	case EntityExperiment:
		return "Experiments"
	default:
		return "Equipment"
	}
}

// Href is the path of the entity's listing page.
func (e Entity) Href() string { return "/" + string(e) }

// Options tunes the detail-page composition roots.
type Options struct {
	// Delay is applied before every lookup.
	Delay time.Duration
	// Timeout bounds how long Open waits for a terminal state. Zero waits
	// for as long as the caller's context allows.
	Timeout time.Duration
}
