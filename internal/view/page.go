package view

import (
	"errors"
	"fmt"
)

// Tone is a semantic colour hint for badges and KPIs.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneGood    Tone = "good"
	ToneWarn    Tone = "warn"
	ToneBad     Tone = "bad"
	ToneInfo    Tone = "info"
)

// Badge is a short status label.
type Badge struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// Crumb is one breadcrumb link.
type Crumb struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// Header is the title block of a page.
type Header struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Badge       *Badge  `json:"badge,omitempty"`
	Breadcrumbs []Crumb `json:"breadcrumbs,omitempty"`
}

// KPI is one pre-formatted figure in a detail page's KPI strip.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Hint  string `json:"hint,omitempty"`
	Tone  Tone   `json:"tone,omitempty"`
}

// Action is a navigation affordance offered by a page.
type Action struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Primary bool   `json:"primary,omitempty"`
}

// Datum is one labelled point handed to a chart. Display is the formatted
// form of Value.
type Datum struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Field is one label/value pair in a definition list.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Tab is one tab of a dashboard. ID is stable and selects both the layout
// strategy and the default tab.
type Tab[V any] struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Variants []V    `json:"-"`
}

// DashboardConfig describes a dashboard page.
type DashboardConfig[V any] struct {
	Header Header
	Global []V
	Tabs   []Tab[V]
}

// ErrNoTabs is returned by Validate for a dashboard without tabs.
var ErrNoTabs = errors.New("view: dashboard has no tabs")

// Validate checks that the dashboard has at least one tab and that tab ids
// are non-empty and unique.
func (c DashboardConfig[V]) Validate() error {
	if len(c.Tabs) == 0 {
		return ErrNoTabs
	}
	seen := make(map[string]bool, len(c.Tabs))
	for i, t := range c.Tabs {
		if t.ID == "" {
			return fmt.Errorf("view: tab %d has an empty id", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("view: duplicate tab id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// Tab returns the tab with the given id.
func (c DashboardConfig[V]) Tab(id string) (Tab[V], bool) {
	for _, t := range c.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab[V]{}, false
}

// SelectTab returns the tab with the given id, or the first tab when id is
// empty or unknown. The config must have passed Validate.
func (c DashboardConfig[V]) SelectTab(id string) Tab[V] {
	if t, ok := c.Tab(id); ok {
		return t
	}
	return c.Tabs[0]
}

// DetailConfig describes an entity detail page.
type DetailConfig[V any] struct {
	Header  Header
	KPIs    []KPI
	Actions []Action
	Main    []V
	Sidebar []V
}
