package repl

import (
	"fmt"
	"strings"

	"lab-dashboard/internal/app"
	"lab-dashboard/internal/view"
)

func (s *session) printHelp() {
	var b strings.Builder
	b.WriteString("\nCommands:\n")
	fmt.Fprintf(&b, "  %-46s %s\n", "open <equipment|contract|experiment> <id>", "load a detail page in the background")
	fmt.Fprintf(&b, "  %-46s %s\n", "wait", "block until every open page has settled")
	fmt.Fprintf(&b, "  %-46s %s\n", "status", "show the state of each page")
	fmt.Fprintf(&b, "  %-46s %s\n", "dashboard <business|research> [tab]", "render a dashboard")
	fmt.Fprintf(&b, "  %-46s %s\n", "list <equipment|contracts|experiments>", "list records")
	fmt.Fprintf(&b, "  %-46s %s\n", "help", "show this help")
	fmt.Fprintf(&b, "  %-46s %s\n", "quit", "leave")
	b.WriteString("\nOpening another record of the same entity replaces the one still loading.\n")
	s.printf("%s", b.String())
}

func (s *session) printStatus() {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-12s %-10s %-10s %s\n", "ENTITY", "ID", "PHASE", "REQUESTS")
	b.WriteString("  " + strings.Repeat("-", 44) + "\n")
	statusLine(&b, app.EntityEquipment, s.equipment.State(), s.equipment.Generation())
	statusLine(&b, app.EntityContract, s.contract.State(), s.contract.Generation())
	statusLine(&b, app.EntityExperiment, s.experiment.State(), s.experiment.Generation())
	s.printf("%s", b.String())
}

func statusLine[C any](b *strings.Builder, entity app.Entity, st view.State[C], gen uint64) {
	id, phase := st.ID, st.Phase.String()
	if gen == 0 {
		id, phase = "-", "idle"
	}
	fmt.Fprintf(b, "  %-12s %-10s %-10s %d\n", entity.Singular(), id, phase, gen)
}
