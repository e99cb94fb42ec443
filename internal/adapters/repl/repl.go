package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"lab-dashboard/internal/adapters/cli"
	"lab-dashboard/internal/app"
	"lab-dashboard/internal/dashboards/business"
	"lab-dashboard/internal/dashboards/research"
	"lab-dashboard/internal/details/contract"
	"lab-dashboard/internal/details/equipment"
	"lab-dashboard/internal/details/experiment"
	"lab-dashboard/internal/view"
)

var errExit = errors.New("exit")

// session holds one long-lived page machine per entity. Opening a record
// supersedes whatever that entity's machine was still loading.
type session struct {
	svc app.ApplicationService
	st  cli.Styles

	mu  sync.Mutex // guards out; observers print from lookup goroutines
	out io.Writer

	equipment  *view.Machine[app.EquipmentPage]
	contract   *view.Machine[app.ContractPage]
	experiment *view.Machine[app.ExperimentPage]
}

// Run reads commands from in until EOF or quit and writes to out. Detail
// pages load in the background and are printed when they settle.
func Run(ctx context.Context, svc app.ApplicationService, in io.Reader, out io.Writer, st cli.Styles) error {
	s := &session{svc: svc, st: st, out: out}
	roots := svc.Roots()
	s.equipment = watch(s, roots.Equipment, equipment.Text)
	s.contract = watch(s, roots.Contract, contract.Text)
	s.experiment = watch(s, roots.Experiment, experiment.Text)
	defer s.close()

	s.printf("%s\n", st.Title("Lab dashboard"))
	s.printf("Snapshot as of %s. Type help for commands.\n", svc.AsOf().Format("Jan 2, 2006"))

	scanner := bufio.NewScanner(in)
	for {
		s.printf("\n> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if err := s.dispatch(ctx, input); err != nil {
			if errors.Is(err, errExit) {
				s.printf("Goodbye!\n")
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.printf("Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// watch builds the entity's machine with an observer that prints each
// committed state.
func watch[K ~string, S view.Variant[K]](s *session, root *app.DetailRoot[view.DetailConfig[S]], reg *view.Registry[K, S, string]) *view.Machine[view.DetailConfig[S]] {
	entity := root.Entity()
	return root.Machine(func(st view.State[view.DetailConfig[S]]) {
		switch st.Phase {
		case view.Loading:
			s.printf("%s\n", s.st.Muted("Loading "+entity.Singular()+" "+st.ID+"..."))
		case view.Ready:
			s.printf("\n%s", cli.DetailText(reg, *st.Config, s.st))
		case view.NotFound:
			s.printf("%s %s not found. Try: list %s\n", entity.Singular(), st.ID, entity)
		}
	})
}

func (s *session) dispatch(ctx context.Context, input string) error {
	tokens := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(tokens[0]), tokens[1:]

	switch cmd {
	case "open", "o":
		if len(args) != 2 {
			return errors.New("usage: open <equipment|contract|experiment> <id>")
		}
		entity, err := app.ParseEntity(args[0])
		if err != nil {
			return err
		}
		s.open(ctx, entity, strings.ToUpper(args[1]))

	case "wait", "w":
		return s.wait(ctx)

	case "status", "s":
		s.printStatus()

	case "dashboard", "dash", "d":
		if len(args) == 0 {
			return errors.New("usage: dashboard <business|research> [tab]")
		}
		tab := ""
		if len(args) > 1 {
			tab = args[1]
		}
		return s.dashboard(ctx, strings.ToLower(args[0]), tab)

	case "list", "ls", "l":
		if len(args) != 1 {
			return errors.New("usage: list <equipment|contracts|experiments>")
		}
		entity, err := app.ParseEntity(args[0])
		if err != nil {
			return err
		}
		res, err := s.svc.List(ctx, entity)
		if err != nil {
			return err
		}
		s.printf("%s", cli.ListingText(res, s.st))

	case "help", "h":
		s.printHelp()

	case "exit", "quit", "e", "q":
		return errExit

	default:
		s.printf("Unknown command: %s  (type help for all commands)\n", cmd)
	}
	return nil
}

// open requests id on the entity's machine without waiting for it.
func (s *session) open(ctx context.Context, entity app.Entity, id string) {
	switch entity {
	case app.EntityEquipment:
		s.equipment.Request(ctx, id)
	case app.EntityContract:
		s.contract.Request(ctx, id)
	case app.EntityExperiment:
		s.experiment.Request(ctx, id)
	}
}

// wait blocks until every machine has settled.
func (s *session) wait(ctx context.Context) error {
	if _, err := s.equipment.Wait(ctx); err != nil {
		return err
	}
	if _, err := s.contract.Wait(ctx); err != nil {
		return err
	}
	_, err := s.experiment.Wait(ctx)
	return err
}

func (s *session) dashboard(ctx context.Context, name, tab string) error {
	switch name {
	case "business":
		res, err := s.svc.BusinessDashboard(ctx, tab)
		if err != nil {
			return err
		}
		s.printf("%s", cli.DashboardText(business.Text, res, s.st))
	case "research":
		res, err := s.svc.ResearchDashboard(ctx, tab)
		if err != nil {
			return err
		}
		s.printf("%s", cli.DashboardText(research.Text, res, s.st))
	default:
		return fmt.Errorf("unknown dashboard %q (want business or research)", name)
	}
	return nil
}

func (s *session) close() {
	s.equipment.Close()
	s.contract.Close()
	s.experiment.Close()
}

func (s *session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}
