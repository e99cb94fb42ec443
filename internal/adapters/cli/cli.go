package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"lab-dashboard/internal/app"
	"lab-dashboard/internal/core"
	"lab-dashboard/internal/dashboards/business"
	"lab-dashboard/internal/dashboards/research"
	"lab-dashboard/internal/details/contract"
	"lab-dashboard/internal/details/equipment"
	"lab-dashboard/internal/details/experiment"
	"lab-dashboard/internal/view"
)

// ErrStillLoading is returned when a detail lookup outlives the wait budget.
var ErrStillLoading = errors.New("still loading")

const (
	formatText = "text"
	formatJSON = "json"
)

// NewRootCommand returns the labctl command tree bound to svc. Callers may add
// further subcommands before executing it.
func NewRootCommand(svc app.ApplicationService) *cobra.Command {
	root := &cobra.Command{
		Use:   "labctl",
		Short: "Render lab dashboards and detail pages in the terminal",
		Long: `labctl renders the same dashboards and detail pages the web server
serves, as plain text or as the JSON documents of the /api routes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch f, _ := cmd.Flags().GetString("format"); f {
			case formatText, formatJSON:
			default:
				return fmt.Errorf("unknown format %q (want text or json)", f)
			}
			switch c, _ := cmd.Flags().GetString("color"); c {
			case "auto", "always", "never":
				return nil
			default:
				return fmt.Errorf("unknown color mode %q (want auto, always or never)", c)
			}
		},
	}
	root.PersistentFlags().String("format", formatText, "output format: text or json")
	root.PersistentFlags().String("color", "auto", "colour output: auto, always or never")

	root.AddCommand(
		renderCommand(svc),
		listCommand(svc),
		registriesCommand(svc),
		schemaCommand(),
	)
	return root
}

// StylesFor resolves the --color flag against the command's output.
func StylesFor(cmd *cobra.Command) Styles {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "always":
		return NewStyles(true)
	case "never":
		return NewStyles(false)
	default:
		return NewStyles(IsTerminal(cmd.OutOrStdout()))
	}
}

func jsonOutput(cmd *cobra.Command) bool {
	f, _ := cmd.Flags().GetString("format")
	return f == formatJSON
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func renderCommand(svc app.ApplicationService) *cobra.Command {
	var tab string
	cmd := &cobra.Command{
		Use:   "render <business|research> | render <equipment|contract|experiment> <id>",
		Short: "Render a dashboard or a detail page",
		Example: `  labctl render business --tab financials
  labctl render equipment EQ-001
  labctl render contract CT-1001 --format json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, out := cmd.Context(), cmd.OutOrStdout()
			st, asJSON := StylesFor(cmd), jsonOutput(cmd)

			switch strings.ToLower(args[0]) {
			case "business":
				res, err := svc.BusinessDashboard(ctx, tab)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, app.EncodeDashboard[business.Kind](res))
				}
				_, err = io.WriteString(out, DashboardText(business.Text, res, st))
				return err
			case "research":
				res, err := svc.ResearchDashboard(ctx, tab)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, app.EncodeDashboard[research.Kind](res))
				}
				_, err = io.WriteString(out, DashboardText(research.Text, res, st))
				return err
			}

			entity, err := app.ParseEntity(args[0])
			if err != nil {
				return err
			}
			if len(args) != 2 {
				return fmt.Errorf("render %s: missing id", entity.Singular())
			}
			id := args[1]
			switch entity {
			case app.EntityEquipment:
				res, err := svc.Equipment(ctx, id)
				if err != nil {
					return err
				}
				return writeDetail[equipment.Kind](out, equipment.Text, res, asJSON, st)
			case app.EntityContract:
				res, err := svc.Contract(ctx, id)
				if err != nil {
					return err
				}
				return writeDetail[contract.Kind](out, contract.Text, res, asJSON, st)
			default:
				res, err := svc.Experiment(ctx, id)
				if err != nil {
					return err
				}
				return writeDetail[experiment.Kind](out, experiment.Text, res, asJSON, st)
			}
		},
	}
	cmd.Flags().StringVar(&tab, "tab", "", "dashboard tab (defaults to the first)")
	return cmd
}

// writeDetail prints a settled page. NotFound and Loading are reported as
// errors after the JSON document, if any, has been written.
func writeDetail[K ~string, S view.Variant[K]](w io.Writer, reg *view.Registry[K, S, string], res *app.DetailResult[view.DetailConfig[S]], asJSON bool, st Styles) error {
	if asJSON {
		if err := writeJSON(w, app.EncodeDetail[K](res)); err != nil {
			return err
		}
	}
	state := res.State
	switch state.Phase {
	case view.Ready:
		if asJSON {
			return nil
		}
		_, err := io.WriteString(w, DetailText(reg, *state.Config, st))
		return err
	case view.NotFound:
		return fmt.Errorf("%s %s: %w", res.Entity.Singular(), state.ID, core.ErrNotFound)
	default:
		return fmt.Errorf("%s %s: %w", res.Entity.Singular(), state.ID, ErrStillLoading)
	}
}

func listCommand(svc app.ApplicationService) *cobra.Command {
	return &cobra.Command{
		Use:       "list <equipment|contracts|experiments>",
		Short:     "List every record of an entity",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"equipment", "contracts", "experiments"},
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := app.ParseEntity(args[0])
			if err != nil {
				return err
			}
			res, err := svc.List(cmd.Context(), entity)
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), ListingText(res, StylesFor(cmd)))
			return err
		},
	}
}

func registriesCommand(svc app.ApplicationService) *cobra.Command {
	return &cobra.Command{
		Use:   "registries",
		Short: "Show the kinds every renderer registry covers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cov := svc.Registries()
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), cov)
			}
			st := StylesFor(cmd)
			var b strings.Builder
			for _, c := range cov {
				fmt.Fprintf(&b, "%s (%d)\n  %s\n", st.Title(c.Union), len(c.Kinds), st.Muted(strings.Join(c.Kinds, ", ")))
			}
			_, err := io.WriteString(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

func schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "schema <union>",
		Short:     "Print the JSON Schema of every member of a variant union",
		Args:      cobra.ExactArgs(1),
		ValidArgs: app.Unions,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Schema(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), s)
		},
	}
}
