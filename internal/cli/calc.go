package cli

import (
	"beam-stacking-service/internal/adapters/orderfile"
	"beam-stacking-service/internal/adapters/repositories"
	"beam-stacking-service/internal/api/dto"
	"beam-stacking-service/internal/config"
	"beam-stacking-service/internal/domain"
	"beam-stacking-service/internal/services"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type calcOptions struct {
	catalog    string
	configPath string
	asJSON     bool
	stack      domain.StackConfig
}

// calcCommand creates the calc command computing a plan from an order file.
func (c *CLI) calcCommand() *cobra.Command {
	opts := calcOptions{stack: domain.DefaultStackConfig()}

	cmd := &cobra.Command{
		Use:   "calc [orders.yaml]",
		Short: "Compute the layer plan for an order",
		Long: `Compute the layer plan for an order.

The order file lists beam_id, length (12 or 6), quantity and priority per line.
Lower priority values are loaded last and unloaded first. Beam dimensions come
from the catalog file given with --catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack := opts.stack
			if opts.configPath != "" {
				fromFile, err := config.LoadStackFile(opts.configPath, domain.DefaultStackConfig())
				if err != nil {
					return err
				}
				stack = overrideChanged(cmd, fromFile, opts.stack)
			}
			return c.runCalc(cmd.Context(), args[0], opts.catalog, stack, opts.asJSON)
		},
	}

	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "catalog file (JSON or YAML)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "stack limits file (TOML)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the plan as JSON")
	cmd.Flags().Float64Var(&opts.stack.MaxWidthMM, "max-width", opts.stack.MaxWidthMM, "maximum layer width (mm)")
	cmd.Flags().Float64Var(&opts.stack.GapMM, "gap", opts.stack.GapMM, "gap between adjacent beams (mm)")
	cmd.Flags().Float64Var(&opts.stack.DunnageMM, "dunnage", opts.stack.DunnageMM, "spacer height per layer (mm)")
	cmd.Flags().Float64Var(&opts.stack.HeightToleranceMM, "height-tolerance", opts.stack.HeightToleranceMM, "maximum height spread within a layer (mm)")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

// overrideChanged applies the flags set explicitly on the command line on top
// of the values loaded from the config file.
func overrideChanged(cmd *cobra.Command, base, flags domain.StackConfig) domain.StackConfig {
	if cmd.Flags().Changed("max-width") {
		base.MaxWidthMM = flags.MaxWidthMM
	}
	if cmd.Flags().Changed("gap") {
		base.GapMM = flags.GapMM
	}
	if cmd.Flags().Changed("dunnage") {
		base.DunnageMM = flags.DunnageMM
	}
	if cmd.Flags().Changed("height-tolerance") {
		base.HeightToleranceMM = flags.HeightToleranceMM
	}
	return base
}

func (c *CLI) runCalc(ctx context.Context, ordersPath, catalogPath string, stack domain.StackConfig, asJSON bool) error {
	lines, err := orderfile.Load(ordersPath)
	if err != nil {
		return err
	}

	specs, err := repositories.LoadBeamSeed(catalogPath)
	if err != nil {
		return err
	}
	c.Logger.Debug("inputs loaded", "lines", len(lines), "beams", len(specs))

	repo := repositories.NewMemoryBeamRepository(specs)
	res, err := services.PlanLoad(ctx, services.PlanLoadRequest{Lines: lines, Config: stack}, repo)
	if err != nil {
		return fmt.Errorf("calc: %w", err)
	}
	c.Logger.Debug("plan computed", "layers", len(res.Layers), "warnings", len(res.Warnings))

	if asJSON {
		enc := json.NewEncoder(c.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewPlanResponse("", res))
	}

	c.printPlan(res, stack)
	return nil
}

func (c *CLI) printPlan(res *domain.CalculationResult, stack domain.StackConfig) {
	rows := make([][]string, 0, len(res.Layers))
	for i := len(res.Layers) - 1; i >= 0; i-- {
		l := res.Layers[i]
		rows = append(rows, []string{
			strconv.Itoa(l.Index),
			strconv.Itoa(len(l.Slots)),
			fmtMM(l.SlotWidthMM),
			fmtMM(l.ClearanceMM),
			fmtMM(l.MaxHeightMM),
			fmtMM(l.HeightSpreadMM()),
			strconv.Itoa(l.Priority),
			fmt.Sprintf("%.1f", l.WeightKg()),
		})
	}

	printTitle(c.Out, fmt.Sprintf("Stack plan (max width %s mm)", fmtMM(stack.MaxWidthMM)))
	fmt.Fprintln(c.Out, renderTable(
		[]string{"layer", "slots", "width", "clearance", "height", "spread", "priority", "kg"},
		rows,
	))
	fmt.Fprintf(c.Out, "total weight %.1f kg, total height %s mm, max width %s mm\n",
		res.TotalWeightKg, fmtMM(res.TotalHeightMM), fmtMM(res.MaxWidthMM))

	printMessages(c.Out, "✗", styleError, res.Errors)
	printMessages(c.Out, "!", styleWarning, res.Warnings)
	printMessages(c.Out, "›", styleDim, res.Notes)
}

func fmtMM(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
